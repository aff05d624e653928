package events

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsSetTypeAndID(t *testing.T) {
	for want, evt := range map[EventType]WorkshopEvent{
		EventInfo:    NewInfo("generate-code", "a"),
		EventWarn:    NewWarn("generate-tests", "b"),
		EventError:   NewError("generate-docs", "c"),
		EventSuccess: NewSuccess("quality-report", "d"),
	} {
		assert.Equal(t, want, evt.Type)
		assert.NotEmpty(t, evt.ID)
		assert.False(t, evt.Timestamp.IsZero())
	}
}

func TestSetCustomEmitter(t *testing.T) {
	t.Cleanup(func() { SetCustomEmitter(nil) })

	var gotName string
	var gotEvt WorkshopEvent
	SetCustomEmitter(func(_ context.Context, name string, evt WorkshopEvent) {
		gotName, gotEvt = name, evt
	})

	evt := NewError("generate-docs", "boom")
	Emit(context.Background(), WorkshopError, evt)
	assert.Equal(t, WorkshopError, gotName)
	assert.Equal(t, evt, gotEvt)

	SetCustomEmitter(nil)
	gotName = ""
	Emit(context.Background(), WorkshopError, evt)
	assert.Empty(t, gotName)
}

func TestEmit_ConcurrentWithEmitterSwap(t *testing.T) {
	t.Cleanup(func() { SetCustomEmitter(nil) })

	var delivered atomic.Int64
	count := func(context.Context, string, WorkshopEvent) { delivered.Add(1) }

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			Emit(context.Background(), WorkshopBusy, NewInfo("generate-code", "busy"))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			if i%2 == 0 {
				SetCustomEmitter(count)
			} else {
				SetCustomEmitter(nil)
			}
		}
	}()
	wg.Wait()

	SetCustomEmitter(count)
	before := delivered.Load()
	Emit(context.Background(), WorkshopBusy, NewInfo("generate-code", "busy"))
	assert.Equal(t, before+1, delivered.Load())
}
