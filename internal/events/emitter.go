package events

import (
	"context"
	"sync/atomic"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// EmitterFunc delivers a workshop event under the given name.
type EmitterFunc func(ctx context.Context, name string, evt WorkshopEvent)

func noopEmitter(context.Context, string, WorkshopEvent) {}

var emitter atomic.Pointer[EmitterFunc]

func init() {
	SetCustomEmitter(nil)
}

// Emit publishes a workshop event. It is a no-op until a runtime or custom
// emitter is installed, so packages can emit freely under test. Safe to call
// from timer goroutines while the emitter is being swapped.
func Emit(ctx context.Context, name string, evt WorkshopEvent) {
	(*emitter.Load())(ctx, name, evt)
}

func EnableRuntimeEmitter() {
	SetCustomEmitter(func(ctx context.Context, name string, evt WorkshopEvent) {
		runtime.EventsEmit(ctx, name, evt)
		logRuntimeEvent(ctx, name, evt)
	})
}

// SetCustomEmitter replaces the active emitter; nil restores the no-op.
func SetCustomEmitter(f EmitterFunc) {
	if f == nil {
		f = noopEmitter
	}
	emitter.Store(&f)
}
