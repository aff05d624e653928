package events

import (
	"context"
	"encoding/json"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

func logRuntimeEvent(ctx context.Context, name string, event WorkshopEvent) {
	data, err := json.Marshal(struct {
		Name string `json:"name"`
		WorkshopEvent
	}{Name: name, WorkshopEvent: event})
	if err != nil {
		runtime.LogError(ctx, "loggers: failed to marshal workshop event: "+err.Error())
		return
	}

	payload := string(data)

	switch event.Type {
	case EventError:
		runtime.LogError(ctx, payload)
	case EventWarn:
		runtime.LogWarning(ctx, payload)
	case EventSuccess, EventInfo:
		runtime.LogInfo(ctx, payload)
	default:
		runtime.LogDebug(ctx, payload)
	}
}
