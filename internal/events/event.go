package events

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventInfo    EventType = "info"
	EventWarn    EventType = "warn"
	EventSuccess EventType = "success"
	EventError   EventType = "error"
)

const (
	WorkshopBusy              = "events:workshop:busy"
	WorkshopResult            = "events:workshop:result"
	WorkshopNotification      = "events:workshop:notification"
	WorkshopNotificationClear = "events:workshop:notification:cleared"
	WorkshopError             = "events:workshop:error"
)

// WorkshopEvent is the payload pushed to the frontend for controller changes.
type WorkshopEvent struct {
	ID        string            `json:"id"`
	Type      EventType         `json:"type"`
	Action    string            `json:"action,omitempty"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

func CreateWorkshopEvent(eventType EventType, action, message string) WorkshopEvent {
	return WorkshopEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Action:    action,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewInfo creates an info WorkshopEvent.
func NewInfo(action, message string) WorkshopEvent {
	return CreateWorkshopEvent(EventInfo, action, message)
}

// NewWarn creates a warn WorkshopEvent.
func NewWarn(action, message string) WorkshopEvent {
	return CreateWorkshopEvent(EventWarn, action, message)
}

// NewError creates an error WorkshopEvent.
func NewError(action, message string) WorkshopEvent {
	return CreateWorkshopEvent(EventError, action, message)
}

// NewSuccess creates a success WorkshopEvent.
func NewSuccess(action, message string) WorkshopEvent {
	return CreateWorkshopEvent(EventSuccess, action, message)
}
