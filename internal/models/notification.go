package models

import "time"

type NotificationKind string

const (
	NotificationInfo    NotificationKind = "info"
	NotificationSuccess NotificationKind = "success"
	NotificationWarn    NotificationKind = "warn"
	NotificationError   NotificationKind = "error"
)

// Notification is a transient message shown in the single feedback slot.
// A zero ExpiresAt means the item stays until replaced or cleared.
type Notification struct {
	ID        string           `json:"id"`
	Kind      NotificationKind `json:"kind"`
	Action    string           `json:"action,omitempty"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"createdAt"`
	ExpiresAt time.Time        `json:"expiresAt,omitempty"`
}
