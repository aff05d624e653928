package workshop

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"atum/internal/models"
)

// DefaultNotificationTTL is how long a notification stays visible.
const DefaultNotificationTTL = 3 * time.Second

// Mailbox is a single-slot holder. Posting replaces whatever is current and
// restarts the expiry timer; a ttl of zero keeps items until replaced or
// cleared.
type Mailbox struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *models.Notification
	timer   *time.Timer
	now     func() time.Time

	// onExpire runs outside the lock after a timed-out item is removed.
	onExpire func(models.Notification)
}

func NewMailbox(ttl time.Duration, onExpire func(models.Notification)) *Mailbox {
	return &Mailbox{ttl: ttl, onExpire: onExpire, now: time.Now}
}

func (m *Mailbox) Post(kind models.NotificationKind, action Action, message string) models.Notification {
	now := m.now()
	n := models.Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Action:    string(action),
		Message:   message,
		CreatedAt: now,
	}
	if m.ttl > 0 {
		n.ExpiresAt = now.Add(m.ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopTimerLocked()
	m.current = &n
	if m.ttl > 0 {
		id := n.ID
		m.timer = time.AfterFunc(m.ttl, func() { m.expire(id) })
	}
	return n
}

func (m *Mailbox) expire(id string) {
	m.mu.Lock()
	if m.current == nil || m.current.ID != id {
		m.mu.Unlock()
		return
	}
	expired := *m.current
	m.current = nil
	m.timer = nil
	m.mu.Unlock()

	if m.onExpire != nil {
		m.onExpire(expired)
	}
}

// Current returns the visible item, if any.
func (m *Mailbox) Current() (models.Notification, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return models.Notification{}, false
	}
	return *m.current, true
}

// Clear removes the current item. It returns false if the slot was empty.
func (m *Mailbox) Clear() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopTimerLocked()
	had := m.current != nil
	m.current = nil
	return had
}

// ClearIf removes the current item only when it belongs to action.
func (m *Mailbox) ClearIf(action Action) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil || m.current.Action != string(action) {
		return false
	}
	m.stopTimerLocked()
	m.current = nil
	return true
}

func (m *Mailbox) stopTimerLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

func (m *Mailbox) ptr() *models.Notification {
	n, ok := m.Current()
	if !ok {
		return nil
	}
	return &n
}

// Feedback groups the two single-slot surfaces of the screen: the sticky
// error banner and the expiring notification toast.
type Feedback struct {
	Errors  *Mailbox
	Notices *Mailbox
}

func NewFeedback(ttl time.Duration, onNoticeExpire func(models.Notification)) Feedback {
	return Feedback{
		Errors:  NewMailbox(0, nil),
		Notices: NewMailbox(ttl, onNoticeExpire),
	}
}
