package controller

import (
	"sync"
	"time"
)

// Kind is the notification type.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
)

// Icon returns the icon identifier shown next to a notification of kind k.
func (k Kind) Icon() string {
	switch k {
	case KindSuccess:
		return "fa-check-circle"
	case KindError:
		return "fa-exclamation-circle"
	case KindWarning:
		return "fa-exclamation-triangle"
	default:
		return "fa-info-circle"
	}
}

// NotificationTTL is how long a notification stays visible.
const NotificationTTL = 5 * time.Second

// Notification is a transient message for the user.
type Notification struct {
	ID        uint64
	Kind      Kind
	Message   string
	ExpiresAt time.Time
}

// Notifier keeps at most one visible notification. Showing a new one
// replaces the old one; each expires NotificationTTL after it was shown.
type Notifier struct {
	mu      sync.Mutex
	seq     uint64
	current *Notification

	// Now is the clock; nil means time.Now.
	Now func() time.Time

	// OnChange, if set, is called after every Show and Dismiss.
	OnChange func(Notification, bool)
}

func (n *Notifier) now() time.Time {
	if n.Now != nil {
		return n.Now()
	}
	return time.Now()
}

// Show displays msg, replacing any current notification.
func (n *Notifier) Show(kind Kind, msg string) Notification {
	n.mu.Lock()
	n.seq++
	note := Notification{
		ID:        n.seq,
		Kind:      kind,
		Message:   msg,
		ExpiresAt: n.now().Add(NotificationTTL),
	}
	n.current = &note
	cb := n.OnChange
	n.mu.Unlock()

	if cb != nil {
		cb(note, true)
	}
	return note
}

// Current returns the visible notification. Expired notifications are
// cleared on read.
func (n *Notifier) Current() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return Notification{}, false
	}
	if !n.now().Before(n.current.ExpiresAt) {
		n.current = nil
		return Notification{}, false
	}
	return *n.current, true
}

// Dismiss closes notification id. Closing one that has already been
// replaced does nothing.
func (n *Notifier) Dismiss(id uint64) bool {
	n.mu.Lock()
	if n.current == nil || n.current.ID != id {
		n.mu.Unlock()
		return false
	}
	note := *n.current
	n.current = nil
	cb := n.OnChange
	n.mu.Unlock()

	if cb != nil {
		cb(note, false)
	}
	return true
}
