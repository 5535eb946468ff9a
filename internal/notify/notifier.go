// Package notify carries transient, user-facing notifications. The booking
// client itself never raises them; callers push one whenever an upstream
// outcome comes back failed, which keeps the data layer free of UI concerns.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Level classifies a notification.
type Level string

const (
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Notification is one transient message shown to the operator.
type Notification struct {
	Level    Level     `json:"level"`
	Message  string    `json:"message"`
	RaisedAt time.Time `json:"raised_at"`
}

// Notifier raises transient notifications.
type Notifier interface {
	Notify(ctx context.Context, level Level, message string)
}

// Hub is the default Notifier: it logs each notification and keeps a bounded
// ring of recent entries for the dashboard to poll.
type Hub struct {
	log zerolog.Logger

	mu      sync.RWMutex
	entries []Notification
	limit   int
}

// NewHub creates a hub retaining up to limit recent notifications.
func NewHub(log zerolog.Logger, limit int) *Hub {
	if limit <= 0 {
		limit = 100
	}
	return &Hub{
		log:   log.With().Str("component", "notify").Logger(),
		limit: limit,
	}
}

// Notify records the notification and logs it at the matching level.
func (h *Hub) Notify(ctx context.Context, level Level, message string) {
	entry := Notification{Level: level, Message: message, RaisedAt: time.Now().UTC()}

	h.mu.Lock()
	h.entries = append(h.entries, entry)
	if len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
	h.mu.Unlock()

	event := h.log.Info()
	switch level {
	case LevelWarn:
		event = h.log.Warn()
	case LevelError:
		event = h.log.Error()
	}
	event.Str("level", string(level)).Msg(message)
}

// Recent returns the retained notifications, newest last.
func (h *Hub) Recent() []Notification {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Notification, len(h.entries))
	copy(out, h.entries)
	return out
}

// Ensure interface compliance.
var _ Notifier = (*Hub)(nil)
