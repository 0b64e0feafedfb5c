// internal/audit/audit.go

// Package audit provides a composable audit-trail capability. Components
// that want a timestamped trail take a *Trail dependency; the capability
// is injected, never inherited, so audit formatting stays decoupled from
// the component's identity.
package audit

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Entry is one timestamped audit record.
type Entry struct {
	At        time.Time
	Component string
	Message   string
}

// Trail records audit entries and mirrors them to a structured logger.
// A nil *Trail is valid and records nothing, so components can treat the
// capability as optional.
type Trail struct {
	logger *zap.Logger

	mu      sync.Mutex
	entries []Entry
}

// NewTrail creates a Trail mirroring entries to logger.
func NewTrail(logger *zap.Logger) *Trail {
	return &Trail{logger: logger.Named("audit")}
}

// Record appends one entry to the trail.
func (t *Trail) Record(component, message string) {
	if t == nil {
		return
	}
	entry := Entry{At: time.Now(), Component: component, Message: message}

	t.mu.Lock()
	t.entries = append(t.entries, entry)
	t.mu.Unlock()

	t.logger.Info(message,
		zap.String("component", component),
		zap.Time("at", entry.At),
	)
}

// Entries returns a copy of the recorded entries in order.
func (t *Trail) Entries() []Entry {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
