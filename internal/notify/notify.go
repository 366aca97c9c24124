// Package notify collects transient, severity-tagged messages reporting the
// outcome of cart mutations and checkout attempts.
package notify

import (
	"sync"
	"time"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Sink accepts one notification per call. Implementations must not
// deduplicate or drop messages; stacking is unbounded.
type Sink interface {
	Notify(message string, severity Severity)
}

type Toast struct {
	Message   string
	Severity  Severity
	At        time.Time
	ExpiresAt time.Time
}

// DefaultTTL is how long an undismissed toast stays visible.
const DefaultTTL = 5 * time.Second

// Stack holds toasts in arrival order. Every Notify call appends an
// independent toast with its own expiry; nothing is coalesced.
type Stack struct {
	mu     sync.Mutex
	toasts []Toast
	ttl    time.Duration
	now    func() time.Time
}

type StackOption func(*Stack)

func WithClock(now func() time.Time) StackOption {
	return func(s *Stack) { s.now = now }
}

func WithTTL(ttl time.Duration) StackOption {
	return func(s *Stack) { s.ttl = ttl }
}

func NewStack(opts ...StackOption) *Stack {
	s := &Stack{
		ttl: DefaultTTL,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Stack) Notify(message string, severity Severity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.toasts = append(s.toasts, Toast{
		Message:   message,
		Severity:  severity,
		At:        now,
		ExpiresAt: now.Add(s.ttl),
	})
}

// Active returns the toasts whose expiry has not passed, in arrival order.
func (s *Stack) Active(now time.Time) []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()

	var active []Toast
	for _, t := range s.toasts {
		if t.ExpiresAt.After(now) {
			active = append(active, t)
		}
	}
	return active
}

// Flush returns every pending toast in arrival order and empties the stack.
// This is the dismiss-all path the CLI uses after each command.
func (s *Stack) Flush() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()

	toasts := s.toasts
	s.toasts = nil
	return toasts
}

func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.toasts)
}
