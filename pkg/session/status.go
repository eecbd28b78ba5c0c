package session

import (
	"sync"
	"time"
)

// DefaultStatusDelay is how long a transient status message stays visible
// before auto-clearing.
const DefaultStatusDelay = 3 * time.Second

// Status is a transient status line. Messages auto-clear after a fixed
// delay; setting a new message rearms the timer. Inline validation errors
// live elsewhere and do not auto-clear.
type Status struct {
	mu      sync.Mutex
	message string
	delay   time.Duration
	timer   *time.Timer
	after   func(time.Duration, func()) *time.Timer
}

// NewStatus returns a status line with the given auto-clear delay. A zero
// or negative delay disables auto-clearing.
func NewStatus(delay time.Duration) *Status {
	return &Status{delay: delay, after: time.AfterFunc}
}

// Set publishes a message and rearms the auto-clear timer.
func (s *Status) Set(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.message = message
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.delay <= 0 || message == "" {
		return
	}
	s.timer = s.after(s.delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.message = ""
		s.timer = nil
	})
}

// Message returns the current message, or "" once it has cleared.
func (s *Status) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// Clear drops the message immediately.
func (s *Status) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = ""
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
