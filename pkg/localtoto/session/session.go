// Package session holds the process-wide authenticated flag that decides
// which navigation graph is mounted.
//
// There is exactly one Session per process. It is created by the program
// entry point and handed to whoever needs it; nothing looks it up globally.
package session

import (
	"log/slog"
	"sync"

	"go.uber.org/atomic"
)

// Observer is notified with the new value each time the flag flips.
type Observer func(authenticated bool)

// Session is the single authenticated/unauthenticated flag.
type Session struct {
	authenticated *atomic.Bool
	logger        *slog.Logger

	mu        sync.Mutex
	nextID    int
	observers map[int]Observer
	order     []int
}

// New creates an unauthenticated session.
func New(logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		authenticated: atomic.NewBool(false),
		logger:        logger,
		observers:     make(map[int]Observer),
	}
}

// Login marks the session authenticated.
func (s *Session) Login() {
	s.set(true)
}

// Logout marks the session unauthenticated.
func (s *Session) Logout() {
	s.set(false)
}

// IsAuthenticated reports the current value of the flag.
func (s *Session) IsAuthenticated() bool {
	return s.authenticated.Load()
}

// Subscribe registers fn to run after every flip, in subscription order.
// Calls that do not change the flag do not notify. The returned function
// removes the subscription.
func (s *Session) Subscribe(fn Observer) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.order = append(s.order, id)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

func (s *Session) set(value bool) {
	if s.authenticated.Swap(value) == value {
		return
	}

	s.logger.Info("session changed", "authenticated", value)

	s.mu.Lock()
	observers := make([]Observer, 0, len(s.order))
	for _, id := range s.order {
		observers = append(observers, s.observers[id])
	}
	s.mu.Unlock()

	for _, fn := range observers {
		fn(value)
	}
}
