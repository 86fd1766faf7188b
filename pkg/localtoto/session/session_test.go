package session

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newQuiet() *Session {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestStartsUnauthenticated(t *testing.T) {
	assert.False(t, newQuiet().IsAuthenticated())
}

func TestLoginLogout(t *testing.T) {
	s := newQuiet()

	s.Login()
	assert.True(t, s.IsAuthenticated())
	s.Login()
	assert.True(t, s.IsAuthenticated())
	s.Logout()
	assert.False(t, s.IsAuthenticated())
}

func TestObserversOnlySeeFlips(t *testing.T) {
	s := newQuiet()
	var seen []bool
	s.Subscribe(func(v bool) { seen = append(seen, v) })

	s.Logout()
	s.Login()
	s.Login()
	s.Logout()

	assert.Equal(t, []bool{true, false}, seen)
}

func TestObserversRunInOrderAndUnsubscribe(t *testing.T) {
	s := newQuiet()
	var calls []string
	s.Subscribe(func(bool) { calls = append(calls, "first") })
	stop := s.Subscribe(func(bool) { calls = append(calls, "second") })
	s.Subscribe(func(bool) { calls = append(calls, "third") })

	s.Login()
	stop()
	s.Logout()

	assert.Equal(t, []string{"first", "second", "third", "first", "third"}, calls)
}

func TestReadAfterWriteInsideObserver(t *testing.T) {
	s := newQuiet()
	var observed bool
	s.Subscribe(func(bool) { observed = s.IsAuthenticated() })

	s.Login()
	assert.True(t, observed)
}
