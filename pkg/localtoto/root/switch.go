// Package root mounts exactly one navigation graph at a time, chosen by the
// session's authenticated flag.
package root

import (
	"log/slog"

	"github.com/localtoto/localtoto/pkg/localtoto/router"
	"github.com/localtoto/localtoto/pkg/localtoto/session"
)

// State is the mounted flow.
type State int

const (
	ShowingAuthGraph State = iota
	ShowingMainGraph
)

func (s State) String() string {
	if s == ShowingMainGraph {
		return "ShowingMainGraph"
	}
	return "ShowingAuthGraph"
}

// MainEntry is the frame the main graph is mounted at after login.
// It overrides the graph's nominal entry.
var MainEntry router.Params = router.BookERickshawParams{}

// MountFunc is called after a graph has been mounted.
type MountFunc func(state State, nav *router.Navigator)

// Switch observes a session and swaps graphs when the flag flips. Unmounting
// a graph discards its navigator and the whole stack with it.
type Switch struct {
	session     *session.Session
	logger      *slog.Logger
	state       State
	nav         *router.Navigator
	onMount     []MountFunc
	unsubscribe func()
}

// New creates a switch mounted according to the session's current value.
func New(sess *session.Session, logger *slog.Logger) *Switch {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Switch{
		session: sess,
		logger:  logger,
	}
	s.mount(sess.IsAuthenticated())
	s.unsubscribe = sess.Subscribe(s.mount)
	return s
}

// OnMount registers fn to be called after each remount.
func (s *Switch) OnMount(fn MountFunc) *Switch {
	s.onMount = append(s.onMount, fn)
	return s
}

// State returns the mounted flow.
func (s *Switch) State() State {
	return s.state
}

// Graph returns the mounted graph.
func (s *Switch) Graph() *router.Graph {
	return s.nav.Graph()
}

// Navigator returns the navigator of the mounted graph. The value changes on
// every remount; callers must not keep it across a session flip.
func (s *Switch) Navigator() *router.Navigator {
	return s.nav
}

// Session returns the observed session.
func (s *Switch) Session() *session.Session {
	return s.session
}

// Close stops observing the session.
func (s *Switch) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

func (s *Switch) mount(authenticated bool) {
	if authenticated {
		s.state = ShowingMainGraph
		s.nav = router.NewNavigator(router.MainGraph, MainEntry, s.logger)
	} else {
		s.state = ShowingAuthGraph
		s.nav = router.NewNavigator(router.AuthGraph, router.AuthGraph.Entry(), s.logger)
	}

	s.logger.Info("graph mounted",
		"state", s.state.String(),
		"screen", s.nav.Visible().Screen.String(),
	)

	for _, fn := range s.onMount {
		fn(s.state, s.nav)
	}
}
