package root

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localtoto/localtoto/pkg/localtoto/router"
	"github.com/localtoto/localtoto/pkg/localtoto/session"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestInitialStateIsAuth(t *testing.T) {
	sw := New(session.New(quiet), quiet)

	assert.Equal(t, ShowingAuthGraph, sw.State())
	assert.Equal(t, router.AuthGraphName, sw.Graph().Name())
	assert.Equal(t, router.ScreenWelcome, sw.Navigator().Visible().Screen)
}

func TestLoginMountsMainAtOverriddenEntry(t *testing.T) {
	sess := session.New(quiet)
	sw := New(sess, quiet)

	sess.Login()

	require.Equal(t, ShowingMainGraph, sw.State())
	assert.Equal(t, router.MainGraphName, sw.Graph().Name())
	assert.Equal(t, router.ScreenBookERickshaw, sw.Navigator().Visible().Screen)
	assert.Equal(t, 1, sw.Navigator().Depth())
}

func TestLogoutDiscardsMainStack(t *testing.T) {
	sess := session.New(quiet)
	sw := New(sess, quiet)

	sess.Login()
	mainNav := sw.Navigator()
	mainNav.Navigate(router.PickupParams{})
	mainNav.Navigate(router.DropParams{})

	sess.Logout()
	assert.Equal(t, ShowingAuthGraph, sw.State())
	assert.Equal(t, router.ScreenWelcome, sw.Navigator().Visible().Screen)
	assert.Equal(t, 1, sw.Navigator().Depth())

	sess.Login()
	assert.NotSame(t, mainNav, sw.Navigator())
	assert.Equal(t, 1, sw.Navigator().Depth())
}

func TestRepeatedLoginKeepsStack(t *testing.T) {
	sess := session.New(quiet)
	sw := New(sess, quiet)
	sess.Login()
	sw.Navigator().Navigate(router.PickupParams{})

	sess.Login()
	assert.Equal(t, 2, sw.Navigator().Depth())
}

func TestMountedGraphFollowsLastCall(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for run := 0; run < 50; run++ {
		sess := session.New(quiet)
		sw := New(sess, quiet)
		last := ""

		for i := rng.Intn(12); i > 0; i-- {
			if rng.Intn(2) == 0 {
				sess.Login()
				last = "login"
			} else {
				sess.Logout()
				last = "logout"
			}
		}

		want := router.AuthGraphName
		if last == "login" {
			want = router.MainGraphName
		}
		assert.Equal(t, want, sw.Graph().Name(), "run %d", run)
	}
}

func TestOnMountAndClose(t *testing.T) {
	sess := session.New(quiet)
	sw := New(sess, quiet)
	var states []State
	sw.OnMount(func(s State, _ *router.Navigator) { states = append(states, s) })

	sess.Login()
	sess.Logout()
	sw.Close()
	sess.Login()

	assert.Equal(t, []State{ShowingMainGraph, ShowingAuthGraph}, states)
	assert.Equal(t, ShowingAuthGraph, sw.State())
}

func TestStartsMainWhenAlreadyAuthenticated(t *testing.T) {
	sess := session.New(quiet)
	sess.Login()

	sw := New(sess, quiet)
	assert.Equal(t, ShowingMainGraph, sw.State())
	assert.Equal(t, "ShowingMainGraph", sw.State().String())
}
