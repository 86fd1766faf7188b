package localtoto

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localtoto/localtoto/pkg/localtoto/constants"
	"github.com/localtoto/localtoto/pkg/localtoto/root"
	"github.com/localtoto/localtoto/pkg/localtoto/router"
	"github.com/localtoto/localtoto/pkg/localtoto/screens"
	"github.com/localtoto/localtoto/pkg/localtoto/session"
	"github.com/localtoto/localtoto/pkg/localtoto/theme"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func newApp(t *testing.T) (*App, *root.Switch) {
	t.Helper()
	sess := session.New(quiet)
	sw := root.New(sess, quiet)
	t.Cleanup(sw.Close)
	return NewApp(sw, screens.Deps{Session: sess, Logger: quiet}, theme.Light), sw
}

func press(t *testing.T, a *App, buttons ...constants.VirtualButton) {
	t.Helper()
	for _, b := range buttons {
		require.NoError(t, a.Press(b))
	}
}

const (
	up    = constants.VirtualButtonUp
	down  = constants.VirtualButtonDown
	right = constants.VirtualButtonRight
	ok    = constants.VirtualButtonA
	back  = constants.VirtualButtonB
)

func TestStartsOnWelcome(t *testing.T) {
	a, sw := newApp(t)

	f := a.Frame()
	assert.Equal(t, root.ShowingAuthGraph, sw.State())
	assert.Equal(t, router.ScreenWelcome, f.View.Screen)
	assert.Equal(t, 0, f.Focus)

	press(t, a, back)
	assert.Equal(t, router.ScreenWelcome, a.Frame().View.Screen)

	press(t, a, ok)
	assert.Equal(t, router.ScreenSignUp, a.Frame().View.Screen)
	press(t, a, back)
	assert.Equal(t, router.ScreenWelcome, a.Frame().View.Screen)
}

func TestFocusWrapsAndSkipsInfo(t *testing.T) {
	a, _ := newApp(t)

	press(t, a, up)
	assert.Equal(t, 1, a.Frame().Focus)
	press(t, a, right)
	assert.Equal(t, 0, a.Frame().Focus)
}

func TestLoginThroughOTP(t *testing.T) {
	a, sw := newApp(t)

	press(t, a, down, ok)
	require.Equal(t, router.ScreenLogin, a.Frame().View.Screen)

	a.Type("+234 80")
	assert.True(t, a.Editing())
	a.Backspace()
	press(t, a, ok)
	assert.False(t, a.Editing())
	assert.Equal(t, "+234 8", a.Frame().View.Items[0].Value)

	press(t, a, down, ok)
	require.Equal(t, router.OTPVerifyParams{Phone: "+234 8"}, sw.Navigator().Visible().Params)

	press(t, a, down, down)
	a.Type("1")
	a.Type("2")
	f := a.Frame()
	assert.Equal(t, 3, f.Focus)
	assert.True(t, f.Editing)
	press(t, a, ok)

	f = a.Frame()
	assert.Equal(t, "1", f.View.Items[2].Value)
	assert.Equal(t, "2", f.View.Items[3].Value)

	press(t, a, down, down)
	f = a.Frame()
	require.Equal(t, "Confirm", f.View.Items[f.Focus].Label)
	assert.False(t, f.View.Items[f.Focus].Disabled)

	press(t, a, ok)
	assert.Equal(t, root.ShowingMainGraph, sw.State())
	assert.Equal(t, router.ScreenBookERickshaw, a.Frame().View.Screen)
	assert.Equal(t, 1, sw.Navigator().Depth())
}

func TestWheelEditingCancelRestores(t *testing.T) {
	a, _ := newApp(t)
	press(t, a, down, ok)

	press(t, a, ok, up, up, right)
	assert.Equal(t, "10", a.Frame().Draft)
	press(t, a, back)
	assert.Empty(t, a.Frame().View.Items[0].Value)

	press(t, a, ok, up, ok)
	assert.Equal(t, "0", a.Frame().View.Items[0].Value)
}

func TestUnitsAreDroppedWithTheirFrames(t *testing.T) {
	a, _ := newApp(t)

	press(t, a, ok)
	first := a.Unit()
	a.Type("Ada")
	press(t, a, ok)
	assert.Same(t, first, a.Unit())

	press(t, a, back, ok)
	second := a.Unit()
	assert.NotSame(t, first, second)
	assert.Empty(t, a.Frame().View.Items[0].Value)
}

func TestAlertBlocksInput(t *testing.T) {
	a, sw := newApp(t)
	sw.Navigator().Navigate(router.PermissionsParams{})

	press(t, a, down, down)
	f := a.Frame()
	require.Equal(t, "Continue", f.View.Items[f.Focus].Label)

	press(t, a, ok)
	require.NotNil(t, a.Frame().View.Alert)

	press(t, a, up)
	assert.Equal(t, f.Focus, a.Frame().Focus)

	press(t, a, ok)
	assert.Nil(t, a.Frame().View.Alert)
	assert.False(t, sw.Session().IsAuthenticated())
}

func TestLogoutRemountsAuth(t *testing.T) {
	a, sw := newApp(t)
	sw.Session().Login()
	require.Equal(t, router.ScreenBookERickshaw, a.Frame().View.Screen)

	// Home is the last entry of the booking screen.
	press(t, a, up, ok)
	require.Equal(t, router.ScreenHome, a.Frame().View.Screen)

	press(t, a, up, ok)
	assert.Equal(t, root.ShowingAuthGraph, sw.State())
	assert.Equal(t, router.ScreenWelcome, a.Frame().View.Screen)
}

func TestMenuQuitsAndStartTogglesScheme(t *testing.T) {
	a, _ := newApp(t)

	require.NoError(t, a.Press(constants.VirtualButtonStart))
	assert.Equal(t, theme.Dark, a.Frame().Scheme)

	err := a.Press(constants.VirtualButtonMenu)
	assert.True(t, IsCancelled(err))
}
