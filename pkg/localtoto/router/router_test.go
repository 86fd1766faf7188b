package router

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestNavigateMakesFrameVisible(t *testing.T) {
	nav := NewNavigator(MainGraph, BookERickshawParams{}, discard)

	params := ConfirmRideParams{
		RideID:        "electric-auto-1",
		DriverName:    "John Doe",
		VehicleNumber: "E-AUTO-001",
		Price:         "₦1,200",
		ETA:           "3 min",
	}
	nav.Navigate(params)

	visible := nav.Visible()
	assert.Equal(t, ScreenConfirmRide, visible.Screen)
	assert.Equal(t, params, visible.Params)
	assert.Equal(t, 2, nav.Depth())
	assert.NotEmpty(t, visible.ID)
}

func TestGoBackAtRootIsNoOp(t *testing.T) {
	nav := NewNavigator(AuthGraph, AuthGraph.Entry(), discard)
	before := nav.Visible()

	assert.False(t, nav.CanGoBack())
	assert.False(t, nav.GoBack())
	assert.Equal(t, 1, nav.Depth())
	assert.Equal(t, before, nav.Visible())
}

func TestGoBackRestoresPreviousFrame(t *testing.T) {
	nav := NewNavigator(MainGraph, BookERickshawParams{}, discard)
	nav.Navigate(DropParams{PickupLocation: "Work"})
	drop := nav.Visible()
	nav.Navigate(FareEstimateParams{Pickup: "Work", Dropoff: "Airport"})

	var dropped []Frame
	nav.OnChange(func(c Change) { dropped = append(dropped, c.Dropped...) })

	require.True(t, nav.GoBack())
	assert.Equal(t, drop, nav.Visible())
	require.Len(t, dropped, 1)
	assert.Equal(t, ScreenFareEstimate, dropped[0].Screen)
}

func TestResetAlwaysYieldsSingleFrame(t *testing.T) {
	for _, depth := range []int{0, 1, 5} {
		nav := NewNavigator(MainGraph, BookERickshawParams{}, discard)
		for i := 0; i < depth; i++ {
			nav.Navigate(PickupParams{})
		}
		nav.Reset(PickupParams{})

		assert.Equal(t, 1, nav.Depth(), "prior depth %d", depth+1)
		assert.Equal(t, ScreenPickup, nav.Visible().Screen)
		assert.Equal(t, PickupParams{}, nav.Visible().Params)
	}
}

func TestNavigateToUndeclaredScreenPanics(t *testing.T) {
	nav := NewNavigator(AuthGraph, AuthGraph.Entry(), discard)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, IsInvariantError(err))
		assert.True(t, errors.Is(err, ErrUndeclaredScreen))
		assert.Equal(t, 1, nav.Depth())
	}()

	nav.Navigate(FareEstimateParams{})
}

func TestResetToUndeclaredScreenPanics(t *testing.T) {
	nav := NewNavigator(MainGraph, BookERickshawParams{}, discard)
	assert.Panics(t, func() { nav.Reset(OTPVerifyParams{}) })
	assert.Equal(t, ScreenBookERickshaw, nav.Visible().Screen)
}

func TestNilParamsPanics(t *testing.T) {
	nav := NewNavigator(MainGraph, BookERickshawParams{}, discard)
	assert.PanicsWithError(t, "router: navigate Unknown in MainGraph: nil params", func() {
		nav.Navigate(nil)
	})
}

func TestMountOutsideGraphPanics(t *testing.T) {
	assert.Panics(t, func() { NewNavigator(AuthGraph, HomeParams{}, discard) })
}

func TestGraphsAreDisjoint(t *testing.T) {
	for _, s := range AuthGraph.Screens() {
		assert.False(t, MainGraph.Declares(s), "%s declared in both graphs", s)
	}
	assert.True(t, MainGraph.Declares(ScreenBookERickshaw))
	assert.Equal(t, ScreenWelcome, AuthGraph.Entry().Screen())
	assert.Equal(t, ScreenHome, MainGraph.Entry().Screen())
}

func TestCanTransition(t *testing.T) {
	assert.True(t, MainGraph.CanTransition(ScreenFareEstimate, ScreenConfirmRide))
	assert.True(t, MainGraph.CanTransition(ScreenRating, ScreenPickup))
	assert.False(t, MainGraph.CanTransition(ScreenConfirmRide, ScreenFareEstimate))
	assert.False(t, AuthGraph.CanTransition(ScreenWelcome, ScreenHome))
}

func TestOptionalParamDefaults(t *testing.T) {
	assert.Equal(t, "+91 1924904358", OTPVerifyParams{}.PhoneOrDefault())
	assert.Equal(t, "+234 800 000 0000", OTPVerifyParams{Phone: "+234 800 000 0000"}.PhoneOrDefault())
	assert.Equal(t, "Current Location", DropParams{}.PickupLocationOrDefault())
	assert.Equal(t, "Driver", RatingParams{}.DriverNameOrDefault())
	assert.Equal(t, "John Doe", RatingParams{DriverName: "John Doe"}.DriverNameOrDefault())
}

func TestScreenString(t *testing.T) {
	assert.Equal(t, "FareEstimate", ScreenFareEstimate.String())
	assert.Equal(t, "Unknown", Screen(999).String())
	assert.Equal(t, "MainGraph", MainGraphName.String())
}
