package router_test

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/localtoto/localtoto/pkg/localtoto/router"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

// Example walks the booking flow from the pickup search to a confirmed ride.
func Example() {
	nav := router.NewNavigator(router.MainGraph, router.BookERickshawParams{}, quiet)

	nav.Navigate(router.PickupParams{})
	nav.Navigate(router.DropParams{PickupLocation: "Home"})
	nav.Navigate(router.FareEstimateParams{Pickup: "Home", Dropoff: "National Museum"})

	for _, f := range nav.Frames() {
		fmt.Println(f.Screen)
	}

	drop := nav.Frames()[2].Params.(router.DropParams)
	fmt.Println("pickup:", drop.PickupLocationOrDefault())

	// Output:
	// BookERickshaw
	// Pickup
	// Drop
	// FareEstimate
	// pickup: Home
}

// Example_backNavigation shows that the root frame cannot be popped.
func Example_backNavigation() {
	nav := router.NewNavigator(router.AuthGraph, router.AuthGraph.Entry(), quiet)

	nav.Navigate(router.SignUpParams{})
	fmt.Println(nav.GoBack(), nav.Visible().Screen)
	fmt.Println(nav.GoBack(), nav.Visible().Screen)

	// Output:
	// true Welcome
	// false Welcome
}

// Example_reset shows a terminal flow discarding its history.
func Example_reset() {
	nav := router.NewNavigator(router.MainGraph, router.BookERickshawParams{}, quiet)
	nav.OnChange(func(c router.Change) {
		if c.Op == router.OpReset {
			fmt.Printf("reset to %s, dropped %d frames\n", c.Visible.Screen, len(c.Dropped))
		}
	})

	nav.Navigate(router.InRideParams{})
	nav.Navigate(router.PaymentParams{})
	nav.Navigate(router.RatingParams{DriverName: "John Doe"})
	nav.Reset(router.PickupParams{})

	fmt.Println("depth:", nav.Depth(), "can go back:", nav.CanGoBack())

	// Output:
	// reset to Pickup, dropped 4 frames
	// depth: 1 can go back: false
}
