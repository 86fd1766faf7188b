// Package router provides screen navigation with explicit data flow.
//
// A Graph declares the screens of one flow and the transitions between them.
// A Navigator mounts a graph and owns its stack of frames; each frame pairs a
// Screen with the Params it was opened with. Params is a closed set of
// per-screen payload types, so the screen of a frame is always the screen its
// payload belongs to.
//
// # Basic Usage
//
//	nav := router.NewNavigator(router.MainGraph, router.BookERickshawParams{}, logger)
//
//	nav.Navigate(router.DropParams{PickupLocation: "Home"})
//	nav.Navigate(router.FareEstimateParams{Pickup: "Home", Dropoff: "Airport"})
//
//	frame := nav.Visible() // FareEstimate
//	nav.GoBack()           // Drop
//
//	// Terminal flows discard the history so back cannot return to them.
//	nav.Reset(router.PickupParams{})
//
// # Invariants
//
// Navigate and Reset panic with an *InvariantError when the requested screen
// is not declared by the mounted graph. GoBack never removes the root frame;
// it reports false instead and the caller disables its back affordance.
//
// # Observing changes
//
// OnChange callbacks run synchronously after each mutation and receive the
// frames that were dropped, which lets the presentation layer release any
// state it keeps per frame.
package router
