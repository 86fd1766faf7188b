package screens

import (
	"fmt"

	"github.com/localtoto/localtoto/pkg/localtoto/router"
)

// Build mounts the unit for frame. It panics if the frame's params have no
// unit, which can only happen when a screen is declared without one.
func Build(frame router.Frame, deps Deps) *Unit {
	ctx := NewContext(deps)
	return &Unit{frame: frame, ctx: ctx, content: contentFor(ctx, frame.Params)}
}

func contentFor(ctx *Context, params router.Params) content {
	switch p := params.(type) {
	case router.WelcomeParams:
		return NewWelcome(ctx)
	case router.LoginParams:
		return NewLogin(ctx)
	case router.SignUpParams:
		return NewSignUp(ctx)
	case router.OTPVerifyParams:
		return NewOTPVerify(ctx, p)
	case router.PermissionsParams:
		return NewPermissions(ctx)
	case router.HomeParams:
		return NewHome(ctx)
	case router.BookERickshawParams:
		return NewBookERickshaw(ctx)
	case router.PickupParams:
		return NewPickup(ctx, p)
	case router.DropParams:
		return NewDrop(ctx, p)
	case router.SoloParams:
		return NewSolo(ctx)
	case router.SharingParams:
		return NewSharing(ctx)
	case router.RentalsParams:
		return NewRentals(ctx)
	case router.ScheduleRideParams:
		return NewScheduleRide(ctx)
	case router.AddStopsParams:
		return NewAddStops(ctx)
	case router.FareEstimateParams:
		return NewFareEstimate(ctx, p)
	case router.ConfirmRideParams:
		return NewConfirmRide(ctx, p)
	case router.SearchingDriverParams:
		return NewSearchingDriver(ctx)
	case router.DriverComingParams:
		return NewDriverComing(ctx, p)
	case router.InRideParams:
		return NewInRide(ctx)
	case router.PaymentParams:
		return NewPayment(ctx)
	case router.RatingParams:
		return NewRating(ctx, p)
	case router.CancelRideParams:
		return NewCancelRide(ctx)
	case router.WalletParams:
		return NewWallet(ctx)
	default:
		panic(fmt.Sprintf("screens: no unit for %T", params))
	}
}
