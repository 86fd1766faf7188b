package router

// Params is the payload carried by a navigation frame.
// Every screen has exactly one Params type; the screen a payload belongs to
// is fixed by its type, so a navigation request cannot pair a screen with
// another screen's payload.
type Params interface {
	Screen() Screen
}

// Default literals for optional parameters.
const (
	DefaultOTPPhone       = "+91 1924904358"
	DefaultPickupLocation = "Current Location"
	DefaultRatingDriver   = "Driver"
)

type WelcomeParams struct{}

type LoginParams struct{}

type SignUpParams struct{}

// OTPVerifyParams carries the contact details collected before verification.
// All fields are optional; an empty string means absent.
type OTPVerifyParams struct {
	Phone string
	Name  string
	Email string
}

// PhoneOrDefault returns the phone number the code was sent to.
func (p OTPVerifyParams) PhoneOrDefault() string {
	if p.Phone == "" {
		return DefaultOTPPhone
	}
	return p.Phone
}

type PermissionsParams struct{}

type HomeParams struct{}

type BookERickshawParams struct{}

// PickupParams optionally carries a destination chosen before the pickup.
type PickupParams struct {
	Destination string
}

// DropParams optionally carries the pickup chosen on the previous screen.
type DropParams struct {
	PickupLocation string
}

// PickupLocationOrDefault returns the pickup, falling back to the current location.
func (p DropParams) PickupLocationOrDefault() string {
	if p.PickupLocation == "" {
		return DefaultPickupLocation
	}
	return p.PickupLocation
}

type SoloParams struct{}

type SharingParams struct{}

type RentalsParams struct{}

type ScheduleRideParams struct{}

type AddStopsParams struct{}

// FareEstimateParams carries the trip endpoints. Both are empty when the
// estimate is opened from ScheduleRide or AddStops.
type FareEstimateParams struct {
	Pickup  string
	Dropoff string
}

// ConfirmRideParams is the ride selected on the fare estimate. Every field is required.
type ConfirmRideParams struct {
	RideID        string
	DriverName    string
	VehicleNumber string
	Price         string
	ETA           string
}

type SearchingDriverParams struct{}

// DriverComingParams optionally carries the driver's ETA; zero means absent.
type DriverComingParams struct {
	ETAMinutes int
}

type InRideParams struct{}

type PaymentParams struct{}

// RatingParams identifies the trip being rated. Both fields are optional.
type RatingParams struct {
	DriverName string
	RideID     string
}

// DriverNameOrDefault returns the driver's name or a generic placeholder.
func (p RatingParams) DriverNameOrDefault() string {
	if p.DriverName == "" {
		return DefaultRatingDriver
	}
	return p.DriverName
}

type CancelRideParams struct{}

type WalletParams struct{}

func (WelcomeParams) Screen() Screen         { return ScreenWelcome }
func (LoginParams) Screen() Screen           { return ScreenLogin }
func (SignUpParams) Screen() Screen          { return ScreenSignUp }
func (OTPVerifyParams) Screen() Screen       { return ScreenOTPVerify }
func (PermissionsParams) Screen() Screen     { return ScreenPermissions }
func (HomeParams) Screen() Screen            { return ScreenHome }
func (BookERickshawParams) Screen() Screen   { return ScreenBookERickshaw }
func (PickupParams) Screen() Screen          { return ScreenPickup }
func (DropParams) Screen() Screen            { return ScreenDrop }
func (SoloParams) Screen() Screen            { return ScreenSolo }
func (SharingParams) Screen() Screen         { return ScreenSharing }
func (RentalsParams) Screen() Screen         { return ScreenRentals }
func (ScheduleRideParams) Screen() Screen    { return ScreenScheduleRide }
func (AddStopsParams) Screen() Screen        { return ScreenAddStops }
func (FareEstimateParams) Screen() Screen    { return ScreenFareEstimate }
func (ConfirmRideParams) Screen() Screen     { return ScreenConfirmRide }
func (SearchingDriverParams) Screen() Screen { return ScreenSearchingDriver }
func (DriverComingParams) Screen() Screen    { return ScreenDriverComing }
func (InRideParams) Screen() Screen          { return ScreenInRide }
func (PaymentParams) Screen() Screen         { return ScreenPayment }
func (RatingParams) Screen() Screen          { return ScreenRating }
func (CancelRideParams) Screen() Screen      { return ScreenCancelRide }
func (WalletParams) Screen() Screen          { return ScreenWallet }
