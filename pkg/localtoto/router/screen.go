package router

// Screen is a type-safe identifier for screens.
type Screen int

const (
	ScreenUnknown Screen = iota

	// Auth graph
	ScreenWelcome
	ScreenLogin
	ScreenSignUp
	ScreenOTPVerify
	ScreenPermissions

	// Main graph
	ScreenHome
	ScreenBookERickshaw
	ScreenPickup
	ScreenDrop
	ScreenSolo
	ScreenSharing
	ScreenRentals
	ScreenScheduleRide
	ScreenAddStops
	ScreenFareEstimate
	ScreenConfirmRide
	ScreenSearchingDriver
	ScreenDriverComing
	ScreenInRide
	ScreenPayment
	ScreenRating
	ScreenCancelRide
	ScreenWallet
)

var screenNames = map[Screen]string{
	ScreenWelcome:         "Welcome",
	ScreenLogin:           "Login",
	ScreenSignUp:          "SignUp",
	ScreenOTPVerify:       "OTPVerify",
	ScreenPermissions:     "Permissions",
	ScreenHome:            "Home",
	ScreenBookERickshaw:   "BookERickshaw",
	ScreenPickup:          "Pickup",
	ScreenDrop:            "Drop",
	ScreenSolo:            "Solo",
	ScreenSharing:         "Sharing",
	ScreenRentals:         "Rentals",
	ScreenScheduleRide:    "ScheduleRide",
	ScreenAddStops:        "AddStops",
	ScreenFareEstimate:    "FareEstimate",
	ScreenConfirmRide:     "ConfirmRide",
	ScreenSearchingDriver: "SearchingDriver",
	ScreenDriverComing:    "DriverComing",
	ScreenInRide:          "InRide",
	ScreenPayment:         "Payment",
	ScreenRating:          "Rating",
	ScreenCancelRide:      "CancelRide",
	ScreenWallet:          "Wallet",
}

// String returns the route name of the screen.
func (s Screen) String() string {
	if name, ok := screenNames[s]; ok {
		return name
	}
	return "Unknown"
}
