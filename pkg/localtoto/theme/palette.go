package theme

// Brand palette.
const (
	Primary       Color = 0x0A5D2C // brand green, headers
	PrimaryDark   Color = 0x064423 // pressed states
	PrimaryDarker Color = 0x042F15
	LightGreen    Color = 0xE8F5E9
	Secondary     Color = 0x4CAF50
	White         Color = 0xFFFFFF
	SurfaceGray   Color = 0xF5F5F5
	TextGreen     Color = 0x1B5E20
	BorderGreen   Color = 0xC8E6C9
	Gray          Color = 0x9E9E9E
	Amber         Color = 0xFFA000
	Red           Color = 0xD32F2F
	Black         Color = 0x000000

	BrightGreen Color = 0x22C55E // tint in dark mode, notification badge in both
)

var lightTokens = Tokens{
	Text:            TextGreen,
	TextMuted:       Secondary,
	Background:      White,
	Surface:         SurfaceGray,
	SurfaceAlt:      LightGreen,
	Tint:            Primary,
	Icon:            Gray,
	Border:          BorderGreen,
	Success:         Primary,
	Warning:         Amber,
	Danger:          Red,
	TabIconDefault:  Gray,
	TabIconSelected: Primary,
}

var darkTokens = Tokens{
	Text:            0xFFFFFF,
	TextMuted:       0x9CA3AF,
	Background:      0x111827,
	Surface:         0x1F2937,
	SurfaceAlt:      0x374151,
	Tint:            BrightGreen,
	Icon:            0x6B7280,
	Border:          0x374151,
	Success:         BrightGreen,
	Warning:         0xF59E0B,
	Danger:          0xEF4444,
	TabIconDefault:  0x6B7280,
	TabIconSelected: BrightGreen,
}

var lightNavigation = Navigation{
	Dark:         false,
	Primary:      Primary,
	Background:   White,
	Card:         SurfaceGray,
	Text:         TextGreen,
	Border:       BorderGreen,
	Notification: BrightGreen,
}

var darkNavigation = Navigation{
	Dark:         true,
	Primary:      BrightGreen,
	Background:   0x111827,
	Card:         0x1F2937,
	Text:         0xFFFFFF,
	Border:       0x374151,
	Notification: BrightGreen,
}
