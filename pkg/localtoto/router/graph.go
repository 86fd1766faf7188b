package router

// GraphName identifies one of the two top-level flows.
type GraphName int

const (
	AuthGraphName GraphName = iota
	MainGraphName
)

func (n GraphName) String() string {
	switch n {
	case AuthGraphName:
		return "AuthGraph"
	case MainGraphName:
		return "MainGraph"
	default:
		return "UnknownGraph"
	}
}

// Graph is the static set of screens and permitted transitions of one flow.
// Graphs are immutable once built.
type Graph struct {
	name    GraphName
	entry   Params
	screens map[Screen]struct{}
	edges   map[Screen]map[Screen]struct{}
}

// NewGraph builds a graph from its entry frame and its edges. Every screen
// named by an edge is declared; the entry screen is always declared.
func NewGraph(name GraphName, entry Params, edges map[Screen][]Screen) *Graph {
	g := &Graph{
		name:    name,
		entry:   entry,
		screens: make(map[Screen]struct{}),
		edges:   make(map[Screen]map[Screen]struct{}),
	}
	g.screens[entry.Screen()] = struct{}{}

	for from, targets := range edges {
		g.screens[from] = struct{}{}
		if g.edges[from] == nil {
			g.edges[from] = make(map[Screen]struct{}, len(targets))
		}
		for _, to := range targets {
			g.screens[to] = struct{}{}
			g.edges[from][to] = struct{}{}
		}
	}

	return g
}

// Name returns the graph's name.
func (g *Graph) Name() GraphName {
	return g.name
}

// Entry returns the declared entry frame params.
func (g *Graph) Entry() Params {
	return g.entry
}

// Declares reports whether screen belongs to the graph.
func (g *Graph) Declares(screen Screen) bool {
	_, ok := g.screens[screen]
	return ok
}

// CanTransition reports whether from → to is a declared edge.
func (g *Graph) CanTransition(from, to Screen) bool {
	_, ok := g.edges[from][to]
	return ok
}

// Screens returns the declared screens in identifier order.
func (g *Graph) Screens() []Screen {
	out := make([]Screen, 0, len(g.screens))
	for s := ScreenUnknown; s <= ScreenWallet; s++ {
		if _, ok := g.screens[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// AuthGraph is the sign-in flow mounted while the session is unauthenticated.
var AuthGraph = NewGraph(AuthGraphName, WelcomeParams{}, map[Screen][]Screen{
	ScreenWelcome:   {ScreenSignUp, ScreenLogin},
	ScreenLogin:     {ScreenOTPVerify},
	ScreenSignUp:    {ScreenOTPVerify, ScreenLogin},
	ScreenOTPVerify: {ScreenPermissions},
})

// MainGraph is the booking flow mounted while the session is authenticated.
// Its nominal entry is Home; the root switch mounts it at BookERickshaw.
var MainGraph = NewGraph(MainGraphName, HomeParams{}, map[Screen][]Screen{
	ScreenHome: {
		ScreenPickup, ScreenSolo, ScreenSharing, ScreenRentals,
		ScreenHome, ScreenWallet,
	},
	ScreenBookERickshaw:   {ScreenPickup, ScreenDrop, ScreenHome, ScreenScheduleRide, ScreenAddStops},
	ScreenPickup:          {ScreenDrop},
	ScreenDrop:            {ScreenFareEstimate},
	ScreenSolo:            {ScreenPickup},
	ScreenScheduleRide:    {ScreenFareEstimate},
	ScreenAddStops:        {ScreenFareEstimate},
	ScreenFareEstimate:    {ScreenConfirmRide},
	ScreenConfirmRide:     {ScreenSearchingDriver},
	ScreenSearchingDriver: {ScreenDriverComing},
	ScreenDriverComing:    {ScreenCancelRide, ScreenInRide},
	ScreenInRide:          {ScreenPayment},
	ScreenPayment:         {ScreenRating},
	ScreenRating:          {ScreenPickup},
	ScreenSharing:         {},
	ScreenRentals:         {},
	ScreenWallet:          {},
	ScreenCancelRide:      {},
})
