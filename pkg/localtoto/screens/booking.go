package screens

import (
	"strconv"
	"strings"

	"github.com/localtoto/localtoto/pkg/localtoto/catalog"
	"github.com/localtoto/localtoto/pkg/localtoto/router"
)

// Home is the dashboard with ride types, saved places and the tab bar.
type Home struct {
	ctx *Context
}

func NewHome(ctx *Context) *Home {
	return &Home{ctx: ctx}
}

func (h *Home) page() page {
	nav := h.ctx.Nav
	entries := []entry{
		button(h.ctx.t("HomeTitle"), func() { nav.Navigate(router.PickupParams{}) }).icon("search"),
		button(h.ctx.t("HomeSolo"), func() { nav.Navigate(router.SoloParams{}) }).icon("person"),
		button(h.ctx.t("HomeSharing"), func() { nav.Navigate(router.SharingParams{}) }).icon("people"),
		button(h.ctx.t("HomeRentals"), func() { nav.Navigate(router.RentalsParams{}) }).icon("time"),
	}

	for _, place := range h.ctx.Catalog.SavedPlaces {
		dest := place.Name
		entries = append(entries,
			button(place.Name, func() { nav.Navigate(router.PickupParams{Destination: dest}) }).
				detail(place.Address).
				icon(place.Icon),
		)
	}

	// Map and Profile have no screens; their tabs stay inert.
	entries = append(entries,
		button(h.ctx.t("HomeTabHome"), func() { nav.Navigate(router.HomeParams{}) }).icon("home"),
		button(h.ctx.t("HomeTabMap"), nil).disabled(true).icon("map"),
		button(h.ctx.t("HomeTabWallet"), func() { nav.Navigate(router.WalletParams{}) }).icon("wallet"),
		button(h.ctx.t("HomeTabProfile"), nil).disabled(true).icon("person-circle"),
		button(h.ctx.t("Logout"), h.ctx.Session.Logout).icon("log-out"),
	)

	return page{title: h.ctx.t("AppName"), entries: entries}
}

// BookERickshaw is the screen the main flow opens on after login.
type BookERickshaw struct {
	ctx *Context
}

func NewBookERickshaw(ctx *Context) *BookERickshaw {
	return &BookERickshaw{ctx: ctx}
}

func (b *BookERickshaw) page() page {
	nav := b.ctx.Nav
	return page{
		title: b.ctx.t("BookTitle"),
		entries: []entry{
			button(b.ctx.t("BookPickupField"), func() { nav.Navigate(router.PickupParams{}) }).icon("radio-button-on"),
			button(b.ctx.t("BookDropField"), func() { nav.Navigate(router.DropParams{}) }).icon("location"),
			button(b.ctx.t("BookSchedule"), func() { nav.Navigate(router.ScheduleRideParams{}) }).icon("calendar"),
			button(b.ctx.t("BookAddStops"), func() { nav.Navigate(router.AddStopsParams{}) }).icon("add-circle"),
			button(b.ctx.t("HomeTabHome"), func() { nav.Navigate(router.HomeParams{}) }).icon("home"),
		},
	}
}

// Pickup searches for the pickup point.
type Pickup struct {
	ctx    *Context
	params router.PickupParams
	search string
}

func NewPickup(ctx *Context, params router.PickupParams) *Pickup {
	return &Pickup{ctx: ctx, params: params}
}

// SetSearch updates the search text.
func (p *Pickup) SetSearch(q string) {
	p.search = q
}

// Suggestions returns the pickup suggestions matching the search.
func (p *Pickup) Suggestions() []catalog.Place {
	return catalog.FilterPlaces(p.ctx.Catalog.PickupSuggestions, p.search)
}

// Choose continues to the drop screen with the chosen pickup.
func (p *Pickup) Choose(place string) {
	p.ctx.Nav.Navigate(router.DropParams{PickupLocation: place})
}

func (p *Pickup) page() page {
	var lines []string
	if p.params.Destination != "" {
		lines = append(lines, p.ctx.t("SoloDestination")+": "+p.params.Destination)
	}

	entries := []entry{
		input(p.ctx.t("SearchField"), p.search, p.SetSearch).icon("search"),
		button(p.ctx.t("UseCurrentLocation"), func() { p.Choose(router.DefaultPickupLocation) }).icon("locate"),
	}
	suggestions := p.Suggestions()
	for _, place := range suggestions {
		title := place.Title
		entries = append(entries, button(title, func() { p.Choose(title) }).detail(place.Area).icon(place.Icon))
	}
	if len(suggestions) == 0 {
		entries = append(entries, info(p.ctx.t("NoResults"), ""))
	}

	return page{title: p.ctx.t("PickupTitle"), lines: lines, entries: entries}
}

// Drop searches for the destination.
type Drop struct {
	ctx    *Context
	params router.DropParams
	search string
}

func NewDrop(ctx *Context, params router.DropParams) *Drop {
	return &Drop{ctx: ctx, params: params}
}

// PickupLocation is the pickup the fare will be estimated from.
func (d *Drop) PickupLocation() string {
	return d.params.PickupLocationOrDefault()
}

// SetSearch updates the search text.
func (d *Drop) SetSearch(q string) {
	d.search = q
}

// Suggestions returns the destinations matching the search.
func (d *Drop) Suggestions() []catalog.Place {
	return catalog.FilterPlaces(d.ctx.Catalog.DropSuggestions, d.search)
}

// Choose continues to the fare estimate.
func (d *Drop) Choose(dropoff string) {
	d.ctx.Nav.Navigate(router.FareEstimateParams{Pickup: d.PickupLocation(), Dropoff: dropoff})
}

func (d *Drop) page() page {
	entries := []entry{
		input(d.ctx.t("SearchField"), d.search, d.SetSearch).icon("search"),
	}
	suggestions := d.Suggestions()
	for _, place := range suggestions {
		title := place.Title
		entries = append(entries, button(title, func() { d.Choose(title) }).detail(place.Area).icon(place.Icon))
	}
	if len(suggestions) == 0 {
		entries = append(entries, info(d.ctx.t("NoResults"), ""))
	}

	return page{
		title:   d.ctx.t("DropTitle"),
		lines:   []string{d.ctx.tf("PickupFrom", map[string]any{"Pickup": d.PickupLocation()})},
		entries: entries,
	}
}

// Solo books a single-rider trip starting from a destination.
type Solo struct {
	ctx         *Context
	pickup      string
	destination string
}

func NewSolo(ctx *Context) *Solo {
	return &Solo{ctx: ctx, pickup: router.DefaultPickupLocation}
}

func (s *Solo) SetPickup(v string)      { s.pickup = v }
func (s *Solo) SetDestination(v string) { s.destination = v }

// CanFindRide reports whether a destination has been entered.
func (s *Solo) CanFindRide() bool {
	return strings.TrimSpace(s.destination) != ""
}

// FindRide opens the pickup search with the destination carried along.
func (s *Solo) FindRide() {
	if !s.CanFindRide() {
		return
	}
	s.ctx.Nav.Navigate(router.PickupParams{Destination: strings.TrimSpace(s.destination)})
}

func (s *Solo) page() page {
	return page{
		title: s.ctx.t("SoloTitle"),
		entries: []entry{
			input(s.ctx.t("SoloPickup"), s.pickup, s.SetPickup),
			input(s.ctx.t("SoloDestination"), s.destination, s.SetDestination),
			button(s.ctx.t("SoloFindRide"), s.FindRide).disabled(!s.CanFindRide()),
		},
	}
}

// ScheduleRide shows a fixed pickup slot.
type ScheduleRide struct {
	ctx  *Context
	date string
	time string
}

func NewScheduleRide(ctx *Context) *ScheduleRide {
	return &ScheduleRide{ctx: ctx, date: "Wed, 14 Nov", time: "03:24 PM"}
}

func (s *ScheduleRide) page() page {
	return page{
		title: s.ctx.t("ScheduleTitle"),
		lines: []string{s.ctx.tf("ScheduleWhen", map[string]any{"Date": s.date, "Time": s.time})},
		entries: []entry{
			button(s.ctx.t("Cancel"), func() { s.ctx.Nav.GoBack() }),
			button(s.ctx.t("ScheduleSet"), func() { s.ctx.Nav.Navigate(router.FareEstimateParams{}) }),
		},
	}
}

// MaxStops bounds the number of intermediate stops.
const MaxStops = 3

// AddStops edits a list of intermediate stops. There is always at least one field.
type AddStops struct {
	ctx   *Context
	stops []string
}

func NewAddStops(ctx *Context) *AddStops {
	return &AddStops{ctx: ctx, stops: []string{""}}
}

// Stops returns a copy of the stop fields.
func (a *AddStops) Stops() []string {
	return append([]string(nil), a.stops...)
}

// Add appends an empty stop field, up to MaxStops.
func (a *AddStops) Add() {
	if len(a.stops) >= MaxStops {
		return
	}
	a.stops = append(a.stops, "")
}

// Remove deletes stop i. The last remaining field cannot be removed.
func (a *AddStops) Remove(i int) {
	if len(a.stops) <= 1 || i < 0 || i >= len(a.stops) {
		return
	}
	a.stops = append(a.stops[:i], a.stops[i+1:]...)
}

// Set updates the text of stop i.
func (a *AddStops) Set(i int, text string) {
	if i < 0 || i >= len(a.stops) {
		return
	}
	a.stops[i] = text
}

// Done continues to the fare estimate.
func (a *AddStops) Done() {
	a.ctx.Nav.Navigate(router.FareEstimateParams{})
}

func (a *AddStops) page() page {
	entries := make([]entry, 0, len(a.stops)*2+2)
	for i, stop := range a.stops {
		idx := i
		pos := map[string]any{"Position": strconv.Itoa(idx + 1)}
		entries = append(entries, input(a.ctx.tf("StopField", pos), stop, func(v string) { a.Set(idx, v) }))
		if len(a.stops) > 1 {
			entries = append(entries, button(a.ctx.tf("RemoveStop", pos), func() { a.Remove(idx) }).icon("close-circle"))
		}
	}
	entries = append(entries,
		button(a.ctx.t("AddStop"), a.Add).disabled(len(a.stops) >= MaxStops).icon("add"),
		button(a.ctx.t("Done"), a.Done),
	)
	return page{
		title:   a.ctx.t("AddStopsTitle"),
		lines:   []string{a.ctx.t("StopsHint")},
		entries: entries,
	}
}

// FareEstimate lists the ride offers. Picking one opens the confirmation.
type FareEstimate struct {
	ctx        *Context
	params     router.FareEstimateParams
	selectedID string
	notFound   bool
}

func NewFareEstimate(ctx *Context, params router.FareEstimateParams) *FareEstimate {
	return &FareEstimate{ctx: ctx, params: params}
}

// Rides returns the offers in catalog order.
func (f *FareEstimate) Rides() []catalog.Ride {
	return f.ctx.Catalog.Rides
}

// SelectedID returns the selected ride id, or "" when nothing is selected.
func (f *FareEstimate) SelectedID() string {
	return f.selectedID
}

// Select looks the ride up and opens the confirmation. An unknown id clears
// the selection, shows a notice and returns catalog.ErrRideNotFound.
func (f *FareEstimate) Select(rideID string) error {
	ride, err := f.ctx.Catalog.RideByID(rideID)
	if err != nil {
		f.selectedID = ""
		f.notFound = true
		f.ctx.Logger.Warn("ride selection failed", "ride_id", rideID, "error", err)
		return err
	}

	f.selectedID = ride.ID
	f.notFound = false
	f.ctx.Nav.Navigate(router.ConfirmRideParams{
		RideID:        ride.ID,
		DriverName:    ride.DriverName,
		VehicleNumber: ride.VehicleNumber,
		Price:         ride.Price(),
		ETA:           ride.ETA,
	})
	return nil
}

func (f *FareEstimate) summary() []string {
	trip := f.ctx.Catalog.Trip
	pickup, dropoff := f.params.Pickup, f.params.Dropoff
	if pickup == "" {
		pickup = trip.Pickup
	}
	if dropoff == "" {
		dropoff = trip.Dropoff
	}
	return []string{
		f.ctx.tf("SummaryPickup", map[string]any{"Value": pickup}),
		f.ctx.tf("SummaryDropoff", map[string]any{"Value": dropoff}),
		f.ctx.tf("SummaryDistance", map[string]any{"Value": trip.Distance}),
	}
}

func (f *FareEstimate) page() page {
	lines := f.summary()
	if f.notFound {
		lines = append(lines, f.ctx.t("RideNotFound"))
	}

	entries := make([]entry, 0, len(f.Rides()))
	for _, ride := range f.Rides() {
		id := ride.ID
		entries = append(entries,
			button(ride.Name+" · "+ride.Price(), func() { _ = f.Select(id) }).
				detail(ride.Description+" · "+ride.ETA).
				icon(ride.Icon).
				selected(id == f.selectedID),
		)
	}
	return page{title: f.ctx.t("FareTitle"), lines: lines, entries: entries}
}

// ConfirmRide shows the chosen ride before booking it.
type ConfirmRide struct {
	ctx    *Context
	params router.ConfirmRideParams
}

func NewConfirmRide(ctx *Context, params router.ConfirmRideParams) *ConfirmRide {
	return &ConfirmRide{ctx: ctx, params: params}
}

// Confirm starts the driver search.
func (c *ConfirmRide) Confirm() {
	c.ctx.Logger.Info("ride confirmed", "ride_id", c.params.RideID, "vehicle", c.params.VehicleNumber)
	c.ctx.Nav.Navigate(router.SearchingDriverParams{})
}

func (c *ConfirmRide) page() page {
	trip := c.ctx.Catalog.Trip
	return page{
		title: c.ctx.t("ConfirmTitle"),
		lines: []string{
			c.ctx.tf("SummaryPickup", map[string]any{"Value": trip.Pickup}),
			c.ctx.tf("SummaryDropoff", map[string]any{"Value": trip.Dropoff}),
			c.ctx.tf("SummaryDistance", map[string]any{"Value": trip.Distance}),
		},
		entries: []entry{
			info(c.ctx.tf("ConfirmDriver", map[string]any{"Value": c.params.DriverName}), "").icon("person-outline"),
			info(c.ctx.tf("ConfirmVehicle", map[string]any{"Value": c.params.VehicleNumber}), "").icon("car-outline"),
			info(c.ctx.tf("ConfirmETA", map[string]any{"Value": c.params.ETA}), "").icon("time-outline"),
			info(c.ctx.tf("ConfirmFare", map[string]any{"Value": c.params.Price}), ""),
			button(c.ctx.t("ConfirmTitle"), c.Confirm),
			button(c.ctx.t("Cancel"), func() { c.ctx.Nav.GoBack() }),
		},
	}
}
