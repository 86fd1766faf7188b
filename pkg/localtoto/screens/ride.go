package screens

import (
	"strconv"

	"github.com/localtoto/localtoto/pkg/localtoto/router"
)

// SearchingDriver shows the matching progress.
type SearchingDriver struct {
	ctx *Context
}

func NewSearchingDriver(ctx *Context) *SearchingDriver {
	return &SearchingDriver{ctx: ctx}
}

// driverETAMinutes is the mocked arrival time of the matched driver.
const driverETAMinutes = 3

func (s *SearchingDriver) page() page {
	entries := make([]entry, 0, len(s.ctx.Catalog.SearchSteps)+1)
	for _, step := range s.ctx.Catalog.SearchSteps {
		entries = append(entries, info(step, "").icon("checkmark-circle"))
	}
	entries = append(entries, button(s.ctx.t("SearchingDriverFound"), func() {
		s.ctx.Nav.Navigate(router.DriverComingParams{ETAMinutes: driverETAMinutes})
	}))
	return page{
		title:   s.ctx.t("SearchingTitle"),
		lines:   []string{s.ctx.t("SearchingSubtitle")},
		entries: entries,
	}
}

// DriverComing tracks the matched driver on the way to the pickup.
type DriverComing struct {
	ctx    *Context
	params router.DriverComingParams
}

func NewDriverComing(ctx *Context, params router.DriverComingParams) *DriverComing {
	return &DriverComing{ctx: ctx, params: params}
}

func (d *DriverComing) arrival() string {
	if d.params.ETAMinutes <= 0 {
		return d.ctx.t("DriverArrivingSoon")
	}
	return d.ctx.tf("DriverArriving", map[string]any{"Minutes": strconv.Itoa(d.params.ETAMinutes)})
}

func (d *DriverComing) page() page {
	trip := d.ctx.Catalog.Trip
	return page{
		title: d.ctx.t("DriverComingTitle"),
		lines: []string{
			d.arrival(),
			d.ctx.tf("SummaryPickup", map[string]any{"Value": trip.Pickup}),
			d.ctx.tf("SummaryDropoff", map[string]any{"Value": trip.Dropoff}),
			d.ctx.tf("ConfirmFare", map[string]any{"Value": d.ctx.Catalog.TripFare()}),
		},
		entries: []entry{
			button(d.ctx.t("StartRide"), func() { d.ctx.Nav.Navigate(router.InRideParams{}) }),
			button(d.ctx.t("CancelRide"), func() { d.ctx.Nav.Navigate(router.CancelRideParams{}) }),
		},
	}
}

// InRide shows the trip timeline.
type InRide struct {
	ctx *Context
}

func NewInRide(ctx *Context) *InRide {
	return &InRide{ctx: ctx}
}

func (r *InRide) page() page {
	entries := make([]entry, 0, len(r.ctx.Catalog.Milestones)+1)
	for _, m := range r.ctx.Catalog.Milestones {
		entries = append(entries, info(m.Label, m.Time).selected(m.Status == "current"))
	}
	entries = append(entries, button(r.ctx.t("PayNow"), func() { r.ctx.Nav.Navigate(router.PaymentParams{}) }))
	return page{title: r.ctx.t("InRideTitle"), entries: entries}
}

// Payment picks how to settle the fare. Nothing is charged.
type Payment struct {
	ctx      *Context
	selected string
}

func NewPayment(ctx *Context) *Payment {
	return &Payment{ctx: ctx, selected: "cash"}
}

// Selected returns the chosen method id.
func (p *Payment) Selected() string {
	return p.selected
}

// Select chooses a method. Unknown ids are ignored.
func (p *Payment) Select(id string) {
	for _, m := range p.ctx.Catalog.PaymentMethods {
		if m.ID == id {
			p.selected = id
			return
		}
	}
}

// Pay moves on to rating the driver.
func (p *Payment) Pay() {
	p.ctx.Logger.Info("payment method chosen", "method", p.selected)
	p.ctx.Nav.Navigate(router.RatingParams{DriverName: "John Doe"})
}

func (p *Payment) page() page {
	entries := make([]entry, 0, len(p.ctx.Catalog.PaymentMethods)+1)
	for _, m := range p.ctx.Catalog.PaymentMethods {
		id := m.ID
		entries = append(entries,
			button(m.Label, func() { p.Select(id) }).detail(m.Balance).icon(m.Icon).selected(id == p.selected),
		)
	}
	entries = append(entries, button(p.ctx.tf("PayFare", map[string]any{"Value": p.ctx.Catalog.TripFare()}), p.Pay))
	return page{title: p.ctx.t("PaymentTitle"), entries: entries}
}

// MaxRating is the number of stars.
const MaxRating = 5

// Rating captures stars and a comment, then closes the trip. Both submit
// and skip reset the main flow to the pickup search.
type Rating struct {
	ctx      *Context
	params   router.RatingParams
	rating   int
	comment  string
	feedback map[string]bool
}

func NewRating(ctx *Context, params router.RatingParams) *Rating {
	return &Rating{ctx: ctx, params: params, feedback: make(map[string]bool)}
}

// Rating returns the stars given, 0 when unset.
func (r *Rating) Rating() int {
	return r.rating
}

// SetRating sets the stars. Values outside 1..MaxRating are ignored.
func (r *Rating) SetRating(stars int) {
	if stars < 1 || stars > MaxRating {
		return
	}
	r.rating = stars
}

// SetComment updates the free-text comment.
func (r *Rating) SetComment(text string) {
	r.comment = text
}

// ToggleFeedback flips a quick feedback tag.
func (r *Rating) ToggleFeedback(tag string) {
	r.feedback[tag] = !r.feedback[tag]
}

// CanSubmit reports whether at least one star was given.
func (r *Rating) CanSubmit() bool {
	return r.rating > 0
}

// Submit records the rating and closes the trip.
func (r *Rating) Submit() bool {
	if !r.CanSubmit() {
		return false
	}
	r.ctx.Logger.Info("ride rated",
		"ride_id", r.params.RideID,
		"driver", r.params.DriverNameOrDefault(),
		"rating", r.rating,
		"comment_length", len(r.comment),
	)
	r.ctx.Nav.Reset(router.PickupParams{})
	return true
}

// Skip closes the trip without a rating.
func (r *Rating) Skip() {
	r.ctx.Nav.Reset(router.PickupParams{})
}

// Label describes the current rating, empty when unset.
func (r *Rating) Label() string {
	switch r.rating {
	case 5:
		return r.ctx.t("RatingExcellent")
	case 4:
		return r.ctx.t("RatingGreat")
	case 3:
		return r.ctx.t("RatingGood")
	case 2:
		return r.ctx.t("RatingFair")
	case 1:
		return r.ctx.t("RatingPoor")
	default:
		return ""
	}
}

func (r *Rating) page() page {
	lines := []string{r.ctx.tf("RatingSubtitle", map[string]any{"Driver": r.params.DriverNameOrDefault()})}
	if label := r.Label(); label != "" {
		lines = append(lines, label)
	}

	entries := make([]entry, 0, MaxRating+len(r.ctx.Catalog.FeedbackTags)+3)
	for star := 1; star <= MaxRating; star++ {
		s := star
		icon := "star-outline"
		if s <= r.rating {
			icon = "star"
		}
		entries = append(entries,
			button(r.ctx.tf("RatingStars", map[string]any{"Stars": strconv.Itoa(s)}), func() { r.SetRating(s) }).
				icon(icon).
				selected(s == r.rating),
		)
	}
	entries = append(entries, input(r.ctx.t("RatingComment"), r.comment, r.SetComment))
	for _, tag := range r.ctx.Catalog.FeedbackTags {
		t := tag
		entries = append(entries, button(t, func() { r.ToggleFeedback(t) }).selected(r.feedback[t]))
	}
	entries = append(entries,
		button(r.ctx.t("RatingSubmit"), func() { r.Submit() }).disabled(!r.CanSubmit()),
		button(r.ctx.t("RatingSkip"), r.Skip),
	)

	return page{title: r.ctx.t("RatingTitle"), lines: lines, entries: entries}
}

// CancelRide asks for a cancellation reason before returning.
type CancelRide struct {
	ctx    *Context
	reason string
}

func NewCancelRide(ctx *Context) *CancelRide {
	return &CancelRide{ctx: ctx}
}

// Reason returns the chosen reason, "" when none.
func (c *CancelRide) Reason() string {
	return c.reason
}

// Choose selects a reason.
func (c *CancelRide) Choose(reason string) {
	c.reason = reason
}

// CanFinish reports whether a reason has been chosen.
func (c *CancelRide) CanFinish() bool {
	return c.reason != ""
}

// Finish returns to the previous screen once a reason is chosen.
func (c *CancelRide) Finish() bool {
	if !c.CanFinish() {
		return false
	}
	c.ctx.Logger.Info("ride cancelled", "reason", c.reason)
	c.ctx.Nav.GoBack()
	return true
}

func (c *CancelRide) page() page {
	entries := make([]entry, 0, len(c.ctx.Catalog.CancelReasons)+1)
	for _, reason := range c.ctx.Catalog.CancelReasons {
		r := reason
		entries = append(entries, button(r, func() { c.Choose(r) }).selected(r == c.reason))
	}
	entries = append(entries, button(c.ctx.t("Done"), func() { c.Finish() }).disabled(!c.CanFinish()))
	return page{title: c.ctx.t("CancelTitle"), entries: entries}
}
