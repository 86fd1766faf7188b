// Package catalog is the read-only source of the mocked ride, place and
// payment data the screens display.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed catalog.toml
var embedded []byte

// ErrRideNotFound is returned when a ride id is not in the catalog.
var ErrRideNotFound = errors.New("ride not found")

// Ride is one fare offer.
type Ride struct {
	ID            string `toml:"id"`
	Name          string `toml:"name"`
	Description   string `toml:"description"`
	ETA           string `toml:"eta"`
	Amount        int    `toml:"price"` // whole naira
	Icon          string `toml:"icon"`
	DriverName    string `toml:"driver_name"`
	VehicleNumber string `toml:"vehicle_number"`

	symbol string
}

// Price returns the fare as displayed, e.g. ₦1,100.
func (r Ride) Price() string {
	return FormatPrice(r.symbol, r.Amount)
}

// Place is a suggested pickup or drop-off location.
type Place struct {
	Title string `toml:"title"`
	Area  string `toml:"area"`
	Icon  string `toml:"icon"`
}

// SavedPlace is a shortcut shown on the home screen.
type SavedPlace struct {
	ID      string `toml:"id"`
	Name    string `toml:"name"`
	Address string `toml:"address"`
	Icon    string `toml:"icon"`
}

// PaymentMethod is a way to settle a trip.
type PaymentMethod struct {
	ID      string `toml:"id"`
	Label   string `toml:"label"`
	Balance string `toml:"balance"`
	Icon    string `toml:"icon"`
}

// Milestone is one step of the in-ride timeline.
type Milestone struct {
	Label  string `toml:"label"`
	Time   string `toml:"time"`
	Status string `toml:"status"` // complete, current, upcoming
}

// Trip is the mocked trip summary shown while booking and riding.
type Trip struct {
	Pickup   string `toml:"pickup"`
	Dropoff  string `toml:"dropoff"`
	Distance string `toml:"distance"`
	Fare     int    `toml:"fare"`
}

// Catalog holds every mocked list, in display order.
type Catalog struct {
	CurrencySymbol    string          `toml:"currency_symbol"`
	Trip              Trip            `toml:"trip"`
	Rides             []Ride          `toml:"rides"`
	PickupSuggestions []Place         `toml:"pickup_suggestions"`
	DropSuggestions   []Place         `toml:"drop_suggestions"`
	SavedPlaces       []SavedPlace    `toml:"saved_places"`
	PaymentMethods    []PaymentMethod `toml:"payment_methods"`
	Milestones        []Milestone     `toml:"milestones"`
	CancelReasons     []string        `toml:"cancel_reasons"`
	SearchSteps       []string        `toml:"search_steps"`
	FeedbackTags      []string        `toml:"feedback_tags"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog bundled with the application.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(embedded)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded data: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Parse decodes a catalog from TOML.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if _, err := toml.Decode(string(data), &c); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	return c.finish()
}

// Load decodes a catalog from a reader.
func Load(r io.Reader) (*Catalog, error) {
	var c Catalog
	if _, err := toml.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	return c.finish()
}

func (c *Catalog) finish() (*Catalog, error) {
	seen := make(map[string]struct{}, len(c.Rides))
	for i := range c.Rides {
		id := c.Rides[i].ID
		if id == "" {
			return nil, fmt.Errorf("catalog: ride %d has no id", i)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("catalog: duplicate ride id %q", id)
		}
		seen[id] = struct{}{}
		c.Rides[i].symbol = c.CurrencySymbol
	}
	return c, nil
}

// RideByID finds a ride by scanning the list in order.
func (c *Catalog) RideByID(id string) (Ride, error) {
	for _, r := range c.Rides {
		if r.ID == id {
			return r, nil
		}
	}
	return Ride{}, fmt.Errorf("%w: %q", ErrRideNotFound, id)
}

// TripFare returns the summary fare as displayed.
func (c *Catalog) TripFare() string {
	return FormatPrice(c.CurrencySymbol, c.Trip.Fare)
}

// FilterPlaces returns the places whose title or area contains query,
// ignoring case. An empty query returns every place.
func FilterPlaces(places []Place, query string) []Place {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return places
	}
	out := make([]Place, 0, len(places))
	for _, p := range places {
		if strings.Contains(strings.ToLower(p.Title), q) || strings.Contains(strings.ToLower(p.Area), q) {
			out = append(out, p)
		}
	}
	return out
}

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders a whole amount with digit grouping after the symbol.
func FormatPrice(symbol string, amount int) string {
	return symbol + pricePrinter.Sprintf("%d", amount)
}
