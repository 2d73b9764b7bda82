// Package form is the registration form controller: it aggregates contact
// fields, the region/city selection, a map coordinate and the item selection
// into one draft, and submits it as a single creation call.
package form

import (
	"context"
	"errors"
	"fmt"

	"github.com/coleta-app/coleta-api/internal/client"
	"github.com/coleta-app/coleta-api/internal/domain"
)

// RegionUnselected is the sentinel value of the region select. While the
// region is unselected the city list stays empty and no city fetch happens.
const RegionUnselected = "0"

var ErrIncompleteDraft = errors.New("draft is incomplete")

type Coordinate struct {
	Latitude  float64
	Longitude float64
}

type RegistryAPI interface {
	Items(ctx context.Context) ([]domain.Item, error)
	CreatePoint(ctx context.Context, payload client.CreatePointPayload) (domain.Point, error)
}

type GeoAPI interface {
	Regions(ctx context.Context) ([]string, error)
	Cities(ctx context.Context, uf string) ([]string, error)
}

// LocationSource is the device geolocation. It is read once on load and used
// only as the map's initial center.
type LocationSource interface {
	Current(ctx context.Context) (Coordinate, error)
}

// Draft is the transient, not-yet-submitted registration state.
type Draft struct {
	Name     string
	Email    string
	Whatsapp string
	Region   string
	City     string
	Marker   Coordinate
	Selected Selection
}

type Controller struct {
	api RegistryAPI
	geo GeoAPI
	loc LocationSource

	// strict makes Submit refuse drafts still holding the defaults instead
	// of sending (0,0) and uf "0".
	strict bool

	draft     Draft
	catalog   []domain.Item
	regions   []string
	cities    []string
	mapCenter Coordinate
}

type Option func(*Controller)

// WithStrictSubmit turns on required-field checking at submit time.
func WithStrictSubmit() Option {
	return func(c *Controller) {
		c.strict = true
	}
}

func NewController(api RegistryAPI, geo GeoAPI, loc LocationSource, opts ...Option) *Controller {
	c := &Controller{
		api: api,
		geo: geo,
		loc: loc,
		draft: Draft{
			Region:   RegionUnselected,
			Selected: NewSelection(),
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Load fetches the item catalog and the region list, and centers the map on
// the device coordinate. The device coordinate is never copied into the
// marker: unless the user clicks the map, the submitted coordinate stays at
// its default.
func (c *Controller) Load(ctx context.Context) error {
	catalog, err := c.api.Items(ctx)
	if err != nil {
		return fmt.Errorf("c.api.Items -> %w", err)
	}
	c.catalog = catalog

	regions, err := c.geo.Regions(ctx)
	if err != nil {
		return fmt.Errorf("c.geo.Regions -> %w", err)
	}
	c.regions = regions

	// An unavailable device location is not an error; the map keeps its
	// default center.
	if center, err := c.loc.Current(ctx); err == nil {
		c.mapCenter = center
	}

	return nil
}

func (c *Controller) SetName(name string)         { c.draft.Name = name }
func (c *Controller) SetEmail(email string)       { c.draft.Email = email }
func (c *Controller) SetWhatsapp(whatsapp string) { c.draft.Whatsapp = whatsapp }

// SelectRegion switches the region and re-fetches the city list with the new
// region as the only variable. The sentinel suppresses the fetch and empties
// the list. Either way the previously selected city is cleared: the city
// list is a pure function of the current region, and a stale selection under
// a new region is invalid. A failed fetch leaves the draft untouched.
func (c *Controller) SelectRegion(ctx context.Context, uf string) error {
	if uf == RegionUnselected {
		c.draft.Region = uf
		c.draft.City = ""
		c.cities = nil
		return nil
	}

	cities, err := c.geo.Cities(ctx, uf)
	if err != nil {
		return fmt.Errorf("c.geo.Cities -> %w", err)
	}

	c.draft.Region = uf
	c.draft.City = ""
	c.cities = cities

	return nil
}

func (c *Controller) SelectCity(city string) {
	c.draft.City = city
}

// ClickMap moves the marker, which is the coordinate that gets submitted.
// The map center is not affected.
func (c *Controller) ClickMap(coord Coordinate) {
	c.draft.Marker = coord
}

func (c *Controller) ToggleItem(id uint) {
	c.draft.Selected.Toggle(id)
}

func (c *Controller) Catalog() []domain.Item { return c.catalog }
func (c *Controller) Regions() []string      { return c.regions }
func (c *Controller) Cities() []string       { return c.cities }
func (c *Controller) MapCenter() Coordinate  { return c.mapCenter }
func (c *Controller) Draft() Draft           { return c.draft }

// Submit assembles the flat payload and performs exactly one create call.
// The draft is left untouched whether the call succeeds or fails; surfacing
// the acknowledgment is the caller's concern.
func (c *Controller) Submit(ctx context.Context) (domain.Point, error) {
	if c.strict {
		if err := c.validateDraft(); err != nil {
			return domain.Point{}, err
		}
	}

	payload := client.CreatePointPayload{
		Name:      c.draft.Name,
		Email:     c.draft.Email,
		Whatsapp:  c.draft.Whatsapp,
		UF:        c.draft.Region,
		City:      c.draft.City,
		Latitude:  c.draft.Marker.Latitude,
		Longitude: c.draft.Marker.Longitude,
		Items:     c.draft.Selected.IDs(),
	}

	created, err := c.api.CreatePoint(ctx, payload)
	if err != nil {
		return domain.Point{}, fmt.Errorf("c.api.CreatePoint -> %w", err)
	}

	return created, nil
}

func (c *Controller) validateDraft() error {
	switch {
	case c.draft.Name == "", c.draft.Email == "", c.draft.Whatsapp == "":
		return fmt.Errorf("%w: missing contact fields", ErrIncompleteDraft)
	case c.draft.Region == RegionUnselected, c.draft.City == "":
		return fmt.Errorf("%w: missing region or city", ErrIncompleteDraft)
	case c.draft.Marker == (Coordinate{}):
		return fmt.Errorf("%w: no map coordinate picked", ErrIncompleteDraft)
	}

	return nil
}
