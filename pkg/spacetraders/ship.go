package spacetraders

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/andrescamacho/spacetraders-sdk/pkg/api"
	"github.com/andrescamacho/spacetraders-sdk/pkg/model"
)

// Ship is an owned ship. Commands replace the part of the cached data the
// server answers with; a ship created with NewShip has no cache until Data
// is called, and commands issued before that leave it empty.
type Ship struct {
	client *api.Client
	symbol string
	data   *model.ShipData
}

// NewShip refers to a ship by symbol without fetching it
func NewShip(client *api.Client, symbol string) *Ship {
	return &Ship{client: client, symbol: symbol}
}

// NewShipWithData wraps already fetched ship data
func NewShipWithData(client *api.Client, data model.ShipData) *Ship {
	return &Ship{client: client, symbol: data.Symbol, data: &data}
}

// FetchShip loads GET /my/ships/{symbol}
func FetchShip(ctx context.Context, client *api.Client, symbol string) (*Ship, error) {
	data, err := getShip(ctx, client, symbol)
	if err != nil {
		return nil, err
	}
	return NewShipWithData(client, data), nil
}

// ListShips loads one page of GET /my/ships
func ListShips(ctx context.Context, client *api.Client, page, limit *int) ([]*Ship, model.Meta, error) {
	var resp model.ListEnvelope[model.ShipData]
	query := model.PageQuery{Page: page, Limit: limit}
	if err := client.Get(ctx, "my/ships", query, http.StatusOK, &resp); err != nil {
		return nil, model.Meta{}, fmt.Errorf("failed to list ships: %w", err)
	}

	ships := make([]*Ship, 0, len(resp.Data))
	for _, data := range resp.Data {
		ships = append(ships, NewShipWithData(client, data))
	}
	return ships, resp.Meta, nil
}

func getShip(ctx context.Context, client *api.Client, symbol string) (model.ShipData, error) {
	var resp model.Envelope[model.ShipData]
	if err := client.Get(ctx, "my/ships/"+url.PathEscape(symbol), nil, http.StatusOK, &resp); err != nil {
		return model.ShipData{}, fmt.Errorf("failed to get ship: %w", err)
	}
	return resp.Data, nil
}

// Client returns the client the ship was loaded with
func (s *Ship) Client() *api.Client { return s.client }

// Symbol is the ship symbol, e.g. "BADGER-1"
func (s *Ship) Symbol() string { return s.symbol }

// HasData reports whether the ship data is cached
func (s *Ship) HasData() bool { return s.data != nil }

// Data returns a copy of the cached ship data, fetching it on first call
func (s *Ship) Data(ctx context.Context) (model.ShipData, error) {
	if s.data != nil {
		return model.Clone(*s.data), nil
	}

	data, err := getShip(ctx, s.client, s.symbol)
	if err != nil {
		return model.ShipData{}, err
	}
	s.data = &data
	return model.Clone(data), nil
}

// Orbit moves the ship into orbit around its current waypoint
func (s *Ship) Orbit(ctx context.Context) error {
	var resp model.Envelope[model.NavUpdateData]
	if err := s.client.Post(ctx, s.endpoint("orbit"), nil, http.StatusOK, &resp); err != nil {
		return fmt.Errorf("failed to orbit ship: %w", err)
	}
	s.updateNav(resp.Data.Nav)
	return nil
}

// Dock docks the ship at its current waypoint
func (s *Ship) Dock(ctx context.Context) error {
	var resp model.Envelope[model.NavUpdateData]
	if err := s.client.Post(ctx, s.endpoint("dock"), nil, http.StatusOK, &resp); err != nil {
		return fmt.Errorf("failed to dock ship: %w", err)
	}
	s.updateNav(resp.Data.Nav)
	return nil
}

// Navigate sends the ship to a waypoint of its current system
func (s *Ship) Navigate(ctx context.Context, waypointSymbol string) (model.NavigateData, error) {
	var resp model.Envelope[model.NavigateData]
	body := model.NavigateRequest{WaypointSymbol: waypointSymbol}
	if err := s.client.Post(ctx, s.endpoint("navigate"), body, http.StatusOK, &resp); err != nil {
		return model.NavigateData{}, fmt.Errorf("failed to navigate ship: %w", err)
	}
	s.updateNav(resp.Data.Nav)
	s.updateFuel(resp.Data.Fuel)
	return resp.Data, nil
}

// SetFlightMode changes the flight mode used for the next navigation
func (s *Ship) SetFlightMode(ctx context.Context, mode model.FlightMode) (model.NavData, error) {
	var resp model.Envelope[model.NavData]
	body := model.FlightModeRequest{FlightMode: mode}
	if err := s.client.Patch(ctx, s.endpoint("nav"), body, http.StatusOK, &resp); err != nil {
		return model.NavData{}, fmt.Errorf("failed to set flight mode: %w", err)
	}
	s.updateNav(resp.Data)
	return resp.Data, nil
}

// Refuel buys fuel at the current waypoint. Nil units fills the tank.
func (s *Ship) Refuel(ctx context.Context, units *int) (model.MarketTransaction, error) {
	var resp model.Envelope[model.RefuelData]
	body := model.RefuelRequest{Units: units}
	if err := s.client.Post(ctx, s.endpoint("refuel"), body, http.StatusOK, &resp); err != nil {
		return model.MarketTransaction{}, fmt.Errorf("failed to refuel ship: %w", err)
	}
	s.updateFuel(resp.Data.Fuel)
	return resp.Data.Transaction, nil
}

func (s *Ship) updateNav(nav model.NavData) {
	if s.data != nil {
		s.data.Nav = nav
	}
}

func (s *Ship) updateFuel(fuel model.FuelData) {
	if s.data != nil {
		s.data.Fuel = fuel
	}
}

func (s *Ship) endpoint(action string) string {
	return fmt.Sprintf("my/ships/%s/%s", url.PathEscape(s.symbol), action)
}
