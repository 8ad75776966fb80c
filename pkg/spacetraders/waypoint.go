package spacetraders

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/andrescamacho/spacetraders-sdk/pkg/api"
	"github.com/andrescamacho/spacetraders-sdk/pkg/model"
)

// Waypoint is a location inside a system
type Waypoint struct {
	client *api.Client
	data   model.WaypointData
}

// NewWaypoint wraps waypoint data already returned by the server
func NewWaypoint(client *api.Client, data model.WaypointData) *Waypoint {
	return &Waypoint{client: client, data: data}
}

// FetchWaypoint loads GET /systems/{system}/waypoints/{symbol}
func FetchWaypoint(ctx context.Context, client *api.Client, systemSymbol, symbol string) (*Waypoint, error) {
	var resp model.Envelope[model.WaypointData]
	if err := client.Get(ctx, waypointEndpoint(systemSymbol, symbol, ""), nil, http.StatusOK, &resp); err != nil {
		return nil, fmt.Errorf("failed to get waypoint: %w", err)
	}
	return NewWaypoint(client, resp.Data), nil
}

// Client returns the client the waypoint was loaded with
func (w *Waypoint) Client() *api.Client { return w.client }

// Data returns a copy of the cached waypoint data
func (w *Waypoint) Data() model.WaypointData { return model.Clone(w.data) }

// Symbol is the waypoint symbol, e.g. "X1-RC42-A1"
func (w *Waypoint) Symbol() string { return w.data.Symbol }

// SystemSymbol is the system the waypoint belongs to
func (w *Waypoint) SystemSymbol() string { return w.data.SystemSymbol }

// Type is the waypoint type from the cached data
func (w *Waypoint) Type() model.WaypointType { return w.data.Type }

// GetMarket loads the marketplace at this waypoint
func (w *Waypoint) GetMarket(ctx context.Context) (model.MarketData, error) {
	var resp model.Envelope[model.MarketData]
	if err := w.client.Get(ctx, waypointEndpoint(w.data.SystemSymbol, w.data.Symbol, "market"), nil, http.StatusOK, &resp); err != nil {
		return model.MarketData{}, fmt.Errorf("failed to get market: %w", err)
	}
	return resp.Data, nil
}

// GetShipyard loads the shipyard at this waypoint
func (w *Waypoint) GetShipyard(ctx context.Context) (model.ShipyardData, error) {
	var resp model.Envelope[model.ShipyardData]
	if err := w.client.Get(ctx, waypointEndpoint(w.data.SystemSymbol, w.data.Symbol, "shipyard"), nil, http.StatusOK, &resp); err != nil {
		return model.ShipyardData{}, fmt.Errorf("failed to get shipyard: %w", err)
	}
	return resp.Data, nil
}

func waypointEndpoint(systemSymbol, symbol, facility string) string {
	endpoint := fmt.Sprintf("systems/%s/waypoints/%s", url.PathEscape(systemSymbol), url.PathEscape(symbol))
	if facility != "" {
		endpoint += "/" + facility
	}
	return endpoint
}
