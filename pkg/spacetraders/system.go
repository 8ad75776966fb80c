package spacetraders

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/andrescamacho/spacetraders-sdk/pkg/api"
	"github.com/andrescamacho/spacetraders-sdk/pkg/model"
)

// System is a star system. Its data is fetched lazily on first use.
type System struct {
	client *api.Client
	symbol string
	data   *model.SystemData
}

// NewSystem refers to a system by symbol without fetching it
func NewSystem(client *api.Client, symbol string) *System {
	return &System{client: client, symbol: symbol}
}

// NewSystemWithData wraps already fetched system data
func NewSystemWithData(client *api.Client, data model.SystemData) *System {
	return &System{client: client, symbol: data.Symbol, data: &data}
}

// FetchSystem loads GET /systems/{symbol}
func FetchSystem(ctx context.Context, client *api.Client, symbol string) (*System, error) {
	data, err := getSystem(ctx, client, symbol)
	if err != nil {
		return nil, err
	}
	return NewSystemWithData(client, data), nil
}

// ListSystems loads one page of GET /systems. Nil page or limit leaves the
// choice to the server.
func ListSystems(ctx context.Context, client *api.Client, page, limit *int) ([]*System, model.Meta, error) {
	var resp model.ListEnvelope[model.SystemData]
	query := model.PageQuery{Page: page, Limit: limit}
	if err := client.Get(ctx, "systems", query, http.StatusOK, &resp); err != nil {
		return nil, model.Meta{}, fmt.Errorf("failed to list systems: %w", err)
	}

	systems := make([]*System, 0, len(resp.Data))
	for _, data := range resp.Data {
		systems = append(systems, NewSystemWithData(client, data))
	}
	return systems, resp.Meta, nil
}

func getSystem(ctx context.Context, client *api.Client, symbol string) (model.SystemData, error) {
	var resp model.Envelope[model.SystemData]
	if err := client.Get(ctx, "systems/"+url.PathEscape(symbol), nil, http.StatusOK, &resp); err != nil {
		return model.SystemData{}, fmt.Errorf("failed to get system: %w", err)
	}
	return resp.Data, nil
}

// Client returns the client the system was loaded with
func (s *System) Client() *api.Client { return s.client }

// Symbol is the system symbol, e.g. "X1-RC42"
func (s *System) Symbol() string { return s.symbol }

// HasData reports whether the system data is cached
func (s *System) HasData() bool { return s.data != nil }

// Data returns a copy of the cached system data, fetching it on first call
func (s *System) Data(ctx context.Context) (model.SystemData, error) {
	if s.data != nil {
		return model.Clone(*s.data), nil
	}

	data, err := getSystem(ctx, s.client, s.symbol)
	if err != nil {
		return model.SystemData{}, err
	}
	s.data = &data
	return model.Clone(data), nil
}

// ListWaypoints lists the waypoints of the system. Nil filters are left out
// of the query string.
func (s *System) ListWaypoints(ctx context.Context, waypointType *model.WaypointType, trait *model.WaypointTraitSymbol) ([]*Waypoint, error) {
	var resp model.ListEnvelope[model.WaypointData]
	query := model.WaypointQuery{Type: waypointType, Trait: trait}
	endpoint := fmt.Sprintf("systems/%s/waypoints", url.PathEscape(s.symbol))
	if err := s.client.Get(ctx, endpoint, query, http.StatusOK, &resp); err != nil {
		return nil, fmt.Errorf("failed to list waypoints: %w", err)
	}

	waypoints := make([]*Waypoint, 0, len(resp.Data))
	for _, data := range resp.Data {
		waypoints = append(waypoints, NewWaypoint(s.client, data))
	}
	return waypoints, nil
}
