package model

import "time"

// ShipStatus is the navigation state of a ship
type ShipStatus string

const (
	ShipStatusInTransit ShipStatus = "IN_TRANSIT"
	ShipStatusInOrbit   ShipStatus = "IN_ORBIT"
	ShipStatusDocked    ShipStatus = "DOCKED"
)

var shipStatuses = newEnumSet(ShipStatusInTransit, ShipStatusInOrbit, ShipStatusDocked)

func (s *ShipStatus) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, s, shipStatuses, "ShipStatus")
}

// FlightMode trades travel time against fuel consumption
type FlightMode string

const (
	FlightModeDrift   FlightMode = "DRIFT"
	FlightModeStealth FlightMode = "STEALTH"
	FlightModeCruise  FlightMode = "CRUISE"
	FlightModeBurn    FlightMode = "BURN"
)

var flightModes = newEnumSet(FlightModeDrift, FlightModeStealth, FlightModeCruise, FlightModeBurn)

func (m *FlightMode) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, m, flightModes, "FlightMode")
}

// ParseFlightMode parses a flight mode name such as "burn" or "BURN"
func ParseFlightMode(s string) (FlightMode, error) {
	return parseEnum(s, flightModes, "FlightMode")
}

// NavData is where a ship is and where it is going
type NavData struct {
	SystemSymbol   string     `json:"systemSymbol" validate:"required"`
	WaypointSymbol string     `json:"waypointSymbol" validate:"required"`
	Route          Route      `json:"route"`
	Status         ShipStatus `json:"status" validate:"required"`
	FlightMode     FlightMode `json:"flightMode" validate:"required"`
}

// Route is the last (or current) leg travelled by a ship
type Route struct {
	Destination   RouteLocation  `json:"destination"`
	Origin        RouteLocation  `json:"origin"`
	Departure     *RouteLocation `json:"departure,omitempty"`
	DepartureTime time.Time      `json:"departureTime" validate:"required"`
	Arrival       time.Time      `json:"arrival" validate:"required"`
}

// RouteLocation is a waypoint as it appears inside a route
type RouteLocation struct {
	Symbol       string       `json:"symbol" validate:"required"`
	Type         WaypointType `json:"type" validate:"required"`
	SystemSymbol string       `json:"systemSymbol" validate:"required"`
	X            int          `json:"x"`
	Y            int          `json:"y"`
}

// NavigateRequest is the body of POST /my/ships/{symbol}/navigate
type NavigateRequest struct {
	WaypointSymbol string `json:"waypointSymbol"`
}

// NavigateData is the payload returned by a navigate command
type NavigateData struct {
	Fuel FuelData `json:"fuel"`
	Nav  NavData  `json:"nav"`
}

// NavUpdateData wraps the nav returned by orbit and dock
type NavUpdateData struct {
	Nav NavData `json:"nav"`
}

// FlightModeRequest is the body of PATCH /my/ships/{symbol}/nav
type FlightModeRequest struct {
	FlightMode FlightMode `json:"flightMode"`
}
