package model

import "time"

// ShipType is a ship model sold by shipyards
type ShipType string

const (
	ShipTypeProbe             ShipType = "SHIP_PROBE"
	ShipTypeMiningDrone       ShipType = "SHIP_MINING_DRONE"
	ShipTypeSiphonDrone       ShipType = "SHIP_SIPHON_DRONE"
	ShipTypeInterceptor       ShipType = "SHIP_INTERCEPTOR"
	ShipTypeLightHauler       ShipType = "SHIP_LIGHT_HAULER"
	ShipTypeCommandFrigate    ShipType = "SHIP_COMMAND_FRIGATE"
	ShipTypeExplorer          ShipType = "SHIP_EXPLORER"
	ShipTypeHeavyFreighter    ShipType = "SHIP_HEAVY_FREIGHTER"
	ShipTypeLightShuttle      ShipType = "SHIP_LIGHT_SHUTTLE"
	ShipTypeOreHound          ShipType = "SHIP_ORE_HOUND"
	ShipTypeRefiningFreighter ShipType = "SHIP_REFINING_FREIGHTER"
	ShipTypeSurveyor          ShipType = "SHIP_SURVEYOR"
	ShipTypeBulkFreighter     ShipType = "SHIP_BULK_FREIGHTER"
)

var shipTypes = newEnumSet(
	ShipTypeProbe, ShipTypeMiningDrone, ShipTypeSiphonDrone, ShipTypeInterceptor,
	ShipTypeLightHauler, ShipTypeCommandFrigate, ShipTypeExplorer, ShipTypeHeavyFreighter,
	ShipTypeLightShuttle, ShipTypeOreHound, ShipTypeRefiningFreighter, ShipTypeSurveyor,
	ShipTypeBulkFreighter,
)

func (t *ShipType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, t, shipTypes, "ShipType")
}

// ShipyardData is the shipyard at a waypoint. Ships and Transactions are only
// present while one of the agent's ships is at the waypoint.
type ShipyardData struct {
	Symbol           string                `json:"symbol" validate:"required"`
	ShipTypes        []ShipyardShipType    `json:"shipTypes" validate:"dive"`
	Transactions     []ShipyardTransaction `json:"transactions,omitempty" validate:"omitempty,dive"`
	Ships            []ShipyardShip        `json:"ships,omitempty" validate:"omitempty,dive"`
	ModificationsFee int                   `json:"modificationsFee"`
}

// Sells reports whether the shipyard lists the given ship type
func (s ShipyardData) Sells(t ShipType) bool {
	for _, st := range s.ShipTypes {
		if st.Type == t {
			return true
		}
	}
	return false
}

type ShipyardShipType struct {
	Type ShipType `json:"type" validate:"required"`
}

type ShipyardTransaction struct {
	WaypointSymbol string    `json:"waypointSymbol" validate:"required"`
	ShipSymbol     *string   `json:"shipSymbol,omitempty"`
	ShipType       ShipType  `json:"shipType" validate:"required"`
	Price          int       `json:"price"`
	AgentSymbol    string    `json:"agentSymbol" validate:"required"`
	Timestamp      time.Time `json:"timestamp" validate:"required"`
}

// ShipyardShip is a ship offered for sale, with the components it ships with
type ShipyardShip struct {
	Type          ShipType         `json:"type" validate:"required"`
	Name          string           `json:"name" validate:"required"`
	Description   string           `json:"description"`
	Supply        SupplyLevel      `json:"supply" validate:"required"`
	Activity      *ActivityLevel   `json:"activity,omitempty"`
	PurchasePrice int              `json:"purchasePrice"`
	Frame         ShipFrame        `json:"frame"`
	Reactor       ShipReactor      `json:"reactor"`
	Engine        ShipEngine       `json:"engine"`
	Modules       []ShipModule     `json:"modules" validate:"dive"`
	Mounts        []ShipMount      `json:"mounts" validate:"dive"`
	Crew          ShipyardShipCrew `json:"crew"`
}

// ShipyardShipCrew is the crew a ship for sale needs and can hold
type ShipyardShipCrew struct {
	Required int `json:"required"`
	Capacity int `json:"capacity"`
}
