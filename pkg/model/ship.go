package model

import "time"

// ShipData is the full state of an owned ship
type ShipData struct {
	Symbol       string           `json:"symbol" validate:"required"`
	Registration ShipRegistration `json:"registration"`
	Nav          NavData          `json:"nav"`
	Crew         ShipCrew         `json:"crew"`
	Frame        ShipFrame        `json:"frame"`
	Reactor      ShipReactor      `json:"reactor"`
	Engine       ShipEngine       `json:"engine"`
	Cooldown     ShipCooldown     `json:"cooldown"`
	Modules      []ShipModule     `json:"modules" validate:"dive"`
	Mounts       []ShipMount      `json:"mounts" validate:"dive"`
	Cargo        ShipCargo        `json:"cargo"`
	Fuel         FuelData         `json:"fuel"`
}

// ShipRole describes what a ship was registered to do
type ShipRole string

const (
	ShipRoleFabricator  ShipRole = "FABRICATOR"
	ShipRoleHarvester   ShipRole = "HARVESTER"
	ShipRoleHauler      ShipRole = "HAULER"
	ShipRoleInterceptor ShipRole = "INTERCEPTOR"
	ShipRoleExcavator   ShipRole = "EXCAVATOR"
	ShipRoleTransport   ShipRole = "TRANSPORT"
	ShipRoleRepair      ShipRole = "REPAIR"
	ShipRoleSurveyor    ShipRole = "SURVEYOR"
	ShipRoleCommand     ShipRole = "COMMAND"
	ShipRoleCarrier     ShipRole = "CARRIER"
	ShipRolePatrol      ShipRole = "PATROL"
	ShipRoleSatellite   ShipRole = "SATELLITE"
	ShipRoleExplorer    ShipRole = "EXPLORER"
	ShipRoleRefinery    ShipRole = "REFINERY"
)

var shipRoles = newEnumSet(
	ShipRoleFabricator, ShipRoleHarvester, ShipRoleHauler, ShipRoleInterceptor,
	ShipRoleExcavator, ShipRoleTransport, ShipRoleRepair, ShipRoleSurveyor,
	ShipRoleCommand, ShipRoleCarrier, ShipRolePatrol, ShipRoleSatellite,
	ShipRoleExplorer, ShipRoleRefinery,
)

func (r *ShipRole) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, r, shipRoles, "ShipRole")
}

type ShipRegistration struct {
	Name          string        `json:"name" validate:"required"`
	FactionSymbol FactionSymbol `json:"factionSymbol" validate:"required"`
	Role          ShipRole      `json:"role" validate:"required"`
}

// CrewRotation is the shift pattern of a ship's crew
type CrewRotation string

const (
	CrewRotationStrict  CrewRotation = "STRICT"
	CrewRotationRelaxed CrewRotation = "RELAXED"
)

var crewRotations = newEnumSet(CrewRotationStrict, CrewRotationRelaxed)

func (r *CrewRotation) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, r, crewRotations, "CrewRotation")
}

type ShipCrew struct {
	Current  int          `json:"current"`
	Required int          `json:"required"`
	Capacity int          `json:"capacity"`
	Rotation CrewRotation `json:"rotation" validate:"required"`
	Morale   int          `json:"morale"`
	Wages    int          `json:"wages"`
}

// ShipRequirements is what a component needs from the ship to operate
type ShipRequirements struct {
	Power *int `json:"power,omitempty"`
	Crew  *int `json:"crew,omitempty"`
	Slots *int `json:"slots,omitempty"`
}

type ShipCooldown struct {
	ShipSymbol       string     `json:"shipSymbol" validate:"required"`
	TotalSeconds     int        `json:"totalSeconds"`
	RemainingSeconds int        `json:"remainingSeconds"`
	Expiration       *time.Time `json:"expiration,omitempty"`
}

type ShipCargo struct {
	Capacity  int             `json:"capacity"`
	Units     int             `json:"units"`
	Inventory []InventoryItem `json:"inventory" validate:"dive"`
}

// InventoryItem is a stack of one trade good in a cargo hold
type InventoryItem struct {
	Symbol      string `json:"symbol" validate:"required"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Units       int    `json:"units"`
}

type FuelData struct {
	Current  int           `json:"current"`
	Capacity int           `json:"capacity"`
	Consumed *FuelConsumed `json:"consumed,omitempty"`
}

type FuelConsumed struct {
	Amount    int       `json:"amount"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
}

// RefuelRequest is the body of POST /my/ships/{symbol}/refuel
type RefuelRequest struct {
	Units *int `json:"units,omitempty"`
}

// RefuelData is returned by a refuel command
type RefuelData struct {
	Agent       AgentData         `json:"agent"`
	Fuel        FuelData          `json:"fuel"`
	Transaction MarketTransaction `json:"transaction"`
}
