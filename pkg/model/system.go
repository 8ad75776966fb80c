package model

// SystemType is the kind of star at the centre of a system
type SystemType string

const (
	SystemNeutronStar SystemType = "NEUTRON_STAR"
	SystemRedStar     SystemType = "RED_STAR"
	SystemOrangeStar  SystemType = "ORANGE_STAR"
	SystemBlueStar    SystemType = "BLUE_STAR"
	SystemYoungStar   SystemType = "YOUNG_STAR"
	SystemWhiteDwarf  SystemType = "WHITE_DWARF"
	SystemBlackHole   SystemType = "BLACK_HOLE"
	SystemHypergiant  SystemType = "HYPERGIANT"
	SystemNebula      SystemType = "NEBULA"
	SystemUnstable    SystemType = "UNSTABLE"
)

var systemTypes = newEnumSet(
	SystemNeutronStar, SystemRedStar, SystemOrangeStar, SystemBlueStar, SystemYoungStar,
	SystemWhiteDwarf, SystemBlackHole, SystemHypergiant, SystemNebula, SystemUnstable,
)

func (t *SystemType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, t, systemTypes, "SystemType")
}

// SystemData is a star system
type SystemData struct {
	Symbol        string           `json:"symbol" validate:"required"`
	SectorSymbol  string           `json:"sectorSymbol" validate:"required"`
	Constellation *string          `json:"constellation,omitempty"`
	Name          *string          `json:"name,omitempty"`
	Type          SystemType       `json:"type" validate:"required"`
	X             int              `json:"x"`
	Y             int              `json:"y"`
	Waypoints     []SystemWaypoint `json:"waypoints" validate:"dive"`
	Factions      []SystemFaction  `json:"factions" validate:"dive"`
}

// SystemWaypoint is the summary of a waypoint listed inside its system
type SystemWaypoint struct {
	Symbol   string            `json:"symbol" validate:"required"`
	Type     WaypointType      `json:"type" validate:"required"`
	X        int               `json:"x"`
	Y        int               `json:"y"`
	Orbitals []WaypointOrbital `json:"orbitals" validate:"dive"`
	Orbits   *string           `json:"orbits,omitempty"`
}

type SystemFaction struct {
	Symbol FactionSymbol `json:"symbol" validate:"required"`
}
