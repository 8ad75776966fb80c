package model

import "time"

// WaypointType is the kind of a navigable location
type WaypointType string

const (
	WaypointPlanet                WaypointType = "PLANET"
	WaypointGasGiant              WaypointType = "GAS_GIANT"
	WaypointMoon                  WaypointType = "MOON"
	WaypointOrbitalStation        WaypointType = "ORBITAL_STATION"
	WaypointJumpGate              WaypointType = "JUMP_GATE"
	WaypointAsteroidField         WaypointType = "ASTEROID_FIELD"
	WaypointAsteroid              WaypointType = "ASTEROID"
	WaypointEngineeredAsteroid    WaypointType = "ENGINEERED_ASTEROID"
	WaypointAsteroidBase          WaypointType = "ASTEROID_BASE"
	WaypointNebula                WaypointType = "NEBULA"
	WaypointDebrisField           WaypointType = "DEBRIS_FIELD"
	WaypointGravityWell           WaypointType = "GRAVITY_WELL"
	WaypointArtificialGravityWell WaypointType = "ARTIFICIAL_GRAVITY_WELL"
	WaypointFuelStation           WaypointType = "FUEL_STATION"
)

var waypointTypes = newEnumSet(
	WaypointPlanet, WaypointGasGiant, WaypointMoon, WaypointOrbitalStation,
	WaypointJumpGate, WaypointAsteroidField, WaypointAsteroid, WaypointEngineeredAsteroid,
	WaypointAsteroidBase, WaypointNebula, WaypointDebrisField, WaypointGravityWell,
	WaypointArtificialGravityWell, WaypointFuelStation,
)

func (t *WaypointType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, t, waypointTypes, "WaypointType")
}

// ParseWaypointType parses a waypoint type such as "gas-giant" or "GAS_GIANT"
func ParseWaypointType(s string) (WaypointType, error) {
	return parseEnum(s, waypointTypes, "WaypointType")
}

// WaypointTraitSymbol is a descriptive trait of a waypoint
type WaypointTraitSymbol string

const (
	TraitUncharted             WaypointTraitSymbol = "UNCHARTED"
	TraitUnderConstruction     WaypointTraitSymbol = "UNDER_CONSTRUCTION"
	TraitMarketplace           WaypointTraitSymbol = "MARKETPLACE"
	TraitShipyard              WaypointTraitSymbol = "SHIPYARD"
	TraitOutpost               WaypointTraitSymbol = "OUTPOST"
	TraitScatteredSettlements  WaypointTraitSymbol = "SCATTERED_SETTLEMENTS"
	TraitSprawlingCities       WaypointTraitSymbol = "SPRAWLING_CITIES"
	TraitMegaStructures        WaypointTraitSymbol = "MEGA_STRUCTURES"
	TraitPirateBase            WaypointTraitSymbol = "PIRATE_BASE"
	TraitOvercrowded           WaypointTraitSymbol = "OVERCROWDED"
	TraitHighTech              WaypointTraitSymbol = "HIGH_TECH"
	TraitCorrupt               WaypointTraitSymbol = "CORRUPT"
	TraitBureaucratic          WaypointTraitSymbol = "BUREAUCRATIC"
	TraitTradingHub            WaypointTraitSymbol = "TRADING_HUB"
	TraitIndustrial            WaypointTraitSymbol = "INDUSTRIAL"
	TraitBlackMarket           WaypointTraitSymbol = "BLACK_MARKET"
	TraitResearchFacility      WaypointTraitSymbol = "RESEARCH_FACILITY"
	TraitMilitaryBase          WaypointTraitSymbol = "MILITARY_BASE"
	TraitSurveillanceOutpost   WaypointTraitSymbol = "SURVEILLANCE_OUTPOST"
	TraitExplorationOutpost    WaypointTraitSymbol = "EXPLORATION_OUTPOST"
	TraitMineralDeposits       WaypointTraitSymbol = "MINERAL_DEPOSITS"
	TraitCommonMetalDeposits   WaypointTraitSymbol = "COMMON_METAL_DEPOSITS"
	TraitPreciousMetalDeposits WaypointTraitSymbol = "PRECIOUS_METAL_DEPOSITS"
	TraitRareMetalDeposits     WaypointTraitSymbol = "RARE_METAL_DEPOSITS"
	TraitMethanePools          WaypointTraitSymbol = "METHANE_POOLS"
	TraitIceCrystals           WaypointTraitSymbol = "ICE_CRYSTALS"
	TraitExplosiveGases        WaypointTraitSymbol = "EXPLOSIVE_GASES"
	TraitStrongMagnetosphere   WaypointTraitSymbol = "STRONG_MAGNETOSPHERE"
	TraitVibrantAuroras        WaypointTraitSymbol = "VIBRANT_AURORAS"
	TraitSaltFlats             WaypointTraitSymbol = "SALT_FLATS"
	TraitCanyons               WaypointTraitSymbol = "CANYONS"
	TraitPerpetualDaylight     WaypointTraitSymbol = "PERPETUAL_DAYLIGHT"
	TraitPerpetualOvercast     WaypointTraitSymbol = "PERPETUAL_OVERCAST"
	TraitDrySeabeds            WaypointTraitSymbol = "DRY_SEABEDS"
	TraitMagmaSeas             WaypointTraitSymbol = "MAGMA_SEAS"
	TraitSupervolcanoes        WaypointTraitSymbol = "SUPERVOLCANOES"
	TraitAshClouds             WaypointTraitSymbol = "ASH_CLOUDS"
	TraitVastRuins             WaypointTraitSymbol = "VAST_RUINS"
	TraitMutatedFlora          WaypointTraitSymbol = "MUTATED_FLORA"
	TraitTerraformed           WaypointTraitSymbol = "TERRAFORMED"
	TraitExtremeTemperatures   WaypointTraitSymbol = "EXTREME_TEMPERATURES"
	TraitExtremePressure       WaypointTraitSymbol = "EXTREME_PRESSURE"
	TraitDiverseLife           WaypointTraitSymbol = "DIVERSE_LIFE"
	TraitScarceLife            WaypointTraitSymbol = "SCARCE_LIFE"
	TraitFossils               WaypointTraitSymbol = "FOSSILS"
	TraitWeakGravity           WaypointTraitSymbol = "WEAK_GRAVITY"
	TraitStrongGravity         WaypointTraitSymbol = "STRONG_GRAVITY"
	TraitCrushingGravity       WaypointTraitSymbol = "CRUSHING_GRAVITY"
	TraitToxicAtmosphere       WaypointTraitSymbol = "TOXIC_ATMOSPHERE"
	TraitCorrosiveAtmosphere   WaypointTraitSymbol = "CORROSIVE_ATMOSPHERE"
	TraitBreathableAtmosphere  WaypointTraitSymbol = "BREATHABLE_ATMOSPHERE"
	TraitThinAtmosphere        WaypointTraitSymbol = "THIN_ATMOSPHERE"
	TraitJovian                WaypointTraitSymbol = "JOVIAN"
	TraitRocky                 WaypointTraitSymbol = "ROCKY"
	TraitVolcanic              WaypointTraitSymbol = "VOLCANIC"
	TraitFrozen                WaypointTraitSymbol = "FROZEN"
	TraitSwamp                 WaypointTraitSymbol = "SWAMP"
	TraitBarren                WaypointTraitSymbol = "BARREN"
	TraitTemperate             WaypointTraitSymbol = "TEMPERATE"
	TraitJungle                WaypointTraitSymbol = "JUNGLE"
	TraitOcean                 WaypointTraitSymbol = "OCEAN"
	TraitRadioactive           WaypointTraitSymbol = "RADIOACTIVE"
	TraitMicroGravityAnomalies WaypointTraitSymbol = "MICRO_GRAVITY_ANOMALIES"
	TraitDebrisCluster         WaypointTraitSymbol = "DEBRIS_CLUSTER"
	TraitDeepCraters           WaypointTraitSymbol = "DEEP_CRATERS"
	TraitShallowCraters        WaypointTraitSymbol = "SHALLOW_CRATERS"
	TraitUnstableComposition   WaypointTraitSymbol = "UNSTABLE_COMPOSITION"
	TraitHollowedInterior      WaypointTraitSymbol = "HOLLOWED_INTERIOR"
	TraitStripped              WaypointTraitSymbol = "STRIPPED"
)

var waypointTraitSymbols = newEnumSet(
	TraitUncharted, TraitUnderConstruction, TraitMarketplace, TraitShipyard, TraitOutpost,
	TraitScatteredSettlements, TraitSprawlingCities, TraitMegaStructures, TraitPirateBase,
	TraitOvercrowded, TraitHighTech, TraitCorrupt, TraitBureaucratic, TraitTradingHub,
	TraitIndustrial, TraitBlackMarket, TraitResearchFacility, TraitMilitaryBase,
	TraitSurveillanceOutpost, TraitExplorationOutpost, TraitMineralDeposits,
	TraitCommonMetalDeposits, TraitPreciousMetalDeposits, TraitRareMetalDeposits,
	TraitMethanePools, TraitIceCrystals, TraitExplosiveGases, TraitStrongMagnetosphere,
	TraitVibrantAuroras, TraitSaltFlats, TraitCanyons, TraitPerpetualDaylight,
	TraitPerpetualOvercast, TraitDrySeabeds, TraitMagmaSeas, TraitSupervolcanoes,
	TraitAshClouds, TraitVastRuins, TraitMutatedFlora, TraitTerraformed,
	TraitExtremeTemperatures, TraitExtremePressure, TraitDiverseLife, TraitScarceLife,
	TraitFossils, TraitWeakGravity, TraitStrongGravity, TraitCrushingGravity,
	TraitToxicAtmosphere, TraitCorrosiveAtmosphere, TraitBreathableAtmosphere,
	TraitThinAtmosphere, TraitJovian, TraitRocky, TraitVolcanic, TraitFrozen, TraitSwamp,
	TraitBarren, TraitTemperate, TraitJungle, TraitOcean, TraitRadioactive,
	TraitMicroGravityAnomalies, TraitDebrisCluster, TraitDeepCraters, TraitShallowCraters,
	TraitUnstableComposition, TraitHollowedInterior, TraitStripped,
)

func (t *WaypointTraitSymbol) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, t, waypointTraitSymbols, "WaypointTraitSymbol")
}

// ParseWaypointTrait parses a trait name such as "marketplace" or "MARKETPLACE"
func ParseWaypointTrait(s string) (WaypointTraitSymbol, error) {
	return parseEnum(s, waypointTraitSymbols, "WaypointTraitSymbol")
}

// WaypointModifierSymbol is a temporary condition affecting a waypoint
type WaypointModifierSymbol string

const (
	ModifierStripped      WaypointModifierSymbol = "STRIPPED"
	ModifierUnstable      WaypointModifierSymbol = "UNSTABLE"
	ModifierRadiationLeak WaypointModifierSymbol = "RADIATION_LEAK"
	ModifierCriticalLimit WaypointModifierSymbol = "CRITICAL_LIMIT"
	ModifierCivilUnrest   WaypointModifierSymbol = "CIVIL_UNREST"
)

var waypointModifierSymbols = newEnumSet(
	ModifierStripped, ModifierUnstable, ModifierRadiationLeak, ModifierCriticalLimit, ModifierCivilUnrest,
)

func (m *WaypointModifierSymbol) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, m, waypointModifierSymbols, "WaypointModifierSymbol")
}

// WaypointData is a navigable location within a system
type WaypointData struct {
	Symbol              string             `json:"symbol" validate:"required"`
	Type                WaypointType       `json:"type" validate:"required"`
	SystemSymbol        string             `json:"systemSymbol" validate:"required"`
	X                   int                `json:"x"`
	Y                   int                `json:"y"`
	Orbitals            []WaypointOrbital  `json:"orbitals" validate:"dive"`
	Orbits              *string            `json:"orbits,omitempty"`
	Faction             *WaypointFaction   `json:"faction,omitempty"`
	Traits              []WaypointTrait    `json:"traits" validate:"dive"`
	Modifiers           []WaypointModifier `json:"modifiers,omitempty" validate:"omitempty,dive"`
	Chart               *Chart             `json:"chart,omitempty"`
	IsUnderConstruction bool               `json:"isUnderConstruction"`
}

// HasTrait reports whether the waypoint carries the given trait
func (w WaypointData) HasTrait(symbol WaypointTraitSymbol) bool {
	for _, t := range w.Traits {
		if t.Symbol == symbol {
			return true
		}
	}
	return false
}

type WaypointOrbital struct {
	Symbol string `json:"symbol" validate:"required"`
}

type WaypointFaction struct {
	Symbol FactionSymbol `json:"symbol" validate:"required"`
}

type WaypointTrait struct {
	Symbol      WaypointTraitSymbol `json:"symbol" validate:"required"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
}

type WaypointModifier struct {
	Symbol      WaypointModifierSymbol `json:"symbol" validate:"required"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
}

// Chart records who first charted a waypoint
type Chart struct {
	WaypointSymbol *string    `json:"waypointSymbol,omitempty"`
	SubmittedBy    *string    `json:"submittedBy,omitempty"`
	SubmittedOn    *time.Time `json:"submittedOn,omitempty"`
}

// WaypointQuery holds the optional filters of GET /systems/{symbol}/waypoints
type WaypointQuery struct {
	Page  *int                 `url:"page,omitempty"`
	Limit *int                 `url:"limit,omitempty"`
	Type  *WaypointType        `url:"type,omitempty"`
	Trait *WaypointTraitSymbol `url:"trait,omitempty"`
}
