package model

// FrameType is the hull a ship is built on
type FrameType string

const (
	FrameProbe          FrameType = "FRAME_PROBE"
	FrameDrone          FrameType = "FRAME_DRONE"
	FrameInterceptor    FrameType = "FRAME_INTERCEPTOR"
	FrameRacer          FrameType = "FRAME_RACER"
	FrameFighter        FrameType = "FRAME_FIGHTER"
	FrameFrigate        FrameType = "FRAME_FRIGATE"
	FrameShuttle        FrameType = "FRAME_SHUTTLE"
	FrameExplorer       FrameType = "FRAME_EXPLORER"
	FrameMiner          FrameType = "FRAME_MINER"
	FrameLightFreighter FrameType = "FRAME_LIGHT_FREIGHTER"
	FrameHeavyFreighter FrameType = "FRAME_HEAVY_FREIGHTER"
	FrameTransport      FrameType = "FRAME_TRANSPORT"
	FrameDestroyer      FrameType = "FRAME_DESTROYER"
	FrameCruiser        FrameType = "FRAME_CRUISER"
	FrameCarrier        FrameType = "FRAME_CARRIER"
	FrameBulkFreighter  FrameType = "FRAME_BULK_FREIGHTER"
)

var frameTypes = newEnumSet(
	FrameProbe, FrameDrone, FrameInterceptor, FrameRacer, FrameFighter,
	FrameFrigate, FrameShuttle, FrameExplorer, FrameMiner, FrameLightFreighter,
	FrameHeavyFreighter, FrameTransport, FrameDestroyer, FrameCruiser, FrameCarrier,
	FrameBulkFreighter,
)

func (f *FrameType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, f, frameTypes, "FrameType")
}

type ShipFrame struct {
	Symbol         FrameType        `json:"symbol" validate:"required"`
	Name           string           `json:"name" validate:"required"`
	Description    string           `json:"description"`
	Condition      *float64         `json:"condition,omitempty"`
	ModuleSlots    int              `json:"moduleSlots"`
	MountingPoints int              `json:"mountingPoints"`
	FuelCapacity   int              `json:"fuelCapacity"`
	Requirements   ShipRequirements `json:"requirements"`
}

// ReactorType is the power plant of a ship
type ReactorType string

const (
	ReactorSolarI      ReactorType = "REACTOR_SOLAR_I"
	ReactorFusionI     ReactorType = "REACTOR_FUSION_I"
	ReactorFissionI    ReactorType = "REACTOR_FISSION_I"
	ReactorChemicalI   ReactorType = "REACTOR_CHEMICAL_I"
	ReactorAntimatterI ReactorType = "REACTOR_ANTIMATTER_I"
)

var reactorTypes = newEnumSet(ReactorSolarI, ReactorFusionI, ReactorFissionI, ReactorChemicalI, ReactorAntimatterI)

func (r *ReactorType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, r, reactorTypes, "ReactorType")
}

type ShipReactor struct {
	Symbol       ReactorType      `json:"symbol" validate:"required"`
	Name         string           `json:"name" validate:"required"`
	Description  string           `json:"description"`
	Condition    *float64         `json:"condition,omitempty"`
	PowerOutput  int              `json:"powerOutput"`
	Requirements ShipRequirements `json:"requirements"`
}

// EngineType is the drive of a ship
type EngineType string

const (
	EngineImpulseDriveI EngineType = "ENGINE_IMPULSE_DRIVE_I"
	EngineIonDriveI     EngineType = "ENGINE_ION_DRIVE_I"
	EngineIonDriveII    EngineType = "ENGINE_ION_DRIVE_II"
	EngineHyperDriveI   EngineType = "ENGINE_HYPER_DRIVE_I"
)

var engineTypes = newEnumSet(EngineImpulseDriveI, EngineIonDriveI, EngineIonDriveII, EngineHyperDriveI)

func (e *EngineType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, engineTypes, "EngineType")
}

type ShipEngine struct {
	Symbol       EngineType       `json:"symbol" validate:"required"`
	Name         string           `json:"name" validate:"required"`
	Description  string           `json:"description"`
	Condition    *float64         `json:"condition,omitempty"`
	Speed        int              `json:"speed"`
	Requirements ShipRequirements `json:"requirements"`
}

// ModuleType is an internal ship module
type ModuleType string

const (
	ModuleMineralProcessorI ModuleType = "MODULE_MINERAL_PROCESSOR_I"
	ModuleGasProcessorI     ModuleType = "MODULE_GAS_PROCESSOR_I"
	ModuleCargoHoldI        ModuleType = "MODULE_CARGO_HOLD_I"
	ModuleCargoHoldII       ModuleType = "MODULE_CARGO_HOLD_II"
	ModuleCargoHoldIII      ModuleType = "MODULE_CARGO_HOLD_III"
	ModuleCrewQuartersI     ModuleType = "MODULE_CREW_QUARTERS_I"
	ModuleEnvoyQuartersI    ModuleType = "MODULE_ENVOY_QUARTERS_I"
	ModulePassengerCabinI   ModuleType = "MODULE_PASSENGER_CABIN_I"
	ModuleMicroRefineryI    ModuleType = "MODULE_MICRO_REFINERY_I"
	ModuleOreRefineryI      ModuleType = "MODULE_ORE_REFINERY_I"
	ModuleFuelRefineryI     ModuleType = "MODULE_FUEL_REFINERY_I"
	ModuleScienceLabI       ModuleType = "MODULE_SCIENCE_LAB_I"
	ModuleJumpDriveI        ModuleType = "MODULE_JUMP_DRIVE_I"
	ModuleJumpDriveII       ModuleType = "MODULE_JUMP_DRIVE_II"
	ModuleJumpDriveIII      ModuleType = "MODULE_JUMP_DRIVE_III"
	ModuleWarpDriveI        ModuleType = "MODULE_WARP_DRIVE_I"
	ModuleWarpDriveII       ModuleType = "MODULE_WARP_DRIVE_II"
	ModuleWarpDriveIII      ModuleType = "MODULE_WARP_DRIVE_III"
	ModuleShieldGeneratorI  ModuleType = "MODULE_SHIELD_GENERATOR_I"
	ModuleShieldGeneratorII ModuleType = "MODULE_SHIELD_GENERATOR_II"
)

var moduleTypes = newEnumSet(
	ModuleMineralProcessorI, ModuleGasProcessorI, ModuleCargoHoldI, ModuleCargoHoldII,
	ModuleCargoHoldIII, ModuleCrewQuartersI, ModuleEnvoyQuartersI, ModulePassengerCabinI,
	ModuleMicroRefineryI, ModuleOreRefineryI, ModuleFuelRefineryI, ModuleScienceLabI,
	ModuleJumpDriveI, ModuleJumpDriveII, ModuleJumpDriveIII, ModuleWarpDriveI,
	ModuleWarpDriveII, ModuleWarpDriveIII, ModuleShieldGeneratorI, ModuleShieldGeneratorII,
)

func (m *ModuleType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, m, moduleTypes, "ModuleType")
}

type ShipModule struct {
	Symbol       ModuleType       `json:"symbol" validate:"required"`
	Capacity     *int             `json:"capacity,omitempty"`
	Range        *int             `json:"range,omitempty"`
	Name         string           `json:"name" validate:"required"`
	Description  string           `json:"description"`
	Requirements ShipRequirements `json:"requirements"`
}

// MountType is an external ship mount
type MountType string

const (
	MountGasSiphonI       MountType = "MOUNT_GAS_SIPHON_I"
	MountGasSiphonII      MountType = "MOUNT_GAS_SIPHON_II"
	MountGasSiphonIII     MountType = "MOUNT_GAS_SIPHON_III"
	MountSurveyorI        MountType = "MOUNT_SURVEYOR_I"
	MountSurveyorII       MountType = "MOUNT_SURVEYOR_II"
	MountSurveyorIII      MountType = "MOUNT_SURVEYOR_III"
	MountSensorArrayI     MountType = "MOUNT_SENSOR_ARRAY_I"
	MountSensorArrayII    MountType = "MOUNT_SENSOR_ARRAY_II"
	MountSensorArrayIII   MountType = "MOUNT_SENSOR_ARRAY_III"
	MountMiningLaserI     MountType = "MOUNT_MINING_LASER_I"
	MountMiningLaserII    MountType = "MOUNT_MINING_LASER_II"
	MountMiningLaserIII   MountType = "MOUNT_MINING_LASER_III"
	MountLaserCannonI     MountType = "MOUNT_LASER_CANNON_I"
	MountMissileLauncherI MountType = "MOUNT_MISSILE_LAUNCHER_I"
	MountTurretI          MountType = "MOUNT_TURRET_I"
)

var mountTypes = newEnumSet(
	MountGasSiphonI, MountGasSiphonII, MountGasSiphonIII, MountSurveyorI,
	MountSurveyorII, MountSurveyorIII, MountSensorArrayI, MountSensorArrayII,
	MountSensorArrayIII, MountMiningLaserI, MountMiningLaserII, MountMiningLaserIII,
	MountLaserCannonI, MountMissileLauncherI, MountTurretI,
)

func (m *MountType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, m, mountTypes, "MountType")
}

type ShipMount struct {
	Symbol       MountType        `json:"symbol" validate:"required"`
	Name         string           `json:"name" validate:"required"`
	Description  *string          `json:"description,omitempty"`
	Strength     *int             `json:"strength,omitempty"`
	Deposits     []ResourceType   `json:"deposits,omitempty"`
	Requirements ShipRequirements `json:"requirements"`
}

// ResourceType is a deposit a surveyor can detect
type ResourceType string

const (
	ResourceQuartzSand      ResourceType = "QUARTZ_SAND"
	ResourceSiliconCrystals ResourceType = "SILICON_CRYSTALS"
	ResourcePreciousStones  ResourceType = "PRECIOUS_STONES"
	ResourceIceWater        ResourceType = "ICE_WATER"
	ResourceAmmoniaIce      ResourceType = "AMMONIA_ICE"
	ResourceIronOre         ResourceType = "IRON_ORE"
	ResourceCopperOre       ResourceType = "COPPER_ORE"
	ResourceSilverOre       ResourceType = "SILVER_ORE"
	ResourceAluminumOre     ResourceType = "ALUMINUM_ORE"
	ResourceGoldOre         ResourceType = "GOLD_ORE"
	ResourcePlatinumOre     ResourceType = "PLATINUM_ORE"
	ResourceDiamonds        ResourceType = "DIAMONDS"
	ResourceUraniteOre      ResourceType = "URANITE_ORE"
	ResourceMeritiumOre     ResourceType = "MERITIUM_ORE"
)

var resourceTypes = newEnumSet(
	ResourceQuartzSand, ResourceSiliconCrystals, ResourcePreciousStones, ResourceIceWater,
	ResourceAmmoniaIce, ResourceIronOre, ResourceCopperOre, ResourceSilverOre,
	ResourceAluminumOre, ResourceGoldOre, ResourcePlatinumOre, ResourceDiamonds,
	ResourceUraniteOre, ResourceMeritiumOre,
)

func (r *ResourceType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, r, resourceTypes, "ResourceType")
}
