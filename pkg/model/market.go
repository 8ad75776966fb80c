package model

import "time"

// TradeSymbol identifies a trade good
type TradeSymbol string

const (
	TradePreciousStones          TradeSymbol = "PRECIOUS_STONES"
	TradeQuartzSand              TradeSymbol = "QUARTZ_SAND"
	TradeSiliconCrystals         TradeSymbol = "SILICON_CRYSTALS"
	TradeAmmoniaIce              TradeSymbol = "AMMONIA_ICE"
	TradeLiquidHydrogen          TradeSymbol = "LIQUID_HYDROGEN"
	TradeLiquidNitrogen          TradeSymbol = "LIQUID_NITROGEN"
	TradeIceWater                TradeSymbol = "ICE_WATER"
	TradeExoticMatter            TradeSymbol = "EXOTIC_MATTER"
	TradeAdvancedCircuitry       TradeSymbol = "ADVANCED_CIRCUITRY"
	TradeGravitonEmitters        TradeSymbol = "GRAVITON_EMITTERS"
	TradeIron                    TradeSymbol = "IRON"
	TradeIronOre                 TradeSymbol = "IRON_ORE"
	TradeCopper                  TradeSymbol = "COPPER"
	TradeCopperOre               TradeSymbol = "COPPER_ORE"
	TradeAluminum                TradeSymbol = "ALUMINUM"
	TradeAluminumOre             TradeSymbol = "ALUMINUM_ORE"
	TradeSilver                  TradeSymbol = "SILVER"
	TradeSilverOre               TradeSymbol = "SILVER_ORE"
	TradeGold                    TradeSymbol = "GOLD"
	TradeGoldOre                 TradeSymbol = "GOLD_ORE"
	TradePlatinum                TradeSymbol = "PLATINUM"
	TradePlatinumOre             TradeSymbol = "PLATINUM_ORE"
	TradeDiamonds                TradeSymbol = "DIAMONDS"
	TradeUranite                 TradeSymbol = "URANITE"
	TradeUraniteOre              TradeSymbol = "URANITE_ORE"
	TradeMeritium                TradeSymbol = "MERITIUM"
	TradeMeritiumOre             TradeSymbol = "MERITIUM_ORE"
	TradeHydrocarbon             TradeSymbol = "HYDROCARBON"
	TradeAntimatter              TradeSymbol = "ANTIMATTER"
	TradeFabMats                 TradeSymbol = "FAB_MATS"
	TradeFertilizers             TradeSymbol = "FERTILIZERS"
	TradeFabrics                 TradeSymbol = "FABRICS"
	TradeFood                    TradeSymbol = "FOOD"
	TradeJewelry                 TradeSymbol = "JEWELRY"
	TradeMachinery               TradeSymbol = "MACHINERY"
	TradeFirearms                TradeSymbol = "FIREARMS"
	TradeAssaultRifles           TradeSymbol = "ASSAULT_RIFLES"
	TradeMilitaryEquipment       TradeSymbol = "MILITARY_EQUIPMENT"
	TradeExplosives              TradeSymbol = "EXPLOSIVES"
	TradeLabInstruments          TradeSymbol = "LAB_INSTRUMENTS"
	TradeAmmunition              TradeSymbol = "AMMUNITION"
	TradeElectronics             TradeSymbol = "ELECTRONICS"
	TradeShipPlating             TradeSymbol = "SHIP_PLATING"
	TradeShipParts               TradeSymbol = "SHIP_PARTS"
	TradeEquipment               TradeSymbol = "EQUIPMENT"
	TradeFuel                    TradeSymbol = "FUEL"
	TradeMedicine                TradeSymbol = "MEDICINE"
	TradeDrugs                   TradeSymbol = "DRUGS"
	TradeClothing                TradeSymbol = "CLOTHING"
	TradeMicroprocessors         TradeSymbol = "MICROPROCESSORS"
	TradePlastics                TradeSymbol = "PLASTICS"
	TradePolynucleotides         TradeSymbol = "POLYNUCLEOTIDES"
	TradeBiocomposites           TradeSymbol = "BIOCOMPOSITES"
	TradeQuantumStabilizers      TradeSymbol = "QUANTUM_STABILIZERS"
	TradeNanobots                TradeSymbol = "NANOBOTS"
	TradeAiMainframes            TradeSymbol = "AI_MAINFRAMES"
	TradeQuantumDrives           TradeSymbol = "QUANTUM_DRIVES"
	TradeRoboticDrones           TradeSymbol = "ROBOTIC_DRONES"
	TradeCyberImplants           TradeSymbol = "CYBER_IMPLANTS"
	TradeGeneTherapeutics        TradeSymbol = "GENE_THERAPEUTICS"
	TradeNeuralChips             TradeSymbol = "NEURAL_CHIPS"
	TradeMoodRegulators          TradeSymbol = "MOOD_REGULATORS"
	TradeViralAgents             TradeSymbol = "VIRAL_AGENTS"
	TradeMicroFusionGenerators   TradeSymbol = "MICRO_FUSION_GENERATORS"
	TradeSupergrains             TradeSymbol = "SUPERGRAINS"
	TradeLaserRifles             TradeSymbol = "LASER_RIFLES"
	TradeHolographics            TradeSymbol = "HOLOGRAPHICS"
	TradeShipSalvage             TradeSymbol = "SHIP_SALVAGE"
	TradeRelicTech               TradeSymbol = "RELIC_TECH"
	TradeNovelLifeforms          TradeSymbol = "NOVEL_LIFEFORMS"
	TradeBotanicalSpecimens      TradeSymbol = "BOTANICAL_SPECIMENS"
	TradeCulturalArtifacts       TradeSymbol = "CULTURAL_ARTIFACTS"
	TradeFrameProbe              TradeSymbol = "FRAME_PROBE"
	TradeFrameDrone              TradeSymbol = "FRAME_DRONE"
	TradeFrameInterceptor        TradeSymbol = "FRAME_INTERCEPTOR"
	TradeFrameRacer              TradeSymbol = "FRAME_RACER"
	TradeFrameFighter            TradeSymbol = "FRAME_FIGHTER"
	TradeFrameFrigate            TradeSymbol = "FRAME_FRIGATE"
	TradeFrameShuttle            TradeSymbol = "FRAME_SHUTTLE"
	TradeFrameExplorer           TradeSymbol = "FRAME_EXPLORER"
	TradeFrameMiner              TradeSymbol = "FRAME_MINER"
	TradeFrameLightFreighter     TradeSymbol = "FRAME_LIGHT_FREIGHTER"
	TradeFrameHeavyFreighter     TradeSymbol = "FRAME_HEAVY_FREIGHTER"
	TradeFrameTransport          TradeSymbol = "FRAME_TRANSPORT"
	TradeFrameDestroyer          TradeSymbol = "FRAME_DESTROYER"
	TradeFrameCruiser            TradeSymbol = "FRAME_CRUISER"
	TradeFrameCarrier            TradeSymbol = "FRAME_CARRIER"
	TradeFrameBulkFreighter      TradeSymbol = "FRAME_BULK_FREIGHTER"
	TradeReactorSolarI           TradeSymbol = "REACTOR_SOLAR_I"
	TradeReactorFusionI          TradeSymbol = "REACTOR_FUSION_I"
	TradeReactorFissionI         TradeSymbol = "REACTOR_FISSION_I"
	TradeReactorChemicalI        TradeSymbol = "REACTOR_CHEMICAL_I"
	TradeReactorAntimatterI      TradeSymbol = "REACTOR_ANTIMATTER_I"
	TradeEngineImpulseDriveI     TradeSymbol = "ENGINE_IMPULSE_DRIVE_I"
	TradeEngineIonDriveI         TradeSymbol = "ENGINE_ION_DRIVE_I"
	TradeEngineIonDriveII        TradeSymbol = "ENGINE_ION_DRIVE_II"
	TradeEngineHyperDriveI       TradeSymbol = "ENGINE_HYPER_DRIVE_I"
	TradeModuleMineralProcessorI TradeSymbol = "MODULE_MINERAL_PROCESSOR_I"
	TradeModuleGasProcessorI     TradeSymbol = "MODULE_GAS_PROCESSOR_I"
	TradeModuleCargoHoldI        TradeSymbol = "MODULE_CARGO_HOLD_I"
	TradeModuleCargoHoldII       TradeSymbol = "MODULE_CARGO_HOLD_II"
	TradeModuleCargoHoldIII      TradeSymbol = "MODULE_CARGO_HOLD_III"
	TradeModuleCrewQuartersI     TradeSymbol = "MODULE_CREW_QUARTERS_I"
	TradeModuleEnvoyQuartersI    TradeSymbol = "MODULE_ENVOY_QUARTERS_I"
	TradeModulePassengerCabinI   TradeSymbol = "MODULE_PASSENGER_CABIN_I"
	TradeModuleMicroRefineryI    TradeSymbol = "MODULE_MICRO_REFINERY_I"
	TradeModuleScienceLabI       TradeSymbol = "MODULE_SCIENCE_LAB_I"
	TradeModuleJumpDriveI        TradeSymbol = "MODULE_JUMP_DRIVE_I"
	TradeModuleJumpDriveII       TradeSymbol = "MODULE_JUMP_DRIVE_II"
	TradeModuleJumpDriveIII      TradeSymbol = "MODULE_JUMP_DRIVE_III"
	TradeModuleWarpDriveI        TradeSymbol = "MODULE_WARP_DRIVE_I"
	TradeModuleWarpDriveII       TradeSymbol = "MODULE_WARP_DRIVE_II"
	TradeModuleWarpDriveIII      TradeSymbol = "MODULE_WARP_DRIVE_III"
	TradeModuleShieldGeneratorI  TradeSymbol = "MODULE_SHIELD_GENERATOR_I"
	TradeModuleShieldGeneratorII TradeSymbol = "MODULE_SHIELD_GENERATOR_II"
	TradeModuleOreRefineryI      TradeSymbol = "MODULE_ORE_REFINERY_I"
	TradeModuleFuelRefineryI     TradeSymbol = "MODULE_FUEL_REFINERY_I"
	TradeMountGasSiphonI         TradeSymbol = "MOUNT_GAS_SIPHON_I"
	TradeMountGasSiphonII        TradeSymbol = "MOUNT_GAS_SIPHON_II"
	TradeMountGasSiphonIII       TradeSymbol = "MOUNT_GAS_SIPHON_III"
	TradeMountSurveyorI          TradeSymbol = "MOUNT_SURVEYOR_I"
	TradeMountSurveyorII         TradeSymbol = "MOUNT_SURVEYOR_II"
	TradeMountSurveyorIII        TradeSymbol = "MOUNT_SURVEYOR_III"
	TradeMountSensorArrayI       TradeSymbol = "MOUNT_SENSOR_ARRAY_I"
	TradeMountSensorArrayII      TradeSymbol = "MOUNT_SENSOR_ARRAY_II"
	TradeMountSensorArrayIII     TradeSymbol = "MOUNT_SENSOR_ARRAY_III"
	TradeMountMiningLaserI       TradeSymbol = "MOUNT_MINING_LASER_I"
	TradeMountMiningLaserII      TradeSymbol = "MOUNT_MINING_LASER_II"
	TradeMountMiningLaserIII     TradeSymbol = "MOUNT_MINING_LASER_III"
	TradeMountLaserCannonI       TradeSymbol = "MOUNT_LASER_CANNON_I"
	TradeMountMissileLauncherI   TradeSymbol = "MOUNT_MISSILE_LAUNCHER_I"
	TradeMountTurretI            TradeSymbol = "MOUNT_TURRET_I"
	TradeShipProbe               TradeSymbol = "SHIP_PROBE"
	TradeShipMiningDrone         TradeSymbol = "SHIP_MINING_DRONE"
	TradeShipSiphonDrone         TradeSymbol = "SHIP_SIPHON_DRONE"
	TradeShipInterceptor         TradeSymbol = "SHIP_INTERCEPTOR"
	TradeShipLightHauler         TradeSymbol = "SHIP_LIGHT_HAULER"
	TradeShipCommandFrigate      TradeSymbol = "SHIP_COMMAND_FRIGATE"
	TradeShipExplorer            TradeSymbol = "SHIP_EXPLORER"
	TradeShipHeavyFreighter      TradeSymbol = "SHIP_HEAVY_FREIGHTER"
	TradeShipLightShuttle        TradeSymbol = "SHIP_LIGHT_SHUTTLE"
	TradeShipOreHound            TradeSymbol = "SHIP_ORE_HOUND"
	TradeShipRefiningFreighter   TradeSymbol = "SHIP_REFINING_FREIGHTER"
	TradeShipSurveyor            TradeSymbol = "SHIP_SURVEYOR"
	TradeShipBulkFreighter       TradeSymbol = "SHIP_BULK_FREIGHTER"
)

var tradeSymbols = newEnumSet(
	TradePreciousStones, TradeQuartzSand, TradeSiliconCrystals, TradeAmmoniaIce,
	TradeLiquidHydrogen, TradeLiquidNitrogen, TradeIceWater, TradeExoticMatter,
	TradeAdvancedCircuitry, TradeGravitonEmitters, TradeIron, TradeIronOre, TradeCopper,
	TradeCopperOre, TradeAluminum, TradeAluminumOre, TradeSilver, TradeSilverOre, TradeGold,
	TradeGoldOre, TradePlatinum, TradePlatinumOre, TradeDiamonds, TradeUranite,
	TradeUraniteOre, TradeMeritium, TradeMeritiumOre, TradeHydrocarbon, TradeAntimatter,
	TradeFabMats, TradeFertilizers, TradeFabrics, TradeFood, TradeJewelry, TradeMachinery,
	TradeFirearms, TradeAssaultRifles, TradeMilitaryEquipment, TradeExplosives,
	TradeLabInstruments, TradeAmmunition, TradeElectronics, TradeShipPlating,
	TradeShipParts, TradeEquipment, TradeFuel, TradeMedicine, TradeDrugs, TradeClothing,
	TradeMicroprocessors, TradePlastics, TradePolynucleotides, TradeBiocomposites,
	TradeQuantumStabilizers, TradeNanobots, TradeAiMainframes, TradeQuantumDrives,
	TradeRoboticDrones, TradeCyberImplants, TradeGeneTherapeutics, TradeNeuralChips,
	TradeMoodRegulators, TradeViralAgents, TradeMicroFusionGenerators, TradeSupergrains,
	TradeLaserRifles, TradeHolographics, TradeShipSalvage, TradeRelicTech,
	TradeNovelLifeforms, TradeBotanicalSpecimens, TradeCulturalArtifacts, TradeFrameProbe,
	TradeFrameDrone, TradeFrameInterceptor, TradeFrameRacer, TradeFrameFighter,
	TradeFrameFrigate, TradeFrameShuttle, TradeFrameExplorer, TradeFrameMiner,
	TradeFrameLightFreighter, TradeFrameHeavyFreighter, TradeFrameTransport,
	TradeFrameDestroyer, TradeFrameCruiser, TradeFrameCarrier, TradeFrameBulkFreighter,
	TradeReactorSolarI, TradeReactorFusionI, TradeReactorFissionI, TradeReactorChemicalI,
	TradeReactorAntimatterI, TradeEngineImpulseDriveI, TradeEngineIonDriveI,
	TradeEngineIonDriveII, TradeEngineHyperDriveI, TradeModuleMineralProcessorI,
	TradeModuleGasProcessorI, TradeModuleCargoHoldI, TradeModuleCargoHoldII,
	TradeModuleCargoHoldIII, TradeModuleCrewQuartersI, TradeModuleEnvoyQuartersI,
	TradeModulePassengerCabinI, TradeModuleMicroRefineryI, TradeModuleScienceLabI,
	TradeModuleJumpDriveI, TradeModuleJumpDriveII, TradeModuleJumpDriveIII,
	TradeModuleWarpDriveI, TradeModuleWarpDriveII, TradeModuleWarpDriveIII,
	TradeModuleShieldGeneratorI, TradeModuleShieldGeneratorII, TradeModuleOreRefineryI,
	TradeModuleFuelRefineryI, TradeMountGasSiphonI, TradeMountGasSiphonII,
	TradeMountGasSiphonIII, TradeMountSurveyorI, TradeMountSurveyorII,
	TradeMountSurveyorIII, TradeMountSensorArrayI, TradeMountSensorArrayII,
	TradeMountSensorArrayIII, TradeMountMiningLaserI, TradeMountMiningLaserII,
	TradeMountMiningLaserIII, TradeMountLaserCannonI, TradeMountMissileLauncherI,
	TradeMountTurretI, TradeShipProbe, TradeShipMiningDrone, TradeShipSiphonDrone,
	TradeShipInterceptor, TradeShipLightHauler, TradeShipCommandFrigate, TradeShipExplorer,
	TradeShipHeavyFreighter, TradeShipLightShuttle, TradeShipOreHound,
	TradeShipRefiningFreighter, TradeShipSurveyor, TradeShipBulkFreighter,
)

func (t *TradeSymbol) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, t, tradeSymbols, "TradeSymbol")
}

// TradeType is the role a good plays at a market
type TradeType string

const (
	TradeTypeExport   TradeType = "EXPORT"
	TradeTypeImport   TradeType = "IMPORT"
	TradeTypeExchange TradeType = "EXCHANGE"
)

var tradeTypes = newEnumSet(TradeTypeExport, TradeTypeImport, TradeTypeExchange)

func (t *TradeType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, t, tradeTypes, "TradeType")
}

// TransactionType is the direction of a market transaction
type TransactionType string

const (
	TransactionPurchase TransactionType = "PURCHASE"
	TransactionSell     TransactionType = "SELL"
)

var transactionTypes = newEnumSet(TransactionPurchase, TransactionSell)

func (t *TransactionType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, t, transactionTypes, "TransactionType")
}

// SupplyLevel is how much of a good a market holds
type SupplyLevel string

const (
	SupplyScarce   SupplyLevel = "SCARCE"
	SupplyLimited  SupplyLevel = "LIMITED"
	SupplyModerate SupplyLevel = "MODERATE"
	SupplyHigh     SupplyLevel = "HIGH"
	SupplyAbundant SupplyLevel = "ABUNDANT"
)

var supplyLevels = newEnumSet(SupplyScarce, SupplyLimited, SupplyModerate, SupplyHigh, SupplyAbundant)

func (s *SupplyLevel) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, s, supplyLevels, "SupplyLevel")
}

// ActivityLevel is how busy the trade of a good is
type ActivityLevel string

const (
	ActivityWeak       ActivityLevel = "WEAK"
	ActivityGrowing    ActivityLevel = "GROWING"
	ActivityStrong     ActivityLevel = "STRONG"
	ActivityRestricted ActivityLevel = "RESTRICTED"
)

var activityLevels = newEnumSet(ActivityWeak, ActivityGrowing, ActivityStrong, ActivityRestricted)

func (a *ActivityLevel) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, a, activityLevels, "ActivityLevel")
}

// MarketData is the marketplace at a waypoint. Transactions and TradeGoods
// are only present while one of the agent's ships is at the waypoint.
type MarketData struct {
	Symbol       string              `json:"symbol" validate:"required"`
	Exports      []TradeGood         `json:"exports" validate:"dive"`
	Imports      []TradeGood         `json:"imports" validate:"dive"`
	Exchange     []TradeGood         `json:"exchange" validate:"dive"`
	Transactions []MarketTransaction `json:"transactions,omitempty" validate:"omitempty,dive"`
	TradeGoods   []MarketTradeGood   `json:"tradeGoods,omitempty" validate:"omitempty,dive"`
}

type TradeGood struct {
	Symbol      TradeSymbol `json:"symbol" validate:"required"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
}

type MarketTransaction struct {
	WaypointSymbol string          `json:"waypointSymbol" validate:"required"`
	ShipSymbol     string          `json:"shipSymbol" validate:"required"`
	TradeSymbol    TradeSymbol     `json:"tradeSymbol" validate:"required"`
	Type           TransactionType `json:"type" validate:"required"`
	Units          int             `json:"units"`
	PricePerUnit   int             `json:"pricePerUnit"`
	TotalPrice     int             `json:"totalPrice"`
	Timestamp      time.Time       `json:"timestamp" validate:"required"`
}

type MarketTradeGood struct {
	Symbol        TradeSymbol    `json:"symbol" validate:"required"`
	Type          TradeType      `json:"type" validate:"required"`
	TradeVolume   int            `json:"tradeVolume"`
	Supply        SupplyLevel    `json:"supply" validate:"required"`
	Activity      *ActivityLevel `json:"activity,omitempty"`
	PurchasePrice int            `json:"purchasePrice"`
	SellPrice     int            `json:"sellPrice"`
}
