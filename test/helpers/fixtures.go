package helpers

import (
	"time"

	"github.com/andrescamacho/spacetraders-sdk/pkg/model"
)

const (
	TestContractID   = "cmb9ysth4mqyfuo6x6jh4jk9w"
	TestAgentSymbol  = "BADGER"
	TestHeadquarters = "X1-RC42-A1"
	TestSystemSymbol = "X1-RC42"
)

// TestTime is the fixed timestamp used by every fixture
var TestTime = time.Date(2025, 5, 29, 22, 47, 42, 914_000_000, time.UTC)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

// Data wraps v in a success envelope
func Data(v any) map[string]any {
	return map[string]any{"data": v}
}

// Page wraps items in a paginated list envelope
func Page[T any](items []T, page, limit int) map[string]any {
	return map[string]any{
		"data": items,
		"meta": model.Meta{Total: len(items), Page: page, Limit: limit},
	}
}

// CreateTestAgentData builds an agent headquartered at TestHeadquarters
func CreateTestAgentData(symbol string, credits int64) model.AgentData {
	return model.AgentData{
		AccountID:       strPtr("cm6rp2m3x0001s60cq2xw6e8r"),
		Symbol:          symbol,
		Headquarters:    TestHeadquarters,
		Credits:         credits,
		StartingFaction: model.FactionCosmic,
		ShipCount:       intPtr(2),
	}
}

// CreateTestContractData builds a procurement contract in the offered or accepted state
func CreateTestContractData(id string, accepted bool) model.ContractData {
	deadline := TestTime.Add(7 * 24 * time.Hour)
	return model.ContractData{
		ID:      id,
		Faction: model.FactionCosmic,
		Type:    model.ContractProcurement,
		Terms: model.ContractTerms{
			Deadline: deadline,
			Payment:  model.ContractPayment{OnAccepted: 1544, OnFulfilled: 10480},
			Deliver: []model.ContractDeliver{{
				TradeSymbol:       "ALUMINUM_ORE",
				DestinationSymbol: "X1-RC42-H53",
				UnitsRequired:     50,
				UnitsFulfilled:    0,
			}},
		},
		Accepted:         accepted,
		Fulfilled:        false,
		Expiration:       "2025-05-30T22:47:42.914Z",
		DeadlineToAccept: &deadline,
	}
}

// CreateTestFaction builds the COSMIC faction
func CreateTestFaction() model.Faction {
	return model.Faction{
		Symbol:       model.FactionCosmic,
		Name:         "Cosmic Engineers",
		Description:  "The Cosmic Engineers are a group of highly advanced scientists and engineers.",
		Headquarters: TestHeadquarters,
		Traits: []model.FactionTrait{
			{Symbol: "INNOVATIVE", Name: "Innovative", Description: "Willing to try new things."},
			{Symbol: "EXPLORATORY", Name: "Exploratory", Description: "Driven by a desire to explore."},
		},
		IsRecruiting: true,
	}
}

// CreateTestLocation builds a route location of the given type
func CreateTestLocation(symbol string, waypointType model.WaypointType) model.RouteLocation {
	return model.RouteLocation{
		Symbol:       symbol,
		Type:         waypointType,
		SystemSymbol: TestSystemSymbol,
		X:            -22,
		Y:            -3,
	}
}

// CreateTestNavData builds a nav parked at TestHeadquarters with the given status
func CreateTestNavData(status model.ShipStatus) model.NavData {
	location := CreateTestLocation(TestHeadquarters, model.WaypointPlanet)
	return model.NavData{
		SystemSymbol:   TestSystemSymbol,
		WaypointSymbol: TestHeadquarters,
		Route: model.Route{
			Destination:   location,
			Origin:        location,
			DepartureTime: TestTime,
			Arrival:       TestTime,
		},
		Status:     status,
		FlightMode: model.FlightModeCruise,
	}
}

// CreateTestFuelData builds a fuel tank
func CreateTestFuelData(current, capacity int) model.FuelData {
	return model.FuelData{
		Current:  current,
		Capacity: capacity,
		Consumed: &model.FuelConsumed{Amount: 0, Timestamp: TestTime},
	}
}

// CreateTestShipData builds a command frigate with the given nav status
func CreateTestShipData(symbol string, status model.ShipStatus) model.ShipData {
	return model.ShipData{
		Symbol: symbol,
		Registration: model.ShipRegistration{
			Name:          symbol,
			FactionSymbol: model.FactionCosmic,
			Role:          model.ShipRoleCommand,
		},
		Nav: CreateTestNavData(status),
		Crew: model.ShipCrew{
			Current:  57,
			Required: 57,
			Capacity: 80,
			Rotation: model.CrewRotationStrict,
			Morale:   100,
		},
		Frame: model.ShipFrame{
			Symbol:         model.FrameFrigate,
			Name:           "Frigate",
			Description:    "A medium-sized, multi-purpose spacecraft.",
			ModuleSlots:    8,
			MountingPoints: 5,
			FuelCapacity:   400,
			Requirements:   model.ShipRequirements{Power: intPtr(8), Crew: intPtr(25)},
		},
		Reactor: model.ShipReactor{
			Symbol:       model.ReactorFissionI,
			Name:         "Fission Reactor I",
			PowerOutput:  31,
			Requirements: model.ShipRequirements{Crew: intPtr(8)},
		},
		Engine: model.ShipEngine{
			Symbol:       model.EngineIonDriveII,
			Name:         "Ion Drive II",
			Speed:        30,
			Requirements: model.ShipRequirements{Power: intPtr(6), Crew: intPtr(8)},
		},
		Cooldown: model.ShipCooldown{ShipSymbol: symbol},
		Modules: []model.ShipModule{{
			Symbol:       model.ModuleCargoHoldII,
			Name:         "Expanded Cargo Hold",
			Capacity:     intPtr(40),
			Requirements: model.ShipRequirements{Power: intPtr(2), Crew: intPtr(2), Slots: intPtr(2)},
		}},
		Mounts: []model.ShipMount{{
			Symbol:       model.MountSurveyorI,
			Name:         "Surveyor I",
			Strength:     intPtr(1),
			Deposits:     []model.ResourceType{model.ResourceQuartzSand, model.ResourceIronOre},
			Requirements: model.ShipRequirements{Power: intPtr(1), Crew: intPtr(2)},
		}},
		Cargo: model.ShipCargo{Capacity: 40, Inventory: []model.InventoryItem{}},
		Fuel:  CreateTestFuelData(400, 400),
	}
}

// CreateTestRegistrationData builds the payload of a successful registration
func CreateTestRegistrationData(callsign string, faction model.FactionSymbol, token string) model.RegistrationData {
	agent := CreateTestAgentData(callsign, 175000)
	agent.StartingFaction = faction
	return model.RegistrationData{
		Agent:    agent,
		Contract: CreateTestContractData(TestContractID, false),
		Faction:  CreateTestFaction(),
		Ships: []model.ShipData{
			CreateTestShipData(callsign+"-1", model.ShipStatusDocked),
			CreateTestShipData(callsign+"-2", model.ShipStatusDocked),
		},
		Token: token,
	}
}

// CreateTestSystemData builds a system with a single planet
func CreateTestSystemData(symbol string) model.SystemData {
	return model.SystemData{
		Symbol:       symbol,
		SectorSymbol: "X1",
		Type:         model.SystemOrangeStar,
		X:            1250,
		Y:            -3260,
		Waypoints: []model.SystemWaypoint{{
			Symbol:   symbol + "-A1",
			Type:     model.WaypointPlanet,
			X:        -22,
			Y:        -3,
			Orbitals: []model.WaypointOrbital{{Symbol: symbol + "-A2"}},
		}},
		Factions: []model.SystemFaction{{Symbol: model.FactionCosmic}},
	}
}

// CreateTestWaypointData builds a waypoint with the given traits
func CreateTestWaypointData(systemSymbol, symbol string, waypointType model.WaypointType, traits ...model.WaypointTraitSymbol) model.WaypointData {
	waypointTraits := make([]model.WaypointTrait, 0, len(traits))
	for _, t := range traits {
		waypointTraits = append(waypointTraits, model.WaypointTrait{Symbol: t, Name: string(t), Description: "trait " + string(t)})
	}
	return model.WaypointData{
		Symbol:       symbol,
		Type:         waypointType,
		SystemSymbol: systemSymbol,
		X:            -22,
		Y:            -3,
		Orbitals:     []model.WaypointOrbital{},
		Faction:      &model.WaypointFaction{Symbol: model.FactionCosmic},
		Traits:       waypointTraits,
	}
}

// CreateTestMarketData builds a market that exports fuel
func CreateTestMarketData(symbol string) model.MarketData {
	activity := model.ActivityGrowing
	return model.MarketData{
		Symbol:   symbol,
		Exports:  []model.TradeGood{{Symbol: model.TradeFuel, Name: "Fuel", Description: "Refined fuel."}},
		Imports:  []model.TradeGood{{Symbol: model.TradeIronOre, Name: "Iron Ore", Description: "Raw iron."}},
		Exchange: []model.TradeGood{},
		TradeGoods: []model.MarketTradeGood{{
			Symbol:        model.TradeFuel,
			Type:          model.TradeTypeExport,
			TradeVolume:   100,
			Supply:        model.SupplyModerate,
			Activity:      &activity,
			PurchasePrice: 72,
			SellPrice:     68,
		}},
	}
}

// CreateTestShipyardData builds a shipyard listing the given ship types
func CreateTestShipyardData(symbol string, shipTypes ...model.ShipType) model.ShipyardData {
	listed := make([]model.ShipyardShipType, 0, len(shipTypes))
	for _, t := range shipTypes {
		listed = append(listed, model.ShipyardShipType{Type: t})
	}
	return model.ShipyardData{
		Symbol:           symbol,
		ShipTypes:        listed,
		ModificationsFee: 100,
	}
}

// CreateTestTransaction builds a fuel purchase
func CreateTestTransaction(shipSymbol string, units, pricePerUnit int) model.MarketTransaction {
	return model.MarketTransaction{
		WaypointSymbol: TestHeadquarters,
		ShipSymbol:     shipSymbol,
		TradeSymbol:    model.TradeFuel,
		Type:           model.TransactionPurchase,
		Units:          units,
		PricePerUnit:   pricePerUnit,
		TotalPrice:     units * pricePerUnit,
		Timestamp:      TestTime,
	}
}
