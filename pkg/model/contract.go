package model

import "time"

// ContractType is the kind of work a contract asks for
type ContractType string

const (
	ContractProcurement ContractType = "PROCUREMENT"
	ContractTransport   ContractType = "TRANSPORT"
	ContractShuttle     ContractType = "SHUTTLE"
)

var contractTypes = newEnumSet(ContractProcurement, ContractTransport, ContractShuttle)

func (c *ContractType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, c, contractTypes, "ContractType")
}

// ContractData is a faction contract.
//
// Expiration is deprecated by the server and kept verbatim; DeadlineToAccept
// is the authoritative deadline.
type ContractData struct {
	ID               string        `json:"id" validate:"required"`
	Faction          FactionSymbol `json:"factionSymbol" validate:"required"`
	Type             ContractType  `json:"type" validate:"required"`
	Terms            ContractTerms `json:"terms"`
	Accepted         bool          `json:"accepted"`
	Fulfilled        bool          `json:"fulfilled"`
	Expiration       string        `json:"expiration"`
	DeadlineToAccept *time.Time    `json:"deadlineToAccept,omitempty"`
}

// IsOffered reports whether the contract has been neither accepted nor fulfilled
func (c ContractData) IsOffered() bool {
	return !c.Accepted && !c.Fulfilled
}

type ContractTerms struct {
	Deadline time.Time         `json:"deadline" validate:"required"`
	Payment  ContractPayment   `json:"payment"`
	Deliver  []ContractDeliver `json:"deliver,omitempty" validate:"omitempty,dive"`
}

type ContractPayment struct {
	OnAccepted  int64 `json:"onAccepted"`
	OnFulfilled int64 `json:"onFulfilled"`
}

// ContractDeliver is one cargo delivery requirement of a procurement contract
type ContractDeliver struct {
	TradeSymbol       string `json:"tradeSymbol" validate:"required"`
	DestinationSymbol string `json:"destinationSymbol" validate:"required"`
	UnitsRequired     int    `json:"unitsRequired"`
	UnitsFulfilled    int    `json:"unitsFulfilled"`
}

// ContractAgentData is returned by contract mutations: the updated contract
// together with the agent whose credits changed
type ContractAgentData struct {
	Contract ContractData `json:"contract"`
	Agent    AgentData    `json:"agent"`
}
