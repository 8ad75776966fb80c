package model

// RegistrationRequest registers a new agent. The callsign travels as "symbol".
type RegistrationRequest struct {
	Callsign string        `json:"symbol"`
	Faction  FactionSymbol `json:"faction"`
}

// RegistrationData is the payload of a successful registration. Token is the
// agent-level credential for every subsequent call made by the new agent.
type RegistrationData struct {
	Agent    AgentData    `json:"agent"`
	Contract ContractData `json:"contract"`
	Faction  Faction      `json:"faction"`
	Ships    []ShipData   `json:"ships" validate:"dive"`
	Token    string       `json:"token" validate:"required"`
}
