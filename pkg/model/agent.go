package model

// AgentData is the player's agent as returned by /my/agent
type AgentData struct {
	AccountID       *string       `json:"accountId,omitempty"`
	Symbol          string        `json:"symbol" validate:"required"`
	Headquarters    string        `json:"headquarters" validate:"required"`
	Credits         int64         `json:"credits"`
	StartingFaction FactionSymbol `json:"startingFaction" validate:"required"`
	ShipCount       *int          `json:"shipCount,omitempty"`
}
