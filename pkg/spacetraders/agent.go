package spacetraders

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/andrescamacho/spacetraders-sdk/pkg/api"
	"github.com/andrescamacho/spacetraders-sdk/pkg/model"
)

// Agent is the player's identity together with its contracts
type Agent struct {
	client    *api.Client
	data      model.AgentData
	contracts map[string]*Contract
	faction   *model.Faction
	ships     []*Ship
}

// FetchAgent loads /my/agent and /my/contracts with the client's token
func FetchAgent(ctx context.Context, client *api.Client) (*Agent, error) {
	var agentResp model.Envelope[model.AgentData]
	if err := client.Get(ctx, "my/agent", nil, http.StatusOK, &agentResp); err != nil {
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	var contractsResp model.ListEnvelope[model.ContractData]
	if err := client.Get(ctx, "my/contracts", nil, http.StatusOK, &contractsResp); err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	agent := &Agent{
		client:    client,
		data:      agentResp.Data,
		contracts: make(map[string]*Contract, len(contractsResp.Data)),
	}
	for _, data := range contractsResp.Data {
		agent.contracts[data.ID] = NewContract(client, data)
	}
	return agent, nil
}

// NewAgentFromRegistration builds the Agent described by a registration
// response. Its client is a copy of client carrying the new agent token.
func NewAgentFromRegistration(client *api.Client, reg model.RegistrationData) *Agent {
	agentClient := client.WithToken(reg.Token)
	faction := reg.Faction

	ships := make([]*Ship, 0, len(reg.Ships))
	for _, data := range reg.Ships {
		ships = append(ships, NewShipWithData(agentClient, data))
	}

	return &Agent{
		client: agentClient,
		data:   reg.Agent,
		contracts: map[string]*Contract{
			reg.Contract.ID: NewContract(agentClient, reg.Contract),
		},
		faction: &faction,
		ships:   ships,
	}
}

// Client returns the agent-token client shared with the agent's contracts and ships
func (a *Agent) Client() *api.Client { return a.client }

// Data returns a copy of the cached agent data
func (a *Agent) Data() model.AgentData { return model.Clone(a.data) }

// Symbol is the agent callsign
func (a *Agent) Symbol() string { return a.data.Symbol }

// Faction is the faction returned at registration; agents loaded with
// FetchAgent do not carry one
func (a *Agent) Faction() (model.Faction, bool) {
	if a.faction == nil {
		return model.Faction{}, false
	}
	return model.Clone(*a.faction), true
}

// Ships are the starting ships returned at registration
func (a *Agent) Ships() []*Ship {
	return append([]*Ship(nil), a.ships...)
}

// ListContracts returns the ids of the cached contracts, sorted
func (a *Agent) ListContracts() []string {
	ids := make([]string, 0, len(a.contracts))
	for id := range a.contracts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Contract looks up a cached contract
func (a *Agent) Contract(id string) (*Contract, bool) {
	c, ok := a.contracts[id]
	return c, ok
}

// EditContract returns the cached contract for id. Asking for an id the agent
// does not hold is a programming error and panics; use Contract to probe.
func (a *Agent) EditContract(id string) *Contract {
	c, ok := a.contracts[id]
	if !ok {
		panic(fmt.Sprintf("spacetraders: agent %s has no contract %q", a.data.Symbol, id))
	}
	return c
}

// AcceptContract accepts a cached contract and, on success, replaces both the
// cached contract and the agent data with the server's answer
func (a *Agent) AcceptContract(ctx context.Context, id string) (*Contract, error) {
	current, ok := a.contracts[id]
	if !ok {
		return nil, fmt.Errorf("agent %s has no contract %q", a.data.Symbol, id)
	}

	result, err := current.accept(ctx)
	if err != nil {
		return nil, err
	}

	accepted := NewContract(a.client, result.Contract)
	a.contracts[id] = accepted
	a.data = result.Agent
	return accepted, nil
}

// Refresh re-fetches /my/agent into the cache
func (a *Agent) Refresh(ctx context.Context) error {
	var resp model.Envelope[model.AgentData]
	if err := a.client.Get(ctx, "my/agent", nil, http.StatusOK, &resp); err != nil {
		return fmt.Errorf("failed to get agent: %w", err)
	}
	a.data = resp.Data
	return nil
}
