package spacetraders

import (
	"context"
	"fmt"
	"net/http"

	"github.com/andrescamacho/spacetraders-sdk/pkg/api"
	"github.com/andrescamacho/spacetraders-sdk/pkg/model"
)

// Account is the entry point: it holds an account-level token and registers agents
type Account struct {
	client *api.Client
}

// NewAccount wraps a client carrying the account token
func NewAccount(client *api.Client) *Account {
	return &Account{client: client}
}

// Client returns the account-token client
func (a *Account) Client() *api.Client { return a.client }

// RegisterAgent creates a new agent. The returned Agent talks to the server
// with the agent token from the response, not with the account token.
func (a *Account) RegisterAgent(ctx context.Context, req model.RegistrationRequest) (*Agent, error) {
	var resp model.Envelope[model.RegistrationData]
	if err := a.client.Post(ctx, "register", req, http.StatusCreated, &resp); err != nil {
		return nil, fmt.Errorf("failed to register agent: %w", err)
	}

	return NewAgentFromRegistration(a.client, resp.Data), nil
}
