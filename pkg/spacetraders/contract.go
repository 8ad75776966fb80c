package spacetraders

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"reflect"

	"github.com/andrescamacho/spacetraders-sdk/pkg/api"
	"github.com/andrescamacho/spacetraders-sdk/pkg/model"
)

// Contract is a faction contract. Its state moves offered -> accepted ->
// fulfilled on the server; Accept and Fulfill return a new Contract and leave
// the receiver untouched.
type Contract struct {
	client *api.Client
	data   model.ContractData
}

// NewContract wraps contract data already returned by the server
func NewContract(client *api.Client, data model.ContractData) *Contract {
	return &Contract{client: client, data: data}
}

// Client returns the client the contract was loaded with
func (c *Contract) Client() *api.Client { return c.client }

// ID is the server-assigned contract id
func (c *Contract) ID() string { return c.data.ID }

// Data returns a copy of the cached contract data
func (c *Contract) Data() model.ContractData { return model.Clone(c.data) }

// IsAccepted reports the cached accepted flag; it does not call the server
func (c *Contract) IsAccepted() bool { return c.data.Accepted }

// IsFulfilled reports the cached fulfilled flag
func (c *Contract) IsFulfilled() bool { return c.data.Fulfilled }

// Equal compares client identity (base URL and token) and cached data
func (c *Contract) Equal(other *Contract) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.client.Equal(other.client) && reflect.DeepEqual(c.data, other.data)
}

// Accept accepts the contract
func (c *Contract) Accept(ctx context.Context) (*Contract, error) {
	result, err := c.accept(ctx)
	if err != nil {
		return nil, err
	}
	return NewContract(c.client, result.Contract), nil
}

// Fulfill completes an accepted contract whose deliveries are done
func (c *Contract) Fulfill(ctx context.Context) (*Contract, error) {
	var resp model.Envelope[model.ContractAgentData]
	if err := c.client.Post(ctx, c.endpoint("fulfill"), nil, http.StatusOK, &resp); err != nil {
		return nil, fmt.Errorf("failed to fulfill contract: %w", err)
	}
	return NewContract(c.client, resp.Data.Contract), nil
}

func (c *Contract) accept(ctx context.Context) (model.ContractAgentData, error) {
	var resp model.Envelope[model.ContractAgentData]
	if err := c.client.Post(ctx, c.endpoint("accept"), nil, http.StatusOK, &resp); err != nil {
		return model.ContractAgentData{}, fmt.Errorf("failed to accept contract: %w", err)
	}
	return resp.Data, nil
}

func (c *Contract) endpoint(action string) string {
	return fmt.Sprintf("my/contracts/%s/%s", url.PathEscape(c.data.ID), action)
}
