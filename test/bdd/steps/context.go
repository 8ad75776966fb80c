package steps

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"

	"github.com/andrescamacho/spacetraders-sdk/pkg/api"
	"github.com/andrescamacho/spacetraders-sdk/pkg/model"
	"github.com/andrescamacho/spacetraders-sdk/pkg/spacetraders"
	"github.com/andrescamacho/spacetraders-sdk/test/helpers"
)

// sdkContext holds the state of one scenario
type sdkContext struct {
	ctx    context.Context
	server *helpers.MockServer
	client *api.Client

	registration model.RegistrationData
	agent        *spacetraders.Agent
	contract     *spacetraders.Contract
	accepted     *spacetraders.Contract
	ship         *spacetraders.Ship
	waypoints    []*spacetraders.Waypoint

	err error
}

func (c *sdkContext) reset() {
	if c.server != nil {
		c.server.Close()
	}
	c.ctx = context.Background()
	c.server = helpers.NewMockServer(nil)
	c.client = nil
	c.registration = model.RegistrationData{}
	c.agent = nil
	c.contract = nil
	c.accepted = nil
	c.ship = nil
	c.waypoints = nil
	c.err = nil
}

// newClient points a client at the scenario's mock server
func (c *sdkContext) newClient(token string) *api.Client {
	return api.NewClientWithConfig(c.server.URL(), token, c.server.Client())
}

func (c *sdkContext) theCallShouldSucceed() error {
	if c.err != nil {
		return fmt.Errorf("expected success, got: %w", c.err)
	}
	return nil
}

func (c *sdkContext) theCallShouldFailWithAPIErrorCode(code int) error {
	var apiErr *api.APIError
	if !errors.As(c.err, &apiErr) {
		return fmt.Errorf("expected an API error, got: %v", c.err)
	}
	if int(apiErr.Code) != code {
		return fmt.Errorf("expected code %d, got %d (%s)", code, int(apiErr.Code), apiErr.Code)
	}
	return nil
}

func (c *sdkContext) theAPIErrorMessageShouldBe(message string) error {
	var apiErr *api.APIError
	if !errors.As(c.err, &apiErr) {
		return fmt.Errorf("expected an API error, got: %v", c.err)
	}
	if apiErr.Message != message {
		return fmt.Errorf("expected message %q, got %q", message, apiErr.Message)
	}
	return nil
}

// serverExpectationsMet fails the scenario when the mock saw a request it
// did not expect or a request that broke a route's expectations
func (c *sdkContext) serverExpectationsMet() error {
	if failures := c.server.Failures(); len(failures) > 0 {
		return fmt.Errorf("mock server: %s", strings.Join(failures, "; "))
	}
	return nil
}

// getCellValueFromTable gets a cell value from a table row by column name.
// The first row is the header.
func getCellValueFromTable(table *godog.Table, row *messages.PickleTableRow, columnName string) string {
	if len(table.Rows) == 0 {
		return ""
	}

	for i, headerCell := range table.Rows[0].Cells {
		if headerCell.Value == columnName {
			if i < len(row.Cells) {
				return row.Cells[i].Value
			}
			return ""
		}
	}

	return ""
}

// InitializeSDKScenario registers every step of the SDK features
func InitializeSDKScenario(sc *godog.ScenarioContext) {
	c := &sdkContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		c.reset()
		return ctx, nil
	})

	sc.After(func(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
		defer c.server.Close()
		if err != nil {
			return ctx, err
		}
		return ctx, c.serverExpectationsMet()
	})

	// Shared
	sc.Step(`^the call should succeed$`, c.theCallShouldSucceed)
	sc.Step(`^the call should fail with API error code (\d+)$`, c.theCallShouldFailWithAPIErrorCode)
	sc.Step(`^the API error message should be "([^"]*)"$`, c.theAPIErrorMessageShouldBe)
	sc.Step(`^an agent client with token "([^"]*)"$`, c.anAgentClientWithToken)
	sc.Step(`^a client without a token$`, c.aClientWithoutAToken)

	registerRegistrationSteps(sc, c)
	registerContractSteps(sc, c)
	registerWaypointSteps(sc, c)
	registerShipSteps(sc, c)
	registerAuthenticationSteps(sc, c)
}

func (c *sdkContext) anAgentClientWithToken(token string) error {
	c.client = c.newClient(token)
	return nil
}

func (c *sdkContext) aClientWithoutAToken() error {
	c.client = c.newClient("")
	return nil
}
