package steps

import (
	"fmt"
	"net/http"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/spacetraders-sdk/pkg/model"
	"github.com/andrescamacho/spacetraders-sdk/pkg/spacetraders"
	"github.com/andrescamacho/spacetraders-sdk/test/helpers"
)

func registerRegistrationSteps(sc *godog.ScenarioContext, c *sdkContext) {
	sc.Step(`^an account with token "([^"]*)"$`, c.anAccountWithToken)
	sc.Step(`^the server registers callsign "([^"]*)" for faction "([^"]*)" with agent token "([^"]*)"$`, c.theServerRegistersCallsign)
	sc.Step(`^the server answers "(\w+) ([^"]*)" with status (\d+) and error code (\d+) "([^"]*)"$`, c.theServerAnswersWithError)
	sc.Step(`^I register agent "([^"]*)" for faction "([^"]*)"$`, c.iRegisterAgent)
	sc.Step(`^the agent client token should be "([^"]*)"$`, c.theAgentClientTokenShouldBe)
	sc.Step(`^the agent contracts should be exactly the registration contract$`, c.theAgentContractsShouldBeExactlyTheRegistrationContract)
}

func (c *sdkContext) anAccountWithToken(token string) error {
	c.client = c.newClient(token)
	return nil
}

func (c *sdkContext) theServerRegistersCallsign(callsign, faction, agentToken string) error {
	factionSymbol, err := model.ParseFactionSymbol(faction)
	if err != nil {
		return err
	}

	c.registration = helpers.CreateTestRegistrationData(callsign, factionSymbol, agentToken)
	c.server.On(http.MethodPost, "/register").
		WithToken(c.client.Token()).
		WithJSONBody(map[string]any{"symbol": callsign, "faction": faction}).
		Respond(http.StatusCreated, helpers.Data(c.registration))
	return nil
}

func (c *sdkContext) theServerAnswersWithError(method, path string, status, code int, message string) error {
	c.server.On(method, path).RespondError(status, code, message)
	return nil
}

func (c *sdkContext) iRegisterAgent(callsign, faction string) error {
	factionSymbol, err := model.ParseFactionSymbol(faction)
	if err != nil {
		return err
	}

	c.agent, c.err = spacetraders.NewAccount(c.client).RegisterAgent(c.ctx, model.RegistrationRequest{
		Callsign: callsign,
		Faction:  factionSymbol,
	})
	return nil
}

func (c *sdkContext) theAgentClientTokenShouldBe(token string) error {
	if c.agent == nil {
		return fmt.Errorf("no agent was registered")
	}
	if got := c.agent.Client().Token(); got != token {
		return fmt.Errorf("expected agent token %q, got %q", token, got)
	}
	return nil
}

func (c *sdkContext) theAgentContractsShouldBeExactlyTheRegistrationContract() error {
	ids := c.agent.ListContracts()
	if len(ids) != 1 || ids[0] != c.registration.Contract.ID {
		return fmt.Errorf("expected contracts [%s], got %v", c.registration.Contract.ID, ids)
	}
	return nil
}
