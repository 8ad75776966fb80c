package steps

import (
	"fmt"
	"net/http"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/spacetraders-sdk/pkg/model"
	"github.com/andrescamacho/spacetraders-sdk/pkg/spacetraders"
	"github.com/andrescamacho/spacetraders-sdk/test/helpers"
)

func registerContractSteps(sc *godog.ScenarioContext, c *sdkContext) {
	sc.Step(`^an offered contract "([^"]*)"$`, c.anOfferedContract)
	sc.Step(`^the server accepts contract "([^"]*)"$`, c.theServerAcceptsContract)
	sc.Step(`^I accept the contract$`, c.iAcceptTheContract)
	sc.Step(`^the returned contract should be accepted$`, c.theReturnedContractShouldBeAccepted)
	sc.Step(`^the original contract should not be accepted$`, c.theOriginalContractShouldNotBeAccepted)
}

func (c *sdkContext) anOfferedContract(id string) error {
	c.contract = spacetraders.NewContract(c.client, helpers.CreateTestContractData(id, false))
	return nil
}

func (c *sdkContext) theServerAcceptsContract(id string) error {
	c.server.On(http.MethodPost, "/my/contracts/"+id+"/accept").
		WithToken(c.client.Token()).
		Respond(http.StatusOK, helpers.Data(model.ContractAgentData{
			Contract: helpers.CreateTestContractData(id, true),
			Agent:    helpers.CreateTestAgentData(helpers.TestAgentSymbol, 176544),
		}))
	return nil
}

func (c *sdkContext) iAcceptTheContract() error {
	c.accepted, c.err = c.contract.Accept(c.ctx)
	return nil
}

func (c *sdkContext) theReturnedContractShouldBeAccepted() error {
	if c.accepted == nil || !c.accepted.IsAccepted() {
		return fmt.Errorf("expected the returned contract to be accepted")
	}
	return nil
}

func (c *sdkContext) theOriginalContractShouldNotBeAccepted() error {
	if c.contract.IsAccepted() {
		return fmt.Errorf("expected the original contract to stay unaccepted")
	}
	return nil
}
