package steps

import (
	"fmt"
	"net/http"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/spacetraders-sdk/pkg/model"
	"github.com/andrescamacho/spacetraders-sdk/pkg/spacetraders"
	"github.com/andrescamacho/spacetraders-sdk/test/helpers"
)

func registerShipSteps(sc *godog.ScenarioContext, c *sdkContext) {
	sc.Step(`^ship "([^"]*)" with cached status "([^"]*)"$`, c.shipWithCachedStatus)
	sc.Step(`^the server docks ship "([^"]*)"$`, c.theServerDocksShip)
	sc.Step(`^I dock the ship$`, c.iDockTheShip)
	sc.Step(`^the cached nav status should be "([^"]*)"$`, c.theCachedNavStatusShouldBe)
}

func (c *sdkContext) shipWithCachedStatus(symbol, status string) error {
	c.ship = spacetraders.NewShipWithData(c.client, helpers.CreateTestShipData(symbol, model.ShipStatus(status)))
	return nil
}

func (c *sdkContext) theServerDocksShip(symbol string) error {
	c.server.On(http.MethodPost, "/my/ships/"+symbol+"/dock").
		WithToken(c.client.Token()).
		Respond(http.StatusOK, helpers.Data(model.NavUpdateData{Nav: helpers.CreateTestNavData(model.ShipStatusDocked)}))
	return nil
}

func (c *sdkContext) iDockTheShip() error {
	c.err = c.ship.Dock(c.ctx)
	return nil
}

func (c *sdkContext) theCachedNavStatusShouldBe(status string) error {
	data, err := c.ship.Data(c.ctx)
	if err != nil {
		return err
	}
	if string(data.Nav.Status) != status {
		return fmt.Errorf("expected nav status %s, got %s", status, data.Nav.Status)
	}
	return nil
}
