package steps

import (
	"fmt"
	"net/http"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/spacetraders-sdk/test/helpers"
)

func registerAuthenticationSteps(sc *godog.ScenarioContext, c *sdkContext) {
	sc.Step(`^the server answers "(\w+) ([^"]*)" and forbids an Authorization header$`, c.theServerForbidsAuthorization)
	sc.Step(`^I call "(\w+) ([^"]*)"$`, c.iCall)
	sc.Step(`^the server should have received (\d+) requests? for "([^"]*)" without an Authorization header$`, c.theServerShouldHaveReceivedWithoutAuthorization)
}

func (c *sdkContext) theServerForbidsAuthorization(method, path string) error {
	c.server.On(method, path).
		WithoutToken().
		Respond(http.StatusOK, helpers.Data(helpers.CreateTestAgentData(helpers.TestAgentSymbol, 175000)))
	return nil
}

func (c *sdkContext) iCall(method, path string) error {
	switch method {
	case http.MethodGet:
		c.err = c.client.Get(c.ctx, path, nil, http.StatusOK, nil)
	case http.MethodPost:
		c.err = c.client.Post(c.ctx, path, nil, http.StatusOK, nil)
	default:
		return fmt.Errorf("unsupported method %s", method)
	}
	return nil
}

func (c *sdkContext) theServerShouldHaveReceivedWithoutAuthorization(count int, path string) error {
	received := 0
	for _, req := range c.server.Requests() {
		if req.Path != path {
			continue
		}
		if _, ok := req.Header["Authorization"]; ok {
			return fmt.Errorf("request to %s carried an Authorization header", path)
		}
		received++
	}
	if received != count {
		return fmt.Errorf("expected %d requests for %s, got %d", count, path, received)
	}
	return nil
}
