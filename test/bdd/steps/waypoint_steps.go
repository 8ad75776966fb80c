package steps

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/spacetraders-sdk/pkg/model"
	"github.com/andrescamacho/spacetraders-sdk/pkg/spacetraders"
	"github.com/andrescamacho/spacetraders-sdk/test/helpers"
)

func registerWaypointSteps(sc *godog.ScenarioContext, c *sdkContext) {
	sc.Step(`^the server lists waypoints of system "([^"]*)" for query "([^"]*)":$`, c.theServerListsWaypoints)
	sc.Step(`^I list the waypoints of system "([^"]*)" with type "([^"]*)"$`, c.iListTheWaypointsWithType)
	sc.Step(`^I should get (\d+) waypoints?$`, c.iShouldGetWaypoints)
	sc.Step(`^every waypoint should have type "([^"]*)"$`, c.everyWaypointShouldHaveType)
}

func (c *sdkContext) theServerListsWaypoints(systemSymbol, rawQuery string, table *godog.Table) error {
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return err
	}

	waypoints := make([]model.WaypointData, 0, len(table.Rows))
	for _, row := range table.Rows[1:] {
		waypointType, err := model.ParseWaypointType(getCellValueFromTable(table, row, "type"))
		if err != nil {
			return err
		}
		symbol := getCellValueFromTable(table, row, "symbol")
		waypoints = append(waypoints, helpers.CreateTestWaypointData(systemSymbol, symbol, waypointType))
	}

	c.server.On(http.MethodGet, "/systems/"+systemSymbol+"/waypoints").
		WithQuery(query).
		Respond(http.StatusOK, helpers.Page(waypoints, 1, 10))
	return nil
}

func (c *sdkContext) iListTheWaypointsWithType(systemSymbol, typeName string) error {
	waypointType, err := model.ParseWaypointType(typeName)
	if err != nil {
		return err
	}

	c.waypoints, c.err = spacetraders.NewSystem(c.client, systemSymbol).ListWaypoints(c.ctx, &waypointType, nil)
	return nil
}

func (c *sdkContext) iShouldGetWaypoints(count int) error {
	if len(c.waypoints) != count {
		return fmt.Errorf("expected %d waypoints, got %d", count, len(c.waypoints))
	}
	return nil
}

func (c *sdkContext) everyWaypointShouldHaveType(typeName string) error {
	for _, wp := range c.waypoints {
		if string(wp.Type()) != typeName {
			return fmt.Errorf("waypoint %s has type %s, expected %s", wp.Symbol(), wp.Type(), typeName)
		}
	}
	return nil
}
