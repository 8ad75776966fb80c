package cli_test

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacetraders-sdk/internal/adapters/cli"
	"github.com/andrescamacho/spacetraders-sdk/pkg/api"
	"github.com/andrescamacho/spacetraders-sdk/pkg/model"
	"github.com/andrescamacho/spacetraders-sdk/test/helpers"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// run executes the CLI against server with a clean environment
func run(t *testing.T, server *helpers.MockServer, args ...string) result {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, name := range []string{"ACCOUNT_TOKEN", "AGENT_TOKEN", "ST_API_AGENT_TOKEN", "ST_API_ACCOUNT_TOKEN", "ST_API_BASE_URL", "ST_LOGGING_LEVEL", "ST_METRICS_ENABLED"} {
		t.Setenv(name, "")
	}
	return execute(t, server, args...)
}

func execute(t *testing.T, server *helpers.MockServer, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--base-url", server.URL()}, args...))

	err := cmd.ExecuteContext(context.Background())
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestRegister(t *testing.T) {
	// Arrange
	server := helpers.NewMockServer(t)
	server.On(http.MethodPost, "/register").
		WithToken("ACCOUNT").
		WithJSONBody(map[string]any{"symbol": "BADGER", "faction": "COSMIC"}).
		Respond(http.StatusCreated, helpers.Data(helpers.CreateTestRegistrationData("BADGER", model.FactionCosmic, "AGENT-TOKEN")))
	t.Setenv("HOME", t.TempDir())
	t.Setenv("AGENT_TOKEN", "")
	t.Setenv("ACCOUNT_TOKEN", "ACCOUNT")

	// Act
	res := execute(t, server, "register", "BADGER", "--faction", "cosmic")

	// Assert
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Agent registered")
	assert.Contains(t, res.stdout, "BADGER")
	assert.Contains(t, res.stdout, "AGENT-TOKEN")
}

func TestRegister_RequiresAccountToken(t *testing.T) {
	server := helpers.NewMockServer(t)

	res := run(t, server, "register", "BADGER")

	assert.ErrorContains(t, res.err, "no account token")
	assert.Empty(t, server.Requests())
}

func TestRegister_UnknownFaction(t *testing.T) {
	server := helpers.NewMockServer(t)

	res := run(t, server, "register", "BADGER", "--faction", "PIRATES")

	var enumErr *model.UnknownEnumError
	assert.ErrorAs(t, res.err, &enumErr)
}

func TestAgent(t *testing.T) {
	server := helpers.NewMockServer(t)
	server.On(http.MethodGet, "/my/agent").WithToken("T").
		Respond(http.StatusOK, helpers.Data(helpers.CreateTestAgentData(helpers.TestAgentSymbol, 175000)))
	server.On(http.MethodGet, "/my/contracts").WithToken("T").
		Respond(http.StatusOK, helpers.Page([]model.ContractData{helpers.CreateTestContractData(helpers.TestContractID, false)}, 1, 10))

	res := run(t, server, "--token", "T", "agent")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "BADGER")
	assert.Contains(t, res.stdout, "175000")
	assert.Contains(t, res.stdout, "Contracts:    1")
}

func TestAgent_RequiresAgentToken(t *testing.T) {
	server := helpers.NewMockServer(t)

	res := run(t, server, "agent")

	assert.ErrorContains(t, res.err, "no agent token")
}

func TestFailedCommand_StopsMetricsServer(t *testing.T) {
	// Arrange
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	server := helpers.NewMockServer(t)
	t.Setenv("HOME", t.TempDir())
	for _, name := range []string{"ACCOUNT_TOKEN", "AGENT_TOKEN", "ST_API_AGENT_TOKEN", "ST_API_ACCOUNT_TOKEN", "ST_API_BASE_URL", "ST_LOGGING_LEVEL"} {
		t.Setenv(name, "")
	}
	t.Setenv("ST_METRICS_ENABLED", "true")
	t.Setenv("ST_METRICS_HOST", "127.0.0.1")
	t.Setenv("ST_METRICS_PORT", strconv.Itoa(listener.Addr().(*net.TCPAddr).Port))

	// Act
	res := execute(t, server, "agent")

	// Assert
	assert.ErrorContains(t, res.err, "no agent token")
	again, err := net.Listen("tcp", addr)
	require.NoError(t, err, "metrics listener still bound")
	require.NoError(t, again.Close())
}

func TestAgent_ServerErrorIsReturned(t *testing.T) {
	server := helpers.NewMockServer(t)
	server.On(http.MethodGet, "/my/agent").RespondError(http.StatusUnauthorized, int(api.CodeInvalidTokenRequest), "Invalid token")

	res := run(t, server, "--token", "bad", "agent")

	assert.True(t, api.IsErrorCode(res.err, api.CodeInvalidTokenRequest))
}

func TestContractsList(t *testing.T) {
	server := helpers.NewMockServer(t)
	server.On(http.MethodGet, "/my/agent").
		Respond(http.StatusOK, helpers.Data(helpers.CreateTestAgentData(helpers.TestAgentSymbol, 175000)))
	server.On(http.MethodGet, "/my/contracts").
		Respond(http.StatusOK, helpers.Page([]model.ContractData{
			helpers.CreateTestContractData("contract-b", true),
			helpers.CreateTestContractData("contract-a", false),
		}, 1, 10))

	res := run(t, server, "--token", "T", "contracts", "list")

	require.NoError(t, res.err)
	assert.Regexp(t, `(?s)contract-a.*contract-b`, res.stdout)
	assert.Contains(t, res.stdout, "PROCUREMENT")
}

func TestContractsAccept(t *testing.T) {
	// Arrange
	server := helpers.NewMockServer(t)
	server.On(http.MethodGet, "/my/agent").
		Respond(http.StatusOK, helpers.Data(helpers.CreateTestAgentData(helpers.TestAgentSymbol, 175000)))
	server.On(http.MethodGet, "/my/contracts").
		Respond(http.StatusOK, helpers.Page([]model.ContractData{helpers.CreateTestContractData(helpers.TestContractID, false)}, 1, 10))
	server.On(http.MethodPost, "/my/contracts/"+helpers.TestContractID+"/accept").
		Respond(http.StatusOK, helpers.Data(model.ContractAgentData{
			Contract: helpers.CreateTestContractData(helpers.TestContractID, true),
			Agent:    helpers.CreateTestAgentData(helpers.TestAgentSymbol, 176544),
		}))

	// Act
	res := run(t, server, "--token", "T", "contracts", "accept", helpers.TestContractID)

	// Assert
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Contract accepted")
	assert.Contains(t, res.stdout, "Accepted:   yes")
	assert.Contains(t, res.stdout, "176544")
}

func TestContractsFulfill_UnknownContract(t *testing.T) {
	server := helpers.NewMockServer(t)
	server.On(http.MethodGet, "/my/agent").
		Respond(http.StatusOK, helpers.Data(helpers.CreateTestAgentData(helpers.TestAgentSymbol, 175000)))
	server.On(http.MethodGet, "/my/contracts").
		Respond(http.StatusOK, helpers.Page([]model.ContractData{}, 1, 10))

	res := run(t, server, "--token", "T", "contracts", "fulfill", "nope")

	assert.ErrorContains(t, res.err, `unknown contract "nope"`)
}

func TestSystemsList_OnlySetFlagsAreSent(t *testing.T) {
	server := helpers.NewMockServer(t)
	server.On(http.MethodGet, "/systems").
		WithQuery(url.Values{"limit": {"5"}}).
		Respond(http.StatusOK, map[string]any{
			"data": []model.SystemData{helpers.CreateTestSystemData("X1-MH3")},
			"meta": model.Meta{Total: 12000, Page: 1, Limit: 5},
		})

	res := run(t, server, "--token", "T", "systems", "list", "--limit", "5")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "X1-MH3")
	assert.Contains(t, res.stdout, "of 12000 systems")
}

func TestWaypointsList_FiltersByType(t *testing.T) {
	server := helpers.NewMockServer(t)
	server.On(http.MethodGet, "/systems/X1-MH3/waypoints").
		WithQuery(url.Values{"type": {"PLANET"}}).
		Respond(http.StatusOK, helpers.Page([]model.WaypointData{
			helpers.CreateTestWaypointData("X1-MH3", "X1-MH3-A1", model.WaypointPlanet, model.TraitMarketplace),
		}, 1, 10))

	res := run(t, server, "--token", "T", "waypoints", "list", "X1-MH3", "--type", "planet")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "X1-MH3-A1")
	assert.Contains(t, res.stdout, "MARKETPLACE")
}

func TestWaypointsMarket(t *testing.T) {
	server := helpers.NewMockServer(t)
	server.On(http.MethodGet, "/systems/X1-MH3/waypoints/X1-MH3-A2/market").
		Respond(http.StatusOK, helpers.Data(helpers.CreateTestMarketData("X1-MH3-A2")))

	res := run(t, server, "--token", "T", "waypoints", "market", "X1-MH3-A2")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Market Data for X1-MH3-A2")
	assert.Contains(t, res.stdout, "FUEL")
	assert.Contains(t, res.stdout, "GROWING")
}

func TestWaypointsMarket_InvalidSymbol(t *testing.T) {
	server := helpers.NewMockServer(t)

	res := run(t, server, "--token", "T", "waypoints", "market", "A2")

	assert.ErrorContains(t, res.err, "invalid waypoint symbol")
}

func TestWaypointsShipyard(t *testing.T) {
	server := helpers.NewMockServer(t)
	server.On(http.MethodGet, "/systems/X1-MH3/waypoints/X1-MH3-A2/shipyard").
		Respond(http.StatusOK, helpers.Data(helpers.CreateTestShipyardData("X1-MH3-A2", model.ShipTypeProbe)))

	res := run(t, server, "--token", "T", "waypoints", "shipyard", "X1-MH3-A2")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Modifications fee: 100")
	assert.Contains(t, res.stdout, "SHIP_PROBE")
}

func TestShipDock(t *testing.T) {
	server := helpers.NewMockServer(t)
	server.On(http.MethodPost, "/my/ships/SNAKE-1/dock").WithToken("T").
		Respond(http.StatusOK, helpers.Data(model.NavUpdateData{Nav: helpers.CreateTestNavData(model.ShipStatusDocked)}))

	res := run(t, server, "--token", "T", "ship", "dock", "SNAKE-1")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "SNAKE-1 is docked")
}

func TestShipNavigate_WithFlightMode(t *testing.T) {
	// Arrange
	server := helpers.NewMockServer(t)
	driftNav := helpers.CreateTestNavData(model.ShipStatusInOrbit)
	driftNav.FlightMode = model.FlightModeDrift
	server.On(http.MethodPatch, "/my/ships/SNAKE-1/nav").
		WithJSONBody(map[string]any{"flightMode": "DRIFT"}).
		Respond(http.StatusOK, helpers.Data(driftNav))
	transitNav := helpers.CreateTestNavData(model.ShipStatusInTransit)
	transitNav.Route.Destination = helpers.CreateTestLocation("X1-RC42-B7", model.WaypointAsteroid)
	server.On(http.MethodPost, "/my/ships/SNAKE-1/navigate").
		WithJSONBody(map[string]any{"waypointSymbol": "X1-RC42-B7"}).
		Respond(http.StatusOK, helpers.Data(model.NavigateData{Fuel: helpers.CreateTestFuelData(399, 400), Nav: transitNav}))

	// Act
	res := run(t, server, "--token", "T", "ship", "navigate", "SNAKE-1", "X1-RC42-B7", "--mode", "drift")

	// Assert
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "departed for X1-RC42-B7")
	assert.Contains(t, res.stdout, "IN_TRANSIT")
	requests := server.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, http.MethodPatch, requests[0].Method)
	assert.Equal(t, http.MethodPost, requests[1].Method)
}

func TestShipRefuel_Units(t *testing.T) {
	server := helpers.NewMockServer(t)
	server.On(http.MethodPost, "/my/ships/SNAKE-1/refuel").
		WithJSONBody(map[string]any{"units": 100}).
		Respond(http.StatusOK, helpers.Data(model.RefuelData{
			Agent:       helpers.CreateTestAgentData(helpers.TestAgentSymbol, 168000),
			Fuel:        helpers.CreateTestFuelData(400, 400),
			Transaction: helpers.CreateTestTransaction("SNAKE-1", 100, 70),
		}))

	res := run(t, server, "--token", "T", "ship", "refuel", "SNAKE-1", "--units", "100")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Bought 100 units of fuel for 7000 credits")
}

func TestShipGet(t *testing.T) {
	server := helpers.NewMockServer(t)
	server.On(http.MethodGet, "/my/ships/SNAKE-1").
		Respond(http.StatusOK, helpers.Data(helpers.CreateTestShipData("SNAKE-1", model.ShipStatusDocked)))

	res := run(t, server, "--token", "T", "ship", "get", "SNAKE-1")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Ship SNAKE-1 (COMMAND, Frigate)")
	assert.Contains(t, res.stdout, "DOCKED")
	assert.Contains(t, res.stdout, "400/400")
}

func TestVerbose_LogsRequestsWithoutToken(t *testing.T) {
	server := helpers.NewMockServer(t)
	server.On(http.MethodPost, "/my/ships/SNAKE-1/orbit").
		Respond(http.StatusOK, helpers.Data(model.NavUpdateData{Nav: helpers.CreateTestNavData(model.ShipStatusInOrbit)}))

	res := run(t, server, "--token", "SECRET-TOKEN", "--verbose", "ship", "orbit", "SNAKE-1")

	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "POST "+server.URL()+"/my/ships/SNAKE-1/orbit -> 200")
	assert.NotContains(t, res.stderr, "SECRET-TOKEN")
}
