package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacetraders-sdk/pkg/api"
	"github.com/andrescamacho/spacetraders-sdk/pkg/model"
	"github.com/andrescamacho/spacetraders-sdk/test/helpers"
)

func newTestClient(server *helpers.MockServer, token string) *api.Client {
	return api.NewClientWithConfig(server.URL(), token, server.Client())
}

func TestClient_Get_SendsBearerTokenAndAccept(t *testing.T) {
	// Arrange
	server := helpers.NewMockServer(t)
	route := server.On(http.MethodGet, "/my/agent").
		WithToken("AGENT-TOKEN").
		Respond(http.StatusOK, helpers.Data(helpers.CreateTestAgentData(helpers.TestAgentSymbol, 175000)))
	client := newTestClient(server, "AGENT-TOKEN")

	// Act
	var resp model.Envelope[model.AgentData]
	err := client.Get(context.Background(), "my/agent", nil, http.StatusOK, &resp)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, route.Hits())
	assert.Equal(t, helpers.TestAgentSymbol, resp.Data.Symbol)
	assert.Equal(t, int64(175000), resp.Data.Credits)

	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "application/json", requests[0].Header.Get("Accept"))
	assert.Empty(t, requests[0].Header.Get("Content-Type"), "GET carries no body")
}

func TestClient_Get_WithoutTokenOmitsAuthorizationHeader(t *testing.T) {
	// Arrange
	server := helpers.NewMockServer(t)
	server.On(http.MethodGet, "/my/agent").WithoutToken().RespondRaw(http.StatusOK, []byte(`{}`))
	client := newTestClient(server, "")

	// Act
	err := client.Get(context.Background(), "/my/agent", nil, http.StatusOK, nil)

	// Assert
	require.NoError(t, err)
	requests := server.Requests()
	require.Len(t, requests, 1)
	_, present := requests[0].Header["Authorization"]
	assert.False(t, present)
}

func TestClient_URLJoinsBaseAndEndpointOnce(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		endpoint string
	}{
		{"plain", "", "systems"},
		{"leading slash endpoint", "", "/systems"},
		{"trailing slash base", "/", "systems"},
		{"both slashes", "/", "/systems"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			server := helpers.NewMockServer(t)
			server.On(http.MethodGet, "/v2/systems").Respond(http.StatusOK, helpers.Page([]model.SystemData{}, 1, 10))
			client := api.NewClientWithConfig(server.URL()+"/v2"+tt.base, "", server.Client())

			// Act
			var resp model.ListEnvelope[model.SystemData]
			err := client.Get(context.Background(), tt.endpoint, nil, http.StatusOK, &resp)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, "/v2/systems", server.Requests()[0].Path)
		})
	}
}

func TestClient_Get_OmitsUnsetQueryParameters(t *testing.T) {
	// Arrange
	server := helpers.NewMockServer(t)
	server.On(http.MethodGet, "/systems").
		WithQuery(url.Values{"limit": {"20"}}).
		Respond(http.StatusOK, helpers.Page([]model.SystemData{}, 1, 20))
	client := newTestClient(server, "")
	limit := 20

	// Act
	var resp model.ListEnvelope[model.SystemData]
	err := client.Get(context.Background(), "systems", model.PageQuery{Limit: &limit}, http.StatusOK, &resp)

	// Assert
	require.NoError(t, err)
	query := server.Requests()[0].Query
	assert.Equal(t, "20", query.Get("limit"))
	assert.NotContains(t, query, "page")
	assert.Equal(t, 20, resp.Meta.Limit)
}

func TestClient_Get_EmptyQuerySendsNoQueryString(t *testing.T) {
	// Arrange
	server := helpers.NewMockServer(t)
	server.On(http.MethodGet, "/systems/X1-MH3/waypoints").
		WithQuery(url.Values{}).
		Respond(http.StatusOK, helpers.Page([]model.WaypointData{}, 1, 10))
	client := newTestClient(server, "")

	// Act
	var resp model.ListEnvelope[model.WaypointData]
	err := client.Get(context.Background(), "systems/X1-MH3/waypoints", &model.WaypointQuery{}, http.StatusOK, &resp)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, server.Requests()[0].Query)
}

func TestClient_Post_SerializesBodyAsJSON(t *testing.T) {
	// Arrange
	server := helpers.NewMockServer(t)
	server.On(http.MethodPost, "/register").
		WithToken("ACCT").
		WithJSONBody(map[string]string{"symbol": "SOMEPLAYER", "faction": "AEGIS"}).
		Respond(http.StatusCreated, helpers.Data(helpers.CreateTestRegistrationData("SOMEPLAYER", model.FactionAegis, "AGENT-TOKEN")))
	client := newTestClient(server, "ACCT")

	// Act
	var resp model.Envelope[model.RegistrationData]
	err := client.Post(context.Background(), "register",
		model.RegistrationRequest{Callsign: "SOMEPLAYER", Faction: model.FactionAegis},
		http.StatusCreated, &resp)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "AGENT-TOKEN", resp.Data.Token)
	assert.Equal(t, "application/json", server.Requests()[0].Header.Get("Content-Type"))
}

func TestClient_Post_NilBodySendsNoBody(t *testing.T) {
	// Arrange
	server := helpers.NewMockServer(t)
	server.On(http.MethodPost, "/my/ships/SNAKE-1/orbit").
		Respond(http.StatusOK, helpers.Data(model.NavUpdateData{Nav: helpers.CreateTestNavData(model.ShipStatusInOrbit)}))
	client := newTestClient(server, "T")

	// Act
	var resp model.Envelope[model.NavUpdateData]
	err := client.Post(context.Background(), "my/ships/SNAKE-1/orbit", nil, http.StatusOK, &resp)

	// Assert
	require.NoError(t, err)
	request := server.Requests()[0]
	assert.Empty(t, request.Body)
	assert.Empty(t, request.Header.Get("Content-Type"))
	assert.Equal(t, model.ShipStatusInOrbit, resp.Data.Nav.Status)
}

func TestClient_Patch_UsesPatchVerb(t *testing.T) {
	// Arrange
	server := helpers.NewMockServer(t)
	nav := helpers.CreateTestNavData(model.ShipStatusInOrbit)
	nav.FlightMode = model.FlightModeBurn
	server.On(http.MethodPatch, "/my/ships/SNAKE-1/nav").
		WithJSONBody(map[string]string{"flightMode": "BURN"}).
		Respond(http.StatusOK, helpers.Data(nav))
	client := newTestClient(server, "T")

	// Act
	var resp model.Envelope[model.NavData]
	err := client.Patch(context.Background(), "my/ships/SNAKE-1/nav",
		model.FlightModeRequest{FlightMode: model.FlightModeBurn}, http.StatusOK, &resp)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, model.FlightModeBurn, resp.Data.FlightMode)
}

func TestClient_UnexpectedStatusWithErrorEnvelopeIsAPIError(t *testing.T) {
	// Arrange
	server := helpers.NewMockServer(t)
	server.On(http.MethodPost, "/register").RespondRaw(http.StatusUnauthorized,
		[]byte(`{"error":{"code":4103,"message":"Missing Bearer token…","requestId":"abc"}}`))
	client := newTestClient(server, "")

	// Act
	err := client.Post(context.Background(), "register", model.RegistrationRequest{Callsign: "X", Faction: model.FactionAegis}, http.StatusCreated, nil)

	// Assert
	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.CodeMissingTokenRequest, apiErr.Code)
	assert.Equal(t, "Missing Bearer token…", apiErr.Message)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "abc", apiErr.RequestID)
	assert.True(t, api.IsErrorCode(err, api.CodeMissingTokenRequest))
	assert.False(t, api.IsErrorCode(err, api.CodeTokenEmpty))
}

func TestClient_SuccessStatusIsNeverReadAsErrorEnvelope(t *testing.T) {
	// Arrange
	server := helpers.NewMockServer(t)
	server.On(http.MethodGet, "/status").RespondRaw(http.StatusOK,
		[]byte(`{"error":{"code":4103,"message":"looks like an error"}}`))
	client := newTestClient(server, "")

	// Act
	var resp map[string]any
	err := client.Get(context.Background(), "status", nil, http.StatusOK, &resp)

	// Assert
	require.NoError(t, err)
	assert.Contains(t, resp, "error")
}

func TestClient_SuccessStatusWithWrongShapeIsDecodeError(t *testing.T) {
	// Arrange
	server := helpers.NewMockServer(t)
	server.On(http.MethodGet, "/my/agent").RespondRaw(http.StatusOK,
		[]byte(`{"error":{"code":4103,"message":"looks like an error"}}`))
	client := newTestClient(server, "T")

	// Act
	var resp model.Envelope[model.AgentData]
	err := client.Get(context.Background(), "my/agent", nil, http.StatusOK, &resp)

	// Assert
	var decodeErr *api.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	var apiErr *api.APIError
	assert.False(t, errors.As(err, &apiErr))
	var missing *model.MissingFieldError
	assert.ErrorAs(t, err, &missing)
}

func TestClient_UnknownEnumIsDecodeError(t *testing.T) {
	// Arrange
	server := helpers.NewMockServer(t)
	server.On(http.MethodGet, "/my/agent").RespondRaw(http.StatusOK,
		[]byte(`{"data":{"symbol":"BADGER","headquarters":"X1-RC42-A1","credits":1,"startingFaction":"PIRATES"}}`))
	client := newTestClient(server, "T")

	// Act
	var resp model.Envelope[model.AgentData]
	err := client.Get(context.Background(), "my/agent", nil, http.StatusOK, &resp)

	// Assert
	var decodeErr *api.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	var enumErr *model.UnknownEnumError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "PIRATES", enumErr.Value)
}

func TestClient_UnknownErrorCodeIsDecodeError(t *testing.T) {
	// Arrange
	server := helpers.NewMockServer(t)
	server.On(http.MethodGet, "/my/agent").RespondError(http.StatusBadRequest, 9999, "new code")
	client := newTestClient(server, "T")

	// Act
	err := client.Get(context.Background(), "my/agent", nil, http.StatusOK, nil)

	// Assert
	var decodeErr *api.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	var codeErr *api.UnknownErrorCodeError
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, 9999, codeErr.Code)
}

func TestClient_UndecodableErrorBodyIsProtocolError(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>Bad Gateway</html>`},
		{"json without error", `{"message":"nope"}`},
		{"error without code", `{"error":{"message":"nope"}}`},
		{"empty body", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			server := helpers.NewMockServer(t)
			server.On(http.MethodGet, "/my/agent").RespondRaw(http.StatusBadGateway, []byte(tt.body))
			client := newTestClient(server, "T")

			// Act
			err := client.Get(context.Background(), "my/agent", nil, http.StatusOK, nil)

			// Assert
			var protoErr *api.ProtocolError
			require.ErrorAs(t, err, &protoErr)
			assert.Equal(t, http.StatusBadGateway, protoErr.StatusCode)
		})
	}
}

func TestClient_ConnectionFailureIsTransportError(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()
	client := api.NewClientWithConfig(baseURL, "T", nil)

	// Act
	err := client.Get(context.Background(), "my/agent", nil, http.StatusOK, nil)

	// Assert
	var transportErr *api.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.MethodGet, transportErr.Method)
}

func TestClient_CancelledContextIsTransportError(t *testing.T) {
	// Arrange
	server := helpers.NewMockServer(t)
	route := server.On(http.MethodGet, "/my/agent").RespondRaw(http.StatusOK, []byte(`{}`))
	client := newTestClient(server, "T")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act
	err := client.Get(ctx, "my/agent", nil, http.StatusOK, nil)

	// Assert
	var transportErr *api.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, route.Hits())
}

func TestClient_WithTokenSharesPoolAndKeepsOriginal(t *testing.T) {
	// Arrange
	httpClient := &http.Client{}
	account := api.NewClientWithConfig("https://example.test/v2", "ACCT", httpClient)

	// Act
	agent := account.WithToken("AGENT-TOKEN")

	// Assert
	assert.Equal(t, "ACCT", account.Token())
	assert.Equal(t, "AGENT-TOKEN", agent.Token())
	assert.Same(t, account.HTTPClient(), agent.HTTPClient())
	assert.Equal(t, account.BaseURL(), agent.BaseURL())
	assert.False(t, account.Equal(agent))
}

func TestClient_EqualIgnoresConnectionPool(t *testing.T) {
	a := api.NewClientWithConfig("https://example.test/v2", "T", &http.Client{})
	b := api.NewClientWithConfig("https://example.test/v2", "T", &http.Client{})
	c := api.NewClientWithConfig("https://other.test/v2", "T", &http.Client{})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestNewClient_UsesPublicBaseURL(t *testing.T) {
	client := api.NewClient("")

	assert.Equal(t, api.DefaultBaseURL, client.BaseURL())
	assert.Empty(t, client.Token())
	assert.NotNil(t, client.HTTPClient())
}
