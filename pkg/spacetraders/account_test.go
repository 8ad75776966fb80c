package spacetraders_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacetraders-sdk/pkg/api"
	"github.com/andrescamacho/spacetraders-sdk/pkg/model"
	"github.com/andrescamacho/spacetraders-sdk/pkg/spacetraders"
	"github.com/andrescamacho/spacetraders-sdk/test/helpers"
)

func TestAccount_RegisterAgent_UsesAgentToken(t *testing.T) {
	// Arrange
	server := helpers.NewMockServer(t)
	registration := helpers.CreateTestRegistrationData("SOMEPLAYER", model.FactionAegis, "AGENT-TOKEN")
	server.On(http.MethodPost, "/register").
		WithToken("ACCT").
		WithJSONBody(map[string]string{"symbol": "SOMEPLAYER", "faction": "AEGIS"}).
		Respond(http.StatusCreated, helpers.Data(registration))
	account := spacetraders.NewAccount(newTestClient(server, "ACCT"))

	// Act
	agent, err := account.RegisterAgent(context.Background(), model.RegistrationRequest{
		Callsign: "SOMEPLAYER",
		Faction:  model.FactionAegis,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "AGENT-TOKEN", agent.Client().Token())
	assert.Equal(t, "ACCT", account.Client().Token(), "account token is unchanged")
	assert.Same(t, account.Client().HTTPClient(), agent.Client().HTTPClient())
	assert.Equal(t, []string{helpers.TestContractID}, agent.ListContracts())
	assert.Equal(t, "SOMEPLAYER", agent.Symbol())
	assert.Equal(t, model.FactionAegis, agent.Data().StartingFaction)

	faction, ok := agent.Faction()
	require.True(t, ok)
	assert.Equal(t, model.FactionCosmic, faction.Symbol)

	ships := agent.Ships()
	require.Len(t, ships, 2)
	assert.Equal(t, "SOMEPLAYER-1", ships[0].Symbol())
	assert.True(t, ships[0].HasData())
	assert.Equal(t, "AGENT-TOKEN", ships[0].Client().Token())

	contract := agent.EditContract(helpers.TestContractID)
	assert.Equal(t, "AGENT-TOKEN", contract.Client().Token())
	assert.False(t, contract.IsAccepted())
}

func TestAccount_RegisterAgent_SurfacesAPIError(t *testing.T) {
	// Arrange
	server := helpers.NewMockServer(t)
	server.On(http.MethodPost, "/register").
		RespondRaw(http.StatusUnauthorized, []byte(`{"error":{"code":4103,"message":"Missing Bearer token…"}}`))
	account := spacetraders.NewAccount(newTestClient(server, "ACCT"))

	// Act
	agent, err := account.RegisterAgent(context.Background(), model.RegistrationRequest{
		Callsign: "SOMEPLAYER",
		Faction:  model.FactionAegis,
	})

	// Assert
	assert.Nil(t, agent)
	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.CodeMissingTokenRequest, apiErr.Code)
	assert.Equal(t, "Missing Bearer token…", apiErr.Message)
}

func TestAccount_RegisterAgent_CallsignConflict(t *testing.T) {
	// Arrange
	server := helpers.NewMockServer(t)
	server.On(http.MethodPost, "/register").
		RespondError(http.StatusConflict, int(api.CodeRegisterAgentConflictSymbol), "Cannot register agent. Agent symbol SOMEPLAYER has already been claimed.")
	account := spacetraders.NewAccount(newTestClient(server, "ACCT"))

	// Act
	_, err := account.RegisterAgent(context.Background(), model.RegistrationRequest{Callsign: "SOMEPLAYER", Faction: model.FactionAegis})

	// Assert
	assert.True(t, api.IsErrorCode(err, api.CodeRegisterAgentConflictSymbol))
	assert.Contains(t, err.Error(), "failed to register agent")
}
