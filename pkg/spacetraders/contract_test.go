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

func TestContract_AcceptReturnsNewContract(t *testing.T) {
	// Arrange
	server := helpers.NewMockServer(t)
	server.On(http.MethodPost, "/my/contracts/cmb9ysth4mqyfuo6x6jh4jk9w/accept").
		WithToken("T").
		Respond(http.StatusOK, helpers.Data(model.ContractAgentData{
			Contract: helpers.CreateTestContractData(helpers.TestContractID, true),
			Agent:    helpers.CreateTestAgentData(helpers.TestAgentSymbol, 176544),
		}))
	original := spacetraders.NewContract(newTestClient(server, "T"), helpers.CreateTestContractData(helpers.TestContractID, false))

	// Act
	accepted, err := original.Accept(context.Background())

	// Assert
	require.NoError(t, err)
	assert.True(t, accepted.IsAccepted())
	assert.False(t, original.IsAccepted())
	assert.Equal(t, original.ID(), accepted.ID())
	assert.False(t, original.Equal(accepted))
	assert.True(t, original.Client().Equal(accepted.Client()))
}

func TestContract_AcceptErrorIsVerbatim(t *testing.T) {
	// Arrange
	server := helpers.NewMockServer(t)
	server.On(http.MethodPost, "/my/contracts/cmb9ysth4mqyfuo6x6jh4jk9w/accept").
		RespondError(http.StatusBadRequest, int(api.CodeContractDeadline), "Contract deadline has passed")
	original := spacetraders.NewContract(newTestClient(server, "T"), helpers.CreateTestContractData(helpers.TestContractID, false))

	// Act
	accepted, err := original.Accept(context.Background())

	// Assert
	assert.Nil(t, accepted)
	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.CodeContractDeadline, apiErr.Code)
	assert.False(t, original.IsAccepted())
}

func TestContract_AcceptWithIncompleteContractIsDecodeError(t *testing.T) {
	// Arrange
	server := helpers.NewMockServer(t)
	server.On(http.MethodPost, "/my/contracts/C1/accept").
		RespondRaw(http.StatusOK, []byte(`{"data":{
			"contract":{"id":"C1","factionSymbol":"COSMIC","type":"PROCUREMENT",
				"terms":{"deadline":"2025-06-05T22:47:42.914Z","payment":{"onAccepted":1544,"onFulfilled":10480}},
				"fulfilled":false,"expiration":"2025-05-30T22:47:42.914Z"},
			"agent":{"symbol":"BADGER","headquarters":"X1-RC42-A1","startingFaction":"COSMIC"}}}`))
	original := spacetraders.NewContract(newTestClient(server, "T"), helpers.CreateTestContractData("C1", false))

	// Act
	accepted, err := original.Accept(context.Background())

	// Assert
	assert.Nil(t, accepted)
	var decodeErr *api.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	var missing *model.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"data.contract.accepted", "data.agent.credits"}, missing.Fields)
}

func TestContract_DataIsACopy(t *testing.T) {
	contract := spacetraders.NewContract(nil, helpers.CreateTestContractData(helpers.TestContractID, false))

	data := contract.Data()
	data.Terms.Deliver[0].UnitsFulfilled = 50

	assert.Equal(t, 0, contract.Data().Terms.Deliver[0].UnitsFulfilled)
}

func TestContract_Fulfill(t *testing.T) {
	// Arrange
	server := helpers.NewMockServer(t)
	fulfilled := helpers.CreateTestContractData(helpers.TestContractID, true)
	fulfilled.Fulfilled = true
	server.On(http.MethodPost, "/my/contracts/cmb9ysth4mqyfuo6x6jh4jk9w/fulfill").
		Respond(http.StatusOK, helpers.Data(model.ContractAgentData{
			Contract: fulfilled,
			Agent:    helpers.CreateTestAgentData(helpers.TestAgentSymbol, 186000),
		}))
	accepted := spacetraders.NewContract(newTestClient(server, "T"), helpers.CreateTestContractData(helpers.TestContractID, true))

	// Act
	done, err := accepted.Fulfill(context.Background())

	// Assert
	require.NoError(t, err)
	assert.True(t, done.IsFulfilled())
	assert.False(t, accepted.IsFulfilled())
}

func TestContract_FulfillBeforeAcceptSurfacesServerError(t *testing.T) {
	server := helpers.NewMockServer(t)
	server.On(http.MethodPost, "/my/contracts/cmb9ysth4mqyfuo6x6jh4jk9w/fulfill").
		RespondError(http.StatusBadRequest, int(api.CodeContractNotAccepted), "Contract not accepted")
	offered := spacetraders.NewContract(newTestClient(server, "T"), helpers.CreateTestContractData(helpers.TestContractID, false))

	_, err := offered.Fulfill(context.Background())

	assert.True(t, api.IsErrorCode(err, api.CodeContractNotAccepted))
}

func TestContract_Equal(t *testing.T) {
	client := api.NewClientWithConfig("https://example.test", "T", nil)
	data := helpers.CreateTestContractData(helpers.TestContractID, false)

	a := spacetraders.NewContract(client, data)
	b := spacetraders.NewContract(client.WithToken("T"), data)
	c := spacetraders.NewContract(client.WithToken("OTHER"), data)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
