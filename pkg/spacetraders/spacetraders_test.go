package spacetraders_test

import (
	"github.com/andrescamacho/spacetraders-sdk/pkg/api"
	"github.com/andrescamacho/spacetraders-sdk/test/helpers"
)

func newTestClient(server *helpers.MockServer, token string) *api.Client {
	return api.NewClientWithConfig(server.URL(), token, server.Client())
}
