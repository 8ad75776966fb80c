package metrics_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacetraders-sdk/pkg/api"
	"github.com/andrescamacho/spacetraders-sdk/pkg/metrics"
)

func TestNormalizeEndpoint(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/v2/my/agent", "/v2/my/agent"},
		{"/v2/my/ships/SNAKE-1/dock", "/v2/my/ships/{shipSymbol}/dock"},
		{"/v2/my/contracts/cmb9ysth4mqyfuo6x6jh4jk9w/accept", "/v2/my/contracts/{contractId}/accept"},
		{"/v2/systems/X1-MH3/waypoints/X1-MH3-A2/market", "/v2/systems/{systemSymbol}/waypoints/{waypointSymbol}/market"},
		{"/v2/systems/X1-MH3/waypoints", "/v2/systems/{systemSymbol}/waypoints"},
		{"/v2/systems", "/v2/systems"},
		{"/register", "/register"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, metrics.NormalizeEndpoint(tt.path))
		})
	}
}

func TestInstrumentedTransport_RecordsRequests(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.HasSuffix(r.URL.Path, "/dock") {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":4214,"message":"in transit"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector()
	require.NoError(t, collector.Register(registry))

	httpClient := &http.Client{Transport: metrics.NewInstrumentedTransport(server.Client().Transport, collector)}
	client := api.NewClientWithConfig(server.URL, "T", httpClient)

	// Act
	var out map[string]any
	require.NoError(t, client.Get(context.Background(), "my/ships/SNAKE-1", nil, http.StatusOK, &out))
	require.NoError(t, client.Get(context.Background(), "my/ships/SNAKE-2", nil, http.StatusOK, &out))
	err := client.Post(context.Background(), "my/ships/SNAKE-1/dock", nil, http.StatusOK, &out)

	// Assert
	assert.True(t, api.IsErrorCode(err, api.CodeShipInTransit))
	expected := `
# HELP spacetraders_client_api_requests_total Total number of API requests by method, endpoint, and status code
# TYPE spacetraders_client_api_requests_total counter
spacetraders_client_api_requests_total{endpoint="/my/ships/{shipSymbol}",method="GET",status_code="200"} 2
spacetraders_client_api_requests_total{endpoint="/my/ships/{shipSymbol}/dock",method="POST",status_code="400"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected), "spacetraders_client_api_requests_total"))
	count, err := testutil.GatherAndCount(registry, "spacetraders_client_api_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	inFlight := `
# HELP spacetraders_client_api_requests_in_flight Number of API requests awaiting a response
# TYPE spacetraders_client_api_requests_in_flight gauge
spacetraders_client_api_requests_in_flight 0
`
	assert.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(inFlight), "spacetraders_client_api_requests_in_flight"))
}

func TestInstrumentedTransport_TransportFailureRecordsZeroStatus(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector()
	require.NoError(t, collector.Register(registry))
	client := api.NewClientWithConfig(url, "", &http.Client{Transport: metrics.NewInstrumentedTransport(nil, collector)})

	err := client.Get(context.Background(), "my/agent", nil, http.StatusOK, nil)

	var transportErr *api.TransportError
	require.ErrorAs(t, err, &transportErr)
	expected := `
# HELP spacetraders_client_api_requests_total Total number of API requests by method, endpoint, and status code
# TYPE spacetraders_client_api_requests_total counter
spacetraders_client_api_requests_total{endpoint="/my/agent",method="GET",status_code="0"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected), "spacetraders_client_api_requests_total"))
}

func TestInstrumentedTransport_NilCollectorPassesThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	client := api.NewClientWithConfig(server.URL, "", &http.Client{Transport: metrics.NewInstrumentedTransport(nil, nil)})

	var out map[string]any
	assert.NoError(t, client.Get(context.Background(), "status", nil, http.StatusOK, &out))
}

func TestCollector_RegisterTwiceFails(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector()

	require.NoError(t, collector.Register(registry))
	assert.Error(t, collector.Register(registry))
}
