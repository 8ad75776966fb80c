package metrics

import (
	"net/http"
	"strings"
	"time"
)

// placeholders maps a collection segment to the label used for the path
// segment that follows it
var placeholders = map[string]string{
	"agents":    "{agentSymbol}",
	"contracts": "{contractId}",
	"factions":  "{factionSymbol}",
	"ships":     "{shipSymbol}",
	"systems":   "{systemSymbol}",
	"waypoints": "{waypointSymbol}",
}

type instrumentedTransport struct {
	next      http.RoundTripper
	collector *Collector
}

// NewInstrumentedTransport wraps next so every round trip is counted and
// timed. A nil next uses http.DefaultTransport.
func NewInstrumentedTransport(next http.RoundTripper, collector *Collector) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &instrumentedTransport{next: next, collector: collector}
}

func (t *instrumentedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.collector == nil {
		return t.next.RoundTrip(req)
	}

	endpoint := NormalizeEndpoint(req.URL.Path)

	t.collector.inFlight.Inc()
	defer t.collector.inFlight.Dec()

	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	duration := time.Since(start).Seconds()

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	t.collector.RecordRequest(req.Method, endpoint, statusCode, duration)

	return resp, err
}

// NormalizeEndpoint replaces the symbols in an API path with placeholders:
// "/v2/my/ships/SNAKE-1/dock" becomes "/v2/my/ships/{shipSymbol}/dock".
func NormalizeEndpoint(path string) string {
	segments := strings.Split(path, "/")
	for i := 1; i < len(segments); i++ {
		if segments[i] == "" {
			continue
		}
		if placeholder, ok := placeholders[segments[i-1]]; ok {
			segments[i] = placeholder
		}
	}
	return strings.Join(segments, "/")
}
