package cli

import (
	"log"
	"net/http"
	"time"
)

// loggingTransport prints one line per API request. Headers are never
// printed, so tokens stay out of the log.
type loggingTransport struct {
	next   http.RoundTripper
	logger *log.Logger
}

func newLoggingTransport(next http.RoundTripper, logger *log.Logger) http.RoundTripper {
	return &loggingTransport{next: next, logger: logger}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	elapsed := time.Since(start).Round(time.Millisecond)

	if err != nil {
		t.logger.Printf("%s %s failed after %s: %v", req.Method, req.URL.Redacted(), elapsed, err)
		return resp, err
	}

	t.logger.Printf("%s %s -> %d (%s)", req.Method, req.URL.Redacted(), resp.StatusCode, elapsed)
	return resp, nil
}
