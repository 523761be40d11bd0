// Package client talks to the demo backend and orchestrates phase runs.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/stuchain/UoM-Cryptography-sub001/src/phases"
)

// DefaultBaseURL is where the demo backend listens when started locally.
const DefaultBaseURL = "http://localhost:5000"

// TransportError marks request-level failures: the request was rejected,
// timed out, returned a non-2xx status, or the body did not decode. It is
// distinct from a backend failure, which decodes fine with success=false.
type TransportError struct {
	Phase int
	Err   error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("phase %d request failed: %v", e.Phase, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client issues phase requests against one backend.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a client for base; an empty base selects DefaultBaseURL.
func New(base string) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		BaseURL:    strings.TrimRight(base, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchPhase POSTs /api/phase{n} and decodes the result envelope. Exactly one
// request per call, no retries. The decoded result is returned as-is even
// when it reports success=false; transport and decode problems come back as
// a *TransportError instead.
func (c *Client) FetchPhase(ctx context.Context, n int) (*phases.Result, error) {
	url := fmt.Sprintf("%s/api/phase%d", c.BaseURL, n)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return nil, &TransportError{Phase: n, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &TransportError{Phase: n, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Phase: n, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The backend serves its failure envelope with a 500; surface the
		// embedded message when one decodes, otherwise the raw status.
		var res phases.Result
		if jerr := json.Unmarshal(body, &res); jerr == nil && !res.Success && res.Error != "" {
			return &res, nil
		}
		return nil, &TransportError{Phase: n, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}
	var res phases.Result
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, &TransportError{Phase: n, Err: fmt.Errorf("malformed response: %w", err)}
	}
	Debugf("phase %d fetched in %s (success=%v)", n, time.Since(start).Round(time.Millisecond), res.Success)
	return &res, nil
}
