package checkerapi

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/haxtibal/i4w-callapi/argmap"
)

// ErrNoResult is returned when the checker daemon replies with a JSON
// object that holds no entry ({}). A body that does not decode as a JSON
// object, including a zero-length one, is reported as a decoding error
// instead.
var ErrNoResult = errors.New("no check result in API response")

// Client POSTs a NamedArgumentMap to the remote checker daemon and
// decodes its reply. The HTTP call is synchronous and single-shot: no
// retries.
type Client struct {
	HTTPClient         *http.Client
	InsecureSkipVerify bool
	Timeout            time.Duration
}

// NewClient returns a Client configured with the given connect/total
// timeout and TLS verification policy.
func NewClient(timeout time.Duration, insecureSkipVerify bool) *Client {
	dialer := &net.Dialer{Timeout: timeout}
	transport := &http.Transport{
		DialContext: dialer.DialContext,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: insecureSkipVerify, // #nosec G402 -- opt-in via --insecure
		},
	}
	return &Client{
		HTTPClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		InsecureSkipVerify: insecureSkipVerify,
		Timeout:            timeout,
	}
}

// Do POSTs the command's argument map to
// https://{host}:{port}/v1/checker?command={command} and returns the
// single CheckerResult found in the reply.
func (c *Client) Do(ctx context.Context, host string, port uint64, command string, args argmap.NamedArgumentMap) (*CheckerResult, error) {
	body, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("checkerapi: encoding request body: %w", err)
	}

	u := url.URL{
		Scheme: "https",
		Host:   fmt.Sprintf("%s:%d", host, port),
		Path:   "/v1/checker",
	}
	q := u.Query()
	q.Set("command", command)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("checkerapi: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("checkerapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	var parsed responseBody
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("checkerapi: decoding response: %w", err)
	}
	for _, result := range parsed {
		r := result
		return &r, nil
	}
	return nil, ErrNoResult
}
