// Package kite is a minimal Kite Connect v3 client covering the read
// calls kitestat needs: holdings, positions and margins, plus the
// session handshake that turns a request token into an access token.
package kite

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.kite.trade"
	kiteVersion    = "3"
)

// APIError is an error reply from the Kite API.
type APIError struct {
	Code      int    // HTTP status code
	Message   string `json:"message"`
	ErrorType string `json:"error_type"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("kite: %s (%s)", e.Message, e.ErrorType)
}

// Client talks to the Kite Connect HTTP API. The zero value is not
// usable, use New.
type Client struct {
	apiKey      string
	accessToken string
	baseURL     string
	http        *http.Client
	debug       io.Writer // raw payloads are dumped here when non-nil
}

// New returns a client for the given API key. The client owns its own
// request timeout; callers block on each call until it completes or
// fails.
func New(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SetAccessToken installs a previously obtained access token.
func (c *Client) SetAccessToken(token string) { c.accessToken = token }

// SetBaseURL overrides the API endpoint, for tests.
func (c *Client) SetBaseURL(u string) { c.baseURL = strings.TrimRight(u, "/") }

// SetDebug directs a dump of every raw API payload to w. Payloads are
// written before any parsing, so a malformed reply is still visible.
func (c *Client) SetDebug(w io.Writer) { c.debug = w }

// GenerateSession exchanges a request token for an access token and
// installs it on the client. The checksum is SHA-256 over
// api_key + request_token + api_secret, per the Kite login flow.
func (c *Client) GenerateSession(ctx context.Context, requestToken, apiSecret string) (string, error) {
	sum := sha256.Sum256([]byte(c.apiKey + requestToken + apiSecret))
	form := url.Values{
		"api_key":       {c.apiKey},
		"request_token": {requestToken},
		"checksum":      {hex.EncodeToString(sum[:])},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/session/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var data struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.do(req, &data); err != nil {
		return "", fmt.Errorf("cannot generate session: %w", err)
	}
	c.accessToken = data.AccessToken
	return data.AccessToken, nil
}

// LoginURL returns the Kite login page for this API key. Completing the
// login yields the request token used by GenerateSession.
func (c *Client) LoginURL() string {
	return fmt.Sprintf("https://kite.trade/connect/login?v=%s&api_key=%s", kiteVersion, url.QueryEscape(c.apiKey))
}

// Holdings returns the raw holdings records.
func (c *Client) Holdings(ctx context.Context) ([]map[string]any, error) {
	var data []map[string]any
	if err := c.get(ctx, "/portfolio/holdings", &data); err != nil {
		return nil, err
	}
	return data, nil
}

// Positions returns the day and net books as raw records.
func (c *Client) Positions(ctx context.Context) (day, net []map[string]any, err error) {
	var data struct {
		Day []map[string]any `json:"day"`
		Net []map[string]any `json:"net"`
	}
	if err := c.get(ctx, "/portfolio/positions", &data); err != nil {
		return nil, nil, err
	}
	return data.Day, data.Net, nil
}

// Margins returns the equity segment of the raw margins payload.
func (c *Client) Margins(ctx context.Context) (map[string]any, error) {
	var data map[string]any
	if err := c.get(ctx, "/user/margins", &data); err != nil {
		return nil, err
	}
	equity, _ := data["equity"].(map[string]any)
	return equity, nil
}

// get performs an authorized GET and unmarshals the envelope data into
// out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// do runs the request and decodes Kite's {status, data} envelope.
func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("X-Kite-Version", kiteVersion)
	if c.accessToken != "" {
		req.Header.Set("Authorization", "token "+c.apiKey+":"+c.accessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("cannot read reply from %s: %w", req.URL.Path, err)
	}
	if c.debug != nil {
		fmt.Fprintf(c.debug, "DEBUG %s %s %s\n%s\n", req.Method, req.URL.Path, resp.Status, body)
	}

	var envelope struct {
		Status    string          `json:"status"`
		Data      json.RawMessage `json:"data"`
		Message   string          `json:"message"`
		ErrorType string          `json:"error_type"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("cannot parse reply from %s: %w", req.URL.Path, err)
	}
	if resp.StatusCode != http.StatusOK || envelope.Status != "success" {
		return &APIError{Code: resp.StatusCode, Message: envelope.Message, ErrorType: envelope.ErrorType}
	}
	if out == nil || len(envelope.Data) == 0 {
		return nil
	}
	return json.Unmarshal(envelope.Data, out)
}
