package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// CredentialHeader carries the API key on every request.
const CredentialHeader = "X-Riot-Token"

// CredentialSource reports the configured API key. An empty string means
// no credential is configured.
type CredentialSource interface {
	Credential() string
}

// StaticCredential is a CredentialSource holding a fixed token.
type StaticCredential string

// Credential implements CredentialSource.
func (s StaticCredential) Credential() string { return string(s) }

// Transport performs single authenticated GETs against the upstream API
// and maps failures to typed errors. It never retries; resilience is the
// caller's concern.
type Transport struct {
	Client      *http.Client
	Credentials CredentialSource
}

// Execute performs one GET and returns the raw JSON body. The credential
// is checked before any network call; a non-2xx response is parsed for
// the upstream error envelope and mapped to an APIError by status.
func (t *Transport) Execute(ctx context.Context, url string) (json.RawMessage, error) {
	if t == nil {
		return nil, &APIError{Kind: KindUnknown, Message: "transport is not configured"}
	}

	var token string
	if t.Credentials != nil {
		token = strings.TrimSpace(t.Credentials.Credential())
	}
	if token == "" {
		return nil, &APIError{Kind: KindUnauthenticated, Message: "no API key configured"}
	}

	if ctx == nil {
		ctx = context.Background()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &APIError{Kind: KindInvalidRequest, Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(CredentialHeader, token)

	client := t.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &APIError{Kind: KindUpstreamUnavailable, Message: err.Error()}
	}
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup on HTTP response body

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Kind: KindUnknown, StatusCode: resp.StatusCode, Message: fmt.Sprintf("read response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errorFromResponse(resp.StatusCode, body)
	}

	return json.RawMessage(body), nil
}

// errorFromResponse prefers the server-supplied message, falling back to
// a status-specific canned one.
func errorFromResponse(status int, body []byte) *APIError {
	message := statusMessage(status)

	var envelope apiStatusBody
	if err := json.Unmarshal(body, &envelope); err == nil {
		if msg := strings.TrimSpace(envelope.Status.Message); msg != "" {
			message = msg
		}
	}

	return &APIError{
		Kind:       KindForStatus(status),
		StatusCode: status,
		Message:    message,
	}
}
