package jira

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/crepache/App-Integrations-Jira/internal/messages"
)

// ErrorResponse is the structured error payload returned to the caller.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
}

// Response is the normalized outcome of one relayed JIRA call. Exactly one
// of Body (verbatim upstream JSON) or Error is set.
type Response struct {
	Status int
	Body   []byte
	Error  *ErrorResponse
}

// Relay executes credential-signed JIRA calls and translates the outcome
// into a Response. It never retries and keeps no state across calls.
type Relay struct {
	catalog *messages.Catalog
}

// NewRelay returns a relay rendering error messages from catalog.
func NewRelay(catalog *messages.Catalog) *Relay {
	return &Relay{catalog: catalog}
}

// Execute dispatches one signed call.
//
// An empty issueKey short-circuits with 400 and an empty payload before any
// network access. An upstream 404 becomes a 404 response carrying the
// upstream message; it is an expected outcome, not an error. Every other
// failure (signing, transport, other upstream statuses, body decoding) is
// returned as an *AuthorizationError.
func (r *Relay) Execute(ctx context.Context, provider *Provider, token, tokenSecret string, target *url.URL, method string, payload []byte, issueKey string) (Response, error) {
	if issueKey == "" {
		return Response{
			Status: http.StatusBadRequest,
			Error:  &ErrorResponse{Status: http.StatusBadRequest},
		}, nil
	}

	body, _, err := provider.Do(ctx, token, tokenSecret, target, method, payload)
	if err != nil {
		var reqErr *RequestError
		if errors.As(err, &reqErr) && reqErr.Code == http.StatusNotFound {
			return Response{
				Status: http.StatusNotFound,
				Error:  &ErrorResponse{Status: http.StatusNotFound, Message: reqErr.Message},
			}, nil
		}
		return Response{}, &AuthorizationError{
			Message: r.catalog.Render(messages.JiraCallFailed, nil),
			Err:     err,
		}
	}

	return Response{Status: http.StatusOK, Body: body}, nil
}
