package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/crepache/App-Integrations-Jira/internal/auth"
	"github.com/crepache/App-Integrations-Jira/internal/credentials"
	"github.com/crepache/App-Integrations-Jira/internal/integration"
	"github.com/crepache/App-Integrations-Jira/internal/jira"
	"github.com/crepache/App-Integrations-Jira/internal/messages"
)

// writeResult writes a normalized relay response. Success bodies are
// forwarded verbatim; error payloads are encoded as {status, message}.
func writeResult(w http.ResponseWriter, res jira.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.Status)

	if res.Error != nil {
		json.NewEncoder(w).Encode(res.Error) // nolint:errcheck
		return
	}
	w.Write(res.Body) // nolint:errcheck
}

// writeErrorPayload writes a structured {status, message} payload.
func writeErrorPayload(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(&jira.ErrorResponse{Status: status, Message: message}) // nolint:errcheck
}

// handleError maps an error kind to its HTTP status and user-safe message.
// Credential values never appear in messages or logs.
func handleError(w http.ResponseWriter, logger *slog.Logger, catalog *messages.Catalog, err error) {
	var (
		verification *auth.VerificationError
		unavailable  *integration.UnavailableError
		missing      *credentials.MissingError
		unexpected   *credentials.UnexpectedError
		keyErr       *credentials.KeyError
		invalidURL   *jira.InvalidURLError
		authErr      *jira.AuthorizationError
	)

	status := http.StatusInternalServerError
	message := ""

	switch {
	case errors.As(err, &verification):
		status = http.StatusUnauthorized
		message = verification.Reason
	case errors.As(err, &unavailable):
		status = http.StatusServiceUnavailable
		message = unavailable.Message
		if unavailable.Solution != "" {
			message += " " + unavailable.Solution
		}
	case errors.As(err, &missing):
		status = http.StatusUnauthorized
		message = missing.Message
	case errors.As(err, &unexpected):
		message = unexpected.Message
	case errors.As(err, &keyErr):
		message = keyErr.Message
	case errors.As(err, &invalidURL):
		status = http.StatusBadRequest
		message = catalog.Render(messages.InvalidURL, map[string]string{"URL": invalidURL.URL})
	case errors.As(err, &authErr):
		message = authErr.Message
	default:
		message = catalog.Render(messages.InternalUnexpected, nil)
	}

	logger.Error("request failed", "status", status, "error", err)
	writeErrorPayload(w, status, message)
}
