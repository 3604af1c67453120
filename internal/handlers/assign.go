package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crepache/App-Integrations-Jira/internal/auth"
	"github.com/crepache/App-Integrations-Jira/internal/credentials"
	"github.com/crepache/App-Integrations-Jira/internal/integration"
	"github.com/crepache/App-Integrations-Jira/internal/jira"
	"github.com/crepache/App-Integrations-Jira/internal/messages"
)

// assignPayload is the body JIRA expects on the assignee endpoint. An empty
// name unassigns the issue.
type assignPayload struct {
	Name string `json:"name"`
}

// AssignIssueToUser returns the handler for PUT /issue/{issueKey}/assignee.
// The username query parameter may legitimately be empty (unassign) and is
// therefore never defaulted or rejected here.
func AssignIssueToUser(
	verifier auth.Verifier,
	guard *integration.Guard,
	resolver *credentials.Resolver,
	relay *jira.Relay,
	catalog *messages.Catalog,
	logger *slog.Logger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		issueKey := r.PathValue("issueKey")
		username := r.URL.Query().Get("username")
		jiraURL := r.URL.Query().Get("url")

		userID, err := verifier.UserID(r.Header.Get("Authorization"))
		if err != nil {
			handleError(w, logger, catalog, err)
			return
		}

		if err := guard.EnsureReady(r.Context()); err != nil {
			handleError(w, logger, catalog, err)
			return
		}

		base, err := jira.ParseBaseURL(jiraURL)
		if err != nil {
			handleError(w, logger, catalog, err)
			return
		}

		cred, err := resolver.Resolve(r.Context(), jiraURL, userID)
		if err != nil {
			handleError(w, logger, catalog, err)
			return
		}

		provider, err := resolver.Provider(jiraURL)
		if err != nil {
			handleError(w, logger, catalog, err)
			return
		}

		target, err := jira.AssignIssueURL(base, issueKey)
		if err != nil {
			handleError(w, logger, catalog, err)
			return
		}

		payload, err := json.Marshal(assignPayload{Name: username})
		if err != nil {
			handleError(w, logger, catalog, err)
			return
		}

		res, err := relay.Execute(r.Context(), provider, cred.Token, cred.Secret, target, http.MethodPut, payload, issueKey)
		if err != nil {
			handleError(w, logger, catalog, err)
			return
		}

		writeResult(w, res)
	}
}
