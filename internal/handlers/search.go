package handlers

import (
	"log/slog"
	"net/http"

	"github.com/crepache/App-Integrations-Jira/internal/auth"
	"github.com/crepache/App-Integrations-Jira/internal/credentials"
	"github.com/crepache/App-Integrations-Jira/internal/integration"
	"github.com/crepache/App-Integrations-Jira/internal/jira"
	"github.com/crepache/App-Integrations-Jira/internal/messages"
)

// SearchAssignableUsers returns the handler for
// GET /user/assignable/search. It relays an assignable-user search to the
// JIRA deployment named by the "url" query parameter, signed with the
// calling user's delegated credential.
func SearchAssignableUsers(
	verifier auth.Verifier,
	guard *integration.Guard,
	resolver *credentials.Resolver,
	relay *jira.Relay,
	maxResults int,
	catalog *messages.Catalog,
	logger *slog.Logger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		issueKey := q.Get("issueKey")
		username := q.Get("username") // absent defaults to "", meaning no filter
		jiraURL := q.Get("url")

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

		target, err := jira.SearchAssignableURL(base, issueKey, username, maxResults)
		if err != nil {
			handleError(w, logger, catalog, err)
			return
		}

		res, err := relay.Execute(r.Context(), provider, cred.Token, cred.Secret, target, http.MethodGet, nil, issueKey)
		if err != nil {
			handleError(w, logger, catalog, err)
			return
		}

		writeResult(w, res)
	}
}
