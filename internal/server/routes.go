package server

import (
	"log/slog"
	"net/http"

	"github.com/crepache/App-Integrations-Jira/internal/auth"
	"github.com/crepache/App-Integrations-Jira/internal/credentials"
	"github.com/crepache/App-Integrations-Jira/internal/handlers"
	"github.com/crepache/App-Integrations-Jira/internal/integration"
	"github.com/crepache/App-Integrations-Jira/internal/jira"
	"github.com/crepache/App-Integrations-Jira/internal/messages"
	"github.com/crepache/App-Integrations-Jira/internal/middleware"
)

// NewRouter creates a new HTTP router.
func NewRouter(
	verifier auth.Verifier,
	guard *integration.Guard,
	resolver *credentials.Resolver,
	relay *jira.Relay,
	maxResults int,
	catalog *messages.Catalog,
	logger *slog.Logger,
	debug bool,
) http.Handler {
	root := http.NewServeMux()

	// Health checks (no logging)
	root.Handle("GET /healthz", handlers.Healthz())
	root.Handle("POST /healthz", handlers.Healthz())

	// JIRA API relay endpoints
	api := http.NewServeMux()
	api.Handle("GET /user/assignable/search",
		handlers.SearchAssignableUsers(verifier, guard, resolver, relay, maxResults, catalog, logger))
	api.Handle("PUT /issue/{issueKey}/assignee",
		handlers.AssignIssueToUser(verifier, guard, resolver, relay, catalog, logger))

	// mount under /v1/jira/rest/api/
	var apiHandler http.Handler = http.StripPrefix("/v1/jira/rest/api", api)
	if debug {
		apiHandler = middleware.Chain(apiHandler, middleware.LoggingMiddleware(logger))
	}
	root.Handle("/v1/jira/rest/api/", apiHandler)

	return middleware.Chain(root, middleware.Recovery(logger))
}
