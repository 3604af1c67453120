package handlers

import "net/http"

// Healthz reports liveness for orchestrator probes. It stays independent
// of the store and JIRA so a broken upstream never fails the probe.
func Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok")) // nolint:errcheck
	}
}
