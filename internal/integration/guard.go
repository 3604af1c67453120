package integration

import (
	"context"
	"fmt"

	"github.com/crepache/App-Integrations-Jira/internal/messages"
	"github.com/crepache/App-Integrations-Jira/internal/store"
)

// SettingsSource reports the settings provisioned at integration bootstrap.
type SettingsSource interface {
	Settings(ctx context.Context, appID string) (*store.Settings, error)
}

// UnavailableError reports that the integration has not completed its
// bootstrap step and therefore cannot serve any per-user request.
type UnavailableError struct {
	Message  string
	Solution string
	Err      error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// Guard verifies the integration is bootstrapped before per-user work runs.
type Guard struct {
	appID    string
	settings SettingsSource
	catalog  *messages.Catalog
}

// NewGuard returns a guard for the given integration.
func NewGuard(appID string, settings SettingsSource, catalog *messages.Catalog) *Guard {
	return &Guard{appID: appID, settings: settings, catalog: catalog}
}

// EnsureReady fails with an *UnavailableError when no settings exist for the
// integration. It performs a read-only check and has no side effects.
func (g *Guard) EnsureReady(ctx context.Context) error {
	settings, err := g.settings.Settings(ctx, g.appID)
	if err != nil {
		return &UnavailableError{
			Message:  g.catalog.Render(messages.IntegrationUnavailable, map[string]string{"App": g.appID}),
			Solution: g.catalog.Render(messages.IntegrationUnavailableSolution, map[string]string{"App": g.appID}),
			Err:      err,
		}
	}
	if settings == nil {
		return &UnavailableError{
			Message:  g.catalog.Render(messages.IntegrationUnavailable, map[string]string{"App": g.appID}),
			Solution: g.catalog.Render(messages.IntegrationUnavailableSolution, map[string]string{"App": g.appID}),
		}
	}
	return nil
}
