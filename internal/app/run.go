package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/containeroo/tinyflags"

	"github.com/crepache/App-Integrations-Jira/internal/auth"
	"github.com/crepache/App-Integrations-Jira/internal/config"
	"github.com/crepache/App-Integrations-Jira/internal/credentials"
	"github.com/crepache/App-Integrations-Jira/internal/flag"
	"github.com/crepache/App-Integrations-Jira/internal/integration"
	"github.com/crepache/App-Integrations-Jira/internal/jira"
	"github.com/crepache/App-Integrations-Jira/internal/logging"
	"github.com/crepache/App-Integrations-Jira/internal/messages"
	"github.com/crepache/App-Integrations-Jira/internal/server"
	"github.com/crepache/App-Integrations-Jira/internal/store"
)

// Run starts the jira-gateway application.
func Run(ctx context.Context, version string, args []string, w io.Writer) error {
	// Create a new context that listens for interrupt signals
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Parse command-line flags
	flags, err := flag.ParseArgs(version, args, w, os.Getenv)
	if err != nil {
		if tinyflags.IsHelpRequested(err) || tinyflags.IsVersionRequested(err) {
			fmt.Fprint(w, err.Error()) // nolint:errcheck
			return nil
		}
		return fmt.Errorf("parsing error: %w", err)
	}

	// Setup logger
	logger := logging.SetupLogger(flags.LogFormat, flags.Debug, w)

	logger.Info("Starting jira-gateway",
		"version", version,
	)

	// Load config
	cfg, err := config.LoadConfig(flags.Config)
	if err != nil {
		return fmt.Errorf("loading config error: %w", err)
	}

	// Validate config
	if err := config.ValidateConfig(&cfg); err != nil {
		return fmt.Errorf("validating config error: %w", err)
	}

	// Load message catalog
	catalog, err := messages.LoadCatalog(flags.Messages)
	if err != nil {
		return fmt.Errorf("loading message catalog error: %w", err)
	}

	// Open the delegated-access store
	st, err := store.Open(flags.Database)
	if err != nil {
		return fmt.Errorf("opening store error: %w", err)
	}
	defer st.Close() // nolint:errcheck

	// Wire the request pipeline
	verifier := auth.NewJWTVerifier(cfg.JWT.Secret)
	guard := integration.NewGuard(cfg.AppID, st, catalog)
	resolver := credentials.NewResolver(st, cfg, catalog)
	relay := jira.NewRelay(catalog)

	logger.Debug("gateway wired",
		"app", cfg.AppID,
		"consumers", len(cfg.Consumers),
		"maxResults", flags.MaxResults,
	)

	// Setup Server and run forever
	router := server.NewRouter(
		verifier,
		guard,
		resolver,
		relay,
		flags.MaxResults,
		catalog,
		logger,
		flags.Debug,
	)
	if err := server.RunHTTPServer(ctx, router, flags.ListenAddr, logger); err != nil {
		logger.Error("HTTP server exited with error", "error", err)
		return err
	}

	return nil
}
