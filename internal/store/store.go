package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store reads and writes the delegated-access database.
type Store struct {
	db *sql.DB
}

// Settings is one provisioned integration-settings row.
type Settings struct {
	AppID        string
	Payload      string // raw settings document as provisioned at bootstrap
	ConfiguredAt time.Time
}

// Open opens (and if necessary creates) the SQLite database at path.
// The external authorization handshake writes tokens while the gateway
// reads them, so WAL and a busy timeout are set on every pooled
// connection via the driver's _pragma DSN parameters.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := initSchema(db); err != nil {
		db.Close() // nolint:errcheck
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// AccessToken returns the access token stored for (jiraURL, userID).
// An absent row yields empty strings and no error.
func (s *Store) AccessToken(ctx context.Context, jiraURL string, userID int64) (token, tokenSecret string, err error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT token, token_secret FROM access_tokens WHERE jira_url = ? AND user_id = ?`,
		jiraURL, userID)

	if err := row.Scan(&token, &tokenSecret); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", nil
		}
		return "", "", fmt.Errorf("failed to read access token: %w", err)
	}
	return token, tokenSecret, nil
}

// SaveAccessToken stores or replaces the token for (jiraURL, userID). The
// external authorization handshake calls this after a user grants access.
func (s *Store) SaveAccessToken(ctx context.Context, jiraURL string, userID int64, token, tokenSecret string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO access_tokens (jira_url, user_id, token, token_secret) VALUES (?, ?, ?, ?)
		 ON CONFLICT (jira_url, user_id) DO UPDATE SET token = excluded.token, token_secret = excluded.token_secret`,
		jiraURL, userID, token, tokenSecret)
	if err != nil {
		return fmt.Errorf("failed to save access token: %w", err)
	}
	return nil
}

// Settings returns the provisioned settings for appID, or nil when the
// integration has not been bootstrapped.
func (s *Store) Settings(ctx context.Context, appID string) (*Settings, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT app_id, settings, configured_at FROM integration_settings WHERE app_id = ?`, appID)

	var out Settings
	if err := row.Scan(&out.AppID, &out.Payload, &out.ConfiguredAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	return &out, nil
}

// SaveSettings provisions (or replaces) the settings row for appID.
func (s *Store) SaveSettings(ctx context.Context, appID, payload string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO integration_settings (app_id, settings) VALUES (?, ?)
		 ON CONFLICT (app_id) DO UPDATE SET settings = excluded.settings`,
		appID, payload)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
