package store

import (
	"database/sql"
	"fmt"
)

// Schema for the delegated-access database. Access tokens are written by the
// external authorization handshake and only read here; settings rows are
// written once at integration bootstrap.
const schema = `
CREATE TABLE IF NOT EXISTS access_tokens (
    jira_url TEXT NOT NULL,
    user_id INTEGER NOT NULL,
    token TEXT NOT NULL,
    token_secret TEXT NOT NULL DEFAULT '',
    created_at DATETIME NOT NULL DEFAULT (datetime('now')),
    PRIMARY KEY (jira_url, user_id)
);

CREATE TABLE IF NOT EXISTS integration_settings (
    app_id TEXT PRIMARY KEY,
    settings TEXT NOT NULL DEFAULT '{}',
    configured_at DATETIME NOT NULL DEFAULT (datetime('now'))
);
`

// initSchema applies the schema to the SQLite database.
func initSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
