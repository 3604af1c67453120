package flag

import (
	"io"
	"net"

	"github.com/containeroo/tinyflags"

	"github.com/crepache/App-Integrations-Jira/internal/logging"
)

// Config aggregates CLI flags after parsing.
type Config struct {
	ListenAddr string            // HTTP bind address (e.g. ":8080")
	Debug      bool              // Enables debug logging
	LogFormat  logging.LogFormat // Log output format (text or json)
	Config     string            // Path to config file
	Database   string            // Path to the delegated-access database
	Messages   string            // Optional message catalog override
	MaxResults int               // Result bound for assignable-user searches
}

// ParseArgs parses CLI arguments into Config, handling version/help flags.
func ParseArgs(version string, args []string, out io.Writer, getEnv func(string) string) (Config, error) {
	var cfg Config
	tf := tinyflags.NewFlagSet("jira-gateway", tinyflags.ContinueOnError)
	tf.Version(version)
	tf.SetGetEnvFn(getEnv)
	tf.EnvPrefix("JIRA_GATEWAY")
	tf.SetOutput(out)

	// Server
	tf.StringVar(&cfg.Config, "config", "config.yaml", "Path to config file").Value()
	tf.StringVar(&cfg.Database, "database", "jira-gateway.db", "Path to the delegated-access SQLite database").Value()
	tf.StringVar(&cfg.Messages, "messages", "", "Path to a message catalog override").Placeholder("PATH").Value()

	maxResults := tf.Int("max-results", 10, "Maximum number of users returned by an assignable search").Value()

	listenAddr := tf.TCPAddr("listen-address", &net.TCPAddr{IP: nil, Port: 8080}, "HTTP server listen address").
		Placeholder("ADDR:PORT").
		Value()

	// Logging
	tf.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging").Value()
	logFormat := tf.String("log-format", "text", "Log format").Choices("text", "json").Short("l").Value()

	// Parse
	if err := tf.Parse(args); err != nil {
		return Config{}, err
	}

	// Post-parse
	cfg.LogFormat = logging.LogFormat(*logFormat)
	cfg.ListenAddr = (*listenAddr).String()
	cfg.MaxResults = *maxResults

	return cfg, nil
}
