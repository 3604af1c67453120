package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/containeroo/resolver"
	"gopkg.in/yaml.v3"

	"github.com/crepache/App-Integrations-Jira/internal/jira"
)

// LoadConfig loads the gateway configuration from the given path and
// resolves env:/file: indirections in secret-bearing fields.
func LoadConfig(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %v", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}

	if cfg.JWT.Secret, err = resolver.ResolveVariable(cfg.JWT.Secret); err != nil {
		return cfg, fmt.Errorf("jwt.secret: %w", err)
	}

	for i := range cfg.Consumers {
		c := &cfg.Consumers[i]
		if c.ConsumerKey, err = resolver.ResolveVariable(c.ConsumerKey); err != nil {
			return cfg, fmt.Errorf("consumer[%d].consumerKey: %w", i, err)
		}
		if c.ConsumerSecret, err = resolver.ResolveVariable(c.ConsumerSecret); err != nil {
			return cfg, fmt.Errorf("consumer[%d].consumerSecret: %w", i, err)
		}
		if c.PrivateKey, err = resolver.ResolveVariable(c.PrivateKey); err != nil {
			return cfg, fmt.Errorf("consumer[%d].privateKey: %w", i, err)
		}
	}

	return cfg, nil
}

// ValidateConfig checks the consistency and correctness of a gateway config.
func ValidateConfig(cfg *Config) error {
	var errs []string

	if cfg.AppID == "" {
		errs = append(errs, "appId is required")
	}
	if cfg.JWT.Secret == "" {
		errs = append(errs, "jwt.secret is required")
	}
	if len(cfg.Consumers) == 0 {
		errs = append(errs, "at least one consumer is required")
	}

	for i, c := range cfg.Consumers {
		label := fmt.Sprintf("consumer[%d]", i)
		if c.URL != "" {
			label += fmt.Sprintf(" (%s)", c.URL)
		}

		switch u, err := url.Parse(c.URL); {
		case c.URL == "":
			errs = append(errs, fmt.Sprintf("%s: url is required", label))
		case err != nil:
			errs = append(errs, fmt.Sprintf("%s: url does not parse: %v", label, err))
		case !u.IsAbs() || u.Host == "":
			errs = append(errs, fmt.Sprintf("%s: url must be absolute", label))
		}

		if c.ConsumerKey == "" {
			errs = append(errs, fmt.Sprintf("%s: consumerKey is required", label))
		}
		if c.ConsumerSecret == "" && c.PrivateKey == "" {
			errs = append(errs, fmt.Sprintf("%s: one of consumerSecret or privateKey is required", label))
		}
		if c.PrivateKey != "" {
			if _, err := jira.ParseRSAPrivateKey(c.PrivateKey); err != nil {
				errs = append(errs, fmt.Sprintf("%s: privateKey: %v", label, err))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// ConsumerFor returns the consumer registered for the given JIRA base URL.
// Matching ignores a trailing slash.
func (c Config) ConsumerFor(jiraURL string) (Consumer, bool) {
	want := strings.TrimRight(jiraURL, "/")
	for _, consumer := range c.Consumers {
		if strings.TrimRight(consumer.URL, "/") == want {
			return consumer, true
		}
	}
	return Consumer{}, false
}
