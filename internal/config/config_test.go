package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	// no t.Parallel: subtests mutate process env via t.Setenv

	t.Run("loads a plain config", func(t *testing.T) {
		path := writeConfig(t, `
appId: jira
jwt:
  secret: shhh
consumers:
  - url: https://jira.example.com
    consumerKey: symphony
    consumerSecret: topsecret
`)

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "jira", cfg.AppID)
		assert.Equal(t, "shhh", cfg.JWT.Secret)
		require.Len(t, cfg.Consumers, 1)
		assert.Equal(t, "symphony", cfg.Consumers[0].ConsumerKey)
	})

	t.Run("resolves env indirection", func(t *testing.T) {
		t.Setenv("GW_TEST_JWT_SECRET", "from-env")

		path := writeConfig(t, `
appId: jira
jwt:
  secret: env:GW_TEST_JWT_SECRET
consumers:
  - url: https://jira.example.com
    consumerKey: symphony
    consumerSecret: s
`)

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.JWT.Secret)
	})

	t.Run("missing file returns error", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml returns error", func(t *testing.T) {
		path := writeConfig(t, ":\n\t- broken")
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("unresolvable env reference returns error", func(t *testing.T) {
		path := writeConfig(t, `
appId: jira
jwt:
  secret: env:GW_TEST_DOES_NOT_EXIST
consumers: []
`)
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	t.Run("valid config passes", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{
			AppID: "jira",
			JWT:   JWT{Secret: "s"},
			Consumers: []Consumer{
				{URL: "https://jira.example.com", ConsumerKey: "k", ConsumerSecret: "s"},
			},
		}
		assert.NoError(t, ValidateConfig(cfg))
	})

	t.Run("collects all problems", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{}
		err := ValidateConfig(cfg)
		require.Error(t, err)

		assert.Contains(t, err.Error(), "appId is required")
		assert.Contains(t, err.Error(), "jwt.secret is required")
		assert.Contains(t, err.Error(), "at least one consumer is required")
	})

	t.Run("consumer needs absolute url and key material", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{
			AppID: "jira",
			JWT:   JWT{Secret: "s"},
			Consumers: []Consumer{
				{URL: "not-a-url", ConsumerKey: ""},
			},
		}
		err := ValidateConfig(cfg)
		require.Error(t, err)

		assert.Contains(t, err.Error(), "url must be absolute")
		assert.Contains(t, err.Error(), "consumerKey is required")
		assert.Contains(t, err.Error(), "one of consumerSecret or privateKey is required")
	})

	t.Run("broken private key is rejected", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{
			AppID: "jira",
			JWT:   JWT{Secret: "s"},
			Consumers: []Consumer{
				{URL: "https://jira.example.com", ConsumerKey: "k", PrivateKey: "garbage"},
			},
		}
		err := ValidateConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "privateKey")
	})
}

func TestConsumerFor(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Consumers: []Consumer{
			{URL: "https://jira.example.com/", ConsumerKey: "first"},
			{URL: "https://other.example.com", ConsumerKey: "second"},
		},
	}

	t.Run("matches ignoring trailing slash", func(t *testing.T) {
		t.Parallel()

		c, ok := cfg.ConsumerFor("https://jira.example.com")
		require.True(t, ok)
		assert.Equal(t, "first", c.ConsumerKey)
	})

	t.Run("unknown host reports not found", func(t *testing.T) {
		t.Parallel()

		_, ok := cfg.ConsumerFor("https://unknown.example.com")
		assert.False(t, ok)
	})
}
