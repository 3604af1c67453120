package credentials

import (
	"context"

	"github.com/crepache/App-Integrations-Jira/internal/config"
	"github.com/crepache/App-Integrations-Jira/internal/jira"
	"github.com/crepache/App-Integrations-Jira/internal/messages"
)

// TokenSource reads stored access tokens. An absent token is reported as
// empty strings, not an error.
type TokenSource interface {
	AccessToken(ctx context.Context, jiraURL string, userID int64) (token, tokenSecret string, err error)
}

// Credential is the delegated-access material for one (user, host) pair.
// It is borrowed for the duration of a single outbound call and must never
// be persisted or logged by the gateway.
type Credential struct {
	Token  string
	Secret string
}

// Resolver resolves per-user credentials and per-host signing providers.
// Nothing is cached across requests.
type Resolver struct {
	tokens  TokenSource
	cfg     config.Config
	catalog *messages.Catalog
}

// NewResolver returns a resolver over the given token source and consumers.
func NewResolver(tokens TokenSource, cfg config.Config, catalog *messages.Catalog) *Resolver {
	return &Resolver{tokens: tokens, cfg: cfg, catalog: catalog}
}

// Resolve returns the credential stored for (jiraURL, userID).
// A store fault is an *UnexpectedError; an absent or empty token is a
// *MissingError, meaning the user has not granted access yet.
func (r *Resolver) Resolve(ctx context.Context, jiraURL string, userID int64) (Credential, error) {
	token, secret, err := r.tokens.AccessToken(ctx, jiraURL, userID)
	if err != nil {
		return Credential{}, &UnexpectedError{
			Message: r.catalog.Render(messages.AuthorizationUnexpected, nil),
			Err:     err,
		}
	}
	if token == "" {
		return Credential{}, &MissingError{
			URL:     jiraURL,
			Message: r.catalog.Render(messages.AccessTokenEmpty, map[string]string{"URL": jiraURL}),
		}
	}
	return Credential{Token: token, Secret: secret}, nil
}

// Provider constructs the signing context for jiraURL from the registered
// consumer. Failure is a *KeyError: a deployment misconfiguration.
func (r *Resolver) Provider(jiraURL string) (*jira.Provider, error) {
	consumer, ok := r.cfg.ConsumerFor(jiraURL)
	if !ok {
		return nil, &KeyError{
			URL:     jiraURL,
			Message: r.catalog.Render(messages.ApplicationKeyError, map[string]string{"URL": jiraURL}),
		}
	}

	provider, err := jira.NewProvider(consumer.ConsumerKey, consumer.ConsumerSecret, consumer.PrivateKey)
	if err != nil {
		return nil, &KeyError{
			URL:     jiraURL,
			Message: r.catalog.Render(messages.ApplicationKeyError, map[string]string{"URL": jiraURL}),
			Err:     err,
		}
	}
	return provider, nil
}
