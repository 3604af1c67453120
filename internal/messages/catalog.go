package messages

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"gopkg.in/yaml.v3"
)

// Well-known catalog keys used by the gateway.
const (
	IntegrationUnavailable         = "integration.unavailable"
	IntegrationUnavailableSolution = "integration.unavailable.solution"
	AccessTokenEmpty               = "authorization.access.empty"
	AuthorizationUnexpected        = "authorization.unexpected"
	ApplicationKeyError            = "authorization.application.key"
	InvalidURL                     = "url.invalid"
	JiraCallFailed                 = "jira.call.failed"
	InternalUnexpected             = "internal.unexpected"
)

// defaults are the built-in message templates. A catalog file may override
// any subset of them.
var defaults = map[string]string{
	IntegrationUnavailable:         `The {{ .App | upper }} integration is not available.`,
	IntegrationUnavailableSolution: `Check if the {{ .App | upper }} integration has completed its bootstrap.`,
	AccessTokenEmpty:               `No access granted for {{ .URL }}. Authorize the integration first.`,
	AuthorizationUnexpected:        `Unexpected error while resolving the access credential.`,
	ApplicationKeyError:            `No application key registered for this JIRA instance.`,
	InvalidURL:                     `{{ .URL | quote }} is not a valid JIRA url.`,
	JiraCallFailed:                 `The call to JIRA could not be completed.`,
	InternalUnexpected:             `internal server error`,
}

// Catalog renders human-readable messages from templated entries.
type Catalog struct {
	templates map[string]*template.Template
}

// NewCatalog returns a catalog holding only the built-in defaults.
func NewCatalog() *Catalog {
	c, err := build(defaults)
	if err != nil {
		// defaults are compile-time constants; a parse failure is a programming error
		panic(err)
	}
	return c
}

// LoadCatalog reads a YAML file of key -> template overrides and merges it
// over the built-in defaults. An empty path returns the default catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return NewCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read message catalog: %w", err)
	}

	overrides := map[string]string{}
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("invalid message catalog: %w", err)
	}

	merged := make(map[string]string, len(defaults)+len(overrides))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}

	return build(merged)
}

// build parses every entry with the sprig func map.
func build(entries map[string]string) (*Catalog, error) {
	c := &Catalog{templates: make(map[string]*template.Template, len(entries))}
	for key, text := range entries {
		tmpl, err := template.New(key).Funcs(sprig.TxtFuncMap()).Parse(text)
		if err != nil {
			return nil, fmt.Errorf("message %q: %w", key, err)
		}
		c.templates[key] = tmpl
	}
	return c, nil
}

// Render executes the template registered under key with the given data.
// Unknown keys and execution failures fall back to the key itself so a
// broken catalog never breaks an error path.
func (c *Catalog) Render(key string, data any) string {
	tmpl, ok := c.templates[key]
	if !ok {
		return key
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return key
	}
	return out.String()
}
