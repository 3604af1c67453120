package jira

import (
	"bytes"
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dghubble/oauth1"
)

// ParseRSAPrivateKey parses a PEM encoded RSA private key (PKCS#1 or PKCS#8).
func ParseRSAPrivateKey(pemData string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(pemData))
	if block == nil {
		return nil, fmt.Errorf("no PEM block found")
	}
	if block.Type != "PRIVATE KEY" && !strings.HasSuffix(block.Type, " PRIVATE KEY") {
		return nil, fmt.Errorf("unexpected PEM block type %q", block.Type)
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key is %T, not RSA", parsed)
	}
	return key, nil
}

// Provider signs outbound requests with the OAuth1 consumer registered for
// one JIRA deployment. It is resolved fresh per request and holds no state
// beyond the signing configuration.
type Provider struct {
	config *oauth1.Config
}

// NewProvider builds a signing provider from the consumer registered for a
// JIRA host. A non-empty privateKeyPEM selects RSA-SHA1 (the scheme JIRA
// uses for application links); otherwise HMAC-SHA1 with the consumer secret.
func NewProvider(consumerKey, consumerSecret, privateKeyPEM string) (*Provider, error) {
	cfg := &oauth1.Config{
		ConsumerKey:    consumerKey,
		ConsumerSecret: consumerSecret,
	}

	if privateKeyPEM != "" {
		key, err := ParseRSAPrivateKey(privateKeyPEM)
		if err != nil {
			return nil, err
		}
		cfg.Signer = &oauth1.RSASigner{PrivateKey: key}
	}

	return &Provider{config: cfg}, nil
}

// Do performs a signed request and returns the upstream body and status.
// Any status >= 400 is returned as a *RequestError carrying the body text.
func (p *Provider) Do(ctx context.Context, token, tokenSecret string, target *url.URL, method string, body []byte) (response []byte, statusCode int, err error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), bodyReader)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	// the oauth1 transport signs every request with consumer + access token
	client := p.config.Client(ctx, oauth1.NewToken(token, tokenSecret))

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return respBody, resp.StatusCode, &RequestError{Code: resp.StatusCode, Message: string(respBody)}
	}
	return respBody, resp.StatusCode, nil
}
