package jira

import "fmt"

// RequestError is an upstream HTTP error returned by the JIRA API.
type RequestError struct {
	Code    int    // upstream HTTP status
	Message string // upstream response body as text
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("jira returned status %d: %s", e.Code, e.Message)
}

// AuthorizationError is an unexpected failure while performing a
// credential-signed call (signing, transport or body decoding).
type AuthorizationError struct {
	Message string
	Err     error
}

func (e *AuthorizationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AuthorizationError) Unwrap() error { return e.Err }

// InvalidURLError reports a caller-supplied JIRA url that does not parse as
// an absolute URL, or a target path that cannot be resolved against it.
type InvalidURLError struct {
	URL string
	Err error
}

func (e *InvalidURLError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid jira url %q: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("invalid jira url %q", e.URL)
}

func (e *InvalidURLError) Unwrap() error { return e.Err }
