package credentials

import "fmt"

// MissingError reports that the user has not granted delegated access for a
// JIRA deployment yet. It is user-actionable, unlike the other kinds here.
type MissingError struct {
	URL     string
	Message string
}

func (e *MissingError) Error() string { return e.Message }

// UnexpectedError wraps a credential-store fault. The original cause is
// preserved for diagnostics but never exposed to the caller verbatim.
type UnexpectedError struct {
	Message string
	Err     error
}

func (e *UnexpectedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UnexpectedError) Unwrap() error { return e.Err }

// KeyError reports that no signing context could be constructed for a JIRA
// deployment: there is no consumer registered for the host, or its key
// material does not parse. A deployment misconfiguration, not a user gap.
type KeyError struct {
	URL     string
	Message string
	Err     error
}

func (e *KeyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *KeyError) Unwrap() error { return e.Err }
