package jira

import (
	"fmt"
	"net/url"
)

const (
	searchAssignablePath = "rest/api/latest/user/assignable/search?issueKey=%s&username=%s&maxResults=%d"
	assignIssuePath      = "rest/api/latest/issue/%s/assignee"
)

// ParseBaseURL validates that raw is an absolute URL identifying a JIRA
// deployment. The returned URL is the resolution base for API paths.
func ParseBaseURL(raw string) (*url.URL, error) {
	base, err := url.Parse(raw)
	if err != nil {
		return nil, &InvalidURLError{URL: raw, Err: err}
	}
	if !base.IsAbs() || base.Host == "" {
		return nil, &InvalidURLError{URL: raw}
	}
	return base, nil
}

// SearchAssignableURL builds the assignable-user search URL against base.
// issueKey and username are percent-encoded; query parameter order is fixed.
func SearchAssignableURL(base *url.URL, issueKey, username string, maxResults int) (*url.URL, error) {
	path := fmt.Sprintf(searchAssignablePath,
		url.QueryEscape(issueKey), url.QueryEscape(username), maxResults)
	return resolve(base, path)
}

// AssignIssueURL builds the issue-assignee URL against base.
func AssignIssueURL(base *url.URL, issueKey string) (*url.URL, error) {
	return resolve(base, fmt.Sprintf(assignIssuePath, url.PathEscape(issueKey)))
}

// resolve resolves an API path against the supplied JIRA base URL.
func resolve(base *url.URL, path string) (*url.URL, error) {
	rel, err := url.Parse(path)
	if err != nil {
		return nil, &InvalidURLError{URL: base.String(), Err: err}
	}
	return base.ResolveReference(rel), nil
}
