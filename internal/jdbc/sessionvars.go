package jdbc

import (
	"strings"

	"jdbc-bridge/internal/domain"
)

const (
	// sessionVariablesParam is the query parameter carrying session variables
	// on a JDBC URL.
	sessionVariablesParam = "sessionVariables"

	// supportedScheme is the only protocol that propagates session variables
	// through a JDBC external table connection.
	supportedScheme = "MYSQL"

	jdbcPrefix = "jdbc:"
)

// MergeSessionVariables rewrites a JDBC URL so that context-supplied session
// variables are merged with any already embedded in the URL's query string.
//
// When vars is non-empty the URL scheme must be MYSQL; any other scheme fails
// with UnsupportedCapabilityError. When the URL has no database segment after
// the authority and database is non-empty, "/database" is injected before the
// query string; an existing segment always wins.
//
// The merged sessionVariables value is the context entries in order, followed
// by the URL's original entries in order. Neither set is deduplicated or
// reconciled by key. Every other query parameter keeps its original position
// byte-for-byte; a newly introduced sessionVariables parameter is appended
// last.
func MergeSessionVariables(jdbcURL, database string, vars domain.SessionVariables) (string, error) {
	if len(vars) > 0 {
		scheme, err := urlScheme(jdbcURL)
		if err != nil {
			return "", err
		}
		if !strings.EqualFold(scheme, supportedScheme) {
			return "", domain.ErrUnsupportedCapability(
				"%s protocol currently does not support session variable propagation via JDBC external table. Supported protocols are: %s",
				strings.ToUpper(scheme), supportedScheme)
		}
	}

	url, err := injectDatabase(jdbcURL, database)
	if err != nil {
		return "", err
	}
	return mergeQuery(url, vars), nil
}

// urlScheme extracts the protocol from a JDBC URL of the form
// [jdbc:]scheme://host:port[/database][?query].
func urlScheme(jdbcURL string) (string, error) {
	s := strings.TrimPrefix(jdbcURL, jdbcPrefix)
	i := strings.Index(s, "://")
	if i < 0 {
		return "", domain.ErrValidation("malformed JDBC URL %q: missing \"://\"", jdbcURL)
	}
	return s[:i], nil
}

// injectDatabase inserts "/database" immediately after the authority when the
// URL carries no path segment. An existing segment is left untouched: the URL
// wins over separately-configured database names.
func injectDatabase(jdbcURL, database string) (string, error) {
	if database == "" {
		return jdbcURL, nil
	}

	i := strings.Index(jdbcURL, "://")
	if i < 0 {
		return "", domain.ErrValidation("malformed JDBC URL %q: missing \"://\"", jdbcURL)
	}

	rest := jdbcURL[i+3:]
	tail := "" // query string, including the leading '?'
	authority := rest
	if qi := strings.IndexByte(rest, '?'); qi >= 0 {
		authority = rest[:qi]
		tail = rest[qi:]
	}
	if strings.Contains(authority, "/") {
		return jdbcURL, nil
	}
	return jdbcURL[:i+3] + authority + "/" + database + tail, nil
}

// mergeQuery rewrites the URL's query string, merging vars into the
// sessionVariables parameter while preserving the order of all parameters.
func mergeQuery(jdbcURL string, vars domain.SessionVariables) string {
	qi := strings.IndexByte(jdbcURL, '?')
	if qi < 0 || qi == len(jdbcURL)-1 {
		if len(vars) == 0 {
			return jdbcURL
		}
		if qi < 0 {
			return jdbcURL + "?" + sessionVariablesParam + "=" + vars.String()
		}
		return jdbcURL + sessionVariablesParam + "=" + vars.String()
	}
	if len(vars) == 0 {
		return jdbcURL
	}

	params := strings.Split(jdbcURL[qi+1:], "&")
	found := false
	for i, param := range params {
		key, value, _ := strings.Cut(param, "=")
		if key != sessionVariablesParam {
			continue
		}
		found = true
		merged := vars.String()
		if value != "" {
			// Context entries precede the URL's own entries; both are kept.
			merged += "," + value
		}
		params[i] = key + "=" + merged
	}
	if !found {
		params = append(params, sessionVariablesParam+"="+vars.String())
	}
	return jdbcURL[:qi+1] + strings.Join(params, "&")
}
