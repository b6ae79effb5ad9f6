package domain

import "strings"

// SessionVariables is an ordered list of key=value entries forwarded to the
// remote JDBC connection at connect time. Entries prefixed with "@" denote
// user-defined variables; the prefix is opaque here. Order matters: entries
// are re-emitted in the order given.
type SessionVariables []string

// ParseSessionVariables splits a comma-separated session-variable string into
// its ordered entries. An empty string maps to an empty set. Entries are not
// otherwise parsed or validated.
func ParseSessionVariables(s string) SessionVariables {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	vars := make(SessionVariables, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			vars = append(vars, p)
		}
	}
	return vars
}

// String re-joins the entries into the comma-separated wire form.
func (v SessionVariables) String() string {
	return strings.Join(v, ",")
}
