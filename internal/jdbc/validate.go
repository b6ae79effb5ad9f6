// Package jdbc resolves external JDBC table properties into validated,
// serializable connection descriptors for the execution layer.
package jdbc

import (
	"jdbc-bridge/internal/domain"
)

// inlineKeys is the full connection parameter set required when a table is
// defined without a resource reference.
var inlineKeys = []string{
	domain.PropURI,
	domain.PropDriverClass,
	domain.PropDriverURL,
	domain.PropChecksum,
	domain.PropUser,
	domain.PropPassword,
}

// ValidateProperties checks the raw property map from DDL. A table either
// references a registered resource (requiring "resource" and "table") or
// carries the full inline connection parameter set. Returns true when the
// resource path is in use.
func ValidateProperties(props map[string]string) (bool, error) {
	if props == nil {
		return false, &domain.MissingPropertyError{Key: domain.PropResource}
	}

	if _, ok := props[domain.PropResource]; ok {
		if _, ok := props[domain.PropTable]; !ok {
			return false, &domain.MissingPropertyError{Key: domain.PropTable}
		}
		return true, nil
	}

	for _, key := range inlineKeys {
		if _, ok := props[key]; !ok {
			return false, &domain.MissingPropertyError{Key: key}
		}
	}
	return false, nil
}
