package jdbc

import (
	"context"
	"errors"

	"jdbc-bridge/internal/domain"
)

// Resolve looks up a named resource in the registry, verifies it is a JDBC
// resource, and extracts its connection properties. A registry miss becomes
// UnknownResourceError; any other lookup failure is passed through.
func Resolve(ctx context.Context, registry domain.ResourceRegistry, name string) (domain.ConnectionInfo, error) {
	res, err := registry.Lookup(ctx, name)
	if err != nil {
		if errors.As(err, new(*domain.NotFoundError)) {
			return domain.ConnectionInfo{}, &domain.UnknownResourceError{Name: name}
		}
		return domain.ConnectionInfo{}, err
	}

	if res.Kind != domain.ResourceKindJDBC {
		return domain.ConnectionInfo{}, &domain.WrongResourceKindError{Name: name, Kind: res.Kind}
	}

	// Checksum may be absent on older resources; it defaults to "".
	return domain.ConnectionInfo{
		URI:         res.Property(domain.PropURI),
		DriverURL:   res.Property(domain.PropDriverURL),
		DriverClass: res.Property(domain.PropDriverClass),
		Checksum:    res.Property(domain.PropChecksum),
		User:        res.Property(domain.PropUser),
		Password:    res.Property(domain.PropPassword),
	}, nil
}

// connectionInfoFromProperties builds a ConnectionInfo from an inline
// property map that has already passed ValidateProperties.
func connectionInfoFromProperties(props map[string]string) domain.ConnectionInfo {
	return domain.ConnectionInfo{
		URI:         props[domain.PropURI],
		DriverURL:   props[domain.PropDriverURL],
		DriverClass: props[domain.PropDriverClass],
		Checksum:    props[domain.PropChecksum],
		User:        props[domain.PropUser],
		Password:    props[domain.PropPassword],
	}
}
