package jdbc

import (
	"context"

	"jdbc-bridge/internal/domain"
)

// Params carries everything needed to resolve one external table.
type Params struct {
	// TableName is the logical table name; on the inline path it is also the
	// remote table identity.
	TableName string
	// Database and Catalog locate the table in the external catalog. The
	// database name is injected into inline JDBC URLs that carry none.
	Database string
	Catalog  string
	// Properties is the raw property map from DDL.
	Properties map[string]string
	// SessionVariables are the caller's context-level session variables.
	SessionVariables domain.SessionVariables
}

// ResolveDescriptor runs the full pipeline for one external table: validate
// the raw properties, resolve the connection source (registered resource or
// inline parameters), merge session variables into the JDBC URL, and build
// the descriptor.
//
// The result is fully determined by the inputs plus the single registry
// lookup. On failure no partial descriptor is returned, and retrying without
// changing inputs reproduces the identical failure.
func ResolveDescriptor(ctx context.Context, registry domain.ResourceRegistry, p Params) (*domain.ConnectionDescriptor, error) {
	useResource, err := ValidateProperties(p.Properties)
	if err != nil {
		return nil, err
	}

	if useResource {
		name := p.Properties[domain.PropResource]
		info, err := Resolve(ctx, registry, name)
		if err != nil {
			return nil, err
		}
		// The resource URI already locates the remote database; nothing is
		// injected. The resource name identifies the driver artifact.
		url, err := MergeSessionVariables(info.URI, "", p.SessionVariables)
		if err != nil {
			return nil, err
		}
		desc := BuildDescriptor(name, info, url, p.Properties[domain.PropTable])
		return &desc, nil
	}

	// Inline path: remote table identity comes from the surrounding
	// database/catalog context rather than the property map.
	if p.TableName == "" {
		return nil, &domain.MissingPropertyError{Key: "table"}
	}
	if p.Database == "" {
		return nil, &domain.MissingPropertyError{Key: "database"}
	}
	if p.Catalog == "" {
		return nil, &domain.MissingPropertyError{Key: "catalog"}
	}

	info := connectionInfoFromProperties(p.Properties)
	url, err := MergeSessionVariables(info.URI, p.Database, p.SessionVariables)
	if err != nil {
		return nil, err
	}
	driverName := DriverName(info.DriverURL, info.Checksum, info.DriverClass)
	desc := BuildDescriptor(driverName, info, url, p.TableName)
	return &desc, nil
}
