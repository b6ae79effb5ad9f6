package domain

import "time"

// ResourceKind identifies the external system a registered resource points at.
type ResourceKind string

// Possible values for ResourceKind.
const (
	ResourceKindJDBC    ResourceKind = "jdbc"
	ResourceKindSpark   ResourceKind = "spark"
	ResourceKindHive    ResourceKind = "hive"
	ResourceKindIceberg ResourceKind = "iceberg"
	ResourceKindHudi    ResourceKind = "hudi"
)

// KnownResourceKinds lists the closed set of accepted resource kinds.
var KnownResourceKinds = []ResourceKind{
	ResourceKindJDBC,
	ResourceKindSpark,
	ResourceKindHive,
	ResourceKindIceberg,
	ResourceKindHudi,
}

// Valid reports whether k is one of the known resource kinds.
func (k ResourceKind) Valid() bool {
	for _, known := range KnownResourceKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Connection property keys shared between resources and inline table
// properties.
const (
	PropURI         = "jdbc_uri"
	PropDriverURL   = "driver_url"
	PropDriverClass = "driver_class"
	PropChecksum    = "checksum"
	PropUser        = "user"
	PropPassword    = "password"
)

// Table property keys for resource-backed external tables.
const (
	PropResource = "resource"
	PropTable    = "table"
)

// Resource is a named, persisted configuration object describing how to
// reach an external system.
type Resource struct {
	ID         int64             `json:"id"`
	Name       string            `json:"name"`
	Kind       ResourceKind      `json:"kind"`
	Properties map[string]string `json:"properties"`
	Comment    string            `json:"comment,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// Property returns the named connection property, or "" when absent.
func (r *Resource) Property(key string) string {
	return r.Properties[key]
}

// CreateResourceRequest holds parameters for registering a new resource.
type CreateResourceRequest struct {
	Name       string            `json:"name"`
	Kind       string            `json:"kind"`
	Properties map[string]string `json:"properties"`
	Comment    string            `json:"comment,omitempty"`
}
