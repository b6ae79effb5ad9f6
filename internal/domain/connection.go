package domain

// ConnectionInfo carries the raw connection parameters for an external JDBC
// database, either supplied inline in table properties or extracted from a
// registered resource. Exactly one of the two sources feeds a given instance.
type ConnectionInfo struct {
	URI         string
	DriverURL   string
	DriverClass string
	Checksum    string
	User        string
	Password    string
}

// ConnectionDescriptor is the finalized, serializable record describing how
// to connect to and query a specific external table. It is built once per
// table construction and never mutated afterward. The JSON field names are
// the wire contract with the execution layer and must not change.
type ConnectionDescriptor struct {
	DriverName     string `json:"driver_name"`
	DriverURL      string `json:"driver_url"`
	DriverClass    string `json:"driver_class"`
	DriverChecksum string `json:"driver_checksum"`
	JDBCURL        string `json:"jdbc_url"`
	JDBCTable      string `json:"jdbc_table"`
	User           string `json:"user"`
	Password       string `json:"password"`
}

// DescriptorRequest holds everything needed to resolve one external table
// into a ConnectionDescriptor.
type DescriptorRequest struct {
	// TableName is the logical table name; for inline tables it is also the
	// remote table identity.
	TableName string `json:"table_name"`
	// Database is the remote database to inject into the JDBC URL when the
	// URL carries no database segment (inline path only).
	Database string `json:"database"`
	// Catalog is the owning external catalog (inline path only).
	Catalog string `json:"catalog"`
	// Properties is the raw property map from DDL.
	Properties map[string]string `json:"properties"`
	// SessionVariables overrides the server-level session-variable string
	// when non-nil. Empty string means "none".
	SessionVariables *string `json:"session_variables,omitempty"`
}
