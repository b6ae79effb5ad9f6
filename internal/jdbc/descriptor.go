package jdbc

import "jdbc-bridge/internal/domain"

// BuildDescriptor assembles the final connection descriptor from a validated
// ConnectionInfo, the driver name, the merged JDBC URL, and the remote table
// name. Pure assembly; all validation happens earlier in the pipeline.
func BuildDescriptor(driverName string, info domain.ConnectionInfo, jdbcURL, table string) domain.ConnectionDescriptor {
	return domain.ConnectionDescriptor{
		DriverName:     driverName,
		DriverURL:      info.DriverURL,
		DriverClass:    info.DriverClass,
		DriverChecksum: info.Checksum,
		JDBCURL:        jdbcURL,
		JDBCTable:      table,
		User:           info.User,
		Password:       info.Password,
	}
}
