package jdbc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverName_StableDigest(t *testing.T) {
	name := DriverName(
		"http://x.com/postgresql-42.3.3.jar",
		"bef0b2e1c6edcd8647c24bed31e1a4ac",
		"org.postgresql.Driver",
	)
	assert.Equal(t, "jdbc_b6b6edc40c2a10ebf954f3f627299554f995ac1893baa8d38980515c2b48dd89", name)
}

func TestDriverName_Deterministic(t *testing.T) {
	first := DriverName("http://x.com/mysql-connector-j-8.3.0.jar", "abc123", "com.mysql.cj.jdbc.Driver")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DriverName("http://x.com/mysql-connector-j-8.3.0.jar", "abc123", "com.mysql.cj.jdbc.Driver"))
	}
}

func TestDriverName_LongURL(t *testing.T) {
	longURL := "http://" + strings.Repeat("a", 164) + ".com/postgresql-42.3.3.jar"
	require.Greater(t, len(longURL), 150)

	name := DriverName(longURL, "bef0b2e1c6edcd8647c24bed31e1a4ac", "org.postgresql.Driver")
	assert.Equal(t, "jdbc_19c15eb74ea317d8ad6f51f48652ecc5e19520e763f45dcccc7694a391e4c07d", name)
}

func TestDriverName_EmptyFields(t *testing.T) {
	name := DriverName("", "", "")
	assert.Equal(t, "jdbc_9d908ecfb6b256def8b49a7c504e6c889c4b0e41fe6ce3e01863dd7b61a20aa0", name)
}

func TestDriverName_LengthShiftChangesDigest(t *testing.T) {
	// Moving a byte across the field boundary must produce a different name.
	assert.NotEqual(t, DriverName("ab", "c", "x"), DriverName("a", "bc", "x"))
	assert.NotEqual(t, DriverName("a", "bc", "x"), DriverName("a", "b", "cx"))
}

func TestDriverName_DistinctInputsDiffer(t *testing.T) {
	base := DriverName("http://x.com/a.jar", "sum", "Driver")
	assert.NotEqual(t, base, DriverName("http://x.com/b.jar", "sum", "Driver"))
	assert.NotEqual(t, base, DriverName("http://x.com/a.jar", "sum2", "Driver"))
	assert.NotEqual(t, base, DriverName("http://x.com/a.jar", "sum", "Driver2"))
}

func TestDriverName_Prefix(t *testing.T) {
	assert.True(t, strings.HasPrefix(DriverName("u", "c", "d"), "jdbc_"))
	// 256-bit digest, hex-encoded lowercase.
	assert.Len(t, DriverName("u", "c", "d"), len("jdbc_")+64)
}
