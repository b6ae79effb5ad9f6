package jdbc

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// driverNamePrefix marks descriptor driver names derived from artifact
// identity rather than a resource name.
const driverNamePrefix = "jdbc_"

// DriverName derives a stable, collision-resistant identifier for a driver
// artifact from its download location, checksum, and class name. The name
// doubles as the cluster-wide de-duplication key for cached driver jars:
// identical inputs always produce the identical name, and distinct inputs
// must not collide.
//
// Each field is hashed length-prefixed so that shifting bytes between
// adjacent fields changes the digest.
func DriverName(driverURL, checksum, driverClass string) string {
	h := sha256.New()
	for _, field := range []string{driverURL, checksum, driverClass} {
		var n [8]byte
		binary.BigEndian.PutUint64(n[:], uint64(len(field)))
		h.Write(n[:])
		h.Write([]byte(field))
	}
	return driverNamePrefix + hex.EncodeToString(h.Sum(nil))
}
