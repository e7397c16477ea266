// Package bytesutil provides helpers for encoding the fixed-width integer
// keys used by the bbolt-backed durable log, mirroring the teacher's
// encoding/bytesutil package.
package bytesutil

import "encoding/binary"

// Uint64ToBytesBigEndian encodes x as an 8-byte big-endian slice. bbolt
// orders keys lexicographically, so big-endian encoding is what keeps
// numeric and byte order in agreement for ascending bucket scans.
func Uint64ToBytesBigEndian(x uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, x)
	return b
}

// BytesToUint64BigEndian decodes an 8-byte big-endian slice produced by
// Uint64ToBytesBigEndian. It panics if b is shorter than 8 bytes, the same
// contract binary.BigEndian.Uint64 has.
func BytesToUint64BigEndian(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}
