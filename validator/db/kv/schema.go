package kv

import "time"

var (
	// signedBlocksBucket holds one entry per recorded block proposal, keyed
	// by the big-endian-encoded slot. This is the "signed_blocks" table
	// from the spec, with the slot acting as its unique index.
	signedBlocksBucket = []byte("signed-blocks")

	// signedAttestationsBucket holds one entry per recorded attestation,
	// keyed by the big-endian-encoded target epoch. This is the
	// "signed_attestations" table, with target epoch as its unique index.
	signedAttestationsBucket = []byte("signed-attestations")
)

const (
	// filePermOwnerReadWrite is the file mode a store's backing file is
	// created with: owner read+write only.
	filePermOwnerReadWrite = 0600

	// openLockTimeout bounds how long Open/Initialize wait to acquire the
	// exclusive advisory file lock bbolt takes on the backing file. A
	// second process holding the lock causes bbolt to return
	// bolt.ErrTimeout once this elapses, which this package maps to
	// ErrLocked.
	openLockTimeout = 1 * time.Second
)
