package slashingprotection

import "github.com/attestguard/slashguard/validator/db/kv"

// blockLog is the minimal capability the Guarded Protector needs from a
// block Durable Log. kv.BlockLog satisfies it; tests substitute a
// golang/mock-generated double to exercise the StoreError path without disk
// I/O.
type blockLog interface {
	Insert(rec kv.BlockRecord) error
	LoadAll() ([]kv.BlockRecord, error)
	Close() error
}

// attestationLog is the analogous capability for attestations.
type attestationLog interface {
	Insert(rec kv.AttestationRecord) error
	LoadAll() ([]kv.AttestationRecord, error)
	Close() error
}

var (
	_ blockLog       = (*kv.BlockLog)(nil)
	_ attestationLog = (*kv.AttestationLog)(nil)
)
