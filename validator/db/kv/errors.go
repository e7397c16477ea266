package kv

import "github.com/pkg/errors"

var (
	// ErrAlreadyPresent is returned by Insert when a record with the
	// candidate's temporal key already exists. Per spec.md §4.3, this
	// signals a programmer error in the normal flow: the Rule Engine
	// should already have rejected or idempotently accepted the candidate
	// before the Guarded Protector ever calls Insert.
	ErrAlreadyPresent = errors.New("kv: a record already exists for this temporal key")

	// ErrLocked is returned by Open/Initialize when another process
	// already holds the exclusive advisory lock on the backing file.
	ErrLocked = errors.New("kv: backing file is locked by another process")

	// ErrCorrupt is returned by Open when the backing file exists but does
	// not contain the expected bucket.
	ErrCorrupt = errors.New("kv: backing file does not contain a recognized store")

	// ErrNotExist is returned by Open when the backing file does not
	// exist; callers should Initialize instead.
	ErrNotExist = errors.New("kv: backing file does not exist")
)
