package slashingprotection

import "github.com/pkg/errors"

// Fatal configuration errors: once returned, the HistoryStore is unusable
// and the caller must not attempt to sign anything through it.
var (
	// ErrLocked is returned by Initialize/Open when another process already
	// holds the exclusive advisory lock on the backing file.
	ErrLocked = errors.New("slashing protection store: backing file is locked by another process")
	// ErrCorrupt is returned when the backing file exists but is not a
	// valid store (e.g. foreign file, missing buckets after open).
	ErrCorrupt = errors.New("slashing protection store: backing file is corrupt or not a recognized store")
	// ErrNotOpen is returned by any public operation invoked on a store
	// that is Uninitialized or Closed.
	ErrNotOpen = errors.New("slashing protection store: operation requires an open store")
)

// StorageError wraps a transient I/O failure from the Durable Log. It is
// surfaced to callers without interpretation, per the propagation policy:
// storage failures are never silently retried and never downgrade a
// slashable verdict.
type StorageError struct {
	cause error
}

func (e *StorageError) Error() string {
	return "slashing protection store: storage error: " + e.cause.Error()
}

// Unwrap allows errors.Is/errors.As to reach the underlying cause.
func (e *StorageError) Unwrap() error {
	return e.cause
}

func newStorageError(cause error) *StorageError {
	return &StorageError{cause: cause}
}
