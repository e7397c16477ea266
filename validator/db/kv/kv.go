// Package kv implements the Durable Log: a crash-safe, transactional,
// single-file persistence layer for signed block and attestation history,
// backed by bbolt. Each message type gets its own bucket with a uniqueness
// index on its temporal key (slot for blocks, target epoch for
// attestations), matching the two-table schema in spec.md §4.3.
package kv

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	bolt "go.etcd.io/bbolt"
)

var log = logrus.WithField("prefix", "validatordb")

// openBucket opens (or creates) path as a bbolt database and ensures it
// contains the named bucket. create controls whether the file and bucket
// are created when absent (Initialize) or must already exist (Open).
func openBucket(path string, bucket []byte, create bool) (*bolt.DB, error) {
	if !create {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return nil, ErrNotExist
			}
			return nil, errors.Wrap(err, "kv: could not stat backing file")
		}
	}

	db, err := bolt.Open(path, filePermOwnerReadWrite, &bolt.Options{Timeout: openLockTimeout})
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrLocked
		}
		return nil, errors.Wrap(err, "kv: could not open backing file")
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if create {
			_, err := tx.CreateBucketIfNotExists(bucket)
			return err
		}
		if tx.Bucket(bucket) == nil {
			return ErrCorrupt
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
