package kv

import (
	"sort"

	"github.com/attestguard/slashguard/bytesutil"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

// BlockRecord is the Durable Log's on-disk representation of a signed block
// proposal: a (slot, signing root) pair.
type BlockRecord struct {
	Slot uint64
	Root [32]byte
}

// BlockLog is the Durable Log for block proposals: a single bbolt file
// holding the signed_blocks table, keyed by slot.
type BlockLog struct {
	db *bolt.DB
}

// InitializeBlockLog creates path if absent (with owner-read-write-only
// permissions) and ensures the signed_blocks bucket exists. It succeeds
// idempotently if path already contains a valid store.
func InitializeBlockLog(path string) (*BlockLog, error) {
	db, err := openBucket(path, signedBlocksBucket, true)
	if err != nil {
		return nil, err
	}
	registerBoltMetrics(db, path)
	return &BlockLog{db: db}, nil
}

// OpenBlockLog opens an existing path in read-write mode. It fails if the
// file does not exist or does not contain the signed_blocks bucket.
func OpenBlockLog(path string) (*BlockLog, error) {
	db, err := openBucket(path, signedBlocksBucket, false)
	if err != nil {
		return nil, err
	}
	registerBoltMetrics(db, path)
	return &BlockLog{db: db}, nil
}

// Close releases the file handle and the advisory file lock.
func (l *BlockLog) Close() error {
	return l.db.Close()
}

// Insert writes rec inside a single transaction and returns once committed.
// It returns ErrAlreadyPresent if a record already exists for rec.Slot,
// without mutating the store.
func (l *BlockLog) Insert(rec BlockRecord) error {
	key := bytesutil.Uint64ToBytesBigEndian(rec.Slot)
	err := l.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(signedBlocksBucket)
		if bkt.Get(key) != nil {
			return ErrAlreadyPresent
		}
		return bkt.Put(key, rec.Root[:])
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyPresent) {
			return ErrAlreadyPresent
		}
		return errors.Wrap(err, "kv: could not insert block record")
	}
	return nil
}

// LoadAll reads every record from the signed_blocks bucket, returning them
// sorted ascending by slot. The store's byte-ordered keys already sort
// correctly across the full uint64 range, but the slice is re-sorted
// explicitly to keep the on-load ordering guarantee independent of the key
// encoding.
func (l *BlockLog) LoadAll() ([]BlockRecord, error) {
	var records []BlockRecord
	err := l.db.View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(signedBlocksBucket)
		return bkt.ForEach(func(k, v []byte) error {
			rec := BlockRecord{Slot: bytesutil.BytesToUint64BigEndian(k)}
			copy(rec.Root[:], v)
			records = append(records, rec)
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "kv: could not load block records")
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Slot < records[j].Slot })
	return records, nil
}
