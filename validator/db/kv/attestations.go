package kv

import (
	"sort"

	"github.com/attestguard/slashguard/bytesutil"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

// AttestationRecord is the Durable Log's on-disk representation of a signed
// attestation: a (source epoch, target epoch, signing root) triple.
type AttestationRecord struct {
	SourceEpoch uint64
	TargetEpoch uint64
	Root        [32]byte
}

// AttestationLog is the Durable Log for attestations: a single bbolt file
// holding the signed_attestations table, keyed by target epoch.
type AttestationLog struct {
	db *bolt.DB
}

// InitializeAttestationLog creates path if absent (owner-read-write-only
// permissions) and ensures the signed_attestations bucket exists.
func InitializeAttestationLog(path string) (*AttestationLog, error) {
	db, err := openBucket(path, signedAttestationsBucket, true)
	if err != nil {
		return nil, err
	}
	registerBoltMetrics(db, path)
	return &AttestationLog{db: db}, nil
}

// OpenAttestationLog opens an existing path in read-write mode. It fails if
// the file does not exist or does not contain the signed_attestations
// bucket.
func OpenAttestationLog(path string) (*AttestationLog, error) {
	db, err := openBucket(path, signedAttestationsBucket, false)
	if err != nil {
		return nil, err
	}
	registerBoltMetrics(db, path)
	return &AttestationLog{db: db}, nil
}

// Close releases the file handle and the advisory file lock.
func (l *AttestationLog) Close() error {
	return l.db.Close()
}

// Insert writes rec inside a single transaction. It returns ErrAlreadyPresent
// if a record already exists for rec.TargetEpoch, without mutating the
// store.
func (l *AttestationLog) Insert(rec AttestationRecord) error {
	key := bytesutil.Uint64ToBytesBigEndian(rec.TargetEpoch)
	value := make([]byte, 8+32)
	copy(value, bytesutil.Uint64ToBytesBigEndian(rec.SourceEpoch))
	copy(value[8:], rec.Root[:])

	err := l.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(signedAttestationsBucket)
		if bkt.Get(key) != nil {
			return ErrAlreadyPresent
		}
		return bkt.Put(key, value)
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyPresent) {
			return ErrAlreadyPresent
		}
		return errors.Wrap(err, "kv: could not insert attestation record")
	}
	return nil
}

// LoadAll reads every record from the signed_attestations bucket, returning
// them sorted ascending by target epoch.
func (l *AttestationLog) LoadAll() ([]AttestationRecord, error) {
	var records []AttestationRecord
	err := l.db.View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(signedAttestationsBucket)
		return bkt.ForEach(func(k, v []byte) error {
			rec := AttestationRecord{
				TargetEpoch: bytesutil.BytesToUint64BigEndian(k),
				SourceEpoch: bytesutil.BytesToUint64BigEndian(v[:8]),
			}
			copy(rec.Root[:], v[8:])
			records = append(records, rec)
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "kv: could not load attestation records")
	}
	sort.Slice(records, func(i, j int) bool { return records[i].TargetEpoch < records[j].TargetEpoch })
	return records, nil
}
