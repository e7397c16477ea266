package slashingprotection

import (
	"sync"

	"github.com/attestguard/slashguard/validator/db/kv"
	"github.com/pkg/errors"
)

// AttestationStore is the Guarded Protector for attestations: it serializes
// check_and_record calls against one validator identity's attestation
// history, keeping the in-memory History Index and the Durable Log in
// agreement.
type AttestationStore struct {
	mu      sync.Mutex
	state   storeState
	log     attestationLog
	history *attestationHistory
}

// InitializeAttestationStore creates path if absent and returns an open,
// initially-empty AttestationStore, idempotently loading any existing
// history if path already holds a valid store.
func InitializeAttestationStore(path string) (*AttestationStore, error) {
	l, err := kv.InitializeAttestationLog(path)
	if err != nil {
		return nil, translateOpenError(err)
	}
	return newAttestationStore(l)
}

// OpenAttestationStore opens an existing path in read-write mode, failing
// if it does not exist or is not a valid store.
func OpenAttestationStore(path string) (*AttestationStore, error) {
	l, err := kv.OpenAttestationLog(path)
	if err != nil {
		return nil, translateOpenError(err)
	}
	return newAttestationStore(l)
}

func newAttestationStore(l attestationLog) (*AttestationStore, error) {
	records, err := l.LoadAll()
	if err != nil {
		_ = l.Close()
		return nil, newStorageError(err)
	}

	h := newAttestationHistory(len(records))
	for _, rec := range records {
		h.records = append(h.records, AttestationRecord{
			SourceEpoch: Epoch(rec.SourceEpoch),
			TargetEpoch: Epoch(rec.TargetEpoch),
			Root:        Root(rec.Root),
		})
	}

	return &AttestationStore{
		state:   stateOpen,
		log:     l,
		history: h,
	}, nil
}

// Close releases the backing file handle and advisory lock, and moves the
// store to the Closed state.
func (s *AttestationStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != stateOpen {
		return nil
	}
	s.state = stateClosed
	return s.log.Close()
}

// CheckAndRecordAttestation is the AttestationStore's single public entry
// point (spec.md §4.4, §6.1).
func (s *AttestationStore) CheckAndRecordAttestation(sourceEpoch, targetEpoch Epoch, root Root) (verdict Verdict) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { observeVerdict("attestation", verdict) }()

	if s.state != stateOpen {
		return Verdict{Kind: VerdictStoreError, Err: ErrNotOpen}
	}

	candidate := AttestationRecord{SourceEpoch: sourceEpoch, TargetEpoch: targetEpoch, Root: root}
	d := checkAttesterHistory(s.history, candidate)

	if !d.accepted {
		log.WithFields(attestationLogFields(candidate)).WithField("kind", d.kind).Warn("Rejected slashable attestation")
		return Verdict{Kind: VerdictSlashable, RejectKind: d.kind}
	}

	if d.reason == ReasonIdenticalVote {
		return Verdict{Kind: VerdictAlreadySigned}
	}

	err := s.log.Insert(kv.AttestationRecord{
		SourceEpoch: uint64(sourceEpoch),
		TargetEpoch: uint64(targetEpoch),
		Root:        [32]byte(root),
	})
	if err != nil {
		if errors.Is(err, kv.ErrAlreadyPresent) {
			return Verdict{Kind: VerdictStoreError, Err: err}
		}
		return Verdict{Kind: VerdictStoreError, Err: newStorageError(err)}
	}

	s.history.insertAt(d.index, candidate)
	log.WithFields(attestationLogFields(candidate)).Debug("Recorded attestation")
	return Verdict{Kind: VerdictRecorded}
}

func attestationLogFields(rec AttestationRecord) map[string]interface{} {
	return map[string]interface{}{
		"sourceEpoch": rec.SourceEpoch,
		"targetEpoch": rec.TargetEpoch,
	}
}
