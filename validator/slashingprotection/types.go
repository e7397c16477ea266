// Package slashingprotection implements the slashing-protection decision
// engine for a single validator identity: the Rule Engine, the in-memory
// History Index, and the Guarded Protector that serializes check-and-record
// operations against a durable log.
package slashingprotection

// Slot is the consensus time unit a block proposal is keyed on. It advances
// monotonically but this package never assumes any particular cadence.
type Slot uint64

// Epoch is the coarser consensus time unit an attestation names a source and
// target checkpoint in.
type Epoch uint64

// Root is the 32-byte signing root of a message's canonical serialization.
// Two messages sharing a Root are identical for slashing purposes; the
// caller is responsible for computing it.
type Root [32]byte

// SignedBlock is a block proposal that has been, or is about to be, signed.
// The (Slot, Root) pair is its full identity for slashing purposes.
type SignedBlock struct {
	Slot Slot
	Root Root
}

// SignedAttestation is an attestation that has been, or is about to be,
// signed. TargetEpoch is the temporal key used for ordering and conflict
// detection; SourceEpoch participates only in the surround-vote rules.
type SignedAttestation struct {
	SourceEpoch Epoch
	TargetEpoch Epoch
	Root        Root
}

// AcceptReason explains why a candidate was accepted by the Rule Engine.
type AcceptReason uint8

const (
	// ReasonEmptyHistory is returned when the history had no prior records.
	ReasonEmptyHistory AcceptReason = iota
	// ReasonValid is returned when the candidate advances the history
	// without colliding with any existing record.
	ReasonValid
	// ReasonIdenticalVote is returned when the candidate is a verbatim
	// resubmission of an already-recorded message (idempotent re-sign).
	ReasonIdenticalVote
)

// RejectKind enumerates the ways a candidate can be rejected by the Rule
// Engine. Every value here is slashable except PruningError, which means
// the candidate cannot be adjudicated at all.
type RejectKind uint8

const (
	// RejectDoubleBlockProposal: a different block was already signed for
	// this exact slot.
	RejectDoubleBlockProposal RejectKind = iota
	// RejectSlotTooEarly: a later slot has already been signed, so
	// accepting this candidate would violate the ascending-slot invariant.
	RejectSlotTooEarly
	// RejectPruningError: the candidate predates the oldest retained
	// record and cannot be adjudicated safely.
	RejectPruningError
	// RejectDoubleVote: an attestation with the same target epoch but a
	// different signing root was already signed.
	RejectDoubleVote
	// RejectSurroundedVote: an existing attestation's (source, target)
	// interval strictly contains the candidate's.
	RejectSurroundedVote
	// RejectSurroundingVote: the candidate's (source, target) interval
	// strictly contains an existing attestation's.
	RejectSurroundingVote
)

// String renders a RejectKind for logging.
func (k RejectKind) String() string {
	switch k {
	case RejectDoubleBlockProposal:
		return "double_block_proposal"
	case RejectSlotTooEarly:
		return "slot_too_early"
	case RejectPruningError:
		return "pruning_error"
	case RejectDoubleVote:
		return "double_vote"
	case RejectSurroundedVote:
		return "surrounded_vote"
	case RejectSurroundingVote:
		return "surrounding_vote"
	default:
		return "unknown"
	}
}

// decision is the Rule Engine's verdict on a single candidate: either an
// acceptance at a given insertion index, or a rejection with a kind. Exactly
// one of the two is meaningful; accepted distinguishes them.
type decision struct {
	accepted bool
	index    int
	reason   AcceptReason
	kind     RejectKind
}

func accept(index int, reason AcceptReason) decision {
	return decision{accepted: true, index: index, reason: reason}
}

func reject(kind RejectKind) decision {
	return decision{accepted: false, kind: kind}
}

// Verdict is the Guarded Protector's public result for a check_and_record
// call. Exactly one field is populated per case; callers switch on Kind.
type Verdict struct {
	Kind VerdictKind
	// RejectKind is populated when Kind == VerdictSlashable.
	RejectKind RejectKind
	// Err is populated when Kind == VerdictStoreError.
	Err error
}

// VerdictKind discriminates the cases of Verdict.
type VerdictKind uint8

const (
	// VerdictRecorded: the candidate was new and is now durably persisted.
	VerdictRecorded VerdictKind = iota
	// VerdictAlreadySigned: the identical message was already known; the
	// caller may reuse its existing signature.
	VerdictAlreadySigned
	// VerdictSlashable: the candidate conflicts with history; the caller
	// must not sign it.
	VerdictSlashable
	// VerdictStoreError: transient I/O or corruption; the caller must not
	// sign.
	VerdictStoreError
)

func (k VerdictKind) String() string {
	switch k {
	case VerdictRecorded:
		return "recorded"
	case VerdictAlreadySigned:
		return "already_signed"
	case VerdictSlashable:
		return "slashable"
	case VerdictStoreError:
		return "store_error"
	default:
		return "unknown"
	}
}
