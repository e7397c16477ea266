package slashingprotection

import "sort"

// BlockRecord is a compact History Index entry for a signed block proposal.
type BlockRecord struct {
	Slot Slot
	Root Root
}

// AttestationRecord is a compact History Index entry for a signed
// attestation.
type AttestationRecord struct {
	SourceEpoch Epoch
	TargetEpoch Epoch
	Root        Root
}

// blockHistory is the in-memory, ascending-by-slot sequence of signed block
// records. It is never mutated after insertion except to grow; no entry is
// ever removed (monotonic retention, spec.md §3.2).
type blockHistory struct {
	records []BlockRecord
}

func newBlockHistory(capacity int) *blockHistory {
	return &blockHistory{records: make([]BlockRecord, 0, capacity)}
}

func (h *blockHistory) Len() int { return len(h.records) }

func (h *blockHistory) At(i int) BlockRecord { return h.records[i] }

// insertAt splices rec into the history at position i, shifting later
// entries right. Appending at the end (i == Len()) is the common case and
// runs in amortized O(1).
func (h *blockHistory) insertAt(i int, rec BlockRecord) {
	h.records = append(h.records, BlockRecord{})
	copy(h.records[i+1:], h.records[i:])
	h.records[i] = rec
}

// attestationHistory is the in-memory, ascending-by-target-epoch sequence
// of signed attestation records.
type attestationHistory struct {
	records []AttestationRecord
}

func newAttestationHistory(capacity int) *attestationHistory {
	return &attestationHistory{records: make([]AttestationRecord, 0, capacity)}
}

func (h *attestationHistory) Len() int { return len(h.records) }

func (h *attestationHistory) At(i int) AttestationRecord { return h.records[i] }

func (h *attestationHistory) insertAt(i int, rec AttestationRecord) {
	h.records = append(h.records, AttestationRecord{})
	copy(h.records[i+1:], h.records[i:])
	h.records[i] = rec
}

// searchBlockSlot returns the smallest index i such that
// h.records[i].Slot >= slot, i.e. the position slot would be inserted at to
// keep the slice sorted. It equals Len() if slot is greater than every
// recorded slot.
func (h *blockHistory) searchSlot(slot Slot) int {
	return sort.Search(len(h.records), func(i int) bool {
		return h.records[i].Slot >= slot
	})
}

// searchTargetEpoch returns the smallest index i such that
// h.records[i].TargetEpoch >= target.
func (h *attestationHistory) searchTargetEpoch(target Epoch) int {
	return sort.Search(len(h.records), func(i int) bool {
		return h.records[i].TargetEpoch >= target
	})
}
