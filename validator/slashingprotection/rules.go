package slashingprotection

// checkProposerHistory implements the block proposer rule from spec.md
// §4.1.1. It is a pure function: it only reads h, never mutates it, and
// never retains the reference past the call.
func checkProposerHistory(h *blockHistory, candidate BlockRecord) decision {
	n := h.Len()
	if n == 0 {
		return accept(0, ReasonEmptyHistory)
	}

	last := h.At(n - 1)
	if candidate.Slot > last.Slot {
		return accept(n, ReasonValid)
	}

	// Locate the greatest index i such that h[i].Slot <= candidate.Slot.
	// searchSlot gives the first index with Slot >= candidate.Slot; walking
	// back one step (when it doesn't land exactly on candidate.Slot) gives
	// the greatest index with Slot <= candidate.Slot.
	pos := h.searchSlot(candidate.Slot)
	var i int
	if pos < n && h.At(pos).Slot == candidate.Slot {
		i = pos
	} else {
		i = pos - 1
	}
	if i < 0 {
		return reject(RejectPruningError)
	}

	rec := h.At(i)
	if rec.Slot < candidate.Slot {
		return reject(RejectSlotTooEarly)
	}

	// rec.Slot == candidate.Slot
	if rec.Root == candidate.Root {
		return accept(i, ReasonIdenticalVote)
	}
	return reject(RejectDoubleBlockProposal)
}

// checkAttesterHistory implements the attester rule from spec.md §4.1.2. As
// with checkProposerHistory, this never mutates or retains h.
func checkAttesterHistory(h *attestationHistory, candidate AttestationRecord) decision {
	n := h.Len()
	if n == 0 {
		return accept(0, ReasonEmptyHistory)
	}

	// Identical-vote check first: any record with the same target epoch
	// and the same signing root is an idempotent resubmission regardless
	// of where in the history it sits.
	for i := 0; i < n; i++ {
		rec := h.At(i)
		if rec.TargetEpoch == candidate.TargetEpoch && rec.Root == candidate.Root {
			return accept(i, ReasonIdenticalVote)
		}
	}

	for i := 0; i < n; i++ {
		rec := h.At(i)

		// Double-vote rule.
		if rec.TargetEpoch == candidate.TargetEpoch && rec.Root != candidate.Root {
			return reject(RejectDoubleVote)
		}

		// An existing record surrounds the candidate: the candidate was
		// surrounded.
		if rec.SourceEpoch < candidate.SourceEpoch && rec.TargetEpoch > candidate.TargetEpoch {
			return reject(RejectSurroundedVote)
		}

		// The candidate surrounds an existing record: the candidate is
		// surrounding.
		if rec.SourceEpoch > candidate.SourceEpoch && rec.TargetEpoch < candidate.TargetEpoch {
			return reject(RejectSurroundingVote)
		}
	}

	index := h.searchTargetEpoch(candidate.TargetEpoch)
	return accept(index, ReasonValid)
}
