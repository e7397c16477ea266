package slashingprotection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockHistory_InsertAt_KeepsSortOrder(t *testing.T) {
	h := newBlockHistory(0)
	h.insertAt(0, BlockRecord{Slot: 10})
	h.insertAt(1, BlockRecord{Slot: 20})
	// Insert 15 in the middle.
	pos := h.searchSlot(15)
	h.insertAt(pos, BlockRecord{Slot: 15})

	var slots []Slot
	for i := 0; i < h.Len(); i++ {
		slots = append(slots, h.At(i).Slot)
	}
	assert.Equal(t, []Slot{10, 15, 20}, slots)
}

func TestAttestationHistory_InsertAt_KeepsSortOrder(t *testing.T) {
	h := newAttestationHistory(0)
	h.insertAt(0, AttestationRecord{TargetEpoch: 9})
	h.insertAt(1, AttestationRecord{TargetEpoch: 13})
	pos := h.searchTargetEpoch(11)
	h.insertAt(pos, AttestationRecord{TargetEpoch: 11})

	var targets []Epoch
	for i := 0; i < h.Len(); i++ {
		targets = append(targets, h.At(i).TargetEpoch)
	}
	assert.Equal(t, []Epoch{9, 11, 13}, targets)
}
