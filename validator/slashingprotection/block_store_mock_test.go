package slashingprotection

import (
	"testing"

	"github.com/attestguard/slashguard/validator/db/kv"
	"github.com/attestguard/slashguard/validator/slashingprotection/mock"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBlockStore_InsertFailure_LeavesHistoryUnchanged proves the Guarded
// Protector's disk-precedes-memory ordering: when the Durable Log rejects an
// Insert that the Rule Engine already accepted, the in-memory History Index
// must not have been spliced, so a retry of the same candidate re-runs the
// rule check against the same history rather than silently drifting out of
// agreement with disk.
func TestBlockStore_InsertFailure_LeavesHistoryUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := mock.NewMockBlockLog(ctrl)
	m.EXPECT().LoadAll().Return(nil, nil)

	s, err := newBlockStore(m)
	require.NoError(t, err)

	wantErr := errors.New("disk full")
	m.EXPECT().Insert(kv.BlockRecord{Slot: 10, Root: [32]byte{1}}).Return(wantErr)

	v := s.CheckAndRecordBlock(10, Root{1})
	require.Equal(t, VerdictStoreError, v.Kind)
	assert.Equal(t, 0, s.history.Len())

	// Retry against a log that now accepts the write: the rule check must
	// run fresh against the still-empty history rather than treating the
	// failed attempt as already recorded.
	m.EXPECT().Insert(kv.BlockRecord{Slot: 10, Root: [32]byte{1}}).Return(nil)
	v = s.CheckAndRecordBlock(10, Root{1})
	require.Equal(t, VerdictRecorded, v.Kind)
	assert.Equal(t, 1, s.history.Len())
}

func TestAttestationStore_InsertFailure_LeavesHistoryUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := mock.NewMockAttestationLog(ctrl)
	m.EXPECT().LoadAll().Return(nil, nil)

	s, err := newAttestationStore(m)
	require.NoError(t, err)

	wantErr := errors.New("disk full")
	m.EXPECT().Insert(kv.AttestationRecord{SourceEpoch: 1, TargetEpoch: 2, Root: [32]byte{1}}).Return(wantErr)

	v := s.CheckAndRecordAttestation(1, 2, Root{1})
	require.Equal(t, VerdictStoreError, v.Kind)
	assert.Equal(t, 0, s.history.Len())

	m.EXPECT().Insert(kv.AttestationRecord{SourceEpoch: 1, TargetEpoch: 2, Root: [32]byte{1}}).Return(nil)
	v = s.CheckAndRecordAttestation(1, 2, Root{1})
	require.Equal(t, VerdictRecorded, v.Kind)
	assert.Equal(t, 1, s.history.Len())
}
