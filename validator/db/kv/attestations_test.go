package kv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttestationLog_InitializeThenInsertThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attestations.db")
	l, err := InitializeAttestationLog(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, l.Close()) }()

	recs, err := l.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, recs)

	root := [32]byte{7}
	require.NoError(t, l.Insert(AttestationRecord{SourceEpoch: 2, TargetEpoch: 5, Root: root}))

	recs, err = l.LoadAll()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, uint64(2), recs[0].SourceEpoch)
	assert.Equal(t, uint64(5), recs[0].TargetEpoch)
	assert.Equal(t, root, recs[0].Root)
}

func TestAttestationLog_Insert_AlreadyPresent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attestations.db")
	l, err := InitializeAttestationLog(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, l.Close()) }()

	require.NoError(t, l.Insert(AttestationRecord{SourceEpoch: 2, TargetEpoch: 5}))
	err = l.Insert(AttestationRecord{SourceEpoch: 3, TargetEpoch: 5})
	require.ErrorIs(t, err, ErrAlreadyPresent)
}

func TestAttestationLog_LoadAll_SortedByTargetEpoch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attestations.db")
	l, err := InitializeAttestationLog(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, l.Close()) }()

	targets := []uint64{13, 9, 12, 10, 11}
	for i, target := range targets {
		require.NoError(t, l.Insert(AttestationRecord{SourceEpoch: uint64(i), TargetEpoch: target}))
	}

	recs, err := l.LoadAll()
	require.NoError(t, err)
	require.Len(t, recs, 5)
	var got []uint64
	for _, r := range recs {
		got = append(got, r.TargetEpoch)
	}
	assert.Equal(t, []uint64{9, 10, 11, 12, 13}, got)
}

func TestOpenAttestationLog_Locked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attestations.db")
	l, err := InitializeAttestationLog(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, l.Close()) }()

	_, err = OpenAttestationLog(path)
	require.ErrorIs(t, err, ErrLocked)
}

func TestOpenAttestationLog_Corrupt(t *testing.T) {
	// A valid bbolt file that simply never had the attestations bucket
	// created (e.g. it is actually a block store file) is rejected as
	// corrupt rather than silently treated as empty.
	path := filepath.Join(t.TempDir(), "blocks.db")
	bl, err := InitializeBlockLog(path)
	require.NoError(t, err)
	require.NoError(t, bl.Close())

	_, err = OpenAttestationLog(path)
	require.ErrorIs(t, err, ErrCorrupt)
}
