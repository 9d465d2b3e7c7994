package session

import (
	"testing"

	"pfep-analyzer/core/analysis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_SetReference(t *testing.T) {
	s := New()

	info, err := s.SetReference([]analysis.ReferenceItem{{PartID: "A1"}}, "upload", 2)
	require.NoError(t, err)

	assert.Equal(t, KindReference, info.Kind)
	assert.Equal(t, 1, info.Rows)
	assert.Equal(t, 2, info.Dropped)
	assert.NotZero(t, info.ID)
	assert.False(t, info.Locked)
}

func TestSession_LockRejectsReplace(t *testing.T) {
	s := New()

	_, err := s.SetReference([]analysis.ReferenceItem{{PartID: "A1"}}, "upload", 0)
	require.NoError(t, err)
	require.NoError(t, s.SetLock(KindReference, true))

	_, err = s.SetReference([]analysis.ReferenceItem{{PartID: "B2"}}, "upload", 0)
	assert.ErrorIs(t, err, ErrLocked)

	// Unlocking allows replacement again.
	require.NoError(t, s.SetLock(KindReference, false))
	info, err := s.SetReference([]analysis.ReferenceItem{{PartID: "B2"}}, "upload", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, info.Rows)

	reference, _ := s.Snapshot()
	require.Len(t, reference, 1)
	assert.Equal(t, "B2", reference[0].PartID)
}

func TestSession_LockUnloaded(t *testing.T) {
	s := New()
	assert.ErrorIs(t, s.SetLock(KindInventory, true), ErrNotLoaded)
}

func TestSession_SnapshotIsolation(t *testing.T) {
	s := New()
	_, err := s.SetReference([]analysis.ReferenceItem{{PartID: "A1", TargetQty: 5}}, "upload", 0)
	require.NoError(t, err)

	reference, _ := s.Snapshot()
	reference[0].TargetQty = 999

	again, _ := s.Snapshot()
	assert.Equal(t, 5.0, again[0].TargetQty)
}

func TestSession_Tolerance(t *testing.T) {
	s := New()
	assert.Equal(t, analysis.DefaultTolerance, s.Tolerance())

	require.NoError(t, s.SetTolerance(50))
	assert.Equal(t, 50.0, s.Tolerance())

	assert.Error(t, s.SetTolerance(33))
	assert.Equal(t, 50.0, s.Tolerance())
}

func TestSession_Loaded(t *testing.T) {
	s := New()
	assert.False(t, s.Loaded())

	_, err := s.SetReference(nil, "sample", 0)
	require.NoError(t, err)
	assert.False(t, s.Loaded())

	_, err = s.SetInventory(nil, "sample", 0)
	require.NoError(t, err)
	assert.True(t, s.Loaded())

	reference, inventory := s.Status()
	require.NotNil(t, reference)
	require.NotNil(t, inventory)
	assert.Equal(t, "sample", reference.Source)
}
