package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordedStates(store *HistoryStore, count int) GameState {
	state := DefaultGameState(DefaultGameSettings())
	state.Status = StatusRunning
	store.Record(state)
	for i := 0; i < count-1; i++ {
		state.Board.Set(i, 0, CellBlack)
		state.MoveCount++
		store.Record(state)
	}
	return state
}

func TestRecordKeepsIndependentCopies(t *testing.T) {
	store := NewHistoryStore(10)
	state := DefaultGameState(DefaultGameSettings())
	snapshot := store.Record(state)

	state.Board.Set(7, 7, CellBlack)
	tail, ok := store.Tail()
	require.True(t, ok)
	assert.Equal(t, CellEmpty, tail.Board.At(7, 7), "stored snapshot must not track the live board")
	assert.Equal(t, CellEmpty, snapshot.Board.At(7, 7))
}

func TestRecordEvictsOldestPastLimit(t *testing.T) {
	store := NewHistoryStore(2)
	recordedStates(store, 3)

	assert.Equal(t, 2, store.Len())
	tail, ok := store.Tail()
	require.True(t, ok)
	assert.Equal(t, 2, tail.Seq, "sequence numbers keep counting across eviction")
}

func TestRewindNeedsStepsPlusOneSnapshots(t *testing.T) {
	store := NewHistoryStore(10)
	recordedStates(store, 3)
	tailBefore, ok := store.Tail()
	require.True(t, ok)

	_, err := store.Rewind(6)
	require.ErrorIs(t, err, ErrInsufficientHistory)
	assert.Equal(t, 3, store.Len(), "failed rewind must not truncate")
	tailAfter, ok := store.Tail()
	require.True(t, ok)
	assert.True(t, tailBefore.Board.Equals(tailAfter.Board), "failed rewind must leave the tail untouched")
	assert.Equal(t, tailBefore.Seq, tailAfter.Seq)
}

func TestRewindReturnsNewTail(t *testing.T) {
	store := NewHistoryStore(10)
	recordedStates(store, 3)

	snapshot, err := store.Rewind(2)
	require.NoError(t, err)
	assert.Equal(t, 0, snapshot.Seq)
	assert.Equal(t, 0, snapshot.MoveCount)
	assert.Equal(t, 1, store.Len())
}

func TestRewindRejectsNonPositiveSteps(t *testing.T) {
	store := NewHistoryStore(10)
	recordedStates(store, 3)
	_, err := store.Rewind(0)
	require.ErrorIs(t, err, ErrInsufficientHistory)
	assert.Equal(t, 3, store.Len())
}

func TestMarkTailSkillUsedPersists(t *testing.T) {
	store := NewHistoryStore(10)
	recordedStates(store, 2)

	store.MarkTailSkillUsed(PlayerWhite, SkillRewind)
	tail, ok := store.Tail()
	require.True(t, ok)
	assert.True(t, tail.SkillUsage.Used(PlayerWhite, SkillRewind))
	assert.False(t, tail.SkillUsage.Used(PlayerBlack, SkillRewind))
}
