package main

// Snapshot is an immutable, fully independent copy of board, turn, and skill
// usage at one point in game history.
type Snapshot struct {
	Board      Board
	ToMove     PlayerColor
	SkillUsage SkillUsageRecord
	MoveCount  int
	Seq        int
}

func (s Snapshot) Clone() Snapshot {
	clone := s
	clone.Board = s.Board.Clone()
	return clone
}

// HistoryStore keeps an ordered, capacity-bounded list of snapshots. It is
// append-only except for Rewind, which truncates from the tail. When the
// capacity is reached the oldest snapshot is evicted first.
type HistoryStore struct {
	limit     int
	nextSeq   int
	snapshots []Snapshot
}

const defaultHistoryLimit = 100

func NewHistoryStore(limit int) *HistoryStore {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return &HistoryStore{limit: limit}
}

// Record appends a snapshot of the given state and returns it. The stored
// copy is independent of any later mutation of the live board.
func (h *HistoryStore) Record(state GameState) Snapshot {
	snapshot := Snapshot{
		Board:      state.Board.Clone(),
		ToMove:     state.ToMove,
		SkillUsage: state.SkillUsage,
		MoveCount:  state.MoveCount,
		Seq:        h.nextSeq,
	}
	h.nextSeq++
	h.snapshots = append(h.snapshots, snapshot)
	if len(h.snapshots) > h.limit {
		h.snapshots = h.snapshots[1:]
	}
	return snapshot.Clone()
}

func (h *HistoryStore) Len() int {
	return len(h.snapshots)
}

func (h *HistoryStore) Tail() (Snapshot, bool) {
	if len(h.snapshots) == 0 {
		return Snapshot{}, false
	}
	return h.snapshots[len(h.snapshots)-1].Clone(), true
}

// Rewind discards the last steps snapshots and returns the new tail. It needs
// a prior state to land on, so the store must hold at least steps+1 entries;
// otherwise it fails with ErrInsufficientHistory and nothing changes.
func (h *HistoryStore) Rewind(steps int) (Snapshot, error) {
	if steps <= 0 {
		return Snapshot{}, ErrInsufficientHistory
	}
	if len(h.snapshots) < steps+1 {
		return Snapshot{}, ErrInsufficientHistory
	}
	h.snapshots = h.snapshots[:len(h.snapshots)-steps]
	return h.snapshots[len(h.snapshots)-1].Clone(), nil
}

// MarkTailSkillUsed flips a usage flag on the stored tail snapshot. Rewind
// restores state from the tail instead of appending a fresh snapshot, so the
// invoking player's rewind flag has to be persisted there or a later rewind
// would hand the skill back.
func (h *HistoryStore) MarkTailSkillUsed(player PlayerColor, skill SkillType) {
	if len(h.snapshots) == 0 {
		return
	}
	h.snapshots[len(h.snapshots)-1].SkillUsage.MarkUsed(player, skill)
}

func (h *HistoryStore) Clear() {
	h.snapshots = nil
	h.nextSeq = 0
}
