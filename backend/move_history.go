package main

type HistoryEntry struct {
	Move      Move
	Player    PlayerColor
	ElapsedMs float64
	IsAi      bool
	IsSkill   bool
	Skill     SkillType
}

// MoveHistory is the presentation-level move log: it feeds the API and the
// advisor's recent-move context. State restoration goes through HistoryStore.
type MoveHistory struct {
	entries []HistoryEntry
}

func (h *MoveHistory) Clear() {
	h.entries = nil
}

func (h *MoveHistory) Push(entry HistoryEntry) {
	h.entries = append(h.entries, entry)
}

// Truncate drops the most recent n entries, mirroring a rewind.
func (h *MoveHistory) Truncate(n int) {
	if n >= len(h.entries) {
		h.entries = nil
		return
	}
	h.entries = h.entries[:len(h.entries)-n]
}

func (h MoveHistory) Size() int {
	return len(h.entries)
}

func (h MoveHistory) All() []HistoryEntry {
	return append([]HistoryEntry(nil), h.entries...)
}

// Recent returns up to n of the latest entries, oldest first.
func (h MoveHistory) Recent(n int) []HistoryEntry {
	if n <= 0 || len(h.entries) == 0 {
		return nil
	}
	if n > len(h.entries) {
		n = len(h.entries)
	}
	return append([]HistoryEntry(nil), h.entries[len(h.entries)-n:]...)
}
