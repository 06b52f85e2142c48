package main

import (
	"log"
	"math/rand"
)

type SkillType int

const (
	SkillScatter SkillType = iota
	SkillRemove
	SkillRewind
)

var skillNames = map[SkillType]string{
	SkillScatter: "scatter",
	SkillRemove:  "remove",
	SkillRewind:  "rewind",
}

func (s SkillType) String() string {
	if name, ok := skillNames[s]; ok {
		return name
	}
	return "unknown"
}

func SkillFromName(name string) (SkillType, bool) {
	for skill, known := range skillNames {
		if known == name {
			return skill, true
		}
	}
	return SkillScatter, false
}

type SkillFlags struct {
	Scatter bool `json:"scatter"`
	Remove  bool `json:"remove"`
	Rewind  bool `json:"rewind"`
}

// SkillUsageRecord tracks one-use-per-game flags for both players. Flags only
// move false to true while a game runs; the sole exception is a rewind
// restoring a snapshot taken before some other skill was used, which undoes
// that skill's effect along with its flag.
type SkillUsageRecord [2]SkillFlags

func (r SkillUsageRecord) Used(player PlayerColor, skill SkillType) bool {
	flags := r[player]
	switch skill {
	case SkillScatter:
		return flags.Scatter
	case SkillRemove:
		return flags.Remove
	case SkillRewind:
		return flags.Rewind
	default:
		return true
	}
}

func (r *SkillUsageRecord) MarkUsed(player PlayerColor, skill SkillType) {
	switch skill {
	case SkillScatter:
		r[player].Scatter = true
	case SkillRemove:
		r[player].Remove = true
	case SkillRewind:
		r[player].Rewind = true
	}
}

// Available lists the player's unused skills in fixed priority order.
func (r SkillUsageRecord) Available(player PlayerColor) []SkillType {
	available := []SkillType{}
	for _, skill := range []SkillType{SkillRemove, SkillScatter, SkillRewind} {
		if !r.Used(player, skill) {
			available = append(available, skill)
		}
	}
	return available
}

type SkillConfig struct {
	ScatterCount int
	RemoveCount  int
	RewindSteps  int
}

// SkillEngine applies the three special actions against the live state and
// the history store. Every failure path leaves state untouched.
type SkillEngine struct {
	cfg SkillConfig
	rng *rand.Rand
}

const (
	defaultScatterCount = 5
	defaultRemoveCount  = 3
	defaultRewindSteps  = 2
)

func NewSkillEngine(cfg SkillConfig, rng *rand.Rand) *SkillEngine {
	if cfg.ScatterCount <= 0 {
		cfg.ScatterCount = defaultScatterCount
	}
	if cfg.RemoveCount <= 0 {
		cfg.RemoveCount = defaultRemoveCount
	}
	if cfg.RewindSteps <= 0 {
		cfg.RewindSteps = defaultRewindSteps
	}
	return &SkillEngine{cfg: cfg, rng: rng}
}

func (e *SkillEngine) RewindSteps() int {
	return e.cfg.RewindSteps
}

// Apply runs one skill for player. On success the usage flag is marked and a
// snapshot of the post-effect state is recorded; rewind's post-effect state
// is the restored snapshot itself, so nothing extra is appended for it.
func (e *SkillEngine) Apply(state *GameState, history *HistoryStore, skill SkillType, player PlayerColor) error {
	if state.SkillUsage.Used(player, skill) {
		return ErrSkillAlreadyUsed
	}
	switch skill {
	case SkillScatter:
		if err := e.applyScatter(&state.Board); err != nil {
			return err
		}
	case SkillRemove:
		if err := e.applyRemove(&state.Board); err != nil {
			return err
		}
	case SkillRewind:
		return e.applyRewind(state, history, player)
	default:
		return ErrUnknownSkill
	}
	state.SkillUsage.MarkUsed(player, skill)
	history.Record(*state)
	log.Printf("[skill] %s applied %s", player, skill)
	return nil
}

// applyScatter lifts up to ScatterCount random stones off the board and drops
// them on random empty cells. Owners are preserved, so the total and
// per-player piece counts are invariant.
func (e *SkillEngine) applyScatter(board *Board) error {
	stones := board.Stones(CellEmpty)
	if len(stones) == 0 {
		return ErrInsufficientPieces
	}
	count := minInt(e.cfg.ScatterCount, len(stones))
	if board.CountEmpty() < count {
		return ErrInsufficientSpace
	}
	picked := pickRandom(e.rng, stones, count)
	owners := make([]Cell, len(picked))
	for i, stone := range picked {
		owners[i] = board.RemoveAt(stone.X, stone.Y)
	}
	targets := pickRandom(e.rng, board.EmptyCells(), count)
	for i, target := range targets {
		board.Set(target.X, target.Y, owners[i])
	}
	return nil
}

func (e *SkillEngine) applyRemove(board *Board) error {
	stones := board.Stones(CellEmpty)
	if len(stones) == 0 {
		return ErrInsufficientPieces
	}
	count := minInt(e.cfg.RemoveCount, len(stones))
	for _, stone := range pickRandom(e.rng, stones, count) {
		board.RemoveAt(stone.X, stone.Y)
	}
	return nil
}

func (e *SkillEngine) applyRewind(state *GameState, history *HistoryStore, player PlayerColor) error {
	snapshot, err := history.Rewind(e.cfg.RewindSteps)
	if err != nil {
		return err
	}
	state.Board = snapshot.Board.Clone()
	state.ToMove = snapshot.ToMove
	state.SkillUsage = snapshot.SkillUsage
	state.MoveCount = snapshot.MoveCount
	state.HasLastMove = false
	state.LastMove = Move{X: -1, Y: -1}
	state.WinningLine = nil
	state.SkillUsage.MarkUsed(player, SkillRewind)
	history.MarkTailSkillUsed(player, SkillRewind)
	log.Printf("[skill] %s rewound %d steps to seq %d", player, e.cfg.RewindSteps, snapshot.Seq)
	return nil
}

// pickRandom returns count distinct elements chosen uniformly from moves. A
// nil rng degrades to the first count elements in scan order on every path.
func pickRandom(rng *rand.Rand, moves []Move, count int) []Move {
	if count >= len(moves) {
		picked := append([]Move(nil), moves...)
		if rng != nil {
			rng.Shuffle(len(picked), func(i, j int) {
				picked[i], picked[j] = picked[j], picked[i]
			})
		}
		return picked
	}
	if rng == nil {
		return append([]Move(nil), moves[:count]...)
	}
	indexes := rng.Perm(len(moves))[:count]
	picked := make([]Move, 0, count)
	for _, idx := range indexes {
		picked = append(picked, moves[idx])
	}
	return picked
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
