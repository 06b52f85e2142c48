package main

import (
	"math/rand"
	"sort"
)

type ScoredMove struct {
	Move  Move
	Score float64
}

// MoveEvaluator scores candidate placements for one side. Implementations are
// selected by configuration, not inheritance.
type MoveEvaluator interface {
	EvaluateMoves(state GameState, player PlayerColor) []ScoredMove
	BestMove(state GameState, player PlayerColor) (Move, bool)
}

// HeuristicEvaluator performs single-ply scoring: attack value, weighted
// defense value, a center-distance bonus, and compound-tactic bonuses when the
// profile enables them.
type HeuristicEvaluator struct {
	rules   Rules
	profile DifficultyProfile
	weights HeuristicConfig
	rng     *rand.Rand
}

func NewHeuristicEvaluator(rules Rules, profile DifficultyProfile, weights HeuristicConfig, rng *rand.Rand) *HeuristicEvaluator {
	if weights == (HeuristicConfig{}) {
		weights = DefaultConfig().Heuristics
	}
	return &HeuristicEvaluator{
		rules:   rules,
		profile: profile,
		weights: weights,
		rng:     rng,
	}
}

func (e *HeuristicEvaluator) Profile() DifficultyProfile {
	return e.profile
}

// EvaluateMoves scores every empty cell and returns them in descending score
// order. Equal scores keep ascending (x, y) scan order, so results are fully
// deterministic for a given board.
func (e *HeuristicEvaluator) EvaluateMoves(state GameState, player PlayerColor) []ScoredMove {
	board := state.Board
	size := board.Size()
	own := CellFromPlayer(player)
	opp := CellFromPlayer(otherPlayer(player))
	scored := make([]ScoredMove, 0, board.CountEmpty())
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			if board.At(x, y) != CellEmpty {
				continue
			}
			score := e.scoreCell(board, x, y, own, opp)
			scored = append(scored, ScoredMove{Move: Move{X: x, Y: y}, Score: score})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// BestMove picks the top candidate, or, when the profile's mistake draw
// fires, a uniformly random pick among the top-k. The mistake draw is the
// evaluator's only source of intentional sub-optimality.
func (e *HeuristicEvaluator) BestMove(state GameState, player PlayerColor) (Move, bool) {
	if move, ok := e.openingMove(state.Board); ok {
		return move, true
	}
	scored := e.EvaluateMoves(state, player)
	if len(scored) == 0 {
		return Move{}, false
	}
	if e.profile.MistakeProbability > 0 && e.rng != nil && e.rng.Float64() < e.profile.MistakeProbability {
		k := e.profile.MistakeTopK
		if k <= 0 {
			k = 3
		}
		if k > len(scored) {
			k = len(scored)
		}
		return scored[e.rng.Intn(k)].Move, true
	}
	return scored[0].Move, true
}

// openingMove short-circuits near-empty boards: center first, then a fixed
// diagonal neighbor when center is taken.
func (e *HeuristicEvaluator) openingMove(board Board) (Move, bool) {
	if board.CountStones() > 1 {
		return Move{}, false
	}
	center := board.Size() / 2
	if board.At(center, center) == CellEmpty {
		return Move{X: center, Y: center}, true
	}
	if board.IsEmpty(center-1, center-1) {
		return Move{X: center - 1, Y: center - 1}, true
	}
	return Move{}, false
}

func (e *HeuristicEvaluator) scoreCell(board Board, x, y int, own, opp Cell) float64 {
	ownAnalyses := AnalyzeAllDirections(board, x, y, own)
	oppAnalyses := AnalyzeAllDirections(board, x, y, opp)

	attack := e.lineSum(ownAnalyses) * e.profile.AttackMultiplier
	defense := e.lineSum(oppAnalyses) * e.profile.DefenseMultiplier
	score := attack + defense + e.positionalBonus(board.Size(), x, y)

	if e.profile.AdvancedTactics {
		score += e.compoundBonus(DetectCompound(ownAnalyses))
		score += e.compoundBonus(DetectCompound(oppAnalyses)) * e.profile.DefenseMultiplier
	}
	return score
}

func (e *HeuristicEvaluator) lineSum(analyses [4]LineAnalysis) float64 {
	sum := 0.0
	for _, analysis := range analyses {
		sum += e.threatWeight(analysis.Threat())
	}
	return sum
}

func (e *HeuristicEvaluator) threatWeight(threat ThreatLevel) float64 {
	switch threat {
	case ThreatFive:
		return e.weights.Five
	case ThreatOpenFour:
		return e.weights.Open4
	case ThreatClosedFour:
		return e.weights.Closed4
	case ThreatOpenThree:
		return e.weights.Open3
	case ThreatClosedThree:
		return e.weights.Closed3
	case ThreatOpenTwo:
		return e.weights.Open2
	case ThreatClosedTwo:
		return e.weights.Closed2
	default:
		return e.weights.Single
	}
}

func (e *HeuristicEvaluator) compoundBonus(compound CompoundThreat) float64 {
	switch compound {
	case CompoundFourThree:
		return e.weights.ForkFourThree
	case CompoundDoubleThree:
		return e.weights.ForkDoubleThree
	default:
		return 0
	}
}

// positionalBonus decreases linearly with Manhattan distance from the board
// center; the center cell scores highest.
func (e *HeuristicEvaluator) positionalBonus(size, x, y int) float64 {
	center := size / 2
	dist := absInt(x-center) + absInt(y-center)
	bonus := e.weights.CenterBonus - float64(dist)
	if bonus < 0 {
		return 0
	}
	return bonus
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
