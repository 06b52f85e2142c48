package main

import (
	"context"
	"log"
	"math/rand"
)

type DecisionPhase int

const (
	PhaseAwaitingDecision DecisionPhase = iota
	PhaseEvaluatingSkillUse
	PhaseSkillApplied
	PhaseNoSkill
	PhaseEvaluatingMove
	PhaseMoveApplied
	PhaseTurnComplete
)

// Decision is the outcome of one AI turn: either a skill selection or a cell
// to play.
type Decision struct {
	UseSkill bool
	Skill    SkillType
	Move     Move
	HasMove  bool
}

// DecisionPipeline orchestrates an AI turn: skill-use decision, then move
// decision, with an optional external-advisor consultation on each. Advisor
// failures never propagate; the local path always produces a result.
type DecisionPipeline struct {
	rules     Rules
	evaluator MoveEvaluator
	advisor   *AdvisorClient
	config    Config
	rng       *rand.Rand
	phase     DecisionPhase
}

func NewDecisionPipeline(rules Rules, evaluator MoveEvaluator, advisor *AdvisorClient, config Config, rng *rand.Rand) *DecisionPipeline {
	return &DecisionPipeline{
		rules:     rules,
		evaluator: evaluator,
		advisor:   advisor,
		config:    config,
		rng:       rng,
		phase:     PhaseAwaitingDecision,
	}
}

func (p *DecisionPipeline) Phase() DecisionPhase {
	return p.phase
}

// Decide computes the turn's action from a state snapshot. historyLen gates
// rewind feasibility; recent feeds the advisor's context.
func (p *DecisionPipeline) Decide(ctx context.Context, state GameState, historyLen int, recent []HistoryEntry) Decision {
	p.phase = PhaseEvaluatingSkillUse
	if skill, ok := p.decideSkill(ctx, state, historyLen, recent); ok {
		p.phase = PhaseSkillApplied
		return Decision{UseSkill: true, Skill: skill}
	}
	p.phase = PhaseEvaluatingMove
	move, ok := p.decideMove(ctx, state, recent)
	p.phase = PhaseTurnComplete
	return Decision{Move: move, HasMove: ok}
}

// decideSkill applies the rule gates from most to least decisive: early-game
// cutoff, urgency on opponent threats, then a phase-scaled probability gate
// over estimated skill values. If rules are inconclusive the advisor gets a
// say; its silence or nonsense means no skill.
func (p *DecisionPipeline) decideSkill(ctx context.Context, state GameState, historyLen int, recent []HistoryEntry) (SkillType, bool) {
	player := state.ToMove
	available := p.usableSkills(state, historyLen)
	if len(available) == 0 {
		return 0, false
	}
	if state.MoveCount < p.config.MinMovesBeforeSkill {
		return 0, false
	}

	oppCell := CellFromPlayer(otherPlayer(player))
	oppStats := CollectRunStats(state.Board, oppCell)
	if oppStats.FourThreats > 0 || oppStats.OpenThrees >= 2 {
		// Urgent: disrupt the board. Remove first, then the rest by the
		// fixed priority order.
		log.Printf("[skill] urgency for %s: fours=%d open threes=%d", player, oppStats.FourThreats, oppStats.OpenThrees)
		return available[0], true
	}

	chance := p.config.SkillBaseChance + float64(state.MoveCount)*p.config.SkillChancePerMove
	if chance > p.config.SkillMaxChance {
		chance = p.config.SkillMaxChance
	}
	if p.rng != nil && p.rng.Float64() < chance {
		ownStats := CollectRunStats(state.Board, CellFromPlayer(player))
		fullness := 1.0 - float64(state.Board.CountEmpty())/float64(state.Board.Size()*state.Board.Size())
		bestSkill := SkillType(0)
		bestValue := 0.0
		for _, skill := range available {
			value := estimateSkillValue(skill, ownStats, oppStats, fullness)
			if value > bestValue {
				bestSkill = skill
				bestValue = value
			}
		}
		if bestValue >= p.config.SkillValueThreshold {
			return bestSkill, true
		}
	}

	if p.advisor != nil {
		resp, err := p.advisor.SuggestSkill(ctx, buildAdvisorRequest(state, recent))
		if err != nil {
			return 0, false
		}
		skill, err := validateAdvisorSkill(resp, state.SkillUsage, player)
		if err != nil {
			return 0, false
		}
		if skill == SkillRewind && historyLen < p.config.RewindSteps+1 {
			return 0, false
		}
		return skill, true
	}
	return 0, false
}

// decideMove runs the urgent checks before any scoring: complete an own five,
// else block the opponent's. Only then is the advisor consulted, and only
// when both fail does the full evaluator run.
func (p *DecisionPipeline) decideMove(ctx context.Context, state GameState, recent []HistoryEntry) (Move, bool) {
	player := state.ToMove
	own := CellFromPlayer(player)
	opp := CellFromPlayer(otherPlayer(player))

	if move, ok := p.rules.FindFiveCompletion(state.Board, own); ok {
		return move, true
	}
	if move, ok := p.rules.FindFiveCompletion(state.Board, opp); ok {
		return move, true
	}

	if p.advisor != nil {
		resp, err := p.advisor.SuggestMove(ctx, buildAdvisorRequest(state, recent))
		if err == nil {
			if err := validateAdvisorMove(resp, state.Board); err == nil {
				return Move{X: resp.X, Y: resp.Y}, true
			}
			log.Printf("[advisor] move suggestion (%d,%d) rejected", resp.X, resp.Y)
		}
	}

	return p.evaluator.BestMove(state, player)
}

// usableSkills filters the priority-ordered available list by the same
// preconditions the engine enforces, so the urgency pick never lands on a
// skill whose Apply is bound to fail and stall the turn.
func (p *DecisionPipeline) usableSkills(state GameState, historyLen int) []SkillType {
	usable := []SkillType{}
	stones := state.Board.CountStones()
	for _, skill := range state.SkillUsage.Available(state.ToMove) {
		switch skill {
		case SkillRewind:
			if historyLen < p.config.RewindSteps+1 {
				continue
			}
		case SkillScatter:
			scatterCount := p.config.ScatterCount
			if scatterCount <= 0 {
				scatterCount = defaultScatterCount
			}
			if stones == 0 || state.Board.CountEmpty() < minInt(scatterCount, stones) {
				continue
			}
		case SkillRemove:
			if stones == 0 {
				continue
			}
		}
		usable = append(usable, skill)
	}
	return usable
}

// estimateSkillValue scores a skill against the standing-threat balance.
// Removal pays off under pressure on a crowded board; scatter is a cheaper
// shake-up; rewind undoes momentum.
func estimateSkillValue(skill SkillType, own, opp RunStats, fullness float64) float64 {
	pressure := float64(opp.FourThreats)*3.0 + float64(opp.OpenThrees)*2.0 + float64(opp.OpenTwos)*0.5
	momentum := float64(own.FourThreats)*3.0 + float64(own.OpenThrees)*2.0
	switch skill {
	case SkillRemove:
		return pressure * (1.0 + fullness)
	case SkillScatter:
		return (pressure - momentum*0.5) * (0.5 + fullness)
	case SkillRewind:
		return (pressure - momentum) * 0.8
	default:
		return 0
	}
}
