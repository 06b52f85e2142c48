package main

import (
	"context"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestPipeline(config Config, advisor *AdvisorClient, seed int64) *DecisionPipeline {
	rules := NewRules(DefaultGameSettings())
	rng := rand.New(rand.NewSource(seed))
	evaluator := NewHeuristicEvaluator(rules, HardProfile(), config.Heuristics, rng)
	return NewDecisionPipeline(rules, evaluator, advisor, config, rng)
}

func TestPipelineCompletesOwnFiveFirst(t *testing.T) {
	pipeline := newTestPipeline(DefaultConfig(), nil, 1)
	board := NewBoard(15)
	placeStones(&board, CellBlack,
		Move{X: 3, Y: 3}, Move{X: 4, Y: 3}, Move{X: 5, Y: 3}, Move{X: 6, Y: 3})
	// White threatens too, but finishing beats blocking.
	placeStones(&board, CellWhite,
		Move{X: 8, Y: 8}, Move{X: 8, Y: 9}, Move{X: 8, Y: 10}, Move{X: 8, Y: 11})
	state := runningState(board, PlayerBlack)

	decision := pipeline.Decide(context.Background(), state, 1, nil)
	if decision.UseSkill || !decision.HasMove {
		t.Fatalf("expected a move decision, got %+v", decision)
	}
	if (decision.Move != Move{X: 2, Y: 3}) {
		t.Fatalf("expected own completion (2,3), got (%d,%d)", decision.Move.X, decision.Move.Y)
	}
}

func TestPipelineBlocksOpponentFive(t *testing.T) {
	pipeline := newTestPipeline(DefaultConfig(), nil, 1)
	board := NewBoard(15)
	placeStones(&board, CellWhite,
		Move{X: 0, Y: 7}, Move{X: 1, Y: 7}, Move{X: 2, Y: 7}, Move{X: 3, Y: 7})
	placeStones(&board, CellBlack, Move{X: 10, Y: 10}, Move{X: 11, Y: 11})
	state := runningState(board, PlayerBlack)

	decision := pipeline.Decide(context.Background(), state, 1, nil)
	if !decision.HasMove {
		t.Fatalf("expected a move")
	}
	if (decision.Move != Move{X: 4, Y: 7}) {
		t.Fatalf("expected block (4,7), got (%d,%d)", decision.Move.X, decision.Move.Y)
	}
}

func TestNoSkillBeforeMinimumMoves(t *testing.T) {
	pipeline := newTestPipeline(DefaultConfig(), nil, 1)
	board := NewBoard(15)
	// Urgent-looking white threat, but the game just started.
	placeStones(&board, CellWhite,
		Move{X: 3, Y: 3}, Move{X: 4, Y: 3}, Move{X: 5, Y: 3}, Move{X: 6, Y: 3})
	state := runningState(board, PlayerBlack)
	state.MoveCount = 4

	decision := pipeline.Decide(context.Background(), state, 5, nil)
	if decision.UseSkill {
		t.Fatalf("skill used before the minimum move count")
	}
}

func TestUrgentThreatTriggersSkill(t *testing.T) {
	pipeline := newTestPipeline(DefaultConfig(), nil, 1)
	board := NewBoard(15)
	placeStones(&board, CellWhite,
		Move{X: 3, Y: 3}, Move{X: 4, Y: 3}, Move{X: 5, Y: 3}, Move{X: 6, Y: 3})
	placeStones(&board, CellBlack, Move{X: 10, Y: 10}, Move{X: 11, Y: 11}, Move{X: 12, Y: 12})
	state := runningState(board, PlayerBlack)
	state.MoveCount = 10

	decision := pipeline.Decide(context.Background(), state, 1, nil)
	if !decision.UseSkill {
		t.Fatalf("expected a skill against a standing four, got %+v", decision)
	}
	if decision.Skill != SkillRemove {
		t.Fatalf("expected remove by priority, got %v", decision.Skill)
	}
}

func TestUsedSkillsAreNotReconsidered(t *testing.T) {
	pipeline := newTestPipeline(DefaultConfig(), nil, 1)
	board := NewBoard(15)
	placeStones(&board, CellWhite,
		Move{X: 3, Y: 3}, Move{X: 4, Y: 3}, Move{X: 5, Y: 3}, Move{X: 6, Y: 3})
	state := runningState(board, PlayerBlack)
	state.MoveCount = 10
	state.SkillUsage.MarkUsed(PlayerBlack, SkillRemove)

	// History too short for rewind, so only scatter remains.
	decision := pipeline.Decide(context.Background(), state, 1, nil)
	if !decision.UseSkill || decision.Skill != SkillScatter {
		t.Fatalf("expected scatter fallback, got %+v", decision)
	}
}

func TestAdvisorMoveSuggestionIsUsed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/move" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"x":3,"y":3,"reasoning":"center pressure"}`))
	}))
	defer server.Close()

	config := DefaultConfig()
	config.AdvisorEnabled = true
	config.AdvisorURL = server.URL
	config.AdvisorRetries = 1
	pipeline := newTestPipeline(config, NewAdvisorClient(config), 1)

	board := NewBoard(15)
	placeStones(&board, CellBlack, Move{X: 7, Y: 7}, Move{X: 8, Y: 8})
	placeStones(&board, CellWhite, Move{X: 6, Y: 7})
	state := runningState(board, PlayerBlack)

	decision := pipeline.Decide(context.Background(), state, 1, nil)
	if !decision.HasMove || (decision.Move != Move{X: 3, Y: 3}) {
		t.Fatalf("expected advisor move (3,3), got %+v", decision)
	}
}

func TestInvalidAdvisorMoveFallsBackLocally(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// (7,7) is occupied: the suggestion must be rejected.
		_, _ = w.Write([]byte(`{"x":7,"y":7}`))
	}))
	defer server.Close()

	config := DefaultConfig()
	config.AdvisorEnabled = true
	config.AdvisorURL = server.URL
	config.AdvisorRetries = 1
	pipeline := newTestPipeline(config, NewAdvisorClient(config), 1)

	board := NewBoard(15)
	placeStones(&board, CellBlack, Move{X: 7, Y: 7}, Move{X: 8, Y: 8})
	placeStones(&board, CellWhite, Move{X: 6, Y: 7})
	state := runningState(board, PlayerBlack)

	decision := pipeline.Decide(context.Background(), state, 1, nil)
	if !decision.HasMove {
		t.Fatalf("expected a local fallback move")
	}
	if (decision.Move == Move{X: 7, Y: 7}) {
		t.Fatalf("occupied advisor suggestion was applied")
	}
}

func TestAdvisorOutageFallsBackLocally(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	config := DefaultConfig()
	config.AdvisorEnabled = true
	config.AdvisorURL = server.URL
	config.AdvisorRetries = 2
	config.AdvisorBackoffMs = 1
	pipeline := newTestPipeline(config, NewAdvisorClient(config), 1)

	board := NewBoard(15)
	placeStones(&board, CellBlack, Move{X: 7, Y: 7}, Move{X: 8, Y: 8})
	placeStones(&board, CellWhite, Move{X: 6, Y: 7})
	state := runningState(board, PlayerBlack)

	decision := pipeline.Decide(context.Background(), state, 1, nil)
	if !decision.HasMove {
		t.Fatalf("advisor outage must not prevent a move")
	}
}

func TestCrampedBoardFallsThroughToBlock(t *testing.T) {
	pipeline := newTestPipeline(DefaultConfig(), nil, 1)
	board := NewBoard(15)
	fillNoFivePattern(&board)
	// Carve one empty cell and give white an open-ended four next to it:
	// scatter has no room, remove is spent, rewind has no history. The only
	// sane outcome is the blocking move, not an endlessly re-chosen skill.
	for x := 10; x <= 13; x++ {
		board.RemoveAt(x, 0)
	}
	for x := 10; x <= 12; x++ {
		board.Set(x, 0, CellWhite)
	}
	state := runningState(board, PlayerBlack)
	state.MoveCount = 50
	state.SkillUsage.MarkUsed(PlayerBlack, SkillRemove)

	for pass := 0; pass < 5; pass++ {
		decision := pipeline.Decide(context.Background(), state, 1, nil)
		if decision.UseSkill {
			t.Fatalf("pass %d: infeasible skill %v chosen on a cramped board", pass, decision.Skill)
		}
		if !decision.HasMove || (decision.Move != Move{X: 13, Y: 0}) {
			t.Fatalf("pass %d: expected block (13,0), got %+v", pass, decision)
		}
	}
}

func TestScatterOfferedOnlyWithRoom(t *testing.T) {
	pipeline := newTestPipeline(DefaultConfig(), nil, 1)
	board := NewBoard(15)
	placeStones(&board, CellWhite,
		Move{X: 3, Y: 3}, Move{X: 4, Y: 3}, Move{X: 5, Y: 3}, Move{X: 6, Y: 3})
	state := runningState(board, PlayerBlack)
	state.MoveCount = 10
	state.SkillUsage.MarkUsed(PlayerBlack, SkillRemove)

	// Plenty of empty cells: scatter stays in the urgency pick.
	decision := pipeline.Decide(context.Background(), state, 1, nil)
	if !decision.UseSkill || decision.Skill != SkillScatter {
		t.Fatalf("expected scatter with room available, got %+v", decision)
	}
}

func TestEstimateSkillValueOrdering(t *testing.T) {
	opp := RunStats{FourThreats: 1, OpenThrees: 1}
	own := RunStats{}
	remove := estimateSkillValue(SkillRemove, own, opp, 0.5)
	scatter := estimateSkillValue(SkillScatter, own, opp, 0.5)
	if remove <= scatter {
		t.Fatalf("removal must outvalue scatter under pure pressure: %f vs %f", remove, scatter)
	}
	// Own momentum discounts rewind below zero usefulness.
	own = RunStats{FourThreats: 2}
	if rewind := estimateSkillValue(SkillRewind, own, opp, 0.5); rewind > 0 {
		t.Fatalf("rewind should not pay off when ahead, got %f", rewind)
	}
}
