package main

import "testing"

func TestDoubleThreeAtCrossPoint(t *testing.T) {
	board := NewBoard(15)
	// Placing at (7,7) forms two open threes: one horizontal, one vertical.
	placeStones(&board, CellBlack,
		Move{X: 5, Y: 7}, Move{X: 6, Y: 7},
		Move{X: 7, Y: 5}, Move{X: 7, Y: 6})
	if got := CompoundAt(board, 7, 7, CellBlack); got != CompoundDoubleThree {
		t.Fatalf("expected double-three, got %v", got)
	}
}

func TestFourThreeBeatsDoubleThree(t *testing.T) {
	board := NewBoard(15)
	// Horizontal open four plus vertical open three through (7,7).
	placeStones(&board, CellBlack,
		Move{X: 4, Y: 7}, Move{X: 5, Y: 7}, Move{X: 6, Y: 7},
		Move{X: 7, Y: 5}, Move{X: 7, Y: 6})
	if got := CompoundAt(board, 7, 7, CellBlack); got != CompoundFourThree {
		t.Fatalf("expected four-three, got %v", got)
	}
}

func TestNoCompoundOnSingleLine(t *testing.T) {
	board := NewBoard(15)
	placeStones(&board, CellBlack, Move{X: 5, Y: 7}, Move{X: 6, Y: 7})
	if got := CompoundAt(board, 7, 7, CellBlack); got != CompoundNone {
		t.Fatalf("expected no compound, got %v", got)
	}
}

func TestCollectRunStatsCountsEachRunOnce(t *testing.T) {
	board := NewBoard(15)
	// One open three and one open two for white, well apart.
	placeStones(&board, CellWhite,
		Move{X: 4, Y: 4}, Move{X: 5, Y: 4}, Move{X: 6, Y: 4},
		Move{X: 10, Y: 10}, Move{X: 10, Y: 11})
	stats := CollectRunStats(board, CellWhite)
	if stats.OpenThrees != 1 {
		t.Fatalf("expected 1 open three, got %d", stats.OpenThrees)
	}
	if stats.OpenTwos != 1 {
		t.Fatalf("expected 1 open two, got %d", stats.OpenTwos)
	}
	if stats.FourThreats != 0 {
		t.Fatalf("expected no four threats, got %d", stats.FourThreats)
	}
}

func TestCollectRunStatsFourThreat(t *testing.T) {
	board := NewBoard(15)
	placeStones(&board, CellBlack,
		Move{X: 0, Y: 3}, Move{X: 1, Y: 3}, Move{X: 2, Y: 3}, Move{X: 3, Y: 3})
	stats := CollectRunStats(board, CellBlack)
	if stats.FourThreats != 1 {
		t.Fatalf("expected 1 four threat, got %d", stats.FourThreats)
	}
	// Closing the remaining end kills the threat.
	board.Set(4, 3, CellWhite)
	stats = CollectRunStats(board, CellBlack)
	if stats.FourThreats != 0 {
		t.Fatalf("expected no four threat after block, got %d", stats.FourThreats)
	}
}
