package main

import "testing"

func placeStones(board *Board, cell Cell, moves ...Move) {
	for _, move := range moves {
		board.Set(move.X, move.Y, cell)
	}
}

func TestVerticalRunOfFiveWins(t *testing.T) {
	rules := NewRules(DefaultGameSettings())
	board := NewBoard(15)
	placeStones(&board, CellBlack,
		Move{X: 7, Y: 0}, Move{X: 7, Y: 1}, Move{X: 7, Y: 2}, Move{X: 7, Y: 3}, Move{X: 7, Y: 4})

	if !rules.IsWin(board, Move{X: 7, Y: 4}) {
		t.Fatalf("expected win for run (7,0)..(7,4)")
	}
	winner, ok := rules.WinningPlayer(board, Move{X: 7, Y: 2})
	if !ok || winner != PlayerBlack {
		t.Fatalf("expected black winner, got %v ok=%v", winner, ok)
	}
	line, found := rules.FindWinningLine(board, Move{X: 7, Y: 2})
	if !found || len(line) != 5 {
		t.Fatalf("expected winning line of 5, got %d found=%v", len(line), found)
	}
}

func TestFourInARowIsNotAWin(t *testing.T) {
	rules := NewRules(DefaultGameSettings())
	board := NewBoard(15)
	placeStones(&board, CellBlack,
		Move{X: 3, Y: 3}, Move{X: 4, Y: 3}, Move{X: 5, Y: 3}, Move{X: 6, Y: 3})
	if rules.IsWin(board, Move{X: 6, Y: 3}) {
		t.Fatalf("four in a row must not win")
	}
}

func TestRunLongerThanFiveWins(t *testing.T) {
	rules := NewRules(DefaultGameSettings())
	board := NewBoard(15)
	placeStones(&board, CellWhite,
		Move{X: 2, Y: 2}, Move{X: 3, Y: 3}, Move{X: 4, Y: 4},
		Move{X: 5, Y: 5}, Move{X: 6, Y: 6}, Move{X: 7, Y: 7})
	if !rules.IsWin(board, Move{X: 4, Y: 4}) {
		t.Fatalf("six in a row must win")
	}
	line, found := rules.FindWinningLine(board, Move{X: 4, Y: 4})
	if !found || len(line) != 6 {
		t.Fatalf("expected whole run of 6, got %d", len(line))
	}
}

func TestFindFiveCompletionPrefersScanOrder(t *testing.T) {
	rules := NewRules(DefaultGameSettings())
	board := NewBoard(15)
	// Run open at both ends: (3,7)..(6,7); completions at (2,7) and (7,7).
	placeStones(&board, CellBlack,
		Move{X: 3, Y: 7}, Move{X: 4, Y: 7}, Move{X: 5, Y: 7}, Move{X: 6, Y: 7})
	move, ok := rules.FindFiveCompletion(board, CellBlack)
	if !ok {
		t.Fatalf("expected a completion")
	}
	if (move != Move{X: 2, Y: 7}) {
		t.Fatalf("expected (2,7) by scan order, got (%d,%d)", move.X, move.Y)
	}
}

func TestFindFiveCompletionLeavesBoardUnchanged(t *testing.T) {
	rules := NewRules(DefaultGameSettings())
	board := NewBoard(15)
	placeStones(&board, CellWhite,
		Move{X: 0, Y: 0}, Move{X: 1, Y: 1}, Move{X: 2, Y: 2}, Move{X: 3, Y: 3})
	before := board.Clone()
	if _, ok := rules.FindFiveCompletion(board, CellWhite); !ok {
		t.Fatalf("expected completion at (4,4)")
	}
	if !board.Equals(before) {
		t.Fatalf("hypothetical placements leaked onto the board")
	}
}

// fillNoFivePattern covers the whole board with runs of at most 3 in every
// direction: rows alternate 3-wide color blocks, shifted per row.
func fillNoFivePattern(board *Board) {
	size := board.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if ((x/3)+y)%2 == 0 {
				board.Set(x, y, CellBlack)
			} else {
				board.Set(x, y, CellWhite)
			}
		}
	}
}

func TestFullBoardWithoutFiveIsDraw(t *testing.T) {
	rules := NewRules(DefaultGameSettings())
	board := NewBoard(15)
	fillNoFivePattern(&board)
	if !board.IsFull() {
		t.Fatalf("pattern must fill the board")
	}
	for x := 0; x < 15; x++ {
		for y := 0; y < 15; y++ {
			if rules.IsWin(board, Move{X: x, Y: y}) {
				t.Fatalf("unexpected win through (%d,%d)", x, y)
			}
		}
	}
	if !rules.IsDraw(board) {
		t.Fatalf("full board without a five must be a draw")
	}
}

func TestIsLegal(t *testing.T) {
	settings := DefaultGameSettings()
	rules := NewRules(settings)
	state := DefaultGameState(settings)
	state.Status = StatusRunning

	if ok, _ := rules.IsLegal(state, Move{X: 7, Y: 7}, PlayerBlack); !ok {
		t.Fatalf("center move for the player to move must be legal")
	}
	if ok, reason := rules.IsLegal(state, Move{X: 7, Y: 7}, PlayerWhite); ok || reason == "" {
		t.Fatalf("out-of-turn move must be illegal")
	}
	if ok, _ := rules.IsLegal(state, Move{X: 20, Y: 0}, PlayerBlack); ok {
		t.Fatalf("out-of-bounds move must be illegal")
	}
	state.Board.Set(7, 7, CellWhite)
	if ok, _ := rules.IsLegal(state, Move{X: 7, Y: 7}, PlayerBlack); ok {
		t.Fatalf("occupied cell must be illegal")
	}
}
