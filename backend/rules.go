package main

import "fmt"

var lineDirections = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

type Rules struct {
	settings GameSettings
}

func NewRules(settings GameSettings) Rules {
	return Rules{settings: settings}
}

func (r Rules) IsLegal(state GameState, move Move, player PlayerColor) (bool, string) {
	if !move.IsValid(r.settings.BoardSize) {
		return false, "out of bounds"
	}
	if player != state.ToMove {
		return false, "not player's turn"
	}
	if !state.Board.IsEmpty(move.X, move.Y) {
		return false, "occupied"
	}
	return true, ""
}

// IsWin reports whether the stone at lastMove completes a run of at least
// WinLength in any of the 4 axis directions.
func (r Rules) IsWin(board Board, lastMove Move) bool {
	if !lastMove.IsValid(r.settings.BoardSize) {
		return false
	}
	if board.At(lastMove.X, lastMove.Y) == CellEmpty {
		return false
	}
	for i := 0; i < 4; i++ {
		dx := lineDirections[i][0]
		dy := lineDirections[i][1]
		count := 1
		count += r.countDirection(board, lastMove, dx, dy)
		count += r.countDirection(board, lastMove, -dx, -dy)
		if count >= r.settings.WinLength {
			return true
		}
	}
	return false
}

// WinningPlayer returns the owner of a completed run through lastMove, if any.
// Multiple winning directions still yield the single placing player.
func (r Rules) WinningPlayer(board Board, lastMove Move) (PlayerColor, bool) {
	if !r.IsWin(board, lastMove) {
		return PlayerBlack, false
	}
	player, err := PlayerFromCell(board.At(lastMove.X, lastMove.Y))
	if err != nil {
		return PlayerBlack, false
	}
	return player, true
}

func (r Rules) IsDraw(board Board) bool {
	return board.IsFull()
}

// FindWinningLine returns the ordered cells of the winning run through
// lastMove. Runs longer than WinLength are returned whole.
func (r Rules) FindWinningLine(board Board, lastMove Move) ([]Move, bool) {
	if !lastMove.IsValid(r.settings.BoardSize) {
		return []Move{}, false
	}
	if board.At(lastMove.X, lastMove.Y) == CellEmpty {
		return []Move{}, false
	}
	for i := 0; i < 4; i++ {
		dx := lineDirections[i][0]
		dy := lineDirections[i][1]
		line := r.collectLine(board, lastMove, dx, dy)
		if len(line) >= r.settings.WinLength {
			return line, true
		}
	}
	return []Move{}, false
}

func (r Rules) WinLength() int {
	return r.settings.WinLength
}

func (r Rules) BoardSize() int {
	return r.settings.BoardSize
}

func (r Rules) countDirection(board Board, start Move, dx, dy int) int {
	target := board.At(start.X, start.Y)
	x := start.X + dx
	y := start.Y + dy
	count := 0
	for board.InBounds(x, y) && board.At(x, y) == target {
		count++
		x += dx
		y += dy
	}
	return count
}

func (r Rules) collectLine(board Board, start Move, dx, dy int) []Move {
	line := []Move{}
	target := board.At(start.X, start.Y)
	x := start.X
	y := start.Y
	for board.InBounds(x-dx, y-dy) && board.At(x-dx, y-dy) == target {
		x -= dx
		y -= dy
	}
	for board.InBounds(x, y) && board.At(x, y) == target {
		line = append(line, Move{X: x, Y: y})
		x += dx
		y += dy
	}
	return line
}

// withStone places a hypothetical stone, runs fn, and always reverts the
// placement, including on panic. Callers never observe a half-evaluated board.
func withStone(board *Board, move Move, cell Cell, fn func()) {
	board.Set(move.X, move.Y, cell)
	defer board.RemoveAt(move.X, move.Y)
	fn()
}

// FindFiveCompletion scans empty cells in deterministic (x, y) order and
// returns the first one that completes a five for cell.
func (r Rules) FindFiveCompletion(board Board, cell Cell) (Move, bool) {
	size := board.Size()
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			if board.At(x, y) != CellEmpty {
				continue
			}
			move := Move{X: x, Y: y}
			wins := false
			withStone(&board, move, cell, func() {
				wins = r.IsWin(board, move)
			})
			if wins {
				return move, true
			}
		}
	}
	return Move{}, false
}

func (r Rules) String() string {
	return fmt.Sprintf("Rules{size=%d, win=%d}", r.settings.BoardSize, r.settings.WinLength)
}
