package main

import "fmt"

type Cell int

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
)

// Board is a pure state container: it knows nothing about turn order, win
// conditions, or skills.
type Board struct {
	size  int
	cells []Cell
}

func NewBoard(boardSize int) Board {
	b := Board{}
	b.Reset(boardSize)
	return b
}

func (b *Board) Reset(boardSize int) {
	b.size = boardSize
	b.cells = make([]Cell, boardSize*boardSize)
}

func (b Board) At(x, y int) Cell {
	return b.cells[b.index(x, y)]
}

func (b *Board) Set(x, y int, value Cell) {
	b.cells[b.index(x, y)] = value
}

// Place sets a stone only if the target cell is in bounds and empty. On
// failure the board is left unchanged.
func (b *Board) Place(x, y int, value Cell) error {
	if !b.InBounds(x, y) {
		return ErrOutOfBounds
	}
	if b.At(x, y) != CellEmpty {
		return ErrOccupiedCell
	}
	b.Set(x, y, value)
	return nil
}

// RemoveAt clears a cell and returns the previous occupant. Clearing an empty
// cell is a no-op that returns CellEmpty.
func (b *Board) RemoveAt(x, y int) Cell {
	previous := b.At(x, y)
	b.cells[b.index(x, y)] = CellEmpty
	return previous
}

func (b Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.size && y < b.size
}

func (b Board) IsEmpty(x, y int) bool {
	return b.InBounds(x, y) && b.At(x, y) == CellEmpty
}

func (b Board) CountEmpty() int {
	count := 0
	for _, cell := range b.cells {
		if cell == CellEmpty {
			count++
		}
	}
	return count
}

func (b Board) CountStones() int {
	return len(b.cells) - b.CountEmpty()
}

func (b Board) IsFull() bool {
	return b.CountEmpty() == 0
}

func (b Board) EmptyCells() []Move {
	cells := make([]Move, 0, b.CountEmpty())
	for x := 0; x < b.size; x++ {
		for y := 0; y < b.size; y++ {
			if b.At(x, y) == CellEmpty {
				cells = append(cells, Move{X: x, Y: y})
			}
		}
	}
	return cells
}

// Stones returns occupied cells. A CellEmpty filter means every stone on the
// board regardless of owner.
func (b Board) Stones(filter Cell) []Move {
	stones := []Move{}
	for x := 0; x < b.size; x++ {
		for y := 0; y < b.size; y++ {
			cell := b.At(x, y)
			if cell == CellEmpty {
				continue
			}
			if filter != CellEmpty && cell != filter {
				continue
			}
			stones = append(stones, Move{X: x, Y: y})
		}
	}
	return stones
}

func (b Board) Size() int {
	return b.size
}

// Clone produces a fully independent copy. Snapshot correctness depends on
// this: no substructure may be shared with the live board.
func (b Board) Clone() Board {
	clone := Board{size: b.size}
	clone.cells = make([]Cell, len(b.cells))
	copy(clone.cells, b.cells)
	return clone
}

func (b Board) Equals(other Board) bool {
	if b.size != other.size || len(b.cells) != len(other.cells) {
		return false
	}
	for i, cell := range b.cells {
		if other.cells[i] != cell {
			return false
		}
	}
	return true
}

func (b Board) index(x, y int) int {
	return y*b.size + x
}

func (c Cell) String() string {
	switch c {
	case CellBlack:
		return "Black"
	case CellWhite:
		return "White"
	default:
		return "Empty"
	}
}

func CellFromPlayer(player PlayerColor) Cell {
	if player == PlayerBlack {
		return CellBlack
	}
	return CellWhite
}

func PlayerFromCell(cell Cell) (PlayerColor, error) {
	switch cell {
	case CellBlack:
		return PlayerBlack, nil
	case CellWhite:
		return PlayerWhite, nil
	default:
		return PlayerBlack, fmt.Errorf("empty cell has no player")
	}
}
