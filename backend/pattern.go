package main

// ThreatLevel orders line categories from harmless to winning. The ordinal
// order matters: evaluators compare levels directly.
type ThreatLevel int

const (
	ThreatNone ThreatLevel = iota
	ThreatClosedTwo
	ThreatOpenTwo
	ThreatClosedThree
	ThreatOpenThree
	ThreatClosedFour
	ThreatOpenFour
	ThreatFive
)

func (t ThreatLevel) String() string {
	switch t {
	case ThreatClosedTwo:
		return "closed-two"
	case ThreatOpenTwo:
		return "open-two"
	case ThreatClosedThree:
		return "closed-three"
	case ThreatOpenThree:
		return "open-three"
	case ThreatClosedFour:
		return "closed-four"
	case ThreatOpenFour:
		return "open-four"
	case ThreatFive:
		return "five"
	default:
		return "none"
	}
}

// LineAnalysis describes the run a hypothetical placement would form along one
// direction: its length including the candidate cell, and whether each end
// terminates on an empty in-bounds cell (open) or an opponent stone / the
// board edge (closed).
type LineAnalysis struct {
	Count     int
	LeftOpen  bool
	RightOpen bool
	CanWin    bool
}

func (la LineAnalysis) OpenEnds() int {
	ends := 0
	if la.LeftOpen {
		ends++
	}
	if la.RightOpen {
		ends++
	}
	return ends
}

// Threat maps the analysis onto the category ladder. A run of length >= 5 is
// ThreatFive regardless of its ends: the length alone satisfies victory.
func (la LineAnalysis) Threat() ThreatLevel {
	if la.CanWin {
		return ThreatFive
	}
	open := la.OpenEnds()
	if open == 0 {
		// No room to grow on either side: the run is dead.
		return ThreatNone
	}
	switch la.Count {
	case 4:
		if open == 2 {
			return ThreatOpenFour
		}
		return ThreatClosedFour
	case 3:
		if open == 2 {
			return ThreatOpenThree
		}
		return ThreatClosedThree
	case 2:
		if open == 2 {
			return ThreatOpenTwo
		}
		return ThreatClosedTwo
	default:
		return ThreatNone
	}
}

// AnalyzeDirection classifies the line a stone of cell placed at (x, y) would
// form along (dx, dy). The walk extends at most 4 steps each way; it never
// mutates the board.
func AnalyzeDirection(board Board, x, y, dx, dy int, cell Cell) LineAnalysis {
	analysis := LineAnalysis{Count: 1}
	forward, forwardOpen := walkLine(board, x, y, dx, dy, cell)
	backward, backwardOpen := walkLine(board, x, y, -dx, -dy, cell)
	analysis.Count += forward + backward
	analysis.RightOpen = forwardOpen
	analysis.LeftOpen = backwardOpen
	analysis.CanWin = analysis.Count >= 5
	return analysis
}

// AnalyzeAllDirections runs AnalyzeDirection for the 4 axis directions.
func AnalyzeAllDirections(board Board, x, y int, cell Cell) [4]LineAnalysis {
	var analyses [4]LineAnalysis
	for i := 0; i < 4; i++ {
		analyses[i] = AnalyzeDirection(board, x, y, lineDirections[i][0], lineDirections[i][1], cell)
	}
	return analyses
}

// walkLine counts contiguous same-player stones from (x, y) exclusive along
// (dx, dy), up to 4 steps, and reports whether the walk terminated on an
// empty in-bounds cell.
func walkLine(board Board, x, y, dx, dy int, cell Cell) (int, bool) {
	count := 0
	for step := 1; step <= 4; step++ {
		nx := x + step*dx
		ny := y + step*dy
		if !board.InBounds(nx, ny) {
			return count, false
		}
		at := board.At(nx, ny)
		if at == cell {
			count++
			continue
		}
		return count, at == CellEmpty
	}
	// Walked 4 same-player stones without terminating; peek one further for
	// the open/closed call.
	nx := x + 5*dx
	ny := y + 5*dy
	return count, board.InBounds(nx, ny) && board.At(nx, ny) == CellEmpty
}
