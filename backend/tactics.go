package main

// CompoundThreat classifies positions offering simultaneous near-winning runs
// that cannot all be blocked in one reply.
type CompoundThreat int

const (
	CompoundNone CompoundThreat = iota
	CompoundDoubleThree
	CompoundFourThree
)

func (c CompoundThreat) String() string {
	switch c {
	case CompoundDoubleThree:
		return "double-three"
	case CompoundFourThree:
		return "four-three"
	default:
		return "none"
	}
}

// DetectCompound combines per-direction analyses for one hypothetical
// placement. An open four together with an open three is a four-three; two or
// more open threes form a double-three.
func DetectCompound(analyses [4]LineAnalysis) CompoundThreat {
	openFours := 0
	openThrees := 0
	for _, analysis := range analyses {
		switch analysis.Threat() {
		case ThreatOpenFour:
			openFours++
		case ThreatOpenThree:
			openThrees++
		}
	}
	if openFours >= 1 && openThrees >= 1 {
		return CompoundFourThree
	}
	if openThrees >= 2 {
		return CompoundDoubleThree
	}
	return CompoundNone
}

// CompoundAt evaluates the compound threat a stone of cell would create at
// (x, y). The cell must be empty.
func CompoundAt(board Board, x, y int, cell Cell) CompoundThreat {
	if board.At(x, y) != CellEmpty {
		return CompoundNone
	}
	return DetectCompound(AnalyzeAllDirections(board, x, y, cell))
}

// RunStats summarizes the standing runs one side already has on the board.
// The decision pipeline reads these to judge urgency.
type RunStats struct {
	FourThreats int // runs of 4+ with at least one open end
	OpenThrees  int // runs of exactly 3 with both ends open
	OpenTwos    int
}

// CollectRunStats scans every maximal run of cell on the board. Each run is
// counted once, from its starting stone.
func CollectRunStats(board Board, cell Cell) RunStats {
	stats := RunStats{}
	size := board.Size()
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			if board.At(x, y) != cell {
				continue
			}
			for i := 0; i < 4; i++ {
				dx := lineDirections[i][0]
				dy := lineDirections[i][1]
				// Only measure from the first stone of a run.
				if board.InBounds(x-dx, y-dy) && board.At(x-dx, y-dy) == cell {
					continue
				}
				length := 1
				nx := x + dx
				ny := y + dy
				for board.InBounds(nx, ny) && board.At(nx, ny) == cell {
					length++
					nx += dx
					ny += dy
				}
				headOpen := board.IsEmpty(x-dx, y-dy)
				tailOpen := board.IsEmpty(nx, ny)
				switch {
				case length >= 4 && (headOpen || tailOpen):
					stats.FourThreats++
				case length == 3 && headOpen && tailOpen:
					stats.OpenThrees++
				case length == 2 && headOpen && tailOpen:
					stats.OpenTwos++
				}
			}
		}
	}
	return stats
}
