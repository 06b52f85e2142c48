package main

type PlayerColor int

type GameStatus int

const (
	PlayerBlack PlayerColor = iota
	PlayerWhite
)

const (
	StatusNotStarted GameStatus = iota
	StatusRunning
	StatusBlackWon
	StatusWhiteWon
	StatusDraw
)

type GameState struct {
	Board       Board
	ToMove      PlayerColor
	Status      GameStatus
	HasLastMove bool
	LastMove    Move
	MoveCount   int
	SkillUsage  SkillUsageRecord
	LastMessage string
	WinningLine []Move
}

func DefaultGameState(settings GameSettings) GameState {
	state := GameState{}
	state.Reset(settings)
	return state
}

func (s *GameState) Reset(settings GameSettings) {
	s.Board = NewBoard(settings.BoardSize)
	if settings.BlackStarts {
		s.ToMove = PlayerBlack
	} else {
		s.ToMove = PlayerWhite
	}
	s.Status = StatusNotStarted
	s.HasLastMove = false
	s.LastMove = Move{X: -1, Y: -1}
	s.MoveCount = 0
	s.SkillUsage = SkillUsageRecord{}
	s.LastMessage = ""
	s.WinningLine = nil
}

func (s GameState) Clone() GameState {
	clone := s
	clone.Board = s.Board.Clone()
	clone.WinningLine = append([]Move(nil), s.WinningLine...)
	return clone
}

func otherPlayer(player PlayerColor) PlayerColor {
	if player == PlayerBlack {
		return PlayerWhite
	}
	return PlayerBlack
}

func (p PlayerColor) String() string {
	if p == PlayerBlack {
		return "Black"
	}
	return "White"
}
