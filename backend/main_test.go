package main

import "testing"

func TestReasonFromError(t *testing.T) {
	cases := map[error]string{
		ErrGameNotRunning:      "game_not_running",
		ErrOutOfBounds:         "out_of_bounds",
		ErrOccupiedCell:        "occupied_cell",
		ErrNotPlayersTurn:      "not_players_turn",
		ErrUnknownSkill:        "unknown_skill",
		ErrSkillAlreadyUsed:    "skill_already_used",
		ErrInsufficientPieces:  "insufficient_pieces",
		ErrInsufficientSpace:   "insufficient_space",
		ErrInsufficientHistory: "insufficient_history",
	}
	for err, want := range cases {
		if got := reasonFromError(err); got != want {
			t.Errorf("reasonFromError(%v) = %q, want %q", err, got, want)
		}
	}
}

func TestSettingsDTORoundTrip(t *testing.T) {
	base := DefaultGameSettings()
	settings := settingsFromDTO(GameSettingsDTO{Mode: "ai_vs_ai", Difficulty: "hard"}, base)
	if settings.BlackType != PlayerAI || settings.WhiteType != PlayerAI {
		t.Fatalf("ai_vs_ai not applied: %+v", settings)
	}
	if settings.Difficulty != DifficultyHard {
		t.Fatalf("difficulty not applied: %s", settings.Difficulty)
	}
	dto := controllerSettingsDTO(settings)
	if dto.Mode != "ai_vs_ai" || dto.Difficulty != DifficultyHard {
		t.Fatalf("round trip lost data: %+v", dto)
	}

	settings = settingsFromDTO(GameSettingsDTO{Mode: "ai_vs_human", HumanPlayer: 2}, base)
	if settings.BlackType != PlayerAI || settings.WhiteType != PlayerHuman {
		t.Fatalf("human as white not applied: %+v", settings)
	}
	if got := controllerSettingsDTO(settings).HumanPlayer; got != 2 {
		t.Fatalf("expected human player 2, got %d", got)
	}

	settings = settingsFromDTO(GameSettingsDTO{Mode: "ai_vs_ai", Difficulty: "impossible"}, base)
	if settings.Difficulty != base.Difficulty {
		t.Fatalf("unknown difficulty must keep the base value, got %s", settings.Difficulty)
	}
}

func TestHistoryEntryDTOForSkill(t *testing.T) {
	dto := historyEntryToDTO(HistoryEntry{
		Move:    Move{X: -1, Y: -1},
		Player:  PlayerWhite,
		IsAi:    true,
		IsSkill: true,
		Skill:   SkillScatter,
	})
	if !dto.IsSkill || dto.Skill != "scatter" {
		t.Fatalf("skill entry not mapped: %+v", dto)
	}
	if dto.Player != 2 {
		t.Fatalf("expected player 2, got %d", dto.Player)
	}
}

func TestBoardToSliceOrientation(t *testing.T) {
	board := NewBoard(15)
	board.Set(3, 9, CellBlack)
	board.Set(10, 1, CellWhite)
	rows := boardToSlice(board)
	if rows[9][3] != 1 {
		t.Fatalf("black stone misplaced: rows[9][3] = %d", rows[9][3])
	}
	if rows[1][10] != 2 {
		t.Fatalf("white stone misplaced: rows[1][10] = %d", rows[1][10])
	}
}

func TestStatusStringMapping(t *testing.T) {
	cases := map[GameStatus]string{
		StatusNotStarted: "not_started",
		StatusRunning:    "running",
		StatusBlackWon:   "black_won",
		StatusWhiteWon:   "white_won",
		StatusDraw:       "draw",
	}
	for status, want := range cases {
		if got := statusToString(status); got != want {
			t.Errorf("statusToString(%v) = %q, want %q", status, got, want)
		}
	}
	if winnerFromStatus(StatusBlackWon) != 1 || winnerFromStatus(StatusDraw) != 0 {
		t.Fatalf("winner mapping broken")
	}
}
