package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
)

type StatusResponse struct {
	Settings        GameSettingsDTO   `json:"settings"`
	Config          Config            `json:"config"`
	Board           [][]int           `json:"board"`
	NextPlayer      int               `json:"next_player"`
	Winner          int               `json:"winner"`
	BoardSize       int               `json:"board_size"`
	Status          string            `json:"status"`
	MoveCount       int               `json:"move_count"`
	History         []historyEntryDTO `json:"history"`
	WinningLine     []Move            `json:"winning_line"`
	Skills          skillStateDTO     `json:"skills"`
	AiThinking      bool              `json:"ai_thinking"`
	TurnStartedAtMs int64             `json:"turn_started_at_ms"`
}

type GameSettingsDTO struct {
	Mode        string `json:"mode"`
	HumanPlayer int    `json:"human_player"`
	Difficulty  string `json:"difficulty"`
}

type skillStateDTO struct {
	Black SkillFlags `json:"black"`
	White SkillFlags `json:"white"`
}

type apiMove struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Player int `json:"player"`
}

type apiSkill struct {
	Skill  string `json:"skill"`
	Player int    `json:"player"`
}

type apiRewind struct {
	Steps int `json:"steps"`
}

type historyEntryDTO struct {
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Player    int     `json:"player"`
	ElapsedMs float64 `json:"elapsed_ms"`
	IsAi      bool    `json:"is_ai"`
	IsSkill   bool    `json:"is_skill"`
	Skill     string  `json:"skill,omitempty"`
}

type historyPayload struct {
	History []historyEntryDTO `json:"history"`
}

type skillPayload struct {
	Player int    `json:"player"`
	Skill  string `json:"skill"`
}

type resetPayload struct {
	History         []historyEntryDTO `json:"history"`
	Board           [][]int           `json:"board"`
	NextPlayer      int               `json:"next_player"`
	Winner          int               `json:"winner"`
	Status          string            `json:"status"`
	BoardSize       int               `json:"board_size"`
	Skills          skillStateDTO     `json:"skills"`
	TurnStartedAtMs int64             `json:"turn_started_at_ms"`
}

type settingsPayload struct {
	Settings GameSettingsDTO `json:"settings"`
	Config   Config          `json:"config"`
}

func main() {
	controller := NewGameController(DefaultGameSettings())
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go hub.Run(ctx.Done())
	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if controller.Tick() {
					if entry, ok := controller.LatestHistoryEntry(); ok {
						hub.broadcastHistory <- historyPayload{History: []historyEntryDTO{historyEntryToDTO(entry)}}
					}
					hub.broadcastStatus <- controllerStatus(controller)
				}
			}
		}
	}()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/start", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings GameSettingsDTO `json:"settings"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		settings := settingsFromDTO(payload.Settings, DefaultGameSettings())
		controller.Reset(settings)
		controller.StartGame()
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.broadcastReset <- resetFromController(controller)
	})

	r.Post("/api/stop", func(w http.ResponseWriter, r *http.Request) {
		settings := controller.Settings()
		controller.Reset(settings)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.broadcastReset <- resetFromController(controller)
	})

	r.Post("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings *GameSettingsDTO `json:"settings"`
			Config   *Config          `json:"config"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		if payload.Config != nil {
			configStore.Update(*payload.Config)
		}
		if payload.Settings != nil {
			settings := settingsFromDTO(*payload.Settings, controller.Settings())
			controller.UpdateSettings(settings)
		} else if payload.Config != nil {
			controller.ResetForConfigChange()
		}
		hub.broadcastSettings <- settingsPayload{
			Settings: controllerSettingsDTO(controller.Settings()),
			Config:   GetConfig(),
		}
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/move", func(w http.ResponseWriter, r *http.Request) {
		var payload apiMove
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		move := Move{X: payload.X, Y: payload.Y}
		if err := controller.ApplyMove(move, intToPlayer(payload.Player)); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": reasonFromError(err)})
			return
		}
		if entry, ok := controller.LatestHistoryEntry(); ok {
			hub.broadcastHistory <- historyPayload{History: []historyEntryDTO{historyEntryToDTO(entry)}}
		}
		hub.broadcastStatus <- controllerStatus(controller)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/skill", func(w http.ResponseWriter, r *http.Request) {
		var payload apiSkill
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		skill, ok := SkillFromName(payload.Skill)
		if !ok {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": reasonFromError(ErrUnknownSkill)})
			return
		}
		if err := controller.UseSkill(skill, intToPlayer(payload.Player)); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": reasonFromError(err)})
			return
		}
		hub.broadcastSkill <- skillPayload{Player: payload.Player, Skill: skill.String()}
		hub.broadcastStatus <- controllerStatus(controller)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/rewind", func(w http.ResponseWriter, r *http.Request) {
		var payload apiRewind
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		steps := payload.Steps
		if steps <= 0 {
			steps = GetConfig().RewindSteps
		}
		snapshot, err := controller.Rewind(steps)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": reasonFromError(err)})
			return
		}
		hub.broadcastReset <- resetFromController(controller)
		writeJSON(w, http.StatusOK, map[string]any{
			"sequence": snapshot.Seq,
			"status":   controllerStatus(controller),
		})
	})

	r.Get("/ws/", func(w http.ResponseWriter, r *http.Request) {
		serveWS(hub, controller, w, r)
	})

	server := &http.Server{
		Addr:    ":8080",
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	log.Println("backend listening on :8080")
	select {
	case <-sigCtx.Done():
		log.Printf("[backend] shutdown signal received: %v", sigCtx.Err())
	case err, ok := <-serverErrCh:
		if ok {
			log.Printf("[backend] server error: %v", err)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("[backend] graceful shutdown failed: %v", err)
		if closeErr := server.Close(); closeErr != nil && !errors.Is(closeErr, http.ErrServerClosed) {
			log.Printf("[backend] forced close failed: %v", closeErr)
		}
	}
	cancel()
}

func serveWS(hub *Hub, controller *GameController, w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &Client{hub: hub, send: make(chan []byte, 16)}
	hub.Register(client)

	client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(controllerStatus(controller))})

	go func() {
		defer conn.Close()
		if err := writeWSWithHeartbeat(conn, client.send); err != nil {
			return
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			hub.Unregister(client)
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		switch msg.Type {
		case "request_status":
			client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(controllerStatus(controller))})
		case "move":
			// Queued for the current human; the tick loop applies it and
			// broadcasts the result.
			var payload apiMove
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				continue
			}
			controller.SubmitHumanMove(Move{X: payload.X, Y: payload.Y})
		}
	}
}

func controllerStatus(controller *GameController) StatusResponse {
	state := controller.State()
	return StatusResponse{
		Settings:        controllerSettingsDTO(controller.Settings()),
		Config:          GetConfig(),
		Board:           boardToSlice(state.Board),
		NextPlayer:      playerToInt(state.ToMove),
		Winner:          winnerFromStatus(state.Status),
		BoardSize:       state.Board.Size(),
		Status:          statusToString(state.Status),
		MoveCount:       state.MoveCount,
		History:         historyToDTO(controller.History()),
		WinningLine:     append([]Move(nil), state.WinningLine...),
		Skills:          skillsFromState(state),
		AiThinking:      controller.AiThinking(),
		TurnStartedAtMs: controller.TurnStartedAtMs(),
	}
}

func skillsFromState(state GameState) skillStateDTO {
	return skillStateDTO{
		Black: state.SkillUsage[PlayerBlack],
		White: state.SkillUsage[PlayerWhite],
	}
}

func reasonFromError(err error) string {
	switch {
	case errors.Is(err, ErrGameNotRunning):
		return "game_not_running"
	case errors.Is(err, ErrOutOfBounds):
		return "out_of_bounds"
	case errors.Is(err, ErrOccupiedCell):
		return "occupied_cell"
	case errors.Is(err, ErrNotPlayersTurn):
		return "not_players_turn"
	case errors.Is(err, ErrUnknownSkill):
		return "unknown_skill"
	case errors.Is(err, ErrSkillAlreadyUsed):
		return "skill_already_used"
	case errors.Is(err, ErrInsufficientPieces):
		return "insufficient_pieces"
	case errors.Is(err, ErrInsufficientSpace):
		return "insufficient_space"
	case errors.Is(err, ErrInsufficientHistory):
		return "insufficient_history"
	default:
		return err.Error()
	}
}

func settingsFromDTO(dto GameSettingsDTO, base GameSettings) GameSettings {
	settings := base
	switch dto.Mode {
	case "ai_vs_ai":
		settings.BlackType = PlayerAI
		settings.WhiteType = PlayerAI
	case "human_vs_human":
		settings.BlackType = PlayerHuman
		settings.WhiteType = PlayerHuman
	case "ai_vs_human":
		if dto.HumanPlayer == 2 {
			settings.BlackType = PlayerAI
			settings.WhiteType = PlayerHuman
		} else {
			settings.BlackType = PlayerHuman
			settings.WhiteType = PlayerAI
		}
	}
	switch dto.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		settings.Difficulty = dto.Difficulty
	}
	return settings
}

func controllerSettingsDTO(settings GameSettings) GameSettingsDTO {
	mode := "ai_vs_human"
	if settings.BlackType == PlayerAI && settings.WhiteType == PlayerAI {
		mode = "ai_vs_ai"
	} else if settings.BlackType == PlayerHuman && settings.WhiteType == PlayerHuman {
		mode = "human_vs_human"
	}
	humanPlayer := 0
	if settings.BlackType == PlayerHuman {
		humanPlayer = 1
	} else if settings.WhiteType == PlayerHuman {
		humanPlayer = 2
	}
	return GameSettingsDTO{Mode: mode, HumanPlayer: humanPlayer, Difficulty: settings.Difficulty}
}

func boardToSlice(board Board) [][]int {
	size := board.Size()
	rows := make([][]int, size)
	for y := 0; y < size; y++ {
		rows[y] = make([]int, size)
		for x := 0; x < size; x++ {
			rows[y][x] = cellToInt(board.At(x, y))
		}
	}
	return rows
}

func cellToInt(cell Cell) int {
	switch cell {
	case CellBlack:
		return 1
	case CellWhite:
		return 2
	default:
		return 0
	}
}

func intToCell(value int) Cell {
	switch value {
	case 1:
		return CellBlack
	case 2:
		return CellWhite
	default:
		return CellEmpty
	}
}

func playerToInt(player PlayerColor) int {
	if player == PlayerBlack {
		return 1
	}
	return 2
}

func intToPlayer(value int) PlayerColor {
	if value == 2 {
		return PlayerWhite
	}
	return PlayerBlack
}

func winnerFromStatus(status GameStatus) int {
	switch status {
	case StatusBlackWon:
		return 1
	case StatusWhiteWon:
		return 2
	default:
		return 0
	}
}

func statusToString(status GameStatus) string {
	switch status {
	case StatusNotStarted:
		return "not_started"
	case StatusBlackWon:
		return "black_won"
	case StatusWhiteWon:
		return "white_won"
	case StatusDraw:
		return "draw"
	default:
		return "running"
	}
}

func historyToDTO(history []HistoryEntry) []historyEntryDTO {
	result := make([]historyEntryDTO, 0, len(history))
	for _, entry := range history {
		result = append(result, historyEntryToDTO(entry))
	}
	return result
}

func historyEntryToDTO(entry HistoryEntry) historyEntryDTO {
	dto := historyEntryDTO{
		X:         entry.Move.X,
		Y:         entry.Move.Y,
		Player:    playerToInt(entry.Player),
		ElapsedMs: entry.ElapsedMs,
		IsAi:      entry.IsAi,
		IsSkill:   entry.IsSkill,
	}
	if entry.IsSkill {
		dto.Skill = entry.Skill.String()
	}
	return dto
}

func resetFromController(controller *GameController) resetPayload {
	state := controller.State()
	return resetPayload{
		History:         historyToDTO(controller.History()),
		Board:           boardToSlice(state.Board),
		NextPlayer:      playerToInt(state.ToMove),
		Winner:          winnerFromStatus(state.Status),
		Status:          statusToString(state.Status),
		BoardSize:       state.Board.Size(),
		Skills:          skillsFromState(state),
		TurnStartedAtMs: controller.TurnStartedAtMs(),
	}
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
