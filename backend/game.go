package main

import (
	"log"
	"math/rand"
	"time"
)

// Game wires the engine together: board-bearing state, win rules, the
// snapshot store, the skill engine, and the two players. All dependencies are
// held explicitly; nothing global beyond the config store.
type Game struct {
	settings    GameSettings
	rules       Rules
	state       GameState
	history     *HistoryStore
	moveLog     MoveHistory
	skills      *SkillEngine
	blackPlayer IPlayer
	whitePlayer IPlayer
	rng         *rand.Rand
	generation  uint64
	turnStart   time.Time
}

// GameEndResult reports the outcome of a finished position: a winner, a
// draw, or neither.
type GameEndResult struct {
	HasWinner bool
	Winner    PlayerColor
	Draw      bool
}

func NewGame(settings GameSettings) Game {
	g := Game{}
	g.Reset(settings)
	return g
}

func (g *Game) Reset(settings GameSettings) {
	g.stopThinkers()
	config := GetConfig()
	seed := config.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.settings = settings
	g.rules = NewRules(settings)
	g.state.Reset(settings)
	g.history = NewHistoryStore(config.HistoryLimit)
	g.history.Record(g.state)
	g.moveLog.Clear()
	g.skills = NewSkillEngine(SkillConfig{
		ScatterCount: config.ScatterCount,
		RemoveCount:  config.RemoveCount,
		RewindSteps:  config.RewindSteps,
	}, g.rng)
	g.createPlayers()
	g.generation++
	g.turnStart = time.Now()
}

func (g *Game) Start() {
	if g.state.Status == StatusNotStarted {
		g.state.Status = StatusRunning
		g.turnStart = time.Now()
	}
}

func (g *Game) State() GameState {
	return g.state.Clone()
}

func (g *Game) History() MoveHistory {
	return g.moveLog
}

func (g *Game) Snapshots() *HistoryStore {
	return g.history
}

func (g *Game) RewindSteps() int {
	return g.skills.RewindSteps()
}

func (g *Game) TurnStartedAtMs() int64 {
	if g.turnStart.IsZero() {
		return 0
	}
	return g.turnStart.UnixMilli()
}

// TryApplyMove validates and applies one placement for player. Every success
// records a snapshot; every failure leaves board, history, and turn
// untouched.
func (g *Game) TryApplyMove(move Move, player PlayerColor) error {
	if g.state.Status != StatusRunning {
		return ErrGameNotRunning
	}
	if player != g.state.ToMove {
		return ErrNotPlayersTurn
	}
	cell := CellFromPlayer(player)
	if err := g.state.Board.Place(move.X, move.Y, cell); err != nil {
		g.state.LastMessage = "illegal move: " + err.Error()
		return err
	}
	elapsedMs := float64(time.Since(g.turnStart).Milliseconds())
	currentPlayer := g.playerFor(player)
	g.state.LastMessage = ""
	g.state.LastMove = move
	g.state.HasLastMove = true
	g.state.MoveCount++
	g.state.WinningLine = nil

	g.moveLog.Push(HistoryEntry{
		Move:      move,
		Player:    player,
		ElapsedMs: elapsedMs,
		IsAi:      currentPlayer != nil && !currentPlayer.IsHuman(),
	})

	if winner, ok := g.rules.WinningPlayer(g.state.Board, move); ok {
		if line, found := g.rules.FindWinningLine(g.state.Board, move); found {
			g.state.WinningLine = line
		}
		if winner == PlayerBlack {
			g.state.Status = StatusBlackWon
		} else {
			g.state.Status = StatusWhiteWon
		}
		log.Printf("[game] %s wins by alignment at (%d,%d)", winner, move.X, move.Y)
	} else if g.rules.IsDraw(g.state.Board) {
		g.state.Status = StatusDraw
		log.Printf("[game] draw: board full")
	} else {
		g.state.ToMove = otherPlayer(g.state.ToMove)
	}

	g.history.Record(g.state)
	g.turnStart = time.Now()
	return nil
}

// UseSkill applies one special action for player. Skills do not consume the
// turn: the player still places a stone afterwards.
func (g *Game) UseSkill(skill SkillType, player PlayerColor) error {
	if g.state.Status != StatusRunning {
		return ErrGameNotRunning
	}
	if player != g.state.ToMove {
		return ErrNotPlayersTurn
	}
	if err := g.skills.Apply(&g.state, g.history, skill, player); err != nil {
		return err
	}
	if skill == SkillRewind {
		// The restored snapshot replaced the live state; anything computed
		// against the old state is stale now. Truncating the log by the same
		// step count relies on every snapshot after the initial one having
		// exactly one move-log entry: moves and the other skills record both,
		// and rewind records neither. Any new snapshot source must keep that
		// pairing or the advisor's recent-moves context desynchronizes.
		g.moveLog.Truncate(g.skills.RewindSteps())
		g.state.Status = StatusRunning
		g.generation++
		g.stopThinkers()
	} else {
		g.moveLog.Push(HistoryEntry{
			Move:    Move{X: -1, Y: -1},
			Player:  player,
			IsAi:    g.playerFor(player) != nil && !g.playerFor(player).IsHuman(),
			IsSkill: true,
			Skill:   skill,
		})
	}
	return nil
}

// RewindTurns is the controller-level rewind: it restores an earlier snapshot
// without touching skill-usage gating. Failure leaves everything byte-for-byte
// unchanged.
func (g *Game) RewindTurns(steps int) (Snapshot, error) {
	snapshot, err := g.history.Rewind(steps)
	if err != nil {
		return Snapshot{}, err
	}
	g.restoreSnapshot(snapshot)
	g.moveLog.Truncate(steps)
	g.generation++
	g.stopThinkers()
	return snapshot, nil
}

func (g *Game) restoreSnapshot(snapshot Snapshot) {
	g.state.Board = snapshot.Board.Clone()
	g.state.ToMove = snapshot.ToMove
	g.state.SkillUsage = snapshot.SkillUsage
	g.state.MoveCount = snapshot.MoveCount
	g.state.HasLastMove = false
	g.state.LastMove = Move{X: -1, Y: -1}
	g.state.WinningLine = nil
	// A rewind out of a finished position revives the game.
	g.state.Status = StatusRunning
	g.turnStart = time.Now()
}

// CheckGameEnd classifies the position reached by lastMove.
func (g *Game) CheckGameEnd(lastMove Move) GameEndResult {
	if winner, ok := g.rules.WinningPlayer(g.state.Board, lastMove); ok {
		return GameEndResult{HasWinner: true, Winner: winner}
	}
	if g.rules.IsDraw(g.state.Board) {
		return GameEndResult{Draw: true}
	}
	return GameEndResult{}
}

// Tick advances the game by at most one action. Humans are polled for a
// pending move; the AI side is started thinking or its finished decision is
// applied. Decisions carry the generation they were computed against and are
// dropped when a reset or rewind raced them.
func (g *Game) Tick() bool {
	if g.state.Status != StatusRunning {
		return false
	}
	player := g.currentPlayer()
	if player == nil {
		return false
	}
	if player.IsHuman() {
		human, ok := player.(*HumanPlayer)
		if ok && human.HasPendingMove() {
			move := human.TakePendingMove()
			return g.TryApplyMove(move, g.state.ToMove) == nil
		}
		return false
	}
	ai, ok := player.(*AIPlayer)
	if !ok {
		return false
	}
	if ai.HasDecisionReady() {
		decision, generation := ai.TakeDecision()
		if generation != g.generation {
			return false
		}
		return g.applyDecision(decision)
	}
	if !ai.IsThinking() {
		config := GetConfig()
		ai.StartThinking(g.state.Clone(), g.history.Len(), g.moveLog.Recent(config.AdvisorRecentMoves), g.generation)
	}
	return false
}

// applyDecision executes one AI decision. A skill use does not finish the
// turn: the next tick starts a fresh pipeline pass on the post-skill state,
// which then yields the placement. A rewound board also goes through here
// again, so repeated rewinds cannot loop faster than the tick cadence and die
// out once the skill flag is set.
func (g *Game) applyDecision(decision Decision) bool {
	player := g.state.ToMove
	if decision.UseSkill {
		if err := g.UseSkill(decision.Skill, player); err != nil {
			g.state.LastMessage = "skill rejected: " + err.Error()
			log.Printf("[game] ai skill %s rejected: %v", decision.Skill, err)
			return false
		}
		return true
	}
	if !decision.HasMove {
		return false
	}
	if err := g.TryApplyMove(decision.Move, player); err != nil {
		g.state.LastMessage = "ai move rejected: " + err.Error()
		log.Printf("[game] ai move (%d,%d) rejected: %v", decision.Move.X, decision.Move.Y, err)
		return false
	}
	return true
}

func (g *Game) SubmitHumanMove(move Move) bool {
	player := g.currentPlayer()
	if player == nil || !player.IsHuman() {
		return false
	}
	human, ok := player.(*HumanPlayer)
	if !ok {
		return false
	}
	human.SetPendingMove(move)
	return true
}

func (g *Game) CurrentPlayerIsHuman() bool {
	player := g.currentPlayer()
	return player != nil && player.IsHuman()
}

func (g *Game) AiThinking() bool {
	ai, ok := g.currentPlayer().(*AIPlayer)
	return ok && ai.IsThinking()
}

func (g *Game) currentPlayer() IPlayer {
	return g.playerFor(g.state.ToMove)
}

func (g *Game) playerFor(color PlayerColor) IPlayer {
	if color == PlayerBlack {
		return g.blackPlayer
	}
	return g.whitePlayer
}

func (g *Game) createPlayers() {
	config := GetConfig()
	profile := ProfileForName(g.settings.Difficulty)
	var advisor *AdvisorClient
	if config.AdvisorEnabled {
		advisor = NewAdvisorClient(config)
	}
	buildAI := func() *AIPlayer {
		evaluator := NewHeuristicEvaluator(g.rules, profile, config.Heuristics, g.rng)
		pipeline := NewDecisionPipeline(g.rules, evaluator, advisor, config, g.rng)
		return NewAIPlayer(pipeline)
	}
	if g.settings.BlackType == PlayerHuman {
		g.blackPlayer = NewHumanPlayer()
	} else {
		g.blackPlayer = buildAI()
	}
	if g.settings.WhiteType == PlayerHuman {
		g.whitePlayer = NewHumanPlayer()
	} else {
		g.whitePlayer = buildAI()
	}
}

func (g *Game) stopThinkers() {
	if ai, ok := g.blackPlayer.(*AIPlayer); ok {
		ai.StopThinking()
	}
	if ai, ok := g.whitePlayer.(*AIPlayer); ok {
		ai.StopThinking()
	}
}

func (g *Game) ResetForConfigChange() {
	g.stopThinkers()
	g.createPlayers()
	g.generation++
}
