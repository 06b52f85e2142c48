package main

import "sync"

// GameController serializes all access to the Game. The tick loop and the
// HTTP handlers run on different goroutines; everything funnels through here.
type GameController struct {
	mutex sync.Mutex
	game  Game
}

func NewGameController(settings GameSettings) *GameController {
	return &GameController{game: NewGame(settings)}
}

func (c *GameController) StartGame() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.game.Start()
}

func (c *GameController) Reset(settings GameSettings) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.game.Reset(settings)
}

func (c *GameController) UpdateSettings(settings GameSettings) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.game.Reset(settings)
}

// ResetForConfigChange rebuilds the players against the new config without
// discarding the position.
func (c *GameController) ResetForConfigChange() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.game.ResetForConfigChange()
}

func (c *GameController) Settings() GameSettings {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.game.settings
}

func (c *GameController) State() GameState {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.game.State()
}

func (c *GameController) History() []HistoryEntry {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.game.History().All()
}

func (c *GameController) LatestHistoryEntry() (HistoryEntry, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	log := c.game.History()
	if log.Size() == 0 {
		return HistoryEntry{}, false
	}
	entries := log.All()
	return entries[len(entries)-1], true
}

func (c *GameController) ApplyMove(move Move, player PlayerColor) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.game.TryApplyMove(move, player)
}

// SubmitHumanMove queues a move for the human whose turn it is; the tick loop
// applies it.
func (c *GameController) SubmitHumanMove(move Move) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.game.SubmitHumanMove(move)
}

func (c *GameController) UseSkill(skill SkillType, player PlayerColor) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.game.UseSkill(skill, player)
}

func (c *GameController) Rewind(steps int) (Snapshot, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.game.RewindTurns(steps)
}

func (c *GameController) CheckGameEnd(lastMove Move) GameEndResult {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.game.CheckGameEnd(lastMove)
}

func (c *GameController) Tick() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.game.Tick()
}

func (c *GameController) AiThinking() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.game.AiThinking()
}

func (c *GameController) TurnStartedAtMs() int64 {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.game.TurnStartedAtMs()
}
