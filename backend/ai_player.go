package main

import (
	"context"
	"sync"
	"sync/atomic"
)

// AIPlayer runs the decision pipeline on a background goroutine so the tick
// loop never blocks on an advisor call. A generation tag on each computation
// lets the game discard results that raced a reset or rewind.
type AIPlayer struct {
	pipeline      *DecisionPipeline
	decisionMutex sync.Mutex
	workerDone    chan struct{}
	thinking      atomic.Bool
	decisionReady atomic.Bool
	stopSignal    atomic.Bool
	cancelThink   context.CancelFunc
	readyDecision Decision
	readyGen      uint64
}

func NewAIPlayer(pipeline *DecisionPipeline) *AIPlayer {
	return &AIPlayer{pipeline: pipeline}
}

func (a *AIPlayer) IsHuman() bool {
	return false
}

// ChooseDecision computes synchronously. Tests and the tick loop's
// last-resort path use it; normal play goes through StartThinking.
func (a *AIPlayer) ChooseDecision(ctx context.Context, state GameState, historyLen int, recent []HistoryEntry) Decision {
	return a.pipeline.Decide(ctx, state, historyLen, recent)
}

func (a *AIPlayer) StartThinking(state GameState, historyLen int, recent []HistoryEntry, generation uint64) {
	if a.thinking.Load() {
		return
	}
	if a.workerDone != nil {
		<-a.workerDone
	}
	a.thinking.Store(true)
	a.decisionReady.Store(false)
	a.stopSignal.Store(false)

	stateCopy := state.Clone()
	done := make(chan struct{})
	a.workerDone = done
	ctx, cancel := context.WithCancel(context.Background())
	a.cancelThink = cancel
	go func() {
		defer close(done)
		defer cancel()
		decision := a.pipeline.Decide(ctx, stateCopy, historyLen, recent)
		if a.stopSignal.Load() {
			a.thinking.Store(false)
			return
		}
		a.decisionMutex.Lock()
		a.readyDecision = decision
		a.readyGen = generation
		a.decisionMutex.Unlock()
		a.decisionReady.Store(true)
		a.thinking.Store(false)
	}()
}

func (a *AIPlayer) IsThinking() bool {
	return a.thinking.Load()
}

func (a *AIPlayer) HasDecisionReady() bool {
	return a.decisionReady.Load()
}

// TakeDecision hands over the computed decision with the generation it was
// computed against.
func (a *AIPlayer) TakeDecision() (Decision, uint64) {
	a.decisionMutex.Lock()
	defer a.decisionMutex.Unlock()
	a.decisionReady.Store(false)
	return a.readyDecision, a.readyGen
}

// StopThinking cancels any in-flight computation; a pending result is
// dropped.
func (a *AIPlayer) StopThinking() {
	a.stopSignal.Store(true)
	if a.cancelThink != nil {
		a.cancelThink()
	}
	a.decisionReady.Store(false)
}
