package main

import "context"

type IPlayer interface {
	IsHuman() bool
	ChooseDecision(ctx context.Context, state GameState, historyLen int, recent []HistoryEntry) Decision
}
