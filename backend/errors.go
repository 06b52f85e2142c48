package main

import "errors"

// Validation errors returned to the controller. They are expected, recoverable
// conditions and never abort a game.
var (
	ErrGameNotRunning      = errors.New("game not running")
	ErrOutOfBounds         = errors.New("out of bounds")
	ErrOccupiedCell        = errors.New("occupied cell")
	ErrNotPlayersTurn      = errors.New("not player's turn")
	ErrUnknownSkill        = errors.New("unknown skill")
	ErrSkillAlreadyUsed    = errors.New("skill already used")
	ErrInsufficientPieces  = errors.New("insufficient pieces")
	ErrInsufficientSpace   = errors.New("insufficient space")
	ErrInsufficientHistory = errors.New("insufficient history")
)
