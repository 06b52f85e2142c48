package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"
)

// AdvisorClient talks to the external move advisor. Its output is advisory
// only: every response is validated against the current board before use, and
// any failure falls through to local evaluation.
type AdvisorClient struct {
	baseURL string
	client  *http.Client
	retries int
	backoff time.Duration
}

type AdvisorMoveContext struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Player int `json:"player"`
}

type AdvisorRequest struct {
	Board           [][]int              `json:"board"`
	CurrentPlayer   int                  `json:"current_player"`
	AvailableSkills []string             `json:"available_skills"`
	RecentMoves     []AdvisorMoveContext `json:"recent_moves"`
}

type AdvisorMoveResponse struct {
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Reasoning string `json:"reasoning"`
}

type AdvisorSkillResponse struct {
	UseSkill  bool   `json:"useSkill"`
	SkillType string `json:"skillType,omitempty"`
	Reasoning string `json:"reasoning,omitempty"`
}

func NewAdvisorClient(config Config) *AdvisorClient {
	timeout := time.Duration(config.AdvisorTimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	retries := config.AdvisorRetries
	if retries <= 0 {
		retries = 3
	}
	backoff := time.Duration(config.AdvisorBackoffMs) * time.Millisecond
	if backoff <= 0 {
		backoff = 250 * time.Millisecond
	}
	return &AdvisorClient{
		baseURL: config.AdvisorURL,
		client:  &http.Client{Timeout: timeout},
		retries: retries,
		backoff: backoff,
	}
}

func (c *AdvisorClient) SuggestMove(ctx context.Context, req AdvisorRequest) (AdvisorMoveResponse, error) {
	var resp AdvisorMoveResponse
	err := c.post(ctx, "/move", req, &resp)
	return resp, err
}

func (c *AdvisorClient) SuggestSkill(ctx context.Context, req AdvisorRequest) (AdvisorSkillResponse, error) {
	var resp AdvisorSkillResponse
	err := c.post(ctx, "/skill", req, &resp)
	return resp, err
}

// post retries with backoff up to the configured budget. The per-call timeout
// lives in the http.Client, so a hung advisor cannot stall a turn.
func (c *AdvisorClient) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	var lastErr error
	for attempt := 1; attempt <= c.retries; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.backoff * time.Duration(attempt-1)):
			}
		}
		lastErr = c.postOnce(ctx, path, body, out)
		if lastErr == nil {
			return nil
		}
		log.Printf("[advisor] attempt %d/%d failed: %v", attempt, c.retries, lastErr)
	}
	return fmt.Errorf("advisor unavailable after %d attempts: %w", c.retries, lastErr)
}

func (c *AdvisorClient) postOnce(ctx context.Context, path string, body []byte, out any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")
	response, err := c.client.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", response.StatusCode)
	}
	return json.NewDecoder(response.Body).Decode(out)
}

// buildAdvisorRequest packages the current position for the advisor.
func buildAdvisorRequest(state GameState, recent []HistoryEntry) AdvisorRequest {
	skills := []string{}
	for _, skill := range state.SkillUsage.Available(state.ToMove) {
		skills = append(skills, skill.String())
	}
	moves := make([]AdvisorMoveContext, 0, len(recent))
	for _, entry := range recent {
		if entry.IsSkill {
			continue
		}
		moves = append(moves, AdvisorMoveContext{
			X:      entry.Move.X,
			Y:      entry.Move.Y,
			Player: playerToInt(entry.Player),
		})
	}
	return AdvisorRequest{
		Board:           boardToSlice(state.Board),
		CurrentPlayer:   playerToInt(state.ToMove),
		AvailableSkills: skills,
		RecentMoves:     moves,
	}
}

// validateAdvisorMove checks a move suggestion against the board as it is
// right now, not as it was when the request went out. A cell that filled up
// in the meantime rejects the response.
func validateAdvisorMove(resp AdvisorMoveResponse, board Board) error {
	if !board.InBounds(resp.X, resp.Y) {
		return ErrOutOfBounds
	}
	if board.At(resp.X, resp.Y) != CellEmpty {
		return ErrOccupiedCell
	}
	return nil
}

// validateAdvisorSkill resolves the suggested skill name and confirms the
// player still has it.
func validateAdvisorSkill(resp AdvisorSkillResponse, usage SkillUsageRecord, player PlayerColor) (SkillType, error) {
	if !resp.UseSkill {
		return SkillScatter, errors.New("no skill suggested")
	}
	skill, ok := SkillFromName(resp.SkillType)
	if !ok {
		return SkillScatter, ErrUnknownSkill
	}
	if usage.Used(player, skill) {
		return SkillScatter, ErrSkillAlreadyUsed
	}
	return skill, nil
}
