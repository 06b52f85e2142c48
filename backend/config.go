package main

import "sync"

type Config struct {
	HistoryLimit        int     `json:"history_limit"`
	RewindSteps         int     `json:"rewind_steps"`
	ScatterCount        int     `json:"scatter_count"`
	RemoveCount         int     `json:"remove_count"`
	MinMovesBeforeSkill int     `json:"min_moves_before_skill"`
	SkillValueThreshold float64 `json:"skill_value_threshold"`
	SkillBaseChance     float64 `json:"skill_base_chance"`
	SkillChancePerMove  float64 `json:"skill_chance_per_move"`
	SkillMaxChance      float64 `json:"skill_max_chance"`
	AdvisorEnabled      bool    `json:"advisor_enabled"`
	AdvisorURL          string  `json:"advisor_url"`
	AdvisorTimeoutMs    int     `json:"advisor_timeout_ms"`
	AdvisorRetries      int     `json:"advisor_retries"`
	AdvisorBackoffMs    int     `json:"advisor_backoff_ms"`
	AdvisorRecentMoves  int     `json:"advisor_recent_moves"`
	RandomSeed          int64   `json:"random_seed"`

	Heuristics HeuristicConfig `json:"heuristics"`
}

// HeuristicConfig holds the line-category weight table. Compound bonuses must
// stay above any single-line sum (4 directions of open fours at most) so the
// evaluator always prefers a fork when one exists.
type HeuristicConfig struct {
	Five            float64 `json:"five"`
	Open4           float64 `json:"open_4"`
	Closed4         float64 `json:"closed_4"`
	Open3           float64 `json:"open_3"`
	Closed3         float64 `json:"closed_3"`
	Open2           float64 `json:"open_2"`
	Closed2         float64 `json:"closed_2"`
	Single          float64 `json:"single"`
	ForkFourThree   float64 `json:"fork_four_three"`
	ForkDoubleThree float64 `json:"fork_double_three"`
	CenterBonus     float64 `json:"center_bonus"`
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	return Config{
		HistoryLimit: 100,
		RewindSteps:  2,
		ScatterCount: 5,
		RemoveCount:  3,

		// Skill policy: nothing before the opening settles, then a chance
		// that rises with move count.
		MinMovesBeforeSkill: 6,
		SkillValueThreshold: 2.0,
		SkillBaseChance:     0.05,
		SkillChancePerMove:  0.01,
		SkillMaxChance:      0.45,

		AdvisorEnabled:     false,
		AdvisorURL:         "http://localhost:9090",
		AdvisorTimeoutMs:   3000,
		AdvisorRetries:     3,
		AdvisorBackoffMs:   250,
		AdvisorRecentMoves: 8,

		RandomSeed: 0, // 0 = time-seeded

		Heuristics: HeuristicConfig{
			Five:            10000000.0,
			Open4:           100000.0,
			Closed4:         15000.0,
			Open3:           2500.0,
			Closed3:         400.0,
			Open2:           200.0,
			Closed2:         120.0,
			Single:          10.0,
			ForkFourThree:   1000000.0,
			ForkDoubleThree: 500000.0,
			CenterBonus:     14.0,
		},
	}
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}
