package main

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// DifficultyProfile tunes the evaluator. Profiles are immutable once
// selected; switching difficulty builds a new evaluator with fresh weights.
type DifficultyProfile struct {
	Name               string
	AttackMultiplier   float64
	DefenseMultiplier  float64
	MistakeProbability float64
	MistakeTopK        int
	AdvancedTactics    bool
}

func EasyProfile() DifficultyProfile {
	return DifficultyProfile{
		Name:               DifficultyEasy,
		AttackMultiplier:   1.0,
		DefenseMultiplier:  0.8,
		MistakeProbability: 0.25,
		MistakeTopK:        5,
		AdvancedTactics:    false,
	}
}

func MediumProfile() DifficultyProfile {
	return DifficultyProfile{
		Name:               DifficultyMedium,
		AttackMultiplier:   1.0,
		DefenseMultiplier:  1.0,
		MistakeProbability: 0.08,
		MistakeTopK:        3,
		AdvancedTactics:    false,
	}
}

// HardProfile is the only profile with advanced tactic detection: compound
// threats are scored for both sides.
func HardProfile() DifficultyProfile {
	return DifficultyProfile{
		Name:               DifficultyHard,
		AttackMultiplier:   1.0,
		DefenseMultiplier:  1.2,
		MistakeProbability: 0.0,
		MistakeTopK:        3,
		AdvancedTactics:    true,
	}
}

func ProfileForName(name string) DifficultyProfile {
	switch name {
	case DifficultyEasy:
		return EasyProfile()
	case DifficultyHard:
		return HardProfile()
	default:
		return MediumProfile()
	}
}
