package domain

import "fmt"

// Difficulty names one level of the learning scale.
type Difficulty string

// Recognised difficulties, lowest first.
const (
	DifficultyBeginner Difficulty = "beginner"
	DifficultyEasy     Difficulty = "easy"
	DifficultyMedium   Difficulty = "medium"
	DifficultyHard     Difficulty = "hard"
)

var difficultyOrder = []Difficulty{
	DifficultyBeginner,
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
}

// DifficultyOrder returns the fixed total order used for progressions.
func DifficultyOrder() []Difficulty {
	order := make([]Difficulty, len(difficultyOrder))
	copy(order, difficultyOrder)
	return order
}

// Rank returns the position of d in the fixed order.
// The boolean is false for names outside the order.
func (d Difficulty) Rank() (int, bool) {
	for i, known := range difficultyOrder {
		if known == d {
			return i, true
		}
	}
	return -1, false
}

// IsValid returns true if the difficulty is part of the fixed order.
func (d Difficulty) IsValid() bool {
	_, ok := d.Rank()
	return ok
}

// String returns the string representation.
func (d Difficulty) String() string {
	return string(d)
}

// ParseDifficulty validates a difficulty name against the fixed order.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
	return d, nil
}
