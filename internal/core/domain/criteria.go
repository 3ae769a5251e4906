package domain

// Criteria filters and sizes a single-batch generation.
// Empty filter strings mean "no filter".
type Criteria struct {
	// Difficulty restricts the pool to one level (template shape)
	// or to categories tagged with it (category shape).
	Difficulty string

	// DataStructure matches the record's data_structure field.
	DataStructure string

	// Pattern matches the record's pattern field.
	Pattern string

	// Count is the number of questions wanted; must be positive.
	Count int
}

// ProgressionOptions configures a per-difficulty progression.
type ProgressionOptions struct {
	// StartDifficulty is the lowest level included.
	StartDifficulty Difficulty

	// CountPerLevel is the batch size for each level; must be positive.
	CountPerLevel int
}

// DefaultProgressionOptions mirrors the generator defaults.
func DefaultProgressionOptions() ProgressionOptions {
	return ProgressionOptions{
		StartDifficulty: DifficultyBeginner,
		CountPerLevel:   2,
	}
}

// ProgressionLevel is one difficulty's batch inside a progression.
type ProgressionLevel struct {
	Difficulty Difficulty `json:"difficulty"`
	Questions  []Question `json:"questions"`
}

// Progression holds per-difficulty batches in ascending difficulty order.
// Only levels present in the database appear; a level with no matches has an
// empty, non-nil Questions slice.
type Progression struct {
	Levels []ProgressionLevel `json:"levels"`
}

// Get returns the batch for a difficulty.
func (p *Progression) Get(d Difficulty) ([]Question, bool) {
	for _, level := range p.Levels {
		if level.Difficulty == d {
			return level.Questions, true
		}
	}
	return nil, false
}

// Difficulties returns the levels present, in order.
func (p *Progression) Difficulties() []Difficulty {
	out := make([]Difficulty, len(p.Levels))
	for i, level := range p.Levels {
		out[i] = level.Difficulty
	}
	return out
}

// Flatten concatenates all levels in ascending order and sets each
// question's difficulty field to its level.
func (p *Progression) Flatten() []Question {
	var out []Question
	for _, level := range p.Levels {
		for _, q := range level.Questions {
			q[FieldDifficulty] = string(level.Difficulty)
			out = append(out, q)
		}
	}
	return out
}
