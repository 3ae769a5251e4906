package services

import (
	"fmt"

	"github.com/exponent-labs/leetgen/internal/core/domain"
	"github.com/exponent-labs/leetgen/internal/core/ports/driven"
	"github.com/exponent-labs/leetgen/internal/logger"
)

// Selector filters a question pool and draws a random sample from it.
type Selector struct {
	random driven.RandomSource
	clock  driven.Clock
}

// NewSelector creates a selector drawing from random and stamping times from clock.
func NewSelector(random driven.RandomSource, clock driven.Clock) *Selector {
	return &Selector{
		random: random,
		clock:  clock,
	}
}

// Select returns min(count, matches) distinct records sampled uniformly
// without replacement. Each returned record is a copy of the pool record
// with provenance attached.
func (s *Selector) Select(database string, pool []domain.Question, criteria domain.Criteria) ([]domain.Question, error) {
	if criteria.Count <= 0 {
		return nil, fmt.Errorf("%w: count must be positive, got %d", domain.ErrInvalidInput, criteria.Count)
	}

	matches := Filter(pool, criteria)
	logger.Debug("Pool: %d records, %d after filters", len(pool), len(matches))
	if len(matches) == 0 {
		return nil, domain.ErrNoMatchingQuestions
	}

	n := min(criteria.Count, len(matches))

	// Partial Fisher-Yates over indices; the pool itself is never reordered.
	idx := make([]int, len(matches))
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < n; i++ {
		j := i + s.random.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	now := s.clock.Now()
	selected := make([]domain.Question, n)
	for i := 0; i < n; i++ {
		q := matches[idx[i]].Clone()
		if q == nil {
			q = domain.Question{}
		}
		q.AttachProvenance(database, now)
		selected[i] = q
	}
	return selected, nil
}

// Filter keeps records whose data_structure and pattern fields equal the
// criteria. Empty criteria fields do not filter. Difficulty is applied
// during normalisation, not here.
func Filter(pool []domain.Question, criteria domain.Criteria) []domain.Question {
	if criteria.DataStructure == "" && criteria.Pattern == "" {
		return pool
	}
	out := make([]domain.Question, 0, len(pool))
	for _, q := range pool {
		if criteria.DataStructure != "" && !q.Matches(domain.FieldDataStructure, criteria.DataStructure) {
			continue
		}
		if criteria.Pattern != "" && !q.Matches(domain.FieldPattern, criteria.Pattern) {
			continue
		}
		out = append(out, q)
	}
	return out
}
