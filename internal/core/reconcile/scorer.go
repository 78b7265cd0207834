package reconcile

import (
	"github.com/penwyp/go-link-monitor/internal/core/model"
)

// Scorer computes the 0-100 confidence score for a reconciliation result.
type Scorer struct{}

// NewScorer creates a scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score starts at 100, subtracts 15 per inconsistency, 50 for an empty event
// list plus 20 for fewer than three events (both penalties stack, so an
// empty timeline scores worst), and adds 10 back when events come from more
// than one source. The result is clamped to [0, 100].
func (s *Scorer) Score(events []model.Event, inconsistencies []model.Inconsistency) int {
	score := 100
	score -= 15 * len(inconsistencies)

	if len(events) == 0 {
		score -= 50
	}
	if len(events) < 3 {
		score -= 20
	}

	if distinctSources(events) > 1 {
		score += 10
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

func distinctSources(events []model.Event) int {
	sources := make(map[string]struct{}, 2)
	for _, e := range events {
		sources[e.Source] = struct{}{}
	}
	return len(sources)
}
