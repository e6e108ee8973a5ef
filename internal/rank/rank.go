package rank

import (
	"sort"
	"strings"

	"github.com/GowthamanS-2001/Berlin-jobs/internal/match"
	"github.com/GowthamanS-2001/Berlin-jobs/internal/model"
)

// Scorer assigns a deterministic desirability score to a listing: domain
// relevance and entry-level wording in the title, plus recency of the
// free-text posted signal.
type Scorer struct {
	patterns *match.Patterns
}

// NewScorer creates a scorer over the given relevance patterns.
func NewScorer(patterns *match.Patterns) *Scorer {
	return &Scorer{patterns: patterns}
}

// Score is a pure function of the listing's fields. Higher is more desirable.
func (s *Scorer) Score(l model.Listing) int {
	score := 0
	if s.patterns.Domain(l.Title) {
		score += 2
	}
	if s.patterns.EntryLevel(l.Title) {
		score++
	}

	posted := strings.ToLower(l.Posted)
	switch {
	case strings.Contains(posted, "just"):
		score += 3
	case strings.Contains(posted, "day"), strings.Contains(posted, "hour"):
		score += 2
	}
	return score
}

// Rank returns a new slice sorted by descending score and truncated to at
// most n rows. Ties keep their input order (stable sort), so ranking the same
// input twice is reproducible. The input slice is not modified.
func (s *Scorer) Rank(rows []model.Listing, n int) []model.Listing {
	scores := make([]int, len(rows))
	for i, r := range rows {
		scores[i] = s.Score(r)
	}

	order := make([]int, len(rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	if n > len(rows) {
		n = len(rows)
	}
	ranked := make([]model.Listing, 0, n)
	for _, idx := range order[:n] {
		ranked = append(ranked, rows[idx])
	}
	return ranked
}
