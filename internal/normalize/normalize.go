package normalize

import (
	"strings"

	"github.com/GowthamanS-2001/Berlin-jobs/internal/match"
	"github.com/GowthamanS-2001/Berlin-jobs/internal/model"
	"github.com/GowthamanS-2001/Berlin-jobs/internal/serpapi"
)

// Normalizer maps raw search hits to canonical listings, dropping duplicates
// and irrelevant rows. The seen-set is scoped to one Normalizer, i.e. one
// pipeline run; there is no cross-run memory.
type Normalizer struct {
	patterns *match.Patterns
	seen     map[model.Key]struct{}
}

// New creates a normalizer with an empty seen-set.
func New(patterns *match.Patterns) *Normalizer {
	return &Normalizer{
		patterns: patterns,
		seen:     make(map[model.Key]struct{}),
	}
}

// Normalize maps one raw hit to zero or one canonical listing. The second
// return is false when the row duplicates an identity key already seen this
// run or matches no relevance signal. Missing upstream fields degrade to
// empty values; a malformed record never fails the run.
func (n *Normalizer) Normalize(hit serpapi.Hit) (model.Listing, bool) {
	raw := hit.Raw

	l := model.Listing{
		Title:    strings.TrimSpace(raw.Title),
		Company:  firstNonEmpty(raw.CompanyName, raw.Company),
		Location: strings.TrimSpace(raw.Location),
		Source:   source(raw.Via),
		Link:     bestLink(raw),
		Posted:   raw.DetectedExtensions.PostedAt,
		Salary:   raw.DetectedExtensions.Salary,
		Query:    hit.Query,
	}

	key := l.Key()
	if _, dup := n.seen[key]; dup {
		return model.Listing{}, false
	}
	n.seen[key] = struct{}{}

	if !n.patterns.Relevant(l.Title, raw.Description) {
		return model.Listing{}, false
	}

	return l, true
}

// firstNonEmpty returns the first value that is non-empty after trimming.
// The company field appears under more than one name upstream.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// bestLink picks the best-available apply link: the first related link, then
// the share link, then the raw job identifier. Empty means no link.
func bestLink(raw serpapi.RawListing) string {
	if len(raw.RelatedLinks) > 0 && raw.RelatedLinks[0].Link != "" {
		return raw.RelatedLinks[0].Link
	}
	if raw.ShareLink != "" {
		return raw.ShareLink
	}
	return raw.JobID
}

// source strips the engine's "via " prefix from the referrer field.
func source(via string) string {
	return strings.TrimPrefix(strings.TrimSpace(via), "via ")
}
