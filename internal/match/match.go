package match

import "regexp"

// Entry-level vocabulary: case-insensitive whole-word matches. "entry" alone
// covers "entry level" and "entry-level".
const entryExpr = `(?i)\b(entry|junior|werkstudent|trainee|associate|graduate)\b`

// Domain vocabulary: case-insensitive whole-word/phrase matches, tolerant of
// a hyphen or space between the parts of a compound term.
const domainExpr = `(?i)\b(supply[ -]chain|procurement|logistics[ -]coordinat(?:or|ion))\b`

// Patterns holds the compiled relevance matchers. Construct once via New;
// the compiled expressions are never modified afterwards.
type Patterns struct {
	entry  *regexp.Regexp
	domain *regexp.Regexp
}

// New compiles the fixed entry-level and domain-relevance vocabularies.
func New() *Patterns {
	return &Patterns{
		entry:  regexp.MustCompile(entryExpr),
		domain: regexp.MustCompile(domainExpr),
	}
}

// EntryLevel reports whether s contains an entry-level signal word.
func (p *Patterns) EntryLevel(s string) bool {
	return p.entry.MatchString(s)
}

// Domain reports whether s names the target job domain.
func (p *Patterns) Domain(s string) bool {
	return p.domain.MatchString(s)
}

// Relevant reports whether a listing should be retained. The entry-level
// pattern is checked against both title and description; the domain pattern
// is checked against the title only. Either signal alone retains the row:
// this is a "not junk" test, not strict domain gating.
func (p *Patterns) Relevant(title, description string) bool {
	if p.entry.MatchString(title) || p.entry.MatchString(description) {
		return true
	}
	return p.domain.MatchString(title)
}
