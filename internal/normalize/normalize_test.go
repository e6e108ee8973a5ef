package normalize

import (
	"testing"

	"github.com/GowthamanS-2001/Berlin-jobs/internal/match"
	"github.com/GowthamanS-2001/Berlin-jobs/internal/serpapi"
)

func hit(title, company, link string) serpapi.Hit {
	return serpapi.Hit{
		Raw: serpapi.RawListing{
			Title:       title,
			CompanyName: company,
			ShareLink:   link,
		},
		Query: "supply chain Berlin",
	}
}

func TestNormalize_FieldMapping(t *testing.T) {
	n := New(match.New())

	h := serpapi.Hit{
		Raw: serpapi.RawListing{
			Title:       "  Junior Supply Chain Analyst  ",
			CompanyName: " Acme GmbH ",
			Location:    " Berlin, Germany ",
			Via:         "via LinkedIn",
			RelatedLinks: []serpapi.RelatedLink{
				{Link: "https://jobs.acme.example/1", Text: "acme.example"},
			},
			ShareLink: "https://share.example/1",
			DetectedExtensions: serpapi.DetectedExtensions{
				PostedAt: "2 days ago",
				Salary:   "45K a year",
			},
		},
		Query: "supply chain Berlin",
	}

	l, ok := n.Normalize(h)
	if !ok {
		t.Fatal("expected listing to be retained")
	}
	if l.Title != "Junior Supply Chain Analyst" {
		t.Errorf("Title = %q, want trimmed title", l.Title)
	}
	if l.Company != "Acme GmbH" {
		t.Errorf("Company = %q, want trimmed company", l.Company)
	}
	if l.Location != "Berlin, Germany" {
		t.Errorf("Location = %q", l.Location)
	}
	if l.Source != "LinkedIn" {
		t.Errorf("Source = %q, want via prefix stripped", l.Source)
	}
	if l.Link != "https://jobs.acme.example/1" {
		t.Errorf("Link = %q, want first related link preferred over share link", l.Link)
	}
	if l.Posted != "2 days ago" || l.Salary != "45K a year" {
		t.Errorf("extensions not mapped: posted=%q salary=%q", l.Posted, l.Salary)
	}
	if l.Query != "supply chain Berlin" {
		t.Errorf("Query = %q, want provenance preserved", l.Query)
	}
}

func TestNormalize_CompanyAlias(t *testing.T) {
	n := New(match.New())

	h := serpapi.Hit{
		Raw:   serpapi.RawListing{Title: "Junior Buyer", Company: "Fallback Corp"},
		Query: "procurement Berlin",
	}
	l, ok := n.Normalize(h)
	if !ok {
		t.Fatal("expected listing to be retained")
	}
	if l.Company != "Fallback Corp" {
		t.Errorf("Company = %q, want alias field used when company_name is empty", l.Company)
	}
}

func TestNormalize_LinkFallbackChain(t *testing.T) {
	tests := []struct {
		name string
		raw  serpapi.RawListing
		want string
	}{
		{
			name: "share link when no related links",
			raw:  serpapi.RawListing{Title: "Junior Buyer", ShareLink: "https://share.example/2"},
			want: "https://share.example/2",
		},
		{
			name: "job id as last resort",
			raw:  serpapi.RawListing{Title: "Junior Buyer", JobID: "abc123=="},
			want: "abc123==",
		},
		{
			name: "absent link is not an error",
			raw:  serpapi.RawListing{Title: "Junior Buyer"},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New(match.New())
			l, ok := n.Normalize(serpapi.Hit{Raw: tt.raw, Query: "q"})
			if !ok {
				t.Fatal("expected listing to be retained")
			}
			if l.Link != tt.want {
				t.Errorf("Link = %q, want %q", l.Link, tt.want)
			}
		})
	}
}

func TestNormalize_DedupIdempotent(t *testing.T) {
	n := New(match.New())

	first := hit("Junior Supply Chain Analyst", "Acme", "http://x/1")
	if _, ok := n.Normalize(first); !ok {
		t.Fatal("first occurrence should be retained")
	}
	if _, ok := n.Normalize(first); ok {
		t.Error("identical identity key should be dropped on second pass")
	}

	// Same title and company but a different link is a different listing.
	other := hit("Junior Supply Chain Analyst", "Acme", "http://x/2")
	if _, ok := n.Normalize(other); !ok {
		t.Error("different link should not be deduplicated")
	}
}

func TestNormalize_IrrelevantDropped(t *testing.T) {
	n := New(match.New())

	h := serpapi.Hit{
		Raw: serpapi.RawListing{
			Title:       "Senior Backend Engineer",
			Description: "no entry signals",
		},
		Query: "operations Berlin",
	}
	if _, ok := n.Normalize(h); ok {
		t.Error("listing with neither relevance signal should be dropped")
	}
}

func TestNormalize_MalformedRecordDegrades(t *testing.T) {
	n := New(match.New())

	// Only a title, everything else missing upstream.
	l, ok := n.Normalize(serpapi.Hit{Raw: serpapi.RawListing{Title: "Junior Analyst"}, Query: "q"})
	if !ok {
		t.Fatal("sparse record should still be retained")
	}
	if l.Company != "" || l.Link != "" || l.Posted != "" || l.Salary != "" {
		t.Errorf("missing fields should map to empty values, got %+v", l)
	}
}
