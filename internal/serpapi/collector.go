package serpapi

import (
	"context"
	"fmt"
	"log/slog"
)

// Collector fans one run out across every configured (query, page) pair and
// concatenates the raw results: query order, then page order, then the order
// the API returned them in.
type Collector struct {
	searcher PageSearcher
	queries  []string
	pages    int
	logger   *slog.Logger
}

// NewCollector creates a collector that fetches up to pages result pages for
// each query.
func NewCollector(searcher PageSearcher, queries []string, pages int, logger *slog.Logger) *Collector {
	return &Collector{
		searcher: searcher,
		queries:  queries,
		pages:    pages,
		logger:   logger,
	}
}

// Collect issues one request per (query, page) pair and returns every raw
// listing paired with its originating query. An empty page ends paging for
// that query and is not an error; a hard API failure aborts the whole run.
func (c *Collector) Collect(ctx context.Context) ([]Hit, error) {
	var hits []Hit
	for _, query := range c.queries {
		fetched := 0
		for page := 0; page < c.pages; page++ {
			listings, err := c.searcher.SearchPage(ctx, query, page)
			if err != nil {
				return nil, fmt.Errorf("collecting %q page %d: %w", query, page, err)
			}
			if len(listings) == 0 {
				break
			}
			for _, raw := range listings {
				hits = append(hits, Hit{Raw: raw, Query: query})
			}
			fetched += len(listings)
		}
		c.logger.Info("collected query", "query", query, "listings", fetched)
	}
	c.logger.Info("collection complete", "total", len(hits), "queries", len(c.queries))
	return hits, nil
}
