package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/GowthamanS-2001/Berlin-jobs/internal/model"
)

const resultsPerPage = 10

// PageSearcher issues one search request for a single (query, page) pair.
type PageSearcher interface {
	SearchPage(ctx context.Context, query string, page int) ([]RawListing, error)
}

// Client queries the SerpAPI google_jobs engine.
type Client struct {
	baseURL  string
	apiKey   string
	location string
	language string
	country  string
	client   *http.Client
}

// NewClient creates a client for the google_jobs engine. All requests share
// the given location and hl/gl parameters.
func NewClient(baseURL, apiKey, location, language, country string, client *http.Client) *Client {
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		location: location,
		language: language,
		country:  country,
		client:   client,
	}
}

// SearchPage fetches one result page for the given query. A page with no
// jobs_results is zero listings, nil error; a transport failure, non-200
// status, or API-level error is returned as *model.APIError so the caller can
// abort the run.
func (c *Client) SearchPage(ctx context.Context, query string, page int) ([]RawListing, error) {
	u, err := url.Parse(c.baseURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	params := url.Values{}
	params.Set("engine", "google_jobs")
	params.Set("q", query)
	params.Set("location", c.location)
	params.Set("hl", c.language)
	params.Set("gl", c.country)
	if page > 0 {
		params.Set("start", strconv.Itoa(page*resultsPerPage))
	}
	params.Set("api_key", c.apiKey)
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	defer resp.Body.Close()

	var sr searchResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&sr); decodeErr != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &model.APIError{StatusCode: resp.StatusCode}
		}
		return nil, fmt.Errorf("search %q: %w", query, decodeErr)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &model.APIError{StatusCode: resp.StatusCode, Message: sr.Error}
	}

	if sr.Error != "" {
		// The engine reports an exhausted result set as an error string on a
		// 200 response. That is an empty page, not a failure.
		if strings.Contains(strings.ToLower(sr.Error), "any results") {
			return nil, nil
		}
		return nil, &model.APIError{StatusCode: resp.StatusCode, Message: sr.Error}
	}

	return sr.JobsResults, nil
}
