package serpapi

// RawListing mirrors one entry of the google_jobs engine's jobs_results
// array. The upstream record is treated as opaque: every field is optional
// and absent fields decode to zero values.
type RawListing struct {
	Title              string             `json:"title"`
	CompanyName        string             `json:"company_name"`
	Company            string             `json:"company"` // older responses use this name
	Location           string             `json:"location"`
	Via                string             `json:"via"`
	Description        string             `json:"description"`
	ShareLink          string             `json:"share_link"`
	JobID              string             `json:"job_id"`
	RelatedLinks       []RelatedLink      `json:"related_links"`
	DetectedExtensions DetectedExtensions `json:"detected_extensions"`
}

// RelatedLink is one application/search link attached to a listing.
type RelatedLink struct {
	Link string `json:"link"`
	Text string `json:"text"`
}

// DetectedExtensions is the nested sub-record of signals the engine extracted
// from the posting text.
type DetectedExtensions struct {
	PostedAt     string `json:"posted_at"`
	Salary       string `json:"salary"`
	ScheduleType string `json:"schedule_type"`
}

// Hit pairs a raw listing with the query that produced it, preserving
// provenance through normalization.
type Hit struct {
	Raw   RawListing
	Query string
}

// searchResponse is the top-level google_jobs engine response.
type searchResponse struct {
	JobsResults []RawListing `json:"jobs_results"`
	Error       string       `json:"error"`
}
