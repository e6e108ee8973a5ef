package render

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"html/template"
	"time"

	"github.com/GowthamanS-2001/Berlin-jobs/internal/model"
)

// EmptyMessage is the digest body shown when a run retained no rows. The
// digest is still sent so a quiet day is distinguishable from a broken run.
const EmptyMessage = "No matching roles found today."

var csvHeader = []string{"title", "company", "location", "posted", "source", "link", "query", "salary"}

// html/template's contextual autoescaping is what makes embedding
// third-party field values in the body safe.
var digestTmpl = template.Must(template.New("digest").Parse(`<h2>Daily digest for Berlin ({{.Date}})</h2>
{{if .Rows}}<table border="1" cellpadding="4" cellspacing="0">
<tr><th>Title</th><th>Company</th><th>Location</th><th>Posted</th><th>Source</th><th>Link</th></tr>
{{range .Rows}}<tr><td><b>{{.Title}}</b></td><td>{{.Company}}</td><td>{{.Location}}</td><td>{{.Posted}}</td><td>{{.Source}}</td><td>{{if .Link}}<a href="{{.Link}}">Apply here</a>{{end}}</td></tr>
{{end}}</table>
{{else}}<p>` + EmptyMessage + `</p>
{{end}}`))

type templateData struct {
	Date string
	Rows []model.Listing
}

// Render produces the digest payload for one run: subject line, HTML body,
// and CSV attachment. rows must already be ranked and truncated.
func Render(rows []model.Listing, subjectPrefix string, ranAt time.Time) (model.Digest, error) {
	date := ranAt.Format("2006-01-02")

	var body bytes.Buffer
	if err := digestTmpl.Execute(&body, templateData{Date: date, Rows: rows}); err != nil {
		return model.Digest{}, fmt.Errorf("rendering digest html: %w", err)
	}

	csvBytes, err := renderCSV(rows)
	if err != nil {
		return model.Digest{}, err
	}

	return model.Digest{
		Subject:        fmt.Sprintf("%s (%s)", subjectPrefix, date),
		HTML:           body.String(),
		CSV:            csvBytes,
		AttachmentName: "jobs-" + date + ".csv",
		Rows:           rows,
		Count:          len(rows),
		RanAt:          ranAt,
	}, nil
}

// renderCSV writes the fixed-column CSV: header row always, one record per
// listing. encoding/csv handles the quoting.
func renderCSV(rows []model.Listing) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("rendering digest csv: %w", err)
	}
	for _, r := range rows {
		record := []string{r.Title, r.Company, r.Location, r.Posted, r.Source, r.Link, r.Query, r.Salary}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("rendering digest csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("rendering digest csv: %w", err)
	}

	return buf.Bytes(), nil
}
