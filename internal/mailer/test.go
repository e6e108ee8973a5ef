package mailer

import (
	"time"

	"github.com/GowthamanS-2001/Berlin-jobs/internal/model"
	"github.com/GowthamanS-2001/Berlin-jobs/internal/render"
)

// SendTestDigest renders a one-row dummy digest and pushes it through the
// given sender to verify the mail configuration end to end.
func SendTestDigest(sender model.DigestSender, subjectPrefix string) error {
	rows := []model.Listing{{
		Title:    "Junior Supply Chain Analyst (Test)",
		Company:  "Berlin Jobs Test",
		Location: "Berlin, Germany",
		Source:   "test",
		Link:     "https://serpapi.com/google-jobs-api",
		Posted:   "Just posted",
		Query:    "test",
	}}

	d, err := render.Render(rows, subjectPrefix+" [test]", time.Now())
	if err != nil {
		return err
	}
	return sender.Send(d)
}
