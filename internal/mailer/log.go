package mailer

import (
	"log/slog"

	"github.com/GowthamanS-2001/Berlin-jobs/internal/model"
)

// Ensure LogSender implements model.DigestSender.
var _ model.DigestSender = (*LogSender)(nil)

// LogSender writes the digest to the logger instead of emailing it. Used in
// dry-run mode and as the default when no SMTP settings are configured.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender returns a sender that logs each digest via slog.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send logs the digest summary and each row. Returns nil (stdout logging
// does not fail).
func (s *LogSender) Send(d model.Digest) error {
	s.logger.Info("digest", "subject", d.Subject, "rows", d.Count, "csv_bytes", len(d.CSV))
	for _, r := range d.Rows {
		args := []any{"title", r.Title, "company", r.Company, "location", r.Location, "posted", r.Posted, "query", r.Query}
		if r.Link != "" {
			args = append(args, "link", r.Link)
		}
		s.logger.Info("digest row", args...)
	}
	return nil
}
