package budgetview

import (
	"context"

	"github.com/pkg/errors"
)

// reportService implements the ReportService interface
type reportService struct {
	client *Client
}

// List fetches and parses the reports document. The list is rebuilt from
// scratch on every fetch; stale reports are replaced wholesale.
func (s *reportService) List(ctx context.Context) ([]*Report, error) {
	var doc []interface{}
	if err := s.client.get(ctx, ReportsPath, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to fetch reports")
	}

	reports := ParseReports(doc)
	if dropped := len(doc) - len(reports); dropped > 0 && s.client.options.Logger != nil {
		s.client.options.Logger.Warn("dropped malformed report envelopes", "dropped", dropped, "total", len(doc))
	}
	return reports, nil
}

// Get retrieves a single report by key
func (s *reportService) Get(ctx context.Context, key string) (*Report, error) {
	reports, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, report := range reports {
		if report.Key == key {
			return report, nil
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "report %q", key)
}
