// Package dashboard derives the numeric series the dashboard charts render
// from the report collection.
package dashboard

import (
	"context"
	"time"

	"golang.org/x/exp/slog"

	"resolucity/internal/domain/report"
)

// MonthLabels are the line-chart labels, January through December.
var MonthLabels = []string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// Series holds the three chart datasets: complaints per category (pie),
// resolved per category (bar) and reports per month of the current year
// (line). Slice positions align with Categories and Months.
type Series struct {
	Categories []string `json:"categories"`
	Complaints []int    `json:"complaints"`
	Resolved   []int    `json:"resolved"`
	Months     []string `json:"months"`
	Monthly    []int    `json:"monthly"`
}

type Service struct {
	reports report.Servicer
	log     *slog.Logger
}

func NewService(reports report.Servicer, log *slog.Logger) *Service {
	return &Service{
		reports: reports,
		log:     log.With(slog.String("component", "dashboard_service")),
	}
}

// Build aggregates the full report collection. Reports with a category
// outside the fixed list are counted under "Outros"; the month of a report
// comes from its id, which is a creation timestamp in milliseconds.
func (s *Service) Build(ctx context.Context) (Series, error) {
	all, err := s.reports.ListAll(ctx)
	if err != nil {
		return Series{}, err
	}

	idx := make(map[string]int, len(report.Categories))
	for i, c := range report.Categories {
		idx[c] = i
	}
	other := idx["Outros"]

	series := Series{
		Categories: report.Categories,
		Complaints: make([]int, len(report.Categories)),
		Resolved:   make([]int, len(report.Categories)),
		Months:     MonthLabels,
		Monthly:    make([]int, len(MonthLabels)),
	}

	year := time.Now().Year()
	for _, r := range all {
		i, ok := idx[r.Category]
		if !ok {
			i = other
		}
		series.Complaints[i]++
		if r.Status == report.StatusResolved {
			series.Resolved[i]++
		}

		created := time.UnixMilli(r.ID)
		if created.Year() == year {
			series.Monthly[int(created.Month())-1]++
		}
	}

	return series, nil
}
