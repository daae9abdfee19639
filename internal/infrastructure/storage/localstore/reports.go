package localstore

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slog"

	"resolucity/internal/domain/report"
	"resolucity/internal/infrastructure/storage/kv"
)

type ReportRepository struct {
	kv  kv.Store
	log *slog.Logger
	ids idSource
}

func NewReportRepository(store kv.Store, log *slog.Logger) *ReportRepository {
	return &ReportRepository{
		kv:  store,
		log: log.With(slog.String("component", "report_repository")),
	}
}

func (r *ReportRepository) List(ctx context.Context) ([]report.Report, error) {
	raw, ok, err := r.kv.Load(ctx, ReportsKey)
	if err != nil {
		return nil, fmt.Errorf("load reports: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var reports []report.Report
	if err := json.Unmarshal(raw, &reports); err != nil {
		return nil, fmt.Errorf("%w: reports: %v", ErrCorruptData, err)
	}
	return reports, nil
}

func (r *ReportRepository) Append(ctx context.Context, rec report.Report) (report.Report, error) {
	reports, err := r.List(ctx)
	if err != nil {
		r.log.Warn("replacing unreadable report collection", "error", err)
		reports = nil
	}

	rec.ID = r.ids.next()
	reports = append(reports, rec)

	if err := r.save(ctx, reports); err != nil {
		return report.Report{}, err
	}
	return rec, nil
}

// Remove drops the record with the given id and writes the remainder
// back. Unknown ids leave the collection untouched and still succeed.
func (r *ReportRepository) Remove(ctx context.Context, id int64) error {
	reports, err := r.List(ctx)
	if err != nil {
		r.log.Warn("replacing unreadable report collection", "error", err)
		reports = nil
	}

	kept := reports[:0]
	for _, rec := range reports {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	return r.save(ctx, kept)
}

func (r *ReportRepository) save(ctx context.Context, reports []report.Report) error {
	if reports == nil {
		reports = []report.Report{}
	}
	raw, err := json.Marshal(reports)
	if err != nil {
		return fmt.Errorf("encode reports: %w", err)
	}
	if err := r.kv.Save(ctx, ReportsKey, raw); err != nil {
		return fmt.Errorf("save reports: %w", err)
	}
	return nil
}
