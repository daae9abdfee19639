package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	ListAll(ctx context.Context) ([]Report, error)
	ListForOwner(ctx context.Context, ownerKey string) ([]Report, error)
	Create(ctx context.Context, req CreateRequest, ownerKey string) (Report, error)
	Delete(ctx context.Context, id int64) error
}

// CreateRequest carries the descriptive fields of a new report. The store
// does not validate them; validation belongs to the form layer.
type CreateRequest struct {
	Category    string
	Address     string
	Description string
	Date        string
	Status      string
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(slog.String("component", "report_service")),
	}
}

// ListAll returns the full report collection. An unreadable collection is
// treated as empty.
func (s *Service) ListAll(ctx context.Context) ([]Report, error) {
	reports, err := s.repo.List(ctx)
	if err != nil {
		s.log.Warn("report collection unreadable, treating as empty", "error", err)
		return nil, nil
	}
	return reports, nil
}

// ListForOwner filters by owner key and sorts newest-first. The id is a
// creation timestamp, so descending id is descending creation time.
func (s *Service) ListForOwner(ctx context.Context, ownerKey string) ([]Report, error) {
	all, _ := s.ListAll(ctx)
	owner := NormalizeOwner(ownerKey)

	var mine []Report
	for _, r := range all {
		if r.OwnerKey == owner {
			mine = append(mine, r)
		}
	}

	sort.Slice(mine, func(i, j int) bool { return mine[i].ID > mine[j].ID })
	return mine, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest, ownerKey string) (Report, error) {
	r := Report{
		OwnerKey:    NormalizeOwner(ownerKey),
		Category:    req.Category,
		Address:     req.Address,
		Description: req.Description,
		Date:        req.Date,
		Status:      req.Status,
	}
	if r.Status == "" {
		r.Status = StatusPending
	}
	if r.Date == "" {
		r.Date = time.Now().Format(DateLayout)
	}

	stored, err := s.repo.Append(ctx, r)
	if err != nil {
		return Report{}, fmt.Errorf("persist report: %w", err)
	}

	s.log.Info("report created", "id", stored.ID, "owner", stored.OwnerKey, "category", stored.Category)
	return stored, nil
}

// Delete removes the report with the given id. Deleting an unknown id is a
// no-op success, so repeating a delete is harmless.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return fmt.Errorf("remove report: %w", err)
	}
	return nil
}
