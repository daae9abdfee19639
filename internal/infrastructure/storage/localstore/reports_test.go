package localstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"resolucity/internal/domain/report"
	"resolucity/internal/infrastructure/storage/kv"
)

func TestReportRepository_ListAbsentKey(t *testing.T) {
	repo := NewReportRepository(kv.NewMemory(), slog.Default())

	reports, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, reports)
}

func TestReportRepository_AppendAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewReportRepository(kv.NewMemory(), slog.Default())

	stored, err := repo.Append(ctx, report.Report{
		OwnerKey:    "ana@email.com",
		Category:    "Infraestrutura",
		Address:     "Rua das Flores, Centro - Resende/RJ",
		Description: "Buraco grande na pista",
		Date:        "15/03/2024",
		Status:      report.StatusPending,
	})
	require.NoError(t, err)
	assert.NotZero(t, stored.ID)

	reports, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, stored, reports[0])
}

func TestReportRepository_Remove(t *testing.T) {
	ctx := context.Background()
	repo := NewReportRepository(kv.NewMemory(), slog.Default())

	first, err := repo.Append(ctx, report.Report{Category: "Obras"})
	require.NoError(t, err)
	second, err := repo.Append(ctx, report.Report{Category: "Drenagem"})
	require.NoError(t, err)

	require.NoError(t, repo.Remove(ctx, first.ID))

	reports, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, second.ID, reports[0].ID)
}

func TestReportRepository_RemoveUnknownID(t *testing.T) {
	ctx := context.Background()
	repo := NewReportRepository(kv.NewMemory(), slog.Default())

	stored, err := repo.Append(ctx, report.Report{Category: "Outros"})
	require.NoError(t, err)

	require.NoError(t, repo.Remove(ctx, stored.ID+999))

	reports, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, reports, 1)
}

func TestReportRepository_RemoveLastWritesEmptyArray(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	repo := NewReportRepository(store, slog.Default())

	stored, err := repo.Append(ctx, report.Report{Category: "Outros"})
	require.NoError(t, err)
	require.NoError(t, repo.Remove(ctx, stored.ID))

	raw, ok, err := store.Load(ctx, ReportsKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", string(raw))
}

func TestReportRepository_CorruptCollection(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	repo := NewReportRepository(store, slog.Default())

	require.NoError(t, store.Save(ctx, ReportsKey, []byte("[broken")))

	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, ErrCorruptData)

	stored, err := repo.Append(ctx, report.Report{Category: "Outros"})
	require.NoError(t, err)

	reports, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, stored.ID, reports[0].ID)
}
