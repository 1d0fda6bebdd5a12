package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-delivery-board/internal/config"
	"github.com/MKhiriev/go-delivery-board/internal/logger"
	"github.com/MKhiriev/go-delivery-board/models"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	cfg := config.Storage{DB: config.DB{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "deliveries.db"),
	}}
	storages, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })
	return storages
}

func TestNewStorages_UnsupportedDriver(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{DB: config.DB{Driver: "oracle", DSN: "x"}}, logger.Nop())
	require.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestSQLiteStorages_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteStorages(t).DeliveryRepository

	uploaded := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	in := []models.DeliveryRecord{
		{Collaborator: "Ana", Task: "DCTF", Status: models.Late, Department: models.Fiscal, ReferenceMonth: "2024-01", DeliveryDate: "10/01/2024", UploadedAt: uploaded},
		{Collaborator: "Bruno", Task: "Férias", Status: models.OnTime, Department: models.Personnel, ReferenceMonth: "2024-02", DeliveryDate: "05/02/2024", UploadedAt: uploaded},
		{Collaborator: "Ana", Task: "Folha", Status: models.Justified, Department: models.Personnel, ReferenceMonth: "2024-02", DeliveryDate: "06/02/2024", UploadedAt: uploaded},
	}
	require.NoError(t, repo.AppendRecords(ctx, in...))

	all, err := repo.QueryByMonths(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i := range in {
		assert.NotZero(t, all[i].ID)
		all[i].ID = 0
		assert.True(t, uploaded.Equal(all[i].UploadedAt))
		all[i].UploadedAt = uploaded
	}
	assert.Equal(t, in, all)

	feb, err := repo.QueryByMonths(ctx, "2024-02")
	require.NoError(t, err)
	assert.Len(t, feb, 2)

	months, err := repo.DistinctMonths(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-02", "2024-01"}, months)
}

func TestSQLiteStorages_DeleteByMonthKeepsOtherMonths(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteStorages(t).DeliveryRepository

	require.NoError(t, repo.AppendRecords(ctx,
		models.DeliveryRecord{Collaborator: "Ana", Task: "A", Status: models.OnTime, Department: models.Fiscal, ReferenceMonth: "2024-01", DeliveryDate: "01/01/2024", UploadedAt: time.Now()},
		models.DeliveryRecord{Collaborator: "Ana", Task: "B", Status: models.OnTime, Department: models.Fiscal, ReferenceMonth: "2024-01", DeliveryDate: "02/01/2024", UploadedAt: time.Now()},
		models.DeliveryRecord{Collaborator: "Caio", Task: "C", Status: models.OnTime, Department: models.Fiscal, ReferenceMonth: "2024-02", DeliveryDate: "01/02/2024", UploadedAt: time.Now()},
	))

	deleted, err := repo.DeleteByMonth(ctx, "2024-01")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	rest, err := repo.QueryByMonths(ctx)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "2024-02", rest[0].ReferenceMonth)

	deleted, err = repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestSQLiteStorages_DistinctCollaboratorsSkipsIgnored(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteStorages(t).DeliveryRepository

	const ignored = "Tecnologia e Inovação - Contas Contabilidade"
	for _, name := range []string{"Zeca", ignored, "Ana", "Zeca"} {
		require.NoError(t, repo.AppendRecords(ctx, models.DeliveryRecord{
			Collaborator: name, Task: "T", Status: models.OnTime, Department: models.Fiscal,
			ReferenceMonth: "2024-01", DeliveryDate: "01/01/2024", UploadedAt: time.Now(),
		}))
	}

	names, err := repo.DistinctCollaborators(ctx, ignored)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana", "Zeca"}, names)
}

func TestSQLiteStorages_ProfileUpsert(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteStorages(t).ProfileRepository

	_, err := repo.GetPasswordHash(ctx, models.ProfileAdmin)
	require.ErrorIs(t, err, ErrCredentialNotFound)

	require.NoError(t, repo.UpsertPasswordHash(ctx, models.ProfileAdmin, "first"))
	require.NoError(t, repo.UpsertPasswordHash(ctx, models.ProfileAdmin, "second"))

	hash, err := repo.GetPasswordHash(ctx, models.ProfileAdmin)
	require.NoError(t, err)
	assert.Equal(t, "second", hash)
}
