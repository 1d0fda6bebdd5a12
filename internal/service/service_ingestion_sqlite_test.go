// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-delivery-board/internal/config"
	"github.com/MKhiriev/go-delivery-board/internal/logger"
	"github.com/MKhiriev/go-delivery-board/internal/spreadsheet"
	"github.com/MKhiriev/go-delivery-board/internal/store"
	"github.com/MKhiriev/go-delivery-board/models"
)

func readUpload(t *testing.T, content string) models.Table {
	t.Helper()
	table, err := spreadsheet.ReadCSV(strings.NewReader(content))
	require.NoError(t, err)
	return table
}

func TestIngest_SQLiteQueryByMonths(t *testing.T) {
	ctx := context.Background()

	storages, err := store.NewStorages(ctx, config.Storage{DB: config.DB{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "board.db"),
	}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })
	repo := storages.DeliveryRepository

	svc := NewIngestionService(repo, testIngestConfig(models.ReplaceBatchMonths), nil, logger.Nop()).(*ingestionService)
	svc.ids = fixedID("batch-1")
	svc.now = func() time.Time { return testNow }

	first := readUpload(t, "\n"+
		"DATA DA ENTREGA;RESPONSAVEL ENTREGA;OBRIGACAO / TAREFA;STATUS\n"+
		"15/01/2024;Ana;Folha de pagamento;Entregue com atraso\n"+
		"2024;Carla;DCTF;ok\n"+
		"20/01/2024;Bruno;DCTF;ok\n"+
		"03/02/2024;Ana;DCTF;justificado\n")

	res, err := svc.Ingest(ctx, adminSession(), models.IngestRequest{FileName: "jan.csv", Table: first})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Written)
	assert.Equal(t, 1, res.DroppedInvalidDate)
	assert.Equal(t, []string{"2024-01", "2024-02"}, res.Months)

	jan, err := repo.QueryByMonths(ctx, "2024-01")
	require.NoError(t, err)
	require.Len(t, jan, 2)
	assert.NotZero(t, jan[0].ID)
	assert.True(t, testNow.Equal(jan[0].UploadedAt))
	assert.Equal(t, "Ana", jan[0].Collaborator)
	assert.Equal(t, "Folha de pagamento", jan[0].Task)
	assert.Equal(t, models.Late, jan[0].Status)
	assert.Equal(t, models.Personnel, jan[0].Department)
	assert.Equal(t, "15/01/2024", jan[0].DeliveryDate)
	assert.Equal(t, "Bruno", jan[1].Collaborator)
	assert.Equal(t, models.Fiscal, jan[1].Department)

	second := readUpload(t, "DATA DA ENTREGA,RESPONSAVEL ENTREGA,OBRIGACAO / TAREFA,STATUS\n"+
		"31/01/2024,Bruno,DCTF,ok\n")

	res, err = svc.Ingest(ctx, adminSession(), models.IngestRequest{FileName: "jan.csv", Table: second, Replace: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01"}, res.ReplacedMonths)

	jan, err = repo.QueryByMonths(ctx, "2024-01")
	require.NoError(t, err)
	require.Len(t, jan, 1)
	assert.Equal(t, "31/01/2024", jan[0].DeliveryDate)

	feb, err := repo.QueryByMonths(ctx, "2024-02")
	require.NoError(t, err)
	require.Len(t, feb, 1)
	assert.Equal(t, models.Justified, feb[0].Status)

	months, err := repo.DistinctMonths(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-02", "2024-01"}, months)
}
