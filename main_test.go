package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kuesioner/config"
	"kuesioner/models"
	"kuesioner/store"
)

func TestOpenStorageBackends(t *testing.T) {
	ctx := context.Background()

	var c config.Configuration
	c.Storage.Backend = config.StorageMemory
	s, closeFn, err := openStorage(ctx, c, zap.NewNop())
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &store.MemoryStorage{}, s)

	c.Storage.Backend = config.StorageFile
	c.Storage.Path = t.TempDir()
	s, closeFn, err = openStorage(ctx, c, zap.NewNop())
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &store.FileStorage{}, s)

	c.Storage.Backend = "s3"
	_, _, err = openStorage(ctx, c, zap.NewNop())
	assert.Error(t, err)
}

func TestWriteReportHeader(t *testing.T) {
	var buf bytes.Buffer
	writeReportHeader(&buf, nil, true)
	assert.Equal(t, "Belum ada data, menampilkan data contoh.\n", buf.String())

	buf.Reset()
	records := []models.ResponseRecord{
		models.ResponseRecord{}.Stamped(time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)),
		{"A1": "Ya"},
	}
	writeReportHeader(&buf, records, false)
	assert.Contains(t, buf.String(), "2 responden, terakhir ")
	assert.Contains(t, buf.String(), "2026")
}
