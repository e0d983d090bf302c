package gateway

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaUploadCreatesObjectAndRecord(t *testing.T) {
	stores := NewStores(newTestBackend(t), testBaseURL)
	ctx := context.Background()

	blob := []byte("%PDF-1.4 report body")

	record, err := stores.Media.Upload(ctx, "report.pdf", blob, "cases")
	require.NoError(t, err)

	assert.NotZero(t, record.ID)
	assert.Equal(t, "report.pdf", record.OriginalName)
	assert.Equal(t, "cases", record.Folder)
	assert.True(t, strings.HasPrefix(record.Path, "cases/"), "object path starts with its folder")
	assert.True(t, strings.HasSuffix(record.Path, ".pdf"), "object path keeps the extension")
	assert.Equal(t, testBaseURL+MediaRoute+record.Path, record.URL)
	assert.Equal(t, "application/pdf", record.MimeType)
	assert.Equal(t, int64(len(blob)), record.Size)

	got, err := stores.Media.Open(record.Path)
	require.NoError(t, err)
	assert.Equal(t, blob, got)
}

func TestMediaUploadDefaultsFolder(t *testing.T) {
	stores := NewStores(newTestBackend(t), testBaseURL)

	record, err := stores.Media.Upload(context.Background(), "photo.png", []byte{1, 2, 3}, "")
	require.NoError(t, err)

	assert.Equal(t, DefaultFolder, record.Folder)
	assert.True(t, strings.HasPrefix(record.Path, DefaultFolder+"/"))
}

func TestMediaOpenMissingObject(t *testing.T) {
	stores := NewStores(newTestBackend(t), testBaseURL)

	_, err := stores.Media.Open("uploads/nope.png")
	assert.Error(t, err)
}

func TestMediaDeleteRemovesObjectAndRecord(t *testing.T) {
	stores := NewStores(newTestBackend(t), testBaseURL)
	ctx := context.Background()

	record, err := stores.Media.Upload(ctx, "photo.png", []byte{1, 2, 3}, "")
	require.NoError(t, err)

	require.NoError(t, stores.Media.Delete(ctx, record.ID))

	_, ok := stores.Media.Records().Get(ctx, record.ID)
	assert.False(t, ok, "record must be gone")

	_, err = stores.Media.Open(record.Path)
	assert.Error(t, err, "object must be gone")
}

func TestMediaDeleteMissingRecord(t *testing.T) {
	stores := NewStores(newTestBackend(t), testBaseURL)

	err := stores.Media.Delete(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
