package storage

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()

	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/files/")
	require.NoError(t, err)
	return s
}

func TestLocalStorageRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	path, err := s.Upload(ctx, strings.NewReader("image-bytes"), "EMP001/photo.png", "image/png")
	require.NoError(t, err)
	assert.Equal(t, "EMP001/photo.png", path)

	exists, err := s.Exists(ctx, path)
	require.NoError(t, err)
	assert.True(t, exists)

	reader, err := s.Download(ctx, path)
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), data)
}

func TestLocalStorageGetURL(t *testing.T) {
	s := newTestStorage(t)

	url, err := s.GetURL(context.Background(), "EMP001/photo.png", 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/files/EMP001/photo.png", url)
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.Upload(context.Background(), strings.NewReader("x"), "../outside.png", "image/png")
	assert.Error(t, err)
}

func TestLocalStorageDeleteMissingFile(t *testing.T) {
	s := newTestStorage(t)

	err := s.Delete(context.Background(), "EMP001/gone.png")
	assert.NoError(t, err)
}

func TestLocalStorageDownloadMissingFile(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.Download(context.Background(), "EMP001/gone.png")
	assert.ErrorContains(t, err, "file not found")
}
