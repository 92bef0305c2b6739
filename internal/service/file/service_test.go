package file

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	files   map[string][]byte
	deleted []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: make(map[string][]byte)}
}

func (f *fakeStorage) Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	f.files[path] = data
	return path, nil
}

func (f *fakeStorage) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	data, ok := f.files[path]
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeStorage) Delete(ctx context.Context, path string) error {
	delete(f.files, path)
	f.deleted = append(f.deleted, path)
	return nil
}

func (f *fakeStorage) GetURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "http://localhost:8080/files/" + path, nil
}

func (f *fakeStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := f.files[path]
	return ok, nil
}

func TestSavePhoto(t *testing.T) {
	store := newFakeStorage()
	svc := NewFileService(store)

	path, err := svc.SavePhoto(context.Background(), "EMP001", "selfie.JPG", strings.NewReader("image-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, "EMP001/"))
	assert.True(t, strings.HasSuffix(path, ".jpg"))
	assert.Equal(t, []byte("image-bytes"), store.files[path])
}

func TestSavePhotoRejectsUnsupportedType(t *testing.T) {
	store := newFakeStorage()
	svc := NewFileService(store)

	_, err := svc.SavePhoto(context.Background(), "EMP001", "malware.exe", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
	assert.Empty(t, store.files)
}

func TestGetPhotoContentType(t *testing.T) {
	store := newFakeStorage()
	store.files["EMP001/photo.png"] = []byte("png-bytes")
	svc := NewFileService(store)

	reader, contentType, err := svc.GetPhoto(context.Background(), "EMP001/photo.png")
	require.NoError(t, err)
	defer reader.Close()

	assert.Equal(t, "image/png", contentType)
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestPhotoURL(t *testing.T) {
	store := newFakeStorage()
	svc := NewFileService(store)

	url, err := svc.PhotoURL(context.Background(), "EMP001/photo.png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/files/EMP001/photo.png", url)
}

func TestDeletePhoto(t *testing.T) {
	store := newFakeStorage()
	store.files["EMP001/photo.png"] = []byte("png-bytes")
	svc := NewFileService(store)

	err := svc.DeletePhoto(context.Background(), "EMP001/photo.png")
	require.NoError(t, err)
	assert.NotContains(t, store.files, "EMP001/photo.png")
}

func TestDeletePhotoSkipsMissingFile(t *testing.T) {
	store := newFakeStorage()
	svc := NewFileService(store)

	err := svc.DeletePhoto(context.Background(), "EMP001/gone.png")
	require.NoError(t, err)
	assert.Empty(t, store.deleted)
}
