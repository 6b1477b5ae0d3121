package filestorage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStorage(root, "http://localhost:8000/media/")
	require.NoError(t, err)

	ctx := context.Background()
	url, err := store.Save(ctx, "avatars/a.png", strings.NewReader("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/media/avatars/a.png", url)

	data, err := os.ReadFile(filepath.Join(root, "avatars", "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, store.Delete(ctx, url))
	_, err = os.Stat(filepath.Join(root, "avatars", "a.png"))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, store.Delete(ctx, url), "deleting twice is a no-op")
	assert.NoError(t, store.Delete(ctx, ""))
}

func TestLocalStorage_StaysInsideRoot(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStorage(filepath.Join(root, "media"), "/media")
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "../../escape.txt", strings.NewReader("x"), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "/media/escape.txt", url)
	assert.FileExists(t, filepath.Join(root, "media", "escape.txt"))

	_, err = store.Save(context.Background(), "", strings.NewReader("x"), "text/plain")
	assert.Error(t, err)
}

func TestOSSPublicURL(t *testing.T) {
	assert.Equal(t, "https://avatars.oss-ap-southeast-1.aliyuncs.com",
		ossPublicURL(OSSConfig{Endpoint: "https://oss-ap-southeast-1.aliyuncs.com", Bucket: "avatars"}))
	assert.Equal(t, "https://avatars.oss-ap-southeast-1.aliyuncs.com",
		ossPublicURL(OSSConfig{Endpoint: "oss-ap-southeast-1.aliyuncs.com", Bucket: "avatars"}))
	assert.Equal(t, "https://cdn.example", ossPublicURL(OSSConfig{PublicURL: "https://cdn.example/"}))
}
