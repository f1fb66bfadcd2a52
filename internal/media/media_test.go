package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/infosecwire/newsroom-api/internal/config"
)

// pngHeader is enough for content sniffing
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func TestService_DataURL(t *testing.T) {
	svc := NewService(DataURL{}, 0)
	assert.Equal(t, int64(DefaultMaxSize), svc.MaxSize())

	url, err := svc.Store(context.Background(), "logo.png", pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(pngHeader), url)
}

func TestService_Rejects(t *testing.T) {
	svc := NewService(DataURL{}, 64)

	_, err := svc.Store(context.Background(), "empty.png", nil)
	require.ErrorIs(t, err, ErrEmpty)

	big := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 64)...)
	_, err = svc.Store(context.Background(), "big.png", big)
	require.ErrorIs(t, err, ErrTooLarge)

	_, err = svc.Store(context.Background(), "notes.txt", []byte("plain text, not an image"))
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestS3_UploadToEndpoint(t *testing.T) {
	var (
		mu         sync.Mutex
		gotMethod  string
		gotPath    string
		gotType    string
		gotAuthHdr string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		gotMethod, gotPath, gotType = r.Method, r.URL.Path, r.Header.Get("Content-Type")
		gotAuthHdr = r.Header.Get("Authorization")
		mu.Unlock()
		w.Header().Set("ETag", `"abc"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	u, err := NewS3(context.Background(), appconfig.MediaConfig{
		Bucket:    "newsroom",
		Region:    "us-east-1",
		Endpoint:  srv.URL,
		AccessKey: "minio",
		SecretKey: "minio-secret",
	})
	require.NoError(t, err)

	svc := NewService(u, 0)
	url, err := svc.Store(context.Background(), "Cover.PNG", pngHeader)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.True(t, strings.HasPrefix(gotPath, "/newsroom/media/"), gotPath)
	assert.True(t, strings.HasSuffix(gotPath, ".png"), gotPath)
	assert.Equal(t, "image/png", gotType)
	assert.Contains(t, gotAuthHdr, "minio/")

	assert.True(t, strings.HasPrefix(url, srv.URL+"/newsroom/media/"), url)
	assert.True(t, strings.HasSuffix(url, gotPath[len("/newsroom"):]))
}

func TestNewS3_PublicURL(t *testing.T) {
	u, err := NewS3(context.Background(), appconfig.MediaConfig{
		Bucket:    "assets",
		Region:    "eu-west-1",
		AccessKey: "k",
		SecretKey: "s",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://assets.s3.eu-west-1.amazonaws.com", u.publicURL)

	u, err = NewS3(context.Background(), appconfig.MediaConfig{
		Bucket:    "assets",
		Region:    "eu-west-1",
		AccessKey: "k",
		SecretKey: "s",
		PublicURL: "https://cdn.example.com/",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com", u.publicURL)
}
