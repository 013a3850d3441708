package helper

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/chai2010/webp"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnsmate_backend/internals/configs"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestConvertToWebPResizesWideImages(t *testing.T) {
	out, err := ConvertToWebP(bytes.NewReader(pngBytes(t, 2000, 100)), "wide.png", WebPOptions{MaxW: 1280, Quality: 75})
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, 64, cfg.Height)
}

func TestConvertToWebPKeepsSmallImages(t *testing.T) {
	out, err := ConvertToWebP(bytes.NewReader(pngBytes(t, 300, 200)), "small.png", WebPOptions{MaxW: 1280})
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Width)
}

func TestConvertToWebPRejectsNonImages(t *testing.T) {
	_, err := ConvertToWebP(strings.NewReader("just some text"), "notes.txt", DefaultWebPOptions())
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestBuildObjectKey(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	key := BuildObjectKey("/lectures/thumbnails/", "My Thumb.PNG", ".webp", now)

	assert.True(t, strings.HasPrefix(key, "lectures/thumbnails/my-thumb_20240501_093000_"), key)
	assert.True(t, strings.HasSuffix(key, ".webp"))
}

func TestMinIOPublicURLRoundTrip(t *testing.T) {
	cli, err := minio.New("localhost:9000", &minio.Options{Creds: credentials.NewStaticV4("ak", "sk", "")})
	require.NoError(t, err)

	st := newMinIOStorage(cli, configs.MinIOConfig{Endpoint: "localhost:9000", Bucket: "learnsmate"})
	url := st.PublicURL("lectures/a.webp")
	assert.Equal(t, "http://localhost:9000/learnsmate/lectures/a.webp", url)

	key, err := st.KeyFromPublicURL(url)
	require.NoError(t, err)
	assert.Equal(t, "lectures/a.webp", key)

	_, err = st.KeyFromPublicURL("https://elsewhere.example/a.webp")
	assert.Error(t, err)

	cdn := newMinIOStorage(cli, configs.MinIOConfig{Endpoint: "localhost:9000", Bucket: "learnsmate", PublicBase: "https://cdn.learnsmate.io/"})
	assert.Equal(t, "https://cdn.learnsmate.io/x.webp", cdn.PublicURL("x.webp"))
}

type memoryStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (m *memoryStorage) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = b
	return nil
}

func (m *memoryStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func (m *memoryStorage) PublicURL(key string) string { return "mem://" + key }

func (m *memoryStorage) KeyFromPublicURL(u string) (string, error) {
	return strings.TrimPrefix(u, "mem://"), nil
}

func fileHeader(t *testing.T, field, name string, data []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(10 << 20)
	require.NoError(t, err)
	return form.File[field][0]
}

func TestUploadImageAsWebPAndDelete(t *testing.T) {
	st := &memoryStorage{objects: map[string][]byte{}}
	fh := fileHeader(t, "image", "cover.png", pngBytes(t, 50, 50))

	url, err := UploadImageAsWebP(context.Background(), st, "lectures", fh, WebPOptions{MaxW: 1280})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "mem://lectures/cover_"))
	assert.Len(t, st.objects, 1)

	require.NoError(t, DeleteByPublicURL(context.Background(), st, url))
	assert.Empty(t, st.objects)
}
