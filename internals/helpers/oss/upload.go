package helper

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	helper "learnsmate_backend/internals/helpers"
	"learnsmate_backend/internals/logger"
)

// UploadImageAsWebP converts an uploaded image to WebP and stores it under dir.
// It returns the public URL of the stored object.
func UploadImageAsWebP(ctx context.Context, st Storage, dir string, fh *multipart.FileHeader, opt WebPOptions) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "file is required")
	}
	if st == nil {
		return "", fiber.NewError(fiber.StatusServiceUnavailable, "object storage is not configured")
	}
	src, err := fh.Open()
	if err != nil {
		return "", errors.Wrap(err, "open upload")
	}
	defer src.Close()

	data, err := ConvertToWebP(src, fh.Filename, opt)
	if err != nil {
		if errors.Is(err, ErrUnsupportedImage) {
			return "", fiber.NewError(fiber.StatusUnsupportedMediaType, ErrUnsupportedImage.Error())
		}
		return "", err
	}

	key := BuildObjectKey(dir, fh.Filename, ".webp", time.Now())
	if err := st.Put(ctx, key, bytes.NewReader(data), int64(len(data)), "image/webp"); err != nil {
		logger.Log.WithError(err).WithField("key", key).Error("[MINIO] upload failed")
		return "", fiber.NewError(fiber.StatusBadGateway, "failed to upload image")
	}
	return st.PublicURL(key), nil
}

// DeleteByPublicURL removes a previously uploaded object. Foreign URLs are ignored.
func DeleteByPublicURL(ctx context.Context, st Storage, publicURL string) error {
	if st == nil || strings.TrimSpace(publicURL) == "" {
		return nil
	}
	key, err := st.KeyFromPublicURL(publicURL)
	if err != nil {
		return nil
	}
	return st.Delete(ctx, key)
}

// BuildObjectKey returns dir/<slug>_<yyyymmdd_hhmmss>_<rand><ext>.
func BuildObjectKey(dir, filename, ext string, now time.Time) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	name := fmt.Sprintf("%s_%s_%s%s", helper.Slugify(base, 60), now.Format("20060102_150405"), randHex(3), ext)
	dir = strings.Trim(dir, "/")
	if dir == "" {
		return name
	}
	return dir + "/" + name
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
