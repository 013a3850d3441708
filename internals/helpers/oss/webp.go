package helper

import (
	"bytes"
	"image"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"learnsmate_backend/internals/configs"
)

var ErrUnsupportedImage = errors.New("unsupported image format (use jpg, png or webp)")

/* =======================================================================
   WebP options
======================================================================= */

type WebPOptions struct {
	MaxW     int     // resize keeping aspect when wider than this
	Quality  float32 // lossy quality
	Lossless bool
}

func DefaultWebPOptions() WebPOptions {
	return WebPOptions{
		MaxW:    configs.GetEnvInt("IMAGE_WEBP_MAX_W", 1280),
		Quality: float32(configs.GetEnvInt("IMAGE_WEBP_QUALITY", 80)),
	}
}

/* =======================================================================
   Decode (jpeg/png/gif/webp) with MIME sniffing
======================================================================= */

func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, errors.New("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "jpeg"), strings.Contains(ct, "png"), strings.Contains(ct, "gif"):
		return imaging.Decode(bytes.NewReader(all), imaging.AutoOrientation(true))
	}

	// fallback by extension
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".webp":
		return webp.Decode(bytes.NewReader(all))
	case ".jpg", ".jpeg", ".png", ".gif":
		return imaging.Decode(bytes.NewReader(all), imaging.AutoOrientation(true))
	}
	return nil, ErrUnsupportedImage
}

/* =======================================================================
   Convert
======================================================================= */

// ConvertToWebP reads an image, downsizes it to opt.MaxW and re-encodes it as WebP.
func ConvertToWebP(r io.Reader, filename string, opt WebPOptions) ([]byte, error) {
	all, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read image")
	}
	img, err := decodeImage(all, filename)
	if err != nil {
		if errors.Is(err, ErrUnsupportedImage) {
			return nil, err
		}
		return nil, errors.Wrap(ErrUnsupportedImage, err.Error())
	}

	if opt.MaxW > 0 && img.Bounds().Dx() > opt.MaxW {
		img = imaging.Resize(img, opt.MaxW, 0, imaging.Lanczos)
	}

	q := opt.Quality
	if q <= 0 {
		q = 80
	}
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: opt.Lossless, Quality: q}); err != nil {
		return nil, errors.Wrap(err, "encode webp")
	}
	return buf.Bytes(), nil
}
