package imagex

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

var ErrUnsupportedFormat = errors.New("formato de imagem não suportado (use jpg/png/webp)")

type WebPOptions struct {
	MaxW     int
	MaxH     int
	Quality  float32
	Lossless bool
}

// BackgroundOptions fits auth-screen backgrounds.
var BackgroundOptions = WebPOptions{MaxW: 1920, MaxH: 1080, Quality: 80}

/* =======================================================================
   Decode (jpeg/png/webp) with MIME sniffing
======================================================================= */

func Decode(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	}

	// fallback by extension
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(all))
	case ".png":
		return png.Decode(bytes.NewReader(all))
	case ".webp":
		return webp.Decode(bytes.NewReader(all))
	default:
		return nil, ErrUnsupportedFormat
	}
}

// Downscale keeps the aspect ratio and never upscales.
func Downscale(src image.Image, maxW, maxH int) image.Image {
	if maxW <= 0 && maxH <= 0 {
		return src
	}
	b := src.Bounds()
	if (maxW <= 0 || b.Dx() <= maxW) && (maxH <= 0 || b.Dy() <= maxH) {
		return src
	}
	if maxW <= 0 {
		maxW = b.Dx()
	}
	if maxH <= 0 {
		maxH = b.Dy()
	}
	return imaging.Fit(src, maxW, maxH, imaging.CatmullRom)
}

func Encode(img image.Image, opt WebPOptions) ([]byte, error) {
	buf := new(bytes.Buffer)
	q := opt.Quality
	if q <= 0 {
		q = 80
	}
	if err := webp.Encode(buf, img, &webp.Options{Lossless: opt.Lossless, Quality: q}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ConvertToWebP reads r, decodes it, downscales and re-encodes as webp.
func ConvertToWebP(r io.Reader, filename string, opt WebPOptions) ([]byte, error) {
	all, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	img, err := Decode(all, filename)
	if err != nil {
		return nil, err
	}
	return Encode(Downscale(img, opt.MaxW, opt.MaxH), opt)
}
