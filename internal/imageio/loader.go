package imageio

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"net/url"
	"os"
	"strings"

	_ "golang.org/x/image/webp" // WebP format support

	"github.com/disintegration/imaging"
	"github.com/genricoloni/musicard/internal/domain"
	"go.uber.org/zap"
)

// ErrNoSource is returned when asked to resolve an absent ImageSource
var ErrNoSource = errors.New("no image source")

// Loader resolves ImageSources from URLs, data URIs, paths or memory
type Loader struct {
	logger  *zap.Logger
	fetcher domain.Fetcher
}

// NewLoader creates a loader that downloads http(s) sources through fetcher
func NewLoader(logger *zap.Logger, fetcher domain.Fetcher) *Loader {
	return &Loader{
		logger:  logger,
		fetcher: fetcher,
	}
}

// Read returns the encoded payload behind src
func (l *Loader) Read(ctx context.Context, src domain.ImageSource) ([]byte, error) {
	switch src.Kind() {
	case domain.SourceURL:
		if l.fetcher == nil {
			return nil, fmt.Errorf("cannot fetch %s: no fetcher configured", src)
		}
		data, err := l.fetcher.Fetch(ctx, src.Ref())
		if err != nil {
			return nil, fmt.Errorf("failed to fetch image: %w", err)
		}
		return data, nil

	case domain.SourceDataURI:
		_, data, err := DecodeDataURI(src.Ref())
		if err != nil {
			return nil, err
		}
		return data, nil

	case domain.SourcePath:
		data, err := os.ReadFile(src.Ref())
		if err != nil {
			return nil, fmt.Errorf("failed to read image file: %w", err)
		}
		return data, nil

	case domain.SourceBytes:
		return src.Data(), nil

	default:
		return nil, ErrNoSource
	}
}

// Load decodes src into a bitmap
func (l *Loader) Load(ctx context.Context, src domain.ImageSource) (image.Image, error) {
	data, err := l.Read(ctx, src)
	if err != nil {
		return nil, err
	}

	img, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", src, err)
	}

	l.logger.Debug("Image loaded",
		zap.Stringer("source", src),
		zap.Int("w", img.Bounds().Dx()),
		zap.Int("h", img.Bounds().Dy()))
	return img, nil
}

// Decode turns an encoded payload into a bitmap. SVG documents are rasterized at
// their intrinsic size; raster formats go through imaging with EXIF orientation applied.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image data")
	}
	if IsSVG(data) {
		return RasterizeSVG(data)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to read image header: %w", err)
	}
	if err := checkSize(float64(cfg.Width), float64(cfg.Height)); err != nil {
		return nil, err
	}
	return imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
}

// IsSVG sniffs for an XML or <svg> prologue
func IsSVG(data []byte) bool {
	head := bytes.TrimSpace(data)
	if len(head) > 512 {
		head = head[:512]
	}
	if bytes.HasPrefix(head, []byte("<svg")) {
		return true
	}
	return bytes.HasPrefix(head, []byte("<?xml")) && bytes.Contains(head, []byte("<svg"))
}

// DecodeDataURI splits a data URI into its media type and payload
func DecodeDataURI(uri string) (string, []byte, error) {
	if !strings.HasPrefix(strings.ToLower(uri), "data:") {
		return "", nil, fmt.Errorf("not a data URI")
	}
	meta, payload, ok := strings.Cut(uri[len("data:"):], ",")
	if !ok {
		return "", nil, fmt.Errorf("malformed data URI: missing ','")
	}

	params := strings.Split(meta, ";")
	mediaType := strings.ToLower(strings.TrimSpace(params[0]))
	isBase64 := false
	for _, p := range params[1:] {
		if strings.EqualFold(strings.TrimSpace(p), "base64") {
			isBase64 = true
		}
	}

	if isBase64 {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return "", nil, fmt.Errorf("malformed data URI payload: %w", err)
		}
		return mediaType, data, nil
	}

	text, err := url.PathUnescape(payload)
	if err != nil {
		return "", nil, fmt.Errorf("malformed data URI payload: %w", err)
	}
	return mediaType, []byte(text), nil
}
