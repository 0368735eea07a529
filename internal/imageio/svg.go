package imageio

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Limits on decoded bitmaps, applied to SVG and raster sources alike
const (
	MaxImageSide   = 8192
	MaxImagePixels = 32 << 20
)

// ErrImageTooLarge rejects sources whose decoded bitmap would exceed the limits
var ErrImageTooLarge = errors.New("image dimensions exceed limits")

// RasterizeSVG renders an SVG document onto a transparent canvas of its natural size:
// the root width and height when given in pixels, the viewBox size otherwise.
func RasterizeSVG(data []byte) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse svg: %w", err)
	}

	w, h := svgSize(data, icon.ViewBox.W, icon.ViewBox.H)
	if !(w > 0 && h > 0) {
		return nil, fmt.Errorf("svg has no intrinsic size: %vx%v", w, h)
	}
	if err := checkSize(w, h); err != nil {
		return nil, err
	}
	width := int(math.Ceil(w))
	height := int(math.Ceil(h))

	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

// checkSize enforces MaxImageSide and MaxImagePixels
func checkSize(w, h float64) error {
	if math.IsInf(w, 0) || math.IsInf(h, 0) || w > MaxImageSide || h > MaxImageSide ||
		math.Ceil(w)*math.Ceil(h) > MaxImagePixels {
		return fmt.Errorf("%w: %vx%v", ErrImageTooLarge, w, h)
	}
	return nil
}

// svgSize reads the root element's width and height. A missing side follows the
// viewBox aspect ratio; with neither side the viewBox size is used.
func svgSize(data []byte, vbW, vbH float64) (float64, float64) {
	w, h, ok := rootDimensions(data)
	switch {
	case w > 0 && h > 0:
		return w, h
	case !ok || vbW <= 0 || vbH <= 0:
		return vbW, vbH
	case w > 0:
		return w, w * vbH / vbW
	case h > 0:
		return h * vbW / vbH, h
	}
	return vbW, vbH
}

// rootDimensions returns the pixel width and height of the <svg> element. Zero means
// absent or not expressed in pixels.
func rootDimensions(data []byte) (float64, float64, bool) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = false
	for {
		tok, err := dec.Token()
		if err != nil {
			return 0, 0, false
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "svg" {
			return 0, 0, false
		}

		var w, h float64
		for _, a := range start.Attr {
			switch a.Name.Local {
			case "width":
				w = pixels(a.Value)
			case "height":
				h = pixels(a.Value)
			}
		}
		return w, h, true
	}
}

// pixels parses a length that is unitless or in px
func pixels(v string) float64 {
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || f <= 0 {
		return 0
	}
	return f
}
