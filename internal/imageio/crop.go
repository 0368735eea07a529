// Package imageio decodes card images and cuts rounded panels out of them.
package imageio

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/genricoloni/musicard/internal/svgtemplate"
)

// CropOptions describes a rounded crop window.
// X and Y shift the source relative to the window, so (0,-170) shows the source from row 170.
type CropOptions struct {
	X            int
	Y            int
	Width        int
	Height       int
	BorderRadius float64
}

// Crop cuts a Width x Height window out of src with rounded corners.
// The window origin (-X,-Y) is clamped so it never leaves the source; pixels the source
// cannot cover stay transparent.
func Crop(src image.Image, opts CropOptions) (*image.NRGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid crop size: %dx%d", opts.Width, opts.Height)
	}

	bounds := src.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("invalid image dimensions: %dx%d", bounds.Dx(), bounds.Dy())
	}

	origin := image.Pt(
		clamp(-opts.X, 0, bounds.Dx()-opts.Width),
		clamp(-opts.Y, 0, bounds.Dy()-opts.Height),
	)

	window := image.NewNRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(window, window.Bounds(), src, bounds.Min.Add(origin), draw.Src)

	if opts.BorderRadius <= 0 {
		return window, nil
	}

	mask, err := roundedMask(opts.Width, opts.Height, opts.BorderRadius)
	if err != nil {
		return nil, err
	}

	out := image.NewNRGBA(window.Bounds())
	draw.DrawMask(out, out.Bounds(), window, image.Point{}, mask, image.Point{}, draw.Src)
	return out, nil
}

// Cover scales src to fill w x h and crops the overflow around the centre
func Cover(src image.Image, w, h int) *image.NRGBA {
	return imaging.Fill(src, w, h, imaging.Center, imaging.Lanczos)
}

func roundedMask(w, h int, radius float64) (image.Image, error) {
	markup := svgtemplate.New(float64(w), float64(h)).
		RoundRect(0, 0, float64(w), float64(h), radius, svgtemplate.Fill(svgtemplate.RGB(0xff, 0xff, 0xff))).
		Bytes()

	mask, err := RasterizeSVG(markup)
	if err != nil {
		return nil, fmt.Errorf("failed to build rounded mask: %w", err)
	}
	return mask, nil
}

// clamp limits v to [lo, hi]; a negative hi collapses to lo
func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
