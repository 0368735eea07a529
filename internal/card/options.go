package card

import (
	"errors"
	"fmt"
	"math"

	"github.com/genricoloni/musicard/internal/domain"
	"github.com/genricoloni/musicard/internal/svgtemplate"
)

const (
	DefaultProgress      = 10.0
	DefaultImageDarkness = 10.0
	DefaultName          = "Musicard"
	DefaultAuthor        = "By Unburn"
	DefaultTime          = "0:00"

	DefaultProgressBarColor = "#5F2D00"
	DefaultProgressColor    = "#FF7A00"
	DefaultBackgroundColor  = "#070707"
	DefaultNameColor        = "#FF7A00"
	DefaultAuthorColor      = "#FFFFFF"
	DefaultTimeColor        = "#FFFFFF"

	MinProgress = 10.0
	MaxProgress = 100.0

	// MaxLabelRunes is the longest name or author drawn before truncation
	MaxLabelRunes = 18
	ellipsis      = "..."
)

// overlayColor tints background images under the darkness overlay
var overlayColor = svgtemplate.MustColor("#070707")

// Resolved holds CardOptions after defaults, clamps and truncation
type Resolved struct {
	Progress      float64
	ImageDarkness float64

	Name      string
	Author    string
	StartTime string
	EndTime   string

	ProgressBarColor svgtemplate.Color
	ProgressColor    svgtemplate.Color
	BackgroundColor  svgtemplate.Color
	NameColor        svgtemplate.Color
	AuthorColor      svgtemplate.Color
	TimeColor        svgtemplate.Color

	ThumbnailImage  domain.ImageSource
	BackgroundImage domain.ImageSource
}

// Normalize merges opts over the defaults. Unparseable colours are replaced by the
// field default; the returned error lists them but the Resolved value is always usable.
func Normalize(opts domain.CardOptions) (Resolved, error) {
	var errs []error
	colour := func(field, value, fallback string) svgtemplate.Color {
		if value == "" {
			return svgtemplate.MustColor(fallback)
		}
		c, err := svgtemplate.ParseColor(value)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
			return svgtemplate.MustColor(fallback)
		}
		return c
	}

	r := Resolved{
		Progress:      clamp(floatOr(opts.Progress, DefaultProgress), MinProgress, MaxProgress),
		ImageDarkness: clamp(floatOr(opts.ImageDarkness, DefaultImageDarkness), 0, 100),

		Name:      Truncate(stringOr(opts.Name, DefaultName)),
		Author:    Truncate(stringOr(opts.Author, DefaultAuthor)),
		StartTime: stringOr(opts.StartTime, DefaultTime),
		EndTime:   stringOr(opts.EndTime, DefaultTime),

		ProgressBarColor: colour("progressBarColor", opts.ProgressBarColor, DefaultProgressBarColor),
		ProgressColor:    colour("progressColor", opts.ProgressColor, DefaultProgressColor),
		BackgroundColor:  colour("backgroundColor", opts.BackgroundColor, DefaultBackgroundColor),
		NameColor:        colour("nameColor", opts.NameColor, DefaultNameColor),
		AuthorColor:      colour("authorColor", opts.AuthorColor, DefaultAuthorColor),
		TimeColor:        colour("timeColor", opts.TimeColor, DefaultTimeColor),

		ThumbnailImage:  opts.ThumbnailImage,
		BackgroundImage: opts.BackgroundImage,
	}

	return r, errors.Join(errs...)
}

// Truncate keeps the first MaxLabelRunes characters and appends "..." when s is longer
func Truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxLabelRunes {
		return s
	}
	return string(runes[:MaxLabelRunes]) + ellipsis
}

// Overlay returns the darkness overlay opacity as a fraction
func (r Resolved) Overlay() float64 {
	return r.ImageDarkness / 100
}

// Completed is the filled width of the progress track
func (r Resolved) Completed() float64 {
	return CompletedWidth(r.Progress)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}

func floatOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

// stringOr treats an empty string as unset
func stringOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
