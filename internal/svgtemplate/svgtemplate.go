// Package svgtemplate builds small vector snippets and encodes them as data URIs.
//
// Markup is produced through a typed Builder so that dimensions and colours are
// always formatted by this package and never spliced into the document as raw text.
package svgtemplate

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo/float"
	"github.com/srwiley/oksvg"
)

// DataURIPrefix starts every URI returned by Generate
const DataURIPrefix = "data:image/svg+xml;base64,"

// Generate encodes SVG markup as a base64 data URI. It does not validate the markup.
func Generate(markup string) string {
	return DataURIPrefix + base64.StdEncoding.EncodeToString([]byte(markup))
}

// Color is a paint value that has been parsed and normalised
type Color struct {
	c color.NRGBA
}

// ParseColor accepts any SVG paint colour: hex with or without alpha, rgb(), rgba(),
// transparent and the named colours
func ParseColor(s string) (Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case hasEmptyArg(v):
		return Color{}, fmt.Errorf("invalid color %q: empty component", s)
	case v == "transparent":
		return Color{}, nil
	case strings.HasPrefix(v, "#") && (len(v) == 5 || len(v) == 9):
		c, err := parseHexAlpha(v[1:])
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return c, nil
	case strings.HasPrefix(v, "rgba(") && strings.HasSuffix(v, ")"):
		c, err := parseRGBA(v[len("rgba(") : len(v)-1])
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return c, nil
	}

	c, err := oksvg.ParseSVGColor(v)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if c == nil {
		return Color{}, fmt.Errorf("invalid color %q: not a fill colour", s)
	}
	return Color{c: color.NRGBAModel.Convert(c).(color.NRGBA)}, nil
}

// hasEmptyArg reports a functional notation such as rgb(1,,3) with a blank argument
func hasEmptyArg(v string) bool {
	_, args, ok := strings.Cut(v, "(")
	if !ok {
		return false
	}
	for _, a := range strings.Split(strings.TrimSuffix(args, ")"), ",") {
		if strings.TrimSpace(a) == "" {
			return true
		}
	}
	return false
}

// parseHexAlpha reads RGBA or RRGGBBAA digits
func parseHexAlpha(digits string) (Color, error) {
	if len(digits) == 4 {
		digits = string([]byte{
			digits[0], digits[0], digits[1], digits[1],
			digits[2], digits[2], digits[3], digits[3],
		})
	}
	r, g, b, err := oksvg.ParseSVGColorNum(digits[:6])
	if err != nil {
		return Color{}, err
	}
	a, err := strconv.ParseUint(digits[6:], 16, 8)
	if err != nil {
		return Color{}, err
	}
	return Color{c: color.NRGBA{R: r, G: g, B: b, A: uint8(a)}}, nil
}

// parseRGBA reads "r, g, b, a" where a is a fraction or a percentage
func parseRGBA(args string) (Color, error) {
	vals := strings.Split(args, ",")
	if len(vals) != 4 {
		return Color{}, fmt.Errorf("rgba needs 4 values, got %d", len(vals))
	}
	rgb, err := oksvg.ParseSVGColor("rgb(" + strings.Join(vals[:3], ",") + ")")
	if err != nil {
		return Color{}, err
	}

	alpha := strings.TrimSpace(vals[3])
	scale := 1.0
	if strings.HasSuffix(alpha, "%") {
		alpha = strings.TrimSuffix(alpha, "%")
		scale = 100
	}
	a, err := strconv.ParseFloat(alpha, 64)
	if err != nil {
		return Color{}, fmt.Errorf("invalid alpha %q: %w", vals[3], err)
	}

	c := color.NRGBAModel.Convert(rgb).(color.NRGBA)
	c.A = uint8(math.Round(unit(a/scale) * 0xff))
	return Color{c: c}, nil
}

// MustColor is ParseColor for compile-time constants
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGB builds an opaque colour
func RGB(r, g, b uint8) Color {
	return Color{c: color.NRGBA{R: r, G: g, B: b, A: 0xff}}
}

// Hex returns the colour as #rrggbb, without alpha
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.c.R, c.c.G, c.c.B)
}

// Opacity returns the alpha channel as a fraction
func (c Color) Opacity() float64 {
	return float64(c.c.A) / 0xff
}

// NRGBA returns the colour for raster drawing
func (c Color) NRGBA() color.NRGBA {
	return c.c
}

// Attr is a presentation attribute accepted by Builder shapes
type Attr struct {
	s string
}

// Fill paints the shape interior
func Fill(c Color) Attr {
	return FillWithOpacity(c, 1)
}

// FillWithOpacity paints the shape interior with the colour's own alpha multiplied by
// opacity, written as a single fill-opacity. opacity is clamped to [0,1].
func FillWithOpacity(c Color, opacity float64) Attr {
	alpha := c.Opacity() * unit(opacity)
	if alpha == 1 {
		return Attr{s: fmt.Sprintf(`fill="%s"`, c.Hex())}
	}
	return Attr{s: fmt.Sprintf(`fill="%s" fill-opacity="%s"`, c.Hex(), Num(alpha))}
}

func unit(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Stroke outlines the shape
func Stroke(c Color, width float64) Attr {
	return Attr{s: fmt.Sprintf(`stroke="%s" stroke-width="%s"`, c.Hex(), Num(width))}
}

// Num formats a coordinate with the shortest exact representation
func Num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Builder accumulates one SVG document
type Builder struct {
	buf    bytes.Buffer
	canvas *svg.SVG
	width  float64
	height float64
	ended  bool
}

// New starts a document of the given size with a matching viewBox
func New(width, height float64) *Builder {
	b := &Builder{width: width, height: height}
	b.canvas = svg.New(&b.buf)
	b.canvas.Start(width, height, fmt.Sprintf(`viewBox="0 0 %s %s"`, Num(width), Num(height)))
	return b
}

// Size returns the document dimensions
func (b *Builder) Size() (float64, float64) {
	return b.width, b.height
}

// Rect adds an axis-aligned rectangle
func (b *Builder) Rect(x, y, w, h float64, attrs ...Attr) *Builder {
	b.canvas.Rect(x, y, w, h, strs(attrs)...)
	return b
}

// RoundRect adds a rectangle whose corners are rounded with radius r
func (b *Builder) RoundRect(x, y, w, h, r float64, attrs ...Attr) *Builder {
	b.canvas.Roundrect(x, y, w, h, r, r, strs(attrs)...)
	return b
}

// Circle adds a circle centred on (cx, cy)
func (b *Builder) Circle(cx, cy, r float64, attrs ...Attr) *Builder {
	b.canvas.Circle(cx, cy, r, strs(attrs)...)
	return b
}

// Path adds a path. d must come from trusted code, it is written verbatim.
func (b *Builder) Path(d string, attrs ...Attr) *Builder {
	b.canvas.Path(d, strs(attrs)...)
	return b
}

// Bytes closes the document and returns the markup
func (b *Builder) Bytes() []byte {
	if !b.ended {
		b.canvas.End()
		b.ended = true
	}
	return b.buf.Bytes()
}

// String returns the markup
func (b *Builder) String() string {
	return string(b.Bytes())
}

// DataURI returns the finished document as a data URI
func (b *Builder) DataURI() string {
	return Generate(b.String())
}

func strs(attrs []Attr) []string {
	out := make([]string, 0, len(attrs))
	for _, a := range attrs {
		if a.s != "" {
			out = append(out, a.s)
		}
	}
	return out
}
