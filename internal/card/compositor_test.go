package card

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"

	"github.com/genricoloni/musicard/internal/domain"
	"github.com/genricoloni/musicard/internal/fonts"
	"github.com/genricoloni/musicard/internal/fonts/fontstest"
	"github.com/genricoloni/musicard/internal/imageio"
	"github.com/genricoloni/musicard/internal/svgtemplate"
	"go.uber.org/zap"
)

func newTestCompositor(t *testing.T) *Compositor {
	t.Helper()
	catalog, err := fonts.NewCatalog(zap.NewNop(), []string{fontstest.WriteDir(t)})
	if err != nil {
		t.Fatalf("failed to build font catalog: %v", err)
	}
	return NewCompositor(zap.NewNop(), catalog, imageio.NewLoader(zap.NewNop(), nil))
}

func solidPNG(t *testing.T, w, h int, col color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, col)
		}
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
	return buf.Bytes()
}

func assertPixel(t *testing.T, img *image.NRGBA, x, y int, want color.NRGBA) {
	t.Helper()
	got := img.NRGBAAt(x, y)
	near := func(a, b uint8) bool {
		d := int(a) - int(b)
		return d >= -3 && d <= 3
	}
	if !near(got.R, want.R) || !near(got.G, want.G) || !near(got.B, want.B) || !near(got.A, want.A) {
		t.Errorf("pixel (%d,%d): expected %v, got %v", x, y, want, got)
	}
}

// oversizedSVG declares a canvas far beyond the decoder limits
var oversizedSVG = []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100000 100000"><rect width="1" height="1"/></svg>`)

var (
	orange    = color.NRGBA{R: 0xFF, G: 0x7A, B: 0x00, A: 0xFF}
	brown     = color.NRGBA{R: 0x5F, G: 0x2D, B: 0x00, A: 0xFF}
	nearBlack = color.NRGBA{R: 0x07, G: 0x07, B: 0x07, A: 0xFF}
	blue      = color.NRGBA{B: 0xFF, A: 0xFF}
	red       = color.NRGBA{R: 0xFF, A: 0xFF}
)

func TestCompositor_Render_Default(t *testing.T) {
	c := newTestCompositor(t)

	data, err := c.Render(context.Background(), domain.CardOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatal("expected PNG signature")
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode output: %v", err)
	}
	if cfg.Width != CanvasWidth || cfg.Height != CanvasHeight {
		t.Errorf("expected %dx%d, got %dx%d", CanvasWidth, CanvasHeight, cfg.Width, cfg.Height)
	}
}

func TestCompositor_RenderImage_DefaultLayout(t *testing.T) {
	c := newTestCompositor(t)

	img, err := c.RenderImage(context.Background(), domain.CardOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		x, y int
		want color.NRGBA
	}{
		{"Placeholder Background", ThumbnailOrigin.X + 100, 100, orange},
		{"Placeholder Glyph", ThumbnailOrigin.X + 419, 400, nearBlack},
		{"Top Panel", 1400, 300, nearBlack},
		{"Bottom Panel", 1400, 800, nearBlack},
		{"Gap Between Panels", 700, 540, color.NRGBA{}},
		{"Gap Before Thumbnail", 1590, 400, color.NRGBA{}},
		{"Track", ProgressBarOrigin.X + 800, ProgressBarOrigin.Y + 36, brown},
		{"Filled Track", ProgressBarOrigin.X + 20, ProgressBarOrigin.Y + 36, orange},
		{"Knob Centre", ProgressBarOrigin.X + 94, ProgressBarOrigin.Y + 38, orange},
		{"Knob Ring", ProgressBarOrigin.X + 129, ProgressBarOrigin.Y + 38, nearBlack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertPixel(t, img, tt.x, tt.y, tt.want)
		})
	}
}

func TestCompositor_RenderImage_DrawsLabels(t *testing.T) {
	c := newTestCompositor(t)

	img, err := c.RenderImage(context.Background(), domain.CardOptions{NameColor: "#00FF00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	green := 0
	for y := NameOrigin.Y - 120; y < NameOrigin.Y+20; y++ {
		for x := NameOrigin.X; x < NameOrigin.X+700; x++ {
			p := img.NRGBAAt(x, y)
			if p.G > 200 && p.R < 60 && p.B < 60 {
				green++
			}
		}
	}
	if green == 0 {
		t.Error("expected name text pixels near the name origin")
	}
}

func TestCompositor_RenderImage_ProgressClamp(t *testing.T) {
	c := newTestCompositor(t)
	ctx := context.Background()

	low, err := c.RenderImage(ctx, domain.CardOptions{Progress: domain.Float(5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	floor, err := c.RenderImage(ctx, domain.CardOptions{Progress: domain.Float(10)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(low.Pix, floor.Pix) {
		t.Error("progress below the floor should render like the floor")
	}

	full, err := c.RenderImage(ctx, domain.CardOptions{Progress: domain.Float(100)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertPixel(t, full, ProgressBarOrigin.X+800, ProgressBarOrigin.Y+36, orange)
}

func TestCompositor_RenderImage_Thumbnail(t *testing.T) {
	c := newTestCompositor(t)

	img, err := c.RenderImage(context.Background(), domain.CardOptions{
		ThumbnailImage: domain.SourceFromBytes(solidPNG(t, 100, 100, red)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Drawn at its natural size, the rest of the region stays empty
	assertPixel(t, img, ThumbnailOrigin.X+50, 50, red)
	assertPixel(t, img, ThumbnailOrigin.X+300, 300, color.NRGBA{})
}

func TestCompositor_RenderImage_SVGThumbnailUsesDeclaredSize(t *testing.T) {
	c := newTestCompositor(t)
	icon := `<svg xmlns="http://www.w3.org/2000/svg" width="400" height="400" viewBox="0 0 24 24">` +
		`<rect width="24" height="24" fill="#ff0000"/></svg>`

	img, err := c.RenderImage(context.Background(), domain.CardOptions{
		ThumbnailImage: domain.SourceFromString(svgtemplate.Generate(icon)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertPixel(t, img, ThumbnailOrigin.X+390, 390, red)
	assertPixel(t, img, ThumbnailOrigin.X+450, 450, color.NRGBA{})
}

func TestCompositor_RenderImage_TranslucentTextColour(t *testing.T) {
	c := newTestCompositor(t)

	img, err := c.RenderImage(context.Background(), domain.CardOptions{NameColor: "rgba(0, 255, 0, 0.5)"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tinted := 0
	for y := NameOrigin.Y - 120; y < NameOrigin.Y+20; y++ {
		for x := NameOrigin.X; x < NameOrigin.X+700; x++ {
			p := img.NRGBAAt(x, y)
			if p.G > 100 && p.R < 20 && p.B < 20 {
				tinted++
			}
			if p.R > 200 && p.G < 150 {
				t.Fatalf("name drawn in the default colour at (%d,%d): %v", x, y, p)
			}
		}
	}
	if tinted == 0 {
		t.Error("expected green name pixels")
	}
}

func TestCompositor_Render_ThumbnailErrors(t *testing.T) {
	c := newTestCompositor(t)

	tests := []struct {
		name   string
		source domain.ImageSource
	}{
		{"Undecodable Bytes", domain.SourceFromBytes([]byte("definitely not an image"))},
		{"Missing File", domain.SourceFromString("/nonexistent/cover.png")},
		{"Broken Data URI", domain.SourceFromString("data:image/png;base64,!!!")},
		{"Oversized SVG", domain.SourceFromBytes(oversizedSVG)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Render(context.Background(), domain.CardOptions{ThumbnailImage: tt.source})
			if !errors.Is(err, ErrThumbnail) {
				t.Errorf("expected ErrThumbnail, got %v", err)
			}
		})
	}
}

func TestCompositor_RenderImage_BackgroundImage(t *testing.T) {
	c := newTestCompositor(t)
	bg := domain.SourceFromBytes(solidPNG(t, 400, 300, blue))

	tests := []struct {
		name     string
		darkness float64
		want     color.NRGBA
	}{
		{"No Overlay", 0, blue},
		{"Full Overlay", 100, nearBlack},
		{"Half Overlay", 50, color.NRGBA{R: 0x03, G: 0x03, B: 0x83, A: 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := c.RenderImage(context.Background(), domain.CardOptions{
				BackgroundImage: bg,
				ImageDarkness:   domain.Float(tt.darkness),
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertPixel(t, img, 1400, 300, tt.want)
			assertPixel(t, img, 1400, 800, tt.want)
			assertPixel(t, img, 700, 540, color.NRGBA{})
		})
	}
}

func TestCompositor_RenderImage_BackgroundFallback(t *testing.T) {
	c := newTestCompositor(t)
	ctx := context.Background()

	plain, err := c.RenderImage(ctx, domain.CardOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sources := map[string]domain.ImageSource{
		"Undecodable Bytes": domain.SourceFromBytes([]byte{0x00, 0x01, 0x02}),
		"Missing File":      domain.SourceFromString("/nonexistent/background.jpg"),
		"Oversized SVG":     domain.SourceFromBytes(oversizedSVG),
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			img, err := c.RenderImage(ctx, domain.CardOptions{BackgroundImage: src})
			if err != nil {
				t.Fatalf("background failures must not surface, got %v", err)
			}
			if !bytes.Equal(img.Pix, plain.Pix) {
				t.Error("expected the same output as a render without a background image")
			}
		})
	}
}

func TestCompositor_Render_Concurrent(t *testing.T) {
	c := newTestCompositor(t)
	bg := domain.SourceFromBytes(solidPNG(t, 64, 64, blue))

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			opts := domain.CardOptions{Progress: domain.Float(float64(10 + i*10))}
			if i%2 == 0 {
				opts.BackgroundImage = bg
			}
			if _, err := c.Render(context.Background(), opts); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent render failed: %v", err)
	}
}

func TestCompositor_Render_InvalidColourFallsBack(t *testing.T) {
	c := newTestCompositor(t)

	img, err := c.RenderImage(context.Background(), domain.CardOptions{BackgroundColor: "nope"})
	if err != nil {
		t.Fatalf("invalid colours must not fail the render, got %v", err)
	}
	assertPixel(t, img, 1400, 300, nearBlack)
}
