// Package card composes the now-playing card image.
package card

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/genricoloni/musicard/internal/domain"
	"github.com/genricoloni/musicard/internal/imageio"
	"github.com/genricoloni/musicard/internal/svgtemplate"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/sync/errgroup"
)

// ErrThumbnail marks renders aborted because the thumbnail could not be loaded.
// Background image failures never surface; they fall back to flat panels.
var ErrThumbnail = errors.New("thumbnail image unusable")

// Compositor renders cards. It holds no per-render state and is safe for concurrent use.
type Compositor struct {
	logger *zap.Logger
	fonts  domain.FontCatalog
	loader domain.ImageLoader
}

// NewCompositor creates a compositor drawing text from fonts and images through loader
func NewCompositor(logger *zap.Logger, fonts domain.FontCatalog, loader domain.ImageLoader) *Compositor {
	return &Compositor{
		logger: logger,
		fonts:  fonts,
		loader: loader,
	}
}

// Render composes the card and encodes it as PNG
func (c *Compositor) Render(ctx context.Context, opts domain.CardOptions) ([]byte, error) {
	canvas, err := c.RenderImage(ctx, opts)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, canvas, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode card: %w", err)
	}

	c.logger.Debug("Card rendered", zap.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}

// RenderImage composes the card onto a fresh CanvasWidth x CanvasHeight canvas
func (c *Compositor) RenderImage(ctx context.Context, opts domain.CardOptions) (*image.NRGBA, error) {
	// 1. Defaults, clamps and truncation
	card, err := Normalize(opts)
	if err != nil {
		c.logger.Warn("Invalid card colours replaced by defaults", zap.Error(err))
	}

	// 2. Thumbnail (failures abort the render)
	thumbnail, err := c.thumbnail(ctx, card)
	if err != nil {
		return nil, err
	}

	// 3. Canvas
	canvas := image.NewNRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))

	// 4. Left panels
	if err := c.drawBackground(ctx, canvas, card); err != nil {
		return nil, err
	}

	// 5. Thumbnail at its own size
	drawAt(canvas, thumbnail, ThumbnailOrigin)

	// 6. Progress bar
	bar, err := c.rasterize(ctx, ProgressBarSVG(card))
	if err != nil {
		return nil, fmt.Errorf("failed to rasterize progress bar: %w", err)
	}
	drawAt(canvas, bar, ProgressBarOrigin)

	// 7. Labels
	if err := c.drawLabels(canvas, card); err != nil {
		return nil, err
	}

	return canvas, nil
}

func (c *Compositor) thumbnail(ctx context.Context, card Resolved) (image.Image, error) {
	if card.ThumbnailImage.IsZero() {
		img, err := c.rasterize(ctx, PlaceholderSVG(card.ProgressColor, card.BackgroundColor))
		if err != nil {
			return nil, fmt.Errorf("failed to rasterize placeholder: %w", err)
		}
		return img, nil
	}

	img, err := c.loader.Load(ctx, card.ThumbnailImage)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrThumbnail, err)
	}
	return img, nil
}

// layer is a bitmap placed on the canvas
type layer struct {
	img image.Image
	at  image.Point
}

func (c *Compositor) drawBackground(ctx context.Context, canvas *image.NRGBA, card Resolved) error {
	if !card.BackgroundImage.IsZero() {
		layers, err := c.backgroundLayers(ctx, card)
		if err == nil {
			for _, l := range layers {
				drawAt(canvas, l.img, l.at)
			}
			return nil
		}
		c.logger.Warn("Background image unusable, drawing flat panels",
			zap.Stringer("source", card.BackgroundImage),
			zap.Error(err))
	}

	flat, err := c.rasterize(ctx, BackgroundSVG(card.BackgroundColor))
	if err != nil {
		return fmt.Errorf("failed to rasterize background: %w", err)
	}
	drawAt(canvas, flat, image.Point{})
	return nil
}

// backgroundLayers builds the image panels and their overlay without touching the canvas,
// so a failure leaves nothing half drawn.
func (c *Compositor) backgroundLayers(ctx context.Context, card Resolved) ([]layer, error) {
	src, err := c.loader.Load(ctx, card.BackgroundImage)
	if err != nil {
		return nil, err
	}
	sheet := imageio.Cover(src, PanelWidth, CanvasHeight)

	layers := make([]layer, len(backgroundPanels), len(backgroundPanels)+1)
	var g errgroup.Group
	for i, p := range backgroundPanels {
		g.Go(func() error {
			cropped, err := imageio.Crop(sheet, p.crop)
			if err != nil {
				return fmt.Errorf("failed to crop %s panel: %w", p.name, err)
			}
			layers[i] = layer{img: cropped, at: p.at}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	overlay, err := c.rasterize(ctx, DarknessSVG(card.Overlay()))
	if err != nil {
		return nil, fmt.Errorf("failed to rasterize overlay: %w", err)
	}
	return append(layers, layer{img: overlay}), nil
}

// Label is one line of text drawn on the card
type Label struct {
	Text  string
	At    image.Point
	Font  string
	Size  float64
	Color svgtemplate.Color
}

// Labels lists the text drawn for card, in drawing order
func Labels(card Resolved) []Label {
	return []Label{
		{Text: card.Name, At: NameOrigin, Font: nameFont, Size: nameSize, Color: card.NameColor},
		{Text: card.Author, At: AuthorOrigin, Font: authorFont, Size: authorSize, Color: card.AuthorColor},
		{Text: card.StartTime, At: StartTimeOrigin, Font: timeFont, Size: timeSize, Color: card.TimeColor},
		{Text: card.EndTime, At: EndTimeOrigin, Font: timeFont, Size: timeSize, Color: card.TimeColor},
	}
}

type faceKey struct {
	name string
	size float64
}

func (c *Compositor) drawLabels(canvas *image.NRGBA, card Resolved) error {
	faces := make(map[faceKey]font.Face)
	defer func() {
		for _, f := range faces {
			_ = f.Close()
		}
	}()

	for _, l := range Labels(card) {
		key := faceKey{name: l.Font, size: l.Size}
		face, ok := faces[key]
		if !ok {
			var err error
			face, err = c.fonts.Face(l.Font, l.Size)
			if err != nil {
				return fmt.Errorf("failed to load font for label: %w", err)
			}
			faces[key] = face
		}

		// Dot is the left end of the baseline
		drawer := &font.Drawer{
			Dst:  canvas,
			Src:  image.NewUniform(l.Color.NRGBA()),
			Face: face,
			Dot:  fixed.P(l.At.X, l.At.Y),
		}
		drawer.DrawString(l.Text)
	}
	return nil
}

// rasterize turns a template into a bitmap through the same loader user images use
func (c *Compositor) rasterize(ctx context.Context, b *svgtemplate.Builder) (image.Image, error) {
	return c.loader.Load(ctx, domain.SourceFromString(b.DataURI()))
}

func drawAt(dst draw.Image, src image.Image, at image.Point) {
	b := src.Bounds()
	draw.Draw(dst, b.Sub(b.Min).Add(at), src, b.Min, draw.Over)
}
