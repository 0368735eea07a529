package processor

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/genricoloni/musicard/internal/card"
	"github.com/genricoloni/musicard/internal/imageio"
	"go.uber.org/zap"
)

const defaultBlurRadius = 15.0

// ProcessorConfig holds configuration for artwork processing
type ProcessorConfig struct {
	BlurRadius float64
}

// BlurProcessor turns raw album art into the card's thumbnail and blurred backdrop
type BlurProcessor struct {
	logger *zap.Logger
	config ProcessorConfig
}

// NewBlurProcessor creates a new blur-based artwork processor
func NewBlurProcessor(logger *zap.Logger) *BlurProcessor {
	return &BlurProcessor{
		logger: logger,
		config: ProcessorConfig{
			BlurRadius: defaultBlurRadius,
		},
	}
}

// Thumbnail center-crops the artwork to the square thumbnail region
func (p *BlurProcessor) Thumbnail(ctx context.Context, imageData []byte) ([]byte, error) {
	img, err := decode(imageData)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("Fitting thumbnail", zap.Int("size", card.ThumbnailSize))
	thumb := imageio.Cover(img, card.ThumbnailSize, card.ThumbnailSize)

	return p.encode(thumb)
}

// Backdrop fills the left panel area with the artwork and blurs it
func (p *BlurProcessor) Backdrop(ctx context.Context, imageData []byte) ([]byte, error) {
	img, err := decode(imageData)
	if err != nil {
		return nil, err
	}

	// Resize (Fill) to cover the panels and apply blur
	p.logger.Debug("Creating blurred backdrop", zap.Int("w", card.PanelWidth), zap.Int("h", card.CanvasHeight))
	background := imageio.Cover(img, card.PanelWidth, card.CanvasHeight)
	background = imaging.Blur(background, p.config.BlurRadius)

	return p.encode(background)
}

func decode(imageData []byte) (image.Image, error) {
	img, err := imageio.Decode(imageData)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	// Validate image dimensions to prevent division by zero
	bounds := img.Bounds()
	if bounds.Dy() == 0 || bounds.Dx() == 0 {
		return nil, fmt.Errorf("invalid image dimensions: %dx%d", bounds.Dx(), bounds.Dy())
	}
	return img, nil
}

func (p *BlurProcessor) encode(img image.Image) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}

	p.logger.Debug("Image processed successfully", zap.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}
