package domain

import (
	"context"
	"image"
	"time"

	"golang.org/x/image/font"
)

//go:generate mockgen -destination=mocks/domain_mock.go -package=mocks github.com/genricoloni/musicard/internal/domain Monitor,Fetcher,ImageLoader,ArtProcessor,CardRenderer,CardPublisher,Config

// Monitor defines the interface for monitoring media playback events
// Implementations should handle D-Bus/MPRIS communication
type Monitor interface {
	// Start begins monitoring for media events
	// It should block until context is cancelled or an error occurs
	Start(ctx context.Context) error

	// Stop gracefully stops the monitor
	Stop(ctx context.Context) error

	// Events returns a read-only channel that emits MediaMetadata
	// when media playback state changes
	Events() <-chan MediaMetadata
}

// Fetcher defines the interface for retrieving remote images
type Fetcher interface {
	// Fetch downloads image data from an http(s) URL
	// Returns the raw image bytes or an error
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// ImageLoader resolves image sources into bytes or bitmaps
type ImageLoader interface {
	// Read returns the encoded payload behind src
	Read(ctx context.Context, src ImageSource) ([]byte, error)

	// Load decodes src into a drawable bitmap (raster formats and SVG)
	Load(ctx context.Context, src ImageSource) (image.Image, error)
}

// FontCatalog hands out faces for registered logical font names
type FontCatalog interface {
	// Face creates a face for name at sizePx pixels. The caller closes it.
	Face(name string, sizePx float64) (font.Face, error)
}

// ArtProcessor prepares album art for the card
type ArtProcessor interface {
	// Thumbnail square-crops artwork to the thumbnail region
	Thumbnail(ctx context.Context, imageData []byte) ([]byte, error)

	// Backdrop produces a blurred panel background from artwork
	Backdrop(ctx context.Context, imageData []byte) ([]byte, error)
}

// CardRenderer renders a now-playing card
type CardRenderer interface {
	// Render composes the card and returns PNG bytes
	Render(ctx context.Context, opts CardOptions) ([]byte, error)
}

// CardPublisher hands a freshly written card to whatever displays it
type CardPublisher interface {
	Publish(ctx context.Context, cardPath string) error
}

// Config defines the interface for application configuration
type Config interface {
	// GetFontDirs returns the font search roots in priority order
	GetFontDirs() []string

	// GetOutputDir returns the directory for rendered cards
	GetOutputDir() string

	// GetBackgroundMode returns how watch mode fills the left panels ("flat" or "blur")
	GetBackgroundMode() string

	// GetFetchTimeout returns the HTTP timeout for remote images
	GetFetchTimeout() time.Duration

	// GetOnUpdate returns the command run after each card update, empty when disabled
	GetOnUpdate() string
}
