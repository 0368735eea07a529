package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/genricoloni/musicard/internal/domain"
	"go.uber.org/zap"
)

const (
	// OutputFilename is the card written into the output directory on every track change
	OutputFilename = "now_playing.png"

	BackgroundModeFlat = "flat"
	BackgroundModeBlur = "blur"

	defaultDebounce = 500 * time.Millisecond
)

// Engine turns player events into rendered cards on disk.
// It listens to media events, loads artwork, renders the card, writes it out and publishes it.
type Engine struct {
	logger    *zap.Logger
	cfg       domain.Config
	monitor   domain.Monitor
	loader    domain.ImageLoader
	processor domain.ArtProcessor
	renderer  domain.CardRenderer
	publisher domain.CardPublisher
	debounce  time.Duration

	cancel context.CancelFunc
	done   chan struct{}
	mu     sync.Mutex
}

// NewEngine creates a new orchestration engine
func NewEngine(
	logger *zap.Logger,
	cfg domain.Config,
	mon domain.Monitor,
	loader domain.ImageLoader,
	proc domain.ArtProcessor,
	renderer domain.CardRenderer,
	publisher domain.CardPublisher,
) *Engine {
	return &Engine{
		logger:    logger,
		cfg:       cfg,
		monitor:   mon,
		loader:    loader,
		processor: proc,
		renderer:  renderer,
		publisher: publisher,
		debounce:  defaultDebounce,
	}
}

// Start launches the event loop in a goroutine and returns immediately.
// The loop outlives ctx, which only bounds startup; Stop ends it.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cancel != nil {
		return nil
	}

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	e.cancel = cancel
	e.done = make(chan struct{})

	e.logger.Info("Engine starting",
		zap.String("outputDir", e.cfg.GetOutputDir()),
		zap.String("backgroundMode", e.cfg.GetBackgroundMode()))

	go func() {
		defer close(e.done)
		e.runLoop(loopCtx)
	}()
	return nil
}

// runLoop renders only the last event of a burst, so skipping through tracks renders once
func (e *Engine) runLoop(ctx context.Context) {
	events := e.monitor.Events()

	timer := time.NewTimer(e.debounce)
	timer.Stop()

	var pendingMeta *domain.MediaMetadata

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("Engine loop stopped")
			return

		case meta, ok := <-events:
			if !ok {
				e.logger.Info("Monitor events channel closed")
				return
			}
			e.logger.Debug("Event received, debouncing...",
				zap.String("title", meta.Title),
				zap.String("artist", meta.Artist))

			pendingMeta = &meta
			timer.Reset(e.debounce)

		case <-timer.C:
			if pendingMeta != nil {
				if _, err := e.processMetadata(ctx, *pendingMeta); err != nil {
					e.logger.Error("Failed to update card", zap.Error(err))
				}
				pendingMeta = nil
			}
		}
	}
}

// processMetadata renders and writes the card for one track. It returns the written
// path, or "" when the event does not warrant a new card.
func (e *Engine) processMetadata(ctx context.Context, meta domain.MediaMetadata) (string, error) {
	if meta.Status != domain.StatusPlaying {
		e.logger.Info("Music paused or stopped, skipping card update",
			zap.String("status", string(meta.Status)))
		return "", nil
	}

	e.logger.Info("Rendering card",
		zap.String("track", meta.Title),
		zap.String("artist", meta.Artist),
		zap.String("album", meta.Album))

	opts := BuildOptions(meta)
	e.attachArtwork(ctx, meta, &opts)

	card, err := e.renderer.Render(ctx, opts)
	if err != nil {
		return "", fmt.Errorf("failed to render card: %w", err)
	}

	path, err := writeFileAtomic(e.cfg.GetOutputDir(), OutputFilename, card)
	if err != nil {
		return "", err
	}

	e.logger.Info("Card updated successfully",
		zap.String("path", path),
		zap.Int("size", len(card)))

	// The card on disk is already current, a failing hook only loses the notification
	if err := e.publisher.Publish(ctx, path); err != nil {
		e.logger.Warn("Failed to publish card", zap.Error(err))
	}
	return path, nil
}

// attachArtwork fills the image sources from the track's artwork.
// Artwork problems degrade to the placeholder thumbnail and flat panels.
func (e *Engine) attachArtwork(ctx context.Context, meta domain.MediaMetadata, opts *domain.CardOptions) {
	if meta.ArtUrl == "" {
		e.logger.Warn("No artwork URL found",
			zap.String("track", meta.Title),
			zap.String("artist", meta.Artist))
		return
	}

	art, err := e.loader.Read(ctx, domain.SourceFromString(meta.ArtUrl))
	if err != nil {
		e.logger.Warn("Failed to load artwork", zap.String("url", meta.ArtUrl), zap.Error(err))
		return
	}

	thumb, err := e.processor.Thumbnail(ctx, art)
	if err != nil {
		e.logger.Warn("Failed to prepare thumbnail", zap.Error(err))
		return
	}
	opts.ThumbnailImage = domain.SourceFromBytes(thumb)

	if e.cfg.GetBackgroundMode() != BackgroundModeBlur {
		return
	}
	backdrop, err := e.processor.Backdrop(ctx, art)
	if err != nil {
		e.logger.Warn("Failed to prepare backdrop", zap.Error(err))
		return
	}
	opts.BackgroundImage = domain.SourceFromBytes(backdrop)
}

// Stop ends the event loop and waits for an in-flight render to finish
func (e *Engine) Stop(ctx context.Context) error {
	e.mu.Lock()
	cancel, done := e.cancel, e.done
	e.cancel = nil
	e.mu.Unlock()

	if cancel == nil {
		return nil
	}

	e.logger.Info("Engine stopping...")
	cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// BuildOptions maps a track onto card options. Unknown values keep the card defaults.
func BuildOptions(meta domain.MediaMetadata) domain.CardOptions {
	opts := domain.CardOptions{
		Name: meta.Title,
	}
	if meta.Artist != "" {
		opts.Author = "By " + meta.Artist
	}
	if meta.Length > 0 {
		opts.Progress = domain.Float(float64(meta.Position) / float64(meta.Length) * 100)
		opts.StartTime = FormatDuration(meta.Position)
		opts.EndTime = FormatDuration(meta.Length)
	}
	return opts
}

// FormatDuration renders d as m:ss, or h:mm:ss from one hour up
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	h, m, s := total/3600, total/60%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// writeFileAtomic replaces dir/name through a temporary file so readers never see a partial card
func writeFileAtomic(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+name+"-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary card file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write card file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write card file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", fmt.Errorf("failed to set card file mode: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("failed to move card into place: %w", err)
	}

	if abs, err := filepath.Abs(path); err == nil {
		return abs, nil
	}
	return path, nil
}
