// Package fonts registers the card typefaces under logical names.
package fonts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/genricoloni/musicard/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// ErrFontNotFound is returned when a font file exists in none of the search roots
var ErrFontNotFound = errors.New("font file not found")

// Weight maps a font file to the logical name it is registered under
type Weight struct {
	File string
	Name string
}

// Weights is the fixed set of faces every catalog carries
var Weights = []Weight{
	{File: "PlusJakartaSans-Bold.ttf", Name: "bold"},
	{File: "PlusJakartaSans-ExtraBold.ttf", Name: "extrabold"},
	{File: "PlusJakartaSans-ExtraLight.ttf", Name: "extralight"},
	{File: "PlusJakartaSans-Light.ttf", Name: "light"},
	{File: "PlusJakartaSans-Medium.ttf", Name: "medium"},
	{File: "PlusJakartaSans-Regular.ttf", Name: "regular"},
	{File: "PlusJakartaSans-SemiBold.ttf", Name: "semibold"},
}

// Catalog is a read-only registry of parsed fonts keyed by logical name.
// It is safe for concurrent use once constructed.
type Catalog struct {
	logger *zap.Logger
	fonts  map[string]*opentype.Font
	paths  map[string]string
}

// NewCatalog registers every Weight, searching roots in priority order.
// It fails on the first weight that is missing from all roots or cannot be parsed.
func NewCatalog(logger *zap.Logger, roots []string) (*Catalog, error) {
	if len(roots) == 0 {
		return nil, fmt.Errorf("no font search directories configured")
	}

	c := &Catalog{
		logger: logger,
		fonts:  make(map[string]*opentype.Font, len(Weights)),
		paths:  make(map[string]string, len(Weights)),
	}

	for _, w := range Weights {
		if err := c.register(w, roots); err != nil {
			return nil, err
		}
	}

	logger.Info("Fonts registered",
		zap.Int("count", len(c.fonts)),
		zap.Strings("roots", roots))

	return c, nil
}

// NewCatalogFromConfig builds the catalog from the configured search roots
func NewCatalogFromConfig(logger *zap.Logger, cfg domain.Config) (*Catalog, error) {
	return NewCatalog(logger, cfg.GetFontDirs())
}

func (c *Catalog) register(w Weight, roots []string) error {
	attempted := make([]string, 0, len(roots))
	for _, root := range roots {
		path := filepath.Join(root, w.File)
		attempted = append(attempted, path)

		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read font %s: %w", path, err)
		}

		parsed, err := opentype.Parse(data)
		if err != nil {
			return fmt.Errorf("failed to parse font %s: %w", path, err)
		}

		c.fonts[w.Name] = parsed
		c.paths[w.Name] = path
		c.logger.Debug("Font registered", zap.String("name", w.Name), zap.String("path", path))
		return nil
	}

	return fmt.Errorf("%w at %s", ErrFontNotFound, strings.Join(attempted, " or "))
}

// Face creates a face for the logical name at sizePx pixels.
// Faces are not safe for concurrent use, so every caller gets its own and closes it.
func (c *Catalog) Face(name string, sizePx float64) (font.Face, error) {
	parsed, ok := c.fonts[name]
	if !ok {
		return nil, fmt.Errorf("font %q is not registered", name)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s face at %.0fpx: %w", name, sizePx, err)
	}
	return face, nil
}

// Path returns the file a logical name was loaded from
func (c *Catalog) Path(name string) (string, bool) {
	p, ok := c.paths[name]
	return p, ok
}

// Names returns the registered logical names, sorted
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.fonts))
	for name := range c.fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
