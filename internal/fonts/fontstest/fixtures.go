// Package fontstest writes stand-in font files for tests that need a populated catalog.
package fontstest

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
)

// Go fonts standing in for each weight file name
var fixtures = map[string][]byte{
	"PlusJakartaSans-Bold.ttf":       gobold.TTF,
	"PlusJakartaSans-ExtraBold.ttf":  gobold.TTF,
	"PlusJakartaSans-ExtraLight.ttf": goregular.TTF,
	"PlusJakartaSans-Light.ttf":      goregular.TTF,
	"PlusJakartaSans-Medium.ttf":     gomedium.TTF,
	"PlusJakartaSans-Regular.ttf":    goregular.TTF,
	"PlusJakartaSans-SemiBold.ttf":   gomedium.TTF,
}

// WriteDir writes every weight into a fresh temporary directory and returns it
func WriteDir(tb testing.TB) string {
	tb.Helper()
	dir := tb.TempDir()
	WriteInto(tb, dir)
	return dir
}

// WriteInto writes every weight into dir, skipping the files named in except
func WriteInto(tb testing.TB, dir string, except ...string) {
	tb.Helper()
	skip := make(map[string]bool, len(except))
	for _, name := range except {
		skip[name] = true
	}
	for name, data := range fixtures {
		if skip[name] {
			continue
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			tb.Fatalf("failed to write font fixture %s: %v", name, err)
		}
	}
}
