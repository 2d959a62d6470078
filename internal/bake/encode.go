package bake

import (
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/cockroachdb/errors"
	"github.com/ftrvxmtrx/tga"
)

// ErrFormat is returned for unsupported output formats.
var ErrFormat = errors.New("unsupported image format")

// Formats lists the encodings supported by Encode.
var Formats = []string{"webp", "tga", "png"}

// Supported reports whether format is one of Formats.
func Supported(format string) bool {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Encode writes img in the given format ("webp", "tga" or "png").
func Encode(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "webp":
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return errors.Wrap(err, "bake: webp encode")
		}
	case "tga":
		if err := tga.Encode(w, img); err != nil {
			return errors.Wrap(err, "bake: tga encode")
		}
	case "png":
		if err := png.Encode(w, img); err != nil {
			return errors.Wrap(err, "bake: png encode")
		}
	default:
		return errors.Wrapf(ErrFormat, "bake: %q", format)
	}
	return nil
}

// Save writes img to path, choosing the format from its extension.
func Save(path string, img image.Image) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !Supported(format) {
		return errors.Wrapf(ErrFormat, "bake: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "bake: mkdir for %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "bake: create %s", path)
	}
	err = Encode(f, img, format)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
