// Package thumbnail derives bounded-size JPEG previews from uploaded images.
package thumbnail

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // Register GIF decoder
	"image/jpeg"   // Register JPEG decoder, used for encoding
	_ "image/png"  // Register PNG decoder
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

const (
	// MaxDimension bounds both sides of a thumbnail. Images already within
	// bounds keep their original size; nothing is ever upscaled.
	MaxDimension = 300
	// JPEGQuality is the fixed encoding quality for thumbnails.
	JPEGQuality = 85
	// NamePrefix marks derived files in the media store.
	NamePrefix = "thumb_"
)

// ErrNotAnImage is returned when the uploaded bytes cannot be decoded as a
// raster image. The caller must abort the whole save; nothing is persisted.
var ErrNotAnImage = errors.New("file is not a decodable image")

// Result is a derived thumbnail held in memory, not yet persisted.
type Result struct {
	Name   string
	Data   []byte
	Width  int
	Height int
}

// Derive decodes r, flattens any alpha/palette onto an opaque canvas, scales
// the image so neither dimension exceeds MaxDimension, and JPEG-encodes the
// result. originalName is the original's stored name; the thumbnail name is
// prefixed and forced to a .jpg extension.
func Derive(originalName string, r io.Reader) (*Result, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}

	width, height := fit(src.Bounds().Dx(), src.Bounds().Dy())
	flat := flatten(src, width, height)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flat, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	return &Result{
		Name:   Name(originalName),
		Data:   buf.Bytes(),
		Width:  width,
		Height: height,
	}, nil
}

// Name derives the thumbnail's stored name from the original's stored name:
// thumb_ prefix, extension forced to .jpg regardless of the original's.
func Name(originalName string) string {
	base := filepath.Base(originalName)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return NamePrefix + stem + ".jpg"
}

// fit scales (w, h) to fit within MaxDimension on both sides, preserving
// aspect ratio. Dimensions already within bounds are returned unchanged.
func fit(w, h int) (int, int) {
	if w <= MaxDimension && h <= MaxDimension {
		return w, h
	}

	if w > h {
		scaled := (h * MaxDimension) / w
		if scaled < 1 {
			scaled = 1
		}
		return MaxDimension, scaled
	}

	scaled := (w * MaxDimension) / h
	if scaled < 1 {
		scaled = 1
	}
	return scaled, MaxDimension
}

// flatten draws src onto an opaque white canvas of the target size. JPEG
// supports neither alpha nor palettes, so transparency is composited away
// here. Scaling uses CatmullRom for quality; same-size draws skip it.
func flatten(src image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	bounds := src.Bounds()
	if width == bounds.Dx() && height == bounds.Dy() {
		draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Over)
		return dst
	}

	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
