// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package srptex decodes PNG/JPEG image files into the
// (width, height, channels, pixels) tuple that srp.NewTextureFromBytes
// consumes. It is a collaborator, not part of the core pipeline: the
// core only ever sees decoded pixels (spec.md §6). Grounded on the
// teacher's pixmap.go (SavePNG/FromImage's image.Image traversal), with
// golang.org/x/image/draw wired in for the optional downsample-on-load
// helper, the one domain dependency carried over from the teacher's
// go.mod.
package srptex

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	"github.com/gogpu/srp"
)

// Load decodes a PNG or JPEG file into an srp.Texture. Format is chosen
// by file extension, matching the teacher's SavePNG/FromImage split
// between stdlib codecs.
func Load(path string) (*srp.Texture, error) {
	f, err := os.Open(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := decode(path, f)
	if err != nil {
		return nil, err
	}
	return fromImage(img), nil
}

// LoadScaled decodes a PNG or JPEG file and resamples it to the given
// dimensions using golang.org/x/image/draw's bilinear scaler before
// building the texture, useful for pre-downsampling large source art to
// a texture size the rasterizer will actually sample at.
func LoadScaled(path string, width, height int) (*srp.Texture, error) {
	f, err := os.Open(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := decode(path, f)
	if err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return fromImage(dst), nil
}

func decode(path string, r io.Reader) (image.Image, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Decode(r)
	case ".jpg", ".jpeg":
		return jpeg.Decode(r)
	default:
		return nil, fmt.Errorf("srptex: unsupported file extension %q", filepath.Ext(path))
	}
}

// fromImage flattens an image.Image into interleaved RGBA8 bytes and
// builds an srp.Texture from them, the same traversal the teacher's
// FromImage uses (bounds-relative At(x,y) walk).
func fromImage(img image.Image) *srp.Texture {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	data := make([]byte, width*height*4)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := (y*width + x) * 4
			data[i+0] = byte(r >> 8)
			data[i+1] = byte(g >> 8)
			data[i+2] = byte(b >> 8)
			data[i+3] = byte(a >> 8)
		}
	}
	return srp.NewTextureFromBytes(width, height, 4, data)
}
