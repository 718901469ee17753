package images

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"math"

	"github.com/disintegration/imaging"
)

// MaxUploadBytes is the upstream ceiling on source files; callers reject
// anything larger before invoking the compressor.
const MaxUploadBytes = 5 << 20

// Compressor converts an uploaded raster image into a bounded-size inline
// JPEG data URL suitable for JSON storage. Images are only ever shrunk, never
// upscaled.
type Compressor struct {
	maxDimension int
	quality      int // JPEG quality, 1-100
}

// NewCompressor creates a compressor. maxDimension bounds the longer axis of
// the output; quality is a factor in (0, 1].
func NewCompressor(maxDimension int, quality float64) (*Compressor, error) {
	if maxDimension <= 0 {
		return nil, fmt.Errorf("max dimension must be positive, got %d", maxDimension)
	}
	if quality <= 0 || quality > 1 {
		return nil, fmt.Errorf("quality must be in (0, 1], got %v", quality)
	}
	return &Compressor{
		maxDimension: maxDimension,
		quality:      int(math.Round(quality * 100)),
	}, nil
}

// Compress decodes the source, scales it so neither axis exceeds the maximum
// dimension, re-encodes as JPEG and returns a base64 data URL. One-shot, no
// retries.
func (c *Compressor) Compress(r io.Reader) (string, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > c.maxDimension || bounds.Dy() > c.maxDimension {
		// Fit preserves aspect ratio and never upscales.
		img = imaging.Fit(img, c.maxDimension, c.maxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(c.quality)); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	if buf.Len() == 0 {
		return "", fmt.Errorf("image encoding produced no output")
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
