package images

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dataURLPrefix = "data:image/jpeg;base64,"

// testImage builds a gradient so JPEG encoding has real content to work on.
func testImage(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{uint8(x % 256), uint8(y % 256), uint8((x + y) % 256), 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}))
	return buf.Bytes()
}

func decodeDataURL(t *testing.T, dataURL string) image.Image {
	t.Helper()
	require.True(t, strings.HasPrefix(dataURL, dataURLPrefix))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, dataURLPrefix))
	require.NoError(t, err)
	img, err := jpeg.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	return img
}

func TestCompressScalesDown(t *testing.T) {
	c, err := NewCompressor(800, 0.8)
	require.NoError(t, err)

	source := testImage(t, 1600, 1200)
	dataURL, err := c.Compress(bytes.NewReader(source))
	require.NoError(t, err)

	out := decodeDataURL(t, dataURL)
	assert.Equal(t, 800, out.Bounds().Dx())
	assert.Equal(t, 600, out.Bounds().Dy())
}

func TestCompressNeverUpscales(t *testing.T) {
	c, err := NewCompressor(800, 0.8)
	require.NoError(t, err)

	dataURL, err := c.Compress(bytes.NewReader(testImage(t, 300, 200)))
	require.NoError(t, err)

	out := decodeDataURL(t, dataURL)
	assert.Equal(t, 300, out.Bounds().Dx())
	assert.Equal(t, 200, out.Bounds().Dy())
}

func TestCompressTallImage(t *testing.T) {
	c, err := NewCompressor(800, 0.8)
	require.NoError(t, err)

	dataURL, err := c.Compress(bytes.NewReader(testImage(t, 600, 2400)))
	require.NoError(t, err)

	out := decodeDataURL(t, dataURL)
	assert.Equal(t, 200, out.Bounds().Dx())
	assert.Equal(t, 800, out.Bounds().Dy())
}

func TestCompressAcceptsPNG(t *testing.T) {
	c, err := NewCompressor(800, 0.8)
	require.NoError(t, err)

	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	dataURL, err := c.Compress(&buf)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dataURL, dataURLPrefix))
}

func TestCompressRejectsGarbage(t *testing.T) {
	c, err := NewCompressor(800, 0.8)
	require.NoError(t, err)

	_, err = c.Compress(strings.NewReader("definitely not an image"))
	assert.Error(t, err)
}

func TestNewCompressorValidation(t *testing.T) {
	_, err := NewCompressor(0, 0.8)
	assert.Error(t, err)

	_, err = NewCompressor(800, 0)
	assert.Error(t, err)

	_, err = NewCompressor(800, 1.5)
	assert.Error(t, err)

	c, err := NewCompressor(800, 1)
	require.NoError(t, err)
	assert.NotNil(t, c)
}
