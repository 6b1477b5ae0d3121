package avatar

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/edunexus/schoolrecords/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.NRGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProcess_ResizesLargeImages(t *testing.T) {
	p := NewProcessor(0, 64)

	out, err := p.Process(bytes.NewReader(pngBytes(t, 256, 128)))
	require.NoError(t, err)
	assert.Equal(t, "image/png", out.ContentType)
	assert.Equal(t, ".png", out.Extension)

	decoded, err := imaging.Decode(bytes.NewReader(out.Data))
	require.NoError(t, err)
	assert.Equal(t, 64, decoded.Bounds().Dx())
	assert.Equal(t, 32, decoded.Bounds().Dy())
}

func TestProcess_KeepsSmallImages(t *testing.T) {
	out, err := NewProcessor(0, 0).Process(bytes.NewReader(pngBytes(t, 10, 20)))
	require.NoError(t, err)

	decoded, err := imaging.Decode(bytes.NewReader(out.Data))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(10, 20), decoded.Bounds().Size())
}

func TestProcess_RejectsNonImages(t *testing.T) {
	p := NewProcessor(0, 0)

	_, err := p.Process(strings.NewReader("%PDF-1.4 definitely not an image"))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = p.Process(strings.NewReader(""))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	truncated := pngBytes(t, 50, 50)[:40]
	_, err = p.Process(bytes.NewReader(truncated))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestProcess_RejectsOversizedUploads(t *testing.T) {
	data := pngBytes(t, 40, 40)
	_, err := NewProcessor(int64(len(data)-1), 0).Process(bytes.NewReader(data))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
