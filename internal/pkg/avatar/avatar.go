// Package avatar validates uploaded profile pictures and normalises them before storage.
package avatar

import (
	"bytes"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
	"github.com/edunexus/schoolrecords/internal/pkg/apperrors"
	"github.com/gabriel-vasile/mimetype"
)

// Defaults applied by NewProcessor when a limit is zero
const (
	DefaultMaxBytes     = 5 << 20
	DefaultMaxDimension = 512
)

const invalidImageMessage = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."

// Image is a processed avatar ready to be stored
type Image struct {
	Data        []byte
	ContentType string
	Extension   string
}

// Processor checks and resizes avatar uploads
type Processor struct {
	maxBytes     int64
	maxDimension int
}

// NewProcessor creates a Processor. Zero values fall back to the defaults.
func NewProcessor(maxBytes int64, maxDimension int) *Processor {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	return &Processor{maxBytes: maxBytes, maxDimension: maxDimension}
}

type format struct {
	imaging   imaging.Format
	extension string
}

var supported = map[string]format{
	"image/jpeg": {imaging.JPEG, ".jpg"},
	"image/png":  {imaging.PNG, ".png"},
	"image/gif":  {imaging.GIF, ".gif"},
}

// Process sniffs the real content type, decodes the image and shrinks it to fit
// maxDimension x maxDimension. The original format is kept.
func (p *Processor) Process(r io.Reader) (*Image, error) {
	raw, err := io.ReadAll(io.LimitReader(r, p.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read avatar: %w", err)
	}
	if int64(len(raw)) > p.maxBytes {
		return nil, apperrors.NewValidationError("avatar", fmt.Sprintf("Avatar must be at most %d bytes.", p.maxBytes))
	}
	if len(raw) == 0 {
		return nil, apperrors.NewValidationError("avatar", "The submitted file is empty.")
	}

	var f format
	contentType := ""
	for m := mimetype.Detect(raw); m != nil; m = m.Parent() {
		if sf, ok := supported[m.String()]; ok {
			f, contentType = sf, m.String()
			break
		}
	}
	if contentType == "" {
		return nil, apperrors.NewValidationError("avatar", invalidImageMessage)
	}

	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, apperrors.NewValidationError("avatar", invalidImageMessage)
	}

	bounds := img.Bounds()
	if bounds.Dx() > p.maxDimension || bounds.Dy() > p.maxDimension {
		img = imaging.Fit(img, p.maxDimension, p.maxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, f.imaging); err != nil {
		return nil, fmt.Errorf("failed to encode avatar: %w", err)
	}

	return &Image{
		Data:        buf.Bytes(),
		ContentType: contentType,
		Extension:   f.extension,
	}, nil
}
