package render

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
)

// Format is the encoded file format of an artifact.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
)

// FanartQuality is the JPEG quality used for the background art.
const FanartQuality = 95

// Encoded is a serialized image ready to be persisted.
type Encoded struct {
	Name   string
	Format Format
	Width  int
	Height int
	Data   []byte
}

// EncodePNG encodes img losslessly with maximum compression. Opaque images
// are written as truecolor without an alpha channel.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: png: %v", ErrEncodeFailure, err)
	}
	return buf.Bytes(), nil
}

// EncodeJPEG encodes img at the given quality (1-100).
func EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	if quality < 1 || quality > 100 {
		return nil, fmt.Errorf("%w: jpeg quality %d out of range", ErrEncodeFailure, quality)
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("%w: jpeg: %v", ErrEncodeFailure, err)
	}
	return buf.Bytes(), nil
}
