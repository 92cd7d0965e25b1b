package app

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"

	"github.com/ciscolive-kodi/artgen/internal/render"
)

// previewEncoded decodes an encoded asset and shows it on the framebuffer.
func previewEncoded(device string, data []byte) error {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode preview: %w", err)
	}
	return render.Preview(device, img)
}
