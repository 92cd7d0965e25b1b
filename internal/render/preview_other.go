//go:build !linux

package render

import (
	"errors"
	"image"
)

const DefaultFramebuffer = ""

// Preview is only available on Linux framebuffers.
func Preview(device string, img image.Image) error {
	return errors.New("framebuffer preview is only supported on linux")
}
