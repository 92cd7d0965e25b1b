//go:build linux

package render

import (
	"fmt"
	"image"
	"image/color"

	fb "github.com/gonutz/framebuffer"
	"github.com/nfnt/resize"
)

// DefaultFramebuffer is the device Preview writes to when none is given.
const DefaultFramebuffer = "/dev/fb0"

// Preview scales img to the framebuffer and blits it once.
func Preview(device string, img image.Image) error {
	if device == "" {
		device = DefaultFramebuffer
	}
	dev, err := fb.Open(device)
	if err != nil {
		return fmt.Errorf("open framebuffer %s: %w", device, err)
	}
	defer dev.Close()

	bounds := dev.Bounds()
	if bounds.Empty() {
		return fmt.Errorf("framebuffer %s reports empty bounds", device)
	}
	scaled := resize.Resize(uint(bounds.Dx()), uint(bounds.Dy()), img, resize.Bilinear)
	blit(dev, bounds, scaled)
	return nil
}

type pixelSetter interface {
	Set(x, y int, c color.Color)
}

func blit(dst pixelSetter, bounds image.Rectangle, src image.Image) {
	sb := src.Bounds()
	for y := 0; y < bounds.Dy() && y < sb.Dy(); y++ {
		for x := 0; x < bounds.Dx() && x < sb.Dx(); x++ {
			r, g, b, _ := src.At(sb.Min.X+x, sb.Min.Y+y).RGBA()
			dst.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xFF})
		}
	}
}
