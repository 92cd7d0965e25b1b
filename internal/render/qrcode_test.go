package render

import "testing"

func TestGenerateQRCodeImageEmptyPayload(t *testing.T) {
	img, err := GenerateQRCodeImage("", 100)
	if err != nil || img != nil {
		t.Fatalf("got (%v, %v), want (nil, nil)", img, err)
	}
}

func TestGenerateQRCodeImageSize(t *testing.T) {
	img, err := GenerateQRCodeImage("https://www.ciscolive.com/on-demand", 160)
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() < 160 || b.Dx() != b.Dy() {
		t.Errorf("bounds = %v, want square of at least 160px", b)
	}

	img, err = GenerateQRCodeImage("x", 0)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() < defaultQRCodeSizePx {
		t.Errorf("default size = %d", img.Bounds().Dx())
	}
}
