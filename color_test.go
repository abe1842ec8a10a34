package pix2svg

import (
	"image/color"
	"testing"
)

func TestColorHex(t *testing.T) {
	t.Parallel()

	c := Color{R: 255, G: 0, B: 170, A: 255}
	if got := c.Hex(); got != "FF00AA" {
		t.Errorf("Expected hex FF00AA, got %s", got)
	}

	// Low channel values must keep their leading zero.
	c = Color{R: 1, G: 2, B: 3, A: 255}
	if got := c.Hex(); got != "010203" {
		t.Errorf("Expected hex 010203, got %s", got)
	}

	// Alpha never leaks into the hex encoding.
	c = Color{R: 16, G: 32, B: 48, A: 7}
	if got := c.Hex(); got != "102030" {
		t.Errorf("Expected hex 102030, got %s", got)
	}
}

func TestColorOpacity(t *testing.T) {
	t.Parallel()

	if got := (Color{A: 255}).Opacity(); got != 1.0 {
		t.Errorf("Expected opacity 1.0, got %f", got)
	}
	if got := (Color{A: 0}).Opacity(); got != 0.0 {
		t.Errorf("Expected opacity 0.0, got %f", got)
	}
	if got := (Color{A: 51}).Opacity(); got != 0.2 {
		t.Errorf("Expected opacity 0.2, got %f", got)
	}
}

func TestColorOpaque(t *testing.T) {
	t.Parallel()

	if !(Color{A: 255}).Opaque() {
		t.Error("Alpha 255 should be opaque")
	}
	if (Color{A: 254}).Opaque() {
		t.Error("Alpha 254 should not be opaque")
	}
	if (Color{A: 0}).Opaque() {
		t.Error("Alpha 0 should not be opaque")
	}
}

func TestColorNRGBARoundTrip(t *testing.T) {
	t.Parallel()

	c := Color{R: 10, G: 20, B: 30, A: 40}
	n := c.NRGBA()
	if n != (color.NRGBA{R: 10, G: 20, B: 30, A: 40}) {
		t.Errorf("Expected NRGBA{10 20 30 40}, got %v", n)
	}
	if back := colorFromNRGBA(n); back != c {
		t.Errorf("Expected round-trip %v, got %v", c, back)
	}
}
