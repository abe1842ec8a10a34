package pix2svg

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmitSVGGolden(t *testing.T) {
	t.Parallel()

	rects := []Rect{
		{X: 0, Y: 0, Width: 2, Height: 1, Color: Color{R: 255, A: 255}},
		{X: 0, Y: 1, Width: 1, Height: 1, Color: Color{R: 255, A: 255}},
		{X: 1, Y: 1, Width: 1, Height: 1, Color: Color{B: 255, A: 255}},
	}

	got := EmitSVG(rects, 2, 2, 1, true)
	want := `<?xml version="1.0" encoding="UTF-8"?>
<svg version="1.1" width="2" height="2" xmlns="http://www.w3.org/2000/svg" shape-rendering="crispEdges">
<rect x="0" y="0" width="2" height="1" fill="#FF0000" />
<rect x="0" y="1" width="1" height="1" fill="#FF0000" />
<rect x="1" y="1" width="1" height="1" fill="#0000FF" />
</svg>
`
	if got != want {
		t.Errorf("Expected document:\n%s\ngot:\n%s", want, got)
	}
}

func TestEmitSVGEmpty(t *testing.T) {
	t.Parallel()

	got := EmitSVG(nil, 4, 4, 1, true)
	want := `<?xml version="1.0" encoding="UTF-8"?>
<svg version="1.1" width="4" height="4" xmlns="http://www.w3.org/2000/svg" shape-rendering="crispEdges">
</svg>
`
	if got != want {
		t.Errorf("Expected empty-body document:\n%s\ngot:\n%s", want, got)
	}
}

func TestEmitSVGNoCrispEdges(t *testing.T) {
	t.Parallel()

	got := EmitSVG(nil, 1, 1, 1, false)
	if strings.Contains(got, "shape-rendering") {
		t.Errorf("Expected no shape-rendering attribute, got:\n%s", got)
	}
	if !strings.Contains(got, `<svg version="1.1" width="1" height="1" xmlns="http://www.w3.org/2000/svg">`) {
		t.Errorf("Expected plain svg element, got:\n%s", got)
	}
}

func TestEmitSVGScalesGeometry(t *testing.T) {
	t.Parallel()

	rects := []Rect{{X: 1, Y: 2, Width: 3, Height: 1, Color: Color{G: 255, A: 255}}}

	got := EmitSVG(rects, 5, 4, 10, true)
	if !strings.Contains(got, `width="50" height="40"`) {
		t.Errorf("Expected scaled canvas 50x40, got:\n%s", got)
	}
	if !strings.Contains(got, `<rect x="10" y="20" width="30" height="10" fill="#00FF00" />`) {
		t.Errorf("Expected rect geometry scaled by 10, got:\n%s", got)
	}
}

func TestEmitSVGOpacity(t *testing.T) {
	t.Parallel()

	rects := []Rect{
		{X: 0, Y: 0, Width: 1, Height: 1, Color: Color{R: 255, A: 128}},
		{X: 1, Y: 0, Width: 1, Height: 1, Color: Color{G: 255, A: 0}},
		{X: 2, Y: 0, Width: 1, Height: 1, Color: Color{B: 255, A: 255}},
	}

	got := EmitSVG(rects, 3, 1, 1, true)
	if !strings.Contains(got, `<rect x="0" y="0" width="1" height="1" fill="#FF0000" opacity="0.502" />`) {
		t.Errorf("Expected opacity 0.502 for alpha 128, got:\n%s", got)
	}
	if !strings.Contains(got, `<rect x="1" y="0" width="1" height="1" fill="#00FF00" opacity="0.000" />`) {
		t.Errorf("Expected opacity 0.000 for alpha 0, got:\n%s", got)
	}

	// Fully opaque rectangles never carry the attribute.
	if !strings.Contains(got, `<rect x="2" y="0" width="1" height="1" fill="#0000FF" />`) {
		t.Errorf("Expected no opacity attribute for alpha 255, got:\n%s", got)
	}
}

func TestSaveSVGPlain(t *testing.T) {
	t.Parallel()

	svg := EmitSVG(nil, 2, 2, 1, true)
	path := filepath.Join(t.TempDir(), "out.svg")

	if err := SaveSVG(svg, path); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read back: %v", err)
	}
	if string(data) != svg {
		t.Errorf("Expected file to hold the document verbatim, got:\n%s", data)
	}
}

func TestSaveSVGCompressed(t *testing.T) {
	t.Parallel()

	svg := EmitSVG([]Rect{
		{X: 0, Y: 0, Width: 2, Height: 2, Color: Color{R: 255, A: 255}},
	}, 2, 2, 1, true)

	// Extension matching is case-insensitive.
	for _, name := range []string{"out.svgz", "OUT.SVGZ"} {
		path := filepath.Join(t.TempDir(), name)
		if err := SaveSVG(svg, path); err != nil {
			t.Fatalf("Failed to save %s: %v", name, err)
		}

		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("Failed to open %s: %v", name, err)
		}
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			t.Fatalf("Expected gzip stream in %s: %v", name, err)
		}
		data, err := io.ReadAll(zr)
		zr.Close()
		f.Close()
		if err != nil {
			t.Fatalf("Failed to decompress %s: %v", name, err)
		}
		if string(data) != svg {
			t.Errorf("Expected %s to decompress to the document, got:\n%s", name, data)
		}
	}
}

func TestSaveSVGCreateError(t *testing.T) {
	t.Parallel()

	err := SaveSVG("<svg/>", filepath.Join(t.TempDir(), "missing", "out.svg"))
	if err == nil {
		t.Error("Expected error for unwritable path")
	}
}
