package pix2svg

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// svgNamespace is the XML namespace of every emitted document.
const svgNamespace = "http://www.w3.org/2000/svg"

// EmitSVG serializes an ordered rectangle sequence into an SVG 1.1 document.
// Geometry is multiplied by scale here, at emission time. The output is
// byte-stable: the same rectangles, dimensions, and options always produce
// the same text, one element per line.
//
// Each rect element carries its attributes in the fixed order x, y, width,
// height, fill; rectangles with partial alpha additionally carry an opacity
// attribute. No merging or reordering happens here; emission order equals
// input order.
func EmitSVG(rects []Rect, width, height, scale int, crispEdges bool) string {
	var sb strings.Builder

	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	sb.WriteByte('\n')

	sb.WriteString(fmt.Sprintf(`<svg version="1.1" width="%d" height="%d" xmlns="%s"`,
		width*scale, height*scale, svgNamespace))
	if crispEdges {
		sb.WriteString(` shape-rendering="crispEdges"`)
	}
	sb.WriteString(">\n")

	for _, r := range rects {
		writeRect(&sb, r.Scaled(scale))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// writeRect writes one rect element line. Fill is the uppercase RRGGBB hex
// of the color; opacity appears only for partial alpha, formatted to three
// decimal places.
func writeRect(sb *strings.Builder, r Rect) {
	sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="#%s" `,
		r.X, r.Y, r.Width, r.Height, r.Color.Hex()))
	if !r.Color.Opaque() {
		sb.WriteString(fmt.Sprintf(`opacity="%.3f" `, r.Color.Opacity()))
	}
	sb.WriteString("/>\n")
}

// SaveSVG writes an SVG document to the specified path. A .svgz extension
// gzip-compresses the document per the SVG packaging convention; any other
// extension writes the text as-is.
func SaveSVG(svg, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".svgz") {
		zw := gzip.NewWriter(f)
		if _, err := io.WriteString(zw, svg); err != nil {
			return fmt.Errorf("failed to write svg: %w", err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("failed to finish gzip stream: %w", err)
		}
		return nil
	}

	if _, err := io.WriteString(f, svg); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	return nil
}
