// Command genpix writes a set of small deterministic pixel art images,
// useful as conversion inputs when trying out pix2svg.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/LeSnow-Ye/pix2svg/imageutil"
)

// sample pairs an output file name with the image it contains.
type sample struct {
	name string
	img  *image.NRGBA
}

func heartSprite() *image.NRGBA {
	return imageutil.CreateSpriteImage([]string{
		".rr.rr.",
		"rrrrrrr",
		"rwrrrrr",
		"rrrrrrr",
		".rrrrr.",
		"..rrr..",
		"...r...",
	}, map[byte]color.NRGBA{
		'r': {R: 220, G: 40, B: 60, A: 255},
		'w': {R: 255, G: 240, B: 240, A: 255},
	})
}

func invaderSprite() *image.NRGBA {
	return imageutil.CreateSpriteImage([]string{
		"..g.....g..",
		"...g...g...",
		"..ggggggg..",
		".gg.ggg.gg.",
		"ggggggggggg",
		"g.ggggggg.g",
		"g.g.....g.g",
		"...gg.gg...",
	}, map[byte]color.NRGBA{
		'g': {R: 60, G: 200, B: 80, A: 255},
	})
}

func buildSamples() []sample {
	return []sample{
		{"heart.png", heartSprite()},
		{"invader.png", invaderSprite()},
		{"checker.png", imageutil.CreateCheckerboardImage(16, 16, 4,
			color.NRGBA{R: 235, G: 235, B: 235, A: 255},
			color.NRGBA{R: 40, G: 40, B: 40, A: 255})},
		{"fade.png", imageutil.CreateAlphaGradientImage(16, 8,
			color.NRGBA{R: 30, G: 120, B: 220, A: 255})},
	}
}

func main() {
	outDir := flag.String("out", "testpix",
		"Directory to write the sample images into")
	upscale := flag.Int("upscale", 1,
		"Integer factor to enlarge each sample by block replication")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	for _, s := range buildSamples() {
		img := s.img
		if *upscale > 1 {
			scaled, err := imageutil.Upscale(img, *upscale)
			if err != nil {
				log.Fatalf("Failed to upscale %s: %v", s.name, err)
			}
			img = scaled
		}

		path := filepath.Join(*outDir, s.name)
		if err := imageutil.SavePNG(img, path); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		bounds := img.Bounds()
		fmt.Printf("Wrote %s (%dx%d)\n", path, bounds.Dx(), bounds.Dy())
	}
}
