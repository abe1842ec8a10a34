package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cheggaaa/pb/v3"
	colorful "github.com/lucasb-eyer/go-colorful"
	log "github.com/sirupsen/logrus"

	"github.com/LeSnow-Ye/pix2svg"
	"github.com/LeSnow-Ye/pix2svg/imageutil"
)

const version = "0.1.0"

func main() {
	outputFile := flag.String("output", "",
		"Path for the output SVG; defaults to the input path with a .svg "+
			"extension (single input only)")
	scale := flag.Int("scale", 1,
		"Pixel scale factor (1-1000)")
	alphaThreshold := flag.Int("alpha-threshold", 1,
		"Minimum alpha for a pixel to be kept (0-255)")
	keepTransparent := flag.Bool("keep-transparent", false,
		"Keep pixels below the alpha threshold instead of skipping them")
	noCrispEdges := flag.Bool("no-crisp-edges", false,
		"Disable the crisp edges rendering hint")
	background := flag.String("background", "",
		"Matte color composited under transparent pixels (#RRGGBB)")
	downscale := flag.Int("downscale", 1,
		"Shrink a pre-upscaled export by this integer factor before covering")
	preview := flag.String("preview", "",
		"Also write a unit-scale PNG render of the cover (single input only)")
	verbose := flag.Bool("verbose", false,
		"Enable verbose output")
	showVersion := flag.Bool("version", false,
		"Print the version and exit")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [flags] input.png [more inputs ...]\n\n"+
				"Convert pixel art images to compact SVG documents.\n\nFlags:\n",
			filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println("pix2svg", version)
		return
	}

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "Please provide at least one input image")
		flag.Usage()
		os.Exit(1)
	}
	if len(inputs) > 1 && *outputFile != "" {
		log.Fatalf("-output is only valid with a single input (got %d inputs)", len(inputs))
	}
	if len(inputs) > 1 && *preview != "" {
		log.Fatalf("-preview is only valid with a single input (got %d inputs)", len(inputs))
	}

	opts := []pix2svg.Option{
		pix2svg.WithScale(*scale),
		pix2svg.WithAlphaThreshold(*alphaThreshold),
		pix2svg.WithSkipTransparent(!*keepTransparent),
		pix2svg.WithCrispEdges(!*noCrispEdges),
		pix2svg.WithDownscale(*downscale),
	}
	if *background != "" {
		matte, err := colorful.Hex(*background)
		if err != nil {
			log.Fatalf("Invalid background color %q: %v", *background, err)
		}
		r, g, b := matte.RGB255()
		opts = append(opts, pix2svg.WithBackground(pix2svg.Color{R: r, G: g, B: b, A: 255}))
	}

	conv := pix2svg.NewConverter(opts...)
	if err := conv.Validate(); err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	log.Debugf("Conversion options: scale=%d alpha-threshold=%d skip-transparent=%t "+
		"crisp-edges=%t downscale=%d background=%q",
		conv.Scale, conv.AlphaThreshold, conv.SkipTransparent,
		conv.CrispEdges, conv.Downscale, *background)

	// Batch runs get a progress bar; the bar and debug logging would
	// interleave, so verbose mode reports per file instead.
	var bar *pb.ProgressBar
	if len(inputs) > 1 && !*verbose {
		bar = pb.StartNew(len(inputs))
	}

	for _, input := range inputs {
		outPath, err := convertOne(conv, input, *outputFile, *preview)
		if err != nil {
			if bar != nil {
				bar.Finish()
			}
			log.Fatalf("Failed to convert %s: %v", input, err)
		}

		if bar != nil {
			bar.Increment()
		} else if *verbose {
			log.Debugf("SVG file saved: %s", outPath)
		} else {
			fmt.Printf("Successfully converted to: %s\n", outPath)
		}
	}

	if bar != nil {
		bar.Finish()
		fmt.Printf("Converted %d images\n", len(inputs))
	}
}

// convertOne converts a single input file and returns the output path it
// wrote.
func convertOne(conv *pix2svg.Converter, input, output, preview string) (string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("input path is not a file: %s", input)
	}

	log.Debugf("Loading image: %s", input)
	result, err := conv.ConvertFile(input)
	if err != nil {
		return "", err
	}

	log.Debugf("Image dimensions: %dx%d", result.Width, result.Height)
	log.Debugf("Generated rectangles: %d", result.RectangleCount())
	log.Debugf("SVG size: %d bytes", result.SVGSize())

	outPath := output
	if outPath == "" {
		outPath = replaceExt(input, ".svg")
	}
	if err := pix2svg.SaveSVG(result.SVG, outPath); err != nil {
		return "", err
	}

	if preview != "" {
		render := pix2svg.RenderRects(result.Rects, result.Width, result.Height)
		if err := imageutil.SavePNG(render, preview); err != nil {
			return "", err
		}
		log.Debugf("Preview saved: %s", preview)
	}

	return outPath, nil
}

// replaceExt swaps the file extension, treating extensionless paths as bare
// names to suffix.
func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
