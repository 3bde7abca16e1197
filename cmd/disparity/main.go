// Command disparity computes a dense disparity map from a rectified
// stereo pair and writes it as an 8-bit grayscale PNG, brightest at the
// largest disparity.
//
// The command is a thin adapter: decoding, luminance conversion, optional
// pre-scaling and encoding happen here; all matching logic lives in the
// stereo, diffusion and bruteforce packages.
//
// Usage:
//
//	disparity -left left.png -right right.png -out disparity.png \
//	    [-consistency 1.0] [-scale 0.5] [-workers 4] \
//	    [-max-iterations 10000] [-brute-force] [-quiet]
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log"
	"os"

	resize "github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/katalvlaran/disparity/bruteforce"
	"github.com/katalvlaran/disparity/diffusion"
	"github.com/katalvlaran/disparity/pixgrid"
	"github.com/katalvlaran/disparity/stereo"
)

func main() {
	leftPath := flag.String("left", "", "left image path (PNG/JPEG/GIF/WEBP/BMP/TIFF)")
	rightPath := flag.String("right", "", "right image path")
	outPath := flag.String("out", "disparity.png", "output disparity PNG path")
	consistency := flag.Float64("consistency", 1.0, "smoothness multiplier α (>= 0)")
	scale := flag.Float64("scale", 1.0, "pre-solve downscale factor in (0, 1]")
	workers := flag.Int("workers", 1, "goroutines per diffusion sweep")
	maxIterations := flag.Int("max-iterations", 10000, "diffusion iteration bound (0 = unbounded)")
	bruteForce := flag.Bool("brute-force", false, "use the exhaustive solver (tiny images only)")
	quiet := flag.Bool("quiet", false, "suppress progress logging")
	flag.Parse()

	if *leftPath == "" || *rightPath == "" {
		fmt.Fprintln(os.Stderr, "usage: disparity -left <image> -right <image> [-out disparity.png] ...")
		os.Exit(2)
	}
	if *scale <= 0 || *scale > 1 {
		log.Fatalf("scale %v outside (0, 1]", *scale)
	}

	left, err := loadGray(*leftPath, *scale)
	if err != nil {
		log.Fatalf("load left: %v", err)
	}
	right, err := loadGray(*rightPath, *scale)
	if err != nil {
		log.Fatalf("load right: %v", err)
	}

	graph, err := stereo.NewDisparityGraph(left, right, stereo.Options{Consistency: *consistency})
	if err != nil {
		log.Fatalf("build graph: %v", err)
	}

	var solver stereo.Solver[pixgrid.Gray]
	if *bruteForce {
		solver, err = bruteforce.New(graph)
	} else {
		opts := diffusion.Options{
			Workers:       *workers,
			MaxIterations: *maxIterations,
		}
		if !*quiet {
			opts.Progress = func(iteration int) {
				log.Printf("diffusion iteration %d", iteration)
			}
		}
		solver, err = diffusion.New(graph, opts)
	}
	if err != nil {
		log.Fatalf("build solver: %v", err)
	}

	labeling, err := solver.Find()
	if err != nil {
		log.Fatalf("solve: %v", err)
	}
	if !*quiet {
		log.Printf("solved %dx%d, energy %.3f", graph.Columns(), graph.Rows(), labeling.Penalty())
	}

	if err := writeDisparityPNG(*outPath, labeling); err != nil {
		log.Fatalf("write output: %v", err)
	}
}

// loadGray decodes an image file, optionally downscales it, and converts
// it to a luminance grid.
func loadGray(path string, scale float64) (*pixgrid.Grid[pixgrid.Gray], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if scale < 1 {
		bounds := img.Bounds()
		w := uint(float64(bounds.Dx()) * scale)
		h := uint(float64(bounds.Dy()) * scale)
		img = resize.Resize(w, h, img, resize.Lanczos3)
	}
	return toGrayGrid(img)
}

// toGrayGrid converts any decoded image to a Gray grid via the standard
// luminance weights.
func toGrayGrid(img image.Image) (*pixgrid.Grid[pixgrid.Gray], error) {
	bounds := img.Bounds()
	grid, err := pixgrid.New[pixgrid.Gray](bounds.Dy(), bounds.Dx())
	if err != nil {
		return nil, err
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			luma := ((299*r + 587*g + 114*b) / 1000) >> 8
			if err := grid.Set(y-bounds.Min.Y, x-bounds.Min.X, pixgrid.Gray(luma)); err != nil {
				return nil, err
			}
		}
	}
	return grid, nil
}

// writeDisparityPNG normalizes the labeling to 8 bits and encodes it.
func writeDisparityPNG(path string, labeling *stereo.Labeling[pixgrid.Gray]) error {
	graph := labeling.Graph()
	maxDisparity := 0
	for _, node := range labeling.Nodes() {
		if node.Disparity > maxDisparity {
			maxDisparity = node.Disparity
		}
	}

	img := image.NewGray(image.Rect(0, 0, graph.Columns(), graph.Rows()))
	for _, node := range labeling.Nodes() {
		value := uint8(0)
		if maxDisparity > 0 {
			value = uint8(255 * node.Disparity / maxDisparity)
		}
		img.Pix[node.Row*img.Stride+node.Column] = value
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
