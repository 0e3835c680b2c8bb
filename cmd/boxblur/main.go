// Command boxblur applies a 3×3 box blur to an image and writes the result
// to box_blur_out.png in the working directory.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mnerv/pix"
	"github.com/mnerv/pix/filter"
)

func main() {
	radius := flag.Int("radius", 1, "blur window radius in pixels")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "No file given")
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <filename>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	filename := flag.Arg(0)
	if _, err := os.Stat(filename); err != nil {
		fmt.Fprintln(os.Stderr, "Not a valid file")
		os.Exit(1)
	}

	img, err := pix.Load(filename)
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}

	out := filter.BoxBlurRadius(img, *radius)
	if err := pix.WritePNG("box_blur_out.png", out); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
}
