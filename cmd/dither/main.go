// Command dither converts an image to greyscale, quantises it to one bit,
// and dithers it with an error-diffusion kernel. It writes greyscale.png,
// quantise.png and dithered.png to the working directory.
//
// With -push the greyscale frame is additionally sent to a remote host over
// raw TCP — an experimental side channel; failures there are logged but do
// not fail the run.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mnerv/pix"
	"github.com/mnerv/pix/filter"
	"github.com/mnerv/pix/framepush"
)

func main() {
	var (
		kernel   = flag.String("kernel", "fs", `diffusion kernel: "fs" (Floyd-Steinberg) or "minavg" (minimized average error)`)
		push     = flag.String("push", "", "host to push the greyscale frame to over TCP (port 80 unless given)")
		compress = flag.Bool("compress", false, "zstd-compress the pushed frame")
	)
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "No file given")
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <filename> [push-host]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	filename := flag.Arg(0)
	if *push == "" && flag.NArg() > 1 {
		*push = flag.Arg(1)
	}
	if _, err := os.Stat(filename); err != nil {
		fmt.Fprintln(os.Stderr, "Not a valid file")
		os.Exit(1)
	}

	var diffusion filter.Kernel
	switch *kernel {
	case "fs":
		diffusion = filter.FloydSteinberg
	case "minavg":
		diffusion = filter.MinAvgError
	default:
		log.Fatalf("Unknown kernel %q", *kernel)
	}

	img, err := pix.Load(filename)
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}

	quantised := pix.New(img.Width(), img.Height(), img.Channels())
	dithered := pix.New(img.Width(), img.Height(), img.Channels())

	pix.Transform(img, img, filter.Greyscale)
	pix.Transform(img, quantised, filter.Quantise1Bit)
	filter.Diffuse(img, dithered, diffusion, filter.Quantise1Bit)

	for _, out := range []struct {
		path string
		img  *pix.Image
	}{
		{path: "greyscale.png", img: img},
		{path: "quantise.png", img: quantised},
		{path: "dithered.png", img: dithered},
	} {
		if err := pix.WritePNG(out.path, out.img); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
	}

	if *push != "" {
		p := &framepush.Pusher{Addr: *push, Compress: *compress}
		if err := p.Push(img); err != nil {
			log.Printf("Frame push failed: %v", err)
		}
	}
}
