package main

import "github.com/juju/gnuflag"

var flags = gnuflag.NewFlagSet("giftwrap", gnuflag.ExitOnError)

// Command-line flags of the hull viewer. Points are generated unless -in
// names a file to load them from.
var (
	// pointCountFlag is the number of generated points.
	pointCountFlag = flags.Int("n", 50, "number of points to generate")

	// seedFlag seeds the generator, zero picks a seed from the clock.
	seedFlag = flags.Uint64("seed", 0, "seed for point generation (0 = random)")

	// clusteredFlag switches from uniform to noise clustered generation.
	clusteredFlag = flags.Bool("clustered", false, "generate clustered instead of uniform points")

	// inputFlag reads points from a file instead, "-" for stdin.
	inputFlag = flags.String("in", "", `read points from a file ("-" for stdin)`)

	// headlessFlag prints the hull to stdout instead of opening a window.
	headlessFlag = flags.Bool("headless", false, "print the hull and exit")

	cpuProfileFlag = flags.Bool("cpuprofile", false, "write a cpu profile to the working directory")

	// logConfigFlag is handed to loggo.ConfigureLoggers.
	logConfigFlag = flags.String("log", "<root>=INFO", "logging configuration")
)
