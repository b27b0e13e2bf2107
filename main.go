package main

import (
	"context"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/juju/errors"
	"github.com/juju/loggo"
	. "github.com/quasilyte/gmath"

	"github.com/oliverbestmann/giftwrap/hull"
	"github.com/oliverbestmann/giftwrap/pointset"
)

var logger = loggo.GetLogger("giftwrap")

func main() {
	os.Exit(mainWithExitCode())
}

func mainWithExitCode() int {
	// exits on malformed flags
	_ = flags.Parse(true, os.Args[1:])

	if err := loggo.ConfigureLoggers(*logConfigFlag); err != nil {
		logger.Errorf("invalid -log value: %v", err)
		return 2
	}

	if *cpuProfileFlag {
		defer ProfileStart()()
	}

	if err := run(context.Background()); err != nil {
		logger.Errorf("%v", err)
		return 1
	}

	return 0
}

func run(ctx context.Context) error {
	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	source := PointSource{
		Count:     *pointCountFlag,
		Clustered: *clusteredFlag,
		Path:      *inputFlag,
	}

	points, err := source.Load(ctx, seed)
	if err != nil {
		return errors.Trace(err)
	}

	if *headlessFlag {
		return errors.Trace(printHull(points))
	}

	logger.Infof("showing %d points, seed %d", len(points), seed)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Gift wrapping")
	ebiten.SetVsyncEnabled(true)

	err = ebiten.RunGame(NewViewer(source, seed, points))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}

	return errors.Trace(err)
}

func printHull(points []Vec) error {
	result, err := hull.Compute(points)
	if err != nil {
		return errors.Trace(err)
	}

	logger.Infof("hull of %d points has %d vertices", len(points), len(result))

	return errors.Trace(pointset.Write(os.Stdout, result))
}
