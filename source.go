package main

import (
	"context"

	"github.com/juju/errors"
	. "github.com/quasilyte/gmath"

	"github.com/oliverbestmann/giftwrap/pointset"
	"github.com/oliverbestmann/giftwrap/scatter"
)

// generated points fill a square of side 10 around the origin
var generateArea = Rect{
	Min: Vec{X: -5, Y: -5},
	Max: Vec{X: 5, Y: 5},
}

// PointSource provides the points the hull is computed for.
type PointSource struct {
	Count     int
	Clustered bool

	// Path of a point file, empty to generate points
	Path string
}

func (s PointSource) CanRegenerate() bool {
	return s.Path == ""
}

func (s PointSource) Load(ctx context.Context, seed uint64) ([]Vec, error) {
	if s.Path != "" {
		points, err := pointset.ReadFile(ctx, s.Path)
		return points, errors.Trace(err)
	}

	return s.Generate(seed), nil
}

func (s PointSource) Generate(seed uint64) []Vec {
	rng := scatter.RandWithSeed(seed)

	if s.Clustered {
		return scatter.Clustered(rng, generateArea, s.Count)
	}

	return scatter.Uniform(rng, generateArea, s.Count)
}
