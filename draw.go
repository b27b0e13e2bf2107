package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	. "github.com/quasilyte/gmath"
)

var whiteImage *ebiten.Image

func init() {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

var circleVertices []ebiten.Vertex
var circleIndices []uint16

var scratch []ebiten.Vertex

// StrokePolyline draws lines through the given world points. The width is
// given in screen pixels.
func StrokePolyline(target *ebiten.Image, points []Vec, closed bool, toScreen ebiten.GeoM, c color.Color, width float32) {
	if len(points) < 2 {
		return
	}

	var path vector.Path
	for idx, point := range points {
		p := TransformVec(toScreen, point)
		if idx == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
		} else {
			path.LineTo(float32(p.X), float32(p.Y))
		}
	}

	if closed {
		path.Close()
	}

	strokeOp := &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}

	vertices, indices := path.AppendVerticesAndIndicesForStroke(scratch[:0], nil, strokeOp)
	scratch = vertices[:0]

	ApplyColorToVertices(vertices, c)

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	target.DrawTriangles(vertices, indices, whiteImage, op)
}

// DrawCross marks a world point with a small cross.
func DrawCross(target *ebiten.Image, center Vec, toScreen ebiten.GeoM, c color.Color) {
	const arm = 4

	p := TransformVec(toScreen, center)

	x, y := float32(p.X), float32(p.Y)
	vector.StrokeLine(target, x-arm, y, x+arm, y, 1.5, c, true)
	vector.StrokeLine(target, x, y-arm, x, y+arm, 1.5, c, true)
}

// DrawFillCircle draws a circle around a world point. The radius is given in
// screen pixels.
func DrawFillCircle(target *ebiten.Image, center Vec, radius float64, toScreen ebiten.GeoM, c color.Color) {
	if circleVertices == nil {
		var path vector.Path
		path.Arc(0, 0, 100, 0, 2*math.Pi, vector.Clockwise)
		circleVertices, circleIndices = path.AppendVerticesAndIndicesForFilling(nil, nil)
	}

	p := TransformVec(toScreen, center)

	var tr ebiten.GeoM
	tr.Scale(0.01*radius, 0.01*radius)
	tr.Translate(p.X, p.Y)

	vertices := TransformVertices(tr, circleVertices, &scratch)

	ApplyColorToVertices(vertices, c)

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	target.DrawTriangles(vertices, circleIndices, whiteImage, op)
}

func ApplyColorToVertices(vertices []ebiten.Vertex, c color.Color) {
	r, g, b, a := c.RGBA()

	for idx := range vertices {
		vertices[idx].ColorR = float32(r) / 0xffff
		vertices[idx].ColorG = float32(g) / 0xffff
		vertices[idx].ColorB = float32(b) / 0xffff
		vertices[idx].ColorA = float32(a) / 0xffff
	}
}

func TransformVertices(tr ebiten.GeoM, vertices []ebiten.Vertex, reuse *[]ebiten.Vertex) []ebiten.Vertex {
	var trVertices []ebiten.Vertex

	if reuse != nil {
		// transform vertices to screen
		trVertices = (*reuse)[:0]
	}

	for _, vertex := range vertices {
		x, y := tr.Apply(float64(vertex.DstX), float64(vertex.DstY))
		vertex.DstX, vertex.DstY = float32(x), float32(y)
		trVertices = append(trVertices, vertex)
	}

	if reuse != nil {
		*reuse = trVertices[:0]
	}

	return trVertices
}

func TransformVec(tr ebiten.GeoM, value Vec) Vec {
	x, y := tr.Apply(value.X, value.Y)
	return Vec{X: x, Y: y}
}

func rgbaOf(rgba uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8((rgba >> 24) & 0xff),
		G: uint8((rgba >> 16) & 0xff),
		B: uint8((rgba >> 8) & 0xff),
		A: uint8((rgba >> 0) & 0xff),
	}
}
