package main

import (
	"image/color"
	"time"
)

var BackgroundColor color.Color = rgbaOf(0xdbcfb1ff)
var PointColor color.Color = rgbaOf(0x6f8b6eff)
var HullColor color.Color = rgbaOf(0xa05e5eff)
var AnchorColor color.Color = rgbaOf(0x8e6d89ff)
var CursorInsideColor color.Color = rgbaOf(0x87a985ff)
var CursorOutsideColor color.Color = rgbaOf(0x838383ff)

const (
	screenWidth  = 800
	screenHeight = 800

	// margin around the points in screen pixels
	screenMargin = 48

	hullStrokeWidth = 2

	// pause before the hull outline starts
	revealDelay = 300 * time.Millisecond

	// time to draw one hull edge
	edgeRevealDuration = 120 * time.Millisecond
)
