package main

import (
	"fmt"
	"math"
	"time"

	"github.com/fogleman/ease"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	. "github.com/quasilyte/gmath"

	"github.com/oliverbestmann/giftwrap/hull"
	"github.com/oliverbestmann/giftwrap/tween"
)

// Viewer implements ebiten.Game. It shows a point set, reveals its hull edge
// by edge and generates a new set on click.
type Viewer struct {
	source PointSource
	seed   uint64

	points []Vec
	hull   []Vec
	area   float64

	toScreen ebiten.GeoM
	toWorld  ebiten.GeoM

	// number of hull edges drawn so far, the fraction is the part of the
	// next edge
	revealed float64
	tweens   tween.Tweens

	cursor       Vec
	cursorInside bool

	now time.Time
}

func NewViewer(source PointSource, seed uint64, points []Vec) *Viewer {
	v := &Viewer{source: source, seed: seed}
	v.show(points)
	return v
}

func (v *Viewer) show(points []Vec) {
	v.points = points
	v.hull = hull.GiftWrap(points)
	v.area = hull.Area(v.hull)
	v.now = time.Now()

	logger.Debugf("seed %d: %d points, %d hull vertices", v.seed, len(v.points), len(v.hull))

	v.updateTransform()

	// reveal the closed outline one edge after another
	edges := len(v.hull)
	if edges < 3 {
		edges = max(0, edges-1)
	}

	v.revealed = 0
	v.tweens.Clear()

	var steps []tween.Tween
	for edge := range edges {
		steps = append(steps, &tween.Simple{
			Duration: edgeRevealDuration,
			Ease:     ease.InOutQuad,
			Target:   tween.LerpValue(&v.revealed, float64(edge), float64(edge+1)),
		})
	}

	if len(steps) > 0 {
		// let the new points settle before the outline starts
		v.tweens.Add(tween.Delay(revealDelay, tween.Sequence(steps...)))
	}
}

func (v *Viewer) updateTransform() {
	bounds := generateArea
	if len(v.points) > 0 && !v.source.CanRegenerate() {
		bounds = boundsOf(v.points)
	}

	size := bounds.Max.Sub(bounds.Min)
	scale := math.Min(
		(screenWidth-2*screenMargin)/math.Max(size.X, 1e-9),
		(screenHeight-2*screenMargin)/math.Max(size.Y, 1e-9),
	)

	center := bounds.Min.Add(size.Mulf(0.5))

	// y points up in the world
	v.toScreen.Reset()
	v.toScreen.Translate(-center.X, -center.Y)
	v.toScreen.Scale(scale, -scale)
	v.toScreen.Translate(screenWidth/2, screenHeight/2)

	v.toWorld = v.toScreen
	v.toWorld.Invert()
}

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	dt := time.Since(v.now)
	v.now = v.now.Add(dt)

	v.tweens.Update(dt)

	if Clicked() && v.source.CanRegenerate() {
		v.seed++
		v.show(v.source.Generate(v.seed))
	}

	v.cursor = CursorPosition(v.toWorld)
	v.cursorInside = hull.Contains(v.hull, v.cursor)

	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(BackgroundColor)

	for _, point := range v.points {
		DrawCross(screen, point, v.toScreen, PointColor)
	}

	if v.tweens.Running() {
		StrokePolyline(screen, v.revealedOutline(), false, v.toScreen, HullColor, hullStrokeWidth)
	} else {
		StrokePolyline(screen, v.hull, len(v.hull) > 2, v.toScreen, HullColor, hullStrokeWidth)
	}

	if len(v.hull) > 0 {
		DrawFillCircle(screen, v.hull[0], 5, v.toScreen, AnchorColor)
	}

	cursorColor := CursorOutsideColor
	if v.cursorInside {
		cursorColor = CursorInsideColor
	}

	DrawFillCircle(screen, v.cursor, 3, v.toScreen, cursorColor)

	status := fmt.Sprintf(
		"seed %d   points %d   hull %d   area %.2f   cursor (%.2f, %.2f) inside=%t",
		v.seed, len(v.points), len(v.hull), v.area, v.cursor.X, v.cursor.Y, v.cursorInside,
	)

	if v.source.CanRegenerate() {
		status += "\nclick or press space for new points"
	}

	ebitenutil.DebugPrintAt(screen, status, 8, 8)
}

// revealedOutline returns the part of the closed hull that is visible at the
// current animation state.
func (v *Viewer) revealedOutline() []Vec {
	n := len(v.hull)
	if n < 2 {
		return nil
	}

	full := int(v.revealed)

	outline := make([]Vec, 0, n+1)
	for idx := 0; idx <= full && idx <= n; idx++ {
		outline = append(outline, v.hull[idx%n])
	}

	if frac := v.revealed - float64(full); frac > 0 && full < n {
		from := v.hull[full%n]
		to := v.hull[(full+1)%n]
		outline = append(outline, from.Add(to.Sub(from).Mulf(frac)))
	}

	return outline
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	_ = outsideWidth
	_ = outsideHeight

	// stay with a fixed screen size
	return screenWidth, screenHeight
}

func boundsOf(points []Vec) Rect {
	bounds := Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		bounds.Min.X = math.Min(bounds.Min.X, p.X)
		bounds.Min.Y = math.Min(bounds.Min.Y, p.Y)
		bounds.Max.X = math.Max(bounds.Max.X, p.X)
		bounds.Max.Y = math.Max(bounds.Max.Y, p.Y)
	}

	return bounds
}
