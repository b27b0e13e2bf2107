// Package tween drives time based animations in the hull viewer.
package tween

import (
	"slices"
	"time"

	"github.com/quasilyte/gmath"
)

// Tweens runs a set of tweens side by side until each one is done.
type Tweens struct {
	tweens []Tween
}

func (t *Tweens) Add(tween Tween) {
	if tween.Update(0) {
		return
	}

	t.tweens = append(t.tweens, tween)
}

func (t *Tweens) Update(dt time.Duration) {
	t.tweens = slices.DeleteFunc(t.tweens, func(tween Tween) bool {
		return tween.Update(dt)
	})
}

// Clear drops all running tweens without finishing them.
func (t *Tweens) Clear() {
	t.tweens = nil
}

func (t *Tweens) Running() bool {
	return len(t.tweens) > 0
}

// Target receives the eased progress f in [0, 1].
type Target func(f float64)

type Tween interface {
	Update(dt time.Duration) (done bool)
}

type Simple struct {
	Duration time.Duration
	Target   Target
	Ease     func(t float64) float64

	elapsed time.Duration
}

func (t *Simple) Update(dt time.Duration) bool {
	if t.Duration <= 0 {
		if t.Target != nil {
			t.Target(1)
		}

		return true
	}

	t.elapsed += dt

	f := min(1, float64(t.elapsed)/float64(t.Duration))

	if t.Ease != nil {
		f = t.Ease(f)
	}

	if t.Target != nil {
		t.Target(f)
	}

	return t.elapsed >= t.Duration
}

// Sequence runs tweens one after another. Time left over when one finishes
// is not carried into the next.
func Sequence(tweens ...Tween) Tween {
	return &sequence{tweens: tweens}
}

type sequence struct {
	tweens []Tween
}

func (s *sequence) Update(dt time.Duration) bool {
	for len(s.tweens) > 0 {
		if done := s.tweens[0].Update(dt); !done {
			break
		}

		// the next one starts in the same frame
		s.tweens = s.tweens[1:]
		dt = 0
	}

	return len(s.tweens) == 0
}

func Delay(delay time.Duration, next Tween) Tween {
	return Sequence(&Simple{Duration: delay}, next)
}

func LerpValue(target *float64, from, to float64) Target {
	return func(f float64) {
		*target = gmath.Lerp(from, to, f)
	}
}
