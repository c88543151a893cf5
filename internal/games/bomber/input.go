package bomber

import (
	platformcore "github.com/vovakirdan/bomb-arcade/internal/core"
)

// firstPressFactor stretches the hold after a fresh key press so the
// terminal's auto-repeat delay does not read as a release.
const firstPressFactor = 3

// axisHold tracks one movement axis. Terminals only report key presses, so a
// direction counts as held until no press has arrived for a few ticks.
type axisHold struct {
	dir  int // -1, 0 or 1
	left int // Ticks until the direction is released
}

func (a *axisHold) press(dir, holdTicks int) {
	if dir == a.dir {
		a.left = max(a.left, holdTicks)
		return
	}
	a.dir = dir
	a.left = holdTicks * firstPressFactor
}

func (a *axisHold) decay() {
	if a.left > 0 {
		a.left--
	}
	if a.left == 0 {
		a.dir = 0
	}
}

func (a *axisHold) release() {
	a.dir = 0
	a.left = 0
}

// holdInput turns per-frame key presses into continuous movement.
type holdInput struct {
	holdTicks int
	h, v      axisHold
}

func newHoldInput(holdTicks int) *holdInput {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &holdInput{holdTicks: holdTicks}
}

// update folds one frame into the held state and returns the movement axis.
func (hi *holdInput) update(in platformcore.InputFrame) (dx, dy int) {
	fx, fy := in.Axis()

	switch {
	case fx != 0:
		hi.h.press(fx, hi.holdTicks)
	case in.Has(platformcore.ActionLeft) && in.Has(platformcore.ActionRight):
		hi.h.release()
	default:
		hi.h.decay()
	}

	switch {
	case fy != 0:
		hi.v.press(fy, hi.holdTicks)
	case in.Has(platformcore.ActionUp) && in.Has(platformcore.ActionDown):
		hi.v.release()
	default:
		hi.v.decay()
	}

	return hi.h.dir, hi.v.dir
}

func (hi *holdInput) reset() {
	hi.h.release()
	hi.v.release()
}
