package bomber

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Banner timing in seconds.
const (
	bannerSlide = 0.6
	bannerHold  = 1.2
	flashTime   = 0.35
	hurtTime    = 0.6
)

// effects holds presentation-only animation state. Nothing here feeds back
// into the simulation.
type effects struct {
	banner     *gween.Tween
	bannerText string
	bannerPos  float32 // 0 = off-screen left, 1 = centred
	bannerLeft float64 // Seconds until the banner disappears

	flash      *gween.Tween
	flashLevel float32 // 1 right after a detonation, fades to 0

	hurt      *gween.Tween
	hurtLevel float32 // Border pulse after the player is hit
}

func newEffects() *effects {
	return &effects{}
}

// showBanner slides text in from the left.
func (e *effects) showBanner(text string) {
	e.bannerText = text
	e.bannerPos = 0
	e.banner = gween.New(0, 1, bannerSlide, ease.OutQuad)
	e.bannerLeft = bannerSlide + bannerHold
}

func (e *effects) explode() {
	e.flash = gween.New(1, 0, flashTime, ease.Linear)
	e.flashLevel = 1
}

func (e *effects) playerHit() {
	e.hurt = gween.New(1, 0, hurtTime, ease.OutQuad)
	e.hurtLevel = 1
}

// update advances every running tween by dt seconds.
func (e *effects) update(dt float64) {
	step := float32(dt)

	if e.banner != nil {
		pos, done := e.banner.Update(step)
		e.bannerPos = pos
		if done {
			e.banner = nil
			e.bannerPos = 1
		}
	}
	if e.bannerLeft > 0 {
		e.bannerLeft -= dt
		if e.bannerLeft <= 0 {
			e.bannerText = ""
		}
	}

	if e.flash != nil {
		lvl, done := e.flash.Update(step)
		e.flashLevel = lvl
		if done {
			e.flash = nil
			e.flashLevel = 0
		}
	}

	if e.hurt != nil {
		lvl, done := e.hurt.Update(step)
		e.hurtLevel = lvl
		if done {
			e.hurt = nil
			e.hurtLevel = 0
		}
	}
}

// bannerVisible reports whether a banner should be drawn.
func (e *effects) bannerVisible() bool {
	return e.bannerText != ""
}
