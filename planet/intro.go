package planet

import (
	"github.com/solarlune/orbital"
	"github.com/solarlune/orbital/tween"
)

// NewIntro creates the intro animation: the sphere scales up from nothing, then the navigation bar slides down into
// place, then the title fades in. The starting values are applied right away. A nil sphere or chrome skips its steps.
func NewIntro(cfg Config, sphere *orbital.Model, chrome *Chrome) *tween.Timeline {

	tl := tween.NewTimeline(tween.Defaults{Duration: cfg.IntroStepDuration})

	var scale, nav, title tween.Setter

	if sphere != nil {
		scale = func(v float32) { sphere.SetScale(float64(v), float64(v), float64(v)) }
	}

	if chrome != nil {
		nav = func(v float32) { chrome.NavOffset = v }
		title = func(v float32) { chrome.TitleOpacity = v }
	}

	tl.FromTo(0, 1, scale)
	tl.FromTo(-100, 0, nav)
	tl.FromTo(0, 1, title)

	return tl

}
