// Package tween animates values over time on top of gween: single values, colors, and forward-only timelines of keyframed steps.
package tween

import (
	"github.com/solarlune/orbital"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultEase is the easing used when none is given; it starts fast and settles into the end value.
var DefaultEase ease.TweenFunc = ease.OutQuad

// DefaultColorDuration is how long a color transition lasts by default, in seconds.
const DefaultColorDuration = 0.5

// ColorTween transitions a Color in place from its value at creation to a target value.
type ColorTween struct {
	target  *orbital.Color
	to      orbital.Color
	r, g, b *gween.Tween
	done    bool
}

// NewColorTween creates a ColorTween that moves target to the given color over duration seconds. A duration of 0 uses
// DefaultColorDuration, and a nil easing uses DefaultEase. The alpha channel is left untouched.
func NewColorTween(target *orbital.Color, to orbital.Color, duration float32, easing ease.TweenFunc) *ColorTween {

	if duration <= 0 {
		duration = DefaultColorDuration
	}

	if easing == nil {
		easing = DefaultEase
	}

	return &ColorTween{
		target: target,
		to:     to,
		r:      gween.New(target.R, to.R, duration, easing),
		g:      gween.New(target.G, to.G, duration, easing),
		b:      gween.New(target.B, to.B, duration, easing),
	}

}

// Update advances the ColorTween by dt seconds, writing the current color to its target. It returns true once the
// transition has finished.
func (ct *ColorTween) Update(dt float32) bool {

	if ct.done {
		return true
	}

	r, _ := ct.r.Update(dt)
	g, _ := ct.g.Update(dt)
	b, finished := ct.b.Update(dt)

	ct.target.R = r
	ct.target.G = g
	ct.target.B = b

	ct.done = finished

	return finished

}

// Target returns the color the ColorTween is heading towards.
func (ct *ColorTween) Target() orbital.Color {
	return ct.to
}

// Finished returns if the ColorTween has reached its target.
func (ct *ColorTween) Finished() bool {
	return ct.done
}

// ColorAnimator keeps at most one ColorTween running on a Color; starting a new transition replaces the one in flight,
// picking up from wherever the color currently is.
type ColorAnimator struct {
	Target   *orbital.Color
	Duration float32
	Ease     ease.TweenFunc
	current  *ColorTween
}

// NewColorAnimator creates a ColorAnimator for the given Color using the default duration and easing.
func NewColorAnimator(target *orbital.Color) *ColorAnimator {
	return &ColorAnimator{
		Target:   target,
		Duration: DefaultColorDuration,
		Ease:     DefaultEase,
	}
}

// To starts a transition of the animator's target towards the given color, overriding any transition in progress.
func (ca *ColorAnimator) To(color orbital.Color) {
	ca.current = NewColorTween(ca.Target, color, ca.Duration, ca.Ease)
}

// Update advances the transition in progress, if any, by dt seconds.
func (ca *ColorAnimator) Update(dt float32) {
	if ca.current != nil && ca.current.Update(dt) {
		ca.current = nil
	}
}

// Active returns if a transition is in progress.
func (ca *ColorAnimator) Active() bool {
	return ca.current != nil
}
