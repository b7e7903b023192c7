package tween

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Setter receives the current value of a timeline step. A nil Setter stands for a target that doesn't exist; the step still
// takes up its time on the timeline but does nothing.
type Setter func(value float32)

// Defaults are applied to every step added to a Timeline.
type Defaults struct {
	Duration float32 // Duration of each step, in seconds
	Ease     ease.TweenFunc
}

type step struct {
	start float32
	tween *gween.Tween
	set   Setter
	done  bool
}

// Timeline is a forward-only sequence of tweened steps, each starting when the previous one ends. It plays once; there is
// no reversing or replaying, and nothing needs to hold on to it once it finishes.
type Timeline struct {
	Defaults Defaults
	steps    []*step
	elapsed  float32
	end      float32
}

// NewTimeline creates an empty Timeline. A zero default duration becomes 1 second, and a nil easing becomes DefaultEase.
func NewTimeline(defaults Defaults) *Timeline {
	if defaults.Duration <= 0 {
		defaults.Duration = 1
	}
	if defaults.Ease == nil {
		defaults.Ease = DefaultEase
	}
	return &Timeline{Defaults: defaults}
}

// FromTo appends a step that moves a value from one value to another using the Timeline's defaults. The from value is
// applied immediately, so the target starts out at it even while earlier steps play.
func (tl *Timeline) FromTo(from, to float32, set Setter) *Timeline {
	return tl.FromToDuration(from, to, tl.Defaults.Duration, set)
}

// FromToDuration is FromTo with an explicit duration in seconds.
func (tl *Timeline) FromToDuration(from, to, duration float32, set Setter) *Timeline {

	s := &step{
		start: tl.end,
		tween: gween.New(from, to, duration, tl.Defaults.Ease),
		set:   set,
	}

	if set != nil {
		set(from)
	}

	tl.steps = append(tl.steps, s)
	tl.end += duration

	return tl

}

// Update advances the Timeline by dt seconds, updating every step that's in progress. It returns true once every step has finished.
func (tl *Timeline) Update(dt float32) bool {

	tl.elapsed += dt

	finished := true

	for _, s := range tl.steps {

		if s.done {
			continue
		}

		local := tl.elapsed - s.start

		if local < 0 {
			finished = false
			continue
		}

		value, stepFinished := s.tween.Set(local)

		if s.set != nil {
			s.set(value)
		}

		s.done = stepFinished

		if !stepFinished {
			finished = false
		}

	}

	return finished

}

// Duration returns the total length of the Timeline in seconds.
func (tl *Timeline) Duration() float32 {
	return tl.end
}

// Elapsed returns how far into the Timeline playback is, in seconds.
func (tl *Timeline) Elapsed() float32 {
	return tl.elapsed
}

// Finished returns if every step of the Timeline has finished.
func (tl *Timeline) Finished() bool {
	for _, s := range tl.steps {
		if !s.done {
			return false
		}
	}
	return true
}
