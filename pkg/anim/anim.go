// Package anim drives time-based visual transitions. It operates purely on
// numeric progress and caller-supplied callbacks; it knows nothing about
// tree data and must never be relied on for correctness.
package anim

import "time"

// Easing maps raw time progress in [0,1] to a perceptually smoother value.
type Easing int

const (
	Linear Easing = iota
	EaseIn
	EaseOut
	EaseInOut
)

func (e Easing) Apply(t float64) float64 {
	switch e {
	case EaseIn:
		return t * t

	case EaseOut:
		return t * (2 - t)

	case EaseInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		u := -2*t + 2
		return 1 - u*u/2
	}

	return t
}

// Animation is a single time-bounded progress tracker. OnUpdate receives the
// eased progress once per tick; the final call carries exactly 1.0, after
// which OnComplete fires and the animation is done.
type Animation struct {
	Duration   time.Duration
	Easing     Easing
	OnUpdate   func(progress float64)
	OnComplete func()

	elapsed time.Duration
	running bool
	done    bool
}

func NewAnimation(duration time.Duration, easing Easing, onUpdate func(progress float64)) *Animation {
	return &Animation{
		Duration: duration,
		Easing:   easing,
		OnUpdate: onUpdate,
		running:  true,
	}
}

// Update advances the animation by delta.
func (a *Animation) Update(delta time.Duration) {
	if !a.running {
		return
	}

	a.elapsed += delta

	progress := 1.0
	if a.elapsed >= a.Duration {
		a.done = true
		a.running = false
	} else {
		progress = a.Easing.Apply(float64(a.elapsed) / float64(a.Duration))
	}

	if a.OnUpdate != nil {
		a.OnUpdate(progress)
	}

	if a.done && a.OnComplete != nil {
		a.OnComplete()
	}
}

// Stop cancels the animation without a final progress callback.
func (a *Animation) Stop() {
	a.running = false
	a.done = true
}

func (a *Animation) Done() bool {
	return a.done
}

// Lerp interpolates between start and end by progress.
func Lerp(start, end, progress float64) float64 {
	return start + (end-start)*progress
}

// NewPositionAnimation eases a point from (startX, startY) to (endX, endY),
// reporting interpolated coordinates to onMove.
func NewPositionAnimation(startX, startY, endX, endY float64, duration time.Duration, onMove func(x, y float64)) *Animation {
	return NewAnimation(duration, EaseInOut, func(progress float64) {
		onMove(Lerp(startX, endX, progress), Lerp(startY, endY, progress))
	})
}
