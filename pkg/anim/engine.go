package anim

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "anim")

// DefaultFPS is the target tick rate for Run.
const DefaultFPS = 60

// Engine maintains the set of active animations and advances them on every
// tick. Completed animations are removed after their final callback.
type Engine struct {
	mu         sync.Mutex
	animations []*Animation
}

func NewEngine() *Engine {
	return &Engine{}
}

// Add registers an animation built by the caller.
func (e *Engine) Add(a *Animation) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.animations = append(e.animations, a)
}

// Animate creates, registers and returns a new animation.
func (e *Engine) Animate(duration time.Duration, easing Easing, onUpdate func(progress float64)) *Animation {
	a := NewAnimation(duration, easing, onUpdate)
	e.Add(a)
	return a
}

// Update advances all active animations by delta and drops the completed
// ones.
func (e *Engine) Update(delta time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()

	active := e.animations[:0]
	for _, a := range e.animations {
		a.Update(delta)
		if !a.Done() {
			active = append(active, a)
		}
	}

	e.animations = active
}

// StopAll cancels and removes every animation.
func (e *Engine) StopAll() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, a := range e.animations {
		a.Stop()
	}

	e.animations = nil
}

// Active returns the number of running animations.
func (e *Engine) Active() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.animations)
}

// Run ticks the engine at the target fps until ctx is canceled, feeding
// Update with measured deltas. fps <= 0 falls back to DefaultFPS.
func (e *Engine) Run(ctx context.Context, fps int) {
	if fps <= 0 {
		fps = DefaultFPS
	}

	interval := time.Second / time.Duration(fps)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Debugf("animation loop started at %d fps", fps)

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			log.Debugf("animation loop stopped")
			return

		case now := <-ticker.C:
			e.Update(now.Sub(last))
			last = now
		}
	}
}
