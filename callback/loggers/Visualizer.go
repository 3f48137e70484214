package loggers

import "github.com/samuelfneumann/rltrack/callback"

// Visualizer renders a human-visible view of the environment after every
// environmental step. It holds no state of its own; rendering failures are
// returned unmodified so they surface in the host training loop.
type Visualizer struct {
	callback.Base
	env callback.Renderer
}

// NewVisualizer creates and returns a new *Visualizer rendering the given
// environment
func NewVisualizer(env callback.Renderer) *Visualizer {
	return &Visualizer{env: env}
}

// OnStepEnd renders the environment
func (v *Visualizer) OnStepEnd(step int, logs callback.Logs) error {
	return v.env.Render("human")
}
