// Package callback implements observers of the agent-environment training
// loop. Callbacks are notified when training begins and ends, when an
// episode begins and ends, and when a single environmental step begins and
// ends. Callbacks never drive the loop themselves; the host training loop
// invokes them synchronously through a List.
package callback

import "gonum.org/v1/gonum/mat"

// Logs packages together the named values that the training loop reports
// with each event. Which fields are meaningful depends on the event: a
// step-end carries Episode, Observation, Reward, Action, and Metrics, while
// an episode-end carries EpisodeReward and NbSteps.
type Logs struct {
	// Episode identifies which episode a step belongs to. Multi-threaded
	// training loops may run several episodes at once, so step events
	// cannot assume they belong to the most recently started episode.
	Episode int

	Observation mat.Vector
	Reward      float64
	Action      mat.Vector

	// Metrics holds one value per name reported by the Model, in the
	// same order as Model.MetricsNames(). Values may be NaN when the
	// model has nothing to report for a step.
	Metrics []float64

	EpisodeReward float64
	NbSteps       int
}

// Model is the view of the learning algorithm that callbacks consume. The
// metric names are fixed for the duration of a training run and are read
// once when training begins.
type Model interface {
	MetricsNames() []string
}

// Renderer renders a human-visible view of the environment.
type Renderer interface {
	Render(mode string) error
}

// Params holds the parameters of a training run. A zero NbSteps or
// NbEpisodes means that bound is unknown and training runs indefinitely
// with respect to it.
type Params struct {
	NbSteps    uint
	NbEpisodes uint
	Env        Renderer
}

// Callback is the minimal contract every training observer satisfies.
// Train begin and end share a single naming convention, unlike the
// per-episode and per-step events, which exist under both an
// episode/step and a legacy epoch/batch convention (see List).
type Callback interface {
	OnTrainBegin(logs Logs) error
	OnTrainEnd(logs Logs) error
}

// EpisodeObserver is the episode-convention capability: callbacks that
// implement it are notified at episode boundaries. Episode indices are
// 0-based; loggers render them 1-based.
type EpisodeObserver interface {
	OnEpisodeBegin(episode int, logs Logs) error
	OnEpisodeEnd(episode int, logs Logs) error
}

// StepObserver is the step-convention capability: callbacks that implement
// it are notified around every environmental step.
type StepObserver interface {
	OnStepBegin(step int, logs Logs) error
	OnStepEnd(step int, logs Logs) error
}

// EpochObserver is the legacy naming convention for episode boundaries,
// kept so that callbacks written against epoch/batch-style APIs can be
// registered unmodified.
type EpochObserver interface {
	OnEpochBegin(epoch int, logs Logs) error
	OnEpochEnd(epoch int, logs Logs) error
}

// BatchObserver is the legacy naming convention for step boundaries.
type BatchObserver interface {
	OnBatchBegin(batch int, logs Logs) error
	OnBatchEnd(batch int, logs Logs) error
}

// Base is a no-op implementation of the train, episode, and step events.
// Concrete callbacks embed Base and override only the events they care
// about, the same way keras-style callbacks inherit no-op defaults.
type Base struct{}

// OnTrainBegin does nothing
func (Base) OnTrainBegin(logs Logs) error { return nil }

// OnTrainEnd does nothing
func (Base) OnTrainEnd(logs Logs) error { return nil }

// OnEpisodeBegin does nothing
func (Base) OnEpisodeBegin(episode int, logs Logs) error { return nil }

// OnEpisodeEnd does nothing
func (Base) OnEpisodeEnd(episode int, logs Logs) error { return nil }

// OnStepBegin does nothing
func (Base) OnStepBegin(step int, logs Logs) error { return nil }

// OnStepEnd does nothing
func (Base) OnStepEnd(step int, logs Logs) error { return nil }
