package callback

// bound holds a registered callback together with the event methods chosen
// for it when it was appended to the List. Choosing the methods once at
// registration time avoids re-probing the callback's capabilities on every
// dispatch.
type bound struct {
	callback     Callback
	episodeBegin func(int, Logs) error
	episodeEnd   func(int, Logs) error
	stepBegin    func(int, Logs) error
	stepEnd      func(int, Logs) error
}

// List dispatches training events to an ordered sequence of callbacks.
//
// Registered callbacks may use either of two naming conventions for the
// same events: the episode/step convention (EpisodeObserver, StepObserver)
// or the legacy epoch/batch convention (EpochObserver, BatchObserver).
// The convention is resolved per callback, so a single List can mix
// variants. A callback offering neither convention for an event cannot be
// registered: Append fails rather than silently dropping events.
//
// A List assumes the host training loop serializes calls to it. Dispatch
// is synchronous; each event method returns once every registered callback
// has been invoked, or as soon as one of them returns an error.
type List struct {
	callbacks []bound
}

// NewList creates a List and registers the given callbacks in order. It
// fails if any callback supports neither naming convention for the episode
// or step events.
func NewList(callbacks ...Callback) (*List, error) {
	l := &List{}
	for _, c := range callbacks {
		if err := l.Append(c); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Append registers a callback at the end of the List, resolving which
// naming convention the callback supports for episode and step events.
// The episode/step convention is preferred; the legacy epoch/batch
// convention is the fallback. If neither is available for one of the two
// event pairs, Append returns an unsupported-capability error, detectable
// with IsUnsupportedCapability.
func (l *List) Append(c Callback) error {
	b := bound{callback: c}

	switch obs := c.(type) {
	case EpisodeObserver:
		b.episodeBegin = obs.OnEpisodeBegin
		b.episodeEnd = obs.OnEpisodeEnd
	case EpochObserver:
		b.episodeBegin = obs.OnEpochBegin
		b.episodeEnd = obs.OnEpochEnd
	default:
		return &ListError{Op: "append", Err: errNoEpisodeObserver}
	}

	switch obs := c.(type) {
	case StepObserver:
		b.stepBegin = obs.OnStepBegin
		b.stepEnd = obs.OnStepEnd
	case BatchObserver:
		b.stepBegin = obs.OnBatchBegin
		b.stepEnd = obs.OnBatchEnd
	default:
		return &ListError{Op: "append", Err: errNoStepObserver}
	}

	l.callbacks = append(l.callbacks, b)
	return nil
}

// Len returns the number of registered callbacks
func (l *List) Len() int {
	return len(l.callbacks)
}

// OnTrainBegin notifies every registered callback that training has begun
func (l *List) OnTrainBegin(logs Logs) error {
	for _, b := range l.callbacks {
		if err := b.callback.OnTrainBegin(logs); err != nil {
			return err
		}
	}
	return nil
}

// OnTrainEnd notifies every registered callback that training has ended
func (l *List) OnTrainEnd(logs Logs) error {
	for _, b := range l.callbacks {
		if err := b.callback.OnTrainEnd(logs); err != nil {
			return err
		}
	}
	return nil
}

// OnEpisodeBegin notifies every registered callback that an episode has
// begun, using whichever naming convention was resolved at registration
func (l *List) OnEpisodeBegin(episode int, logs Logs) error {
	for _, b := range l.callbacks {
		if err := b.episodeBegin(episode, logs); err != nil {
			return err
		}
	}
	return nil
}

// OnEpisodeEnd notifies every registered callback that an episode has ended
func (l *List) OnEpisodeEnd(episode int, logs Logs) error {
	for _, b := range l.callbacks {
		if err := b.episodeEnd(episode, logs); err != nil {
			return err
		}
	}
	return nil
}

// OnStepBegin notifies every registered callback that an environmental
// step is about to be taken
func (l *List) OnStepBegin(step int, logs Logs) error {
	for _, b := range l.callbacks {
		if err := b.stepBegin(step, logs); err != nil {
			return err
		}
	}
	return nil
}

// OnStepEnd notifies every registered callback that an environmental step
// has completed
func (l *List) OnStepEnd(step int, logs Logs) error {
	for _, b := range l.callbacks {
		if err := b.stepEnd(step, logs); err != nil {
			return err
		}
	}
	return nil
}
