package loggers

import (
	"errors"
	"testing"

	"github.com/samuelfneumann/rltrack/callback"
)

// fakeRenderer records render calls and optionally fails
type fakeRenderer struct {
	calls []string
	err   error
}

func (f *fakeRenderer) Render(mode string) error {
	f.calls = append(f.calls, mode)
	return f.err
}

func TestVisualizerRendersEveryStep(t *testing.T) {
	env := &fakeRenderer{}
	v := NewVisualizer(env)

	for i := 0; i < 5; i++ {
		if err := v.OnStepEnd(i, callback.Logs{}); err != nil {
			t.Fatalf("step %v: %v", i, err)
		}
	}

	if len(env.calls) != 5 {
		t.Fatalf("expected 5 render calls, got %v", len(env.calls))
	}
	for _, mode := range env.calls {
		if mode != "human" {
			t.Errorf("expected human render mode, got %q", mode)
		}
	}
}

func TestVisualizerPropagatesRenderErrors(t *testing.T) {
	renderErr := errors.New("display unavailable")
	v := NewVisualizer(&fakeRenderer{err: renderErr})

	if err := v.OnStepEnd(0, callback.Logs{}); err != renderErr {
		t.Errorf("expected %v, got %v", renderErr, err)
	}
}
