package loggers

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/samuelfneumann/rltrack/callback"
)

func metricLogs(metrics []float64) callback.Logs {
	return callback.Logs{Reward: 1.0, Metrics: metrics}
}

func TestIntervalNaNSubstitution(t *testing.T) {
	var out bytes.Buffer
	model := stubModel{names: []string{"a", "b"}}
	l := NewInterval(model, callback.Params{}, 10, &out)
	if err := l.OnTrainBegin(callback.Logs{}); err != nil {
		t.Fatalf("train begin: %v", err)
	}

	l.OnStepBegin(0, callback.Logs{})
	l.OnStepEnd(0, metricLogs([]float64{1.0, math.NaN()}))

	out.Reset()
	l.OnStepBegin(1, callback.Logs{})
	l.OnStepEnd(1, metricLogs([]float64{math.NaN(), 2.0}))

	// The NaN at index 0 must be substituted with the only prior value in
	// the window (1.0), leaving no NaN, so both metrics display.
	got := out.String()
	if !strings.Contains(got, "a: 1.000") {
		t.Errorf("expected substituted value a: 1.000 in display:\n%q", got)
	}
	if !strings.Contains(got, "b: 2.000") {
		t.Errorf("expected raw value b: 2.000 in display:\n%q", got)
	}

	// The raw rows, NaN included, must be buffered unmodified.
	if len(l.metrics) != 2 {
		t.Fatalf("expected 2 buffered rows, got %v", len(l.metrics))
	}
	if !math.IsNaN(l.metrics[0][1]) || l.metrics[0][0] != 1.0 {
		t.Errorf("first raw row modified: %v", l.metrics[0])
	}
	if !math.IsNaN(l.metrics[1][0]) || l.metrics[1][1] != 2.0 {
		t.Errorf("second raw row modified: %v", l.metrics[1])
	}
}

func TestIntervalNaNWithEmptyWindowHidesMetrics(t *testing.T) {
	var out bytes.Buffer
	model := stubModel{names: []string{"a"}}
	l := NewInterval(model, callback.Params{}, 10, &out)
	l.OnTrainBegin(callback.Logs{})

	out.Reset()
	l.OnStepBegin(0, callback.Logs{})
	l.OnStepEnd(0, metricLogs([]float64{math.NaN()}))

	got := out.String()
	if !strings.Contains(got, "reward: 1.000") {
		t.Errorf("reward should always display:\n%q", got)
	}
	if strings.Contains(got, "a:") {
		t.Errorf("metrics with unresolved NaN should not display:\n%q", got)
	}
}

func TestIntervalWindowReset(t *testing.T) {
	var out bytes.Buffer
	model := stubModel{names: []string{"a"}}
	l := NewInterval(model, callback.Params{}, 10, &out)
	l.OnTrainBegin(callback.Logs{})

	for i := 0; i < 10; i++ {
		l.OnStepBegin(i, callback.Logs{})
		l.OnStepEnd(i, metricLogs([]float64{0.5}))
	}
	if n := strings.Count(out.String(), "Interval "); n != 1 {
		t.Fatalf("steps 0-9 should produce exactly one interval header, "+
			"got %v", n)
	}
	if !strings.Contains(out.String(), "Interval 1 (0 steps performed)") {
		t.Errorf("missing first interval header:\n%q", out.String())
	}

	// Crossing the window boundary resets the metric buffer and prints
	// the next header.
	l.OnStepBegin(10, callback.Logs{})
	if n := len(l.metrics); n != 0 {
		t.Errorf("window buffer should be cleared at reset, %v rows remain",
			n)
	}
	if !strings.Contains(out.String(), "Interval 2 (10 steps performed)") {
		t.Errorf("missing second interval header:\n%q", out.String())
	}
}

func TestIntervalDefaultWindowSize(t *testing.T) {
	l := NewInterval(stubModel{}, callback.Params{}, 0, &bytes.Buffer{})
	if l.interval != DefaultInterval {
		t.Errorf("expected default interval %v, got %v", DefaultInterval,
			l.interval)
	}
}
