package loggers

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/samuelfneumann/rltrack/callback"
	"github.com/samuelfneumann/rltrack/utils/floatutils"
	"github.com/samuelfneumann/rltrack/utils/progressbar"
)

// DefaultInterval is the window size, in steps, used by an Interval logger
// when no explicit window size is given.
const DefaultInterval int = 10000

// barWidth is the character width of the progress bar drawn for each
// interval window.
const barWidth int = 25

// Interval logs training progress in fixed-size step windows. At the start
// of every window it prints an interval header, and on every step it
// redraws a progress bar annotated with the latest reward and, when
// available, the model metrics.
//
// Model metrics may be NaN on steps where the model has nothing to report,
// for example before the first learning update. For display only, NaN
// values are substituted with the running column mean of the raw metric
// rows buffered in the current window; the raw rows themselves are always
// buffered unmodified. If NaN values survive substitution, the metrics are
// omitted from the bar for that step and only the reward is shown.
type Interval struct {
	callback.Base
	model    callback.Model
	params   callback.Params
	out      io.Writer
	interval int

	steps        int
	metricsNames []string
	trainStart   time.Time

	intervalStart time.Time
	pbar          *progressbar.Bar
	metrics       [][]float64
}

// NewInterval creates and returns a new *Interval logger with the given
// window size in steps. A window size of zero or less selects
// DefaultInterval. A nil out writes to standard output.
func NewInterval(model callback.Model, params callback.Params, interval int,
	out io.Writer) *Interval {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if out == nil {
		out = os.Stdout
	}
	l := &Interval{
		model:    model,
		params:   params,
		out:      out,
		interval: interval,
	}
	l.reset()
	return l
}

// reset starts a new interval window with a fresh timestamp, progress bar,
// and metric buffer
func (l *Interval) reset() {
	l.intervalStart = time.Now()
	l.pbar = progressbar.New(barWidth, l.interval, l.out)
	l.metrics = nil
}

// OnTrainBegin records the start of the run, fixes the metric names for
// the rest of the run, and prints the introductory message
func (l *Interval) OnTrainBegin(logs callback.Logs) error {
	l.trainStart = time.Now()
	l.metricsNames = l.model.MetricsNames()
	fprintTrainHeader(l.out, l.params)
	return nil
}

// OnTrainEnd finishes the progress bar line and prints the total duration
// of the run
func (l *Interval) OnTrainEnd(logs callback.Logs) error {
	l.pbar.Close()
	fmt.Fprintf(l.out, "done, took %.3f seconds\n",
		time.Since(l.trainStart).Seconds())
	return nil
}

// OnStepBegin resets the window and prints the interval header whenever
// the global step counter sits on an exact multiple of the window size
func (l *Interval) OnStepBegin(step int, logs callback.Logs) error {
	if l.steps%l.interval == 0 {
		if l.steps > 0 {
			l.pbar.Close()
		}
		l.reset()
		fmt.Fprintf(l.out, "Interval %d (%d steps performed)\n",
			l.steps/l.interval+1, l.steps)
	}
	return nil
}

// OnStepEnd substitutes NaN metric values with the window's running column
// means for display, redraws the progress bar, buffers the raw metric row,
// and advances the step counter
func (l *Interval) OnStepEnd(step int, logs callback.Logs) error {
	filtered := make([]float64, len(logs.Metrics))
	var means []float64
	for i, value := range logs.Metrics {
		if !math.IsNaN(value) {
			filtered[i] = value
			continue
		}

		// No substitute exists until the window has buffered at least
		// one row.
		if len(l.metrics) == 0 {
			filtered[i] = math.NaN()
			continue
		}
		if means == nil {
			means = floatutils.NaNColMeans(l.metrics, len(l.metricsNames))
		}
		filtered[i] = means[i]
	}

	values := []progressbar.Value{{Name: "reward", Val: logs.Reward}}
	if !floatutils.AnyNaN(filtered) {
		for i := 0; i < len(l.metricsNames) && i < len(filtered); i++ {
			values = append(values, progressbar.Value{
				Name: l.metricsNames[i],
				Val:  filtered[i],
			})
		}
	}
	l.pbar.Update(l.steps%l.interval+1, values)

	l.steps++
	row := make([]float64, len(logs.Metrics))
	copy(row, logs.Metrics)
	l.metrics = append(l.metrics, row)
	return nil
}
