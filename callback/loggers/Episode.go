package loggers

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/samuelfneumann/rltrack/callback"
	"github.com/samuelfneumann/rltrack/utils/floatutils"
)

// Episode logs a one-line statistical summary of every completed episode:
// duration, step count, throughput, total/mean/min/max reward, mean/min/max
// action and observation magnitudes, and the per-episode mean of each model
// metric.
//
// Some training loops run multiple episodes at once from separate threads,
// so all per-episode state is keyed by the episode index. Data recorded
// under one episode index never influences the summary of another, and all
// state for an index is released when that episode ends.
type Episode struct {
	callback.Base
	model  callback.Model
	params callback.Params
	out    io.Writer

	metricsNames []string
	trainStart   time.Time

	episodeStart map[int]time.Time
	observations map[int][]float64
	rewards      map[int][]float64
	actions      map[int][]float64
	metrics      map[int][][]float64
}

// NewEpisode creates and returns a new *Episode logger that observes the
// given model and run parameters and writes its summaries to out. A nil
// out writes to standard output.
func NewEpisode(model callback.Model, params callback.Params,
	out io.Writer) *Episode {
	if out == nil {
		out = os.Stdout
	}
	return &Episode{
		model:        model,
		params:       params,
		out:          out,
		episodeStart: make(map[int]time.Time),
		observations: make(map[int][]float64),
		rewards:      make(map[int][]float64),
		actions:      make(map[int][]float64),
		metrics:      make(map[int][][]float64),
	}
}

// OnTrainBegin records the start of the run, fixes the metric names for
// the rest of the run, and prints the introductory message
func (l *Episode) OnTrainBegin(logs callback.Logs) error {
	l.trainStart = time.Now()
	l.metricsNames = l.model.MetricsNames()
	fprintTrainHeader(l.out, l.params)
	return nil
}

// OnTrainEnd prints the total duration of the run
func (l *Episode) OnTrainEnd(logs callback.Logs) error {
	fmt.Fprintf(l.out, "done, took %.3f seconds\n",
		time.Since(l.trainStart).Seconds())
	return nil
}

// OnEpisodeBegin starts accumulating statistics for an episode
func (l *Episode) OnEpisodeBegin(episode int, logs callback.Logs) error {
	l.episodeStart[episode] = time.Now()
	l.observations[episode] = []float64{}
	l.rewards[episode] = []float64{}
	l.actions[episode] = []float64{}
	l.metrics[episode] = [][]float64{}
	return nil
}

// OnStepEnd records the observation, reward, action, and metrics of a
// single step under the episode named in the logs. The episode must have
// been begun with OnEpisodeBegin.
func (l *Episode) OnStepEnd(step int, logs callback.Logs) error {
	episode := logs.Episode
	if _, ok := l.episodeStart[episode]; !ok {
		return fmt.Errorf("onstepend: step %v reported for episode %v "+
			"which was never begun", step, episode)
	}

	for i := 0; i < logs.Observation.Len(); i++ {
		l.observations[episode] = append(l.observations[episode],
			logs.Observation.AtVec(i))
	}
	l.rewards[episode] = append(l.rewards[episode], logs.Reward)
	for i := 0; i < logs.Action.Len(); i++ {
		l.actions[episode] = append(l.actions[episode], logs.Action.AtVec(i))
	}

	row := make([]float64, len(logs.Metrics))
	copy(row, logs.Metrics)
	l.metrics[episode] = append(l.metrics[episode], row)
	return nil
}

// OnEpisodeEnd prints the summary line for an episode and releases all
// state recorded under that episode's index
func (l *Episode) OnEpisodeEnd(episode int, logs callback.Logs) error {
	start, ok := l.episodeStart[episode]
	if !ok {
		return fmt.Errorf("onepisodeend: episode %v was never begun",
			episode)
	}
	duration := time.Since(start).Seconds()
	steps := len(l.rewards[episode])

	// A zero duration would otherwise divide by zero; the episode then
	// completed faster than the clock resolution, so report infinite
	// throughput.
	stepsPerSecond := math.Inf(1)
	if duration > 0 {
		stepsPerSecond = float64(steps) / duration
	}

	rewards := l.rewards[episode]
	actions := l.actions[episode]
	observations := l.observations[episode]

	template := "Episode %d: %.3fs, steps: %d, steps per second: %.0f, " +
		"episode reward: %.3f, reward: %.3f [%.3f, %.3f], " +
		"action: %.3f [%.3f, %.3f], observations: %.3f [%.3f, %.3f], %v\n"
	fmt.Fprintf(l.out, template,
		episode+1,
		duration,
		steps,
		stepsPerSecond,
		floats.Sum(rewards),
		stat.Mean(rewards, nil),
		floatutils.Min(rewards...),
		floatutils.Max(rewards...),
		stat.Mean(actions, nil),
		floatutils.Min(actions...),
		floatutils.Max(actions...),
		stat.Mean(observations, nil),
		floatutils.Min(observations...),
		floatutils.Max(observations...),
		l.formatMetrics(l.metrics[episode]),
	)

	delete(l.episodeStart, episode)
	delete(l.observations, episode)
	delete(l.rewards, episode)
	delete(l.actions, episode)
	delete(l.metrics, episode)
	return nil
}

// formatMetrics renders the column-wise mean of each named metric over an
// episode. A metric whose column holds no non-NaN values is rendered as
// the placeholder "--" rather than a number.
func (l *Episode) formatMetrics(rows [][]float64) string {
	means := floatutils.NaNColMeans(rows, len(l.metricsNames))

	var text strings.Builder
	for i, name := range l.metricsNames {
		if i > 0 {
			text.WriteString(", ")
		}
		if math.IsNaN(means[i]) {
			fmt.Fprintf(&text, "%v: --", name)
		} else {
			fmt.Fprintf(&text, "%v: %f", name, means[i])
		}
	}
	return text.String()
}
