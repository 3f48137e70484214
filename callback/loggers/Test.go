package loggers

import (
	"fmt"
	"io"
	"os"

	"github.com/samuelfneumann/rltrack/callback"
)

// Test logs a minimal one-line summary of every completed episode. Unlike
// Episode, it accumulates nothing: the episode total reward and step count
// are taken from the end-of-episode logs supplied by the training loop, so
// Test is safe to use during evaluation runs where per-step events carry
// no data.
type Test struct {
	callback.Base
	out io.Writer
}

// NewTest creates and returns a new *Test logger writing to out. A nil out
// writes to standard output.
func NewTest(out io.Writer) *Test {
	if out == nil {
		out = os.Stdout
	}
	return &Test{out: out}
}

// OnEpisodeEnd prints the episode's total reward and step count
func (t *Test) OnEpisodeEnd(episode int, logs callback.Logs) error {
	fmt.Fprintf(t.out, "Episode %d: reward: %.3f, steps: %d\n",
		episode+1, logs.EpisodeReward, logs.NbSteps)
	return nil
}
