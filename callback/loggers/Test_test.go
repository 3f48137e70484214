package loggers

import (
	"bytes"
	"testing"

	"github.com/samuelfneumann/rltrack/callback"
)

func TestTestLoggerLine(t *testing.T) {
	var out bytes.Buffer
	l := NewTest(&out)

	logs := callback.Logs{EpisodeReward: 6.0, NbSteps: 3}
	if err := l.OnEpisodeEnd(0, logs); err != nil {
		t.Fatalf("episode end: %v", err)
	}

	want := "Episode 1: reward: 6.000, steps: 3\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestTestLoggerIsStateless(t *testing.T) {
	var out bytes.Buffer
	l := NewTest(&out)

	// Episode ends with no begins or steps must still log correctly
	l.OnEpisodeEnd(4, callback.Logs{EpisodeReward: -1.5, NbSteps: 100})
	l.OnEpisodeEnd(5, callback.Logs{EpisodeReward: 2.0, NbSteps: 1})

	want := "Episode 5: reward: -1.500, steps: 100\n" +
		"Episode 6: reward: 2.000, steps: 1\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}
