package loggers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/samuelfneumann/rltrack/callback"
)

func TestTrainHeaderVariants(t *testing.T) {
	tests := []struct {
		params callback.Params
		want   string
	}{
		{
			callback.Params{},
			"Training indefinitely",
		},
		{
			callback.Params{NbSteps: 500},
			"Training for 500 steps ...",
		},
		{
			callback.Params{NbEpisodes: 12},
			"Training for 12 episodes ...",
		},
		{
			callback.Params{NbSteps: 500, NbEpisodes: 12},
			"Training for 12 episodes or 500 steps, whichever comes first ...",
		},
	}

	for i, test := range tests {
		var out bytes.Buffer
		fprintTrainHeader(&out, test.params)
		if !strings.Contains(out.String(), test.want) {
			t.Errorf("variant %v: got %q, want substring %q", i,
				out.String(), test.want)
		}
	}
}
