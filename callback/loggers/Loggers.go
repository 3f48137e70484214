// Package loggers implements callbacks that log the progress of a
// training run to a console or any other io.Writer
package loggers

import (
	"fmt"
	"io"

	"github.com/samuelfneumann/rltrack/callback"
)

// fprintTrainHeader prints the introductory message of a training run.
// The message depends on which of the step and episode limits are known.
func fprintTrainHeader(out io.Writer, params callback.Params) {
	if params.NbEpisodes == 0 && params.NbSteps == 0 {
		fmt.Fprintln(out, "Training indefinitely since no step or episode "+
			"limit was given ...")
	} else if params.NbEpisodes == 0 {
		fmt.Fprintf(out, "Training for %v steps ...\n", params.NbSteps)
	} else if params.NbSteps == 0 {
		fmt.Fprintf(out, "Training for %v episodes ...\n", params.NbEpisodes)
	} else {
		fmt.Fprintf(out, "Training for %v episodes or %v steps, whichever "+
			"comes first ...\n", params.NbEpisodes, params.NbSteps)
	}
}
