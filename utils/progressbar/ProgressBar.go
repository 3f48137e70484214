// Package progressbar implements functionality of printing a progress
// bar to the terminal window
package progressbar

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Value is a named quantity displayed beside the progress bar, such as the
// most recent reward or a training metric.
type Value struct {
	Name string
	Val  float64
}

// Bar implements a progress bar that must be manually managed: Update must
// be called whenever an updated bar should be printed. Each Update rewrites
// the current terminal line, so nothing else should print to the same
// writer while a Bar is active.
//
// Bar does not use concurrency.
type Bar struct {
	width       float64
	maxProgress float64
	bar         strings.Builder
	startTime   time.Time
	out         io.Writer
}

// New returns a new Bar that is width characters wide and reaches 100%
// capacity when Update is called with current equal to max. Output is
// written to out.
func New(width, max int, out io.Writer) *Bar {
	return &Bar{
		width:       float64(width),
		maxProgress: float64(max),
		startTime:   time.Now(),
		out:         out,
	}
}

// Update displays the progress bar at the given absolute position along
// with the named values, overwriting the previously displayed bar. Values
// are rendered in order as " - name: value" after the bar.
func (p *Bar) Update(current int, values []Value) {
	currentProgress := float64(current)
	if currentProgress > p.maxProgress {
		currentProgress = p.maxProgress
	}

	p.bar.Reset()
	p.bar.Write([]byte("|"))

	currentProg := currentProgress / p.maxProgress * p.width
	for i := 0.0; i < currentProg; i++ {
		p.bar.Write([]byte("█"))
	}
	for i := currentProg; i < p.width; i++ {
		p.bar.Write([]byte(" "))
	}
	p.bar.Write([]byte(fmt.Sprintf("| %v/%v [elapsed: %v]", current,
		int(p.maxProgress), time.Since(p.startTime).Truncate(time.Second))))

	for _, value := range values {
		p.bar.Write([]byte(fmt.Sprintf(" - %v: %.3f", value.Name, value.Val)))
	}

	fmt.Fprintf(p.out, "\n\033[1A\033[K%v", p.bar.String())
}

// Close jumps to the next terminal line so that later output does not
// overwrite the displayed bar.
func (p *Bar) Close() {
	fmt.Fprintln(p.out)
}
