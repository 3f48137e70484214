package loggers

import (
	"encoding/gob"
	"log"
	"os"

	"github.com/samuelfneumann/rltrack/callback"
)

// Return tracks the episodic return of every completed episode and saves
// the returns to disk in a machine-readable format, complementing the
// console loggers. Rewards are accumulated per episode index from the
// step-end events, so interleaved episodes from multi-threaded training
// loops are kept separate.
//
// Note: an episode must finish for its return to be recorded. If the last
// episode in a run does not finish, that episode's return is not saved.
type Return struct {
	callback.Base
	filename       string
	currentReturns map[int]float64
	episodeReturns []float64
}

// NewReturn creates and returns a new *Return logger that saves to the
// given file
func NewReturn(filename string) *Return {
	return &Return{
		filename:       filename,
		currentReturns: make(map[int]float64),
	}
}

// OnStepEnd accumulates the step's reward into the return of the episode
// named in the logs
func (r *Return) OnStepEnd(step int, logs callback.Logs) error {
	r.currentReturns[logs.Episode] += logs.Reward
	return nil
}

// OnEpisodeEnd records the completed episode's return and stops tracking
// that episode index
func (r *Return) OnEpisodeEnd(episode int, logs callback.Logs) error {
	r.episodeReturns = append(r.episodeReturns, r.currentReturns[episode])
	delete(r.currentReturns, episode)
	return nil
}

// Save saves the returns recorded by the Return logger to disk.
func (r *Return) Save() {
	// Open the file to save to
	file, err := os.Create(r.filename)
	if err != nil {
		log.Fatalf("could not open save file: %v", err)
	}
	defer file.Close()

	// Encode and save the file
	en := gob.NewEncoder(file)
	if err = en.Encode(r.episodeReturns); err != nil {
		log.Fatalf("could not encode return data: %v", err)
	}
}

// LoadData loads and returns the data saved by a Return logger
func LoadData(filename string) []float64 {
	// Open file
	file, err := os.Open(filename)
	if err != nil {
		log.Fatalf("could not open data file: %v", err)
	}
	defer file.Close()

	// Create the decoder and the variable to store the data in
	dec := gob.NewDecoder(file)
	var data []float64

	// Decode the data
	err = dec.Decode(&data)
	if err != nil {
		log.Fatalf("could not decode data: %v", err)
	}

	return data
}
