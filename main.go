package main

import (
	"fmt"
	"math"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/rltrack/callback"
	"github.com/samuelfneumann/rltrack/callback/loggers"
)

// demoModel stands in for a learning algorithm. It reports two metrics,
// with mean_q left NaN until enough steps have passed for a learning
// update, which exercises the NaN substitution in the interval logger.
type demoModel struct{}

func (demoModel) MetricsNames() []string {
	return []string{"loss", "mean_q"}
}

// randomWalk stands in for an environment: observations, rewards, and
// actions are all sampled from fixed distributions.
type randomWalk struct {
	obs    distuv.Normal
	reward distuv.Normal
	action distuv.Normal
	steps  int
}

func newRandomWalk(seed uint64) *randomWalk {
	source := rand.NewSource(seed)
	return &randomWalk{
		obs:    distuv.Normal{Mu: 0.0, Sigma: 1.0, Src: source},
		reward: distuv.Normal{Mu: 1.0, Sigma: 0.5, Src: source},
		action: distuv.Normal{Mu: 0.0, Sigma: 0.25, Src: source},
	}
}

// Render satisfies callback.Renderer
func (r *randomWalk) Render(mode string) error {
	_, err := fmt.Printf("render (%v): step %v\n", mode, r.steps)
	return err
}

// step samples one step of the walk
func (r *randomWalk) step() callback.Logs {
	r.steps++

	observation := mat.NewVecDense(4, []float64{
		r.obs.Rand(), r.obs.Rand(), r.obs.Rand(), r.obs.Rand(),
	})
	action := mat.NewVecDense(1, []float64{r.action.Rand()})

	metrics := []float64{math.Abs(r.obs.Rand()), r.obs.Rand()}
	if r.steps < 50 {
		metrics[1] = math.NaN()
	}

	return callback.Logs{
		Observation: observation,
		Reward:      r.reward.Rand(),
		Action:      action,
		Metrics:     metrics,
	}
}

// run drives every logger through a toy training loop
func run(nbSteps, nbEpisodes uint, episodeLength, interval int, seed uint64,
	render bool) error {
	env := newRandomWalk(seed)
	model := demoModel{}
	params := callback.Params{
		NbSteps:    nbSteps,
		NbEpisodes: nbEpisodes,
		Env:        env,
	}

	returns := loggers.NewReturn(fmt.Sprintf("returns-%v.bin", uuid.New()))
	callbacks := []callback.Callback{
		loggers.NewEpisode(model, params, os.Stdout),
		loggers.NewInterval(model, params, interval, os.Stdout),
		returns,
	}
	if render {
		callbacks = append(callbacks, loggers.NewVisualizer(env))
	}

	list, err := callback.NewList(callbacks...)
	if err != nil {
		return err
	}

	if err := list.OnTrainBegin(callback.Logs{}); err != nil {
		return err
	}

	step := 0
	for episode := 0; uint(episode) < nbEpisodes; episode++ {
		if err := list.OnEpisodeBegin(episode, callback.Logs{}); err != nil {
			return err
		}

		episodeReward := 0.0
		episodeSteps := 0
		for ; episodeSteps < episodeLength; episodeSteps++ {
			if err := list.OnStepBegin(step, callback.Logs{}); err != nil {
				return err
			}

			logs := env.step()
			logs.Episode = episode
			if err := list.OnStepEnd(step, logs); err != nil {
				return err
			}

			episodeReward += logs.Reward
			step++
			if nbSteps > 0 && uint(step) >= nbSteps {
				episodeSteps++
				break
			}
		}

		endLogs := callback.Logs{
			EpisodeReward: episodeReward,
			NbSteps:       episodeSteps,
		}
		if err := list.OnEpisodeEnd(episode, endLogs); err != nil {
			return err
		}

		if nbSteps > 0 && uint(step) >= nbSteps {
			break
		}
	}

	if err := list.OnTrainEnd(callback.Logs{}); err != nil {
		return err
	}

	returns.Save()
	return nil
}

func main() {
	var nbSteps, nbEpisodes uint
	var episodeLength, interval int
	var seed uint64
	var render bool

	rootCmd := &cobra.Command{
		Use:   "rltrack",
		Short: "Run the training loggers against a toy stochastic loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(nbSteps, nbEpisodes, episodeLength, interval, seed,
				render)
		},
	}
	rootCmd.Flags().UintVar(&nbSteps, "steps", 2000,
		"total environment steps to run")
	rootCmd.Flags().UintVar(&nbEpisodes, "episodes", 10,
		"number of episodes to run")
	rootCmd.Flags().IntVar(&episodeLength, "episode-length", 200,
		"steps per episode")
	rootCmd.Flags().IntVar(&interval, "interval", 500,
		"progress window size in steps")
	rootCmd.Flags().Uint64Var(&seed, "seed", 192382, "random seed")
	rootCmd.Flags().BoolVar(&render, "render", false,
		"render the environment after every step")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
