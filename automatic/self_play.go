package automatic

// Driver for batches of self-play games across a worker pool.

import (
	"context"
	"errors"
	"expvar"
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/nyoung/checkers/game"
)

var (
	SelfPlayCounter *expvar.Int
	IsPlaying       *expvar.Int
)

func init() {
	SelfPlayCounter = expvar.NewInt("selfPlayCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

type job struct{}

// StartSelfPlayGames plays numGames random games across `threads` workers,
// writing one result line per game to outputFilename. Each worker owns its
// own game instance; the engine itself is never shared.
func StartSelfPlayGames(ctx context.Context, rules *game.GameRules,
	numGames int, threads int, outputFilename string) error {

	if IsPlaying.Value() > 0 {
		return errors.New("games are already being played, please wait till complete")
	}

	logfile, err := os.Create(outputFilename)
	if err != nil {
		return err
	}
	log.Debug().Msgf("Starting %v games, %v threads", numGames, threads)

	SelfPlayCounter.Set(0)
	jobs := make(chan job, 100)
	logChan := make(chan string, 100)
	var wg sync.WaitGroup
	wg.Add(threads)

	for i := 1; i <= threads; i++ {
		go func(i int) {
			defer wg.Done()
			r, err := NewGameRunner(logChan, rules)
			if err != nil {
				log.Err(err).Msg("could not create runner")
				return
			}
			IsPlaying.Add(1)
			for range jobs {
				r.PlayFullGame()
				SelfPlayCounter.Add(1)
			}
			IsPlaying.Add(-1)
		}(i)
	}

	go func() {
	gameLoop:
		for i := 1; i < numGames+1; i++ {
			jobs <- job{}
			if i%1000 == 0 {
				log.Debug().Msgf("Queued %v jobs", i)
			}
			select {
			case <-ctx.Done():
				log.Info().Msg("Cancellation registered.")
				break gameLoop
			default:
			}
		}
		close(jobs)
		log.Debug().Msg("Finished queueing all jobs.")
		wg.Wait()
		log.Debug().Msg("All games finished.")
		close(logChan)
	}()

	for line := range logChan {
		if _, err := logfile.WriteString(line); err != nil {
			log.Err(err).Msg("could not write log line")
		}
	}
	if err := logfile.Close(); err != nil {
		return err
	}
	log.Debug().Msgf("Exiting self-play function, played %d games", SelfPlayCounter.Value())
	return nil
}
