// Package automatic plays out full games with randomly chosen legal moves.
// It exists to exercise the engine, not to play well: every invariant the
// engine promises gets hammered by thousands of arbitrary positions.
package automatic

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/nyoung/checkers/checker"
	"github.com/nyoung/checkers/game"
)

// DefaultMaxPlies caps a self-play game so two wandering kings cannot
// shuffle forever.
const DefaultMaxPlies = 300

// Result summarizes one finished self-play game.
type Result struct {
	GameID string
	Plies  int
	Winner checker.Color
	Won    bool
	Capped bool
}

func (r Result) String() string {
	outcome := "draw"
	if r.Won {
		outcome = r.Winner.String() + " wins"
	}
	if r.Capped {
		outcome = "capped"
	}
	return fmt.Sprintf("%s plies=%d %s", r.GameID, r.Plies, outcome)
}

// GameRunner is the master struct for the self-play logic. One runner owns
// one game and is not safe for concurrent use; the driver below gives each
// worker its own.
type GameRunner struct {
	game     *game.Game
	rules    *game.GameRules
	maxPlies int
	logchan  chan string
}

// NewGameRunner instantiates and initializes a game runner. logchan may be
// nil.
func NewGameRunner(logchan chan string, rules *game.GameRules) (*GameRunner, error) {
	g, err := game.NewGame(rules)
	if err != nil {
		return nil, err
	}
	return &GameRunner{game: g, rules: rules, maxPlies: DefaultMaxPlies, logchan: logchan}, nil
}

// Game exposes the underlying game, mainly for tests.
func (r *GameRunner) Game() *game.Game {
	return r.game
}

// SetMaxPlies overrides the ply cap.
func (r *GameRunner) SetMaxPlies(n int) {
	r.maxPlies = n
}

// playRandomTurn applies one uniformly random legal move for the side on
// turn. It returns false if that side has no legal moves.
func (r *GameRunner) playRandomTurn() bool {
	moves := r.game.LegalMoves(r.game.PlayerOnTurn())
	if len(moves) == 0 {
		return false
	}
	m := moves[frand.Intn(len(moves))]
	if _, err := r.game.PlayMove(m.Piece(), m.Dest()); err != nil {
		// LegalMoves and PlayMove disagreeing is an engine bug.
		log.Error().Err(err).Str("move", m.ShortDescription()).Msg("legal move rejected")
		return false
	}
	return true
}

// PlayFullGame starts a game and plays it to conclusion or to the ply cap.
func (r *GameRunner) PlayFullGame() Result {
	r.game.StartGame()
	plies := 0
	for r.game.Playing() && plies < r.maxPlies {
		if !r.playRandomTurn() {
			break
		}
		plies++
	}
	winner, won := r.game.Winner()
	res := Result{
		GameID: r.game.History().UID(),
		Plies:  plies,
		Winner: winner,
		Won:    won,
		Capped: r.game.Playing() && plies >= r.maxPlies,
	}
	if r.logchan != nil {
		r.logchan <- res.String() + "\n"
	}
	return res
}
