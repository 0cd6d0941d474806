// Command selfplay pits two engine tiers against each other and prints the
// tally.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
	"github.com/iamasit07/5-in-a-row/backend/internal/service/bot"
)

type outcome struct {
	winner domain.Tier
	draw   bool
	moves  int
}

func main() {
	first := flag.String("a", "normal", "first tier")
	second := flag.String("b", "hard", "second tier")
	games := flag.Int("games", 10, "number of games")
	seed := flag.Int64("seed", time.Now().UnixNano(), "base random seed")
	workers := flag.Int("workers", runtime.NumCPU(), "games played in parallel")
	moveTime := flag.Duration("movetime", 0, "per-move deadline (0 = tier default)")
	verbose := flag.Bool("v", false, "log every move")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	tierA, err := domain.ParseTier(*first)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	tierB, err := domain.ParseTier(*second)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var (
		mu      sync.Mutex
		results []outcome
	)
	g := new(errgroup.Group)
	g.SetLimit(max(1, *workers))
	for i := 0; i < *games; i++ {
		i := i
		// alternate who takes black
		black, white := tierA, tierB
		if i%2 == 1 {
			black, white = tierB, tierA
		}
		g.Go(func() error {
			res, err := playGame(black, white, *seed+int64(i), *moveTime)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			log.Info().Int("game", i).Str("black", black.String()).Str("white", white.String()).
				Bool("draw", res.draw).Str("winner", res.winner.String()).Int("moves", res.moves).Msg("game-over")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("selfplay failed")
	}

	winsA, winsB, draws, totalMoves := 0, 0, 0, 0
	for _, r := range results {
		totalMoves += r.moves
		switch {
		case r.draw:
			draws++
		case r.winner == tierA:
			winsA++
		default:
			winsB++
		}
	}
	fmt.Printf("%s: %d  %s: %d  draws: %d  avg moves: %.1f\n",
		tierA, winsA, tierB, winsB, draws, float64(totalMoves)/float64(max(1, len(results))))
}

func playGame(blackTier, whiteTier domain.Tier, seed int64, moveTime time.Duration) (outcome, error) {
	black, err := bot.NewEngine(blackTier, domain.ColorBlack, bot.WithSeed(seed))
	if err != nil {
		return outcome{}, err
	}
	white, err := bot.NewEngine(whiteTier, domain.ColorWhite, bot.WithSeed(seed+1))
	if err != nil {
		return outcome{}, err
	}

	g := domain.NewGame()
	for !g.IsFinished() {
		engine := black
		if g.CurrentTurn == domain.ColorWhite {
			engine = white
		}

		ctx := context.Background()
		var cancel context.CancelFunc = func() {}
		if moveTime > 0 {
			ctx, cancel = context.WithTimeout(ctx, moveTime)
		}
		d := engine.Analyze(ctx, g.Board, g.HistoryCopy())
		cancel()
		if !d.OK {
			break
		}

		log.Debug().Str("color", g.CurrentTurn.String()).Str("move", d.Move.String()).
			Str("stage", string(d.Stage)).Int("nodes", d.Nodes).Msg("move")
		if err := g.MakeMove(g.CurrentTurn, d.Move); err != nil {
			return outcome{}, fmt.Errorf("engine %s played %s: %w", engine.Tier(), d.Move, err)
		}
	}

	res := outcome{moves: g.MoveCount(), draw: g.Status != domain.StatusWon}
	if !res.draw {
		res.winner = blackTier
		if g.Winner == domain.ColorWhite {
			res.winner = whiteTier
		}
	}
	return res, nil
}
