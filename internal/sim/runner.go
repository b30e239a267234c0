package sim

import (
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/manacurve/goldfish/internal/archetype"
	"github.com/manacurve/goldfish/internal/deck"
)

// BatchOptions configure a batch run.
type BatchOptions struct {
	Games   int
	Workers int
	Seed    int64

	MaxTurns     int
	ActionCap    int
	Opponents    int
	StartingLife int
	EnhancedAI   bool

	Logger *zap.Logger
}

// RunBatch simulates games of one deck across a worker pool and returns the
// per-game records in batch order with their aggregate summary. Games share
// nothing but the deck and the classification, so the only coordination is
// the final wait.
func RunBatch(d *deck.Deck, opts BatchOptions) ([]Result, Summary) {
	if opts.Games <= 0 {
		opts.Games = 1
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > opts.Games {
		workers = opts.Games
	}

	strategy := archetype.Classify(d)
	results := make([]Result, opts.Games)

	var wg sync.WaitGroup
	start := 0
	for _, count := range SplitEvenly(opts.Games, workers) {
		wg.Add(1)
		go func(start, count int) {
			defer wg.Done()
			for i := start; i < start+count; i++ {
				results[i] = RunGame(d, Params{
					Seed:         MixSeed(opts.Seed, i),
					MaxTurns:     opts.MaxTurns,
					ActionCap:    opts.ActionCap,
					Opponents:    opts.Opponents,
					StartingLife: opts.StartingLife,
					EnhancedAI:   opts.EnhancedAI,
					Logger:       opts.Logger,
					Strategy:     &strategy,
				})
				results[i].Game = i
			}
		}(start, count)
		start += count
	}
	wg.Wait()

	return results, Summarize(results)
}

// MixSeed derives a game's seed from the base seed and the game index with
// a splitmix-style finalizer, so per-game random streams are independent
// and a batch is reproducible from its base seed alone.
func MixSeed(base int64, game int) int64 {
	z := uint64(base) + (uint64(game)+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}
