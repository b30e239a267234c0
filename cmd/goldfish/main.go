package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/manacurve/goldfish/internal/ability"
	"github.com/manacurve/goldfish/internal/archetype"
	"github.com/manacurve/goldfish/internal/config"
	"github.com/manacurve/goldfish/internal/deck"
	"github.com/manacurve/goldfish/internal/sim"
)

var (
	configPath  = flag.String("config", "", "path to configuration file")
	deckPath    = flag.String("deck", "", "path to a deck file (.yaml inline definitions, or a plain list with -library)")
	libraryPath = flag.String("library", "", "path to a card library file, required for plain text deck lists")
	games       = flag.Int("games", 0, "number of games to simulate (overrides config)")
	seed        = flag.Int64("seed", 0, "base random seed (overrides config)")
	version     = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	if *deckPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: goldfish -deck <file> [-config <file>] [-games N] [-seed N]")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "games":
			cfg.Simulation.Games = *games
		case "seed":
			cfg.Simulation.Seed = *seed
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	parser := ability.NewParser()
	d, err := loadDeck(*deckPath, *libraryPath, parser, logger)
	if err != nil {
		logger.Fatal("failed to load deck", zap.String("path", *deckPath), zap.Error(err))
	}

	baseSeed := cfg.Simulation.Seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	logger.Info("starting batch",
		zap.String("version", version),
		zap.String("deck", d.Name),
		zap.Int("games", cfg.Simulation.Games),
		zap.Int("workers", cfg.Simulation.Workers),
		zap.Int64("seed", baseSeed),
		zap.Bool("enhanced_ai", cfg.Simulation.EnhancedAI),
	)

	started := time.Now()
	results, summary := sim.RunBatch(d, sim.BatchOptions{
		Games:      cfg.Simulation.Games,
		Workers:    cfg.Simulation.Workers,
		Seed:       baseSeed,
		MaxTurns:   cfg.Simulation.MaxTurns,
		Opponents:  cfg.Simulation.Opponents,
		EnhancedAI: cfg.Simulation.EnhancedAI,
		Logger:     logger,
	})
	logger.Info("batch complete",
		zap.Duration("elapsed", time.Since(started)),
		zap.Int("games", summary.Games),
		zap.Int("failed", summary.Failed),
	)

	printReport(d, archetype.Classify(d), summary)

	if cfg.Simulation.Trace {
		tr := sim.NewTrace()
		sim.RunGame(d, sim.Params{
			Seed:       results[0].Seed,
			MaxTurns:   cfg.Simulation.MaxTurns,
			Opponents:  cfg.Simulation.Opponents,
			EnhancedAI: cfg.Simulation.EnhancedAI,
			Logger:     logger,
			Trace:      tr,
		})
		fmt.Printf("\n--- trace of game 0 (seed %d) ---\n%s\n", results[0].Seed, tr.String())
	}
}

// loadDeck reads either a YAML deck with inline card definitions or a plain
// "N Card Name" list resolved against a card library.
func loadDeck(path, libPath string, parser *ability.Parser, logger *zap.Logger) (*deck.Deck, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		d, warnings, err := deck.LoadFile(path, parser)
		logWarnings(logger, warnings)
		return d, err
	}

	if libPath == "" {
		return nil, fmt.Errorf("plain text deck list needs -library")
	}
	lib, warnings, err := deck.LoadLibraryFile(libPath, parser)
	if err != nil {
		return nil, fmt.Errorf("load library: %w", err)
	}
	logWarnings(logger, warnings)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return deck.ParseList(name, string(data), lib)
}

func logWarnings(logger *zap.Logger, warnings []ability.ParseWarning) {
	for _, w := range warnings {
		logger.Debug("unparsed card text",
			zap.String("card", w.Card),
			zap.String("clause", w.Line),
			zap.Error(w.Err),
		)
	}
}

func printReport(d *deck.Deck, strategy archetype.Result, s sim.Summary) {
	fmt.Printf("deck: %s (%d cards", d.Name, d.TotalQuantity())
	if d.Commander != nil {
		fmt.Printf(" + commander %s", d.Commander.Name)
	}
	fmt.Println(")")

	fmt.Printf("archetype: %s (%.2f)", strategy.Primary, strategy.Confidence)
	if strategy.Secondary != "" {
		fmt.Printf(", secondary %s (%.2f)", strategy.Secondary, strategy.SecondaryConfidence)
	}
	fmt.Println()

	fmt.Printf("\ngames: %d  wins: %d  deck-outs: %d  failed: %d\n",
		s.Games, s.Wins, s.DeckOuts, s.Failed)
	fmt.Printf("mean turns: %.1f\n", s.MeanTurns)
	fmt.Printf("mean damage: %.1f ± %.1f  (combat %.1f, noncombat %.1f)\n",
		s.MeanDamage, s.StdDevDamage, s.MeanCombat, s.MeanNoncombat)
	fmt.Printf("mean peak board power: %.1f\n", s.MeanPeakPower)
	fmt.Printf("mean cards drawn: %.1f  tokens: %.1f  spells cast: %.1f  lands played: %.1f\n",
		s.MeanCardsDrawn, s.MeanTokens, s.MeanSpellsCast, s.MeanLandsPlayed)
}

// initLogger initializes the zap logger based on configuration.
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
