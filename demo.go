package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"

	markovfootball "github.com/jhw/go-markov-football/pkg/markov-football"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to TOML league config")
		seed       = flag.Int64("seed", 0, "Random seed (0 seeds from the clock)")
		stall      = flag.Int("stall-threshold", 0, "Optimizer stall threshold override")
		turns      = flag.Int("turns", 0, "Possession turns per match override")
		logLevel   = flag.String("log-level", "", "Log level override (debug, info, warn, error)")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *stall > 0 {
		cfg.StallThreshold = *stall
	}
	if *turns > 0 {
		cfg.TurnsPerMatch = *turns
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Invalid log level %q: %v", cfg.LogLevel, err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	logger.Info().Int64("seed", cfg.Seed).Int("clubs", len(cfg.Clubs)).Msg("building league")

	lineups := make(map[string]*markovfootball.Lineup, len(cfg.Clubs))
	for _, club := range cfg.Clubs {
		players := markovfootball.GenerateRandomPlayers(rng, club, cfg.SquadSize)
		lineup, err := markovfootball.CreateLineup(club, players)
		if err != nil {
			log.Fatalf("Failed to create lineup for %s: %v", club, err)
		}
		lineups[club] = lineup
	}

	league, err := markovfootball.NewLeague(lineups, markovfootball.LeagueOptions{
		StallThreshold: cfg.StallThreshold,
		TurnsPerMatch:  cfg.TurnsPerMatch,
		Rand:           rng,
		Logger:         logger,
	})
	if err != nil {
		log.Fatalf("Failed to create league: %v", err)
	}

	if err := league.PlaySeason(); err != nil {
		log.Fatalf("Season failed: %v", err)
	}

	displayStandings(league.Standings())

	matrix, err := markovfootball.NextGoalMatrix(league.Lineups(), []markovfootball.Phase{markovfootball.WithMidfield})
	if err != nil {
		log.Fatalf("Failed to build next-goal matrix: %v", err)
	}
	displayNextGoalMatrix(matrix, league.Lineups())
}

func displayStandings(table []markovfootball.ClubRecord) {
	fmt.Printf("\nFinal standings\n")
	fmt.Printf("===============\n\n")
	fmt.Printf("%-12s %3s %3s %3s %3s %4s %4s %4s %4s\n",
		"Club", "P", "W", "D", "L", "GF", "GA", "GD", "Pts")
	for _, record := range table {
		fmt.Printf("%-12s %3d %3d %3d %3d %4d %4d %+4d %4d\n",
			record.Name, record.Played, record.Wins, record.Draws, record.Losses,
			record.GoalsFor, record.GoalsAgainst, record.GoalDifference(), record.Points)
	}
}

func displayNextGoalMatrix(matrix []markovfootball.NextGoalEntry, lineups map[string]*markovfootball.Lineup) {
	fmt.Printf("\nNext-goal strength (mean vs. field) and final formations\n")
	fmt.Printf("========================================================\n\n")
	fmt.Printf("%-12s %6s   %s\n", "Club", "Mean", "Formation (GK-D-M-F)")
	for _, entry := range matrix {
		formation := lineups[entry.Name].Formation()
		fmt.Printf("%-12s %6.3f   %d-%d-%d-%d\n",
			entry.Name, entry.Mean,
			formation[markovfootball.GK], formation[markovfootball.D],
			formation[markovfootball.M], formation[markovfootball.F])
	}
}
