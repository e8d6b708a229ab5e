package markovfootball

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// LeagueOptions configures a season run.
type LeagueOptions struct {
	StartPhases    []Phase           // evaluation phases for optimization (default midfield kickoff)
	StallThreshold int               // pre-match optimization budget per fixture
	TurnsPerMatch  int               // possession turns per fixture
	Rand           *rand.Rand        // randomness source for optimization and match sampling
	Logger         zerolog.Logger    // season diagnostics (zero value is silent)
	Observer       func(ChangeEvent) // forwarded to the per-fixture optimizer
}

// DefaultLeagueOptions returns the season defaults.
func DefaultLeagueOptions() LeagueOptions {
	return LeagueOptions{
		StartPhases:    []Phase{WithMidfield},
		StallThreshold: DefaultStallThreshold,
		TurnsPerMatch:  DefaultTurns,
		Logger:         zerolog.Nop(),
	}
}

// League drives a round-robin season over a set of lineups: before each
// fixture the two sides re-optimize their player positions against each
// other, then the match is sampled turn by turn and the result recorded.
type League struct {
	lineups   map[string]*Lineup
	standings *Standings
	opts      LeagueOptions
}

// NewLeague builds a league over the given lineups. The mapping is copied;
// the caller's lineups are adopted as the opening arrangements.
func NewLeague(lineupsByName map[string]*Lineup, opts LeagueOptions) (*League, error) {
	if len(lineupsByName) < 2 {
		return nil, fmt.Errorf("league needs at least two clubs, got %d", len(lineupsByName))
	}
	if len(opts.StartPhases) == 0 {
		opts.StartPhases = []Phase{WithMidfield}
	}
	if opts.StallThreshold <= 0 {
		opts.StallThreshold = DefaultStallThreshold
	}
	if opts.TurnsPerMatch <= 0 {
		opts.TurnsPerMatch = DefaultTurns
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	lineups := make(map[string]*Lineup, len(lineupsByName))
	clubs := make([]string, 0, len(lineupsByName))
	for name, lineup := range lineupsByName {
		if lineup == nil {
			return nil, fmt.Errorf("club %s has no lineup", name)
		}
		lineups[name] = lineup
		clubs = append(clubs, name)
	}

	return &League{
		lineups:   lineups,
		standings: NewStandings(clubs),
		opts:      opts,
	}, nil
}

// Clubs returns the club names in alphabetical order.
func (lg *League) Clubs() []string {
	clubs := make([]string, 0, len(lg.lineups))
	for name := range lg.lineups {
		clubs = append(clubs, name)
	}
	sort.Strings(clubs)
	return clubs
}

// Lineups returns the current lineup per club.
func (lg *League) Lineups() map[string]*Lineup {
	out := make(map[string]*Lineup, len(lg.lineups))
	for name, lineup := range lg.lineups {
		out[name] = lineup
	}
	return out
}

// Standings returns the current table.
func (lg *League) Standings() []ClubRecord {
	return lg.standings.Table()
}

// PlayRound plays one round of pairings. Byes are skipped.
func (lg *League) PlayRound(pairings []Pairing) error {
	for _, pairing := range pairings {
		if pairing.Home == "" || pairing.Away == "" {
			continue
		}
		if err := lg.playFixture(pairing); err != nil {
			return err
		}
	}
	return nil
}

// PlaySeason runs the full round-robin schedule once.
func (lg *League) PlaySeason() error {
	for week, round := range Fixtures(lg.Clubs()) {
		lg.opts.Logger.Info().Int("week", week+1).Msg("starting round")
		if err := lg.PlayRound(round); err != nil {
			return fmt.Errorf("week %d: %w", week+1, err)
		}
	}
	return nil
}

func (lg *League) playFixture(pairing Pairing) error {
	home, ok := lg.lineups[pairing.Home]
	if !ok {
		return fmt.Errorf("unknown club %s", pairing.Home)
	}
	away, ok := lg.lineups[pairing.Away]
	if !ok {
		return fmt.Errorf("unknown club %s", pairing.Away)
	}

	// Both camps rearrange against each other before kickoff
	improved, err := Optimize(
		map[string]*Lineup{pairing.Home: home, pairing.Away: away},
		lg.opts.StartPhases,
		OptimizeOptions{
			StallThreshold: lg.opts.StallThreshold,
			Rand:           lg.opts.Rand,
			Logger:         lg.opts.Logger,
			Observer:       lg.opts.Observer,
		},
	)
	if err != nil {
		return fmt.Errorf("optimizing %s vs %s: %w", pairing.Home, pairing.Away, err)
	}
	lg.lineups[pairing.Home] = improved[pairing.Home]
	lg.lineups[pairing.Away] = improved[pairing.Away]

	score, err := PlayFixture(lg.opts.Rand, improved[pairing.Home], improved[pairing.Away],
		lg.opts.StartPhases[0], lg.opts.TurnsPerMatch)
	if err != nil {
		return fmt.Errorf("playing %s vs %s: %w", pairing.Home, pairing.Away, err)
	}

	lg.standings.Record(pairing.Home, pairing.Away, score[pairing.Home], score[pairing.Away])
	lg.opts.Logger.Info().
		Str("home", pairing.Home).Str("away", pairing.Away).
		Int("home_goals", score[pairing.Home]).Int("away_goals", score[pairing.Away]).
		Msg("full time")

	return nil
}

// NextGoalEntry is one row of the pairwise next-goal matrix.
type NextGoalEntry struct {
	Name  string
	Mean  float64            // mean over opponents, self excluded
	Probs map[string]float64 // opponent -> probability this club scores next
}

// NextGoalMatrix evaluates every lineup against every other, returning one
// row per club sorted by mean next-goal probability descending. The self
// cell is fixed at 0.5 and excluded from the mean.
func NextGoalMatrix(lineupsByName map[string]*Lineup, phases []Phase) ([]NextGoalEntry, error) {
	names := make([]string, 0, len(lineupsByName))
	for name := range lineupsByName {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]NextGoalEntry, 0, len(names))
	for _, name := range names {
		lineup := lineupsByName[name]
		entry := NextGoalEntry{Name: name, Probs: make(map[string]float64, len(names))}

		sum := 0.0
		for _, opponent := range names {
			if opponent == name {
				entry.Probs[opponent] = 0.5
				continue
			}
			chain, err := BuildChain(lineup, lineupsByName[opponent])
			if err != nil {
				return nil, fmt.Errorf("chain %s vs %s: %w", name, opponent, err)
			}
			outcome, err := NextGoalProbs(chain, phases)
			if err != nil {
				return nil, fmt.Errorf("next-goal probabilities %s vs %s: %w", name, opponent, err)
			}
			p := outcome[State{Team: name, Phase: Scored}]
			entry.Probs[opponent] = p
			sum += p
		}
		if len(names) > 1 {
			entry.Mean = sum / float64(len(names)-1)
		} else {
			entry.Mean = 0.5
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Mean != entries[j].Mean {
			return entries[i].Mean > entries[j].Mean
		}
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}
