package markovfootball

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// DefaultStallThreshold is the number of consecutive passes without an
// accepted improvement before the optimizer stops.
const DefaultStallThreshold = 100

// ChangeEvent describes one accepted optimization move.
type ChangeEvent struct {
	Team        string
	Move        string
	Description string
	Objective   float64
}

// OptimizeOptions configures the lineup optimizer.
type OptimizeOptions struct {
	StallThreshold int                // unproductive passes before stopping (default DefaultStallThreshold)
	Rand           *rand.Rand         // randomness source (defaults to a time-seeded source)
	Logger         zerolog.Logger     // optimizer diagnostics (zero value is silent)
	Observer       func(ChangeEvent)  // receives every accepted change, optional
}

// DefaultOptimizeOptions returns the optimizer defaults.
func DefaultOptimizeOptions() OptimizeOptions {
	return OptimizeOptions{
		StallThreshold: DefaultStallThreshold,
		Logger:         zerolog.Nop(),
	}
}

// trial is one candidate move. A nil lineup means the move was rejected
// before evaluation (no-op swap or illegal configuration).
type trial struct {
	lineup      *Lineup
	move        string
	description string
}

// Optimize performs randomized hill-climbing over every lineup's position
// assignments. Each cycle proposes one move per team (a reposition or a
// swap, chosen uniformly) and accepts it only on strict improvement of the
// team's mean next-goal probability against the current state of the group.
// Later teams in a pass see earlier acceptances. The search stops once
// StallThreshold consecutive passes accept nothing.
//
// The input mapping and its lineups are never mutated; the result is a new
// mapping that shares unchanged lineups with the input.
func Optimize(lineupsByName map[string]*Lineup, phases []Phase, opts OptimizeOptions) (map[string]*Lineup, error) {
	if len(lineupsByName) == 0 {
		return nil, fmt.Errorf("no lineups to optimize")
	}
	if opts.StallThreshold <= 0 {
		opts.StallThreshold = DefaultStallThreshold
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	names := make([]string, 0, len(lineupsByName))
	for name := range lineupsByName {
		names = append(names, name)
	}
	sort.Strings(names)

	local := make(map[string]*Lineup, len(lineupsByName))
	for name, lineup := range lineupsByName {
		local[name] = lineup
	}

	stalled := 0
	for stalled < opts.StallThreshold {
		for _, name := range names {
			lineup := local[name]

			current, err := evaluateLineup(lineup, local, names, phases)
			if err != nil {
				return nil, fmt.Errorf("evaluating %s: %w", name, err)
			}

			candidate := proposeTrial(opts.Rand, lineup)
			if candidate.lineup == nil {
				opts.Logger.Debug().Str("team", name).Str("move", candidate.move).
					Msg("trial rejected: " + candidate.description)
				continue
			}

			objective, err := evaluateLineup(candidate.lineup, local, names, phases)
			if err != nil {
				return nil, fmt.Errorf("evaluating %s trial: %w", name, err)
			}

			if objective > current {
				local[name] = candidate.lineup
				stalled = 0
				opts.Logger.Info().Str("team", name).Str("move", candidate.move).
					Float64("objective", objective).Msg(candidate.description)
				if opts.Observer != nil {
					opts.Observer(ChangeEvent{
						Team:        name,
						Move:        candidate.move,
						Description: candidate.description,
						Objective:   objective,
					})
				}
			}
		}
		stalled++
	}

	return local, nil
}

// proposeTrial draws one candidate move. Moves that cannot produce a new
// valid lineup (swapping within a position, or creating a second goalkeeper)
// come back with a nil lineup and count as unproductive.
func proposeTrial(rng *rand.Rand, lineup *Lineup) trial {
	players := lineup.Players()
	if len(players) == 0 {
		return trial{move: "none", description: "empty lineup"}
	}

	if len(players) < 2 || rng.Intn(2) == 0 {
		// Reposition one player to a different position
		player := players[rng.Intn(len(players))]
		from, _ := lineup.PositionOf(player)
		targets := make([]Position, 0, len(AllPositions)-1)
		for _, position := range AllPositions {
			if position != from {
				targets = append(targets, position)
			}
		}
		to := targets[rng.Intn(len(targets))]
		description := fmt.Sprintf("move %s from %s to %s", player.Name, from, to)

		next, err := lineup.WithPositions([]PlayerPosition{{Player: player, Position: to}})
		if err != nil {
			return trial{move: "reposition", description: description}
		}
		return trial{lineup: next, move: "reposition", description: description}
	}

	// Swap two distinct players
	i := rng.Intn(len(players))
	j := rng.Intn(len(players) - 1)
	if j >= i {
		j++
	}
	first, second := players[i], players[j]
	firstPos, _ := lineup.PositionOf(first)
	secondPos, _ := lineup.PositionOf(second)
	description := fmt.Sprintf("swap %s at %s with %s at %s", first.Name, firstPos, second.Name, secondPos)

	if firstPos == secondPos {
		return trial{move: "swap", description: description}
	}
	next, err := lineup.WithPositions([]PlayerPosition{
		{Player: first, Position: secondPos},
		{Player: second, Position: firstPos},
	})
	if err != nil {
		return trial{move: "swap", description: description}
	}
	return trial{lineup: next, move: "swap", description: description}
}

// evaluateLineup scores a lineup as its mean next-goal probability over the
// group, with the self-comparison fixed at 0.5 rather than computed.
func evaluateLineup(lineup *Lineup, group map[string]*Lineup, names []string, phases []Phase) (float64, error) {
	total := 0.0
	for _, name := range names {
		if name == lineup.Name() {
			total += 0.5
			continue
		}

		chain, err := BuildChain(lineup, group[name])
		if err != nil {
			return 0, fmt.Errorf("chain vs %s: %w", name, err)
		}
		outcome, err := NextGoalProbs(chain, phases)
		if err != nil {
			return 0, fmt.Errorf("next-goal probabilities vs %s: %w", name, err)
		}
		total += outcome[State{Team: lineup.Name(), Phase: Scored}]
	}
	return total / float64(len(names)), nil
}
