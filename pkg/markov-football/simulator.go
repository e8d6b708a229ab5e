package markovfootball

import (
	"fmt"
	"math/rand"
)

// DefaultTurns is the possession-turn budget of one simulated fixture.
const DefaultTurns = 100

// Score tallies goals per team over one simulated fixture.
type Score map[string]int

// PlayFixture simulates a fixed number of single possession steps between
// two lineups, starting with the first lineup in kickoffPhase. Whenever a
// Scored state is reached the scorer's tally is incremented and play
// restarts from the conceding side's kickoff phase.
func PlayFixture(rng *rand.Rand, a, b *Lineup, kickoffPhase Phase, turns int) (Score, error) {
	chain, err := BuildChain(a, b)
	if err != nil {
		return nil, fmt.Errorf("building match chain: %w", err)
	}

	score := Score{a.Name(): 0, b.Name(): 0}
	state := State{Team: a.Name(), Phase: kickoffPhase}

	for turn := 0; turn < turns; turn++ {
		next, err := chain.SampleNext(rng, state)
		if err != nil {
			return nil, err
		}

		switch next {
		case State{Team: a.Name(), Phase: Scored}:
			score[a.Name()]++
			state = State{Team: b.Name(), Phase: kickoffPhase}
		case State{Team: b.Name(), Phase: Scored}:
			score[b.Name()]++
			state = State{Team: a.Name(), Phase: kickoffPhase}
		default:
			state = next
		}
	}

	return score, nil
}
