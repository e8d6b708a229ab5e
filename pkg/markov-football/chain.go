package markovfootball

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// ProbTolerance is the slack allowed when checking that a transient state's
// outgoing probabilities sum to one. Shared with the test suite.
const ProbTolerance = 1e-9

// Transition is one probability-weighted edge between possession states.
type Transition struct {
	From        State
	To          State
	Probability float64
}

// Chain is an absorbing Markov chain over possession states. It is immutable
// after construction and safe to share across goroutines.
type Chain struct {
	outgoing  map[State][]Transition // keyed by source, in insertion order
	transient []State                // sorted by (team, phase)
	absorbing []State                // sorted by (team, phase)
}

// NewChain builds a chain from a flat transition set. States that never
// appear as a source are absorbing; every source state is transient and its
// outgoing probabilities must sum to one within ProbTolerance.
func NewChain(transitions []Transition) (*Chain, error) {
	outgoing := make(map[State][]Transition)
	states := make(map[State]bool)

	for _, tx := range transitions {
		if tx.Probability < 0 || tx.Probability > 1 {
			return nil, MalformedChainError{
				State:   tx.From,
				Message: fmt.Sprintf("transition to %s has probability %g outside [0,1]", tx.To, tx.Probability),
			}
		}
		outgoing[tx.From] = append(outgoing[tx.From], tx)
		states[tx.From] = true
		states[tx.To] = true
	}

	var transient, absorbing []State
	for state := range states {
		if len(outgoing[state]) > 0 {
			transient = append(transient, state)
		} else {
			absorbing = append(absorbing, state)
		}
	}
	sortStates(transient)
	sortStates(absorbing)

	for _, state := range transient {
		sum := 0.0
		for _, tx := range outgoing[state] {
			sum += tx.Probability
		}
		if math.Abs(sum-1.0) > ProbTolerance {
			return nil, MalformedChainError{
				State:   state,
				Message: fmt.Sprintf("outgoing probabilities sum to %.12f, want 1", sum),
			}
		}
	}

	return &Chain{outgoing: outgoing, transient: transient, absorbing: absorbing}, nil
}

func sortStates(states []State) {
	sort.Slice(states, func(i, j int) bool {
		if states[i].Team != states[j].Team {
			return states[i].Team < states[j].Team
		}
		return states[i].Phase < states[j].Phase
	})
}

// TransientStates returns the transient states in their fixed ordering.
func (c *Chain) TransientStates() []State {
	out := make([]State, len(c.transient))
	copy(out, c.transient)
	return out
}

// AbsorbingStates returns the absorbing states in their fixed ordering.
func (c *Chain) AbsorbingStates() []State {
	out := make([]State, len(c.absorbing))
	copy(out, c.absorbing)
	return out
}

// OutgoingTransitions returns the transitions leaving a state, in the fixed
// order used by SampleNext. Absorbing states return an empty slice.
func (c *Chain) OutgoingTransitions(state State) []Transition {
	out := make([]Transition, len(c.outgoing[state]))
	copy(out, c.outgoing[state])
	return out
}

// AbsorptionDistribution computes, for each requested transient start state,
// the probability of eventual absorption into each absorbing state. It
// solves (I-Q)B = R over the fixed state ordering (the fundamental-matrix
// method) rather than expanding a Neumann series.
func (c *Chain) AbsorptionDistribution(startStates []State) (map[State]map[State]float64, error) {
	transientIndex := make(map[State]int, len(c.transient))
	for i, state := range c.transient {
		transientIndex[state] = i
	}
	absorbingIndex := make(map[State]int, len(c.absorbing))
	for j, state := range c.absorbing {
		absorbingIndex[state] = j
	}

	for _, state := range startStates {
		if _, ok := transientIndex[state]; !ok {
			return nil, TerminalStateError{State: state}
		}
	}

	n := len(c.transient)
	m := len(c.absorbing)

	// a = I - Q, r = transient -> absorbing block
	a := newMatrix(n, n)
	r := newMatrix(n, m)
	for i, state := range c.transient {
		a[i][i] = 1.0
		for _, tx := range c.outgoing[state] {
			if j, ok := transientIndex[tx.To]; ok {
				a[i][j] -= tx.Probability
			} else {
				r[i][absorbingIndex[tx.To]] += tx.Probability
			}
		}
	}

	b, err := solveLinearSystem(a, r)
	if err != nil {
		return nil, SingularChainError{States: c.TransientStates()}
	}

	result := make(map[State]map[State]float64, len(startStates))
	for _, state := range startStates {
		i := transientIndex[state]
		row := make(map[State]float64, m)
		for j, absorbed := range c.absorbing {
			row[absorbed] = b[i][j]
		}
		result[state] = row
	}
	return result, nil
}

// MeanOutcome averages AbsorptionDistribution uniformly across the supplied
// start states, yielding one probability per absorbing state. Used when
// several starting phases are considered equally likely.
func (c *Chain) MeanOutcome(startStates []State) (map[State]float64, error) {
	if len(startStates) == 0 {
		return nil, fmt.Errorf("mean outcome needs at least one start state")
	}

	dist, err := c.AbsorptionDistribution(startStates)
	if err != nil {
		return nil, err
	}

	mean := make(map[State]float64, len(c.absorbing))
	for _, absorbed := range c.absorbing {
		mean[absorbed] = 0
	}
	weight := 1.0 / float64(len(startStates))
	for _, state := range startStates {
		for absorbed, p := range dist[state] {
			mean[absorbed] += weight * p
		}
	}
	return mean, nil
}

// SampleNext draws one transition out of state proportionally to its
// outgoing probabilities, using a single uniform draw against the cumulative
// distribution in fixed order. Absorbing states have no legal next state.
func (c *Chain) SampleNext(rng *rand.Rand, state State) (State, error) {
	transitions := c.outgoing[state]
	if len(transitions) == 0 {
		return State{}, TerminalStateError{State: state}
	}

	draw := rng.Float64()
	cumulative := 0.0
	for _, tx := range transitions {
		cumulative += tx.Probability
		if draw < cumulative {
			return tx.To, nil
		}
	}
	// Guard against cumulative rounding just below 1
	return transitions[len(transitions)-1].To, nil
}
