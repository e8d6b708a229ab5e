package markovfootball

import "math"

// logistic maps a strength difference onto a probability in (0, 1).
func logistic(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// teamTransitions builds one team's half of the possession chain against the
// named opposition. Each phase has exactly two outcomes: the ball advances
// for the owning team, or possession turns over to a fixed counter-phase of
// the opposition, so every row sums to one by construction.
//
// Only the reduced transition set is modelled: goalkeeper distribution to
// defense, defense into midfield, midfield into the forward line, and shots
// from the forward line. Direct defense-to-defense passes, midfield shots
// and forward-to-forward passes are deliberately absent.
func teamTransitions(lineup, other *Lineup) []Transition {
	name := lineup.Name()
	otherName := other.Name()

	gkPassing := lineup.TotalAbility(Passing, GK)
	dPassing := lineup.TotalAbility(Passing, D)
	mPassing := lineup.TotalAbility(Passing, M)

	dDribbling := lineup.TotalAbility(Dribbling, D)
	mDribbling := lineup.TotalAbility(Dribbling, M)
	fDribbling := lineup.TotalAbility(Dribbling, F)

	fShooting := lineup.TotalAbility(Shooting, F)

	oppFIntercepting := other.TotalAbility(Interception, F)
	oppMIntercepting := other.TotalAbility(Interception, M)
	oppDIntercepting := other.TotalAbility(Interception, D)

	oppFTackling := other.TotalAbility(Tackling, F)
	oppMTackling := other.TotalAbility(Tackling, M)
	oppDTackling := other.TotalAbility(Tackling, D)

	oppDBlocking := other.TotalAbility(Blocking, D)
	oppGKBlocking := other.TotalAbility(Blocking, GK)

	pGKToD := logistic(gkPassing - oppFIntercepting)
	pDToM := logistic(dPassing + dDribbling - oppFTackling - oppMIntercepting)
	pMToF := logistic(mPassing + mDribbling - oppMTackling - oppDIntercepting)
	pFScores := logistic(fShooting + fDribbling - oppDTackling - oppDBlocking - oppGKBlocking)

	return []Transition{
		// GK distributes to defense, or the opposing forwards intercept
		{From: State{name, WithGoalkeeper}, To: State{name, WithDefense}, Probability: pGKToD},
		{From: State{name, WithGoalkeeper}, To: State{otherName, WithForward}, Probability: 1.0 - pGKToD},

		// Defense plays into midfield, or loses it to the opposing midfield
		{From: State{name, WithDefense}, To: State{name, WithMidfield}, Probability: pDToM},
		{From: State{name, WithDefense}, To: State{otherName, WithMidfield}, Probability: 1.0 - pDToM},

		// Midfield finds the forward line, or the opposing defense wins it
		{From: State{name, WithMidfield}, To: State{name, WithForward}, Probability: pMToF},
		{From: State{name, WithMidfield}, To: State{otherName, WithDefense}, Probability: 1.0 - pMToF},

		// Forwards shoot: goal, or the opposing goalkeeper collects
		{From: State{name, WithForward}, To: State{name, Scored}, Probability: pFScores},
		{From: State{name, WithForward}, To: State{otherName, WithGoalkeeper}, Probability: 1.0 - pFScores},
	}
}

// BuildChain combines both teams' transition sets into a single absorbing
// chain over the ten (team, phase) states. Each team's Scored state is the
// only absorbing state on its side.
func BuildChain(a, b *Lineup) (*Chain, error) {
	return NewChain(append(teamTransitions(a, b), teamTransitions(b, a)...))
}

// NextGoalProbs returns, per absorbing Scored state, the probability that
// its team scores next when play starts uniformly from each given phase for
// either side.
func NextGoalProbs(chain *Chain, phases []Phase) (map[State]float64, error) {
	var starts []State
	for _, phase := range phases {
		for _, absorbed := range chain.AbsorbingStates() {
			starts = append(starts, State{Team: absorbed.Team, Phase: phase})
		}
	}
	return chain.MeanOutcome(starts)
}
