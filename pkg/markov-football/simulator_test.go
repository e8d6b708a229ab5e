package markovfootball

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayFixtureZeroTurns(t *testing.T) {
	score, err := PlayFixture(newTestRand(1), typicalLineup(t, "home"), typicalLineup(t, "away"), WithMidfield, 0)
	require.NoError(t, err)
	assert.Equal(t, Score{"home": 0, "away": 0}, score)
}

func TestPlayFixtureCountsTowardsBothTeams(t *testing.T) {
	score, err := PlayFixture(newTestRand(2), typicalLineup(t, "home"), typicalLineup(t, "away"), WithMidfield, 100)
	require.NoError(t, err)

	require.Contains(t, score, "home")
	require.Contains(t, score, "away")
	assert.GreaterOrEqual(t, score["home"], 0)
	assert.GreaterOrEqual(t, score["away"], 0)
}

func TestPlayFixtureOneSidedMatch(t *testing.T) {
	// A squad so strong that every success probability rounds to 1.0 in
	// float64 makes the fixture deterministic: kickoff at midfield scores
	// after two turns, then each goal cycle (opposing kickoff, turnover,
	// defense, midfield, forward, goal) takes four turns. Goal k lands on
	// turn 4k-2, giving 25 goals in a 100-turn match.
	strong, err := CreateLineup("strong", GenerateTypicalPlayers("s", 11, 1000.0))
	require.NoError(t, err)
	feeble, err := CreateLineup("feeble", GenerateTypicalPlayers("f", 11, 0.0))
	require.NoError(t, err)

	score, err := PlayFixture(newTestRand(42), strong, feeble, WithMidfield, 100)
	require.NoError(t, err)

	assert.Equal(t, 25, score["strong"])
	assert.Equal(t, 0, score["feeble"])
}

func TestPlayFixtureKickoffAfterGoal(t *testing.T) {
	// Same one-sided setup with a six-turn budget: goal on turn two, then
	// the conceding side kicks off and loses the ball, and the second goal
	// arrives exactly on turn six.
	strong, err := CreateLineup("strong", GenerateTypicalPlayers("s", 11, 1000.0))
	require.NoError(t, err)
	feeble, err := CreateLineup("feeble", GenerateTypicalPlayers("f", 11, 0.0))
	require.NoError(t, err)

	score, err := PlayFixture(newTestRand(42), strong, feeble, WithMidfield, 6)
	require.NoError(t, err)
	assert.Equal(t, 2, score["strong"])

	score, err = PlayFixture(newTestRand(42), strong, feeble, WithMidfield, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, score["strong"])
}
