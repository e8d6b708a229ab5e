package markovfootball

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomLeague(t *testing.T, seed int64, clubs ...string) *League {
	t.Helper()
	rng := newTestRand(seed)
	lineups := make(map[string]*Lineup, len(clubs))
	for _, club := range clubs {
		lineup, err := CreateLineup(club, GenerateRandomPlayers(rng, club, 11))
		require.NoError(t, err)
		lineups[club] = lineup
	}

	opts := DefaultLeagueOptions()
	opts.StallThreshold = 1 // single optimization pass per fixture keeps tests fast
	opts.TurnsPerMatch = 20
	opts.Rand = rng

	league, err := NewLeague(lineups, opts)
	require.NoError(t, err)
	return league
}

func TestNewLeagueNeedsTwoClubs(t *testing.T) {
	lineup := typicalLineup(t, "solo")
	_, err := NewLeague(map[string]*Lineup{"solo": lineup}, DefaultLeagueOptions())
	assert.Error(t, err)
}

func TestLeaguePlaySeason(t *testing.T) {
	league := randomLeague(t, 17, "alpha", "beta", "gamma")
	require.NoError(t, league.PlaySeason())

	table := league.Standings()
	require.Len(t, table, 3)

	totalPoints := 0
	for _, record := range table {
		assert.Equal(t, 2, record.Played, "each club plays every other once")
		assert.Equal(t, record.Wins*3+record.Draws, record.Points)
		assert.Equal(t, record.Played, record.Wins+record.Draws+record.Losses)
		totalPoints += record.Points
	}
	// Three fixtures, each worth 2 (draw) or 3 (decisive) points
	assert.GreaterOrEqual(t, totalPoints, 6)
	assert.LessOrEqual(t, totalPoints, 9)

	// Goals balance across the table
	scored, conceded := 0, 0
	for _, record := range table {
		scored += record.GoalsFor
		conceded += record.GoalsAgainst
	}
	assert.Equal(t, scored, conceded)
}

func TestLeagueKeepsOptimizedLineups(t *testing.T) {
	league := randomLeague(t, 29, "alpha", "beta")
	require.NoError(t, league.PlaySeason())

	lineups := league.Lineups()
	require.Len(t, lineups, 2)
	for club, lineup := range lineups {
		require.NotNil(t, lineup)
		assert.Equal(t, club, lineup.Name())
		assert.Len(t, lineup.Players(), 11)
	}
}

func TestLeaguePlayRoundSkipsByes(t *testing.T) {
	league := randomLeague(t, 41, "alpha", "beta")
	require.NoError(t, league.PlayRound([]Pairing{{Home: "alpha", Away: ""}}))

	for _, record := range league.Standings() {
		assert.Equal(t, 0, record.Played)
	}
}

func TestLeaguePlayRoundUnknownClub(t *testing.T) {
	league := randomLeague(t, 43, "alpha", "beta")
	err := league.PlayRound([]Pairing{{Home: "alpha", Away: "nowhere"}})
	assert.Error(t, err)
}

func TestNextGoalMatrixSymmetricPair(t *testing.T) {
	lineups := map[string]*Lineup{
		"home": typicalLineup(t, "home"),
		"away": typicalLineup(t, "away"),
	}

	matrix, err := NextGoalMatrix(lineups, []Phase{WithMidfield})
	require.NoError(t, err)
	require.Len(t, matrix, 2)

	for _, entry := range matrix {
		assert.InDelta(t, 0.5, entry.Mean, ProbTolerance)
		assert.InDelta(t, 0.5, entry.Probs[entry.Name], ProbTolerance)
	}
}

func TestNextGoalMatrixOrdering(t *testing.T) {
	strong, err := CreateLineup("strong", GenerateTypicalPlayers("s", 11, 2.0))
	require.NoError(t, err)
	weak, err := CreateLineup("weak", GenerateTypicalPlayers("w", 11, 0.1))
	require.NoError(t, err)

	matrix, err := NextGoalMatrix(map[string]*Lineup{"strong": strong, "weak": weak}, []Phase{WithMidfield})
	require.NoError(t, err)
	require.Len(t, matrix, 2)

	assert.Equal(t, "strong", matrix[0].Name)
	assert.Greater(t, matrix[0].Mean, matrix[1].Mean)
	// The pairwise cells are complementary
	assert.InDelta(t, 1.0, matrix[0].Probs["weak"]+matrix[1].Probs["strong"], ProbTolerance)
}
