package markovfootball

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pairKey(a, b string) [2]string {
	if a < b {
		return [2]string{a, b}
	}
	return [2]string{b, a}
}

func TestFixturesEvenClubCount(t *testing.T) {
	clubs := []string{"a", "b", "c", "d"}
	rounds := Fixtures(clubs)

	require.Len(t, rounds, 3)
	meetings := make(map[[2]string]int)
	for _, round := range rounds {
		require.Len(t, round, 2)
		for _, pairing := range round {
			require.NotEmpty(t, pairing.Home)
			require.NotEmpty(t, pairing.Away)
			meetings[pairKey(pairing.Home, pairing.Away)]++
		}
	}

	// Every pair meets exactly once
	assert.Len(t, meetings, 6)
	for pair, count := range meetings {
		assert.Equalf(t, 1, count, "pair %v", pair)
	}
}

func TestFixturesOddClubCountAddsByes(t *testing.T) {
	clubs := []string{"a", "b", "c", "d", "e"}
	rounds := Fixtures(clubs)

	require.Len(t, rounds, 5)
	byes := 0
	meetings := make(map[[2]string]int)
	for _, round := range rounds {
		require.Len(t, round, 3)
		for _, pairing := range round {
			if pairing.Home == "" || pairing.Away == "" {
				byes++
				continue
			}
			meetings[pairKey(pairing.Home, pairing.Away)]++
		}
	}

	assert.Equal(t, 5, byes)
	assert.Len(t, meetings, 10)
	for pair, count := range meetings {
		assert.Equalf(t, 1, count, "pair %v", pair)
	}
}

func TestFixturesDegenerateInputs(t *testing.T) {
	assert.Nil(t, Fixtures(nil))
	assert.Nil(t, Fixtures([]string{"solo"})) // one club, one bye, no fixtures

	rounds := Fixtures([]string{"a", "b"})
	require.Len(t, rounds, 1)
	assert.Empty(t, cmp.Diff([]Pairing{{Home: "a", Away: "b"}}, rounds[0]))
}

func TestStandingsRecordsResults(t *testing.T) {
	standings := NewStandings([]string{"a", "b", "c"})
	standings.Record("a", "b", 2, 1)
	standings.Record("b", "c", 1, 1)
	standings.Record("a", "c", 0, 3)

	table := standings.Table()
	require.Len(t, table, 3)

	// c: one win one draw = 4 points, a: one win one loss = 3, b: one draw = 1
	assert.Equal(t, "c", table[0].Name)
	assert.Equal(t, 4, table[0].Points)
	assert.Equal(t, "a", table[1].Name)
	assert.Equal(t, 3, table[1].Points)
	assert.Equal(t, "b", table[2].Name)
	assert.Equal(t, 1, table[2].Points)

	assert.Equal(t, 2, table[0].Played)
	assert.Equal(t, 1, table[0].Wins)
	assert.Equal(t, 1, table[0].Draws)
	assert.Equal(t, 4, table[0].GoalsFor)
	assert.Equal(t, 1, table[0].GoalsAgainst)
	assert.Equal(t, 3, table[0].GoalDifference())
}

func TestStandingsGoalDifferenceTiebreak(t *testing.T) {
	standings := NewStandings([]string{"a", "b", "c"})
	standings.Record("a", "c", 4, 0)
	standings.Record("b", "c", 1, 0)

	table := standings.Table()
	require.Len(t, table, 3)
	assert.Equal(t, "a", table[0].Name)
	assert.Equal(t, "b", table[1].Name)
}

func TestFixturesDoNotMutateInput(t *testing.T) {
	clubs := []string{"c", "a", "b"}
	Fixtures(clubs)
	assert.Empty(t, cmp.Diff([]string{"c", "a", "b"}, clubs))
}
