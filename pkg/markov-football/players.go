package markovfootball

import (
	"fmt"
	"math/rand"
)

// GenerateRandomPlayers draws n players with uniformly random abilities. One
// shared multiplier in [0, 2) scales the whole population, so squads differ
// in overall quality as well as in shape.
func GenerateRandomPlayers(rng *rand.Rand, prefix string, n int) []*Player {
	multiplier := rng.Float64() * 2.0

	players := make([]*Player, n)
	for i := range players {
		abilities := make(AbilitySet, len(AllAbilities))
		for _, ability := range AllAbilities {
			abilities[ability] = multiplier * rng.Float64()
		}
		players[i] = &Player{
			Name:      fmt.Sprintf("%s-%02d", prefix, i+1),
			Age:       16,
			Abilities: abilities,
		}
	}
	return players
}

// GenerateTypicalPlayers returns n players with every ability at the same
// level. Useful for symmetric scenarios.
func GenerateTypicalPlayers(prefix string, n int, level float64) []*Player {
	players := make([]*Player, n)
	for i := range players {
		abilities := make(AbilitySet, len(AllAbilities))
		for _, ability := range AllAbilities {
			abilities[ability] = level
		}
		players[i] = &Player{
			Name:      fmt.Sprintf("%s-%02d", prefix, i+1),
			Age:       16,
			Abilities: abilities,
		}
	}
	return players
}

// CreateLineup fields the first eleven players in a 4-4-2: one goalkeeper,
// four defenders, four midfielders, two forwards.
func CreateLineup(name string, players []*Player) (*Lineup, error) {
	if len(players) < maxSquadSize {
		return nil, LineupError{
			Lineup:  name,
			Message: fmt.Sprintf("need %d players for a full lineup, got %d", maxSquadSize, len(players)),
		}
	}
	positions := []Position{GK, D, D, D, D, M, M, M, M, F, F}
	return NewLineup(name, players[:maxSquadSize], positions)
}
