package markovfootball

import (
	"fmt"
	"math"
)

// goalKeeperCorrection boosts the goalkeeper's aggregate before the square
// root is applied, reflecting the outsized value of distribution from goal.
const goalKeeperCorrection = 3.0

// maxSquadSize caps the number of players a lineup may field.
const maxSquadSize = 11

// PlayerPosition pairs a player with a target position for WithPositions.
type PlayerPosition struct {
	Player   *Player
	Position Position
}

// Lineup is an immutable assignment of players to positions for one team.
// Every repositioning operation returns a new value; a Lineup is never
// mutated after construction.
type Lineup struct {
	name      string
	players   []*Player
	positions []Position
}

// NewLineup validates and builds a lineup. At most maxSquadSize players and
// at most one goalkeeper are allowed.
func NewLineup(name string, players []*Player, positions []Position) (*Lineup, error) {
	if name == "" {
		return nil, LineupError{Lineup: name, Message: "need a name"}
	}
	if len(players) != len(positions) {
		return nil, LineupError{
			Lineup:  name,
			Message: fmt.Sprintf("%d players but %d positions", len(players), len(positions)),
		}
	}
	if len(players) > maxSquadSize {
		return nil, LineupError{
			Lineup:  name,
			Message: fmt.Sprintf("too many players: %d, max %d", len(players), maxSquadSize),
		}
	}

	keepers := 0
	seen := make(map[*Player]bool, len(players))
	for i, player := range players {
		if player == nil {
			return nil, LineupError{Lineup: name, Message: "nil player"}
		}
		if seen[player] {
			return nil, LineupError{Lineup: name, Message: fmt.Sprintf("player %s listed twice", player.Name)}
		}
		seen[player] = true
		if positions[i] == GK {
			keepers++
		}
	}
	if keepers > 1 {
		return nil, LineupError{Lineup: name, Message: "can only have zero or one goalkeepers"}
	}

	lineup := &Lineup{
		name:      name,
		players:   make([]*Player, len(players)),
		positions: make([]Position, len(positions)),
	}
	copy(lineup.players, players)
	copy(lineup.positions, positions)
	return lineup, nil
}

// Name returns the team name.
func (l *Lineup) Name() string {
	return l.name
}

// Players returns the fielded players in their fixed order.
func (l *Lineup) Players() []*Player {
	out := make([]*Player, len(l.players))
	copy(out, l.players)
	return out
}

// PositionOf reports where a player is fielded.
func (l *Lineup) PositionOf(player *Player) (Position, bool) {
	for i, p := range l.players {
		if p == player {
			return l.positions[i], true
		}
	}
	return 0, false
}

// TotalAbility aggregates one ability across every player fielded at the
// given position: the square root of the summed raw values, with the
// goalkeeper aggregate scaled by goalKeeperCorrection before the root.
func (l *Lineup) TotalAbility(ability Ability, position Position) float64 {
	sum := 0.0
	for i, player := range l.players {
		if l.positions[i] == position {
			sum += player.Abilities[ability]
		}
	}
	if position == GK {
		sum *= goalKeeperCorrection
	}
	return math.Sqrt(sum)
}

// WithPositions returns a new lineup with the given players reassigned. The
// receiver is left untouched. Reassignments that produce an illegal
// configuration fail with a LineupError.
func (l *Lineup) WithPositions(moves []PlayerPosition) (*Lineup, error) {
	positions := make([]Position, len(l.positions))
	copy(positions, l.positions)

	for _, move := range moves {
		found := false
		for i, player := range l.players {
			if player == move.Player {
				positions[i] = move.Position
				found = true
				break
			}
		}
		if !found {
			name := "<nil>"
			if move.Player != nil {
				name = move.Player.Name
			}
			return nil, LineupError{Lineup: l.name, Message: fmt.Sprintf("player %s not in lineup", name)}
		}
	}

	return NewLineup(l.name, l.players, positions)
}

// Formation counts fielded players per position.
func (l *Lineup) Formation() map[Position]int {
	formation := make(map[Position]int, len(AllPositions))
	for _, position := range AllPositions {
		formation[position] = 0
	}
	for _, position := range l.positions {
		formation[position]++
	}
	return formation
}
