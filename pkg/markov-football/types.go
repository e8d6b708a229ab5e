package markovfootball

// Position identifies where a player is fielded.
type Position int

const (
	GK Position = iota
	D
	M
	F
)

// AllPositions lists every fielding position in a fixed order.
var AllPositions = []Position{GK, D, M, F}

func (p Position) String() string {
	switch p {
	case GK:
		return "GK"
	case D:
		return "D"
	case M:
		return "M"
	case F:
		return "F"
	default:
		return "?"
	}
}

// Phase is one team's possession phase. Scored is terminal: a (team, Scored)
// state has no outgoing transitions.
type Phase int

const (
	WithGoalkeeper Phase = iota
	WithDefense
	WithMidfield
	WithForward
	Scored
)

func (ph Phase) String() string {
	switch ph {
	case WithGoalkeeper:
		return "WITH_GK"
	case WithDefense:
		return "WITH_D"
	case WithMidfield:
		return "WITH_M"
	case WithForward:
		return "WITH_F"
	case Scored:
		return "SCORED"
	default:
		return "?"
	}
}

// State identifies which team has the ball and in which phase.
type State struct {
	Team  string
	Phase Phase
}

func (s State) String() string {
	return s.Team + ":" + s.Phase.String()
}

// Ability enumerates the skill scalars a player carries.
type Ability int

const (
	Blocking Ability = iota
	Tackling
	Interception
	Shooting
	Dribbling
	Passing
)

// AllAbilities lists every ability in a fixed order.
var AllAbilities = []Ability{Blocking, Tackling, Interception, Shooting, Dribbling, Passing}

func (a Ability) String() string {
	switch a {
	case Blocking:
		return "blocking"
	case Tackling:
		return "tackling"
	case Interception:
		return "interception"
	case Shooting:
		return "shooting"
	case Dribbling:
		return "dribbling"
	case Passing:
		return "passing"
	default:
		return "?"
	}
}

// AbilitySet maps abilities to skill levels. Missing abilities count as zero.
type AbilitySet map[Ability]float64

// Player is one squad member. Players are handled by pointer identity, so
// two players sharing a name remain distinct squad members.
type Player struct {
	Name      string     `json:"name"`
	Age       int        `json:"age"`
	Abilities AbilitySet `json:"abilities"`
}
