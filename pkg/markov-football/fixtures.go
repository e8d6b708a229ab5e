package markovfootball

import "sort"

// Pairing is one scheduled fixture. Either side is empty when the league has
// an odd number of clubs and this slot is a bye.
type Pairing struct {
	Home string
	Away string
}

// Fixtures produces a round-robin schedule over the given clubs using the
// circle method: one club stays fixed while the rest rotate, giving
// len(clubs)-1 rounds (padded to even with byes) in which every club meets
// every other exactly once.
func Fixtures(clubs []string) [][]Pairing {
	if len(clubs) < 2 {
		return nil
	}

	rotation := make([]string, len(clubs))
	copy(rotation, clubs)
	if len(rotation)%2 == 1 {
		rotation = append(rotation, "")
	}

	n := len(rotation)
	half := n / 2

	rounds := make([][]Pairing, 0, n-1)
	for round := 0; round < n-1; round++ {
		pairings := make([]Pairing, 0, half)
		for i := 0; i < half; i++ {
			pairings = append(pairings, Pairing{Home: rotation[i], Away: rotation[n-1-i]})
		}
		rounds = append(rounds, pairings)

		// Rotate everything but the first club one position clockwise
		last := rotation[n-1]
		copy(rotation[2:], rotation[1:n-1])
		rotation[1] = last
	}

	return rounds
}

// ClubRecord is one club's row in the standings.
type ClubRecord struct {
	Name         string `json:"name"`
	Played       int    `json:"played"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
	Points       int    `json:"points"`
}

// GoalDifference returns goals scored minus goals conceded.
func (r ClubRecord) GoalDifference() int {
	return r.GoalsFor - r.GoalsAgainst
}

// Standings accumulates fixture results across a season. Counters live in
// memory only; nothing is persisted.
type Standings struct {
	records map[string]*ClubRecord
}

// NewStandings initializes an empty table for the given clubs.
func NewStandings(clubs []string) *Standings {
	records := make(map[string]*ClubRecord, len(clubs))
	for _, club := range clubs {
		records[club] = &ClubRecord{Name: club}
	}
	return &Standings{records: records}
}

// Record applies one final score to the table: three points for a win, one
// each for a draw.
func (s *Standings) Record(home, away string, homeGoals, awayGoals int) {
	for _, club := range []string{home, away} {
		if _, ok := s.records[club]; !ok {
			s.records[club] = &ClubRecord{Name: club}
		}
	}

	homeRecord := s.records[home]
	awayRecord := s.records[away]

	homeRecord.Played++
	awayRecord.Played++
	homeRecord.GoalsFor += homeGoals
	homeRecord.GoalsAgainst += awayGoals
	awayRecord.GoalsFor += awayGoals
	awayRecord.GoalsAgainst += homeGoals

	switch {
	case homeGoals > awayGoals:
		homeRecord.Wins++
		homeRecord.Points += 3
		awayRecord.Losses++
	case awayGoals > homeGoals:
		awayRecord.Wins++
		awayRecord.Points += 3
		homeRecord.Losses++
	default:
		homeRecord.Draws++
		awayRecord.Draws++
		homeRecord.Points++
		awayRecord.Points++
	}
}

// Table returns the standings sorted by points, then goal difference, then
// name for a stable order.
func (s *Standings) Table() []ClubRecord {
	table := make([]ClubRecord, 0, len(s.records))
	for _, record := range s.records {
		table = append(table, *record)
	}

	sort.Slice(table, func(i, j int) bool {
		if table[i].Points != table[j].Points {
			return table[i].Points > table[j].Points
		}
		if table[i].GoalDifference() != table[j].GoalDifference() {
			return table[i].GoalDifference() > table[j].GoalDifference()
		}
		return table[i].Name < table[j].Name
	})

	return table
}
