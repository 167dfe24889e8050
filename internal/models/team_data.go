package models

// TeamData is the whole roster document. Every mutation rewrites it as one
// unit, which is what makes cascading deletes atomic.
type TeamData struct {
	// Players is the full roster
	Players []*Player `json:"players"`

	// Games is every scheduled game across all years
	Games []*Game `json:"games"`

	// Availability holds one record per answered (player, game) pair
	Availability []*Availability `json:"availability"`

	// Refreshments holds one record per purchase across all years
	Refreshments []*Refreshment `json:"refreshments"`
}

// NewTeamData returns an empty roster document.
func NewTeamData() *TeamData {
	return &TeamData{
		Players:      []*Player{},
		Games:        []*Game{},
		Availability: []*Availability{},
		Refreshments: []*Refreshment{},
	}
}

// GamesInYear returns the games filed under the given partition year.
func (d *TeamData) GamesInYear(year int) []*Game {
	games := make([]*Game, 0)
	for _, g := range d.Games {
		if g.Year == year {
			games = append(games, g)
		}
	}
	return games
}

// RefreshmentsInYear returns the purchases filed under the given partition year.
func (d *TeamData) RefreshmentsInYear(year int) []*Refreshment {
	refreshments := make([]*Refreshment, 0)
	for _, r := range d.Refreshments {
		if r.Year == year {
			refreshments = append(refreshments, r)
		}
	}
	return refreshments
}
