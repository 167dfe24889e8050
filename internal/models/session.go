package models

// Role represents the signed-in role
type Role string

const (
	// RoleCaptain can manage players and games in addition to everything else
	RoleCaptain Role = "captain"

	// RolePlayer can view and record availability and refreshments
	RolePlayer Role = "player"
)

// Valid reports whether the role is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleCaptain || r == RolePlayer
}

// Session represents the signed-in state of the single client
type Session struct {
	// Role is the role the client signed in as
	Role Role `json:"role"`

	// Year is the currently selected partition year
	Year int `json:"year"`
}
