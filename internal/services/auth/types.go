package auth

import "github.com/hopkinton-cheetahs/rosterd/internal/models"

// LoginInput contains parameters for signing in
type LoginInput struct {
	Role     models.Role
	Password string
}

// LoginOutput contains the established session
type LoginOutput struct {
	Session *models.Session
}

// LogoutInput contains parameters for signing out
type LogoutInput struct{}

// CurrentSessionInput contains parameters for reading the session
type CurrentSessionInput struct{}

// CurrentSessionOutput contains the session, nil when absent
type CurrentSessionOutput struct {
	Session *models.Session
}

// SelectYearInput contains parameters for changing the selected year
type SelectYearInput struct {
	Year int
}

// SelectYearOutput contains the updated session
type SelectYearOutput struct {
	Session *models.Session
}

// SetPasswordInput contains parameters for changing a role's password
type SetPasswordInput struct {
	Role     models.Role
	Password string
}
