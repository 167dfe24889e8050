package auth

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/hopkinton-cheetahs/rosterd/internal/services/auth Service

// Service defines the interface for sign-in, sign-out and the selected-year
// session state
type Service interface {
	// Login checks a role's password and establishes the session
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout clears the session
	Logout(ctx context.Context, input *LogoutInput) error

	// CurrentSession returns the session, nil when nobody is signed in
	CurrentSession(ctx context.Context, input *CurrentSessionInput) (*CurrentSessionOutput, error)

	// SelectYear changes the session's partition year
	SelectYear(ctx context.Context, input *SelectYearInput) (*SelectYearOutput, error)

	// SetPassword stores a new password for a role
	SetPassword(ctx context.Context, input *SetPasswordInput) error
}
