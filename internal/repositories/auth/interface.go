package auth

import (
	"context"
)

// Repository defines the interface for the password-override document.
// Overrides map a role to a bcrypt hash; roles without an override fall
// back to the built-in default credentials.
type Repository interface {
	// GetOverrides retrieves all stored password overrides
	GetOverrides(ctx context.Context, input *GetOverridesInput) (*GetOverridesOutput, error)

	// SetOverride stores the password hash for one role
	SetOverride(ctx context.Context, input *SetOverrideInput) error
}
