package auth

import "github.com/hopkinton-cheetahs/rosterd/internal/models"

// GetOverridesInput contains parameters for retrieving password overrides
type GetOverridesInput struct{}

// GetOverridesOutput contains the stored overrides keyed by role.
// The map is empty, never nil, when nothing has been overridden.
type GetOverridesOutput struct {
	Hashes map[models.Role]string
}

// SetOverrideInput contains parameters for storing one role's password hash
type SetOverrideInput struct {
	Role models.Role
	Hash string
}
