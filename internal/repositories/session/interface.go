package session

import (
	"context"
)

// Repository defines the interface for session document persistence
type Repository interface {
	// GetSession retrieves the current session, or nil when nobody is
	// signed in
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// SaveSession persists the current session
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// ClearSession removes the current session
	ClearSession(ctx context.Context, input *ClearSessionInput) error
}
