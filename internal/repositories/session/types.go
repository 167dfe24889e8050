package session

import "github.com/hopkinton-cheetahs/rosterd/internal/models"

// GetSessionInput contains parameters for retrieving the session
type GetSessionInput struct{}

// GetSessionOutput contains the retrieved session, nil when absent
type GetSessionOutput struct {
	Session *models.Session
}

// SaveSessionInput contains parameters for saving the session
type SaveSessionInput struct {
	Session *models.Session
}

// ClearSessionInput contains parameters for clearing the session
type ClearSessionInput struct{}
