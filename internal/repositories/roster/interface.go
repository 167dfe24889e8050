package roster

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/hopkinton-cheetahs/rosterd/internal/repositories/roster Repository

// Repository defines the interface for roster document persistence.
// The whole document is read and written as one unit; that single write is
// what keeps cascading deletes atomic.
type Repository interface {
	// GetData retrieves the roster document, returning an empty document
	// when none has been saved yet
	GetData(ctx context.Context, input *GetDataInput) (*GetDataOutput, error)

	// SaveData persists the whole roster document
	SaveData(ctx context.Context, input *SaveDataInput) error
}
