package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/hopkinton-cheetahs/rosterd/internal/models"
)

// memoryRepository implements the Repository interface in memory. It is used
// by tests and by wiring that runs without a Redis server. Documents are
// copied on the way in and out so callers never share state with the store,
// matching the marshal/unmarshal boundary of the Redis implementation.
type memoryRepository struct {
	mu   sync.Mutex
	data *models.TeamData
}

// NewMemory creates a new in-memory roster repository
func NewMemory() *memoryRepository {
	return &memoryRepository{}
}

// GetData returns a copy of the stored roster document, or an empty document
// when nothing has been saved yet
func (r *memoryRepository) GetData(ctx context.Context, input *GetDataInput) (*GetDataOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.data == nil {
		return &GetDataOutput{Data: models.NewTeamData()}, nil
	}

	data, err := copyData(r.data)
	if err != nil {
		return nil, err
	}

	return &GetDataOutput{Data: data}, nil
}

// SaveData stores a copy of the given roster document
func (r *memoryRepository) SaveData(ctx context.Context, input *SaveDataInput) error {
	if input == nil || input.Data == nil {
		return errors.New("input and data cannot be nil")
	}

	data, err := copyData(input.Data)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = data

	return nil
}

func copyData(data *models.TeamData) (*models.TeamData, error) {
	dataJSON, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal roster data: %w", err)
	}

	var out models.TeamData
	if err := json.Unmarshal(dataJSON, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roster data: %w", err)
	}

	return &out, nil
}
