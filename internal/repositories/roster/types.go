package roster

import "github.com/hopkinton-cheetahs/rosterd/internal/models"

// GetDataInput contains parameters for retrieving the roster document
type GetDataInput struct{}

// GetDataOutput contains the retrieved roster document
type GetDataOutput struct {
	Data *models.TeamData
}

// SaveDataInput contains parameters for saving the roster document
type SaveDataInput struct {
	Data *models.TeamData
}
