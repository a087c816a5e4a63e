package repository

import (
	"context"

	"continuous-improvement-backend/internal/database/models"

	"gorm.io/gorm"
)

// StatusRepository handles database operations for statuses
type StatusRepository struct {
	db *gorm.DB
}

// Ensure StatusRepository implements StatusRepositoryInterface
var _ StatusRepositoryInterface = (*StatusRepository)(nil)

// NewStatusRepository creates a new status repository
func NewStatusRepository(db *gorm.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

// GetAll retrieves all statuses ordered by id
func (r *StatusRepository) GetAll(ctx context.Context) ([]models.Status, error) {
	var statuses []models.Status
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

// GetByID retrieves a status by its id
func (r *StatusRepository) GetByID(ctx context.Context, id uint) (*models.Status, error) {
	var status models.Status
	if err := r.db.WithContext(ctx).First(&status, id).Error; err != nil {
		return nil, err
	}
	return &status, nil
}
