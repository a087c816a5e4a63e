package repository

import (
	"context"

	"continuous-improvement-backend/internal/database/models"

	"gorm.io/gorm"
)

// ChampionRepository handles database operations for champions
type ChampionRepository struct {
	db *gorm.DB
}

// Ensure ChampionRepository implements ChampionRepositoryInterface
var _ ChampionRepositoryInterface = (*ChampionRepository)(nil)

// NewChampionRepository creates a new champion repository
func NewChampionRepository(db *gorm.DB) *ChampionRepository {
	return &ChampionRepository{db: db}
}

// GetAll retrieves all champions ordered by name
func (r *ChampionRepository) GetAll(ctx context.Context) ([]models.Champion, error) {
	var champions []models.Champion
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&champions).Error; err != nil {
		return nil, err
	}
	return champions, nil
}

// GetByID retrieves a champion by its id
func (r *ChampionRepository) GetByID(ctx context.Context, id uint) (*models.Champion, error) {
	var champion models.Champion
	if err := r.db.WithContext(ctx).First(&champion, id).Error; err != nil {
		return nil, err
	}
	return &champion, nil
}

// FindExistingIDs returns the subset of ids that exist in the champions table
func (r *ChampionRepository) FindExistingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	return pluckExistingIDs(r.db.WithContext(ctx).Model(&models.Champion{}), ids)
}

// pluckExistingIDs selects the ids present in the model's table
func pluckExistingIDs(query *gorm.DB, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return []uint{}, nil
	}
	var existing []uint
	if err := query.Where("id IN ?", ids).Pluck("id", &existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}
