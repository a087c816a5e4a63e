package repository

import (
	"context"

	"continuous-improvement-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IdeaRepository handles database operations for ideas and their join rows
type IdeaRepository struct {
	db *gorm.DB
}

// Ensure IdeaRepository implements IdeaRepositoryInterface
var _ IdeaRepositoryInterface = (*IdeaRepository)(nil)

// NewIdeaRepository creates a new idea repository
func NewIdeaRepository(db *gorm.DB) *IdeaRepository {
	return &IdeaRepository{db: db}
}

// CreateWithLinks inserts the idea and one join row per category and champion id
// in a single transaction. On success idea.ID holds the generated id.
func (r *IdeaRepository) CreateWithLinks(ctx context.Context, idea *models.Idea, categoryIDs, championIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(idea).Error; err != nil {
			return err
		}

		if len(categoryIDs) > 0 {
			links := make([]models.IdeaCategory, len(categoryIDs))
			for i, id := range categoryIDs {
				links[i] = models.IdeaCategory{IdeaID: idea.ID, CategoryID: id}
			}
			if err := tx.Omit(clause.Associations).Create(&links).Error; err != nil {
				return err
			}
		}

		if len(championIDs) > 0 {
			links := make([]models.IdeaChampion, len(championIDs))
			for i, id := range championIDs {
				links[i] = models.IdeaChampion{IdeaID: idea.ID, ChampionID: id}
			}
			if err := tx.Omit(clause.Associations).Create(&links).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// GetByID retrieves an idea with its status and links
func (r *IdeaRepository) GetByID(ctx context.Context, id uint) (*models.Idea, error) {
	var idea models.Idea
	if err := r.withRelations(r.db.WithContext(ctx)).First(&idea, id).Error; err != nil {
		return nil, err
	}
	return &idea, nil
}

// List retrieves all ideas, most recent first, with status, category and champion names
func (r *IdeaRepository) List(ctx context.Context) ([]models.Idea, error) {
	var ideas []models.Idea
	if err := r.withRelations(r.db.WithContext(ctx)).Order("id DESC").Find(&ideas).Error; err != nil {
		return nil, err
	}
	return ideas, nil
}

// Update overwrites the text fields and status of an idea. Links are left untouched.
func (r *IdeaRepository) Update(ctx context.Context, idea *models.Idea) error {
	return r.db.WithContext(ctx).
		Model(idea).
		Select("full_name", "work_area", "current_situation", "idea_description", "status_id").
		Updates(idea).Error
}

// Delete removes an idea; join rows are removed by the cascading foreign keys.
// Returns gorm.ErrRecordNotFound when no row matched.
func (r *IdeaRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Idea{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AddChampion links a champion to an idea. It reports false when the link already existed.
func (r *IdeaRepository) AddChampion(ctx context.Context, ideaID, championID uint) (bool, error) {
	link := &models.IdeaChampion{IdeaID: ideaID, ChampionID: championID}
	res := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(link)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *IdeaRepository) withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Status").
		Preload("CategoryLinks", func(db *gorm.DB) *gorm.DB {
			return db.Order("category_id ASC")
		}).
		Preload("CategoryLinks.Category").
		Preload("ChampionLinks", func(db *gorm.DB) *gorm.DB {
			return db.Order("champion_id ASC")
		}).
		Preload("ChampionLinks.Champion")
}
