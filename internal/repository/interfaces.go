package repository

import (
	"context"

	"continuous-improvement-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// IdeaRepositoryInterface defines the interface for idea repository operations
type IdeaRepositoryInterface interface {
	CreateWithLinks(ctx context.Context, idea *models.Idea, categoryIDs, championIDs []uint) error
	GetByID(ctx context.Context, id uint) (*models.Idea, error)
	List(ctx context.Context) ([]models.Idea, error)
	Update(ctx context.Context, idea *models.Idea) error
	Delete(ctx context.Context, id uint) error
	AddChampion(ctx context.Context, ideaID, championID uint) (bool, error)
}

// StatusRepositoryInterface defines the interface for status repository operations
type StatusRepositoryInterface interface {
	GetAll(ctx context.Context) ([]models.Status, error)
	GetByID(ctx context.Context, id uint) (*models.Status, error)
}

// CategoryRepositoryInterface defines the interface for category repository operations
type CategoryRepositoryInterface interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	FindExistingIDs(ctx context.Context, ids []uint) ([]uint, error)
}

// ChampionRepositoryInterface defines the interface for champion repository operations
type ChampionRepositoryInterface interface {
	GetAll(ctx context.Context) ([]models.Champion, error)
	GetByID(ctx context.Context, id uint) (*models.Champion, error)
	FindExistingIDs(ctx context.Context, ids []uint) ([]uint, error)
}
