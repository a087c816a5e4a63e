package service

import (
	"context"
	"fmt"

	"continuous-improvement-backend/internal/repository"
)

// CatalogService serves the reference tables used to fill the idea form
type CatalogService struct {
	statusRepo   repository.StatusRepositoryInterface
	championRepo repository.ChampionRepositoryInterface
	categoryRepo repository.CategoryRepositoryInterface
}

// Ensure CatalogService implements CatalogServiceInterface
var _ CatalogServiceInterface = (*CatalogService)(nil)

// NewCatalogService creates a new CatalogService
func NewCatalogService(
	statusRepo repository.StatusRepositoryInterface,
	championRepo repository.ChampionRepositoryInterface,
	categoryRepo repository.CategoryRepositoryInterface,
) *CatalogService {
	return &CatalogService{
		statusRepo:   statusRepo,
		championRepo: championRepo,
		categoryRepo: categoryRepo,
	}
}

// StatusResponse represents a status row
type StatusResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ChampionResponse exposes a champion without its email address
type ChampionResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CategoryResponse represents a category row
type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ListStatuses returns all statuses ordered by id
func (s *CatalogService) ListStatuses(ctx context.Context) ([]StatusResponse, error) {
	statuses, err := s.statusRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}

	out := make([]StatusResponse, len(statuses))
	for i, st := range statuses {
		out[i] = StatusResponse{ID: st.ID, Name: st.Name}
	}
	return out, nil
}

// ListChampions returns the id and name of every champion
func (s *CatalogService) ListChampions(ctx context.Context) ([]ChampionResponse, error) {
	champions, err := s.championRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list champions: %w", err)
	}

	out := make([]ChampionResponse, len(champions))
	for i, c := range champions {
		out[i] = ChampionResponse{ID: c.ID, Name: c.Name}
	}
	return out, nil
}

// ListCategories returns all categories ordered by name
func (s *CatalogService) ListCategories(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	out := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = CategoryResponse{ID: c.ID, Name: c.Name}
	}
	return out, nil
}
