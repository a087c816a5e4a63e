package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"continuous-improvement-backend/internal/database/models"
	apperrors "continuous-improvement-backend/internal/errors"
	"continuous-improvement-backend/internal/logger"
	"continuous-improvement-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// IdeaService implements the idea workflow: registration, listing, update,
// deletion, champion assignment and export
type IdeaService struct {
	ideaRepo     repository.IdeaRepositoryInterface
	statusRepo   repository.StatusRepositoryInterface
	categoryRepo repository.CategoryRepositoryInterface
	championRepo repository.ChampionRepositoryInterface
	sender       NotificationSenderInterface
	validator    *validator.Validate
	now          func() time.Time
}

// Ensure IdeaService implements IdeaServiceInterface
var _ IdeaServiceInterface = (*IdeaService)(nil)

// NewIdeaService creates a new IdeaService
func NewIdeaService(
	ideaRepo repository.IdeaRepositoryInterface,
	statusRepo repository.StatusRepositoryInterface,
	categoryRepo repository.CategoryRepositoryInterface,
	championRepo repository.ChampionRepositoryInterface,
	sender NotificationSenderInterface,
	validator *validator.Validate,
) *IdeaService {
	return &IdeaService{
		ideaRepo:     ideaRepo,
		statusRepo:   statusRepo,
		categoryRepo: categoryRepo,
		championRepo: championRepo,
		sender:       sender,
		validator:    validator,
		now:          time.Now,
	}
}

// RegisterIdeaRequest represents the request to register an idea.
// FullName may be left blank when Names is given.
type RegisterIdeaRequest struct {
	FullName         string     `json:"full_name" validate:"max=500"`
	Names            []string   `json:"names"`
	WorkArea         string     `json:"work_area" validate:"notblank,max=200"`
	CurrentSituation string     `json:"current_situation" validate:"notblank"`
	IdeaDescription  string     `json:"idea_description" validate:"notblank"`
	StatusID         uint       `json:"status_id" validate:"required"`
	RegistrationDate *time.Time `json:"registration_date,omitempty"`
	CategoryIDs      []uint     `json:"category_ids"`
	ChampionIDs      []uint     `json:"champion_ids"`
}

// UpdateIdeaRequest replaces the text fields and status of an idea
type UpdateIdeaRequest struct {
	FullName         string `json:"full_name" validate:"notblank,max=500"`
	WorkArea         string `json:"work_area" validate:"notblank,max=200"`
	CurrentSituation string `json:"current_situation" validate:"notblank"`
	IdeaDescription  string `json:"idea_description" validate:"notblank"`
	StatusID         uint   `json:"status_id" validate:"required"`
}

// RegisterIdeaResponse is returned after a successful registration
type RegisterIdeaResponse struct {
	Message            string `json:"message"`
	IdeaID             uint   `json:"idea_id"`
	SelectedCategories int    `json:"selected_categories"`
	SelectedChampions  int    `json:"selected_champions"`
}

// IdeaResponse represents a single idea in API responses
type IdeaResponse struct {
	ID               uint      `json:"id"`
	FullName         string    `json:"full_name"`
	WorkArea         string    `json:"work_area"`
	CurrentSituation string    `json:"current_situation"`
	IdeaDescription  string    `json:"idea_description"`
	RegistrationDate time.Time `json:"registration_date"`
	StatusID         *uint     `json:"status_id"`
	StatusName       string    `json:"status_name"`
	CategoryIDs      []uint    `json:"category_ids"`
	ChampionIDs      []uint    `json:"champion_ids"`
	Categories       []string  `json:"categories"`
	ChampionNames    []string  `json:"champion_names"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// IdeaSummaryResponse is the listing projection of an idea
type IdeaSummaryResponse struct {
	ID               uint      `json:"id"`
	FullName         string    `json:"full_name"`
	WorkArea         string    `json:"work_area"`
	CurrentSituation string    `json:"current_situation"`
	IdeaDescription  string    `json:"idea_description"`
	RegistrationDate time.Time `json:"registration_date"`
	StatusName       string    `json:"status_name"`
	ChampionNames    []string  `json:"champion_names"`
	Categories       []string  `json:"categories"`
}

// RegisterIdea validates the request, checks every referenced status, category and
// champion, and persists the idea together with its links in one transaction
func (s *IdeaService) RegisterIdea(ctx context.Context, req *RegisterIdeaRequest) (*RegisterIdeaResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	fullName := resolveFullName(req.FullName, req.Names)
	if fullName == "" {
		return nil, apperrors.NewValidationError("full_name", "full name or names is required")
	}

	if err := s.checkStatus(ctx, req.StatusID); err != nil {
		return nil, err
	}

	categoryIDs := uniqueIDs(req.CategoryIDs)
	if err := s.checkExisting(ctx, "category", categoryIDs, s.categoryRepo.FindExistingIDs); err != nil {
		return nil, err
	}

	championIDs := uniqueIDs(req.ChampionIDs)
	if err := s.checkExisting(ctx, "champion", championIDs, s.championRepo.FindExistingIDs); err != nil {
		return nil, err
	}

	registrationDate := s.now()
	if req.RegistrationDate != nil && !req.RegistrationDate.IsZero() {
		registrationDate = *req.RegistrationDate
	}

	statusID := req.StatusID
	idea := &models.Idea{
		FullName:         fullName,
		WorkArea:         strings.TrimSpace(req.WorkArea),
		CurrentSituation: strings.TrimSpace(req.CurrentSituation),
		IdeaDescription:  strings.TrimSpace(req.IdeaDescription),
		RegistrationDate: registrationDate,
		StatusID:         &statusID,
	}

	if err := s.ideaRepo.CreateWithLinks(ctx, idea, categoryIDs, championIDs); err != nil {
		return nil, fmt.Errorf("failed to register idea: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"idea_id":    idea.ID,
		"categories": len(categoryIDs),
		"champions":  len(championIDs),
	}).Info("Idea registered")

	return &RegisterIdeaResponse{
		Message:            "Idea registered successfully",
		IdeaID:             idea.ID,
		SelectedCategories: len(categoryIDs),
		SelectedChampions:  len(championIDs),
	}, nil
}

// GetIdea retrieves a single idea by id
func (s *IdeaService) GetIdea(ctx context.Context, id uint) (*IdeaResponse, error) {
	idea, err := s.ideaRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIdeaNotFound
		}
		return nil, fmt.Errorf("failed to get idea: %w", err)
	}

	return toIdeaResponse(idea), nil
}

// ListIdeas returns every idea, most recent first. The result is never nil.
func (s *IdeaService) ListIdeas(ctx context.Context) ([]IdeaSummaryResponse, error) {
	ideas, err := s.ideaRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}

	responses := make([]IdeaSummaryResponse, len(ideas))
	for i := range ideas {
		responses[i] = toIdeaSummary(&ideas[i])
	}
	return responses, nil
}

// UpdateIdea replaces the text fields and status of an idea. Links are left untouched.
func (s *IdeaService) UpdateIdea(ctx context.Context, id uint, req *UpdateIdeaRequest) (*IdeaResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	idea, err := s.ideaRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIdeaNotFound
		}
		return nil, fmt.Errorf("failed to get idea: %w", err)
	}

	if err := s.checkStatus(ctx, req.StatusID); err != nil {
		return nil, err
	}

	statusID := req.StatusID
	idea.FullName = strings.TrimSpace(req.FullName)
	idea.WorkArea = strings.TrimSpace(req.WorkArea)
	idea.CurrentSituation = strings.TrimSpace(req.CurrentSituation)
	idea.IdeaDescription = strings.TrimSpace(req.IdeaDescription)
	idea.StatusID = &statusID
	// drop the preloaded status so the response does not report the old name
	idea.Status = nil

	if err := s.ideaRepo.Update(ctx, idea); err != nil {
		return nil, fmt.Errorf("failed to update idea: %w", err)
	}

	updated, err := s.ideaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload idea: %w", err)
	}

	logger.WithContext(ctx).WithField("idea_id", id).Info("Idea updated")
	return toIdeaResponse(updated), nil
}

// DeleteIdea removes an idea; its category and champion links cascade
func (s *IdeaService) DeleteIdea(ctx context.Context, id uint) error {
	if err := s.ideaRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrIdeaNotFound
		}
		return fmt.Errorf("failed to delete idea: %w", err)
	}

	logger.WithContext(ctx).WithField("idea_id", id).Info("Idea deleted")
	return nil
}

func (s *IdeaService) checkStatus(ctx context.Context, id uint) error {
	if _, err := s.statusRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewInvalidReferenceError("status", id)
		}
		return fmt.Errorf("failed to check status: %w", err)
	}
	return nil
}

func (s *IdeaService) checkExisting(ctx context.Context, entity string, ids []uint, find func(context.Context, []uint) ([]uint, error)) error {
	if len(ids) == 0 {
		return nil
	}

	existing, err := find(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to check %s ids: %w", entity, err)
	}

	if missing := missingIDs(ids, existing); len(missing) > 0 {
		return apperrors.NewInvalidReferenceError(entity, missing...)
	}
	return nil
}

// resolveFullName keeps an explicit full name, otherwise joins the non-blank names with ", "
func resolveFullName(fullName string, names []string) string {
	if trimmed := strings.TrimSpace(fullName); trimmed != "" {
		return trimmed
	}

	parts := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, ", ")
}

// uniqueIDs drops duplicates while keeping first-seen order
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func missingIDs(want, have []uint) []uint {
	found := make(map[uint]struct{}, len(have))
	for _, id := range have {
		found[id] = struct{}{}
	}

	var missing []uint
	for _, id := range want {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func toIdeaResponse(idea *models.Idea) *IdeaResponse {
	return &IdeaResponse{
		ID:               idea.ID,
		FullName:         idea.FullName,
		WorkArea:         idea.WorkArea,
		CurrentSituation: idea.CurrentSituation,
		IdeaDescription:  idea.IdeaDescription,
		RegistrationDate: idea.RegistrationDate,
		StatusID:         idea.StatusID,
		StatusName:       idea.StatusName(),
		CategoryIDs:      idea.CategoryIDs(),
		ChampionIDs:      idea.ChampionIDs(),
		Categories:       idea.CategoryNames(),
		ChampionNames:    idea.ChampionNames(),
		CreatedAt:        idea.CreatedAt,
		UpdatedAt:        idea.UpdatedAt,
	}
}

func toIdeaSummary(idea *models.Idea) IdeaSummaryResponse {
	return IdeaSummaryResponse{
		ID:               idea.ID,
		FullName:         idea.FullName,
		WorkArea:         idea.WorkArea,
		CurrentSituation: idea.CurrentSituation,
		IdeaDescription:  idea.IdeaDescription,
		RegistrationDate: idea.RegistrationDate,
		StatusName:       idea.StatusName(),
		ChampionNames:    idea.ChampionNames(),
		Categories:       idea.CategoryNames(),
	}
}
