package service

import (
	"context"
	"errors"
	"fmt"

	"continuous-improvement-backend/internal/database/models"
	apperrors "continuous-improvement-backend/internal/errors"
	"continuous-improvement-backend/internal/logger"
	"continuous-improvement-backend/internal/mail"

	"gorm.io/gorm"
)

// Assignment outcomes reported per pair
const (
	AssignmentAssigned         = "assigned"
	AssignmentAlreadyAssigned  = "already_assigned"
	AssignmentIdeaNotFound     = "idea_not_found"
	AssignmentChampionNotFound = "champion_not_found"
)

// ChampionAssignment links one champion to one idea
type ChampionAssignment struct {
	IdeaID     uint `json:"idea_id" validate:"required"`
	ChampionID uint `json:"champion_id" validate:"required"`
}

// AssignmentResult reports what happened to one requested pair
type AssignmentResult struct {
	IdeaID            uint   `json:"idea_id"`
	ChampionID        uint   `json:"champion_id"`
	Status            string `json:"status"`
	Notified          bool   `json:"notified"`
	NotificationError string `json:"notification_error,omitempty"`
}

// AssignChampionsResponse is returned by AssignChampions
type AssignChampionsResponse struct {
	Message string             `json:"message"`
	Results []AssignmentResult `json:"results"`
}

// AssignChampions links each champion to its idea and notifies the champion by email.
// Already linked pairs are not duplicated but are notified again. Missing ideas or
// champions are reported per pair, and a failed email does not stop the batch.
func (s *IdeaService) AssignChampions(ctx context.Context, assignments []ChampionAssignment) (*AssignChampionsResponse, error) {
	if len(assignments) == 0 {
		return nil, apperrors.ErrNoAssignments
	}
	for i := range assignments {
		if err := s.validator.Struct(&assignments[i]); err != nil {
			return nil, validationError(err)
		}
	}

	ideas := make(map[uint]*models.Idea)
	champions := make(map[uint]*models.Champion)
	results := make([]AssignmentResult, 0, len(assignments))

	for _, a := range assignments {
		result := AssignmentResult{IdeaID: a.IdeaID, ChampionID: a.ChampionID}

		idea, err := s.lookupIdea(ctx, ideas, a.IdeaID)
		if err != nil {
			return nil, err
		}
		if idea == nil {
			result.Status = AssignmentIdeaNotFound
			results = append(results, result)
			continue
		}

		champion, err := s.lookupChampion(ctx, champions, a.ChampionID)
		if err != nil {
			return nil, err
		}
		if champion == nil {
			result.Status = AssignmentChampionNotFound
			results = append(results, result)
			continue
		}

		created, err := s.ideaRepo.AddChampion(ctx, idea.ID, champion.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to assign champion %d to idea %d: %w", champion.ID, idea.ID, err)
		}
		result.Status = AssignmentAlreadyAssigned
		if created {
			result.Status = AssignmentAssigned
		}

		if err := s.notifyChampion(ctx, champion, idea); err != nil {
			logger.WithContext(ctx).WithError(err).WithFields(map[string]interface{}{
				"idea_id":     idea.ID,
				"champion_id": champion.ID,
			}).Error("Failed to notify champion")
			result.NotificationError = apperrors.ErrMailNotSent.Error()
		} else {
			result.Notified = true
		}

		results = append(results, result)
	}

	return &AssignChampionsResponse{
		Message: "Champions assigned successfully",
		Results: results,
	}, nil
}

func (s *IdeaService) lookupIdea(ctx context.Context, cache map[uint]*models.Idea, id uint) (*models.Idea, error) {
	if idea, ok := cache[id]; ok {
		return idea, nil
	}

	idea, err := s.ideaRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to get idea %d: %w", id, err)
		}
		idea = nil
	}
	cache[id] = idea
	return idea, nil
}

func (s *IdeaService) lookupChampion(ctx context.Context, cache map[uint]*models.Champion, id uint) (*models.Champion, error) {
	if champion, ok := cache[id]; ok {
		return champion, nil
	}

	champion, err := s.championRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to get champion %d: %w", id, err)
		}
		champion = nil
	}
	cache[id] = champion
	return champion, nil
}

func (s *IdeaService) notifyChampion(ctx context.Context, champion *models.Champion, idea *models.Idea) error {
	body, err := mail.RenderChampionAssigned(mail.ChampionAssignedData{
		ChampionName:     champion.Name,
		FullName:         idea.FullName,
		CurrentSituation: idea.CurrentSituation,
		IdeaDescription:  idea.IdeaDescription,
	})
	if err != nil {
		return err
	}
	return s.sender.Send(ctx, champion.Email, mail.ChampionAssignedSubject, body)
}
