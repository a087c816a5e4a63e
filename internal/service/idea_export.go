package service

import (
	"context"
	"fmt"

	"continuous-improvement-backend/internal/export"
	"continuous-improvement-backend/internal/logger"
)

// ExportFile is a generated download
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ExportIdeas renders every idea into an xlsx workbook, one row per idea
func (s *IdeaService) ExportIdeas(ctx context.Context) (*ExportFile, error) {
	ideas, err := s.ideaRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}

	rows := make([]export.IdeaRow, len(ideas))
	for i := range ideas {
		idea := &ideas[i]
		rows[i] = export.IdeaRow{
			ID:               idea.ID,
			FullName:         idea.FullName,
			WorkArea:         idea.WorkArea,
			CurrentSituation: idea.CurrentSituation,
			IdeaDescription:  idea.IdeaDescription,
			Status:           idea.StatusName(),
			RegistrationDate: idea.RegistrationDate,
			Champions:        idea.ChampionNames(),
			Categories:       idea.CategoryNames(),
		}
	}

	content, err := export.WriteIdeasWorkbook(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to export ideas: %w", err)
	}

	logger.WithContext(ctx).WithField("rows", len(rows)).Info("Ideas exported")

	return &ExportFile{
		FileName:    export.FileName(s.now()),
		ContentType: export.ContentType,
		Content:     content,
	}, nil
}
