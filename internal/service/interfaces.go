package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// IdeaServiceInterface defines the interface for the idea workflow service
type IdeaServiceInterface interface {
	RegisterIdea(ctx context.Context, req *RegisterIdeaRequest) (*RegisterIdeaResponse, error)
	GetIdea(ctx context.Context, id uint) (*IdeaResponse, error)
	ListIdeas(ctx context.Context) ([]IdeaSummaryResponse, error)
	UpdateIdea(ctx context.Context, id uint, req *UpdateIdeaRequest) (*IdeaResponse, error)
	DeleteIdea(ctx context.Context, id uint) error
	AssignChampions(ctx context.Context, assignments []ChampionAssignment) (*AssignChampionsResponse, error)
	ExportIdeas(ctx context.Context) (*ExportFile, error)
}

// CatalogServiceInterface defines the interface for the reference data service
type CatalogServiceInterface interface {
	ListStatuses(ctx context.Context) ([]StatusResponse, error)
	ListChampions(ctx context.Context) ([]ChampionResponse, error)
	ListCategories(ctx context.Context) ([]CategoryResponse, error)
}

// NotificationSenderInterface delivers a single HTML email
type NotificationSenderInterface interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
