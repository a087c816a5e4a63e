package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"continuous-improvement-backend/internal/database/models"
)

var factorySeq atomic.Uint64

func nextSeq() uint64 {
	return factorySeq.Add(1)
}

// StatusFactory provides methods to create test Status data
type StatusFactory struct{}

// NewStatusFactory creates a new StatusFactory
func NewStatusFactory() *StatusFactory {
	return &StatusFactory{}
}

// Create creates a test Status with a unique name
func (f *StatusFactory) Create() *models.Status {
	return &models.Status{Name: fmt.Sprintf("Status %d", nextSeq())}
}

// WithName creates a test Status with the given name
func (f *StatusFactory) WithName(name string) *models.Status {
	s := f.Create()
	s.Name = name
	return s
}

// CategoryFactory provides methods to create test Category data
type CategoryFactory struct{}

// NewCategoryFactory creates a new CategoryFactory
func NewCategoryFactory() *CategoryFactory {
	return &CategoryFactory{}
}

// Create creates a test Category with a unique name
func (f *CategoryFactory) Create() *models.Category {
	return &models.Category{Name: fmt.Sprintf("Category %d", nextSeq())}
}

// WithName creates a test Category with the given name
func (f *CategoryFactory) WithName(name string) *models.Category {
	c := f.Create()
	c.Name = name
	return c
}

// ChampionFactory provides methods to create test Champion data
type ChampionFactory struct{}

// NewChampionFactory creates a new ChampionFactory
func NewChampionFactory() *ChampionFactory {
	return &ChampionFactory{}
}

// Create creates a test Champion with a unique email
func (f *ChampionFactory) Create() *models.Champion {
	n := nextSeq()
	return &models.Champion{
		Name:  fmt.Sprintf("Champion %d", n),
		Email: fmt.Sprintf("champion%d@example.com", n),
	}
}

// WithName creates a test Champion with the given name
func (f *ChampionFactory) WithName(name string) *models.Champion {
	c := f.Create()
	c.Name = name
	return c
}

// IdeaFactory provides methods to create test Idea data
type IdeaFactory struct{}

// NewIdeaFactory creates a new IdeaFactory
func NewIdeaFactory() *IdeaFactory {
	return &IdeaFactory{}
}

// Create creates a test Idea referencing the given status
func (f *IdeaFactory) Create(statusID uint) *models.Idea {
	return &models.Idea{
		FullName:         "Ana Ruiz",
		WorkArea:         "Warehouse",
		CurrentSituation: "Inventory is counted by hand every Friday",
		IdeaDescription:  "Use handheld scanners to count inventory",
		RegistrationDate: time.Date(2026, time.March, 4, 9, 30, 0, 0, time.UTC),
		StatusID:         &statusID,
	}
}

// WithFullName creates a test Idea with a custom submitter name
func (f *IdeaFactory) WithFullName(statusID uint, fullName string) *models.Idea {
	idea := f.Create(statusID)
	idea.FullName = fullName
	return idea
}
