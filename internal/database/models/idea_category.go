package models

import (
	"time"
)

// IdeaCategory represents the many-to-many relationship between ideas and categories
type IdeaCategory struct {
	IdeaID     uint      `json:"idea_id" gorm:"primaryKey;autoIncrement:false"`
	CategoryID uint      `json:"category_id" gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Idea     Idea     `json:"-" gorm:"foreignKey:IdeaID;constraint:OnDelete:CASCADE"`
	Category Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for IdeaCategory
func (IdeaCategory) TableName() string {
	return "idea_categories"
}
