package models

import (
	"time"
)

// IdeaChampion represents the assignment of a champion to an idea.
// The (idea_id, champion_id) pair is the primary key, so an assignment exists at most once.
type IdeaChampion struct {
	IdeaID     uint      `json:"idea_id" gorm:"primaryKey;autoIncrement:false"`
	ChampionID uint      `json:"champion_id" gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Idea     Idea     `json:"-" gorm:"foreignKey:IdeaID;constraint:OnDelete:CASCADE"`
	Champion Champion `json:"champion,omitempty" gorm:"foreignKey:ChampionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for IdeaChampion
func (IdeaChampion) TableName() string {
	return "idea_champions"
}
