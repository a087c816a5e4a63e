package models

import (
	"time"
)

// Idea is a submitted continuous improvement proposal
type Idea struct {
	BaseModel
	FullName         string    `json:"full_name" gorm:"size:500;not null"`
	WorkArea         string    `json:"work_area" gorm:"size:200;not null"`
	CurrentSituation string    `json:"current_situation" gorm:"type:text;not null"`
	IdeaDescription  string    `json:"idea_description" gorm:"type:text;not null"`
	RegistrationDate time.Time `json:"registration_date" gorm:"not null;index"`
	StatusID         *uint     `json:"status_id" gorm:"index"`

	// Relationships
	Status        *Status        `json:"status,omitempty" gorm:"foreignKey:StatusID;constraint:OnDelete:SET NULL"`
	CategoryLinks []IdeaCategory `json:"-" gorm:"foreignKey:IdeaID;constraint:OnDelete:CASCADE"`
	ChampionLinks []IdeaChampion `json:"-" gorm:"foreignKey:IdeaID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Idea
func (Idea) TableName() string {
	return "ideas"
}

// StatusName returns the resolved status name or NoStatusName
func (i *Idea) StatusName() string {
	if i.Status == nil || i.Status.Name == "" {
		return NoStatusName
	}
	return i.Status.Name
}

// CategoryIDs returns the ids of the linked categories in link order
func (i *Idea) CategoryIDs() []uint {
	ids := make([]uint, 0, len(i.CategoryLinks))
	for _, l := range i.CategoryLinks {
		ids = append(ids, l.CategoryID)
	}
	return ids
}

// ChampionIDs returns the ids of the linked champions in link order
func (i *Idea) ChampionIDs() []uint {
	ids := make([]uint, 0, len(i.ChampionLinks))
	for _, l := range i.ChampionLinks {
		ids = append(ids, l.ChampionID)
	}
	return ids
}

// CategoryNames returns the names of the linked categories; missing rows yield ""
func (i *Idea) CategoryNames() []string {
	names := make([]string, 0, len(i.CategoryLinks))
	for _, l := range i.CategoryLinks {
		names = append(names, l.Category.Name)
	}
	return names
}

// ChampionNames returns the names of the linked champions; missing rows yield ""
func (i *Idea) ChampionNames() []string {
	names := make([]string, 0, len(i.ChampionLinks))
	for _, l := range i.ChampionLinks {
		names = append(names, l.Champion.Name)
	}
	return names
}
