package models

// Champion is the person accountable for acting on an idea. Champions are
// notified by email when they are assigned.
type Champion struct {
	BaseModel
	Name  string `json:"name" gorm:"size:200;not null"`
	Email string `json:"email" gorm:"size:254;not null;uniqueIndex"`
}

// TableName returns the table name for Champion
func (Champion) TableName() string {
	return "champions"
}
