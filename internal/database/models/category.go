package models

// Category classifies the subject area of an idea
type Category struct {
	BaseModel
	Name string `json:"name" gorm:"size:100;not null;uniqueIndex"`
}

// TableName returns the table name for Category
func (Category) TableName() string {
	return "categories"
}
