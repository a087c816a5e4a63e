package models

// NoStatusName is displayed for ideas whose status reference is empty
const NoStatusName = "No status"

// Status is the workflow state of an idea. The table is free-form reference data.
type Status struct {
	BaseModel
	Name string `json:"name" gorm:"size:100;not null;uniqueIndex"`
}

// TableName returns the table name for Status
func (Status) TableName() string {
	return "statuses"
}
