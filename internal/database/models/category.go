package models

// MeasurementCategory groups measurements into a small fixed taxonomy
type MeasurementCategory struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"size:500" validate:"max=500"`
}

// TableName returns the table name for MeasurementCategory
func (MeasurementCategory) TableName() string {
	return "measurement_categories"
}
