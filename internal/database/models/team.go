package models

import (
	"github.com/google/uuid"
)

// Team owns zero or more services
type Team struct {
	BaseModel
	Name        string    `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	OwnerID     uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`
	Description string    `json:"description" gorm:"size:500" validate:"max=500"`

	// Relationships
	Owner *User `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// Service is an assessable unit of software owned by a team
type Service struct {
	BaseModel
	Name             string      `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	OwnerID          uuid.UUID   `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`
	TeamID           uuid.UUID   `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	Description      string      `json:"description" gorm:"size:500" validate:"max=500"`
	ServiceType      ServiceType `json:"service_type" gorm:"type:varchar(30);not null" validate:"required"`
	ResourceLocation string      `json:"resource_location" gorm:"size:500" validate:"max=500"`

	// Relationships
	Owner *User `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Team  *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Service
func (Service) TableName() string {
	return "services"
}
