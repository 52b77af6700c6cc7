package models

import (
	"time"

	"github.com/google/uuid"
)

// Campaign is a time-boxed assessment run of one maturity model
type Campaign struct {
	BaseModel
	Name            string         `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	MaturityModelID uuid.UUID      `json:"maturity_model_id" gorm:"type:uuid;not null;index" validate:"required"`
	StartDate       *time.Time     `json:"start_date,omitempty"`
	EndDate         *time.Time     `json:"end_date,omitempty"`
	Status          CampaignStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	CreatedBy       uuid.UUID      `json:"created_by" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	MaturityModel *MaturityModel `json:"maturity_model,omitempty" gorm:"foreignKey:MaturityModelID"`
	Creator       *User          `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
}

// TableName returns the table name for Campaign
func (Campaign) TableName() string {
	return "campaigns"
}

// CampaignParticipant marks a service as enrolled in a campaign
type CampaignParticipant struct {
	BaseModel
	CampaignID uuid.UUID `json:"campaign_id" gorm:"type:uuid;not null;uniqueIndex:idx_participant_campaign_service"`
	ServiceID  uuid.UUID `json:"service_id" gorm:"type:uuid;not null;uniqueIndex:idx_participant_campaign_service;index"`

	// Relationships
	Campaign *Campaign `json:"campaign,omitempty" gorm:"foreignKey:CampaignID"`
	Service  *Service  `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
}

// TableName returns the table name for CampaignParticipant
func (CampaignParticipant) TableName() string {
	return "campaign_participants"
}
