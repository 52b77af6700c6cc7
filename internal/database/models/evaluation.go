package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeasurementEvaluation is the status record for one (campaign, service, measurement) triple
type MeasurementEvaluation struct {
	BaseModel
	CampaignID       uuid.UUID        `json:"campaign_id" gorm:"type:uuid;not null;uniqueIndex:idx_evaluation_triple"`
	ServiceID        uuid.UUID        `json:"service_id" gorm:"type:uuid;not null;uniqueIndex:idx_evaluation_triple;index"`
	MeasurementID    uuid.UUID        `json:"measurement_id" gorm:"type:uuid;not null;uniqueIndex:idx_evaluation_triple;index"`
	Status           EvaluationStatus `json:"status" gorm:"type:varchar(30);not null;default:'Not Implemented'"`
	EvidenceLocation *string          `json:"evidence_location,omitempty" gorm:"size:1000"`
	Notes            *string          `json:"notes,omitempty" gorm:"size:2000"`
	EvaluatedBy      *uuid.UUID       `json:"evaluated_by,omitempty" gorm:"type:uuid"`
	EvaluatedAt      *time.Time       `json:"evaluated_at,omitempty"`

	// Relationships
	Campaign    *Campaign    `json:"campaign,omitempty" gorm:"foreignKey:CampaignID"`
	Service     *Service     `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Measurement *Measurement `json:"measurement,omitempty" gorm:"foreignKey:MeasurementID"`
	Evaluator   *User        `json:"evaluator,omitempty" gorm:"foreignKey:EvaluatedBy"`
}

// TableName returns the table name for MeasurementEvaluation
func (MeasurementEvaluation) TableName() string {
	return "measurement_evaluations"
}

// EvaluationHistory is an append-only audit row for one evaluation status change.
// EvaluationID carries no foreign key; rows outlive the evaluation they describe.
type EvaluationHistory struct {
	ID             uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	EvaluationID   uuid.UUID        `json:"evaluation_id" gorm:"type:uuid;not null;index"`
	CampaignID     uuid.UUID        `json:"campaign_id" gorm:"type:uuid;not null;index"`
	ServiceID      uuid.UUID        `json:"service_id" gorm:"type:uuid;not null"`
	MeasurementID  uuid.UUID        `json:"measurement_id" gorm:"type:uuid;not null"`
	PreviousStatus EvaluationStatus `json:"previous_status" gorm:"type:varchar(30);not null"`
	NewStatus      EvaluationStatus `json:"new_status" gorm:"type:varchar(30);not null"`
	Sequence       int64            `json:"sequence" gorm:"not null;default:0"`
	ChangedBy      uuid.UUID        `json:"changed_by" gorm:"type:uuid;not null"`
	Notes          *string          `json:"notes,omitempty" gorm:"size:2000"`
	CreatedAt      time.Time        `json:"created_at"`

	// Relationships
	Changer *User `json:"changer,omitempty" gorm:"foreignKey:ChangedBy"`
}

// TableName returns the table name for EvaluationHistory
func (EvaluationHistory) TableName() string {
	return "evaluation_history"
}

// BeforeCreate sets the UUID if not already set
func (h *EvaluationHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
