package repository

import (
	"time"

	"maturity-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

// CampaignListRow is a campaign joined with its creator, model and participant count
type CampaignListRow struct {
	ID                uuid.UUID
	Name              string
	MaturityModelID   uuid.UUID
	MaturityModelName string
	StartDate         *time.Time
	EndDate           *time.Time
	Status            models.CampaignStatus
	CreatedBy         uuid.UUID
	CreatorUsername   string
	ParticipantCount  int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ParticipantRow is an enrolled service joined with its team
type ParticipantRow struct {
	ID          uuid.UUID
	CampaignID  uuid.UUID
	ServiceID   uuid.UUID
	ServiceName string
	ServiceType models.ServiceType
	TeamID      uuid.UUID
	TeamName    string
	CreatedAt   time.Time
}

// StatusCountRow counts the evaluations of a campaign in one status
type StatusCountRow struct {
	Status models.EvaluationStatus
	Count  int64
}

// HistoryRow is an audit entry joined with the acting user's name
type HistoryRow struct {
	ID                uuid.UUID
	EvaluationID      uuid.UUID
	PreviousStatus    models.EvaluationStatus
	NewStatus         models.EvaluationStatus
	Sequence          int64
	ChangedBy         uuid.UUID
	ChangedByUsername string
	Notes             *string
	CreatedAt         time.Time
}

// SummaryRow is one implementation roll-up group (service, team or category).
// ServiceCount is only populated for team roll-ups.
type SummaryRow struct {
	ID               uuid.UUID
	Name             string
	ImplementedCount int64
	TotalCount       int64
	ServiceCount     int64
}

// TeamUpdate is a partial team update; nil fields are left unchanged
type TeamUpdate struct {
	Name        *string
	Description *string
	OwnerID     *uuid.UUID
}

// IsEmpty reports whether the update changes nothing
func (u TeamUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.OwnerID == nil
}

func (u TeamUpdate) columns() map[string]interface{} {
	cols := map[string]interface{}{"updated_at": time.Now()}
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Description != nil {
		cols["description"] = *u.Description
	}
	if u.OwnerID != nil {
		cols["owner_id"] = *u.OwnerID
	}
	return cols
}

// ServiceUpdate is a partial service update; nil fields are left unchanged
type ServiceUpdate struct {
	Name             *string
	Description      *string
	ServiceType      *models.ServiceType
	ResourceLocation *string
	TeamID           *uuid.UUID
	OwnerID          *uuid.UUID
}

// IsEmpty reports whether the update changes nothing
func (u ServiceUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.ServiceType == nil &&
		u.ResourceLocation == nil && u.TeamID == nil && u.OwnerID == nil
}

func (u ServiceUpdate) columns() map[string]interface{} {
	cols := map[string]interface{}{"updated_at": time.Now()}
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Description != nil {
		cols["description"] = *u.Description
	}
	if u.ServiceType != nil {
		cols["service_type"] = *u.ServiceType
	}
	if u.ResourceLocation != nil {
		cols["resource_location"] = *u.ResourceLocation
	}
	if u.TeamID != nil {
		cols["team_id"] = *u.TeamID
	}
	if u.OwnerID != nil {
		cols["owner_id"] = *u.OwnerID
	}
	return cols
}

// MaturityModelUpdate is a partial maturity model update; nil fields are left unchanged
type MaturityModelUpdate struct {
	Name        *string
	Description *string
	OwnerID     *uuid.UUID
}

// IsEmpty reports whether the update changes nothing
func (u MaturityModelUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.OwnerID == nil
}

func (u MaturityModelUpdate) columns() map[string]interface{} {
	cols := map[string]interface{}{"updated_at": time.Now()}
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Description != nil {
		cols["description"] = *u.Description
	}
	if u.OwnerID != nil {
		cols["owner_id"] = *u.OwnerID
	}
	return cols
}

// CampaignUpdate is a partial campaign update; nil fields are left unchanged
type CampaignUpdate struct {
	Name      *string
	StartDate *time.Time
	EndDate   *time.Time
	Status    *models.CampaignStatus
}

// IsEmpty reports whether the update changes nothing
func (u CampaignUpdate) IsEmpty() bool {
	return u.Name == nil && u.StartDate == nil && u.EndDate == nil && u.Status == nil
}

func (u CampaignUpdate) columns() map[string]interface{} {
	cols := map[string]interface{}{"updated_at": time.Now()}
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.StartDate != nil {
		cols["start_date"] = *u.StartDate
	}
	if u.EndDate != nil {
		cols["end_date"] = *u.EndDate
	}
	if u.Status != nil {
		cols["status"] = *u.Status
	}
	return cols
}

// EvaluationUpdate is a partial evaluation update. Status is always written.
// A nil pointer leaves the column unchanged; a pointer to "" clears it.
type EvaluationUpdate struct {
	Status           models.EvaluationStatus
	EvidenceLocation *string
	Notes            *string
	EvaluatedBy      *uuid.UUID
	EvaluatedAt      *time.Time
}

func (u EvaluationUpdate) columns() map[string]interface{} {
	cols := map[string]interface{}{
		"status":     u.Status,
		"updated_at": time.Now(),
	}
	if u.EvidenceLocation != nil {
		cols["evidence_location"] = nullableString(*u.EvidenceLocation)
	}
	if u.Notes != nil {
		cols["notes"] = nullableString(*u.Notes)
	}
	if u.EvaluatedBy != nil {
		cols["evaluated_by"] = *u.EvaluatedBy
	}
	if u.EvaluatedAt != nil {
		cols["evaluated_at"] = *u.EvaluatedAt
	}
	return cols
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
