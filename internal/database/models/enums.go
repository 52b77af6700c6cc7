package models

// UserRole defines the role carried by an authenticated principal
type UserRole string

const (
	UserRoleAdmin      UserRole = "admin"
	UserRoleTeamOwner  UserRole = "team_owner"
	UserRoleTeamMember UserRole = "team_member"
)

// ServiceType defines the kinds of services that can be assessed
type ServiceType string

const (
	ServiceTypeAPI               ServiceType = "API Service"
	ServiceTypeUIApplication     ServiceType = "UI Application"
	ServiceTypeWorkflow          ServiceType = "Workflow"
	ServiceTypeApplicationModule ServiceType = "Application Module"
)

// EvidenceType defines the form of evidence a measurement requires
type EvidenceType string

const (
	EvidenceTypeURL      EvidenceType = "URL"
	EvidenceTypeDocument EvidenceType = "Document"
	EvidenceTypeImage    EvidenceType = "Image"
	EvidenceTypeText     EvidenceType = "Text"
)

// CampaignStatus defines the lifecycle states of a campaign
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusCancelled CampaignStatus = "cancelled"
)

// EvaluationStatus defines the states of a single measurement evaluation
type EvaluationStatus string

const (
	EvaluationStatusNotImplemented     EvaluationStatus = "Not Implemented"
	EvaluationStatusEvidenceSubmitted  EvaluationStatus = "Evidence Submitted"
	EvaluationStatusValidatingEvidence EvaluationStatus = "Validating Evidence"
	EvaluationStatusEvidenceRejected   EvaluationStatus = "Evidence Rejected"
	EvaluationStatusImplemented        EvaluationStatus = "Implemented"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleTeamOwner, UserRoleTeamMember:
		return true
	}
	return false
}

// IsValid checks if the ServiceType is valid
func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceTypeAPI, ServiceTypeUIApplication, ServiceTypeWorkflow, ServiceTypeApplicationModule:
		return true
	}
	return false
}

// IsValid checks if the EvidenceType is valid
func (e EvidenceType) IsValid() bool {
	switch e {
	case EvidenceTypeURL, EvidenceTypeDocument, EvidenceTypeImage, EvidenceTypeText:
		return true
	}
	return false
}

// IsValid checks if the CampaignStatus is valid
func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusActive, CampaignStatusCompleted, CampaignStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further status change or membership change is allowed
func (s CampaignStatus) IsTerminal() bool {
	return s == CampaignStatusCompleted || s == CampaignStatusCancelled
}

// IsValid checks if the EvaluationStatus is valid
func (s EvaluationStatus) IsValid() bool {
	switch s {
	case EvaluationStatusNotImplemented, EvaluationStatusEvidenceSubmitted, EvaluationStatusValidatingEvidence,
		EvaluationStatusEvidenceRejected, EvaluationStatusImplemented:
		return true
	}
	return false
}

// StampsEvaluator reports whether moving to this status records the evaluator and time
func (s EvaluationStatus) StampsEvaluator() bool {
	return s == EvaluationStatusImplemented || s == EvaluationStatusEvidenceRejected
}

// EvaluationStatuses lists every evaluation status in display order
func EvaluationStatuses() []EvaluationStatus {
	return []EvaluationStatus{
		EvaluationStatusNotImplemented,
		EvaluationStatusEvidenceSubmitted,
		EvaluationStatusValidatingEvidence,
		EvaluationStatusEvidenceRejected,
		EvaluationStatusImplemented,
	}
}
