package models

import (
	"github.com/google/uuid"
)

// MaxMaturityLevel is the highest level a rule may classify
const MaxMaturityLevel = 4

// MaturityModel is a named rubric of measurements used to score services
type MaturityModel struct {
	BaseModel
	Name        string    `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	OwnerID     uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`
	Description string    `json:"description" gorm:"size:1000" validate:"max=1000"`

	// Relationships
	Owner        *User               `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Measurements []Measurement       `json:"measurements,omitempty" gorm:"foreignKey:MaturityModelID"`
	LevelRules   []MaturityLevelRule `json:"level_rules,omitempty" gorm:"foreignKey:MaturityModelID"`
}

// TableName returns the table name for MaturityModel
func (MaturityModel) TableName() string {
	return "maturity_models"
}

// Measurement is a single checkable criterion within a maturity model
type Measurement struct {
	BaseModel
	Name            string       `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	MaturityModelID uuid.UUID    `json:"maturity_model_id" gorm:"type:uuid;not null;index" validate:"required"`
	CategoryID      uuid.UUID    `json:"category_id" gorm:"type:uuid;not null;index" validate:"required"`
	Description     string       `json:"description" gorm:"size:1000" validate:"max=1000"`
	EvidenceType    EvidenceType `json:"evidence_type" gorm:"type:varchar(20);not null" validate:"required"`
	SampleEvidence  string       `json:"sample_evidence" gorm:"size:1000" validate:"max=1000"`

	// Relationships
	Category *MeasurementCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

// TableName returns the table name for Measurement
func (Measurement) TableName() string {
	return "measurements"
}

// MaturityLevelRule maps a percentage range to a maturity level for one model
type MaturityLevelRule struct {
	BaseModel
	MaturityModelID uuid.UUID `json:"maturity_model_id" gorm:"type:uuid;not null;uniqueIndex:idx_rule_model_level"`
	Level           int       `json:"level" gorm:"not null;uniqueIndex:idx_rule_model_level" validate:"min=0,max=4"`
	MinPercentage   float64   `json:"min_percentage" gorm:"not null" validate:"min=0,max=100"`
	MaxPercentage   float64   `json:"max_percentage" gorm:"not null" validate:"min=0,max=100"`
}

// TableName returns the table name for MaturityLevelRule
func (MaturityLevelRule) TableName() string {
	return "maturity_level_rules"
}

// Contains reports whether pct falls inside the rule's inclusive range
func (r MaturityLevelRule) Contains(pct float64) bool {
	return pct >= r.MinPercentage && pct <= r.MaxPercentage
}

// DefaultLevelRules returns the five rules every new model starts with
func DefaultLevelRules(modelID uuid.UUID) []MaturityLevelRule {
	ranges := [][2]float64{
		{0, 24.99},
		{25, 49.99},
		{50, 74.99},
		{75, 99.99},
		{100, 100},
	}
	rules := make([]MaturityLevelRule, len(ranges))
	for level, r := range ranges {
		rules[level] = MaturityLevelRule{
			MaturityModelID: modelID,
			Level:           level,
			MinPercentage:   r[0],
			MaxPercentage:   r[1],
		}
	}
	return rules
}

// ClassifyLevel returns the level of the first rule containing pct.
// A nil percentage or a percentage no rule covers yields nil.
func ClassifyLevel(rules []MaturityLevelRule, pct *float64) *int {
	if pct == nil {
		return nil
	}
	for _, r := range rules {
		if r.Contains(*pct) {
			level := r.Level
			return &level
		}
	}
	return nil
}
