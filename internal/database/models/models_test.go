package models

import (
	"testing"

	apperrors "maturity-tracker-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCampaignTransition(t *testing.T) {
	testCases := []struct {
		name           string
		from           CampaignStatus
		to             CampaignStatus
		wantValidation bool
		wantTransition bool
	}{
		{name: "draft to active", from: CampaignStatusDraft, to: CampaignStatusActive},
		{name: "active back to draft", from: CampaignStatusActive, to: CampaignStatusDraft},
		{name: "active to completed", from: CampaignStatusActive, to: CampaignStatusCompleted},
		{name: "completed self transition", from: CampaignStatusCompleted, to: CampaignStatusCompleted},
		{name: "cancelled self transition", from: CampaignStatusCancelled, to: CampaignStatusCancelled},
		{name: "completed to active", from: CampaignStatusCompleted, to: CampaignStatusActive, wantTransition: true},
		{name: "cancelled to completed", from: CampaignStatusCancelled, to: CampaignStatusCompleted, wantTransition: true},
		{name: "unknown target", from: CampaignStatusDraft, to: "archived", wantValidation: true},
		{name: "unknown target from terminal", from: CampaignStatusCompleted, to: "archived", wantValidation: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCampaignTransition(tc.from, tc.to)
			switch {
			case tc.wantValidation:
				assert.True(t, apperrors.IsValidation(err))
			case tc.wantTransition:
				assert.True(t, apperrors.IsInvalidTransition(err))
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEvaluationTransition(t *testing.T) {
	t.Run("every enumerated status is reachable from every other", func(t *testing.T) {
		for _, from := range EvaluationStatuses() {
			for _, to := range EvaluationStatuses() {
				assert.NoError(t, ValidateEvaluationTransition(from, to), "%s -> %s", from, to)
			}
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		err := ValidateEvaluationTransition(EvaluationStatusNotImplemented, "Done")
		assert.ErrorIs(t, err, apperrors.ErrInvalidEvaluationStatus)
	})
}

func TestEvaluationStatusStampsEvaluator(t *testing.T) {
	assert.True(t, EvaluationStatusImplemented.StampsEvaluator())
	assert.True(t, EvaluationStatusEvidenceRejected.StampsEvaluator())
	assert.False(t, EvaluationStatusNotImplemented.StampsEvaluator())
	assert.False(t, EvaluationStatusEvidenceSubmitted.StampsEvaluator())
	assert.False(t, EvaluationStatusValidatingEvidence.StampsEvaluator())
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, ServiceTypeWorkflow.IsValid())
	assert.False(t, ServiceType("Batch Job").IsValid())
	assert.True(t, EvidenceTypeImage.IsValid())
	assert.False(t, EvidenceType("Video").IsValid())
	assert.True(t, UserRoleTeamOwner.IsValid())
	assert.False(t, UserRole("root").IsValid())
	assert.True(t, CampaignStatusCancelled.IsTerminal())
	assert.False(t, CampaignStatusActive.IsTerminal())
}

func TestDefaultLevelRules(t *testing.T) {
	modelID := uuid.New()
	rules := DefaultLevelRules(modelID)

	require.Len(t, rules, 5)
	assert.NoError(t, ValidateLevelRules(rules))
	for i, r := range rules {
		assert.Equal(t, i, r.Level)
		assert.Equal(t, modelID, r.MaturityModelID)
	}
	assert.Equal(t, 24.99, rules[0].MaxPercentage)
	assert.Equal(t, 100.0, rules[4].MinPercentage)
}

func TestClassifyLevel(t *testing.T) {
	rules := DefaultLevelRules(uuid.New())
	pct := func(v float64) *float64 { return &v }

	testCases := []struct {
		name string
		pct  *float64
		want *int
	}{
		{name: "undefined percentage", pct: nil, want: nil},
		{name: "zero", pct: pct(0), want: intPtr(0)},
		{name: "one third", pct: pct(33.33), want: intPtr(1)},
		{name: "exact lower bound", pct: pct(50), want: intPtr(2)},
		{name: "upper edge of level three", pct: pct(99.99), want: intPtr(3)},
		{name: "complete", pct: pct(100), want: intPtr(4)},
		{name: "gap between rules", pct: pct(24.995), want: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyLevel(rules, tc.pct))
		})
	}
}

func TestValidateLevelRules(t *testing.T) {
	testCases := []struct {
		name  string
		rules []MaturityLevelRule
	}{
		{name: "empty", rules: nil},
		{name: "level above four", rules: []MaturityLevelRule{{Level: 5, MinPercentage: 0, MaxPercentage: 10}}},
		{name: "negative level", rules: []MaturityLevelRule{{Level: -1, MinPercentage: 0, MaxPercentage: 10}}},
		{name: "duplicate level", rules: []MaturityLevelRule{
			{Level: 1, MinPercentage: 0, MaxPercentage: 10},
			{Level: 1, MinPercentage: 11, MaxPercentage: 20},
		}},
		{name: "min above max", rules: []MaturityLevelRule{{Level: 0, MinPercentage: 30, MaxPercentage: 10}}},
		{name: "max above hundred", rules: []MaturityLevelRule{{Level: 0, MinPercentage: 0, MaxPercentage: 101}}},
		{name: "negative min", rules: []MaturityLevelRule{{Level: 0, MinPercentage: -1, MaxPercentage: 10}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, apperrors.IsValidation(ValidateLevelRules(tc.rules)))
		})
	}
}

func TestBeforeCreateAssignsID(t *testing.T) {
	m := &BaseModel{}
	require.NoError(t, m.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, m.ID)

	existing := uuid.New()
	m = &BaseModel{ID: existing}
	require.NoError(t, m.BeforeCreate(nil))
	assert.Equal(t, existing, m.ID)

	h := &EvaluationHistory{}
	require.NoError(t, h.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, h.ID)
}

func intPtr(v int) *int { return &v }
