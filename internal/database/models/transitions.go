package models

import (
	apperrors "maturity-tracker-backend/internal/errors"
)

// ValidateCampaignTransition checks a campaign status change.
// Completed and cancelled campaigns only accept a self-transition.
func ValidateCampaignTransition(from, to CampaignStatus) error {
	if !to.IsValid() {
		return apperrors.ErrInvalidCampaignStatus
	}
	if from.IsTerminal() && from != to {
		return apperrors.NewInvalidTransitionError("campaign", string(from), string(to))
	}
	return nil
}

// ValidateEvaluationTransition checks an evaluation status change.
// Any enumerated status is accepted from any other; there is no transition graph.
func ValidateEvaluationTransition(from, to EvaluationStatus) error {
	if !to.IsValid() {
		return apperrors.ErrInvalidEvaluationStatus
	}
	return nil
}

// ValidateLevelRules checks a complete replacement rule set for one model
func ValidateLevelRules(rules []MaturityLevelRule) error {
	if len(rules) == 0 {
		return apperrors.NewValidationError("rules", "at least one rule is required")
	}
	seen := make(map[int]bool, len(rules))
	for _, r := range rules {
		if r.Level < 0 || r.Level > MaxMaturityLevel {
			return apperrors.NewValidationError("level", "must be between 0 and 4")
		}
		if seen[r.Level] {
			return apperrors.NewValidationError("level", "duplicate level in rule set")
		}
		seen[r.Level] = true
		if r.MinPercentage < 0 || r.MinPercentage > r.MaxPercentage || r.MaxPercentage > 100 {
			return apperrors.ErrInvalidPercentageRange
		}
	}
	return nil
}
