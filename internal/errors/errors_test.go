package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "campaign"}
		assert.Equal(t, "campaign not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "campaign"}
		err2 := &NotFoundError{Entity: "campaign"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrCampaignNotFound, ErrServiceNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("lookup: %w", ErrEvaluationNotFound)
		assert.True(t, errors.Is(wrapped, ErrEvaluationNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrParticipantNotFound))
		assert.False(t, IsNotFound(ErrParticipantExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "campaign participant already exists for this service", ErrParticipantExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team"}
		assert.Equal(t, "team already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrMaturityModelExists))
		assert.False(t, IsAlreadyExists(ErrTeamNotFound))
	})
}

func TestLifecycleErrors(t *testing.T) {
	t.Run("InvalidState default message", func(t *testing.T) {
		err := NewInvalidStateError("campaign", "completed", "")
		assert.Equal(t, "operation not permitted on a completed campaign", err.Error())
		assert.True(t, IsInvalidState(err))
		assert.False(t, IsInvalidTransition(err))
	})

	t.Run("InvalidState custom message", func(t *testing.T) {
		assert.Equal(t, "cannot delete team that still owns services", ErrTeamHasServices.Error())
	})

	t.Run("InvalidTransition message", func(t *testing.T) {
		err := NewInvalidTransitionError("campaign", "cancelled", "active")
		assert.Equal(t, "cannot change status of a cancelled campaign to active", err.Error())
		assert.True(t, IsInvalidTransition(err))
		assert.False(t, IsInvalidState(err))
	})
}

func TestValidationError(t *testing.T) {
	assert.Equal(t, "validation error: status - bad", NewValidationError("status", "bad").Error())
	assert.Equal(t, "validation error: no valid fields to update", ErrNoFieldsToUpdate.Error())
	assert.True(t, IsValidation(ErrInvalidEvaluationStatus))
	assert.False(t, IsValidation(ErrCampaignNotFound))
}

func TestInternalError(t *testing.T) {
	t.Run("nil error stays nil", func(t *testing.T) {
		assert.NoError(t, NewInternalError("create campaign", nil))
	})

	t.Run("wraps and unwraps", func(t *testing.T) {
		cause := errors.New("disk I/O error")
		err := NewInternalError("create campaign", cause)
		assert.True(t, IsInternal(err))
		assert.True(t, errors.Is(err, cause))
		assert.Equal(t, "internal error: create campaign: disk I/O error", err.Error())
	})

	t.Run("IsApplication excludes internal errors", func(t *testing.T) {
		assert.True(t, IsApplication(ErrCampaignNotFound))
		assert.True(t, IsApplication(ErrParticipantExists))
		assert.True(t, IsApplication(ErrInvalidEvaluationStatus))
		assert.True(t, IsApplication(ErrServiceEnrolled))
		assert.True(t, IsApplication(NewInvalidTransitionError("campaign", "completed", "draft")))
		assert.False(t, IsApplication(NewInternalError("op", errors.New("x"))))
		assert.False(t, IsApplication(errors.New("plain")))
	})
}
