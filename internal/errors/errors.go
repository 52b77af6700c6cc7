package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents a uniqueness conflict
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in this campaign"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents an enum or range validation failure
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// InvalidStateError is returned when an operation is not permitted in the
// current lifecycle state of an entity.
type InvalidStateError struct {
	Entity  string
	State   string
	Message string
}

func (e *InvalidStateError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("operation not permitted on a %s %s", e.State, e.Entity)
}

// InvalidTransitionError is returned when a status change is disallowed.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot change status of a %s %s to %s", e.From, e.Entity, e.To)
}

// InternalError wraps a storage or infrastructure failure.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound          = &NotFoundError{Entity: "user"}
	ErrTeamNotFound          = &NotFoundError{Entity: "team"}
	ErrServiceNotFound       = &NotFoundError{Entity: "service"}
	ErrMaturityModelNotFound = &NotFoundError{Entity: "maturity model"}
	ErrCategoryNotFound      = &NotFoundError{Entity: "measurement category"}
	ErrCampaignNotFound      = &NotFoundError{Entity: "campaign"}
	ErrParticipantNotFound   = &NotFoundError{Entity: "campaign participant"}
	ErrEvaluationNotFound    = &NotFoundError{Entity: "evaluation"}
	ErrNoEvaluationsFound    = &NotFoundError{Entity: "evaluations"}
)

// Already Exists Errors
var (
	ErrTeamExists          = &AlreadyExistsError{Entity: "team", Context: "with this name"}
	ErrMaturityModelExists = &AlreadyExistsError{Entity: "maturity model", Context: "with this name"}
	ErrParticipantExists   = &AlreadyExistsError{Entity: "campaign participant", Context: "for this service"}
)

// Validation Errors
var (
	ErrInvalidCampaignStatus   = &ValidationError{Field: "status", Message: "must be one of: draft, active, completed, cancelled"}
	ErrInvalidEvaluationStatus = &ValidationError{Field: "status", Message: "must be one of: Not Implemented, Evidence Submitted, Validating Evidence, Evidence Rejected, Implemented"}
	ErrInvalidPercentageRange  = &ValidationError{Field: "rules", Message: "invalid percentage range"}
	ErrInvalidDateRange        = &ValidationError{Field: "end_date", Message: "end date must not be before start date"}
	ErrNoFieldsToUpdate        = &ValidationError{Message: "no valid fields to update"}
)

// Lifecycle Errors
var (
	ErrMaturityModelInUse = &InvalidStateError{Entity: "maturity model", State: "referenced", Message: "cannot delete maturity model that is used in campaigns"}
	ErrTeamHasServices    = &InvalidStateError{Entity: "team", State: "non-empty", Message: "cannot delete team that still owns services"}
	ErrServiceEnrolled    = &InvalidStateError{Entity: "service", State: "enrolled", Message: "cannot delete service that participates in campaigns"}
)

// Authentication Errors
var (
	ErrMissingPrincipal = &AuthenticationError{Message: "authentication required"}
	ErrInvalidToken     = &AuthenticationError{Message: "invalid or expired token"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsInvalidState checks if an error is an InvalidStateError
func IsInvalidState(err error) bool {
	var stateErr *InvalidStateError
	return errors.As(err, &stateErr)
}

// IsInvalidTransition checks if an error is an InvalidTransitionError
func IsInvalidTransition(err error) bool {
	var transitionErr *InvalidTransitionError
	return errors.As(err, &transitionErr)
}

// IsInternal checks if an error is an InternalError
func IsInternal(err error) bool {
	var internalErr *InternalError
	return errors.As(err, &internalErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsApplication reports whether err is one of the typed validation or lifecycle
// errors, as opposed to a storage failure.
func IsApplication(err error) bool {
	return IsNotFound(err) || IsAlreadyExists(err) || IsValidation(err) ||
		IsInvalidState(err) || IsInvalidTransition(err)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInvalidStateError creates an InvalidStateError for an entity in the given state
func NewInvalidStateError(entity, state, message string) error {
	return &InvalidStateError{Entity: entity, State: state, Message: message}
}

// NewInvalidTransitionError creates a new InvalidTransitionError
func NewInvalidTransitionError(entity, from, to string) error {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

// NewInternalError wraps err as an InternalError. A nil err yields nil.
func NewInternalError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &InternalError{Op: op, Err: err}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
