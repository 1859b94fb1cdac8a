package entity

import "errors"

// Domain errors
var (
	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidParameter = errors.New("invalid parameter")

	// Upstream errors
	ErrMissingCredential = errors.New("credential is not configured")
	ErrEmptyResponse     = errors.New("upstream returned an empty response")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrRequestInFlight = errors.New("a plan request is already in flight")
	ErrRetryDisabled   = errors.New("retry is disabled until the credential configuration changes")
	ErrNothingToRetry  = errors.New("no previous request to retry")
	ErrNoPlan          = errors.New("session has no generated plan")

	// Library errors
	ErrPlanNotFound = errors.New("saved plan not found")
)
