package entity

import "net/http"

// ErrorKind is the caller-visible category of a classified failure.
type ErrorKind string

const (
	ErrorKindMissingCredential ErrorKind = "missing_credential"
	ErrorKindInvalidCredential ErrorKind = "invalid_credential"
	ErrorKindValidation        ErrorKind = "validation_failure"
	ErrorKindUpstream          ErrorKind = "upstream_failure"
)

// Outcome tells a front-end which affordance to show for a failure.
type Outcome string

const (
	OutcomeSetupRequired Outcome = "setup_required"
	OutcomeBadInput      Outcome = "bad_input"
	OutcomeRetryable     Outcome = "retryable"
)

// NeedsSetup reports whether the failure is caused by absent or invalid configuration.
func (k ErrorKind) NeedsSetup() bool {
	return k == ErrorKindMissingCredential || k == ErrorKindInvalidCredential
}

func (k ErrorKind) Outcome() Outcome {
	switch k {
	case ErrorKindMissingCredential, ErrorKindInvalidCredential:
		return OutcomeSetupRequired
	case ErrorKindValidation:
		return OutcomeBadInput
	default:
		return OutcomeRetryable
	}
}

func (k ErrorKind) HTTPStatus() int {
	switch k {
	case ErrorKindMissingCredential:
		return http.StatusPaymentRequired
	case ErrorKindInvalidCredential:
		return http.StatusUnauthorized
	case ErrorKindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// AppError is a failure that has been classified into an ErrorKind.
type AppError struct {
	Kind       ErrorKind `json:"kind"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	NeedsSetup bool      `json:"needsSetup"`
	Err        error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) HTTPStatus() int {
	return e.Kind.HTTPStatus()
}

func (e *AppError) Outcome() Outcome {
	return e.Kind.Outcome()
}
