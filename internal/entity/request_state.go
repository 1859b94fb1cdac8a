package entity

type RequestStatus string

const (
	RequestStatusIdle    RequestStatus = "idle"
	RequestStatusLoading RequestStatus = "loading"
	RequestStatusSuccess RequestStatus = "success"
	RequestStatusError   RequestStatus = "error"
)

// RequestState is a snapshot of one session's plan request.
// Plan is set only in success, Error only in error.
type RequestState struct {
	Status RequestStatus `json:"state"`
	Plan   *Plan         `json:"plan,omitempty"`
	Error  *AppError     `json:"error,omitempty"`
}

// CanRetry reports whether the retry affordance is enabled.
func (s RequestState) CanRetry() bool {
	switch s.Status {
	case RequestStatusSuccess:
		return true
	case RequestStatusError:
		return s.Error == nil || !s.Error.NeedsSetup
	default:
		return false
	}
}
