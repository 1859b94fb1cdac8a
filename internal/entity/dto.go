package entity

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// GeneratePlanResponse mirrors the shape the web client reads from /api/generate-plan.
type GeneratePlanResponse struct {
	Success    bool   `json:"success"`
	Plan       *Plan  `json:"plan,omitempty"`
	Error      string `json:"error,omitempty"`
	Details    string `json:"details,omitempty"`
	NeedsSetup bool   `json:"needsSetup,omitempty"`
}

type GenerateImagesResponse struct {
	Success    bool              `json:"success"`
	Images     map[string]string `json:"images,omitempty"`
	Error      string            `json:"error,omitempty"`
	Details    string            `json:"details,omitempty"`
	NeedsSetup bool              `json:"needsSetup,omitempty"`
}

type TextToSpeechResponse struct {
	Success    bool   `json:"success"`
	Audio      string `json:"audio,omitempty"`
	Error      string `json:"error,omitempty"`
	Details    string `json:"details,omitempty"`
	NeedsSetup bool   `json:"needsSetup,omitempty"`
}

type SessionDTO struct {
	ID       string        `json:"session_id"`
	State    RequestStatus `json:"state"`
	Plan     *Plan         `json:"plan,omitempty"`
	Error    *AppError     `json:"error,omitempty"`
	Outcome  Outcome       `json:"outcome,omitempty"`
	CanRetry bool          `json:"can_retry"`
}
