package entity

import "strings"

// Service identifies an upstream generative service.
type Service string

const (
	ServiceGemini     Service = "gemini"
	ServiceOllama     Service = "ollama"
	ServiceElevenLabs Service = "elevenlabs"
)

func (s Service) DisplayName() string {
	switch s {
	case ServiceGemini:
		return "Gemini"
	case ServiceOllama:
		return "Ollama"
	case ServiceElevenLabs:
		return "ElevenLabs"
	default:
		return string(s)
	}
}

// Credential carries the configured secret for one service. It is handed to usecases
// at construction time and checked before every call.
type Credential struct {
	Service Service
	EnvVar  string
	Value   string
	// Optional marks services that need no secret (a local ollama server).
	Optional bool
}

func (c Credential) Present() bool {
	return c.Optional || strings.TrimSpace(c.Value) != ""
}
