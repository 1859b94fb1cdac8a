package validator

import (
	"fmt"
	"strings"

	"github.com/futig/fitplan-backend/internal/config"
	"github.com/futig/fitplan-backend/internal/entity"
)

// Validator checks caller input before anything reaches an upstream service.
type Validator struct {
	cfg config.LimitsConfig
}

func New(cfg config.LimitsConfig) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAssetRequest checks the item lists. Empty lists are allowed and
// replaced with defaults later.
func (v *Validator) ValidateAssetRequest(req *entity.AssetRequest) error {
	total := len(req.Exercises) + len(req.Meals)
	if total > v.cfg.MaxAssetItems {
		return fmt.Errorf("%w: at most %d items allowed, got %d", entity.ErrInvalidParameter, v.cfg.MaxAssetItems, total)
	}

	for _, list := range [][]string{req.Exercises, req.Meals} {
		for _, item := range list {
			if strings.TrimSpace(item) == "" {
				return fmt.Errorf("%w: item name", entity.ErrMissingField)
			}
			if len(item) > v.cfg.MaxItemNameLength {
				return fmt.Errorf("%w: item name '%s' is longer than %d characters", entity.ErrInvalidParameter, item, v.cfg.MaxItemNameLength)
			}
		}
	}

	return nil
}

// ValidateSpeech checks narration input
func (v *Validator) ValidateSpeech(req *entity.SpeechRequest) error {
	if strings.TrimSpace(req.Text) == "" {
		return fmt.Errorf("%w: text", entity.ErrMissingField)
	}
	if len(req.Text) > v.cfg.MaxSpeechChars {
		return fmt.Errorf("%w: text is %d characters (max %d)", entity.ErrInvalidParameter, len(req.Text), v.cfg.MaxSpeechChars)
	}

	return nil
}
