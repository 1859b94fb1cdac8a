package validator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/futig/fitplan-backend/internal/entity"
)

const (
	maxAge    = 120
	maxHeight = 300
	maxWeight = 500
)

// ValidateProfile enforces the required fields (name, age, goal) and rejects
// optional enum values that are present but unknown.
func (v *Validator) ValidateProfile(p *entity.Profile) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name", entity.ErrMissingField)
	}
	if p.Age == 0 {
		return fmt.Errorf("%w: age", entity.ErrMissingField)
	}
	if p.Goal == "" {
		return fmt.Errorf("%w: goal", entity.ErrMissingField)
	}

	if p.Age < 0 || p.Age > maxAge {
		return fmt.Errorf("%w: age must be between 1 and %d", entity.ErrInvalidParameter, maxAge)
	}
	if p.HeightCm < 0 || p.HeightCm > maxHeight {
		return fmt.Errorf("%w: height must be between 0 and %d cm", entity.ErrInvalidParameter, maxHeight)
	}
	if p.WeightKg < 0 || p.WeightKg > maxWeight {
		return fmt.Errorf("%w: weight must be between 0 and %d kg", entity.ErrInvalidParameter, maxWeight)
	}
	if len(p.MedicalHistory) > v.cfg.MaxMedicalHistoryChars {
		return fmt.Errorf("%w: medical history is longer than %d characters", entity.ErrInvalidParameter, v.cfg.MaxMedicalHistoryChars)
	}

	if !slices.Contains(entity.Goals, p.Goal) {
		return fmt.Errorf("%w: goal '%s'", entity.ErrInvalidParameter, p.Goal)
	}
	if err := optionalEnum("gender", p.Gender, entity.Genders); err != nil {
		return err
	}
	if err := optionalEnum("level", p.Level, entity.Levels); err != nil {
		return err
	}
	if err := optionalEnum("location", p.Location, entity.Locations); err != nil {
		return err
	}
	if err := optionalEnum("diet", p.Diet, entity.Diets); err != nil {
		return err
	}
	return optionalEnum("stressLevel", p.StressLevel, entity.StressLevels)
}

func optionalEnum[T ~string](field string, value T, allowed []T) error {
	if value == "" || slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("%w: %s '%s'", entity.ErrInvalidParameter, field, value)
}
