package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futig/fitplan-backend/internal/config"
	"github.com/futig/fitplan-backend/internal/entity"
)

func testValidator() *Validator {
	return New(config.LimitsConfig{
		MaxAssetItems:          4,
		MaxItemNameLength:      20,
		MaxSpeechChars:         50,
		MaxMedicalHistoryChars: 30,
	})
}

func TestValidateProfile(t *testing.T) {
	valid := entity.Profile{Name: "Ann", Age: 30, Goal: entity.GoalStrength}

	tests := []struct {
		name    string
		mutate  func(p *entity.Profile)
		wantErr error
	}{
		{name: "required fields only", mutate: func(*entity.Profile) {}},
		{name: "all optional fields", mutate: func(p *entity.Profile) {
			p.Gender = entity.GenderOther
			p.HeightCm = 170
			p.WeightKg = 70
			p.Level = entity.LevelAdvanced
			p.Location = entity.LocationOutdoor
			p.Diet = entity.DietKeto
			p.StressLevel = entity.StressHigh
		}},
		{name: "missing name", mutate: func(p *entity.Profile) { p.Name = "  " }, wantErr: entity.ErrMissingField},
		{name: "missing age", mutate: func(p *entity.Profile) { p.Age = 0 }, wantErr: entity.ErrMissingField},
		{name: "missing goal", mutate: func(p *entity.Profile) { p.Goal = "" }, wantErr: entity.ErrMissingField},
		{name: "negative age", mutate: func(p *entity.Profile) { p.Age = -1 }, wantErr: entity.ErrInvalidParameter},
		{name: "unknown goal", mutate: func(p *entity.Profile) { p.Goal = "Flying" }, wantErr: entity.ErrInvalidParameter},
		{name: "unknown diet", mutate: func(p *entity.Profile) { p.Diet = "Carnivore" }, wantErr: entity.ErrInvalidParameter},
		{name: "height out of range", mutate: func(p *entity.Profile) { p.HeightCm = 400 }, wantErr: entity.ErrInvalidParameter},
		{name: "medical history too long", mutate: func(p *entity.Profile) { p.MedicalHistory = strings.Repeat("x", 31) }, wantErr: entity.ErrInvalidParameter},
	}

	v := testValidator()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.mutate(&p)

			err := v.ValidateProfile(&p)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidateAssetRequest(t *testing.T) {
	v := testValidator()

	assert.NoError(t, v.ValidateAssetRequest(&entity.AssetRequest{}))
	assert.NoError(t, v.ValidateAssetRequest(&entity.AssetRequest{Exercises: []string{"Squat"}, Meals: []string{"Oats"}}))
	assert.ErrorIs(t, v.ValidateAssetRequest(&entity.AssetRequest{Exercises: []string{"a", "b", "c"}, Meals: []string{"d", "e"}}), entity.ErrInvalidParameter)
	assert.ErrorIs(t, v.ValidateAssetRequest(&entity.AssetRequest{Meals: []string{" "}}), entity.ErrMissingField)
	assert.ErrorIs(t, v.ValidateAssetRequest(&entity.AssetRequest{Meals: []string{strings.Repeat("m", 21)}}), entity.ErrInvalidParameter)
}

func TestValidateSpeech(t *testing.T) {
	v := testValidator()

	assert.NoError(t, v.ValidateSpeech(&entity.SpeechRequest{Text: "Keep going"}))
	assert.ErrorIs(t, v.ValidateSpeech(&entity.SpeechRequest{Text: ""}), entity.ErrMissingField)
	assert.ErrorIs(t, v.ValidateSpeech(&entity.SpeechRequest{Text: strings.Repeat("a", 51)}), entity.ErrInvalidParameter)
}
