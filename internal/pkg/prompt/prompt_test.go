package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/futig/fitplan-backend/internal/entity"
)

func fullProfile() entity.Profile {
	return entity.Profile{
		Name:           "Ann",
		Age:            30,
		Gender:         entity.GenderFemale,
		HeightCm:       168.5,
		WeightKg:       61,
		Goal:           entity.GoalStrength,
		Level:          entity.LevelIntermediate,
		Location:       entity.LocationGym,
		Diet:           entity.DietNonVeg,
		MedicalHistory: "old knee injury",
		StressLevel:    entity.StressModerate,
	}
}

func TestCompileIsDeterministic(t *testing.T) {
	p := fullProfile()

	first := Compile(p)
	second := Compile(p)

	assert.Equal(t, first, second)
}

func TestCompileRendersProfile(t *testing.T) {
	got := Compile(fullProfile())

	for _, want := range []string{
		"Name: Ann\n",
		"Age: 30\n",
		"Gender: Female\n",
		"Height: 168.5cm\n",
		"Weight: 61kg\n",
		"Fitness Goal: Strength\n",
		"Current Level: Intermediate\n",
		"Workout Location: Gym\n",
		"Dietary Preference: Non-Veg\n",
		"Medical History: old knee injury\n",
		"Stress Level: Moderate\n",
	} {
		assert.Contains(t, got, want)
	}
}

func TestCompileInjectsNoneForAbsentFields(t *testing.T) {
	got := Compile(entity.Profile{Name: "Ann", Age: 30, Goal: entity.GoalStrength})

	for _, field := range []string{
		"Gender", "Height", "Weight", "Current Level", "Workout Location",
		"Dietary Preference", "Medical History", "Stress Level",
	} {
		assert.Contains(t, got, field+": None\n", field)
	}
	assert.NotContains(t, got, "Nonecm")
	assert.NotContains(t, got, ": \n")
}

func TestCompileEmitsMarkersInOrder(t *testing.T) {
	got := Compile(fullProfile())

	last := -1
	for _, m := range Markers {
		idx := strings.Index(got, "\n"+m.Marker+"\n")
		if assert.GreaterOrEqual(t, idx, 0, m.Marker) {
			assert.Greater(t, idx, last, m.Marker)
			last = idx
		}
		assert.Equal(t, 1, strings.Count(got, m.Marker), m.Marker)
	}
}
