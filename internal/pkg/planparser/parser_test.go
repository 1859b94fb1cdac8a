package planparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futig/fitplan-backend/internal/entity"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want entity.Plan
	}{
		{
			name: "all sections in order",
			raw:  "Here is your plan.\n## WORKOUT PLAN\nSquats 3x5\n\n## DIET PLAN\nEggs\n## TIPS & MOTIVATION\nSleep 8h\n## DAILY MOTIVATION\n  Keep going.  \n",
			want: entity.Plan{Workout: "Squats 3x5", Diet: "Eggs", Tips: "Sleep 8h", Motivation: "Keep going."},
		},
		{
			name: "only workout section",
			raw:  "## WORKOUT PLAN\nDeadlift 5x5",
			want: entity.Plan{Workout: "Deadlift 5x5", Diet: FallbackDiet, Tips: FallbackTips, Motivation: FallbackMotivation},
		},
		{
			name: "missing diet does not leak tips into workout",
			raw:  "## WORKOUT PLAN\nRows\n## TIPS & MOTIVATION\nHydrate\n## DAILY MOTIVATION\nGo",
			want: entity.Plan{Workout: "Rows", Diet: FallbackDiet, Tips: "Hydrate", Motivation: "Go"},
		},
		{
			name: "empty section gets fallback",
			raw:  "## WORKOUT PLAN\n   \n## DIET PLAN\nRice\n## TIPS & MOTIVATION\nWalk\n## DAILY MOTIVATION\n",
			want: entity.Plan{Workout: FallbackWorkout, Diet: "Rice", Tips: "Walk", Motivation: FallbackMotivation},
		},
		{
			name: "markers are case sensitive",
			raw:  "## workout plan\nSquats\n## Diet Plan\nEggs",
			want: entity.Plan{Workout: FallbackWorkout, Diet: FallbackDiet, Tips: FallbackTips, Motivation: FallbackMotivation},
		},
		{
			name: "truncated output",
			raw:  "## WORKOUT PLAN\nMonday: legs\n## DIET PL",
			want: entity.Plan{Workout: "Monday: legs\n## DIET PL", Diet: FallbackDiet, Tips: FallbackTips, Motivation: FallbackMotivation},
		},
		{
			name: "first occurrence wins",
			raw:  "## WORKOUT PLAN\nA\n## DIET PLAN\nB\n## WORKOUT PLAN\nC",
			want: entity.Plan{Workout: "A", Diet: "B\n## WORKOUT PLAN\nC", Tips: FallbackTips, Motivation: FallbackMotivation},
		},
		{
			name: "empty input",
			raw:  "",
			want: entity.Plan{Workout: FallbackWorkout, Diet: FallbackDiet, Tips: FallbackTips, Motivation: FallbackMotivation},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Parse(tc.raw)
			require.NotNil(t, got)

			tc.want.FullPlan = tc.raw
			assert.Equal(t, tc.want, *got)
		})
	}
}

func TestParseIsTotal(t *testing.T) {
	inputs := []string{"", "\x00\xff", "## DAILY MOTIVATION", "## DIET PLAN## WORKOUT PLAN", "random prose without markers"}

	for _, raw := range inputs {
		got := Parse(raw)
		for _, s := range []entity.Section{entity.SectionWorkout, entity.SectionDiet, entity.SectionTips, entity.SectionMotivation} {
			assert.NotEmpty(t, got.Get(s), "section %s for %q", s, raw)
		}
		assert.Equal(t, raw, got.FullPlan)
	}
}
