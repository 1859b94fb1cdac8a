// Package planparser extracts the named sections of a plan from raw model output.
package planparser

import (
	"strings"

	"github.com/futig/fitplan-backend/internal/entity"
	"github.com/futig/fitplan-backend/internal/pkg/prompt"
)

// Fallbacks substituted for sections that are missing or empty.
const (
	FallbackWorkout    = "Unable to parse workout plan"
	FallbackDiet       = "Unable to parse diet plan"
	FallbackTips       = "Unable to parse tips"
	FallbackMotivation = "Your journey begins today!"
)

var fallbacks = map[entity.Section]string{
	entity.SectionWorkout:    FallbackWorkout,
	entity.SectionDiet:       FallbackDiet,
	entity.SectionTips:       FallbackTips,
	entity.SectionMotivation: FallbackMotivation,
}

// Parse never fails. Each section runs from just after the first occurrence of its marker
// to the nearest later-ordered marker that follows it, or to the end of the text.
// Markers are matched literally and case-sensitively.
func Parse(raw string) *entity.Plan {
	sections := make(map[entity.Section]string, len(prompt.Markers))

	for i, m := range prompt.Markers {
		idx := strings.Index(raw, m.Marker)
		if idx < 0 {
			continue
		}
		start := idx + len(m.Marker)

		end := len(raw)
		for _, next := range prompt.Markers[i+1:] {
			if pos := strings.Index(raw[start:], next.Marker); pos >= 0 && start+pos < end {
				end = start + pos
			}
		}

		sections[m.Section] = strings.TrimSpace(raw[start:end])
	}

	return &entity.Plan{
		Workout:    orFallback(sections, entity.SectionWorkout),
		Diet:       orFallback(sections, entity.SectionDiet),
		Tips:       orFallback(sections, entity.SectionTips),
		Motivation: orFallback(sections, entity.SectionMotivation),
		FullPlan:   raw,
	}
}

func orFallback(sections map[entity.Section]string, s entity.Section) string {
	if text := sections[s]; text != "" {
		return text
	}
	return fallbacks[s]
}
