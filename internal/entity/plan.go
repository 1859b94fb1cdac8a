package entity

// Section names a part of a generated plan, in the order the model is asked to emit them.
type Section string

const (
	SectionWorkout    Section = "workout"
	SectionDiet       Section = "diet"
	SectionTips       Section = "tips"
	SectionMotivation Section = "motivation"
)

// Plan is the parsed result of a plan generation. Every field is always populated.
type Plan struct {
	Workout    string `json:"workout"`
	Diet       string `json:"diet"`
	Tips       string `json:"tips"`
	Motivation string `json:"motivation"`
	// FullPlan is the raw model output, kept for export and narration.
	FullPlan string `json:"fullPlan"`
}

// Get returns the text of one section.
func (p *Plan) Get(s Section) string {
	switch s {
	case SectionWorkout:
		return p.Workout
	case SectionDiet:
		return p.Diet
	case SectionTips:
		return p.Tips
	case SectionMotivation:
		return p.Motivation
	default:
		return ""
	}
}

// NarrationText is the text read aloud by the speech front-ends.
func (p *Plan) NarrationText() string {
	return p.Motivation + "\n\n" + p.Workout
}
