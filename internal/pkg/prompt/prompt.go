// Package prompt compiles a user profile into the plan-generation prompt.
package prompt

import (
	"bytes"
	"strconv"
	"strings"
	"text/template"

	"github.com/futig/fitplan-backend/internal/entity"
)

// Section markers the model is instructed to emit, in order.
const (
	MarkerWorkout    = "## WORKOUT PLAN"
	MarkerDiet       = "## DIET PLAN"
	MarkerTips       = "## TIPS & MOTIVATION"
	MarkerMotivation = "## DAILY MOTIVATION"
)

// Markers lists the section markers in the order the model must emit them.
var Markers = []struct {
	Section entity.Section
	Marker  string
}{
	{entity.SectionWorkout, MarkerWorkout},
	{entity.SectionDiet, MarkerDiet},
	{entity.SectionTips, MarkerTips},
	{entity.SectionMotivation, MarkerMotivation},
}

// None is injected for every optional field the profile leaves empty.
const None = "None"

const planTemplate = `You are an expert fitness coach and nutritionist. Create a personalized fitness plan based on the following user profile:

Name: {{.Name}}
Age: {{.Age}}
Gender: {{.Gender}}
Height: {{.Height}}
Weight: {{.Weight}}
Fitness Goal: {{.Goal}}
Current Level: {{.Level}}
Workout Location: {{.Location}}
Dietary Preference: {{.Diet}}
Medical History: {{.MedicalHistory}}
Stress Level: {{.StressLevel}}

IMPORTANT: Format your response EXACTLY as follows with these headers, in this order, each header alone on its own line:

` + MarkerWorkout + `
[Provide a detailed weekly workout plan with exercises, sets, reps, and rest times appropriate for their goal and level. Include daily breakdown.]

` + MarkerDiet + `
[Provide personalized meal plan with breakfast, lunch, dinner, and snacks that matches their dietary preference and fitness goal. Include macro recommendations.]

` + MarkerTips + `
[Provide 5-7 lifestyle tips, posture advice, hydration tips, sleep recommendations, and stress management techniques specific to their profile.]

` + MarkerMotivation + `
[Provide ONE powerful, personalized motivational quote that speaks directly to their fitness journey.]`

var tmpl = template.Must(template.New("plan").Parse(planTemplate))

type templateData struct {
	Name           string
	Age            string
	Gender         string
	Height         string
	Weight         string
	Goal           string
	Level          string
	Location       string
	Diet           string
	MedicalHistory string
	StressLevel    string
}

// Compile renders the plan prompt for a profile. The profile must already be validated;
// Compile itself never fails and has no state, so equal profiles give byte-identical prompts.
func Compile(p entity.Profile) string {
	data := templateData{
		Name:           orNone(p.Name),
		Age:            strconv.Itoa(p.Age),
		Gender:         orNone(string(p.Gender)),
		Height:         measurement(p.HeightCm, "cm"),
		Weight:         measurement(p.WeightKg, "kg"),
		Goal:           orNone(string(p.Goal)),
		Level:          orNone(string(p.Level)),
		Location:       orNone(string(p.Location)),
		Diet:           orNone(string(p.Diet)),
		MedicalHistory: orNone(p.MedicalHistory),
		StressLevel:    orNone(string(p.StressLevel)),
	}

	var buf bytes.Buffer
	// templateData has only string fields, execution cannot fail
	_ = tmpl.Execute(&buf, data)
	return buf.String()
}

func orNone(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return None
	}
	return v
}

func measurement(v float64, unit string) string {
	if v <= 0 {
		return None
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + unit
}

// ImageRequest is the per-item instruction sent to the image model.
func ImageRequest(item string) string {
	return `Generate a clear, realistic image showing a person doing the exercise or eating the meal: "` + item +
		`". Make it professional and appropriate for a fitness app. Show proper form if it's an exercise.`
}
