package entity

import (
	"encoding/base64"
	"net/url"
	"strings"
)

// Artifact is the rendered reference for one asset item: either an inline image
// returned by the image service, or a placeholder derived from the item name.
type Artifact struct {
	MIMEType    string
	Data        []byte
	Placeholder string
}

// ImageArtifact wraps an inline image payload.
func ImageArtifact(mimeType string, data []byte) Artifact {
	return Artifact{MIMEType: mimeType, Data: data}
}

// PlaceholderArtifact derives the placeholder reference for an item. Same name, same reference.
func PlaceholderArtifact(item string) Artifact {
	query := strings.ReplaceAll(url.QueryEscape(item+" fitness"), "+", "%20")
	return Artifact{Placeholder: "/placeholder.svg?height=300&width=300&query=" + query}
}

func (a Artifact) IsPlaceholder() bool {
	return a.Placeholder != ""
}

// Reference renders the artifact the way the UI consumes it: a data URL or a placeholder path.
func (a Artifact) Reference() string {
	if a.IsPlaceholder() {
		return a.Placeholder
	}
	return "data:" + a.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(a.Data)
}

// AssetResult maps every requested item name to exactly one artifact.
type AssetResult map[string]Artifact

// References flattens the result into name -> reference.
func (r AssetResult) References() map[string]string {
	refs := make(map[string]string, len(r))
	for name, artifact := range r {
		refs[name] = artifact.Reference()
	}
	return refs
}

// Placeholders counts entries that fell back to a placeholder.
func (r AssetResult) Placeholders() int {
	n := 0
	for _, artifact := range r {
		if artifact.IsPlaceholder() {
			n++
		}
	}
	return n
}

// GeneratedImage is an inline image returned by the image service.
type GeneratedImage struct {
	MIMEType string
	Data     []byte
}

type AssetRequest struct {
	Exercises []string `json:"exercises"`
	Meals     []string `json:"meals"`
}

var (
	DefaultExercises = []string{"Barbell Squat", "Push Ups", "Bench Press"}
	DefaultMeals     = []string{"Grilled Chicken Salad", "Oatmeal Bowl", "Protein Shake"}
)

// Items concatenates exercises and meals, substituting the defaults for an empty list.
func (r *AssetRequest) Items() []string {
	exercises := r.Exercises
	if len(exercises) == 0 {
		exercises = DefaultExercises
	}
	meals := r.Meals
	if len(meals) == 0 {
		meals = DefaultMeals
	}
	items := make([]string, 0, len(exercises)+len(meals))
	items = append(items, exercises...)
	return append(items, meals...)
}
