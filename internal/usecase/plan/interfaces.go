package plan

import "context"

// TextGenerator is the text-generation service boundary: one blocking call per prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
