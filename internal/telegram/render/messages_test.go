package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/futig/fitplan-backend/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestRenderError(t *testing.T) {
	tests := []struct {
		name        string
		err         *entity.AppError
		contains    string
		notContains string
	}{
		{
			name:        "setup",
			err:         &entity.AppError{Kind: entity.ErrorKindMissingCredential, Message: "GEMINI_API_KEY is not configured"},
			contains:    "🔑",
			notContains: "/retry",
		},
		{
			name:     "bad input shows details",
			err:      &entity.AppError{Kind: entity.ErrorKindValidation, Message: "Missing required fields", Details: "name"},
			contains: "name",
		},
		{
			name:     "upstream invites retry",
			err:      &entity.AppError{Kind: entity.ErrorKindUpstream, Message: "Failed"},
			contains: "/retry",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RenderError(tc.err)
			assert.Contains(t, got, tc.err.Message)
			assert.Contains(t, got, tc.contains)
			if tc.notContains != "" {
				assert.NotContains(t, got, tc.notContains)
			}
		})
	}
}

func TestSplitMessage(t *testing.T) {
	assert.Equal(t, []string{"short"}, SplitMessage("short", 10))

	text := strings.Repeat("line of text\n", 50)
	chunks := SplitMessage(text, 100)
	assert.Greater(t, len(chunks), 1)
	for _, c := range chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(c), 100)
	}
	assert.Equal(t, strings.ReplaceAll(text, "\n", ""), strings.ReplaceAll(strings.Join(chunks, ""), "\n", ""))
}

func TestRenderPlaceholders(t *testing.T) {
	result := entity.AssetResult{
		"b": entity.PlaceholderArtifact("b"),
		"a": entity.PlaceholderArtifact("a"),
		"c": entity.ImageArtifact("image/png", []byte{1}),
	}
	assert.Equal(t, "No picture for: a, b", RenderPlaceholders(result))
	assert.Empty(t, RenderPlaceholders(entity.AssetResult{}))
}
