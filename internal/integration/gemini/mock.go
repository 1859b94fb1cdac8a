package gemini

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/futig/fitplan-backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const mockPlan = `Here is your personalized plan.

## WORKOUT PLAN
Monday: Barbell Squat 4x6, Push Ups 3x12, rest 90s.
Wednesday: Bench Press 4x6, Rows 3x10.
Friday: Deadlift 3x5, Lunges 3x10 per leg.

## DIET PLAN
Breakfast: Oatmeal Bowl with berries.
Lunch: Grilled Chicken Salad.
Snack: Protein Shake.
Dinner: Salmon, rice and greens.

## TIPS & MOTIVATION
1. Drink 2-3 liters of water a day.
2. Sleep 7-9 hours.
3. Warm up for 10 minutes before lifting.
4. Keep a neutral spine on every hinge.
5. Walk after meals to manage stress.

## DAILY MOTIVATION
Strength is built one rep at a time.`

// 1x1 transparent PNG
var mockPNG, _ = base64.StdEncoding.DecodeString("iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII=")

type MockTextConnector struct {
	logger *zap.Logger
}

func NewMockTextConnector(logger *zap.Logger) *MockTextConnector {
	return &MockTextConnector{logger: logger}
}

func (m *MockTextConnector) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating plan text", zap.Int("prompt_length", len(prompt)))
	return mockPlan, nil
}

type MockImageConnector struct {
	logger *zap.Logger
}

func NewMockImageConnector(logger *zap.Logger) *MockImageConnector {
	return &MockImageConnector{logger: logger}
}

// GenerateImage returns a tiny PNG, or no image for prompts mentioning "Shake"
// so the placeholder path is visible in local runs.
func (m *MockImageConnector) GenerateImage(ctx context.Context, prompt string) (*entity.GeneratedImage, error) {
	ctxzap.Info(ctx, "[MOCK] generating image")
	if strings.Contains(prompt, "Shake") {
		return nil, nil
	}
	return &entity.GeneratedImage{MIMEType: "image/png", Data: mockPNG}, nil
}
