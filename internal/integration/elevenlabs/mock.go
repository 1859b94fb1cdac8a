package elevenlabs

import (
	"context"

	"github.com/futig/fitplan-backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// silent MPEG frame header, enough for players to accept the payload
var mockAudio = []byte{0xff, 0xfb, 0x90, 0x64, 0x00, 0x00, 0x00, 0x00}

type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{logger: logger}
}

func (m *MockConnector) Synthesize(ctx context.Context, text, voiceID string) (*entity.Audio, error) {
	ctxzap.Info(ctx, "[MOCK] synthesizing speech", zap.String("voice_id", voiceID), zap.Int("text_length", len(text)))
	return &entity.Audio{MIMEType: audioMPEG, Data: mockAudio}, nil
}
