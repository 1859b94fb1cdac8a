package speech

import (
	"context"
	"strings"

	"github.com/futig/fitplan-backend/internal/entity"
	"github.com/futig/fitplan-backend/internal/pkg/classifier"
	"github.com/futig/fitplan-backend/internal/pkg/logger"
	"github.com/futig/fitplan-backend/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// SpeechUsecase narrates text. Failures use the same taxonomy as plan generation.
type SpeechUsecase struct {
	credential     entity.Credential
	synthesizer    Synthesizer
	validator      *validator.Validator
	classifier     *classifier.Classifier
	defaultVoiceID string
	logger         *zap.Logger
}

func NewUsecase(
	credential entity.Credential,
	synthesizer Synthesizer,
	validator *validator.Validator,
	defaultVoiceID string,
	logger *zap.Logger,
) *SpeechUsecase {
	return &SpeechUsecase{
		credential:     credential,
		synthesizer:    synthesizer,
		validator:      validator,
		classifier:     classifier.New(credential, "speech"),
		defaultVoiceID: defaultVoiceID,
		logger:         logger,
	}
}

// Synthesize returns the narrated audio. Every returned error is an *entity.AppError.
func (uc *SpeechUsecase) Synthesize(ctx context.Context, req *entity.SpeechRequest) (*entity.Audio, error) {
	ctx = logger.WithAction(ctx, "synthesize_speech")

	if !uc.credential.Present() {
		ctxzap.Warn(ctx, "credential not configured", zap.String("env_var", uc.credential.EnvVar))
		return nil, uc.classifier.MissingCredential()
	}

	if err := uc.validator.ValidateSpeech(req); err != nil {
		return nil, uc.classifier.Classify(err)
	}

	voiceID := strings.TrimSpace(req.VoiceID)
	if voiceID == "" {
		voiceID = uc.defaultVoiceID
	}

	audio, err := uc.synthesizer.Synthesize(ctx, req.Text, voiceID)
	if err != nil {
		appErr := uc.classifier.Classify(err)
		ctxzap.Error(ctx, "speech synthesis failed", zap.String("kind", string(appErr.Kind)), zap.Error(err))
		return nil, appErr
	}

	return audio, nil
}

// NarratePlan reads the plan's motivation followed by its workout.
func (uc *SpeechUsecase) NarratePlan(ctx context.Context, plan *entity.Plan, voiceID string) (*entity.Audio, error) {
	return uc.Synthesize(ctx, &entity.SpeechRequest{Text: plan.NarrationText(), VoiceID: voiceID})
}
