package plan

import (
	"context"
	"time"

	"github.com/futig/fitplan-backend/internal/entity"
	"github.com/futig/fitplan-backend/internal/pkg/classifier"
	"github.com/futig/fitplan-backend/internal/pkg/logger"
	"github.com/futig/fitplan-backend/internal/pkg/planparser"
	"github.com/futig/fitplan-backend/internal/pkg/prompt"
	"github.com/futig/fitplan-backend/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// PlanUsecase runs the validate -> credential check -> compile -> call -> parse pipeline.
type PlanUsecase struct {
	credential entity.Credential
	generator  TextGenerator
	validator  *validator.Validator
	classifier *classifier.Classifier
	logger     *zap.Logger
}

func NewUsecase(
	credential entity.Credential,
	generator TextGenerator,
	validator *validator.Validator,
	logger *zap.Logger,
) *PlanUsecase {
	return &PlanUsecase{
		credential: credential,
		generator:  generator,
		validator:  validator,
		classifier: classifier.New(credential, "fitness plan"),
		logger:     logger,
	}
}

// Generate produces a fully populated plan. Every returned error is an *entity.AppError.
func (uc *PlanUsecase) Generate(ctx context.Context, profile *entity.Profile) (*entity.Plan, error) {
	ctx = logger.WithAction(ctx, "generate_plan")

	if !uc.credential.Present() {
		ctxzap.Warn(ctx, "credential not configured", zap.String("env_var", uc.credential.EnvVar))
		return nil, uc.classifier.MissingCredential()
	}

	if err := uc.validator.ValidateProfile(profile); err != nil {
		ctxzap.Info(ctx, "profile rejected", zap.Error(err))
		return nil, uc.classifier.Classify(err)
	}

	started := time.Now()
	raw, err := uc.generator.GenerateText(ctx, prompt.Compile(*profile))
	if err != nil {
		appErr := uc.classifier.Classify(err)
		ctxzap.Error(ctx, "plan generation failed",
			zap.String("kind", string(appErr.Kind)),
			zap.Error(err),
		)
		return nil, appErr
	}

	plan := planparser.Parse(raw)

	ctxzap.Info(ctx, "plan generated",
		zap.Duration("duration", time.Since(started)),
		zap.Int("raw_length", len(raw)),
	)

	return plan, nil
}
