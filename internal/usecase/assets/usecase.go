package assets

import (
	"context"
	"sync"
	"time"

	"github.com/futig/fitplan-backend/internal/config"
	"github.com/futig/fitplan-backend/internal/entity"
	"github.com/futig/fitplan-backend/internal/pkg/classifier"
	"github.com/futig/fitplan-backend/internal/pkg/logger"
	"github.com/futig/fitplan-backend/internal/pkg/prompt"
	"github.com/futig/fitplan-backend/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AssetsUsecase generates one image per exercise or meal. A failing item
// degrades to its placeholder and never affects the other items.
type AssetsUsecase struct {
	credential  entity.Credential
	generator   ImageGenerator
	validator   *validator.Validator
	classifier  *classifier.Classifier
	concurrency int
	itemTimeout time.Duration
	logger      *zap.Logger
}

func NewUsecase(
	credential entity.Credential,
	generator ImageGenerator,
	validator *validator.Validator,
	cfg config.AssetsConfig,
	logger *zap.Logger,
) *AssetsUsecase {
	return &AssetsUsecase{
		credential:  credential,
		generator:   generator,
		validator:   validator,
		classifier:  classifier.New(credential, "images"),
		concurrency: cfg.Concurrency,
		itemTimeout: cfg.ItemTimeout,
		logger:      logger,
	}
}

// Generate returns an artifact for every requested item. The only errors are a
// missing credential, which comes together with the all-placeholder result, and
// a validation failure (nil result).
func (uc *AssetsUsecase) Generate(ctx context.Context, req *entity.AssetRequest) (entity.AssetResult, error) {
	ctx = logger.WithAction(ctx, "generate_assets")

	if req == nil {
		req = &entity.AssetRequest{}
	}

	if !uc.credential.Present() {
		items := req.Items()
		ctxzap.Warn(ctx, "credential not configured, using placeholders",
			zap.String("env_var", uc.credential.EnvVar),
			zap.Int("items", len(items)),
		)
		return Placeholders(items), uc.classifier.MissingCredential()
	}

	if err := uc.validator.ValidateAssetRequest(req); err != nil {
		return nil, uc.classifier.Classify(err)
	}

	items := req.Items()

	result := uc.generateAll(ctx, items)

	ctxzap.Info(ctx, "assets generated",
		zap.Int("items", len(result)),
		zap.Int("placeholders", result.Placeholders()),
	)

	return result, nil
}

// Placeholders maps every item to its placeholder artifact.
func Placeholders(items []string) entity.AssetResult {
	result := make(entity.AssetResult, len(items))
	for _, item := range items {
		result[item] = entity.PlaceholderArtifact(item)
	}
	return result
}

func (uc *AssetsUsecase) generateAll(ctx context.Context, items []string) entity.AssetResult {
	var mu sync.Mutex
	result := make(entity.AssetResult, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)

	for _, item := range items {
		g.Go(func() error {
			artifact := uc.generateOne(gctx, item)

			mu.Lock()
			result[item] = artifact
			mu.Unlock()

			return nil
		})
	}

	_ = g.Wait() // item failures are absorbed, never abort the batch

	return result
}

// generateOne never fails: every failure is logged and resolved to the placeholder.
func (uc *AssetsUsecase) generateOne(ctx context.Context, item string) (artifact entity.Artifact) {
	ctx = logger.AddFields(ctx, zap.String("item", item))

	defer func() {
		if r := recover(); r != nil {
			ctxzap.Error(ctx, "image generation panicked", zap.Any("panic", r))
			artifact = entity.PlaceholderArtifact(item)
		}
	}()

	if err := ctx.Err(); err != nil {
		ctxzap.Warn(ctx, "batch cancelled before item started", zap.Error(err))
		return entity.PlaceholderArtifact(item)
	}

	itemCtx, cancel := context.WithTimeout(ctx, uc.itemTimeout)
	defer cancel()

	image, err := uc.generator.GenerateImage(itemCtx, prompt.ImageRequest(item))
	switch {
	case err != nil:
		ctxzap.Warn(ctx, "image generation failed, using placeholder", zap.Error(err))
		return entity.PlaceholderArtifact(item)
	case image == nil || len(image.Data) == 0:
		ctxzap.Warn(ctx, "no image in response, using placeholder")
		return entity.PlaceholderArtifact(item)
	}

	return entity.ImageArtifact(image.MIMEType, image.Data)
}
