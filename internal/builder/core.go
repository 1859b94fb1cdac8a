package builder

import (
	"context"
	"fmt"

	"github.com/futig/fitplan-backend/internal/config"
	"github.com/futig/fitplan-backend/internal/entity"
	"github.com/futig/fitplan-backend/internal/integration/elevenlabs"
	"github.com/futig/fitplan-backend/internal/integration/gemini"
	"github.com/futig/fitplan-backend/internal/integration/ollama"
	"github.com/futig/fitplan-backend/internal/pkg/validator"
	"github.com/futig/fitplan-backend/internal/usecase/assets"
	"github.com/futig/fitplan-backend/internal/usecase/library"
	"github.com/futig/fitplan-backend/internal/usecase/plan"
	"github.com/futig/fitplan-backend/internal/usecase/session"
	"github.com/futig/fitplan-backend/internal/usecase/speech"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Core holds the generation pipeline shared by every front-end.
type Core struct {
	Config *config.Config
	Logger *zap.Logger

	Plans    *plan.PlanUsecase
	Assets   *assets.AssetsUsecase
	Speech   *speech.SpeechUsecase
	Sessions *session.SessionUsecase
	Library  *library.LibraryUsecase

	store *session.Store
	db    *pgxpool.Pool
}

// NewCore wires connectors, repositories and usecases from cfg.
func NewCore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Core, error) {
	textCred, imageCred, speechCred := credentials(cfg)

	var (
		textGen     plan.TextGenerator
		imageGen    assets.ImageGenerator
		synthesizer speech.Synthesizer
	)

	if cfg.EnableMocks {
		logger.Info("Using mock connectors for external services")
		textGen = gemini.NewMockTextConnector(logger)
		imageGen = gemini.NewMockImageConnector(logger)
		synthesizer = elevenlabs.NewMockConnector(logger)
	} else {
		logger.Info("Using real connectors for external services", zap.String("text_backend", cfg.TextBackend))

		geminiClient := gemini.NewClient(cfg.GeminiCfg, logger)
		imageGen = gemini.NewImageConnector(geminiClient)
		synthesizer = elevenlabs.NewConnector(cfg.ElevenLabsCfg, logger)

		switch cfg.TextBackend {
		case config.TextBackendOllama:
			conn, err := ollama.NewConnector(cfg.OllamaCfg, logger)
			if err != nil {
				return nil, fmt.Errorf("create ollama connector: %w", err)
			}
			textGen = conn
		default:
			textGen = gemini.NewTextConnector(geminiClient)
		}
	}

	repo, db, err := setupPlanRepository(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	v := validator.New(cfg.LimitsCfg)

	planUC := plan.NewUsecase(textCred, textGen, v, logger)
	assetsUC := assets.NewUsecase(imageCred, imageGen, v, cfg.AssetsCfg, logger)
	speechUC := speech.NewUsecase(speechCred, synthesizer, v, cfg.ElevenLabsCfg.DefaultVoiceID, logger)
	libraryUC := library.NewUsecase(repo, v, logger)

	store := session.NewStore(cfg.SessionCfg, logger)
	sessionUC := session.NewUsecase(store, planUC, libraryUC, textCred, logger)

	logger.Info("Use cases initialized",
		zap.Bool("text_credential", textCred.Present()),
		zap.Bool("image_credential", imageCred.Present()),
		zap.Bool("speech_credential", speechCred.Present()),
	)

	return &Core{
		Config:   cfg,
		Logger:   logger,
		Plans:    planUC,
		Assets:   assetsUC,
		Speech:   speechUC,
		Sessions: sessionUC,
		Library:  libraryUC,
		store:    store,
		db:       db,
	}, nil
}

// Close abandons in-flight plan requests and releases the database pool.
func (c *Core) Close() {
	c.store.Close()

	if c.db != nil {
		c.Logger.Info("Closing database connections")
		c.db.Close()
	}
}

// credentials copies the configured secrets into the values each usecase
// checks before calling out. Mock connectors need none.
func credentials(cfg *config.Config) (text, image, voice entity.Credential) {
	text = entity.Credential{Service: entity.ServiceGemini, EnvVar: "GEMINI_API_KEY", Value: cfg.GeminiCfg.APIKey}
	if cfg.TextBackend == config.TextBackendOllama {
		text = entity.Credential{Service: entity.ServiceOllama, EnvVar: "OLLAMA_HOST", Value: cfg.OllamaCfg.Host, Optional: true}
	}
	image = entity.Credential{Service: entity.ServiceGemini, EnvVar: "GEMINI_API_KEY", Value: cfg.GeminiCfg.APIKey}
	voice = entity.Credential{Service: entity.ServiceElevenLabs, EnvVar: "ELEVENLABS_API_KEY", Value: cfg.ElevenLabsCfg.APIKey}

	if cfg.EnableMocks {
		text.Optional, image.Optional, voice.Optional = true, true, true
	}

	return text, image, voice
}
