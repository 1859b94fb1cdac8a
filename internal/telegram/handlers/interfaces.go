package handlers

import (
	"context"

	"github.com/futig/fitplan-backend/internal/entity"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BotAPI is the part of *tgbotapi.BotAPI the handlers use.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// SessionUsecase drives one plan request per chat.
type SessionUsecase interface {
	Open(ctx context.Context, id string) *entity.SessionDTO
	Get(ctx context.Context, id string) (*entity.SessionDTO, error)
	Generate(ctx context.Context, id string, profile *entity.Profile) (*entity.SessionDTO, error)
	Retry(ctx context.Context, id string) (*entity.SessionDTO, error)
	Await(ctx context.Context, id string) (*entity.SessionDTO, error)
	Delete(ctx context.Context, id string) error
}

type AssetsUsecase interface {
	Generate(ctx context.Context, req *entity.AssetRequest) (entity.AssetResult, error)
}

type SpeechUsecase interface {
	NarratePlan(ctx context.Context, plan *entity.Plan, voiceID string) (*entity.Audio, error)
}
