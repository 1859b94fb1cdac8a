package handlers

import (
	"context"
	"sync"

	"github.com/futig/fitplan-backend/internal/entity"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type fakeBot struct {
	mu       sync.Mutex
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeBot) texts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []string
	for _, c := range f.sent {
		if msg, ok := c.(tgbotapi.MessageConfig); ok {
			out = append(out, msg.Text)
		}
	}
	return out
}

func (f *fakeBot) last() tgbotapi.Chattable {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sent) == 0 {
		return nil
	}
	return f.sent[len(f.sent)-1]
}

type fakeSessions struct {
	opened    []string
	profile   *entity.Profile
	result    *entity.SessionDTO
	startErr  error
	awaitErr  error
	deleteErr error
	retried   bool
	deleted   string
}

func (f *fakeSessions) Open(_ context.Context, id string) *entity.SessionDTO {
	f.opened = append(f.opened, id)
	return &entity.SessionDTO{ID: id, State: entity.RequestStatusIdle}
}

func (f *fakeSessions) Get(_ context.Context, id string) (*entity.SessionDTO, error) {
	if f.result == nil {
		return nil, entity.ErrSessionNotFound
	}
	return f.result, nil
}

func (f *fakeSessions) Generate(_ context.Context, id string, profile *entity.Profile) (*entity.SessionDTO, error) {
	f.profile = profile
	if f.startErr != nil {
		return nil, f.startErr
	}
	return &entity.SessionDTO{ID: id, State: entity.RequestStatusLoading}, nil
}

func (f *fakeSessions) Retry(_ context.Context, id string) (*entity.SessionDTO, error) {
	f.retried = true
	if f.startErr != nil {
		return nil, f.startErr
	}
	return &entity.SessionDTO{ID: id, State: entity.RequestStatusLoading}, nil
}

func (f *fakeSessions) Await(_ context.Context, _ string) (*entity.SessionDTO, error) {
	return f.result, f.awaitErr
}

func (f *fakeSessions) Delete(_ context.Context, id string) error {
	f.deleted = id
	return f.deleteErr
}
