package handlers

import (
	"context"
	"fmt"
)

// Message represents a normalized Telegram command, typed or sent from a button
type Message struct {
	ChatID     int64
	UserID     int64
	MessageID  int
	Command    string
	Args       string
	CallbackID string
}

// Handler processes one bot command
type Handler interface {
	Handle(ctx context.Context, msg *Message) error

	// Command returns the command name without the leading slash
	Command() string
}

// BaseHandler provides common functionality for all handlers
type BaseHandler struct {
	command       string
	messageSender *MessageSender
}

// Command implements Handler
func (h *BaseHandler) Command() string {
	return h.command
}

// sendMessage is a convenience wrapper for messageSender.Send
func (h *BaseHandler) sendMessage(chatID int64, text string, markup interface{}) {
	if h.messageSender != nil {
		h.messageSender.Send(chatID, text, markup)
	}
}

// SessionID maps a chat onto its plan session.
func SessionID(chatID int64) string {
	return fmt.Sprintf("telegram-%d", chatID)
}
