package handlers

import (
	"context"
	"errors"

	"github.com/futig/fitplan-backend/internal/entity"
	"github.com/futig/fitplan-backend/internal/telegram/render"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity int

const (
	SeverityWarning ErrorSeverity = iota
	SeverityError
)

// String returns string representation of error severity
func (s ErrorSeverity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// HandlerError represents a structured error with user message and logging info
type HandlerError struct {
	Err         error
	UserMessage string
	LogMessage  string
	Severity    ErrorSeverity
}

// classifyHandlerError picks the chat message for a usecase error
func classifyHandlerError(err error) *HandlerError {
	if err == nil {
		return &HandlerError{
			UserMessage: render.ErrGeneric,
			LogMessage:  "unknown error",
			Severity:    SeverityWarning,
		}
	}

	var appErr *entity.AppError

	switch {
	case errors.Is(err, entity.ErrRequestInFlight):
		return &HandlerError{Err: err, UserMessage: render.MsgAlreadyBusy, LogMessage: "request in flight", Severity: SeverityWarning}
	case errors.Is(err, entity.ErrRetryDisabled):
		return &HandlerError{Err: err, UserMessage: render.ErrRetryDisabled, LogMessage: "retry disabled", Severity: SeverityWarning}
	case errors.Is(err, entity.ErrNothingToRetry):
		return &HandlerError{Err: err, UserMessage: render.MsgNothingToRun, LogMessage: "nothing to retry", Severity: SeverityWarning}
	case errors.Is(err, entity.ErrNoPlan), errors.Is(err, entity.ErrSessionNotFound):
		return &HandlerError{Err: err, UserMessage: render.MsgNoPlan, LogMessage: "no plan", Severity: SeverityWarning}
	case errors.As(err, &appErr):
		severity := SeverityError
		if appErr.Kind == entity.ErrorKindValidation {
			severity = SeverityWarning
		}
		return &HandlerError{Err: err, UserMessage: render.RenderError(appErr), LogMessage: "classified failure", Severity: severity}
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return &HandlerError{Err: err, UserMessage: render.ErrTimeout, LogMessage: "operation timed out", Severity: SeverityError}
	}

	return &HandlerError{
		Err:         err,
		UserMessage: render.ErrGeneric,
		LogMessage:  "handler error",
		Severity:    SeverityError,
	}
}

// HandleError logs err with its severity and sends the matching message
func (h *BaseHandler) HandleError(ctx context.Context, chatID int64, err error) {
	if err == nil {
		return
	}

	handlerErr := classifyHandlerError(err)

	switch handlerErr.Severity {
	case SeverityError:
		ctxzap.Error(ctx, handlerErr.LogMessage,
			zap.Error(handlerErr.Err),
			zap.Int64("chat_id", chatID),
		)
	case SeverityWarning:
		ctxzap.Warn(ctx, handlerErr.LogMessage,
			zap.Error(handlerErr.Err),
			zap.Int64("chat_id", chatID),
		)
	}

	h.sendMessage(chatID, handlerErr.UserMessage, nil)
}
