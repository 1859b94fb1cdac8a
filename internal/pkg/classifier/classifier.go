// Package classifier turns raw upstream and validation failures into entity.AppError values.
package classifier

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/futig/fitplan-backend/internal/entity"
	pkgHTTP "github.com/futig/fitplan-backend/pkg/http"
	"google.golang.org/genai"
)

// credentialHints are substrings of upstream error text that indicate a rejected credential.
var credentialHints = []string{"API key", "API_KEY_INVALID"}

// authStatusText matches a 401 or 403 status quoted in error text, not digits inside
// a port or a byte count.
var authStatusText = regexp.MustCompile(`(^|[^\w:.])40[13]\b`)

// Classifier classifies failures of calls to one upstream service.
type Classifier struct {
	service entity.Service
	envVar  string
	action  string
}

// New returns a classifier for a service whose credential is read from envVar.
// action names the product of the call in user messages ("fitness plan", "speech").
func New(cred entity.Credential, action string) *Classifier {
	return &Classifier{
		service: cred.Service,
		envVar:  cred.EnvVar,
		action:  action,
	}
}

// MissingCredential is returned before any network call when the credential is absent.
func (c *Classifier) MissingCredential() *entity.AppError {
	return &entity.AppError{
		Kind:       entity.ErrorKindMissingCredential,
		Message:    fmt.Sprintf("%s API key not configured. Please add %s to your environment variables.", c.service.DisplayName(), c.envVar),
		NeedsSetup: true,
		Err:        entity.ErrMissingCredential,
	}
}

// Classify maps err to an AppError. Rules in order: missing credential,
// rejected credential, validation failure, anything else is an upstream failure.
// An error that is already classified is returned unchanged.
func (c *Classifier) Classify(err error) *entity.AppError {
	if err == nil {
		return nil
	}

	var appErr *entity.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, entity.ErrMissingCredential):
		return c.MissingCredential()

	case isAuthStatus(err):
		return c.invalidCredential(err)

	case errors.Is(err, entity.ErrMissingField):
		return &entity.AppError{
			Kind:    entity.ErrorKindValidation,
			Message: "Missing required fields",
			Details: err.Error(),
			Err:     err,
		}

	case errors.Is(err, entity.ErrInvalidParameter):
		return &entity.AppError{
			Kind:    entity.ErrorKindValidation,
			Message: "Invalid request parameters",
			Details: err.Error(),
			Err:     err,
		}

	case mentionsCredential(err):
		return c.invalidCredential(err)
	}

	return &entity.AppError{
		Kind:    entity.ErrorKindUpstream,
		Message: fmt.Sprintf("Failed to generate %s. Please try again.", c.action),
		Details: err.Error(),
		Err:     err,
	}
}

func (c *Classifier) invalidCredential(err error) *entity.AppError {
	return &entity.AppError{
		Kind:       entity.ErrorKindInvalidCredential,
		Message:    fmt.Sprintf("%s API key is invalid or missing. Please check your %s environment variable.", c.service.DisplayName(), c.envVar),
		Details:    err.Error(),
		NeedsSetup: true,
		Err:        err,
	}
}

// IsTransient reports whether a failed call may succeed if repeated unchanged.
// It is used as the retry predicate of the upstream connectors.
func IsTransient(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if isAuthStatus(err) || mentionsCredential(err) {
		return false
	}

	var httpErr *pkgHTTP.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Temporary()
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
	}

	var netErr *pkgHTTP.NetworkError
	if errors.As(err, &netErr) {
		return true
	}

	// SDK clients surface transport failures (reset, EOF, refused) as *url.Error.
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

func isAuthStatus(err error) bool {
	var httpErr *pkgHTTP.HTTPError
	if errors.As(err, &httpErr) {
		return isAuthCode(httpErr.StatusCode)
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return isAuthCode(apiErr.Code)
	}

	return false
}

func isAuthCode(code int) bool {
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}

func mentionsCredential(err error) bool {
	msg := err.Error()
	for _, hint := range credentialHints {
		if strings.Contains(msg, hint) {
			return true
		}
	}
	return authStatusText.MatchString(msg)
}
