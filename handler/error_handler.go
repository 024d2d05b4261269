package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/areacalc/pkg/i18n"
	"github.com/dmitrymomot/areacalc/pkg/logger"
	"github.com/dmitrymomot/areacalc/pkg/requestid"
)

// ErrorPageParams is passed to the HTML error page component.
type ErrorPageParams struct {
	StatusCode int
	Code       string
	Message    string
	RequestID  string
}

type ErrorHandlerConfig struct {
	// ErrorPage renders errors for browser navigations. Plain text is used when nil.
	ErrorPage func(ErrorPageParams) templ.Component
}

// PlainErrorHandler writes the status text of err's status code.
func PlainErrorHandler(ctx Context, err error) {
	status, _ := errorDetail(err)
	http.Error(ctx.ResponseWriter(), http.StatusText(status), status)
}

// NewErrorHandler logs err with the request ID and answers with a message
// translated for the request's locale: JSON for API calls, the configured
// error page otherwise.
func NewErrorHandler[C Context](log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[C] {
	if log == nil {
		log = logger.Discard()
	}

	return func(ctx C, err error) {
		r := ctx.Request()
		status, detail := errorDetail(err)
		detail.Message = localizedMessage(ctx, detail)

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(ctx, level, "request error",
			logger.Component("http"),
			logger.Error(err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		switch {
		case wantsJSON(r):
			resp := jsonResponse{status: status, body: JSONResponse{Error: detail}}
			if rerr := resp.Render(ctx.ResponseWriter(), r); rerr != nil {
				log.ErrorContext(ctx, "failed to render json error", logger.Error(rerr))
			}
			return
		case cfg.ErrorPage == nil:
			http.Error(ctx.ResponseWriter(), detail.Message, status)
			return
		}

		page := cfg.ErrorPage(ErrorPageParams{
			StatusCode: status,
			Code:       detail.Code,
			Message:    detail.Message,
			RequestID:  requestid.FromContext(ctx),
		})
		if rerr := TemplWithStatus(page, status).Render(ctx.ResponseWriter(), r); rerr != nil {
			log.ErrorContext(ctx, "failed to render error page", logger.Error(rerr))
			http.Error(ctx.ResponseWriter(), detail.Message, status)
		}
	}
}

// localizedMessage looks up "errors.<code>" in the request's i18n config.
func localizedMessage(ctx Context, detail *ErrorDetail) string {
	cfg, ok := i18n.ConfigFromContext(ctx)
	if !ok {
		return detail.Message
	}
	key := "errors." + detail.Code
	if msg := cfg.T(key); msg != key {
		return msg
	}
	return detail.Message
}

func wantsJSON(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/") ||
		strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}
