// Package handler adapts typed handler functions to net/http.
//
// A HandlerFunc receives a Context and a request value decoded by the
// configured binders, and returns a Response:
//
//	type setLanguageRequest struct {
//		Language string `json:"language"`
//	}
//
//	h := handler.Wrap(func(ctx handler.Context, req setLanguageRequest) handler.Response {
//		if req.Language == "" {
//			return handler.JSONError(handler.ErrBadRequest)
//		}
//		return handler.JSON(req)
//	}, handler.WithBinders[handler.Context, setLanguageRequest](handler.BindJSON()))
//
// Responses: JSON and JSONError (data/error envelope), Empty, and Templ for
// a-h/templ components. Errors returned by binders or Render go to the
// ErrorHandler; NewErrorHandler logs them and answers with a message
// translated through the request's i18n.Config ("errors.<code>").
package handler
