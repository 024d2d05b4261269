package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// Bind decodes a request into v.
type Bind func(r *http.Request, v any) error

const maxJSONBody = 1 << 20

// BindJSON decodes an application/json body strictly: unknown fields,
// trailing data and bodies over 1MB are rejected.
func BindJSON() Bind {
	return func(r *http.Request, v any) error {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "application/json" {
			return ErrUnsupportedMediaType
		}

		// The limit is hit the same way with or without Content-Length,
		// including chunked bodies.
		dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxJSONBody))
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			var tooLarge *http.MaxBytesError
			switch {
			case errors.As(err, &tooLarge):
				return errors.Join(ErrRequestTooLarge, err)
			case errors.Is(err, io.EOF):
				return errors.Join(ErrBadRequest, errors.New("empty body"))
			}
			return errors.Join(ErrBadRequest, fmt.Errorf("invalid json: %w", err))
		}
		if dec.More() {
			return errors.Join(ErrBadRequest, errors.New("unexpected data after json object"))
		}
		return nil
	}
}
