package locale

import "errors"

var (
	// ErrNotFound is returned by a Store when no value exists for the key.
	// It is not a failure: the resolver treats it as an absent preference.
	ErrNotFound = errors.New("locale: preference not found")

	// ErrStoreAccess tags any failure while reading the preference store.
	// The resolver recovers it internally and only reports it in logs.
	ErrStoreAccess = errors.New("locale: preference store access failed")

	// ErrStoreUnavailable is joined with ErrStoreAccess when no store is configured.
	ErrStoreUnavailable = errors.New("locale: preference store unavailable")

	// ErrInvalidLanguage is returned when writing a value outside the supported set.
	ErrInvalidLanguage = errors.New("locale: unsupported language")

	// ErrEmptyKey is returned by stores for an empty key.
	ErrEmptyKey = errors.New("locale: empty preference key")
)
