package locale

import "context"

// PreferenceKey is the fixed key under which the preferred UI language is persisted.
const PreferenceKey = "calculatorPreferredLanguage"

// Store is a durable key-value store the resolver reads the preference from.
// Get returns ErrNotFound when the key holds no value.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
}

// Writer is the write side of a preference store.
type Writer interface {
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// ReadWriter combines Store and Writer.
type ReadWriter interface {
	Store
	Writer
}

// StoreFunc adapts a function to the Store interface.
type StoreFunc func(ctx context.Context, key string) (string, error)

// Get implements Store.
func (f StoreFunc) Get(ctx context.Context, key string) (string, error) {
	return f(ctx, key)
}

// SavePreference validates lang and writes it under PreferenceKey.
// Values outside the supported set are rejected with ErrInvalidLanguage
// so the store never holds a preference the resolver would ignore.
func SavePreference(ctx context.Context, w Writer, lang string) (LanguageCode, error) {
	code, ok := Parse(lang)
	if !ok {
		return "", ErrInvalidLanguage
	}
	if err := w.Set(ctx, PreferenceKey, code.String()); err != nil {
		return "", err
	}
	return code, nil
}

// ClearPreference removes the stored preference.
func ClearPreference(ctx context.Context, w Writer) error {
	return w.Delete(ctx, PreferenceKey)
}
