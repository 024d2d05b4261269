package i18n

import "errors"

var (
	ErrNilAdapter          = errors.New("translation adapter is nil")
	ErrNilParser           = errors.New("translation parser is nil")
	ErrEmptyPath           = errors.New("translation path is empty")
	ErrUnsupportedLanguage = errors.New("catalog contains an unsupported language")
	ErrEmptyLanguage       = errors.New("catalog contains an empty language code")
	ErrNilCatalog          = errors.New("catalog is nil")
	ErrMissingFallback     = errors.New("no catalog for the fallback language")

	// Parsing
	ErrParsingCancelled = errors.New("translation parsing cancelled")
	ErrFailedToParse    = errors.New("failed to parse translation content")
	ErrInvalidStructure = errors.New("translation content must map languages to key trees")

	// Loading
	ErrLoadingCancelled   = errors.New("loading translations cancelled")
	ErrFailedToReadFile   = errors.New("failed to read translation file")
	ErrFailedToReadDir    = errors.New("failed to read translation directory")
	ErrFailedToParseFile  = errors.New("failed to parse translation file")
	ErrEmptyFile          = errors.New("translation file is empty")
	ErrNoTranslationFiles = errors.New("no translation files found")
)
