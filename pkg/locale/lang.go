package locale

import "strings"

// LanguageCode identifies a UI language. Only members of the supported set
// are ever selected as the active locale.
type LanguageCode string

const (
	English LanguageCode = "en"
	Hindi   LanguageCode = "hi"

	// Default is selected when neither the stored preference nor the
	// browser hint names a supported language.
	Default = English
)

// supported is the closed set of UI languages, in display order.
var supported = [...]LanguageCode{English, Hindi}

// Supported returns the supported language codes in display order.
func Supported() []LanguageCode {
	out := make([]LanguageCode, len(supported))
	copy(out, supported[:])
	return out
}

// IsSupported reports whether c is a member of the supported set.
func (c LanguageCode) IsSupported() bool {
	for _, s := range supported {
		if c == s {
			return true
		}
	}
	return false
}

func (c LanguageCode) String() string {
	return string(c)
}

// Parse returns the language code for value when it exactly matches a
// supported code. Matching is case-sensitive and does not trim whitespace:
// a stored "HI" or " hi" is not a valid preference.
func Parse(value string) (LanguageCode, bool) {
	c := LanguageCode(value)
	if !c.IsSupported() {
		return "", false
	}
	return c, true
}

// PrimarySubtag returns the part of a language tag before the first hyphen,
// e.g. "en" for "en-US". A tag without a hyphen is returned as-is.
func PrimarySubtag(tag string) string {
	primary, _, _ := strings.Cut(tag, "-")
	return primary
}
