package shell

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/dmitrymomot/areacalc/pkg/locale"
)

// LanguageOption describes one entry of the language switcher.
type LanguageOption struct {
	Code        locale.LanguageCode `json:"code"`
	NativeName  string              `json:"native_name"`
	EnglishName string              `json:"english_name"`
	Active      bool                `json:"active"`
}

// LanguageOptions lists supported languages in their own script, marking active.
func LanguageOptions(active locale.LanguageCode) []LanguageOption {
	english := display.English.Languages()
	supported := locale.Supported()
	options := make([]LanguageOption, 0, len(supported))
	for _, code := range supported {
		tag := language.Make(code.String())
		native := display.Self.Name(tag)
		if native == "" {
			native = code.String()
		}
		options = append(options, LanguageOption{
			Code:        code,
			NativeName:  native,
			EnglishName: english.Name(tag),
			Active:      code == active,
		})
	}
	return options
}
