package i18n

import (
	"cmp"
	"net/http"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength caps the header before parsing. RFC 7231 sets no
// limit; 4KB is far above anything a browser sends.
const maxAcceptLanguageLength = 4096

type weightedTag struct {
	tag string
	q   float64
}

// parseAcceptLanguage orders tags by quality, keeping header order for ties.
// Wildcards and q=0 entries are dropped. Tags are returned as sent.
func parseAcceptLanguage(header string) []weightedTag {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []weightedTag
	for part := range strings.SplitSeq(header, ",") {
		tag, params, _ := strings.Cut(part, ";")
		tag = strings.TrimSpace(tag)
		if tag == "" || tag == "*" {
			continue
		}

		q := 1.0
		if p := strings.TrimSpace(params); strings.HasPrefix(p, "q=") {
			if v, err := strconv.ParseFloat(p[2:], 64); err == nil && v >= 0 && v <= 1 {
				q = v
			}
		}
		if q == 0 {
			continue
		}
		tags = append(tags, weightedTag{tag: tag, q: q})
	}

	slices.SortStableFunc(tags, func(a, b weightedTag) int {
		return cmp.Compare(b.q, a.q)
	})
	return tags
}

// HintFromRequest returns the browser's most preferred language tag from
// Accept-Language, the server-side counterpart of navigator.language.
// Returns "" when the header is absent or has no usable tag.
func HintFromRequest(r *http.Request) string {
	if r == nil {
		return ""
	}
	tags := parseAcceptLanguage(r.Header.Get("Accept-Language"))
	if len(tags) == 0 {
		return ""
	}
	return tags[0].tag
}
