package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Default is the language key used for values without
// language tag.
const Default = ""

// NormalizeLang provides the syntactically normalized form of a
// BCP 47 language tag, for example en-US for EN-us. Deprecated
// codes like iw are kept. Tags which cannot be parsed are used
// verbatim (trimmed).
func NormalizeLang(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return Default
	}
	t, err := language.Raw.Parse(tag)
	if err != nil {
		return tag
	}
	return t.String()
}
