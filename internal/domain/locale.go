package domain

import "strings"

// Locale selects the language variant of a bilingual field.
type Locale string

const (
	LocaleCS Locale = "cs"
	LocaleEN Locale = "en"
)

// SupportedLocales lists the locales the catalog is published in, default first.
var SupportedLocales = []Locale{LocaleEN, LocaleCS}

func (l Locale) String() string { return string(l) }

// ParseLocale maps a language tag to a supported locale.
// "cs" and its regional variants map to Czech; anything else maps to English.
func ParseLocale(tag string) Locale {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "cs" || strings.HasPrefix(tag, "cs-") || strings.HasPrefix(tag, "cs_") {
		return LocaleCS
	}
	return LocaleEN
}

// Localize returns cs for the Czech locale and en for every other locale.
func Localize(locale Locale, cs, en string) string {
	if locale == LocaleCS {
		return cs
	}
	return en
}

// LocalizeOpt is Localize for optional fields. A missing value renders as "".
func LocalizeOpt(locale Locale, cs, en *string) string {
	if locale == LocaleCS {
		return deref(cs)
	}
	return deref(en)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
