package web

import (
	"net/http"

	"golang.org/x/text/language"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

// LocaleCookie holds the visitor's chosen language.
const LocaleCookie = "lang"

// supported is ordered like domain.SupportedLocales.
var supported = []language.Tag{language.English, language.Czech}

var matcher = language.NewMatcher(supported)

// negotiator picks the locale of a request: the language cookie first, then
// Accept-Language, then the configured default.
type negotiator struct {
	fallback domain.Locale
}

func (n negotiator) locale(r *http.Request) domain.Locale {
	if c, err := r.Cookie(LocaleCookie); err == nil {
		if l, ok := parseSupported(c.Value); ok {
			return l
		}
	}

	if accept := r.Header.Get("Accept-Language"); accept != "" {
		tags, _, err := language.ParseAcceptLanguage(accept)
		if err == nil && len(tags) > 0 {
			_, idx, conf := matcher.Match(tags...)
			if conf != language.No {
				return domain.SupportedLocales[idx]
			}
		}
	}
	return n.fallback
}

// parseSupported accepts exactly the published locale codes.
func parseSupported(code string) (domain.Locale, bool) {
	for _, l := range domain.SupportedLocales {
		if code == l.String() {
			return l, true
		}
	}
	return "", false
}
