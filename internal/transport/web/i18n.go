package web

import "github.com/heartmarshall/adaptation-catalog/internal/domain"

// messages holds the interface strings of the public site.
var messages = map[domain.Locale]map[string]string{
	domain.LocaleCS: {
		"site.title":         "Katalog adaptačních opatření",
		"nav.home":           "Všechna opatření",
		"nav.language":       "English",
		"group.empty":        "Skupina zatím neobsahuje žádná opatření.",
		"measure.group":      "Skupina",
		"measure.abstract":   "Shrnutí",
		"measure.desc":       "Popis",
		"measure.env":        "Prostředí",
		"measure.env2":       "Další prostředí",
		"measure.potential":  "Adaptační potenciál",
		"measure.size":       "Velikost",
		"measure.difficulty": "Náročnost",
		"measure.quant":      "Kvantifikace",
		"measure.horizon":    "Časový horizont",
		"measure.unit":       "Jednotka",
		"measure.conditions": "Podmínky realizace",
		"measure.impact":     "Dopad",
		"measure.impacts":    "Další dopady",
		"measure.conflict":   "Možné konflikty",
		"measure.price":      "Orientační cena",
		"measure.adv":        "Výhody",
		"measure.disadv":     "Nevýhody",
		"measure.links":      "Související opatření",
		"measure.sdg":        "Cíle udržitelného rozvoje",
		"measure.examples":   "Příklady realizace",
		"measure.images":     "Fotografie",
		"measure.refs":       "Zdroje",
		"measure.contacts":   "Kontakty",
		"measure.comment":    "Poznámka",
		"measure.history":    "Historie",
		"error.notfound":     "Stránka nebyla nalezena.",
		"error.internal":     "Něco se pokazilo. Zkuste to prosím později.",
	},
	domain.LocaleEN: {
		"site.title":         "Catalog of adaptation measures",
		"nav.home":           "All measures",
		"nav.language":       "Česky",
		"group.empty":        "This group has no measures yet.",
		"measure.group":      "Group",
		"measure.abstract":   "Abstract",
		"measure.desc":       "Description",
		"measure.env":        "Environment",
		"measure.env2":       "Secondary environments",
		"measure.potential":  "Adaptation potential",
		"measure.size":       "Size",
		"measure.difficulty": "Difficulty",
		"measure.quant":      "Quantification",
		"measure.horizon":    "Time horizon",
		"measure.unit":       "Unit",
		"measure.conditions": "Conditions",
		"measure.impact":     "Impact",
		"measure.impacts":    "Other impacts",
		"measure.conflict":   "Possible conflicts",
		"measure.price":      "Indicative price",
		"measure.adv":        "Advantages",
		"measure.disadv":     "Disadvantages",
		"measure.links":      "Related measures",
		"measure.sdg":        "Sustainable development goals",
		"measure.examples":   "Examples",
		"measure.images":     "Photos",
		"measure.refs":       "References",
		"measure.contacts":   "Contacts",
		"measure.comment":    "Comment",
		"measure.history":    "History",
		"error.notfound":     "Page not found.",
		"error.internal":     "Something went wrong. Please try again later.",
	},
}

// translate returns the message for key, or the key itself if it is missing.
func translate(locale domain.Locale, key string) string {
	if msg, ok := messages[locale][key]; ok {
		return msg
	}
	return key
}

// other returns the locale the language switch offers.
func other(locale domain.Locale) domain.Locale {
	if locale == domain.LocaleCS {
		return domain.LocaleEN
	}
	return domain.LocaleCS
}
