package domain

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"
)

// Validatable is implemented by every entity that can be persisted.
type Validatable interface {
	Validate() error
}

// fieldErrors collects FieldError values across a Validate call.
type fieldErrors []FieldError

func (fe *fieldErrors) add(field, message string) {
	*fe = append(*fe, FieldError{Field: field, Message: message})
}

func (fe fieldErrors) err() error {
	if len(fe) == 0 {
		return nil
	}
	return NewValidationErrors(fe)
}

// text checks a required free-text field.
func (fe *fieldErrors) text(field, value string, maxLen int) {
	v := strings.TrimSpace(value)
	if v == "" {
		fe.add(field, "required")
		return
	}
	fe.maxLen(field, v, maxLen)
}

// optText checks an optional free-text field.
func (fe *fieldErrors) optText(field string, value *string, maxLen int) {
	if value == nil {
		return
	}
	fe.maxLen(field, *value, maxLen)
}

func (fe *fieldErrors) maxLen(field, value string, maxLen int) {
	if maxLen > 0 && utf8.RuneCountInString(value) > maxLen {
		fe.add(field, fmt.Sprintf("max %d characters", maxLen))
	}
}

// distinct rejects identical Czech and English variants of the same field.
func (fe *fieldErrors) distinct(field, cs, en string) {
	cs, en = strings.TrimSpace(cs), strings.TrimSpace(en)
	if cs != "" && cs == en {
		fe.add(field, "czech and english values must be different")
	}
}

// distinctOpt is distinct for optional pairs; it applies only when both are present.
func (fe *fieldErrors) distinctOpt(field string, cs, en *string) {
	if cs == nil || en == nil {
		return
	}
	fe.distinct(field, *cs, *en)
}

func (fe *fieldErrors) ref(field string, id int64) {
	if id <= 0 {
		fe.add(field, "required")
	}
}

func (fe *fieldErrors) optRef(field string, id *int64) {
	if id != nil && *id <= 0 {
		fe.add(field, "must be a positive id")
	}
}

// webURL checks for an absolute http(s) URL.
func (fe *fieldErrors) webURL(field, value string) {
	u, err := url.Parse(strings.TrimSpace(value))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		fe.add(field, "must be an absolute http(s) URL")
	}
}

func (fe *fieldErrors) optWebURL(field string, value *string) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return
	}
	fe.webURL(field, *value)
}

func (fe *fieldErrors) optEmail(field string, value *string) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return
	}
	if _, err := mail.ParseAddress(*value); err != nil {
		fe.add(field, "invalid email address")
	}
}

// priceRange checks a non-negative min/max pair.
func (fe *fieldErrors) priceRange(field string, minV, maxV *int64) {
	if minV != nil && *minV < 0 {
		fe.add(field+"_min", "must be >= 0")
	}
	if maxV != nil && *maxV < 0 {
		fe.add(field+"_max", "must be >= 0")
	}
	if minV != nil && maxV != nil && *minV > *maxV {
		fe.add(field, "min must not exceed max")
	}
}
