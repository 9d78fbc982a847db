package i18n

import (
	"golang.org/x/text/language"
)

// Locale is a two-letter display language code.
type Locale string

const (
	// English is the primary content language; every entity carries it.
	English Locale = "en"
	// Hindi is the secondary content language; its fields are optional.
	Hindi Locale = "hi"
)

// DefaultLocale is used when a request carries no usable locale preference.
const DefaultLocale = English

// supported lists the locales the site serves, in matcher priority order.
var supported = []Locale{English, Hindi}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Hindi,
})

// Supported returns the locales the site serves.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether code names a servable locale. Unknown codes
// are a routing-level 404, never a fallback to the default.
func IsSupported(code string) bool {
	for _, l := range supported {
		if string(l) == code {
			return true
		}
	}
	return false
}

// Negotiate picks the best supported locale for an Accept-Language header.
// An empty or unparseable header yields the default locale.
func Negotiate(acceptLanguage string) Locale {
	if acceptLanguage == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, idx, _ := matcher.Match(tags...)
	return supported[idx]
}

// LocalizedText carries one bilingual field pair. En is mandatory on every
// entity; Hi is optional.
type LocalizedText struct {
	En string `json:"en"`
	Hi string `json:"hi,omitempty"`
}

// Text is a convenience constructor for seed data and handlers.
func Text(en, hi string) LocalizedText {
	return LocalizedText{En: en, Hi: hi}
}

// Resolve returns the single display string for t in the given locale.
//
// The fallback is strict and three-tiered: the Hindi value when the locale
// is Hindi and a Hindi value exists, otherwise the English value, otherwise
// whatever Hindi value exists, otherwise the empty string. The result is
// always a plain string so no render path ever checks for absence.
func Resolve(locale Locale, t LocalizedText) string {
	if locale == Hindi && t.Hi != "" {
		return t.Hi
	}
	if t.En != "" {
		return t.En
	}
	return t.Hi
}

// Resolve is the method form of the package-level Resolve.
func (t LocalizedText) Resolve(locale Locale) string {
	return Resolve(locale, t)
}
