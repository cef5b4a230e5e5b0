// Package i18n holds the UI strings for each supported locale.
package i18n

import (
	"golang.org/x/text/language"
)

// Locale is a supported UI language.
type Locale string

const (
	Kazakh  Locale = "kk"
	Russian Locale = "ru"
	English Locale = "en"
)

// Supported lists the locales in display order.
var Supported = []Locale{Kazakh, Russian, English}

// ParseLocale accepts any BCP 47 tag whose base language is supported,
// so "ru-RU" resolves to Russian.
func ParseLocale(s string) (Locale, bool) {
	if s == "" {
		return "", false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	for _, l := range Supported {
		if base.String() == string(l) {
			return l, true
		}
	}
	return "", false
}

// T returns the translation of key, falling back to English and then to the
// key itself.
func T(locale Locale, key Key) string {
	if s, ok := catalogs[locale][key]; ok {
		return s
	}
	if s, ok := catalogs[English][key]; ok {
		return s
	}
	return string(key)
}

// Translator binds T to one locale for templates.
type Translator struct {
	Locale Locale
}

// T translates key in the bound locale. Unknown strings are returned as-is.
func (t Translator) T(key string) string {
	return T(t.Locale, Key(key))
}
