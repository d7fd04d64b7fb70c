// Package content holds the poster's static copy in English and Spanish,
// the terms text, and the fixed lists of dots shown on the poster.
package content

import (
	"strings"

	"golang.org/x/text/language"
)

// Lang is a supported display language.
type Lang string

const (
	English Lang = "en"
	Spanish Lang = "es"
)

// DefaultLang is used when nothing else is configured.
const DefaultLang = English

var (
	supported = []language.Tag{language.English, language.Spanish}
	matcher   = language.NewMatcher(supported)
)

// ParseLang maps a BCP 47 string such as "es-AR" or "EN" to the closest
// supported language. Unknown or empty input yields DefaultLang.
func ParseLang(s string) Lang {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultLang
	}
	tag, err := language.Parse(s)
	if err != nil {
		return DefaultLang
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return DefaultLang
	}
	return langFromTag(supported[idx])
}

// Valid reports whether l is a supported language.
func (l Lang) Valid() bool {
	return l == English || l == Spanish
}

// Toggle returns the other language.
func (l Lang) Toggle() Lang {
	if l == Spanish {
		return English
	}
	return Spanish
}

// Label returns the toggle button text, the language code in upper case.
func (l Lang) Label() string {
	return strings.ToUpper(string(l))
}

// Tag returns the language tag for l.
func (l Lang) Tag() language.Tag {
	if l == Spanish {
		return language.Spanish
	}
	return language.English
}

func langFromTag(t language.Tag) Lang {
	if t == language.Spanish {
		return Spanish
	}
	return English
}
