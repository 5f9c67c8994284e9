package domain

import "strings"

// Language is a lowercase two-letter ISO 639-1 code, or LanguageUnknown.
// A detection call always yields exactly one of: a supported code, an
// unsupported code, or LanguageUnknown. Never empty.
type Language string

// LanguageUnknown is the sentinel for text whose language could not be
// determined. Downstream it is treated as detected-but-unverified, so
// translation proceeds rather than failing.
const LanguageUnknown Language = "unknown"

// Well-known languages.
const (
	LanguageEnglish Language = "en"
	LanguageSpanish Language = "es"
)

// NormalizeLanguage lowercases and trims a classifier output and returns
// LanguageUnknown for anything that is not a plausible two-letter code.
func NormalizeLanguage(raw string) Language {
	code := strings.ToLower(strings.TrimSpace(raw))
	code = strings.Trim(code, `."'`)
	if len(code) != 2 {
		return LanguageUnknown
	}
	for _, r := range code {
		if r < 'a' || r > 'z' {
			return LanguageUnknown
		}
	}
	return Language(code)
}

// LanguageSet is a set of supported languages.
type LanguageSet map[Language]bool

// NewLanguageSet builds a set from two-letter codes.
func NewLanguageSet(codes ...string) LanguageSet {
	set := make(LanguageSet, len(codes))
	for _, c := range codes {
		if lang := NormalizeLanguage(c); lang != LanguageUnknown {
			set[lang] = true
		}
	}
	return set
}

// Contains reports whether lang is in the set.
func (s LanguageSet) Contains(lang Language) bool {
	return s[lang]
}
