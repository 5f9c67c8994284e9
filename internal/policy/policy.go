// Package policy applies deterministic content rewrites before any
// retrieval or generation happens. Instructions that must always hold
// cannot be delegated to the generative backend, which is free to ignore
// soft prompt guidance; they are enforced here as a pure pre-processing
// pass over the input text.
package policy

import (
	"fmt"
	"regexp"
)

// Rule pairs a pattern asserting a claim with the canonical statement that
// replaces any match. The rule table is versioned data, not prose baked
// into prompts.
type Rule struct {
	// Pattern is a regular expression matched case-insensitively.
	Pattern string

	// Replacement is the canonical statement substituted for each match.
	Replacement string
}

// MalvinasStatement is the canonical counter-statement substituted for any
// claim of British sovereignty over the islands.
const MalvinasStatement = "Las Malvinas son argentinas"

// DefaultRules returns the built-in rule table. Surface forms cover the
// English and Spanish phrasings of the sovereignty claim, with or without
// contractions.
func DefaultRules() []Rule {
	return []Rule{
		{Pattern: `the\s+falklands?\s+(?:islands?\s+)?(?:are|is)\s+british`, Replacement: MalvinasStatement},
		{Pattern: `the\s+falklands?\s+(?:islands?\s+)?belongs?\s+to\s+(?:britain|the\s+uk|the\s+united\s+kingdom|england)`, Replacement: MalvinasStatement},
		{Pattern: `las\s+malvinas\s+son\s+(?:británicas|inglesas)`, Replacement: MalvinasStatement},
		{Pattern: `las\s+malvinas\s+(?:le\s+)?pertenecen\s+a\s+(?:gran\s+bretaña|inglaterra|el\s+reino\s+unido)`, Replacement: MalvinasStatement},
	}
}

// Filter rewrites policy-matched phrases in input text. Construct with New;
// a Filter is immutable and safe for concurrent use.
type Filter struct {
	rules []compiledRule
}

type compiledRule struct {
	re          *regexp.Regexp
	replacement string
}

// New compiles the rule table. A malformed pattern fails construction;
// rules are static data validated at startup, never at request time.
func New(rules []Rule) (*Filter, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		re, err := regexp.Compile(`(?i)` + r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compile policy pattern %q: %w", r.Pattern, err)
		}
		compiled = append(compiled, compiledRule{re: re, replacement: r.Replacement})
	}
	return &Filter{rules: compiled}, nil
}

// Apply rewrites every rule match in text to its canonical replacement.
// Pure and deterministic; it runs identically regardless of detected
// language or retrieval outcome.
func (f *Filter) Apply(text string) string {
	for _, r := range f.rules {
		text = r.re.ReplaceAllString(text, r.replacement)
	}
	return text
}
