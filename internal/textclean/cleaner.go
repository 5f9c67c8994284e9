// Package textclean strips boilerplate from web-scraped article content.
// The pattern tables target WordPress-style blogs (comment forms, share
// prompts, category listings) but are injectable, so alternative sources
// can supply their own sets without touching process-wide state.
package textclean

import (
	"fmt"
	"regexp"
	"strings"
)

// NoUsableContent is the sentinel returned when cleaning leaves less than
// the configured minimum. It lets callers distinguish "cleaned to nothing"
// from "never had content".
const NoUsableContent = "No usable content found."

// Config holds the pattern tables for a Cleaner. It is consumed once at
// construction; the resulting Cleaner is immutable and safe for concurrent use.
type Config struct {
	// RemovePatterns are regular expressions deleted from the text.
	// Matched case-insensitively, dot matches newline.
	RemovePatterns []string

	// SplitPoints are literal markers. Content from the first occurrence
	// of any marker onward is discarded entirely; such trailing sections
	// are structurally boilerplate, not worth pattern-matching.
	SplitPoints []string

	// MinContentLength is the minimum cleaned length for usable content.
	// Shorter results become the NoUsableContent sentinel.
	MinContentLength int
}

// DefaultConfig returns the pattern tables for WordPress-style blog content.
func DefaultConfig() Config {
	return Config{
		RemovePatterns: []string{
			// Comment form and related elements
			`Leave a Reply\s*Cancel reply.*?for the next time I comment\.`,
			`Comment\s*Enter your name.*?for the next time I comment\.`,
			`Enter your name or username to comment.*?for the next time I comment\.`,
			// WordPress footer elements and metadata
			`Copyright © \d{4}.*?All rights reserved\.?`,
			`Post author:\s*.*?\s*Post published:\s*.*?\s*Reading time:\s*.*?\s*`,
			`Thank you for sharing this post!\s*Share this content\s*Opens in a new window\s*`,
			// Navigation elements
			`Previous Post.*?Next Post`,
			// Social sharing
			`Share this:.*?Click to share`,
			`Share this content.*?Opens in a new window`,
			// Search prompts
			`Search for:.*?search`,
			// Category and tag listings at the end of posts
			`Categories.*?\(\d+\).*?Spanish Teaching.*?\(\d+\)`,
			`\(\d+\)\s*Argentinian Spanish\s*\(\d+\)\s*Argentinian Spanish Curse Words\s*\(\d+\)`,
			// Common footer text
			`Venture Out Spanish\s*·\s*\S+\s*\S+\s*·\s*Privacy Policy`,
			// Author bio section
			`About the author.*?View all posts`,
			// Comment section headers
			`Comments\s*\(\d+\)`,
			// WordPress tags
			`Filed under:.*?Tags:`,
			// Share buttons
			`Opens in a new window\s*Opens in a new window\s*Opens in a new window`,
		},
		SplitPoints: []string{
			"Leave a Reply",
			"Related Posts",
			"Categories",
			"Thank you for sharing this post",
			"Post navigation",
		},
		MinContentLength: 10,
	}
}

// Regexes shared by every Cleaner. Category listing lines look like "(45)".
var (
	categoryLineRe = regexp.MustCompile(`^\s*\(\d+\)\s*$`)
	urlRe          = regexp.MustCompile(`https?://\S+`)
	newlineRunRe   = regexp.MustCompile(`\n{3,}`)
	spaceRunRe     = regexp.MustCompile(`[ \t]{2,}`)
)

// Lines longer than this exit category-listing skip mode; real content
// has resumed.
const skipExitLength = 30

// Cleaner removes boilerplate from raw text. Construct with New; the zero
// value is not usable.
type Cleaner struct {
	patterns    []*regexp.Regexp
	splitPoints []string
	minLength   int
}

// New compiles the configured patterns. A malformed pattern is a
// configuration error and fails construction; patterns are static data,
// never validated at request time.
func New(cfg Config) (*Cleaner, error) {
	patterns := make([]*regexp.Regexp, 0, len(cfg.RemovePatterns))
	for _, p := range cfg.RemovePatterns {
		re, err := regexp.Compile(`(?is)` + p)
		if err != nil {
			return nil, fmt.Errorf("compile removal pattern %q: %w", p, err)
		}
		patterns = append(patterns, re)
	}

	return &Cleaner{
		patterns:    patterns,
		splitPoints: cfg.SplitPoints,
		minLength:   cfg.MinContentLength,
	}, nil
}

// Clean strips boilerplate from raw text. Pure and deterministic; cleaning
// already-clean text returns it unchanged. Empty input returns an empty
// string, which is routine rather than exceptional.
func (c *Cleaner) Clean(text string) string {
	if text == "" {
		return ""
	}

	for _, re := range c.patterns {
		text = re.ReplaceAllString(text, "")
	}

	for _, point := range c.splitPoints {
		if idx := strings.Index(text, point); idx >= 0 {
			text = text[:idx]
		}
	}

	text = stripCategoryListings(text)

	if len(strings.TrimSpace(text)) < c.minLength {
		return NoUsableContent
	}

	// URLs go before whitespace collapsing so their removal cannot leave
	// double spaces behind; Clean stays idempotent.
	text = urlRe.ReplaceAllString(text, "")
	text = newlineRunRe.ReplaceAllString(text, "\n\n")
	text = spaceRunRe.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// stripCategoryListings drops numeric category-count lines and whatever
// follows them, until a line long enough to be real content shows up.
func stripCategoryListings(text string) string {
	lines := strings.Split(text, "\n")
	filtered := make([]string, 0, len(lines))
	skipMode := false

	for _, line := range lines {
		if categoryLineRe.MatchString(line) {
			skipMode = true
		}
		if !skipMode {
			filtered = append(filtered, line)
		}
		if skipMode && len(strings.TrimSpace(line)) > skipExitLength {
			skipMode = false
		}
	}

	return strings.Join(filtered, "\n")
}
