package core

import (
	"regexp"
	"strings"
)

// LineFilter drops OCR noise lines (status text, timestamps) before pairing.
type LineFilter struct {
	// If true, patterns are treated as regex. If false, case-insensitive substring match.
	UseRegex bool

	// Patterns to drop (e.g. "online", "last seen", "typing")
	Patterns []string

	compiled []*regexp.Regexp
}

func NewLineFilter(patterns []string, useRegex bool) (*LineFilter, error) {
	f := &LineFilter{
		UseRegex: useRegex,
		Patterns: patterns,
	}
	if useRegex {
		f.compiled = make([]*regexp.Regexp, 0, len(patterns))
		for _, p := range patterns {
			if strings.TrimSpace(p) == "" {
				continue
			}
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, err
			}
			f.compiled = append(f.compiled, re)
		}
	}
	return f, nil
}

// Drop reports whether line should be skipped. A nil filter keeps everything.
func (f *LineFilter) Drop(line string) bool {
	if f == nil {
		return false
	}

	if f.UseRegex {
		for _, re := range f.compiled {
			if re.MatchString(line) {
				return true
			}
		}
		return false
	}

	low := strings.ToLower(line)
	for _, p := range f.Patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if strings.Contains(low, p) {
			return true
		}
	}
	return false
}
