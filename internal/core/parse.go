package core

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Parser turns pasted OCR text into contacts. Lines alternate name, phone.
type Parser struct {
	Locale Locale
	Filter *LineFilter

	// NewID returns a fresh record ID. Defaults to a UUIDv7 string.
	NewID func() string
}

func NewParser(loc Locale, filter *LineFilter) *Parser {
	return &Parser{Locale: loc, Filter: filter, NewID: newUUID}
}

// ParseContacts parses raw with the default locale and no line filter.
func ParseContacts(raw string, today time.Time) []Contact {
	return NewParser(DefaultLocale(), nil).Parse(raw, today)
}

// SplitLines splits raw on newlines, trims every line and drops the empty
// ones and the ones f rejects.
func SplitLines(raw string, f *LineFilter) []string {
	parts := strings.Split(raw, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || f.Drop(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Parse pairs the cleaned lines of raw two at a time. A trailing line without
// a partner is dropped. today only supplies the date prefix.
func (p *Parser) Parse(raw string, today time.Time) []Contact {
	return p.ParseLines(SplitLines(raw, p.Filter), today)
}

// ParseLines is Parse over lines already produced by SplitLines.
func (p *Parser) ParseLines(lines []string, today time.Time) []Contact {
	newID := p.NewID
	if newID == nil {
		newID = newUUID
	}

	out := make([]Contact, 0, len(lines)/2)
	for i := 0; i+1 < len(lines); i += 2 {
		out = append(out, Contact{
			ID:          newID(),
			DisplayName: p.Locale.DecorateName(lines[i], today),
			PhoneNumber: p.Locale.NormalizePhone(lines[i+1]),
		})
	}
	return out
}

func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
