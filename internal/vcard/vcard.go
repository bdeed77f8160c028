// Package vcard serializes contacts as vCard 3.0 cards.
package vcard

import (
	"io"
	"strings"

	"github.com/its-jojoo/kontakclip/internal/core"
)

const (
	ContentType = "text/vcard"
	Version     = "3.0"
)

// Encoder writes one card per contact, each followed by a blank line.
type Encoder struct {
	// Escape applies the vCard text escaping to FN values
	// (backslash, comma, semicolon, newline).
	Escape bool
}

var defaultEncoder = Encoder{Escape: true}

// Export encodes records with escaping on. No records yields "".
func Export(records []core.Contact) string {
	return defaultEncoder.Encode(records)
}

func (e Encoder) Encode(records []core.Contact) string {
	if len(records) == 0 {
		return ""
	}
	var b strings.Builder
	_, _ = e.Write(&b, records)
	return b.String()
}

// Write streams the cards to w and returns the byte count written.
func (e Encoder) Write(w io.Writer, records []core.Contact) (int64, error) {
	var total int64
	for _, c := range records {
		n, err := io.WriteString(w, e.card(c))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (e Encoder) card(c core.Contact) string {
	name := c.DisplayName
	if e.Escape {
		name = EscapeText(name)
	}
	return "BEGIN:VCARD\n" +
		"VERSION:" + Version + "\n" +
		"FN:" + name + "\n" +
		"TEL:+" + c.PhoneNumber + "\n" +
		"END:VCARD\n\n"
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	",", `\,`,
	";", `\;`,
	"\r\n", `\n`,
	"\n", `\n`,
	"\r", `\n`,
)

// EscapeText escapes a vCard TEXT value.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}
