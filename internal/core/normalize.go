package core

import "strings"

// NormalizePhone canonicalizes raw with the default locale.
func NormalizePhone(raw string) string {
	return DefaultLocale().NormalizePhone(raw)
}

// NormalizePhone keeps only the ASCII digits of raw, then:
//   - "0..." becomes country code + the rest (leading zero dropped)
//   - "8..." becomes country code + the whole number
//   - anything else is returned as is
//
// No digits at all yields "".
func (l Locale) NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}

	d := b.String()
	switch {
	case d == "":
		return ""
	case d[0] == '0':
		return l.countryCode() + d[1:]
	case d[0] == '8':
		return l.countryCode() + d
	}
	return d
}
