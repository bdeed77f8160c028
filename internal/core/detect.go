package core

import "strings"

// CheckPhone flags a normalized number for display: empty when nothing
// survived normalization, foreign when it does not carry the locale's country
// code.
func (l Locale) CheckPhone(phone string) PhoneStatus {
	if phone == "" {
		return PhoneEmpty
	}
	if !strings.HasPrefix(phone, l.countryCode()) {
		return PhoneForeign
	}
	return PhoneOK
}
