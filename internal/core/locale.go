package core

import (
	"strings"
	"time"
)

const (
	DefaultCountryCode = "62"
	DefaultNameTag     = "Ns"

	// DatePrefixLayout renders DD/MM/YY.
	DatePrefixLayout = "02/01/06"
)

// Locale carries the country calling code used for phone canonicalization and
// the tag placed between the date prefix and the name. Zero fields fall back
// to the defaults.
type Locale struct {
	CountryCode string
	NameTag     string
}

func DefaultLocale() Locale {
	return Locale{CountryCode: DefaultCountryCode, NameTag: DefaultNameTag}
}

func (l Locale) countryCode() string {
	if l.CountryCode == "" {
		return DefaultCountryCode
	}
	return l.CountryCode
}

func (l Locale) nameTag() string {
	if l.NameTag == "" {
		return DefaultNameTag
	}
	return l.NameTag
}

// DatePrefix formats the calendar date of today as DD/MM/YY in today's own
// location.
func DatePrefix(today time.Time) string {
	return today.Format(DatePrefixLayout)
}

// Decoration is the text DecorateName puts in front of a name, trailing space
// included.
func (l Locale) Decoration(today time.Time) string {
	return DatePrefix(today) + " " + l.nameTag() + " "
}

// DecorateName builds "{DD/MM/YY} {tag} {name}". A name that already carries
// the same decoration is returned unchanged, so re-parsing an exported
// display name does not stack prefixes.
func (l Locale) DecorateName(name string, today time.Time) string {
	name = strings.TrimSpace(name)
	deco := l.Decoration(today)
	if strings.HasPrefix(name, deco) {
		return name
	}
	return deco + name
}
