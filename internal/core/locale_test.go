package core

import (
	"testing"
	"time"
)

func TestDatePrefixZeroPadded(t *testing.T) {
	d := time.Date(2009, time.March, 7, 0, 0, 0, 0, time.Local)
	if got := DatePrefix(d); got != "07/03/09" {
		t.Fatalf("expected 07/03/09, got %q", got)
	}
}

func TestDecorateNameDoesNotStack(t *testing.T) {
	loc := DefaultLocale()
	once := loc.DecorateName("Alice", jan5)
	if twice := loc.DecorateName(once, jan5); twice != once {
		t.Fatalf("decoration stacked: %q", twice)
	}

	// A different day is a different decoration.
	other := loc.DecorateName(once, jan5.AddDate(0, 0, 1))
	if other != "06/01/24 Ns 05/01/24 Ns Alice" {
		t.Fatalf("unexpected %q", other)
	}
}

func TestZeroLocaleFallsBackToDefaults(t *testing.T) {
	var loc Locale
	if got := loc.DecorateName("A", jan5); got != "05/01/24 Ns A" {
		t.Fatalf("unexpected %q", got)
	}
	if got := loc.NormalizePhone("0811"); got != "62811" {
		t.Fatalf("unexpected %q", got)
	}
}
