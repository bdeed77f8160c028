package core

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

var jan5 = time.Date(2024, time.January, 5, 9, 30, 0, 0, time.UTC)

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return "c" + strconv.Itoa(n)
	}
}

func TestParseContactsPairs(t *testing.T) {
	got := ParseContacts("Alice\n0812345\nBob\n812345", jan5)
	if len(got) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(got))
	}
	if !strings.HasPrefix(got[0].DisplayName, "05/01/24 Ns Alice") {
		t.Fatalf("unexpected name %q", got[0].DisplayName)
	}
	if !strings.HasPrefix(got[1].DisplayName, "05/01/24 Ns Bob") {
		t.Fatalf("unexpected name %q", got[1].DisplayName)
	}
	for _, c := range got {
		if c.PhoneNumber != "62812345" {
			t.Fatalf("unexpected phone %q", c.PhoneNumber)
		}
	}
	if got[0].ID == "" || got[0].ID == got[1].ID {
		t.Fatalf("expected distinct IDs, got %q and %q", got[0].ID, got[1].ID)
	}
}

func TestParseContactsDanglingLine(t *testing.T) {
	if got := ParseContacts("OnlyOneLine", jan5); len(got) != 0 {
		t.Fatalf("expected no contacts, got %d", len(got))
	}

	got := ParseContacts("Alice\n0812\nBob", jan5)
	if len(got) != 1 || got[0].DisplayName != "05/01/24 Ns Alice" {
		t.Fatalf("expected only Alice, got %+v", got)
	}
}

func TestParseContactsEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\n \t\n"} {
		if got := ParseContacts(in, jan5); len(got) != 0 {
			t.Fatalf("expected empty result for %q, got %d", in, len(got))
		}
	}
}

func TestParseSkipsBlankLinesAndTrims(t *testing.T) {
	p := NewParser(DefaultLocale(), nil)
	p.NewID = seqIDs()

	got := p.Parse("  Alice  \r\n\n\n  0812 345 \r\n\n Bob\n+62 899", jan5)
	want := []Contact{
		{ID: "c1", DisplayName: "05/01/24 Ns Alice", PhoneNumber: "62812345"},
		{ID: "c2", DisplayName: "05/01/24 Ns Bob", PhoneNumber: "62899"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d contacts, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("contact %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseIdenticalPairsGetDistinctIDs(t *testing.T) {
	got := ParseContacts("Ann\n0811\nAnn\n0811\nAnn\n0811", jan5)
	seen := map[string]bool{}
	for _, c := range got {
		if seen[c.ID] {
			t.Fatalf("duplicate id %q", c.ID)
		}
		seen[c.ID] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected 3 ids, got %d", len(seen))
	}
}

func TestParseUsesCallerDate(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	late := time.Date(2025, time.December, 31, 23, 59, 0, 0, loc)

	got := ParseContacts("Dina\n0812", late)
	if len(got) != 1 || got[0].DisplayName != "31/12/25 Ns Dina" {
		t.Fatalf("unexpected %+v", got)
	}
}

func TestParseRoundTrip(t *testing.T) {
	first := ParseContacts("Alice Wong\n0812-3456-789", jan5)
	if len(first) != 1 {
		t.Fatalf("expected 1 contact")
	}

	again := ParseContacts(first[0].DisplayName+"\n"+first[0].PhoneNumber, jan5)
	if len(again) != 1 {
		t.Fatalf("expected 1 contact on re-parse")
	}
	if again[0].DisplayName != first[0].DisplayName {
		t.Fatalf("name drifted: %q -> %q", first[0].DisplayName, again[0].DisplayName)
	}
	if again[0].PhoneNumber != first[0].PhoneNumber {
		t.Fatalf("phone drifted: %q -> %q", first[0].PhoneNumber, again[0].PhoneNumber)
	}
}

func TestParseWithFilter(t *testing.T) {
	f, err := NewLineFilter([]string{"online", "last seen"}, false)
	if err != nil {
		t.Fatal(err)
	}
	p := NewParser(DefaultLocale(), f)

	got := p.Parse("Alice\nOnline\n0812\nBob\nlast seen today\n0813", jan5)
	if len(got) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(got))
	}
	if got[1].DisplayName != "05/01/24 Ns Bob" || got[1].PhoneNumber != "62813" {
		t.Fatalf("unexpected second contact %+v", got[1])
	}
}

func TestParseCustomTag(t *testing.T) {
	p := NewParser(Locale{CountryCode: "62", NameTag: "Bu"}, nil)
	got := p.Parse("Sari\n0812", jan5)
	if len(got) != 1 || got[0].DisplayName != "05/01/24 Bu Sari" {
		t.Fatalf("unexpected %+v", got)
	}
}
