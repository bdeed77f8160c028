package core

import (
	"strconv"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "leading zero", in: "0812345", want: "62812345"},
		{name: "bare subscriber", in: "812345", want: "62812345"},
		{name: "international with separators", in: "+62 812-345", want: "62812345"},
		{name: "parentheses and spaces", in: "(0812) 345 678", want: "62812345678"},
		{name: "letters are dropped", in: "tel: 0812abc345", want: "62812345"},
		{name: "other prefix untouched", in: "+1 555 0100", want: "15550100"},
		{name: "empty", in: "", want: ""},
		{name: "no digits", in: "n/a", want: ""},
		{name: "single zero", in: "0", want: "62"},
		{name: "non-ascii digits are dropped", in: "٠٨١٢", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.in); got != tt.want {
				t.Fatalf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizePhonePlainDigitsUnchanged(t *testing.T) {
	for n := 1; n < 5000; n += 7 {
		d := strconv.Itoa(n) + "4455"
		if d[0] == '8' {
			continue
		}
		if got := NormalizePhone(d); got != d {
			t.Fatalf("NormalizePhone(%q) = %q, want unchanged", d, got)
		}
	}
}

func TestNormalizePhoneIdempotentAfterOnePass(t *testing.T) {
	for _, in := range []string{"0812345", "812345", "+62 812-345", "", "15550100", "620000"} {
		once := NormalizePhone(in)
		if twice := NormalizePhone(once); twice != once {
			t.Fatalf("NormalizePhone not stable for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalizePhoneCustomCountryCode(t *testing.T) {
	loc := Locale{CountryCode: "60"}
	if got := loc.NormalizePhone("012-3456"); got != "60123456" {
		t.Fatalf("expected 60123456, got %q", got)
	}
	if got := loc.NormalizePhone("8123"); got != "608123" {
		t.Fatalf("expected 608123, got %q", got)
	}
}
