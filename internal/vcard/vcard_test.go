package vcard

import (
	"bytes"
	"errors"
	"testing"

	"github.com/its-jojoo/kontakclip/internal/core"
)

func TestExportEmpty(t *testing.T) {
	if got := Export(nil); got != "" {
		t.Fatalf("expected empty document, got %q", got)
	}
	if got := Export([]core.Contact{}); got != "" {
		t.Fatalf("expected empty document, got %q", got)
	}
}

func TestExportSingle(t *testing.T) {
	got := Export([]core.Contact{{DisplayName: "X", PhoneNumber: "620000"}})
	want := "BEGIN:VCARD\nVERSION:3.0\nFN:X\nTEL:+620000\nEND:VCARD\n\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExportKeepsOrder(t *testing.T) {
	got := Encoder{}.Encode([]core.Contact{
		{ID: "b", DisplayName: "05/01/24 Ns Bob", PhoneNumber: "62812"},
		{ID: "a", DisplayName: "05/01/24 Ns Alice", PhoneNumber: "62813"},
	})
	want := "BEGIN:VCARD\nVERSION:3.0\nFN:05/01/24 Ns Bob\nTEL:+62812\nEND:VCARD\n\n" +
		"BEGIN:VCARD\nVERSION:3.0\nFN:05/01/24 Ns Alice\nTEL:+62813\nEND:VCARD\n\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExportEscapesReserved(t *testing.T) {
	got := Export([]core.Contact{{DisplayName: `Doe, Jane; "J\D"`, PhoneNumber: "62811"}})
	want := "BEGIN:VCARD\nVERSION:3.0\n" + `FN:Doe\, Jane\; "J\\D"` + "\nTEL:+62811\nEND:VCARD\n\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEncoderRawKeepsText(t *testing.T) {
	got := Encoder{Escape: false}.Encode([]core.Contact{{DisplayName: "A, B", PhoneNumber: "1"}})
	want := "BEGIN:VCARD\nVERSION:3.0\nFN:A, B\nTEL:+1\nEND:VCARD\n\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEscapeTextNewlines(t *testing.T) {
	if got := EscapeText("a\r\nb\nc"); got != `a\nb\nc` {
		t.Fatalf("unexpected %q", got)
	}
}

func TestExportParsedBatchIsByteStable(t *testing.T) {
	records := core.ParseContacts("Alice\n0812345\nBob\n812345", jan5())
	a := Export(records)
	b := Export(records)
	if a != b {
		t.Fatalf("export not stable")
	}

	var buf bytes.Buffer
	n, err := defaultEncoder.Write(&buf, records)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(len(a)) || buf.String() != a {
		t.Fatalf("Write mismatch: %d bytes", n)
	}
}

type failWriter struct{ after int }

func (f *failWriter) Write(p []byte) (int, error) {
	if f.after <= 0 {
		return 0, errors.New("disk full")
	}
	f.after--
	return len(p), nil
}

func TestWriteStopsOnError(t *testing.T) {
	records := []core.Contact{{DisplayName: "A", PhoneNumber: "1"}, {DisplayName: "B", PhoneNumber: "2"}}
	n, err := Encoder{}.Write(&failWriter{after: 1}, records)
	if err == nil {
		t.Fatalf("expected error")
	}
	if n != int64(len(Encoder{}.Encode(records[:1]))) {
		t.Fatalf("unexpected byte count %d", n)
	}
}
