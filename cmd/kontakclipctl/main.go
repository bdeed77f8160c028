package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/its-jojoo/kontakclip/internal/adapter/vcffile"
	"github.com/its-jojoo/kontakclip/internal/config"
	"github.com/its-jojoo/kontakclip/internal/core"
	"github.com/its-jojoo/kontakclip/internal/logger"
	"github.com/its-jojoo/kontakclip/internal/vcard"
)

type ExportItem struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	PhoneNumber string `json:"phone_number"`
	Status      string `json:"status"`
}

func main() {
	var (
		in      = flag.String("in", "-", "input text file ('-' for stdin)")
		out     = flag.String("out", "", "output file (default from config, contacts.vcf)")
		date    = flag.String("date", "", "date for the name prefix, YYYY-MM-DD (default today)")
		format  = flag.String("format", "vcf", "output format: vcf or json")
		raw     = flag.Bool("raw", false, "disable vCard text escaping")
		skipCSV = flag.String("skip", "", "comma-separated noise patterns to drop before pairing (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *skipCSV != "" {
		cfg.Parse.Skip = splitCSV(*skipCSV)
	}

	log := logger.Init("kontakclipctl", cfg.Log.Env)
	defer log.SafeSync()

	today, err := parseDate(*date, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -date: %v\n", err)
		os.Exit(2)
	}

	text, err := readInput(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input error: %v\n", err)
		os.Exit(1)
	}

	filter, err := cfg.Parse.Filter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid skip patterns: %v\n", err)
		os.Exit(2)
	}

	loc := cfg.Locale.Core()
	records := core.NewParser(loc, filter).Parse(text, today)
	log.Infow("parsed", "contacts", len(records), "date", core.DatePrefix(today))

	var doc string
	switch *format {
	case "vcf":
		doc = vcard.Encoder{Escape: !(*raw || cfg.Export.Raw)}.Encode(records)
	case "json":
		doc, err = encodeJSON(loc, records)
		if err != nil {
			fmt.Fprintf(os.Stderr, "encode error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown -format %q (want vcf or json)\n", *format)
		os.Exit(2)
	}

	path := *out
	if path == "" {
		path = cfg.Export.File
	}
	if *format == "json" && path == vcffile.DefaultName {
		path = strings.TrimSuffix(path, ".vcf") + ".json"
	}

	written, err := vcffile.Write(path, doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "write output error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("exported", len(records), "contacts to", written)
}

func parseDate(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return now, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

func readInput(path string) (string, error) {
	if path == "-" || path == "" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

func encodeJSON(loc core.Locale, records []core.Contact) (string, error) {
	export := make([]ExportItem, 0, len(records))
	for _, c := range records {
		export = append(export, ExportItem{
			ID:          c.ID,
			DisplayName: c.DisplayName,
			PhoneNumber: c.PhoneNumber,
			Status:      string(loc.CheckPhone(c.PhoneNumber)),
		})
	}

	b, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}

func splitCSV(s string) []string {
	raw := strings.Split(s, ",")
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		r = strings.TrimSpace(r)
		if r != "" {
			out = append(out, r)
		}
	}
	return out
}
