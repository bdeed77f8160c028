package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/its-jojoo/kontakclip/internal/adapter/chatlink"
	"github.com/its-jojoo/kontakclip/internal/adapter/clipboard"
	"github.com/its-jojoo/kontakclip/internal/adapter/storage"
	"github.com/its-jojoo/kontakclip/internal/adapter/vcffile"
	"github.com/its-jojoo/kontakclip/internal/config"
	"github.com/its-jojoo/kontakclip/internal/core"
	"github.com/its-jojoo/kontakclip/internal/logger"
	"github.com/its-jojoo/kontakclip/internal/usecase/lookup"
	"github.com/its-jojoo/kontakclip/internal/usecase/session"
	"github.com/its-jojoo/kontakclip/internal/vcard"
)

type app struct {
	cfg    *config.Config
	log    *logger.Logger
	svc    *session.Service
	finder *lookup.Service
	chat   chatlink.Builder
	clip   clipboard.Watcher
}

func (a *app) load(ctx context.Context, raw string) {
	batch, err := a.svc.Load(ctx, raw)
	if errors.Is(err, session.ErrEmptyInput) {
		fmt.Println("(nothing to parse)")
		return
	}
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	a.log.Infow("batch loaded", "contacts", len(batch))
	printContacts(a.svc, batch)
}

func (a *app) list(ctx context.Context) {
	items, err := a.svc.List(ctx)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	printContacts(a.svc, items)
}

func (a *app) find(ctx context.Context, q string) {
	if q == "" {
		fmt.Println("usage: find <name or number>")
		return
	}
	items, err := a.finder.Query(ctx, q, lookup.Options{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	printContacts(a.svc, items)
}

func (a *app) set(ctx context.Context, arg string) {
	parts := strings.Fields(arg)
	if len(parts) < 2 {
		fmt.Println("usage: set <#|id> name|phone <value>")
		return
	}
	field, ok := core.ParseField(parts[1])
	if !ok {
		fmt.Println("unknown field:", parts[1], "(want name or phone)")
		return
	}
	value := ""
	if len(parts) > 2 {
		value = valueAfter(arg, 2)
	}

	c, err := a.svc.Resolve(ctx, parts[0])
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	c, err = a.svc.Update(ctx, c.ID, field, value)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	a.log.Debugw("contact updated", "id", c.ID, "field", field)
	fmt.Printf("%s  +%s\n", c.DisplayName, c.PhoneNumber)
}

func (a *app) del(ctx context.Context, ref string) {
	c, err := a.svc.Resolve(ctx, ref)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := a.svc.Delete(ctx, c.ID); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("deleted:", c.DisplayName)
}

func (a *app) openChat(ctx context.Context, ref string) {
	c, err := a.svc.Resolve(ctx, ref)
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Println("no such contact:", ref)
		return
	}
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if c.PhoneNumber == "" {
		fmt.Println("contact has no phone number")
		return
	}

	link := a.chat.URL(c.PhoneNumber)
	fmt.Println(link)
	if a.cfg.Chat.Open {
		if err := chatlink.Open(ctx, link); err != nil {
			a.log.Warnw("open chat link", "error", err)
		}
	}
}

func (a *app) export(ctx context.Context, path string) {
	if path == "" {
		path = a.cfg.Export.File
	}
	doc, n, err := a.svc.Export(ctx)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	written, err := vcffile.Write(path, doc)
	if errors.Is(err, vcffile.ErrNothingToExport) {
		fmt.Println("(nothing to export)")
		return
	}
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	a.log.Infow("exported", "contacts", n, "path", written, "content_type", vcard.ContentType)
	fmt.Println("exported", n, "contacts to", written)
}

func printContacts(svc *session.Service, items []core.Contact) {
	if len(items) == 0 {
		fmt.Println("(empty)")
		return
	}
	for i, c := range items {
		note := ""
		switch svc.Status(c) {
		case core.PhoneEmpty:
			note = "  [no number]"
		case core.PhoneForeign:
			note = "  [check number]"
		}
		fmt.Printf("%2d  %-40s +%s%s\n", i+1, preview(c.DisplayName, 40), c.PhoneNumber, note)
	}
}

// valueAfter returns s with its first n whitespace-separated fields removed,
// keeping the spacing inside the remainder.
func valueAfter(s string, n int) string {
	s = strings.TrimSpace(s)
	for i := 0; i < n; i++ {
		idx := strings.IndexFunc(s, isSpace)
		if idx < 0 {
			return ""
		}
		s = strings.TrimLeftFunc(s[idx:], isSpace)
	}
	return s
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' }
