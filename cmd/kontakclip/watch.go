package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/its-jojoo/kontakclip/internal/adapter/clipboard"
	"github.com/its-jojoo/kontakclip/internal/usecase/session"
)

// watch parses every new clipboard text until Ctrl+C. Text equal to the last
// loaded batch is skipped so edits are not thrown away.
func (a *app) watch(parent context.Context) {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()

	events, err := a.clip.Watch(ctx)
	if errors.Is(err, clipboard.ErrUnsupported) {
		fmt.Println("watch mode is not supported on this OS yet (darwin only for now).")
		return
	}
	if err != nil {
		fmt.Println("watch error:", err)
		return
	}

	fmt.Println("watching clipboard... (Ctrl+C to stop)")
	for range events {
		txt, err := a.clip.ReadText()
		if err != nil {
			continue
		}
		batch, changed, err := a.svc.LoadIfChanged(ctx, txt)
		if errors.Is(err, session.ErrEmptyInput) || (err == nil && !changed) {
			continue
		}
		if err != nil {
			a.log.Errorw("parse clipboard", "error", err)
			continue
		}
		a.log.Infow("batch loaded from clipboard", "contacts", len(batch))
		fmt.Printf("parsed %d contacts from: %s\n", len(batch), preview(txt, 60))
	}
}
