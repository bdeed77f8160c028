// Package chatlink builds click-to-chat links for a contact's phone number.
// The greeting text comes from configuration.
package chatlink

import (
	"context"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

const DefaultBaseURL = "https://wa.me/"

type Builder struct {
	BaseURL string
	Message string
}

// URL returns BaseURL + number, with the message as the "text" query value
// when one is set. Everything except digits and "+" is dropped from phone.
func (b Builder) URL(phone string) string {
	base := b.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	u := base + cleanNumber(phone)
	if b.Message == "" {
		return u
	}
	return u + "?text=" + encodeComponent(b.Message)
}

func cleanNumber(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if c := s[i]; (c >= '0' && c <= '9') || c == '+' {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// encodeComponent percent-encodes s for a query value, spaces as %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Open hands link to the desktop's default URL handler.
func Open(ctx context.Context, link string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", link)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", link)
	default:
		cmd = exec.CommandContext(ctx, "xdg-open", link)
	}
	return cmd.Start()
}
