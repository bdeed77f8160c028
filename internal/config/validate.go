package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrInvalid = errors.New("invalid config")

// Validate checks the values cleanenv cannot check by itself.
func (c *Config) Validate() error {
	var errs []error

	cc := c.Locale.CountryCode
	if cc == "" || len(cc) > 3 || strings.Trim(cc, "0123456789") != "" || cc[0] == '0' {
		errs = append(errs, fmt.Errorf("locale.country_code %q: want 1-3 digits, no leading zero", cc))
	}
	if strings.TrimSpace(c.Locale.NameTag) == "" || strings.ContainsAny(c.Locale.NameTag, "\r\n") {
		errs = append(errs, fmt.Errorf("locale.name_tag %q: want a single-line tag", c.Locale.NameTag))
	}

	switch c.Store.Driver {
	case "memory", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("store.driver %q: want memory or sqlite", c.Store.Driver))
	}

	if u, err := url.Parse(c.Chat.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("chat.base_url %q: want an absolute URL", c.Chat.BaseURL))
	}

	if c.Clipboard.Interval <= 0 {
		errs = append(errs, fmt.Errorf("clipboard.interval %s: want > 0", c.Clipboard.Interval))
	}

	if _, err := c.Parse.Filter(); err != nil {
		errs = append(errs, fmt.Errorf("parse.skip: %w", err))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
