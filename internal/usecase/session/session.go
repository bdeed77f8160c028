package session

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/its-jojoo/kontakclip/internal/adapter/storage"
	"github.com/its-jojoo/kontakclip/internal/core"
	"github.com/its-jojoo/kontakclip/internal/vcard"
)

var (
	ErrEmptyInput   = errors.New("no text to parse")
	ErrUnknownField = errors.New("unknown field")
	ErrInvalid      = errors.New("invalid contact")
)

// ValidationError lists the rules an edit would break, keyed by field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+e.Fields[k])
	}
	return ErrInvalid.Error() + ": " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

type Config struct {
	Locale core.Locale
	Filter *core.LineFilter

	// RawExport disables vCard text escaping on export.
	RawExport bool

	// Now supplies the date for name prefixes. Defaults to time.Now.
	Now func() time.Time
	// NewID overrides the parser's ID source (tests).
	NewID func() string
}

// Service owns the single batch of contacts being worked on.
type Service struct {
	store  storage.Store
	parser *core.Parser
	cfg    Config

	mu              sync.Mutex
	lastFingerprint string
}

func New(store storage.Store, cfg Config) *Service {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	p := core.NewParser(cfg.Locale, cfg.Filter)
	if cfg.NewID != nil {
		p.NewID = cfg.NewID
	}
	return &Service{store: store, parser: p, cfg: cfg}
}

func (s *Service) Locale() core.Locale { return s.cfg.Locale }

// Load parses raw and replaces the current batch with the result.
// Blank input leaves the batch untouched and returns ErrEmptyInput.
func (s *Service) Load(ctx context.Context, raw string) ([]core.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch, _, err := s.load(ctx, raw, false)
	return batch, err
}

// LoadIfChanged is Load, except that text identical to the last loaded text
// is skipped so edits made since survive. changed reports whether a new
// batch was stored.
func (s *Service) LoadIfChanged(ctx context.Context, raw string) (batch []core.Contact, changed bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx, raw, true)
}

func (s *Service) load(ctx context.Context, raw string, skipRepeat bool) ([]core.Contact, bool, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, false, ErrEmptyInput
	}

	lines := core.SplitLines(raw, s.cfg.Filter)
	fp := core.Fingerprint(lines)
	if skipRepeat && fp != "" && fp == s.lastFingerprint {
		return nil, false, nil
	}

	batch := s.parser.ParseLines(lines, s.cfg.Now())
	if err := s.store.Replace(ctx, batch); err != nil {
		return nil, false, fmt.Errorf("store batch: %w", err)
	}

	s.lastFingerprint = fp
	return batch, true, nil
}

func (s *Service) List(ctx context.Context) ([]core.Contact, error) {
	return s.store.List(ctx)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}

// Resolve finds a contact by ID or by its 1-based position ("3" or "#3").
func (s *Service) Resolve(ctx context.Context, ref string) (core.Contact, error) {
	ref = strings.TrimSpace(ref)
	if c, err := s.store.Get(ctx, ref); err == nil {
		return c, nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return core.Contact{}, err
	}

	n, err := strconv.Atoi(strings.TrimPrefix(ref, "#"))
	if err != nil || n < 1 {
		return core.Contact{}, storage.ErrNotFound
	}
	items, err := s.store.List(ctx)
	if err != nil {
		return core.Contact{}, err
	}
	if n > len(items) {
		return core.Contact{}, storage.ErrNotFound
	}
	return items[n-1], nil
}

// Update sets one field of the contact with the given ID. Phone values are
// normalized; names are stored as given. The contact is left unchanged when
// the result would not validate.
func (s *Service) Update(ctx context.Context, id string, field core.Field, value string) (core.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.store.Get(ctx, id)
	if err != nil {
		return core.Contact{}, err
	}

	next, ok := s.cfg.Locale.Apply(c, field, value)
	if !ok {
		return core.Contact{}, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if errs := core.ValidateContact(next); errs != nil {
		return core.Contact{}, &ValidationError{Fields: errs}
	}

	if err := s.store.Put(ctx, next); err != nil {
		return core.Contact{}, err
	}
	return next, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Delete(ctx, id)
}

// Clear discards the batch and forgets the last loaded text.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Replace(ctx, nil); err != nil {
		return err
	}
	s.lastFingerprint = ""
	return nil
}

// Export renders the current batch as a vCard document.
func (s *Service) Export(ctx context.Context) (string, int, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return "", 0, err
	}
	enc := vcard.Encoder{Escape: !s.cfg.RawExport}
	return enc.Encode(items), len(items), nil
}

// Status flags a contact's phone for display.
func (s *Service) Status(c core.Contact) core.PhoneStatus {
	return s.cfg.Locale.CheckPhone(c.PhoneNumber)
}
