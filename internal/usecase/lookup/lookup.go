package lookup

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/its-jojoo/kontakclip/internal/core"
)

type Store interface {
	List(ctx context.Context) ([]core.Contact, error)
}

type Options struct {
	Limit int
}

type Service struct {
	store  Store
	locale core.Locale
}

func New(store Store, locale core.Locale) *Service {
	return &Service{store: store, locale: locale}
}

// Query ranks contacts whose name or phone matches q. Name matching ignores
// case and accents; a query with digits also matches phone numbers, in the
// typed form and in canonical form.
func (s *Service) Query(ctx context.Context, q string, opt Options) ([]core.Contact, error) {
	if opt.Limit <= 0 {
		opt.Limit = 20
	}

	q = strings.TrimSpace(q)
	if q == "" {
		return nil, nil
	}

	items, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	fq := fold(q)
	digits := digitsOf(q)
	canon := s.locale.NormalizePhone(q)

	type scored struct {
		c     core.Contact
		score int
	}

	scoredItems := make([]scored, 0, len(items))
	for _, c := range items {
		score := scoreName(fold(c.DisplayName), fq)
		if digits != "" {
			score = max(score, scorePhone(c.PhoneNumber, digits), scorePhone(c.PhoneNumber, canon))
		}
		if score == 0 {
			continue
		}
		scoredItems = append(scoredItems, scored{c: c, score: score})
	}

	// stable: equal scores keep batch order
	sort.SliceStable(scoredItems, func(i, j int) bool {
		return scoredItems[i].score > scoredItems[j].score
	})

	if opt.Limit > len(scoredItems) {
		opt.Limit = len(scoredItems)
	}

	out := make([]core.Contact, 0, opt.Limit)
	for i := 0; i < opt.Limit; i++ {
		out = append(out, scoredItems[i].c)
	}
	return out, nil
}

func scoreName(name, q string) int {
	// exact > word prefix > substring (earlier index slightly better)
	if name == q {
		return 3000
	}
	for _, w := range strings.Fields(name) {
		if strings.HasPrefix(w, q) {
			return 2000
		}
	}
	if idx := strings.Index(name, q); idx >= 0 {
		return 1000 + max(0, 200-idx)
	}
	return 0
}

func scorePhone(phone, digits string) int {
	if phone == "" || len(digits) < 3 {
		return 0
	}
	switch {
	case phone == digits:
		return 2500
	case strings.HasSuffix(phone, digits):
		return 1500
	case strings.Contains(phone, digits):
		return 1200
	}
	return 0
}

var folder = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func fold(s string) string {
	out, _, err := transform.String(folder, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

func digitsOf(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
