package collate

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"festboard/contexts/festival/leaderboard-service/ports"
)

// Collator orders category and competition names the way a festival
// audience expects for the configured locale. The underlying collator is
// not safe for concurrent use, so calls are serialized.
type Collator struct {
	mu sync.Mutex
	c  *collate.Collator
}

var _ ports.NameCollator = (*Collator)(nil)

func New(tag language.Tag) *Collator {
	return &Collator{c: collate.New(tag)}
}

// NewForLocale parses a BCP 47 locale string, falling back to the
// undetermined language when it does not parse.
func NewForLocale(locale string) *Collator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return New(tag)
}

func (c *Collator) Less(a, b string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.c.CompareString(a, b) < 0
}
