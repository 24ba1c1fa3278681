// Package respond maps a classified message to a canned response using
// an ordered keyword table and per-intent response pools.
package respond

import (
	"math/rand"
	"strings"
	"time"

	"github.com/parley-chat/parley/pkg/chat"
)

// Selector picks responses from a fixed Tables value. The random source
// is injected so pool selection can be made deterministic in tests.
type Selector struct {
	tables Tables
	rng    *rand.Rand
}

// NewSelector creates a Selector over the given tables. A nil source
// falls back to a time-seeded one.
func NewSelector(tables Tables, src rand.Source) *Selector {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Selector{tables: tables, rng: rand.New(src)}
}

// Select returns the response for a message. Keyword hits are
// deterministic regardless of sentiment and intent; everything else is
// a uniform pick from the matching pool.
func (s *Selector) Select(message string, sentiment chat.Sentiment, intent chat.Intent) string {
	if strings.TrimSpace(message) == "" {
		return s.tables.Prompt
	}

	lower := strings.ToLower(message)
	for _, kr := range s.tables.Keywords {
		if strings.Contains(lower, kr.Keyword) {
			return kr.Response
		}
	}

	switch intent {
	case chat.IntentQuestion:
		return s.pick(s.tables.Question)
	case chat.IntentGreeting:
		return s.pick(s.tables.Greeting)
	case chat.IntentStatement:
		switch sentiment {
		case chat.SentimentPositive:
			return s.pick(s.tables.Positive)
		case chat.SentimentNegative:
			return s.pick(s.tables.Empathy)
		default:
			return s.pick(s.tables.Neutral)
		}
	default:
		return s.pick(s.tables.Fallback)
	}
}

func (s *Selector) pick(pool []string) string {
	return pool[s.rng.Intn(len(pool))]
}
