package respond_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/parley-chat/parley/internal/respond"
	"github.com/parley-chat/parley/pkg/chat"
)

func newSelector(t *testing.T) *respond.Selector {
	t.Helper()
	return respond.NewSelector(respond.DefaultTables(), rand.NewSource(1))
}

func TestSelector_BlankMessage(t *testing.T) {
	t.Parallel()

	s := newSelector(t)
	tables := respond.DefaultTables()

	for _, msg := range []string{"", "   ", "\t"} {
		got := s.Select(msg, chat.SentimentNeutral, chat.IntentStatement)
		if got != tables.Prompt {
			t.Errorf("Select(%q) = %q, want prompt %q", msg, got, tables.Prompt)
		}
	}
}

func TestSelector_KeywordMatchesAreDeterministic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{name: "hello", message: "hello over there", want: "Hello! How can I help you today?"},
		{name: "case insensitive", message: "HELLO", want: "Hello! How can I help you today?"},
		{name: "hi inside word", message: "this matches", want: "Hi there! What would you like to talk about?"},
		{name: "help", message: "I need help now", want: "I can chat with you and remember our conversation. Type 'history' to see what we've talked about, or just keep chatting!"},
		{name: "bye as substring", message: "goodbyebird", want: "Goodbye! Have a great day!"},
		{name: "thanks", message: "thanks a lot", want: "You're welcome!"},
		{name: "thank you", message: "thank you kindly", want: "Happy to help!"},
	}

	s := newSelector(t)
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			// Keyword hits win regardless of sentiment and intent, and
			// are stable across repeated calls.
			for i := 0; i < 5; i++ {
				got := s.Select(tt.message, chat.SentimentNegative, chat.IntentQuestion)
				if got != tt.want {
					t.Fatalf("Select(%q) = %q, want %q", tt.message, got, tt.want)
				}
			}
		})
	}
}

func TestSelector_PoolByIntentAndSentiment(t *testing.T) {
	t.Parallel()

	tables := respond.DefaultTables()

	tests := []struct {
		name      string
		message   string
		sentiment chat.Sentiment
		intent    chat.Intent
		pool      []string
	}{
		{name: "question pool", message: "where do crows sleep", sentiment: chat.SentimentNeutral, intent: chat.IntentQuestion, pool: tables.Question},
		{name: "greeting pool", message: "greetings friend", sentiment: chat.SentimentNeutral, intent: chat.IntentGreeting, pool: tables.Greeting},
		{name: "positive statement", message: "my garden is blooming wonderfully", sentiment: chat.SentimentPositive, intent: chat.IntentStatement, pool: tables.Positive},
		{name: "negative statement", message: "my week was rough", sentiment: chat.SentimentNegative, intent: chat.IntentStatement, pool: tables.Empathy},
		{name: "neutral statement", message: "I walked to work", sentiment: chat.SentimentNeutral, intent: chat.IntentStatement, pool: tables.Neutral},
		{name: "unknown intent falls back", message: "zzz", sentiment: chat.SentimentNeutral, intent: chat.Intent("mystery"), pool: tables.Fallback},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newSelector(t)
			for i := 0; i < 20; i++ {
				got := s.Select(tt.message, tt.sentiment, tt.intent)
				if !slices.Contains(tt.pool, got) {
					t.Fatalf("Select(%q, %s, %s) = %q, not in expected pool %v",
						tt.message, tt.sentiment, tt.intent, got, tt.pool)
				}
			}
		})
	}
}

func TestSelector_InjectedTables(t *testing.T) {
	t.Parallel()

	tables := respond.Tables{
		Prompt: "say!",
		Keywords: []respond.KeywordResponse{
			{"ping", "pong"},
		},
		Question: []string{"q"},
		Greeting: []string{"g"},
		Positive: []string{"p"},
		Empathy:  []string{"e"},
		Neutral:  []string{"n"},
		Fallback: []string{"f"},
	}
	s := respond.NewSelector(tables, rand.NewSource(7))

	if got := s.Select("ping me", chat.SentimentNeutral, chat.IntentStatement); got != "pong" {
		t.Errorf("Select keyword = %q, want %q", got, "pong")
	}
	if got := s.Select("anything", chat.SentimentNegative, chat.IntentStatement); got != "e" {
		t.Errorf("Select empathy = %q, want %q", got, "e")
	}
}

func TestSelector_OverlappingKeysResolveInTableOrder(t *testing.T) {
	t.Parallel()

	// "thanks" precedes "thank you" in the default table; a message
	// containing both phrases must resolve to the earlier key.
	s := newSelector(t)
	got := s.Select("thanks, thank you so much", chat.SentimentNeutral, chat.IntentStatement)
	if got != "You're welcome!" {
		t.Errorf("Select = %q, want the 'thanks' response", got)
	}
}

func TestSelector_NilSourceStillSelects(t *testing.T) {
	t.Parallel()

	s := respond.NewSelector(respond.DefaultTables(), nil)
	got := s.Select("I walked to work", chat.SentimentNeutral, chat.IntentStatement)
	if got == "" {
		t.Error("Select returned empty response")
	}
}
