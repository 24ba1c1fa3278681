package classify_test

import (
	"testing"

	"github.com/parley-chat/parley/internal/classify"
	"github.com/parley-chat/parley/pkg/chat"
)

func TestSentiment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		message string
		want    chat.Sentiment
	}{
		{name: "positive majority", message: "I love this, it is great!", want: chat.SentimentPositive},
		{name: "negative majority", message: "this is terrible and awful", want: chat.SentimentNegative},
		{name: "no lexicon words", message: "the sky is blue", want: chat.SentimentNeutral},
		{name: "equal nonzero counts tie", message: "good bad", want: chat.SentimentNeutral},
		{name: "empty message", message: "", want: chat.SentimentNeutral},
		{name: "whitespace only", message: "   ", want: chat.SentimentNeutral},
		{name: "uppercase lexicon hit", message: "GREAT WORK", want: chat.SentimentPositive},
		{name: "trailing punctuation stripped", message: "awful!!", want: chat.SentimentNegative},
		{name: "leading punctuation stripped", message: "...wonderful", want: chat.SentimentPositive},
		{name: "punctuation inside word not stripped", message: "gr.eat", want: chat.SentimentNeutral},
		{name: "majority wins", message: "bad bad good", want: chat.SentimentNegative},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := classify.Sentiment(tt.message); got != tt.want {
				t.Errorf("Sentiment(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestSentiment_AlwaysReturnsKnownLabel(t *testing.T) {
	t.Parallel()

	messages := []string{
		"", "?", "love hate love hate", "completely unrelated words",
		"!!!", "good", "bad", "good good bad",
	}
	for _, msg := range messages {
		if got := classify.Sentiment(msg); !got.Valid() {
			t.Errorf("Sentiment(%q) = %q, not a known label", msg, got)
		}
	}
}
