package chat_test

import (
	"encoding/json"
	"testing"

	"github.com/parley-chat/parley/pkg/chat"
)

func TestSentiment_Emoji(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sentiment chat.Sentiment
		want      string
	}{
		{chat.SentimentPositive, "😊"},
		{chat.SentimentNegative, "😞"},
		{chat.SentimentNeutral, "😐"},
		{chat.Sentiment("confused"), "😐"},
	}
	for _, tt := range tests {
		if got := tt.sentiment.Emoji(); got != tt.want {
			t.Errorf("%q.Emoji() = %q, want %q", tt.sentiment, got, tt.want)
		}
	}
}

func TestSentiment_Valid(t *testing.T) {
	t.Parallel()

	for _, s := range []chat.Sentiment{chat.SentimentPositive, chat.SentimentNegative, chat.SentimentNeutral} {
		if !s.Valid() {
			t.Errorf("%q.Valid() = false, want true", s)
		}
	}
	for _, s := range []chat.Sentiment{"", "confused", "POSITIVE"} {
		if s.Valid() {
			t.Errorf("%q.Valid() = true, want false", s)
		}
	}
}

func TestTurn_Label(t *testing.T) {
	t.Parallel()

	if got := (chat.Turn{Speaker: chat.SpeakerUser}).Label(); got != "You" {
		t.Errorf("user Label = %q, want You", got)
	}
	if got := (chat.Turn{Speaker: chat.SpeakerBot}).Label(); got != "Bot" {
		t.Errorf("bot Label = %q, want Bot", got)
	}
}

func TestTurn_JSONShape(t *testing.T) {
	t.Parallel()

	turn := chat.Turn{Speaker: chat.SpeakerUser, Text: "hi", Sentiment: chat.SentimentNeutral}
	data, err := json.Marshal(turn)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"speaker":"user","text":"hi","sentiment":"neutral"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}
