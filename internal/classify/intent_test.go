package classify_test

import (
	"testing"

	"github.com/parley-chat/parley/internal/classify"
	"github.com/parley-chat/parley/pkg/chat"
)

func TestIntent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		message string
		want    chat.Intent
	}{
		{name: "interrogative opener", message: "what is your name?", want: chat.IntentQuestion},
		{name: "trailing question mark only", message: "you like jazz?", want: chat.IntentQuestion},
		{name: "greeting word", message: "hello there", want: chat.IntentGreeting},
		{name: "bare command", message: "history", want: chat.IntentCommand},
		{name: "command beats greeting", message: "hello clear", want: chat.IntentCommand},
		{name: "command beats question", message: "what does history show?", want: chat.IntentCommand},
		{name: "greeting beats question", message: "hi, what now?", want: chat.IntentGreeting},
		{name: "plain statement", message: "the weather is nice", want: chat.IntentStatement},
		{name: "auxiliary verb is not a question", message: "this is fine", want: chat.IntentStatement},
		{name: "case insensitive", message: "EXIT", want: chat.IntentCommand},
		{name: "punctuation trimmed before lookup", message: "hello!", want: chat.IntentGreeting},
		{name: "empty message", message: "", want: chat.IntentStatement},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := classify.Intent(tt.message); got != tt.want {
				t.Errorf("Intent(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}
