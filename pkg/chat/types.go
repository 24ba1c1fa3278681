// Package chat defines the shared data contract between the classifier,
// the response selector, and the history store.
package chat

// Speaker identifies who produced a turn.
type Speaker string

const (
	// SpeakerUser is the human side of the conversation.
	SpeakerUser Speaker = "user"
	// SpeakerBot is the agent side of the conversation.
	SpeakerBot Speaker = "bot"
)

// Sentiment is the coarse affect label derived from lexicon counts.
type Sentiment string

// Supported sentiment labels.
const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Valid reports whether s is one of the supported labels.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// Emoji returns the transcript marker for the sentiment.
// Unknown labels render as neutral.
func (s Sentiment) Emoji() string {
	switch s {
	case SentimentPositive:
		return "😊"
	case SentimentNegative:
		return "😞"
	default:
		return "😐"
	}
}

// Intent is the coarse speech-act label derived from keyword and
// punctuation heuristics.
type Intent string

// Supported intent labels.
const (
	IntentCommand   Intent = "command"
	IntentGreeting  Intent = "greeting"
	IntentQuestion  Intent = "question"
	IntentStatement Intent = "statement"
)

// Turn is one labeled message in the conversation. Turns are created
// once and never mutated.
type Turn struct {
	Speaker   Speaker   `json:"speaker"`
	Text      string    `json:"text"`
	Sentiment Sentiment `json:"sentiment"`
}

// Label returns the transcript label for the turn's speaker.
func (t Turn) Label() string {
	if t.Speaker == SpeakerUser {
		return "You"
	}
	return "Bot"
}
