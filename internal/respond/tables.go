package respond

// KeywordResponse is one entry of the ordered keyword table. Keys are
// matched as substrings of the lowercased message, in table order, so
// overlapping keys resolve predictably.
type KeywordResponse struct {
	Keyword  string
	Response string
}

// Tables holds every canned response the selector can produce. A Tables
// value is bound at Selector construction and never mutated afterwards,
// so tests can substitute alternatives without touching shared state.
type Tables struct {
	// Prompt is returned for blank or whitespace-only messages.
	Prompt string

	// Keywords is scanned in order before any intent or sentiment
	// branching; the first substring hit wins.
	Keywords []KeywordResponse

	// Intent pools.
	Question []string
	Greeting []string

	// Sentiment pools for statements.
	Positive []string
	Empathy  []string
	Neutral  []string

	// Fallback covers unrecognized intent labels.
	Fallback []string
}

// DefaultTables returns a fresh copy of the built-in response tables.
func DefaultTables() Tables {
	return Tables{
		Prompt: "Say something so I can respond!",

		Keywords: []KeywordResponse{
			{"hello", "Hello! How can I help you today?"},
			{"hi", "Hi there! What would you like to talk about?"},
			{"help", "I can chat with you and remember our conversation. Type 'history' to see what we've talked about, or just keep chatting!"},
			{"bye", "Goodbye! Have a great day!"},
			{"thanks", "You're welcome!"},
			{"thank you", "Happy to help!"},
		},

		Question: []string{
			"Good question! I don't have a solid answer, but I'm curious what you think.",
			"That's a thoughtful question. Let's puzzle it out together.",
			"I wish I knew. What's your take?",
		},
		Greeting: []string{
			"Hey! Nice to hear from you.",
			"Hello again! What's on your mind?",
			"Hi! What shall we talk about?",
		},

		Positive: []string{
			"That's wonderful to hear!",
			"I'm glad you're excited!",
			"That sounds amazing!",
			"That's great! Tell me more.",
		},
		Empathy: []string{
			"I'm sorry to hear that. That sounds frustrating.",
			"I understand. That must be difficult.",
			"I feel for you. Is there anything I can help with?",
			"That's tough. I'm here to listen.",
		},
		Neutral: []string{
			"I'm not sure I understand. Can you rephrase?",
			"Interesting — tell me more.",
			"Hmm, I don't have a good answer for that yet.",
		},

		Fallback: []string{
			"Let's keep chatting — tell me something else.",
			"I didn't quite follow that, but I'm listening.",
		},
	}
}
