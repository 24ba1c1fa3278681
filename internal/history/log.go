package history

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/parley-chat/parley/pkg/chat"
)

// DefaultCapacity bounds the conversation log when no capacity is
// configured.
const DefaultCapacity = 10

const emptyTranscript = "No conversation history yet."

// Log is the bounded, ordered conversation history. It owns the
// in-memory buffer and writes through to its Store after every
// mutation. In-memory state stays authoritative when a write fails.
//
// Log is not safe for concurrent use; the session controller is the
// sole owner for the process lifetime.
type Log struct {
	capacity int
	turns    []chat.Turn
	store    Store
	logger   *slog.Logger
}

// New builds a Log over the given store, rehydrating previously
// persisted turns. A corrupt or unreadable store is recovered by
// starting empty: the condition is logged as a warning and the
// persisted state is left untouched until the next save. Only the most
// recent capacity turns survive the load.
func New(capacity int, store Store, logger *slog.Logger) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if logger == nil {
		logger = slog.Default()
	}

	l := &Log{capacity: capacity, store: store, logger: logger}

	turns, err := store.Load()
	if err != nil {
		logger.Warn("could not load conversation history, starting empty", "error", err)
		return l
	}
	if len(turns) > capacity {
		turns = turns[len(turns)-capacity:]
	}
	for _, t := range turns {
		if !t.Sentiment.Valid() {
			t.Sentiment = chat.SentimentNeutral
		}
		l.turns = append(l.turns, t)
	}
	return l
}

// Add appends a turn, evicting the oldest when over capacity, and
// persists the full buffer. A persistence failure is returned as a
// non-fatal error: the turn is already recorded in memory.
func (l *Log) Add(speaker chat.Speaker, text string, sentiment chat.Sentiment) error {
	l.turns = append(l.turns, chat.Turn{Speaker: speaker, Text: text, Sentiment: sentiment})
	if len(l.turns) > l.capacity {
		l.turns = l.turns[1:]
	}
	return l.persist()
}

// Clear empties the buffer and persists the empty state.
func (l *Log) Clear() error {
	l.turns = nil
	return l.persist()
}

// Flush persists the current buffer without mutating it. The shell
// calls this once on termination.
func (l *Log) Flush() error {
	return l.persist()
}

// Turns returns a copy of the buffered turns in append order.
func (l *Log) Turns() []chat.Turn {
	out := make([]chat.Turn, len(l.turns))
	copy(out, l.turns)
	return out
}

// Len returns the number of buffered turns.
func (l *Log) Len() int {
	return len(l.turns)
}

// Transcript renders the human-readable history, one line per turn,
// each prefixed by the turn's sentiment emoji and a speaker label.
func (l *Log) Transcript() string {
	if len(l.turns) == 0 {
		return emptyTranscript
	}

	var b strings.Builder
	b.WriteString("📝 Conversation History:")
	for _, t := range l.turns {
		b.WriteString(fmt.Sprintf("\n  %s %s: %s", t.Sentiment.Emoji(), t.Label(), t.Text))
	}
	return b.String()
}

func (l *Log) persist() error {
	if err := l.store.Save(l.turns); err != nil {
		return fmt.Errorf("history: saving %d turns: %w", len(l.turns), err)
	}
	return nil
}
