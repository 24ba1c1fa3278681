// Package session orchestrates one conversation turn at a time:
// classify the input, select a response, and record both sides in the
// history log. It also implements the meta-commands (history, clear,
// exit) as a small state machine.
package session

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/parley-chat/parley/internal/classify"
	"github.com/parley-chat/parley/internal/history"
	"github.com/parley-chat/parley/internal/respond"
	"github.com/parley-chat/parley/pkg/chat"
)

// State is the controller's lifecycle state.
type State string

const (
	// StateRunning accepts input lines.
	StateRunning State = "running"
	// StateTerminated is terminal; no further input is processed.
	StateTerminated State = "terminated"
)

// exitKeywords end the session when a whole input line matches one,
// case-insensitively.
var exitKeywords = map[string]struct{}{
	"exit":    {},
	"quit":    {},
	"bye":     {},
	"goodbye": {},
}

// Messages are the controller's own canned outputs, distinct from the
// selector's response tables.
type Messages struct {
	// Prompt is emitted for blank input.
	Prompt string
	// Farewell is emitted on exit or interrupt.
	Farewell string
	// Cleared confirms a history wipe.
	Cleared string
}

// DefaultMessages returns the built-in controller messages. The
// farewell names the file the history was saved to.
func DefaultMessages(historyPath string) Messages {
	return Messages{
		Prompt:   "Say something — I'm listening.",
		Farewell: fmt.Sprintf("Goodbye! (History saved to %s)", historyPath),
		Cleared:  "Conversation history cleared!",
	}
}

// Controller is the per-process session state machine. It is strictly
// sequential: one input line is fully processed before the next.
type Controller struct {
	log      *history.Log
	selector *respond.Selector
	msgs     Messages
	logger   *slog.Logger
	state    State
}

// New creates a Controller in the running state.
func New(log *history.Log, selector *respond.Selector, msgs Messages, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		log:      log,
		selector: selector,
		msgs:     msgs,
		logger:   logger,
		state:    StateRunning,
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Handle processes one trimmed input line and returns the text to emit.
// Branches are checked in priority order: blank input, exit keywords,
// the history command, the clear command, then a normal turn.
func (c *Controller) Handle(line string) string {
	if c.state == StateTerminated {
		return ""
	}

	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return c.msgs.Prompt
	}

	lower := strings.ToLower(trimmed)
	if _, ok := exitKeywords[lower]; ok {
		c.state = StateTerminated
		return c.msgs.Farewell
	}

	switch lower {
	case "history":
		transcript := c.log.Transcript()
		c.record(chat.SpeakerUser, trimmed, classify.Sentiment(trimmed))
		return transcript
	case "clear":
		if err := c.log.Clear(); err != nil {
			c.logger.Warn("could not persist cleared history", "error", err)
		}
		return c.msgs.Cleared
	}

	sentiment := classify.Sentiment(trimmed)
	intent := classify.Intent(trimmed)

	c.record(chat.SpeakerUser, trimmed, sentiment)
	response := c.selector.Select(trimmed, sentiment, intent)
	c.record(chat.SpeakerBot, response, chat.SentimentNeutral)

	return response
}

// Terminate forces the terminal state, used for external interrupts.
// It returns the farewell to emit; calling it twice returns "".
func (c *Controller) Terminate() string {
	if c.state == StateTerminated {
		return ""
	}
	c.state = StateTerminated
	return c.msgs.Farewell
}

// record appends a turn, downgrading persistence failures to warnings.
// In-memory history stays authoritative.
func (c *Controller) record(speaker chat.Speaker, text string, sentiment chat.Sentiment) {
	if err := c.log.Add(speaker, text, sentiment); err != nil {
		c.logger.Warn("could not persist history", "error", err)
	}
}
