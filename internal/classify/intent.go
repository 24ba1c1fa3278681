package classify

import (
	"strings"

	"github.com/parley-chat/parley/pkg/chat"
)

// commandWords are the meta-commands the session controller understands.
var commandWords = wordSet("history", "clear", "exit", "quit")

var greetingWords = wordSet("hello", "hi", "hey", "greetings", "howdy")

// questionWords are interrogative openers only. Auxiliaries like "is"
// and "are" are deliberately excluded so that plain statements
// ("the weather is nice") do not classify as questions.
var questionWords = wordSet("what", "who", "where", "when", "why", "how", "which")

// Intent labels a message with its speech act. Checks run in priority
// order and the first match wins: a message containing both a command
// word and a question word is a command.
func Intent(message string) chat.Intent {
	tokens := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(message)) {
		tokens[strings.Trim(word, tokenPunct)] = struct{}{}
	}

	if containsAny(tokens, commandWords) {
		return chat.IntentCommand
	}
	if containsAny(tokens, greetingWords) {
		return chat.IntentGreeting
	}
	if containsAny(tokens, questionWords) || strings.HasSuffix(strings.TrimSpace(message), "?") {
		return chat.IntentQuestion
	}
	return chat.IntentStatement
}

func containsAny(tokens, set map[string]struct{}) bool {
	for t := range tokens {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}
