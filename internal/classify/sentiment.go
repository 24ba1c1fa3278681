// Package classify derives coarse sentiment and intent labels from a
// single message using fixed lexicons. All functions are pure.
package classify

import (
	"strings"

	"github.com/parley-chat/parley/pkg/chat"
)

// tokenPunct is stripped from both ends of each token before lookup.
const tokenPunct = ".,!?;:"

// positiveWords and negativeWords are the sentiment lexicons. They are
// package-level constants in spirit: never mutated after init.
var positiveWords = wordSet(
	"good", "great", "awesome", "excellent", "love", "happy", "nice",
	"wonderful", "fantastic", "amazing", "brilliant", "perfect",
	"beautiful", "delighted", "thrilled", "excited", "pleased", "glad",
	"joy", "superb",
)

var negativeWords = wordSet(
	"bad", "terrible", "hate", "sad", "angry", "awful", "poor",
	"disappointed", "frustrated", "upset", "annoyed", "miserable",
	"disgusting", "horrible", "dreadful", "dislike", "worse", "worst",
	"pathetic", "useless",
)

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Sentiment labels a message by counting lexicon hits. A label wins only
// with a strict majority and at least one hit; ties and lexicon-free
// messages are neutral.
func Sentiment(message string) chat.Sentiment {
	var pos, neg int
	for _, word := range strings.Fields(strings.ToLower(message)) {
		word = strings.Trim(word, tokenPunct)
		if _, ok := positiveWords[word]; ok {
			pos++
		}
		if _, ok := negativeWords[word]; ok {
			neg++
		}
	}

	switch {
	case pos > neg && pos > 0:
		return chat.SentimentPositive
	case neg > pos && neg > 0:
		return chat.SentimentNegative
	default:
		return chat.SentimentNeutral
	}
}
