// Package jsonfile persists conversation history as a pretty-printed
// UTF-8 JSON array of {speaker, text, sentiment} records. The file is
// rewritten wholesale on every save.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/parley-chat/parley/internal/history"
	"github.com/parley-chat/parley/pkg/chat"
)

// DefaultPath is used when no history path is configured.
const DefaultPath = "chat_history.json"

func init() {
	history.RegisterBackend("jsonfile", func(opts history.Options) (history.Store, error) {
		return Open(opts)
	})
}

// Store is a JSON-file-backed history.Store.
type Store struct {
	path string
}

// Compile-time interface guard.
var _ history.Store = (*Store)(nil)

// Open creates a Store for the configured path. The file itself is not
// touched until the first Save.
func Open(opts history.Options) (*Store, error) {
	path := opts.Path
	if path == "" {
		path = DefaultPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("jsonfile: create directory %s: %w", dir, err)
		}
	}
	return &Store{path: path}, nil
}

// Path returns the file the store writes to.
func (s *Store) Path() string {
	return s.path
}

// record is the persisted form of a turn. Field order is stable.
type record struct {
	Speaker   string `json:"speaker"`
	Text      string `json:"text"`
	Sentiment string `json:"sentiment"`
}

// Save rewrites the file with the given turns.
func (s *Store) Save(turns []chat.Turn) error {
	records := make([]record, len(turns))
	for i, t := range turns {
		records[i] = record{
			Speaker:   string(t.Speaker),
			Text:      t.Text,
			Sentiment: string(t.Sentiment),
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonfile: marshal history: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("jsonfile: write %s: %w", s.path, err)
	}
	return nil
}

// Load reads all persisted turns. A missing file yields an empty
// history and no error. A file that is not a valid record array yields
// an error; the file is left as-is so the caller can decide what to
// announce. Records with an unknown sentiment are backfilled neutral
// rather than rejected.
func (s *Store) Load() ([]chat.Turn, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("jsonfile: read %s: %w", s.path, err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("jsonfile: parse %s: %w", s.path, err)
	}

	turns := make([]chat.Turn, 0, len(records))
	for _, r := range records {
		t := chat.Turn{
			Speaker:   chat.Speaker(r.Speaker),
			Text:      r.Text,
			Sentiment: chat.Sentiment(r.Sentiment),
		}
		if !t.Sentiment.Valid() {
			t.Sentiment = chat.SentimentNeutral
		}
		turns = append(turns, t)
	}
	return turns, nil
}
