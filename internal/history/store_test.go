package history_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/parley-chat/parley/internal/history"
)

func TestOpen_UnknownBackend(t *testing.T) {
	t.Parallel()

	_, err := history.Open("carrier-pigeon", history.Options{})
	if err == nil {
		t.Fatal("Open: want error for unknown backend, got nil")
	}
	if !strings.Contains(err.Error(), "carrier-pigeon") {
		t.Errorf("error %q does not name the backend", err)
	}
}

func TestRegisterBackend_DuplicatePanics(t *testing.T) {
	t.Parallel()

	factory := func(history.Options) (history.Store, error) { return nil, nil }
	history.RegisterBackend("dup-test", factory)

	defer func() {
		if recover() == nil {
			t.Error("RegisterBackend: want panic on duplicate name")
		}
	}()
	history.RegisterBackend("dup-test", factory)
}

func TestBackends_Sorted(t *testing.T) {
	t.Parallel()

	names := history.Backends()
	if !slices.IsSorted(names) {
		t.Errorf("Backends() = %v, want sorted", names)
	}
}
