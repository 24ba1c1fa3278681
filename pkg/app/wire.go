package app

// History storage backends compiled into the binary. Each registers
// itself with the backend registry in its init function.
import (
	_ "github.com/parley-chat/parley/internal/history/jsonfile"
	_ "github.com/parley-chat/parley/internal/history/sqlite"
)
