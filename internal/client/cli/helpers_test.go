package cli

import (
	"io"
	"log/slog"
	"strings"
)

func slogDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bytesReader(s string) io.Reader {
	return strings.NewReader(s)
}
