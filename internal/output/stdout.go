package output

import (
	"fmt"
	"log/slog"

	"birdwatch/internal/types"
)

// StdoutWriter represents a writer that writes to stdout
type StdoutWriter struct {
	logger *slog.Logger
}

// NewStdoutWriter returns a new StdoutWriter
func NewStdoutWriter(wc *WriterConfig) *StdoutWriter {
	return &StdoutWriter{
		logger: slog.With(slog.String("writer", STDOUT_WRITER_TYPE)),
	}
}

func (w *StdoutWriter) Write(result *types.Result) error {
	resultJSON, err := encodeResult(result)
	if err != nil {
		return fmt.Errorf("error while encoding result: %w", err)
	}
	fmt.Print(string(resultJSON))
	return nil
}
