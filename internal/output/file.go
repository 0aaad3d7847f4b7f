package output

import (
	"fmt"
	"log/slog"
	"os"

	"birdwatch/internal/types"
)

type FileWriter struct {
	writerConfig *WriterConfig
	logger       *slog.Logger
}

// NewFileWriter returns a new FileWriter
func NewFileWriter(wc *WriterConfig) *FileWriter {
	return &FileWriter{
		writerConfig: wc,
		logger:       slog.With(slog.String("writer", FILE_WRITER_TYPE)),
	}
}

func (w *FileWriter) Write(result *types.Result) error {
	resultJSON, err := encodeResult(result)
	if err != nil {
		return fmt.Errorf("error while encoding result: %w", err)
	}
	if err := os.WriteFile(w.writerConfig.FilePath, resultJSON, 0644); err != nil {
		return fmt.Errorf("error while writing json to file: %w", err)
	}
	w.logger.Info(fmt.Sprintf("wrote result to file %s", w.writerConfig.FilePath))
	return nil
}
