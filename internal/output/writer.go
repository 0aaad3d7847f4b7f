// Package output provides the interface and configuration for writers
package output

import (
	"bytes"
	"encoding/json"
	"fmt"

	"birdwatch/internal/types"
)

// Writer defines the interface for all writers that are responsible for
// writing a scrape result to a specific output.
type Writer interface {
	Write(result *types.Result) error
}

// WriterConfig defines the necessary parameters to make a new writer.
type WriterConfig struct {
	Type     string `yaml:"type,omitempty" env:"WRITER_TYPE"`
	FilePath string `yaml:"filepath,omitempty" env:"WRITER_FILEPATH"`
}

const (
	STDOUT_WRITER_TYPE = "stdout"
	FILE_WRITER_TYPE   = "file"
)

// NewWriter returns a writer of the configured type. An empty type means
// stdout.
func NewWriter(wc *WriterConfig) (Writer, error) {
	switch wc.Type {
	case "", STDOUT_WRITER_TYPE:
		return NewStdoutWriter(wc), nil
	case FILE_WRITER_TYPE:
		return NewFileWriter(wc), nil
	default:
		return nil, fmt.Errorf("writer of type %s not implemented", wc.Type)
	}
}

// encodeResult marshals the result pretty-printed. We cannot use
// json.MarshalIndent directly because it automatically replaces certain
// html characters with the corresponding Unicode replacement rune, which
// would mangle post content. See
// https://stackoverflow.com/questions/28595664/how-to-stop-json-marshal-from-escaping-and
func encodeResult(result *types.Result) ([]byte, error) {
	buffer := &bytes.Buffer{}
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(result); err != nil {
		return nil, err
	}
	var indentBuffer bytes.Buffer
	if err := json.Indent(&indentBuffer, buffer.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	return indentBuffer.Bytes(), nil
}
