package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// Output prints command results as text or JSON.
type Output struct {
	format string
	out    io.Writer
}

func NewOutput(format string, out io.Writer) *Output {
	return &Output{format: format, out: out}
}

func (o *Output) IsJSON() bool {
	return o.format == formatJSON
}

// Print - data is encoded in JSON mode, text is printed otherwise.
func (o *Output) Print(data any, text string) error {
	if o.IsJSON() {
		enc := json.NewEncoder(o.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		return nil
	}

	_, err := fmt.Fprint(o.out, text)
	return err
}
