package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hejijunhao/triage/internal/model"
	"github.com/hejijunhao/triage/internal/output"
)

// Output writes JSON-encoded reports to stdout, one per line, or
// pretty-printed when requested. Diagnostics never share this stream.
type Output struct {
	enc  *json.Encoder
	full bool
}

// New creates a stdout Output. full controls whether issue/PR bodies and
// fix text are included.
func New(full, pretty bool) *Output {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return &Output{enc: enc, full: full}
}

func (o *Output) Write(_ context.Context, report model.Report) error {
	if err := o.enc.Encode(output.FormatReport(report, o.full)); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
