// Package output encodes tool results and catalogs for the command line.
package output

import (
	"fmt"
	"io"

	"github.com/GriffinCanCode/elliptic/internal/types"
	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Supported formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Report is the printable outcome of one tool evaluation.
type Report struct {
	RequestID string                 `json:"request_id" yaml:"request_id" toml:"request_id"`
	Tool      string                 `json:"tool" yaml:"tool" toml:"tool"`
	Success   bool                   `json:"success" yaml:"success" toml:"success"`
	Data      map[string]interface{} `json:"data,omitempty" yaml:"data,omitempty" toml:"data,omitempty"`
	Error     string                 `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
}

// NewReport builds a report from a provider result.
func NewReport(requestID, tool string, result *types.Result) Report {
	r := Report{RequestID: requestID, Tool: tool}
	if result == nil {
		return r
	}
	r.Success = result.Success
	r.Data = result.Data
	if result.Error != nil {
		r.Error = *result.Error
	}
	return r
}

// Catalog lists service definitions. TOML needs a table at the top level,
// so slices are always wrapped.
type Catalog struct {
	Services []types.Service `json:"services" yaml:"services" toml:"services"`
}

// Encode writes v to w in the given format.
func Encode(w io.Writer, format string, v interface{}) error {
	data, err := Marshal(format, v)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write %s output: %w", format, err)
	}
	return nil
}

// Marshal encodes v in the given format. JSON is indented and, like the
// other formats, newline terminated.
func Marshal(format string, v interface{}) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	switch format {
	case FormatJSON:
		data, err = sonic.MarshalIndent(v, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case FormatYAML:
		data, err = yaml.Marshal(v)
	case FormatTOML:
		data, err = toml.Marshal(v)
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}

	if err != nil {
		return nil, fmt.Errorf("%s encoding error: %w", format, err)
	}
	return data, nil
}
