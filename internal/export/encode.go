package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chen-ziwen/chiko-blog/internal/descriptor"
)

// Format is a serialization of the site descriptor.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FileName is the file a format is written to.
func (f Format) FileName() string {
	switch f {
	case FormatYAML:
		return "site.yaml"
	default:
		return "site.json"
	}
}

// ParseFormats turns a comma separated list ("json,yaml") into formats.
// Duplicates are dropped; "yml" is accepted as yaml. An empty list yields
// json only.
func ParseFormats(value string) ([]Format, error) {
	var out []Format
	seen := map[Format]struct{}{}
	for _, part := range strings.Split(value, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		var format Format
		switch name {
		case "json":
			format = FormatJSON
		case "yaml", "yml":
			format = FormatYAML
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
		}
		if _, ok := seen[format]; ok {
			continue
		}
		seen[format] = struct{}{}
		out = append(out, format)
	}
	if len(out) == 0 {
		out = []Format{FormatJSON}
	}
	return out, nil
}

// Encode serializes d in format. JSON is indented with two spaces and does
// not escape HTML characters; both encodings end with a newline.
func Encode(d descriptor.Descriptor, format Format) ([]byte, error) {
	d.Extends = nil
	switch format {
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return nil, fmt.Errorf("export: encode json: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return nil, fmt.Errorf("export: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("export: encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
