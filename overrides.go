package blog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chen-ziwen/chiko-blog/internal/descriptor"
)

// ErrOverridesEmpty is returned when an overrides file holds no document.
var ErrOverridesEmpty = errors.New("blog: overrides file is empty")

// LoadOverrides reads a YAML document shaped like the exported site.yaml.
// Unknown keys are rejected so typos do not silently drop settings.
func LoadOverrides(path string) (descriptor.Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return descriptor.Descriptor{}, fmt.Errorf("blog: read overrides: %w", err)
	}
	return ParseOverrides(data)
}

// ParseOverrides decodes data as an override descriptor.
func ParseOverrides(data []byte) (descriptor.Descriptor, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var out descriptor.Descriptor
	if err := dec.Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return descriptor.Descriptor{}, ErrOverridesEmpty
		}
		return descriptor.Descriptor{}, fmt.Errorf("blog: decode overrides: %w", err)
	}
	out.Extends = nil
	return out, nil
}
