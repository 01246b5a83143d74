package descriptor

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var errHeadTagShape = errors.New("descriptor: head tag must be [tag, attrs] or [tag, attrs, content]")

// HeadTag is an element injected into every generated page head. It
// serializes as the generator's tuple form: [tag, attrs] or
// [tag, attrs, content].
type HeadTag struct {
	Tag     string
	Attrs   map[string]string
	Content string
}

// Link returns a <link> head tag.
func Link(attrs map[string]string) HeadTag {
	return HeadTag{Tag: "link", Attrs: attrs}
}

// Meta returns a <meta> head tag.
func Meta(attrs map[string]string) HeadTag {
	return HeadTag{Tag: "meta", Attrs: attrs}
}

// Script returns a <script> head tag with optional inline content.
func Script(attrs map[string]string, content string) HeadTag {
	return HeadTag{Tag: "script", Attrs: attrs, Content: content}
}

func (h HeadTag) tuple() []any {
	attrs := h.Attrs
	if attrs == nil {
		attrs = map[string]string{}
	}
	if h.Content == "" {
		return []any{h.Tag, attrs}
	}
	return []any{h.Tag, attrs, h.Content}
}

// MarshalJSON encodes the tag as a tuple.
func (h HeadTag) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.tuple())
}

// UnmarshalJSON decodes the tuple form.
func (h *HeadTag) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("%w: %v", errHeadTagShape, err)
	}
	if len(parts) < 2 || len(parts) > 3 {
		return errHeadTagShape
	}

	var out HeadTag
	if err := json.Unmarshal(parts[0], &out.Tag); err != nil {
		return fmt.Errorf("%w: tag: %v", errHeadTagShape, err)
	}
	if err := json.Unmarshal(parts[1], &out.Attrs); err != nil {
		return fmt.Errorf("%w: attrs: %v", errHeadTagShape, err)
	}
	if len(parts) == 3 {
		if err := json.Unmarshal(parts[2], &out.Content); err != nil {
			return fmt.Errorf("%w: content: %v", errHeadTagShape, err)
		}
	}
	if len(out.Attrs) == 0 {
		out.Attrs = nil
	}
	*h = out
	return nil
}

// MarshalYAML encodes the tag as a YAML sequence.
func (h HeadTag) MarshalYAML() (any, error) {
	return h.tuple(), nil
}

// UnmarshalYAML decodes a YAML sequence in tuple form.
func (h *HeadTag) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) < 2 || len(node.Content) > 3 {
		return errHeadTagShape
	}

	var out HeadTag
	if err := node.Content[0].Decode(&out.Tag); err != nil {
		return fmt.Errorf("%w: tag: %v", errHeadTagShape, err)
	}
	if err := node.Content[1].Decode(&out.Attrs); err != nil {
		return fmt.Errorf("%w: attrs: %v", errHeadTagShape, err)
	}
	if len(node.Content) == 3 {
		if err := node.Content[2].Decode(&out.Content); err != nil {
			return fmt.Errorf("%w: content: %v", errHeadTagShape, err)
		}
	}
	if len(out.Attrs) == 0 {
		out.Attrs = nil
	}
	*h = out
	return nil
}
