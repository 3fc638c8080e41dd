package workflow

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Document parse errors.
var (
	// ErrEmptyDocument is returned when the input contains no document.
	ErrEmptyDocument = errors.New("workflow document is empty")

	// ErrNotMapping is returned when the top-level value is not an object.
	ErrNotMapping = errors.New("workflow document must be an object")
)

// parseDocument returns the top-level mapping node of data.
func parseDocument(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(normalizeJSONEscapes(data), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse workflow: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmptyDocument
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return root, ErrNotMapping
	}
	return root, nil
}

// normalizeJSONEscapes rewrites the string escapes of valid JSON input that
// yaml.v3 rejects: `\/` becomes `/` and a `\uXXXX\uXXXX` surrogate pair
// becomes the UTF-8 encoding of its rune. Line breaks are untouched so node
// lines stay correct.
func normalizeJSONEscapes(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\`)) || !json.Valid(data) {
		return data
	}

	out := make([]byte, 0, len(data))
	inString := false
	for i := 0; i < len(data); i++ {
		b := data[i]
		switch {
		case !inString:
			inString = b == '"'
		case b == '\\' && i+1 < len(data):
			if data[i+1] == '/' {
				out = append(out, '/')
				i++
				continue
			}
			if r, ok := surrogatePair(data[i:]); ok {
				out = utf8.AppendRune(out, r)
				i += 11
				continue
			}
			out = append(out, b, data[i+1])
			i++
			continue
		case b == '"':
			inString = false
		}
		out = append(out, b)
	}
	return out
}

// surrogatePair decodes a `\uD8xx\uDCxx` escape pair at the start of p.
func surrogatePair(p []byte) (rune, bool) {
	if len(p) < 12 || p[1] != 'u' || p[6] != '\\' || p[7] != 'u' {
		return 0, false
	}
	hi, err := strconv.ParseUint(string(p[2:6]), 16, 16)
	if err != nil {
		return 0, false
	}
	lo, err := strconv.ParseUint(string(p[8:12]), 16, 16)
	if err != nil {
		return 0, false
	}
	r := utf16.DecodeRune(rune(hi), rune(lo))
	return r, r != utf8.RuneError
}

// lookup returns the value for key in mapping node m, or nil.
func lookup(m *yaml.Node, key string) *yaml.Node {
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// scalar returns the value of n when it is a non-null scalar.
func scalar(n *yaml.Node) (string, bool) {
	if n == nil || n.Kind != yaml.ScalarNode || n.ShortTag() == "!!null" {
		return "", false
	}
	return n.Value, true
}

// isNumber reports whether n is an integer or float scalar.
func isNumber(n *yaml.Node) bool {
	if n == nil || n.Kind != yaml.ScalarNode {
		return false
	}
	tag := n.ShortTag()
	return tag == "!!int" || tag == "!!float"
}

// isTrue reports whether n is the boolean true.
func isTrue(n *yaml.Node) bool {
	if n == nil || n.Kind != yaml.ScalarNode || n.ShortTag() != "!!bool" {
		return false
	}
	var b bool
	return n.Decode(&b) == nil && b
}

// kindName describes the JSON type of n for Expected/Actual output.
func kindName(n *yaml.Node) string {
	if n == nil {
		return "missing"
	}
	switch n.Kind {
	case yaml.MappingNode:
		return "object"
	case yaml.SequenceNode:
		return "array"
	case yaml.AliasNode:
		return kindName(n.Alias)
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!int", "!!float":
			return "number"
		case "!!bool":
			return "boolean"
		case "!!null":
			return "null"
		default:
			return "string"
		}
	default:
		return "unknown"
	}
}
