// Package manifest reads, edits and writes package.json style manifests
// without disturbing the order of existing keys.
//
// The document is held as a yaml.v3 node tree built from the encoding/json
// token stream. Mapping nodes keep their keys in source order, which a Go map
// would not, and strings are decoded by encoding/json so every JSON escape
// round-trips.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const scriptsKey = "scripts"

var (
	// ErrInvalidJSON is returned when the manifest source is not valid JSON.
	ErrInvalidJSON = errors.New("manifest is not valid JSON")
	// ErrNotObject is returned when the manifest root is not a JSON object.
	ErrNotObject = errors.New("manifest root is not a JSON object")
	// ErrScriptsNotObject is returned when an existing scripts field is not an object.
	ErrScriptsNotObject = errors.New("manifest scripts field is not an object")
)

// Document is a JSON object whose key order survives a read/write cycle.
type Document struct {
	root *yaml.Node
}

// Parse reads a JSON object.
func Parse(data []byte) (*Document, error) {
	if !json.Valid(data) {
		return nil, ErrInvalidJSON
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	root, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if root.Kind != yaml.MappingNode {
		return nil, ErrNotObject
	}
	return &Document{root: root}, nil
}

// decodeValue builds the node for the next JSON value in dec's token stream.
func decodeValue(dec *json.Decoder) (*yaml.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key %v", keyTok)
				}
				value, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				n.Content = append(n.Content, stringNode(key), value)
			}
			_, err := dec.Token()
			return n, err
		case '[':
			n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			for dec.More() {
				item, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				n.Content = append(n.Content, item)
			}
			_, err := dec.Token()
			return n, err
		}
		return nil, fmt.Errorf("unexpected delimiter %q", rune(v))
	case string:
		return stringNode(v), nil
	case json.Number:
		tag := "!!int"
		if strings.ContainsAny(string(v), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: string(v)}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v)}, nil
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// SetString sets key to a string value. An existing key keeps its position.
func (d *Document) SetString(key, value string) {
	setEntry(d.root, key, stringNode(value))
}

// GetString returns the value of key when it is a string.
func (d *Document) GetString(key string) (string, bool) {
	v := lookup(d.root, key)
	if v == nil || v.Kind != yaml.ScalarNode || v.ShortTag() != "!!str" {
		return "", false
	}
	return v.Value, true
}

// Keys returns the top-level keys in document order.
func (d *Document) Keys() []string {
	keys := make([]string, 0, len(d.root.Content)/2)
	for i := 0; i+1 < len(d.root.Content); i += 2 {
		keys = append(keys, d.root.Content[i].Value)
	}
	return keys
}

// MergeScripts appends scripts to the document's scripts object, creating it
// at the end of the document when absent. Generated entries replace existing
// entries of the same name in place; other entries are left untouched.
func (d *Document) MergeScripts(scripts *Scripts) error {
	target := lookup(d.root, scriptsKey)
	switch {
	case target == nil:
		target = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		setEntry(d.root, scriptsKey, target)
	case target.Kind != yaml.MappingNode:
		return ErrScriptsNotObject
	}

	for _, key := range scripts.Keys() {
		cmd, _ := scripts.Get(key)
		setEntry(target, key, stringNode(cmd))
	}
	return nil
}

// Scripts returns the document's scripts object as a Scripts value.
func (d *Document) Scripts() (*Scripts, error) {
	out := NewScripts()
	target := lookup(d.root, scriptsKey)
	if target == nil {
		return out, nil
	}
	if target.Kind != yaml.MappingNode {
		return nil, ErrScriptsNotObject
	}
	for i := 0; i+1 < len(target.Content); i += 2 {
		out.Set(target.Content[i].Value, target.Content[i+1].Value)
	}
	return out, nil
}

// MarshalIndent renders the document as JSON indented by two spaces.
func (d *Document) MarshalIndent() ([]byte, error) {
	var compact bytes.Buffer
	if err := encodeNode(&compact, d.root); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("indent manifest: %w", err)
	}
	return out.Bytes(), nil
}

func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

func setEntry(mapping *yaml.Node, key string, value *yaml.Node) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			mapping.Content[i+1] = value
			return
		}
	}
	mapping.Content = append(mapping.Content, stringNode(key), value)
}

func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.DoubleQuotedStyle, Value: s}
}

func encodeNode(buf *bytes.Buffer, n *yaml.Node) error {
	switch n.Kind {
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeString(buf, n.Content[i].Value); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := encodeNode(buf, n.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeNode(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!str":
			return writeString(buf, n.Value)
		case "!!null":
			buf.WriteString("null")
		default:
			// bool, int and float scalars came from JSON literals and are valid as-is.
			buf.WriteString(n.Value)
		}
	default:
		return fmt.Errorf("unsupported manifest node kind %d", n.Kind)
	}
	return nil
}

// writeString quotes s as a JSON string without HTML escaping.
func writeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode manifest string: %w", err)
	}
	buf.WriteString(strings.TrimSuffix(tmp.String(), "\n"))
	return nil
}
