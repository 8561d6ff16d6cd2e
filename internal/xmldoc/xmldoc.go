// Package xmldoc reads and writes the generic element trees behind the
// ES-DE gamelist documents. Documents are plain nested maps so that
// elements this tool does not know about survive a read-modify-write
// cycle untouched.
package xmldoc

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/clbanning/mxj/v2"
)

// Document is a parsed XML tree keyed by element name. A repeating child
// element appears either as a single node or as a slice of nodes,
// depending on how many occurrences the source document had; use AsList
// to normalize.
type Document = map[string]interface{}

// Load parses the XML file at path. A missing file or malformed content
// yields an empty document: callers treat "no file yet" and "empty file"
// as the same valid state.
func Load(path string) Document {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Unable to read XML document, treating as empty", "path", path, "err", err)
		}
		return Document{}
	}

	m, err := mxj.NewMapXml(data)
	if err != nil {
		slog.Warn("Malformed XML document, treating as empty", "path", path, "err", err)
		return Document{}
	}
	return Document(m)
}

// Marshal serializes the document to indented XML.
func Marshal(doc Document) ([]byte, error) {
	data, err := mxj.Map(doc).XmlIndent("", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize XML document: %w", err)
	}
	return data, nil
}

// Save serializes doc and overwrites the file at path, creating parent
// directories as needed. The content is fully built before the file is
// touched, so a serialization failure never truncates the previous state.
func Save(path string, doc Document) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create document directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write XML document %s: %w", path, err)
	}
	return nil
}

// AsList normalizes a repeating element to a slice of nodes. The codec
// represents one occurrence as a single node and several as a slice;
// absent or non-element values come back as an empty slice.
func AsList(v interface{}) []Document {
	switch t := v.(type) {
	case map[string]interface{}:
		return []Document{t}
	case []interface{}:
		nodes := make([]Document, 0, len(t))
		for _, item := range t {
			if node, ok := item.(map[string]interface{}); ok {
				nodes = append(nodes, node)
			}
		}
		return nodes
	default:
		return nil
	}
}

// ChildList walks doc along keys and normalizes the final value with
// AsList. Any missing step yields an empty slice.
func ChildList(doc Document, keys ...string) []Document {
	var v interface{} = doc
	for _, key := range keys {
		node, ok := v.(map[string]interface{})
		if !ok {
			return nil
		}
		v = node[key]
	}
	return AsList(v)
}

// Str returns the text content of a leaf element, or "" when the element
// is absent, empty, or not a leaf.
func Str(node Document, key string) string {
	if s, ok := node[key].(string); ok {
		return s
	}
	return ""
}
