// Package loader decodes dashboard documents from YAML or JSON.
package loader

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/huangsam/compareview/schema"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a document.
type Format string

// Supported document encodings.
const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// FormatOf picks the encoding from a file extension. Anything that is not
// .json is read as YAML, which also accepts plain JSON.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSON
	}
	return YAML
}

// Decode reads one document from r.
func Decode(r io.Reader, format Format) (schema.Document, error) {
	var doc schema.Document
	data, err := io.ReadAll(r)
	if err != nil {
		return doc, fmt.Errorf("failed to read document: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return doc, nil
	}
	switch format {
	case JSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return doc, fmt.Errorf("failed to decode JSON document: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return doc, fmt.Errorf("failed to decode YAML document: %w", err)
		}
	}
	return doc, nil
}

// LoadFile decodes the document at path.
func LoadFile(path string) (schema.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return schema.Document{}, err
	}
	defer func() { _ = file.Close() }()

	doc, err := Decode(file, FormatOf(path))
	if err != nil {
		return doc, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// FileSource loads a document from a fixed path each time it is asked.
type FileSource struct {
	Path string
}

// Load decodes the file.
func (s FileSource) Load() (schema.Document, error) {
	return LoadFile(s.Path)
}

// StaticSource always yields the same document.
type StaticSource struct {
	Document schema.Document
}

// Load returns the document.
func (s StaticSource) Load() (schema.Document, error) {
	return s.Document, nil
}
