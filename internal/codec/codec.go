// Package codec serializes a task collection for storage.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"ltask/internal/task"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Codec encodes and decodes a collection.
//
// Decode returns a nil collection when the data holds no collection at all
// (null, an empty document) and a non-nil, possibly empty, collection
// otherwise. Callers rely on this to tell "nothing stored" from "stored empty".
type Codec interface {
	Format() string
	Encode(c task.Collection) ([]byte, error)
	Decode(data []byte) (task.Collection, error)
}

// ForFormat returns the codec for a format name.
func ForFormat(format string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatJSON:
		return JSON{}, nil
	case FormatYAML, "yml":
		return YAML{}, nil
	case FormatTOML:
		return TOML{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, yaml, toml)", format)
	}
}

// JSON stores the collection as a top-level array.
type JSON struct{}

func (JSON) Format() string { return FormatJSON }

func (JSON) Encode(c task.Collection) ([]byte, error) {
	if c == nil {
		c = task.Collection{}
	}
	return json.MarshalIndent(c, "", "  ")
}

func (JSON) Decode(data []byte) (task.Collection, error) {
	var c task.Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return c, nil
}

// YAML stores the collection as a top-level sequence.
type YAML struct{}

func (YAML) Format() string { return FormatYAML }

func (YAML) Encode(c task.Collection) ([]byte, error) {
	if c == nil {
		c = task.Collection{}
	}
	return yaml.Marshal(c)
}

func (YAML) Decode(data []byte) (task.Collection, error) {
	var c task.Collection
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return c, nil
}

// TOML stores the collection under a "tasks" array of tables; TOML documents
// cannot have a top-level array.
type TOML struct{}

type tomlDoc struct {
	Tasks task.Collection `toml:"tasks"`
}

func (TOML) Format() string { return FormatTOML }

func (TOML) Encode(c task.Collection) ([]byte, error) {
	if c == nil {
		c = task.Collection{}
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tomlDoc{Tasks: c}); err != nil {
		return nil, fmt.Errorf("encode toml: %w", err)
	}
	return buf.Bytes(), nil
}

func (TOML) Decode(data []byte) (task.Collection, error) {
	var doc tomlDoc
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	if !md.IsDefined("tasks") {
		return nil, nil
	}
	if doc.Tasks == nil {
		return task.Collection{}, nil
	}
	return doc.Tasks, nil
}
