package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names accepted by CodecFor
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Codec encodes snapshot documents
type Codec interface {
	Name() string
	Extension() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// CodecFor returns the codec for a format name; empty selects YAML
func CodecFor(format string) (Codec, error) {
	switch strings.ToLower(format) {
	case "", FormatYAML, "yml":
		return YAMLCodec{}, nil
	case FormatJSON:
		return JSONCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown snapshot format %q (must be: yaml, json)", format)
	}
}

// YAMLCodec writes human-readable YAML documents
type YAMLCodec struct{}

func (YAMLCodec) Name() string      { return FormatYAML }
func (YAMLCodec) Extension() string { return ".yaml" }

func (YAMLCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (YAMLCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// JSONCodec writes indented JSON documents
type JSONCodec struct{}

func (JSONCodec) Name() string      { return FormatJSON }
func (JSONCodec) Extension() string { return ".json" }

func (JSONCodec) Marshal(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
