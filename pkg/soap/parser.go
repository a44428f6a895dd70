package soap

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"

	"github.com/hjson/hjson-go"
	"gopkg.in/yaml.v3"
)

// Parser decodes dictionary files.
type Parser interface {
	// Parse decodes content into a Dictionary.
	Parse(ctx context.Context, content []byte) (*Dictionary, error)

	// SupportsFileExtension reports whether the parser handles ext, with or
	// without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	case "hjson":
		return NewHJSONParser()
	default:
		return nil
	}
}

// JSONParser implements the Parser interface for JSON files
type JSONParser struct{}

// NewJSONParser creates a parser for .json dictionaries.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse decodes a JSON dictionary.
func (p *JSONParser) Parse(ctx context.Context, content []byte) (*Dictionary, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrDictionaryCancelled, err)
	}

	var d Dictionary
	if err := json.Unmarshal(content, &d); err != nil {
		return nil, errors.Join(ErrFailedToParseDictionary, err)
	}
	return &d, nil
}

// SupportsFileExtension reports whether ext is .json.
func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

// YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

// NewYAMLParser creates a parser for .yaml and .yml dictionaries.
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse decodes a YAML dictionary.
func (p *YAMLParser) Parse(ctx context.Context, content []byte) (*Dictionary, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrDictionaryCancelled, err)
	}

	var d Dictionary
	if err := yaml.Unmarshal(content, &d); err != nil {
		return nil, errors.Join(ErrFailedToParseDictionary, err)
	}
	return &d, nil
}

// SupportsFileExtension reports whether ext is .yaml or .yml.
func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// HJSONParser implements the Parser interface for HJSON files. Comments,
// unquoted keys and trailing commas are accepted.
type HJSONParser struct{}

// NewHJSONParser creates a parser for .hjson dictionaries.
func NewHJSONParser() *HJSONParser {
	return &HJSONParser{}
}

// Parse decodes HJSON into a generic map first and then re-encodes it as JSON
// to reuse the struct tags of Dictionary.
func (p *HJSONParser) Parse(ctx context.Context, content []byte) (*Dictionary, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrDictionaryCancelled, err)
	}

	var raw map[string]interface{}
	if err := hjson.Unmarshal(content, &raw); err != nil {
		return nil, errors.Join(ErrFailedToParseDictionary, err)
	}

	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseDictionary, err)
	}

	var d Dictionary
	if err := json.Unmarshal(buf, &d); err != nil {
		return nil, errors.Join(ErrFailedToParseDictionary, err)
	}
	return &d, nil
}

// SupportsFileExtension reports whether ext is .hjson.
func (p *HJSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "hjson")
}
