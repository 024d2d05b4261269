package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes a translation file into language sections of nested keys.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)
	// SupportsFileExtension accepts the extension with or without a leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile picks a parser by file extension, or returns nil.
func NewParserForFile(filename string) Parser {
	for _, p := range []Parser{NewYAMLParser(), NewJSONParser()} {
		if p.SupportsFileExtension(path.Ext(filename)) {
			return p
		}
	}
	return nil
}

type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

func (p *JSONParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	return decode(ctx, content, json.Unmarshal)
}

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return hasExtension(ext, "json")
}

type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	return decode(ctx, content, yaml.Unmarshal)
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	return hasExtension(ext, "yaml", "yml")
}

func hasExtension(ext string, want ...string) bool {
	ext = strings.TrimPrefix(ext, ".")
	for _, w := range want {
		if strings.EqualFold(ext, w) {
			return true
		}
	}
	return false
}

func decode(ctx context.Context, content []byte, unmarshal func([]byte, any) error) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParse, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, section := range data {
		tree, ok := normalize(section).(map[string]any)
		if !ok {
			return nil, errors.Join(ErrInvalidStructure,
				fmt.Errorf("language %q: expected a map, got %T", lang, section))
		}
		result[lang] = tree
	}
	return result, nil
}

// normalize turns map[any]any nodes into map[string]any so lookups
// only need to handle one map type.
func normalize(v any) any {
	switch node := v.(type) {
	case map[string]any:
		for k, child := range node {
			node[k] = normalize(child)
		}
		return node
	case map[any]any:
		out := make(map[string]any, len(node))
		for k, child := range node {
			out[fmt.Sprint(k)] = normalize(child)
		}
		return out
	case []any:
		for i, child := range node {
			node[i] = normalize(child)
		}
		return node
	default:
		return v
	}
}
