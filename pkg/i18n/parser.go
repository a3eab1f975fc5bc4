package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes a translation file into messages keyed by language.
// The top level of a file maps language codes to nested message maps:
//
//	en:
//	  useragent:
//	    devices:
//	      mobile: Mobile
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)
	// SupportsFileExtension accepts the extension with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// ParserForFile picks a parser by file extension, or nil when none fits.
func ParserForFile(filename string) Parser {
	for _, p := range []Parser{YAMLParser{}, JSONParser{}} {
		if idx := strings.LastIndexByte(filename, '.'); idx >= 0 && p.SupportsFileExtension(filename[idx:]) {
			return p
		}
	}
	return nil
}

// YAMLParser parses .yaml and .yml files.
type YAMLParser struct{}

// Parse implements Parser.
func (YAMLParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return byLanguage(data)
}

// SupportsFileExtension implements Parser.
func (YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// JSONParser parses .json files.
type JSONParser struct{}

// Parse implements Parser.
func (JSONParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return byLanguage(data)
}

// SupportsFileExtension implements Parser.
func (JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

func byLanguage(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, v := range data {
		messages, ok := asMap(v)
		if !ok {
			return nil, fmt.Errorf("%w: language %q holds %T", ErrUnsupportedStructure, lang, v)
		}
		result[lang] = messages
	}
	return result, nil
}
