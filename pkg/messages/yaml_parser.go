package messages

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// parseYAML decodes a locale document of the form
//
//	en:
//	  errors:
//	    invalid_input: "..."
//
// into language → nested message tree.
func parseYAML(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		tree, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidStructure, lang, val)
		}
		result[lang] = tree
	}

	if len(result) == 0 {
		return nil, ErrNoMessages
	}
	return result, nil
}
