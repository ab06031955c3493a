// pkg/catalog/registry.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"furnishing-engine/internal/common/errors"
)

// rulesSchema constrains the shape of an AutoConfigRules document. Loaded
// documents are validated against it before use so that a malformed ruleset
// is rejected at the boundary instead of surfacing mid-computation.
const rulesSchema = `{
  "type": "object",
  "required": ["version", "bunkCapacities", "bedroomMixRules", "commonAreaRules", "validation"],
  "properties": {
    "version": { "type": "string", "minLength": 1 },
    "bunkCapacities": {
      "type": "object",
      "additionalProperties": { "type": "integer", "minimum": 0 }
    },
    "bedroomMixRules": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "min_sqft", "max_sqft", "min_guests", "max_guests", "bedrooms"],
        "properties": {
          "id": { "type": "string", "minLength": 1 },
          "min_sqft": { "type": "integer", "minimum": 0 },
          "max_sqft": { "type": "integer", "minimum": 0 },
          "min_guests": { "type": "integer", "minimum": 0 },
          "max_guests": { "type": "integer", "minimum": 0 },
          "bedrooms": {
            "type": "object",
            "required": ["single", "double"],
            "properties": {
              "single": { "type": "integer", "minimum": 0 },
              "double": { "type": "integer", "minimum": 0 },
              "bunk": { "type": ["string", "null"], "enum": ["small", "medium", "large", null] }
            }
          }
        }
      }
    },
    "commonAreaRules": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "required": ["size_thresholds", "default"],
        "properties": {
          "presence": {
            "type": "object",
            "properties": {
              "present_if_sqft_gte": { "type": "integer", "minimum": 0 }
            }
          },
          "size_thresholds": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["size"],
              "properties": {
                "min_sqft": { "type": "integer", "minimum": 0 },
                "max_sqft": { "type": "integer", "minimum": 0 },
                "size": { "type": "string", "enum": ["none", "small", "medium", "large"] }
              }
            }
          },
          "default": { "type": "string", "enum": ["none", "small", "medium", "large"] }
        }
      }
    },
    "validation": {
      "type": "object",
      "required": ["global"],
      "properties": {
        "global": {
          "type": "object",
          "properties": {
            "min_sqft": { "type": "integer", "minimum": 0 },
            "max_sqft": { "type": "integer", "minimum": 0 },
            "min_guests": { "type": "integer", "minimum": 0 },
            "max_guests": { "type": "integer", "minimum": 0 }
          }
        }
      }
    }
  }
}`

// ValidateRulesDocument checks raw rules JSON against the document schema.
func ValidateRulesDocument(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(rulesSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return errors.NewRulesSchemaViolationError(err.Error())
	}

	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			details = append(details, e.String())
		}
		return errors.NewRulesSchemaViolationError(strings.Join(details, "; "))
	}

	return nil
}

// LoadRules reads and validates an AutoConfigRules document.
func LoadRules(path string) (*AutoConfigRules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewCatalogLoadFailedError(path, err)
	}

	if err := ValidateRulesDocument(data); err != nil {
		return nil, err
	}

	var rules AutoConfigRules
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, errors.NewCatalogLoadFailedError(path, err)
	}

	return &rules, nil
}

// LoadItems reads an item catalog document.
func LoadItems(path string) (*ItemCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewCatalogLoadFailedError(path, err)
	}

	var cat ItemCatalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, errors.NewCatalogLoadFailedError(path, err)
	}

	return &cat, nil
}

// LoadTemplates reads a room-template catalog document.
func LoadTemplates(path string) (*TemplateCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewCatalogLoadFailedError(path, err)
	}

	var cat TemplateCatalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, errors.NewCatalogLoadFailedError(path, err)
	}

	return &cat, nil
}

// ItemIndex builds an id lookup over catalog items. Duplicate ids keep the
// first occurrence.
func ItemIndex(items []Item) map[string]Item {
	idx := make(map[string]Item, len(items))
	for _, it := range items {
		if _, exists := idx[it.ID]; !exists {
			idx[it.ID] = it
		}
	}
	return idx
}

// TemplateIndex builds an id lookup over room templates. Duplicate ids keep
// the first occurrence.
func TemplateIndex(templates []RoomTemplate) map[string]RoomTemplate {
	idx := make(map[string]RoomTemplate, len(templates))
	for _, tpl := range templates {
		if _, exists := idx[tpl.ID]; !exists {
			idx[tpl.ID] = tpl
		}
	}
	return idx
}

// DescribeRules returns a one-line summary used by tooling output.
func DescribeRules(rules *AutoConfigRules) string {
	return fmt.Sprintf("version=%s bedroomMixRules=%d commonAreaRules=%d",
		rules.Version, len(rules.BedroomMixRules), len(rules.CommonAreaRules))
}
