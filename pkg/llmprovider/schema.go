package llmprovider

import (
	"encoding/json"
	"strings"

	"taskflow/pkg/gemini"
)

// Schema types
const (
	TypeObject  = "object"
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
	TypeArray   = "array"
)

// Schema describes the JSON object a provider is asked to produce.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Format      string             `json:"format,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	// Ordering lists property names in the order they should be generated.
	Ordering []string `json:"-"`
}

// geminiFormats are the string formats Gemini's response schema accepts.
var geminiFormats = map[string]bool{"enum": true, "date-time": true}

// toGeminiSchema converts s into Gemini's OpenAPI subset.
// Unsupported string formats are folded into the description.
func toGeminiSchema(s *Schema) *gemini.Schema {
	if s == nil {
		return nil
	}

	out := &gemini.Schema{
		Type:             strings.ToUpper(s.Type),
		Description:      s.Description,
		Enum:             s.Enum,
		Required:         s.Required,
		PropertyOrdering: s.Ordering,
	}

	if s.Format != "" {
		if geminiFormats[s.Format] {
			out.Format = s.Format
		} else {
			out.Description = strings.TrimSpace(out.Description + " Format: " + s.Format + ".")
		}
	}

	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*gemini.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGeminiSchema(prop)
		}
	}

	return out
}

// schemaInstruction renders s as a system instruction for providers that
// only support a generic JSON mode.
func schemaInstruction(s *Schema) string {
	raw, err := json.Marshal(s)
	if err != nil {
		return jsonOnlyInstruction
	}
	return jsonOnlyInstruction + " The object must conform to this JSON schema: " + string(raw)
}

const jsonOnlyInstruction = "Respond with a single JSON object and nothing else."
