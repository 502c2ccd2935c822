package schema

import (
	"encoding/json"
	"fmt"
)

// ForCapabilityType returns a JSON Schema constraining a capability write
// payload ({"value": ...}) to the capability's declared type tag. An empty
// or unknown type tag yields nil, which skips validation — the platform
// itself is then the authority on whether the value is acceptable.
func ForCapabilityType(typ string) json.RawMessage {
	switch typ {
	case "boolean", "number", "string":
		return json.RawMessage(fmt.Sprintf(`{
			"type": "object",
			"properties": {
				"value": {"type": %q}
			},
			"required": ["value"],
			"additionalProperties": false
		}`, typ))
	default:
		return nil
	}
}

// ValidateCapabilityValue checks value against the capability's declared
// type using the validator's schema cache.
func (v *Validator) ValidateCapabilityValue(typ string, value any) error {
	return v.Validate(ForCapabilityType(typ), map[string]any{"value": value})
}
