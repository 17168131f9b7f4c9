package gen

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// analysisSchema validates the JSON the model returns for résumé
// analysis before we unmarshal it. Every field is optional — the
// analysis is a partial résumé — but present fields must have the right
// shape.
const analysisSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "fullName": { "type": "string" },
    "summary": { "type": "string" },
    "skills": { "type": "string" },
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "title": { "type": "string" },
          "date": { "type": "string" },
          "content": { "type": "string" }
        }
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "title": { "type": "string" },
          "date": { "type": "string" },
          "content": { "type": "string" }
        }
      }
    },
    "projects": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": { "type": "string" },
          "description": { "type": "string" },
          "tech": { "type": "array", "items": { "type": "string" } }
        }
      }
    }
  }
}`

// validateAnalysis checks the raw model output against analysisSchema.
// Any failure — invalid JSON or a shape mismatch — comes back wrapping
// ErrMalformedResponse so callers can tell it apart from transport and
// credential errors.
func validateAnalysis(raw []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(analysisSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%w: %s", ErrMalformedResponse, strings.Join(msgs, "; "))
	}
	return nil
}
