package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/takehome_app/internal/apperrors"
	"github.com/SscSPs/takehome_app/internal/core/domain"
	"github.com/xeipuuv/gojsonschema"
)

// profileSchema describes the profile snapshot exported by the profile
// backend. Unknown fields are allowed.
const profileSchema = `{
  "type": "object",
  "properties": {
    "personalInfo": {
      "type": ["object", "null"],
      "properties": {
        "firstName": {"type": "string"},
        "lastName": {"type": "string"},
        "phone": {"type": "string"}
      }
    },
    "professionalInfo": {
      "type": ["object", "null"],
      "properties": {
        "jobTitle": {"type": "string"},
        "bio": {"type": "string"},
        "experience": {"type": "string"},
        "skills": {"type": ["array", "null"], "items": {"type": "string"}},
        "projects": {
          "type": ["array", "null"],
          "items": {
            "type": "object",
            "properties": {
              "title": {"type": "string"},
              "description": {"type": "string"}
            }
          }
        },
        "profileCompletion": {"type": ["integer", "null"], "minimum": 0, "maximum": 100}
      }
    }
  }
}`

var profileSchemaLoader = gojsonschema.NewStringLoader(profileSchema)

// ReadProfile decodes a profile snapshot, rejecting documents that do not
// match the profile schema.
func ReadProfile(r io.Reader) (*domain.Profile, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	result, err := gojsonschema.Validate(profileSchemaLoader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: profile is not valid JSON: %v", apperrors.ErrValidation, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(msgs, "; "))
	}

	var profile domain.Profile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return &profile, nil
}
