package lecture

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaError reports which required top-level fields the generated
// payload is missing, so callers can tell a schema problem apart from
// malformed JSON.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("lecture payload missing required fields: %s", strings.Join(e.Missing, ", "))
}

// StripFences removes leading/trailing markdown code-fence markers from
// raw model output. Fence-wrapped and bare JSON must parse identically.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// Parse strips fence markers and decodes raw model output into a Spec.
// Invalid JSON returns the decode error; a JSON object without the
// slides or quiz keys returns a *SchemaError naming them.
func Parse(raw string) (*Spec, error) {
	cleaned := StripFences(raw)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		return nil, fmt.Errorf("parse lecture payload: %w", err)
	}

	var missing []string
	for _, key := range []string{"slides", "quiz"} {
		if _, ok := fields[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	var spec Spec
	if err := json.Unmarshal([]byte(cleaned), &spec); err != nil {
		return nil, fmt.Errorf("decode lecture payload: %w", err)
	}

	return &spec, nil
}
