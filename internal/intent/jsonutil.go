package intent

import (
	"encoding/json"
	"fmt"
	"strings"
)

// extractJSONObject pulls the single JSON object out of an oracle response.
// Models sometimes wrap the object in a markdown code fence or surround it
// with prose, so fencing is stripped and the response is scanned for the
// outermost balanced braces before unmarshalling.
func extractJSONObject(raw string, v interface{}) error {
	s := stripCodeFence(strings.TrimSpace(raw))

	start := strings.IndexByte(s, '{')
	if start < 0 {
		return fmt.Errorf("no JSON object in response")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				if err := json.Unmarshal([]byte(s[start:i+1]), v); err != nil {
					return fmt.Errorf("invalid JSON object: %w", err)
				}
				return nil
			}
		}
	}
	return fmt.Errorf("unbalanced JSON object in response")
}

// stripCodeFence removes a surrounding markdown code fence, with or without
// a language tag.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		// drop the language tag line ("json", "JSON", or empty)
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
