package internal

import (
	"encoding/json"
	"strings"
)

// DecodeLooseJSON unmarshals model output that should be a single JSON object
// but may be wrapped in prose or a markdown fence. It tries the raw text
// first, then the widest brace-delimited substring. Returns false when
// nothing decodes.
func DecodeLooseJSON(text string, target any) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	if json.Unmarshal([]byte(text), target) == nil {
		return true
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return false
	}
	return json.Unmarshal([]byte(text[start:end+1]), target) == nil
}

// ParseConstitutionRules extracts the rule lines from a household
// constitution: every line starting with "- " is one rule.
func ParseConstitutionRules(constitution string) []string {
	var rules []string
	for _, line := range strings.Split(constitution, "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "- "); ok {
			if rule := strings.TrimSpace(rest); rule != "" {
				rules = append(rules, rule)
			}
		}
	}
	return rules
}
