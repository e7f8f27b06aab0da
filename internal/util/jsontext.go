package util

import "strings"

// StripFences removes the markdown code fence some backends wrap around
// JSON output, plus an optional leading language tag, so the remainder can
// be handed to a strict JSON decoder. Text without a fence is only trimmed.
func StripFences(s string) string {
	cleaned := strings.TrimSpace(s)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}

	cleaned = strings.Trim(cleaned, "`")
	cleaned = strings.TrimSpace(cleaned)
	if len(cleaned) >= 4 && strings.EqualFold(cleaned[:4], "json") {
		cleaned = cleaned[4:]
	}
	return strings.TrimSpace(cleaned)
}
