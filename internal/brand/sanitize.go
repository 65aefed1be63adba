package brand

import (
	"regexp"
	"strings"
)

var fenceRe = regexp.MustCompile("(?i)```(?:json)?\\s*")

// SanitizeJSON strips markdown fences and surrounding chatter from a model
// reply and returns the span from the first '{' to the last '}'. When no
// such span exists the trimmed text is returned as is. The result may still
// fail to parse.
func SanitizeJSON(raw string) string {
	cleaned := strings.TrimSpace(fenceRe.ReplaceAllString(raw, ""))

	first := strings.IndexByte(cleaned, '{')
	last := strings.LastIndexByte(cleaned, '}')
	if first != -1 && last > first {
		cleaned = cleaned[first : last+1]
	}
	return cleaned
}
