package ai

import "strings"

// normalizeAPIKey strips formatting noise that commonly ends up in env-var
// values: surrounding quotes, a "Bearer " prefix, escaped or real newlines,
// and any byte outside visible ASCII.
func normalizeAPIKey(raw string) string {
	key := strings.Trim(strings.TrimSpace(raw), `"'`)
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}

	const bearer = "bearer "
	if len(key) >= len(bearer) && strings.EqualFold(key[:len(bearer)], bearer) {
		key = key[len(bearer):]
	}

	key = strings.NewReplacer(`\r`, "", `\n`, "").Replace(key)

	filtered := make([]byte, 0, len(key))
	for i := 0; i < len(key); i++ {
		if b := key[i]; b >= 33 && b <= 126 {
			filtered = append(filtered, b)
		}
	}
	return string(filtered)
}

// HasKey reports whether raw still holds a usable key after normalization.
func HasKey(raw string) bool {
	return normalizeAPIKey(raw) != ""
}
