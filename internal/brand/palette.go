package brand

import "strings"

// ColorPalette is the resolved brand palette. Only the first three slots
// depend on the customer's color text; the rest are fixed.
type ColorPalette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"text"`
	TextMuted  string `json:"textMuted"`
	Success    string `json:"success"`
	Warning    string `json:"warning"`
	Error      string `json:"error"`
}

type namedColor struct {
	name string
	hex  string
}

// Match order is table order, not the order the customer typed the names in.
var colorTable = []namedColor{
	{"black", "#0F172A"},
	{"white", "#FFFFFF"},
	{"gold", "#F59E0B"},
	{"orange", "#F97316"},
	{"blue", "#3B82F6"},
	{"navy", "#1E3A8A"},
	{"red", "#EF4444"},
	{"green", "#22C55E"},
	{"purple", "#8B5CF6"},
	{"pink", "#EC4899"},
	{"teal", "#14B8A6"},
	{"gray", "#6B7280"},
	{"silver", "#9CA3AF"},
	{"brown", "#92400E"},
	{"yellow", "#EAB308"},
	{"cyan", "#06B6D4"},
	{"indigo", "#6366F1"},
	{"rose", "#F43F5E"},
	{"emerald", "#10B981"},
	{"amber", "#F59E0B"},
}

var accentPreference = []string{"gold", "emerald", "cyan", "rose"}

const (
	defaultPrimary   = "blue"
	defaultSecondary = "navy"
	defaultAccent    = "gold"
)

// ColorHex returns the hex value for a known color name.
func ColorHex(name string) (string, bool) {
	for _, c := range colorTable {
		if c.name == name {
			return c.hex, true
		}
	}
	return "", false
}

func mustHex(name string) string {
	hex, _ := ColorHex(name)
	return hex
}

// MatchColors lists every known color name contained in text, in table order.
func MatchColors(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, c := range colorTable {
		if strings.Contains(lower, c.name) {
			found = append(found, c.name)
		}
	}
	return found
}

// ResolveColors maps free-text color preferences onto a full palette.
// Matches fill primary, secondary and accent in order. When exactly two
// names match, the accent is the first preferred accent not already used.
func ResolveColors(text string) ColorPalette {
	found := MatchColors(text)

	primary, secondary, accent := defaultPrimary, defaultSecondary, defaultAccent
	if len(found) >= 1 {
		primary = found[0]
	}
	if len(found) >= 2 {
		secondary = found[1]
	}
	if len(found) >= 3 {
		accent = found[2]
	}
	if len(found) == 2 {
		for _, opt := range accentPreference {
			if opt != found[0] && opt != found[1] {
				accent = opt
				break
			}
		}
	}

	return ColorPalette{
		Primary:    mustHex(primary),
		Secondary:  mustHex(secondary),
		Accent:     mustHex(accent),
		Background: "#FFFFFF",
		Surface:    "#F8FAFC",
		Text:       "#0F172A",
		TextMuted:  "#64748B",
		Success:    "#22C55E",
		Warning:    "#F59E0B",
		Error:      "#EF4444",
	}
}
