package brand

import "strings"

// StyleAttributes describes the visual direction derived from the
// customer's style text.
type StyleAttributes struct {
	Adjectives []string `json:"adjectives"`
	Mood       string   `json:"mood"`
	Aesthetic  string   `json:"aesthetic"`
}

type styleEntry struct {
	key   string
	attrs StyleAttributes
}

var styleTable = []styleEntry{
	{"modern", StyleAttributes{
		Adjectives: []string{"sleek", "contemporary", "clean", "sophisticated"},
		Mood:       "forward-thinking and innovative",
		Aesthetic:  "minimalist with bold accents",
	}},
	{"minimal", StyleAttributes{
		Adjectives: []string{"clean", "simple", "elegant", "refined"},
		Mood:       "calm and focused",
		Aesthetic:  "lots of whitespace, simple typography",
	}},
	{"luxury", StyleAttributes{
		Adjectives: []string{"premium", "exclusive", "elegant", "sophisticated"},
		Mood:       "opulent and prestigious",
		Aesthetic:  "rich colors, gold accents, serif fonts",
	}},
	{"playful", StyleAttributes{
		Adjectives: []string{"fun", "vibrant", "energetic", "friendly"},
		Mood:       "joyful and approachable",
		Aesthetic:  "bright colors, rounded shapes, casual fonts",
	}},
	{"bold", StyleAttributes{
		Adjectives: []string{"strong", "powerful", "confident", "impactful"},
		Mood:       "commanding and assertive",
		Aesthetic:  "high contrast, large typography, geometric shapes",
	}},
	{"professional", StyleAttributes{
		Adjectives: []string{"trustworthy", "reliable", "established", "competent"},
		Mood:       "confident and dependable",
		Aesthetic:  "classic colors, clean lines, balanced layouts",
	}},
	{"vintage", StyleAttributes{
		Adjectives: []string{"classic", "timeless", "nostalgic", "authentic"},
		Mood:       "warm and established",
		Aesthetic:  "muted colors, ornate details, serif fonts",
	}},
	{"tech", StyleAttributes{
		Adjectives: []string{"innovative", "cutting-edge", "futuristic", "smart"},
		Mood:       "progressive and dynamic",
		Aesthetic:  "gradients, dark mode, sans-serif fonts",
	}},
}

// ResolveStyle returns the first style entry whose key occurs in text,
// or the modern entry. The returned slices are copies.
func ResolveStyle(text string) StyleAttributes {
	lower := strings.ToLower(text)
	if lower == "" {
		lower = "modern"
	}
	for _, s := range styleTable {
		if strings.Contains(lower, s.key) {
			return s.attrs.clone()
		}
	}
	return styleTable[0].attrs.clone()
}

func (s StyleAttributes) clone() StyleAttributes {
	s.Adjectives = append([]string(nil), s.Adjectives...)
	return s
}

// adjective returns the i-th adjective, or "" when the table entry is short.
func (s StyleAttributes) adjective(i int) string {
	if i < len(s.Adjectives) {
		return s.Adjectives[i]
	}
	return ""
}

type industryEntry struct {
	key      string
	keywords []string
}

var industryTable = []industryEntry{
	{"food", []string{"delicious", "fresh", "homemade", "gourmet", "tasty", "quality ingredients"}},
	{"restaurant", []string{"dining", "cuisine", "chef", "menu", "reservation", "experience"}},
	{"tech", []string{"innovative", "cutting-edge", "digital", "smart", "automated", "seamless"}},
	{"health", []string{"wellness", "care", "healing", "vitality", "natural", "holistic"}},
	{"fitness", []string{"strength", "energy", "transformation", "results", "motivation", "goals"}},
	{"beauty", []string{"radiant", "elegant", "luxurious", "rejuvenate", "glow", "pamper"}},
	{"retail", []string{"quality", "selection", "value", "style", "trending", "exclusive"}},
	{"consulting", []string{"expert", "strategic", "results-driven", "tailored", "insights", "growth"}},
	{"real estate", []string{"dream home", "investment", "location", "property", "community", "lifestyle"}},
	{"legal", []string{"justice", "advocacy", "protection", "expertise", "trust", "representation"}},
	{"finance", []string{"wealth", "security", "growth", "planning", "returns", "prosperity"}},
	{"education", []string{"learning", "growth", "knowledge", "success", "future", "potential"}},
	{"automotive", []string{"performance", "reliability", "craftsmanship", "innovation", "power", "precision"}},
	{"construction", []string{"quality", "craftsmanship", "reliable", "built to last", "professional", "trusted"}},
}

var defaultIndustryKeywords = []string{"excellence", "quality", "trusted", "professional", "dedicated", "results"}

// IndustryKeywords returns six marketing keywords for the industry text.
func IndustryKeywords(industry string) []string {
	lower := strings.ToLower(industry)
	for _, e := range industryTable {
		if strings.Contains(lower, e.key) {
			return append([]string(nil), e.keywords...)
		}
	}
	return append([]string(nil), defaultIndustryKeywords...)
}

// capitalize upper-cases the first byte of an ASCII word.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
