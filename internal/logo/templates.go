package logo

import (
	"fmt"
	"html"
	"strings"
	"unicode/utf8"
)

const svgOpen = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 300 100" width="300" height="100">`

// Fallback draws the template logo for category. Luxury and elegant get a
// serif outline mark, bold and strong a filled block; everything else the
// gradient badge.
func Fallback(name, primary, secondary, category string) string {
	lower := strings.ToLower(category)
	initials := html.EscapeString(Initials(name))
	text := html.EscapeString(name)
	width := utf8.RuneCountInString(name)

	switch {
	case strings.Contains(lower, "luxury") || strings.Contains(lower, "elegant"):
		return fmt.Sprintf(`%[1]s
  <defs>
    <linearGradient id="luxuryGrad" x1="0%%" y1="0%%" x2="100%%" y2="100%%">
      <stop offset="0%%" style="stop-color:%[2]s;stop-opacity:1" />
      <stop offset="100%%" style="stop-color:%[3]s;stop-opacity:1" />
    </linearGradient>
  </defs>
  <rect x="10" y="20" width="60" height="60" rx="4" fill="none" stroke="url(#luxuryGrad)" stroke-width="2"/>
  <text x="40" y="60" font-family="Georgia, serif" font-size="24" font-weight="400" fill="%[2]s" text-anchor="middle">%[4]s</text>
  <text x="90" y="58" font-family="Georgia, serif" font-size="22" font-weight="400" fill="%[2]s">%[5]s</text>
  <line x1="90" y1="68" x2="%[6]d" y2="68" stroke="%[3]s" stroke-width="1"/>
</svg>`, svgOpen, primary, secondary, initials, text, 90+width*10)

	case strings.Contains(lower, "bold") || strings.Contains(lower, "strong"):
		return fmt.Sprintf(`%[1]s
  <rect x="5" y="15" width="70" height="70" rx="8" fill="%[2]s"/>
  <text x="40" y="62" font-family="Arial Black, sans-serif" font-size="32" font-weight="900" fill="white" text-anchor="middle">%[4]s</text>
  <text x="90" y="45" font-family="Arial Black, sans-serif" font-size="20" font-weight="900" fill="%[2]s">%[5]s</text>
  <rect x="90" y="55" width="%[6]d" height="4" fill="%[3]s"/>
</svg>`, svgOpen, primary, secondary, initials, html.EscapeString(strings.ToUpper(name)), width*12)
	}

	label := strings.ToUpper(strings.TrimSpace(category))
	if label == "" {
		label = "PROFESSIONAL"
	}
	return fmt.Sprintf(`%[1]s
  <defs>
    <linearGradient id="grad1" x1="0%%" y1="0%%" x2="100%%" y2="100%%">
      <stop offset="0%%" style="stop-color:%[2]s;stop-opacity:1" />
      <stop offset="100%%" style="stop-color:%[3]s;stop-opacity:1" />
    </linearGradient>
  </defs>
  <circle cx="40" cy="50" r="30" fill="url(#grad1)"/>
  <text x="40" y="58" font-family="Arial, sans-serif" font-size="20" font-weight="bold" fill="white" text-anchor="middle">%[4]s</text>
  <text x="85" y="45" font-family="Arial, sans-serif" font-size="22" font-weight="bold" fill="%[2]s">%[5]s</text>
  <text x="85" y="65" font-family="Arial, sans-serif" font-size="10" fill="%[3]s" letter-spacing="2">%[6]s</text>
</svg>`, svgOpen, primary, secondary, initials, text, html.EscapeString(label))
}
