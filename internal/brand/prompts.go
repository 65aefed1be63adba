package brand

import (
	"encoding/json"
	"fmt"
	"strings"
)

// System messages for the three stages.
const (
	DesignerSystem = "You are a $50,000/project brand designer. Return ONLY valid JSON, no explanations. Create premium, distinctive work."
	CriticSystem   = "You are a senior brand strategist. Return ONLY valid JSON. Provide expert-level critique."
	ProducerSystem = "You are a production lead. Return ONLY valid JSON. Create premium deliverables."
)

// DesignerPrompt asks for the brand identity: logo, brand kit, voice,
// social templates, site map and differentiators.
func DesignerPrompt(p BusinessProfile, colors ColorPalette, style StyleAttributes) string {
	kw := IndustryKeywords(p.Industry)

	// same pick as DesignFallback, so a merged reply keeps one heading font
	heading := "Montserrat"
	if p.Style == "luxury" {
		heading = "Playfair Display"
	}

	return fmt.Sprintf(`You are a world-class brand designer creating a $50,000 brand identity for %[1]s.

BUSINESS PROFILE:
- Name: %[1]s
- Industry: %[2]s
- Style: %[3]s (%[4]s)
- Colors: %[5]s
- Industry Keywords: %[6]s

Create a PREMIUM brand identity. Return ONLY valid JSON:

{
  "logo": {
    "concept": "3-sentence detailed description of a distinctive, memorable logo that perfectly embodies %[3]s aesthetics for %[2]s",
    "iconDescription": "Specific description of the icon/symbol with meaning",
    "typographyStyle": "Typography treatment description",
    "symbolMeaning": "What the logo symbolizes",
    "primaryColor": "%[7]s",
    "secondaryColor": "%[8]s",
    "accentColor": "%[9]s",
    "style": "%[3]s",
    "variations": ["Full color", "Stacked", "Icon only", "Wordmark", "Monochrome dark", "Monochrome light", "Reversed", "Favicon", "Social profile", "Watermark"]
  },
  "brandKit": {
    "colors": {
      "primary": "%[7]s",
      "secondary": "%[8]s",
      "accent": "%[9]s",
      "background": "%[10]s",
      "surface": "%[11]s",
      "text": "%[12]s",
      "textMuted": "%[13]s"
    },
    "fonts": {
      "heading": "%[14]s",
      "body": "Inter",
      "accent": "Space Grotesk"
    }
  },
  "voice": ["%[15]s", "%[16]s", "%[17]s", "expert", "trustworthy"],
  "socialTemplates": [
    {"title": "Brand Launch", "platform": "All", "idea": "Grand reveal with brand story", "contentType": "video"},
    {"title": "Value Post", "platform": "LinkedIn", "idea": "Industry expertise showcase", "contentType": "carousel"},
    {"title": "Behind Scenes", "platform": "Instagram", "idea": "Authentic team content", "contentType": "stories"},
    {"title": "Customer Story", "platform": "All", "idea": "Success testimonial", "contentType": "testimonial"},
    {"title": "Tips Thread", "platform": "Twitter", "idea": "Expert advice thread", "contentType": "thread"}
  ],
  "websitePages": [
    {"name": "Home", "slug": "/", "purpose": "Convert visitors with compelling value proposition"},
    {"name": "About", "slug": "/about", "purpose": "Build trust through story and team"},
    {"name": "Services", "slug": "/services", "purpose": "Showcase offerings with clear CTAs"},
    {"name": "Portfolio", "slug": "/portfolio", "purpose": "Display work and case studies"},
    {"name": "Testimonials", "slug": "/testimonials", "purpose": "Social proof and reviews"},
    {"name": "Blog", "slug": "/blog", "purpose": "Establish authority"},
    {"name": "Contact", "slug": "/contact", "purpose": "Capture leads"}
  ],
  "moodboard": ["%[18]s"],
  "competitorDifferentiators": ["Superior %[19]s", "Personalized approach", "%[3]s aesthetic", "Deep %[2]s expertise", "Results-focused"]
}`,
		p.Name, p.Industry, p.Style, style.Mood, p.Colors, strings.Join(kw, ", "),
		colors.Primary, colors.Secondary, colors.Accent,
		colors.Background, colors.Surface, colors.Text, colors.TextMuted,
		heading,
		style.adjective(0), style.adjective(1), style.adjective(2),
		strings.Join(style.Adjectives, `", "`),
		kw[0],
	)
}

// CriticPrompt asks for scores and a critique of the Designer output.
func CriticPrompt(p BusinessProfile, design DesignAssets) string {
	concept := design.Logo.Concept
	if concept == "" {
		concept = "Modern professional logo"
	}

	return fmt.Sprintf(`You are a senior brand strategist reviewing a $50,000 brand package.

BRAND: %[1]s
INDUSTRY: %[2]s
STYLE: %[3]s
LOGO CONCEPT: %[4]s
COLORS: %[5]s

Provide expert critique. Return ONLY valid JSON:

{
  "overallScore": 8.5,
  "brandScore": 8,
  "uxScore": 9,
  "marketFitScore": 8.5,
  "strengths": [
    "Detailed strength 1 with specific reasoning",
    "Detailed strength 2 with specific reasoning",
    "Detailed strength 3 with specific reasoning",
    "Detailed strength 4 with specific reasoning"
  ],
  "weaknesses": [
    "Constructive weakness 1 with solution",
    "Constructive weakness 2 with solution"
  ],
  "improvements": [
    "Specific actionable improvement 1",
    "Specific actionable improvement 2",
    "Specific actionable improvement 3"
  ],
  "competitiveAnalysis": "2-sentence analysis of competitive positioning in %[2]s",
  "targetAudienceAlignment": "2-sentence assessment of target audience resonance"
}`, p.Name, p.Industry, p.Style, concept, paletteJSON(design.BrandKit.Colors))
}

// ProducerPrompt asks for the final deliverables. Only logoFinal,
// brandGuidelines and websiteCopy are read back from the reply.
func ProducerPrompt(p BusinessProfile, design DesignAssets) string {
	colors := paletteJSON(design.BrandKit.Colors)

	return fmt.Sprintf(`You are a production lead creating final deliverables for a $50,000 brand package.

BUSINESS: %[1]s
INDUSTRY: %[2]s
COLORS: %[3]s

Create PREMIUM final assets. Return ONLY valid JSON:

{
  "logoFinal": {
    "description": "Comprehensive description of final logo with all specifications",
    "files": ["Logo_Primary.svg", "Logo_Stacked.svg", "Logo_Icon.svg", "Logo_Mono_Dark.svg", "Logo_Mono_Light.svg", "Logo_Reversed.svg", "Favicon.ico", "Social_Profile.png", "OG_Image.png"],
    "colors": %[3]s
  },
  "brandGuidelines": {
    "colorUsage": "Detailed color application guidelines",
    "typography": "Complete typography specifications",
    "dos": ["Professional do 1", "Professional do 2", "Professional do 3", "Professional do 4"],
    "donts": ["Clear dont 1", "Clear dont 2", "Clear dont 3"]
  },
  "socialCalendar": [
    {"day": 1, "platform": "Instagram", "post": "🚀 Exciting launch caption for %[1]s!", "bestTime": "9am"},
    {"day": 2, "platform": "LinkedIn", "post": "Professional intro post for %[2]s", "bestTime": "12pm"},
    {"day": 3, "platform": "Twitter", "post": "Engaging tweet about %[1]s", "bestTime": "10am"},
    {"day": 4, "platform": "Facebook", "post": "Community-focused post", "bestTime": "2pm"},
    {"day": 5, "platform": "Instagram", "post": "Behind the scenes content", "bestTime": "6pm"}
  ],
  "websiteCopy": {
    "home": {
      "headline": "Compelling headline for %[1]s",
      "subheadline": "Value-driven subheadline",
      "cta": "Get Started Today"
    },
    "about": {
      "headline": "Our Story",
      "story": "Compelling 2-sentence brand story"
    },
    "services": {
      "headline": "What We Offer",
      "features": ["Premium Feature 1", "Premium Feature 2", "Premium Feature 3", "Premium Feature 4"]
    }
  },
  "clientPortalFeatures": ["Dashboard", "Project Tracking", "File Management", "Messaging", "Invoices & Payments", "Approvals", "Calendar", "Resources", "Support", "Settings"],
  "adminDashboardFeatures": ["Analytics", "User Management", "Projects", "Orders", "Content", "Clients", "Team", "Reports", "Integrations", "Settings"]
}`, p.Name, p.Industry, colors)
}

// LogoImagePrompt describes the logo for the image model.
func LogoImagePrompt(p BusinessProfile, design DesignAssets) string {
	concept := design.Logo.Concept
	if concept == "" {
		concept = "clean modern design"
	}
	return fmt.Sprintf(`%s professional logo design for "%s", %s business, %s color scheme, %s, vector style, white background, high quality, professional`,
		p.Style, p.Name, p.Industry, p.Colors, concept)
}

func paletteJSON(c ColorPalette) string {
	data, err := json.Marshal(c)
	if err != nil {
		return "{}"
	}
	return string(data)
}
