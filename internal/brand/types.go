package brand

import (
	"encoding/json"
	"strings"
)

// BusinessProfile is what the customer told us about their business.
type BusinessProfile struct {
	Name           string `json:"name"`
	Industry       string `json:"industry"`
	Style          string `json:"style"`
	Colors         string `json:"colors"`
	Email          string `json:"email,omitempty"`
	Slogan         string `json:"slogan,omitempty"`
	TargetAudience string `json:"targetAudience,omitempty"`
}

// styleOr returns the profile style, or def when none was given.
func (p BusinessProfile) styleOr(def string) string {
	if p.Style == "" {
		return def
	}
	return p.Style
}

// StringList is a list of strings that also accepts a comma-separated
// string, or an object carrying a "tone" field, when decoded. Models are
// inconsistent about these fields. Shapes it cannot use leave the list
// unchanged.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var arr []any
	if err := json.Unmarshal(data, &arr); err == nil {
		out := make(StringList, 0, len(arr))
		for _, v := range arr {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		*l = out
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = splitList(s)
		return nil
	}

	var obj struct {
		Tone json.RawMessage `json:"tone"`
	}
	if err := json.Unmarshal(data, &obj); err == nil && len(obj.Tone) > 0 && string(obj.Tone) != "null" {
		return l.UnmarshalJSON(obj.Tone)
	}
	return nil
}

func splitList(s string) StringList {
	parts := strings.Split(s, ",")
	out := make(StringList, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ---- Stage 1: Designer ----

// DesignAssets is the Designer stage output.
type DesignAssets struct {
	Logo                      LogoDesign      `json:"logo"`
	BrandKit                  BrandKit        `json:"brandKit"`
	Voice                     StringList      `json:"voice"`
	VoiceGuidelines           VoiceGuidelines `json:"voiceGuidelines"`
	SocialTemplates           []SocialIdea    `json:"socialTemplates"`
	WebsitePages              []PagePlan      `json:"websitePages"`
	Moodboard                 StringList      `json:"moodboard"`
	CompetitorDifferentiators StringList      `json:"competitorDifferentiators"`
}

type LogoDesign struct {
	Concept         string     `json:"concept"`
	IconDescription string     `json:"iconDescription"`
	TypographyStyle string     `json:"typographyStyle"`
	SymbolMeaning   string     `json:"symbolMeaning"`
	PrimaryColor    string     `json:"primaryColor"`
	SecondaryColor  string     `json:"secondaryColor"`
	AccentColor     string     `json:"accentColor"`
	Style           string     `json:"style"`
	Variations      StringList `json:"variations"`
	UseCases        StringList `json:"useCases"`
}

type BrandKit struct {
	Colors       ColorPalette `json:"colors"`
	Typography   Typography   `json:"typography"`
	Fonts        *FontSet     `json:"fonts,omitempty"`
	Spacing      []int        `json:"spacing"`
	BorderRadius string       `json:"borderRadius"`
	Shadows      Shadows      `json:"shadows"`
	Gradients    StringList   `json:"gradients"`
}

// HeadingFont prefers the model's font pick over the typography table.
func (k BrandKit) HeadingFont() string {
	if k.Fonts != nil && k.Fonts.Heading != "" {
		return k.Fonts.Heading
	}
	if k.Typography.HeadingFont != "" {
		return k.Typography.HeadingFont
	}
	return "Montserrat"
}

// BodyFont prefers the model's font pick over the typography table.
func (k BrandKit) BodyFont() string {
	if k.Fonts != nil && k.Fonts.Body != "" {
		return k.Fonts.Body
	}
	if k.Typography.BodyFont != "" {
		return k.Typography.BodyFont
	}
	return "Inter"
}

type Typography struct {
	HeadingFont string    `json:"headingFont"`
	BodyFont    string    `json:"bodyFont"`
	AccentFont  string    `json:"accentFont"`
	Scale       TypeScale `json:"scale"`
}

type TypeScale struct {
	H1    string `json:"h1"`
	H2    string `json:"h2"`
	H3    string `json:"h3"`
	H4    string `json:"h4"`
	Body  string `json:"body"`
	Small string `json:"small"`
	Tiny  string `json:"tiny"`
}

type FontSet struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
	Accent  string `json:"accent"`
}

type Shadows struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
	Glow   string `json:"glow"`
}

type VoiceGuidelines struct {
	Tone            string     `json:"tone"`
	Personality     StringList `json:"personality"`
	DoSay           StringList `json:"doSay"`
	DontSay         StringList `json:"dontSay"`
	SampleHeadlines StringList `json:"sampleHeadlines"`
}

type SocialIdea struct {
	Title       string `json:"title"`
	Platform    string `json:"platform"`
	Idea        string `json:"idea"`
	ContentType string `json:"contentType"`
}

type PagePlan struct {
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Purpose string `json:"purpose"`
}

// ---- Stage 2: Critic ----

// Critique is the Critic stage output. Scores are on a 0-10 scale.
type Critique struct {
	OverallScore            float64    `json:"overallScore"`
	BrandScore              float64    `json:"brandScore"`
	UXScore                 float64    `json:"uxScore"`
	MarketFitScore          float64    `json:"marketFitScore"`
	MemorabilityScore       float64    `json:"memorabilityScore"`
	VersatilityScore        float64    `json:"versatilityScore"`
	Strengths               StringList `json:"strengths"`
	Weaknesses              StringList `json:"weaknesses"`
	Improvements            StringList `json:"improvements"`
	CompetitiveAnalysis     string     `json:"competitiveAnalysis"`
	TargetAudienceAlignment string     `json:"targetAudienceAlignment"`
	Recommendations         StringList `json:"recommendations"`
}

// ---- Stage 3: Producer ----

// FinalAssets is the Producer stage output.
type FinalAssets struct {
	LogoFinal              LogoFinal       `json:"logoFinal"`
	BrandGuidelines        BrandGuidelines `json:"brandGuidelines"`
	SocialCalendar         []SocialPost    `json:"socialCalendar"`
	WebsiteCopy            WebsiteCopy     `json:"websiteCopy"`
	ClientPortalFeatures   []Feature       `json:"clientPortalFeatures"`
	AdminDashboardFeatures []Feature       `json:"adminDashboardFeatures"`
	LaunchPlan             []LaunchTask    `json:"launchPlan"`
	EmailSequences         []EmailMessage  `json:"emailSequences"`
	SEOStrategy            SEOStrategy     `json:"seoStrategy"`
	CompetitiveAdvantages  StringList      `json:"competitiveAdvantages"`
	KPIs                   []KPI           `json:"kpis"`
}

// producerKeys are the FinalAssets fields taken from the model reply. All
// other fields always come from the fallback.
var producerKeys = []string{"logoFinal", "brandGuidelines", "websiteCopy"}

type LogoFinal struct {
	Description    string     `json:"description"`
	Files          StringList `json:"files"`
	Colors         LogoColors `json:"colors"`
	ClearSpace     string     `json:"clearSpace"`
	MinimumSize    string     `json:"minimumSize"`
	IncorrectUsage StringList `json:"incorrectUsage"`
}

type LogoColors struct {
	Primary     string `json:"primary"`
	Secondary   string `json:"secondary"`
	Accent      string `json:"accent"`
	OnPrimary   string `json:"onPrimary"`
	OnSecondary string `json:"onSecondary"`
}

type BrandGuidelines struct {
	Overview           string       `json:"overview"`
	ColorUsage         string       `json:"colorUsage"`
	ColorAccessibility string       `json:"colorAccessibility"`
	Typography         string       `json:"typography"`
	TypographyScale    TypeScale    `json:"typographyScale"`
	Spacing            string       `json:"spacing"`
	Dos                StringList   `json:"dos"`
	Donts              StringList   `json:"donts"`
	VoiceAndTone       VoiceAndTone `json:"voiceAndTone"`
	Photography        Photography  `json:"photography"`
	Iconography        Iconography  `json:"iconography"`
}

type VoiceAndTone struct {
	Voice    string     `json:"voice"`
	Tone     string     `json:"tone"`
	Language string     `json:"language"`
	Examples StringList `json:"examples"`
}

type Photography struct {
	Style     string `json:"style"`
	Subjects  string `json:"subjects"`
	Treatment string `json:"treatment"`
	Avoid     string `json:"avoid"`
}

type Iconography struct {
	Style string `json:"style"`
	Color string `json:"color"`
	Size  string `json:"size"`
}

type SocialPost struct {
	Day            int        `json:"day"`
	Platform       string     `json:"platform"`
	ContentType    string     `json:"contentType"`
	Caption        string     `json:"caption"`
	Hashtags       StringList `json:"hashtags"`
	BestTime       string     `json:"bestTime"`
	MediaType      string     `json:"mediaType"`
	EngagementHook string     `json:"engagementHook"`
	CallToAction   string     `json:"callToAction"`
}

type WebsiteCopy struct {
	Global   GlobalCopy   `json:"global"`
	Home     HomeCopy     `json:"home"`
	About    AboutCopy    `json:"about"`
	Services ServicesCopy `json:"services"`
	Pricing  PricingCopy  `json:"pricing"`
	Contact  ContactCopy  `json:"contact"`
}

type GlobalCopy struct {
	SiteTitle    string `json:"siteTitle"`
	Tagline      string `json:"tagline"`
	CTAPrimary   string `json:"ctaPrimary"`
	CTASecondary string `json:"ctaSecondary"`
	Copyright    string `json:"copyright"`
}

// HomeCopy carries both the short hero fields a model returns (headline,
// subheadline, cta) and the full landing page copy.
type HomeCopy struct {
	Headline        string     `json:"headline"`
	Subheadline     string     `json:"subheadline"`
	CTA             string     `json:"cta"`
	MetaTitle       string     `json:"metaTitle"`
	MetaDescription string     `json:"metaDescription"`
	HeroHeadline    string     `json:"heroHeadline"`
	HeroSubheadline string     `json:"heroSubheadline"`
	HeroCTA         string     `json:"heroCta"`
	HeroSecondary   string     `json:"heroSecondary"`
	SocialProof     string     `json:"socialProof"`
	ValueProps      []IconCard `json:"valueProps"`
	FeaturedWork    Heading    `json:"featuredWork"`
	Testimonials    Heading    `json:"testimonials"`
	CTASection      CTASection `json:"ctaSection"`
}

type AboutCopy struct {
	Headline        string       `json:"headline"`
	Story           string       `json:"story"`
	MetaTitle       string       `json:"metaTitle"`
	MetaDescription string       `json:"metaDescription"`
	HeroHeadline    string       `json:"heroHeadline"`
	HeroSubheadline string       `json:"heroSubheadline"`
	StorySection    ContentBlock `json:"storySection"`
	Mission         ContentBlock `json:"mission"`
	Vision          ContentBlock `json:"vision"`
	Values          []TitledText `json:"values"`
	Team            Heading      `json:"team"`
}

type ServicesCopy struct {
	Headline        string         `json:"headline"`
	Features        StringList     `json:"features"`
	MetaTitle       string         `json:"metaTitle"`
	MetaDescription string         `json:"metaDescription"`
	HeroHeadline    string         `json:"heroHeadline"`
	HeroSubheadline string         `json:"heroSubheadline"`
	Services        []ServiceOffer `json:"services"`
	Process         ProcessSection `json:"process"`
	CTASection      CTASection     `json:"ctaSection"`
}

type PricingCopy struct {
	MetaTitle       string        `json:"metaTitle"`
	MetaDescription string        `json:"metaDescription"`
	HeroHeadline    string        `json:"heroHeadline"`
	HeroSubheadline string        `json:"heroSubheadline"`
	Tiers           []PricingTier `json:"tiers"`
	FAQ             []FAQ         `json:"faq"`
	Guarantee       string        `json:"guarantee"`
}

type ContactCopy struct {
	MetaTitle          string         `json:"metaTitle"`
	MetaDescription    string         `json:"metaDescription"`
	HeroHeadline       string         `json:"heroHeadline"`
	HeroSubheadline    string         `json:"heroSubheadline"`
	FormHeadline       string         `json:"formHeadline"`
	FormFields         StringList     `json:"formFields"`
	SubmitButton       string         `json:"submitButton"`
	ResponseTime       string         `json:"responseTime"`
	AlternativeContact ContactDetails `json:"alternativeContact"`
	MapSection         MapSection     `json:"mapSection"`
}

type Heading struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
}

type ContentBlock struct {
	Headline string `json:"headline"`
	Content  string `json:"content"`
}

type CTASection struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline,omitempty"`
	CTA         string `json:"cta"`
	Note        string `json:"note,omitempty"`
}

type IconCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type TitledText struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ServiceOffer struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Features    StringList `json:"features"`
	Icon        string     `json:"icon"`
}

type ProcessSection struct {
	Headline string        `json:"headline"`
	Steps    []ProcessStep `json:"steps"`
}

type ProcessStep struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type PricingTier struct {
	Name        string     `json:"name"`
	Price       string     `json:"price"`
	Period      string     `json:"period"`
	Description string     `json:"description"`
	Features    StringList `json:"features"`
	Limitations StringList `json:"limitations"`
	CTA         string     `json:"cta"`
	Highlighted bool       `json:"highlighted"`
	Badge       string     `json:"badge,omitempty"`
}

type FAQ struct {
	Q string `json:"q"`
	A string `json:"a"`
}

type ContactDetails struct {
	Headline string `json:"headline"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type MapSection struct {
	Headline string `json:"headline"`
	Note     string `json:"note"`
}

// Feature is a client portal or admin dashboard capability.
type Feature struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Icon        string `json:"icon"`
}

type LaunchTask struct {
	Week        int    `json:"week"`
	Day         int    `json:"day"`
	Category    string `json:"category"`
	Task        string `json:"task"`
	Priority    string `json:"priority"`
	Assignee    string `json:"assignee"`
	Deliverable string `json:"deliverable"`
}

type EmailMessage struct {
	Name      string `json:"name"`
	Trigger   string `json:"trigger"`
	Delay     string `json:"delay"`
	Subject   string `json:"subject"`
	Preheader string `json:"preheader"`
	Body      string `json:"body"`
	CTA       string `json:"cta"`
	CTAURL    string `json:"ctaUrl"`
}

type SEOStrategy struct {
	PrimaryKeywords         StringList `json:"primaryKeywords"`
	SecondaryKeywords       StringList `json:"secondaryKeywords"`
	LongTailKeywords        StringList `json:"longTailKeywords"`
	LocalKeywords           StringList `json:"localKeywords"`
	MetaTitleTemplate       string     `json:"metaTitleTemplate"`
	MetaDescriptionTemplate string     `json:"metaDescriptionTemplate"`
	SchemaTypes             StringList `json:"schemaTypes"`
	ContentPillars          StringList `json:"contentPillars"`
}

type KPI struct {
	Metric      string `json:"metric"`
	Target      string `json:"target"`
	Measurement string `json:"measurement"`
}
