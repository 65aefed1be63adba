package brand

import "fmt"

// DesignFallback builds a complete Designer output from fixed templates.
// It performs no I/O and is deterministic for a given input.
func DesignFallback(p BusinessProfile, colors ColorPalette, style StyleAttributes) DesignAssets {
	kw := IndustryKeywords(p.Industry)
	styleName := p.styleOr("modern")

	typeface, headingFont := "sans-serif", "Montserrat"
	if p.Style == "luxury" {
		typeface, headingFont = "serif", "Playfair Display"
	}
	radius := "8px"
	if p.Style == "playful" {
		radius = "16px"
	}

	return DesignAssets{
		Logo: LogoDesign{
			Concept: fmt.Sprintf("A %s %s logo for %s that embodies %s. The design features sophisticated typography paired with a distinctive icon that represents excellence in %s. The mark combines %s elements with %s aesthetics to create instant brand recognition.",
				style.adjective(0), styleName, p.Name, style.Mood, p.Industry, style.adjective(1), style.adjective(2)),
			IconDescription: fmt.Sprintf("Abstract symbol representing growth and %s in %s, designed with %s", kw[0], p.Industry, style.Aesthetic),
			TypographyStyle: fmt.Sprintf("%s %s typeface with custom letter spacing", style.adjective(0), typeface),
			SymbolMeaning:   fmt.Sprintf("Represents %s, %s, and the core values of %s", kw[1], kw[2], p.Name),
			PrimaryColor:    colors.Primary,
			SecondaryColor:  colors.Secondary,
			AccentColor:     colors.Accent,
			Style:           styleName,
			Variations: StringList{
				"Full color horizontal lockup",
				"Stacked/vertical version",
				"Icon mark only",
				"Wordmark only",
				"Monochrome (dark)",
				"Monochrome (light)",
				"Reversed for dark backgrounds",
				"Favicon/app icon",
				"Social media profile",
				"Watermark version",
			},
			UseCases: StringList{
				"Website header and footer",
				"Business cards and stationery",
				"Social media profiles",
				"Email signatures",
				"Signage and banners",
				"Merchandise and apparel",
				"Vehicle wraps",
				"Packaging and labels",
			},
		},
		BrandKit: BrandKit{
			Colors: colors,
			Typography: Typography{
				HeadingFont: headingFont,
				BodyFont:    "Inter",
				AccentFont:  "Space Grotesk",
				Scale: TypeScale{
					H1:    "48px/56px bold",
					H2:    "36px/44px semibold",
					H3:    "28px/36px semibold",
					H4:    "22px/30px medium",
					Body:  "16px/26px regular",
					Small: "14px/22px regular",
					Tiny:  "12px/18px medium",
				},
			},
			Spacing:      []int{4, 8, 12, 16, 24, 32, 48, 64, 96, 128},
			BorderRadius: radius,
			Shadows: Shadows{
				Small:  "0 1px 2px rgba(0,0,0,0.05)",
				Medium: "0 4px 6px -1px rgba(0,0,0,0.1)",
				Large:  "0 20px 25px -5px rgba(0,0,0,0.1)",
				Glow:   fmt.Sprintf("0 0 40px %s40", colors.Primary),
			},
			Gradients: StringList{
				fmt.Sprintf("linear-gradient(135deg, %s 0%%, %s 100%%)", colors.Primary, colors.Secondary),
				fmt.Sprintf("linear-gradient(135deg, %s 0%%, %s 100%%)", colors.Secondary, colors.Accent),
				fmt.Sprintf("linear-gradient(180deg, %s 0%%, %s 100%%)", colors.Background, colors.Surface),
			},
		},
		Voice: StringList{"professional", "confident", "approachable", "expert", "trustworthy"},
		VoiceGuidelines: VoiceGuidelines{
			Tone:        style.Mood,
			Personality: StringList(append([]string(nil), style.Adjectives...)),
			DoSay: StringList{
				fmt.Sprintf("We deliver %s results", kw[0]),
				"Your success is our priority",
				fmt.Sprintf("Experience the %s difference", p.Name),
			},
			DontSay: StringList{"Cheap or budget", "Maybe or possibly", "We think or we guess"},
			SampleHeadlines: StringList{
				fmt.Sprintf("%s %s Solutions", capitalize(kw[0]), p.Industry),
				fmt.Sprintf("Where %s Meets Excellence", kw[1]),
				fmt.Sprintf("Your Partner in %s", capitalize(kw[2])),
			},
		},
		SocialTemplates: []SocialIdea{
			{Title: "Brand Launch", Platform: "All", Idea: fmt.Sprintf("Grand reveal of %s with brand story video", p.Name), ContentType: "video"},
			{Title: "Value Proposition", Platform: "LinkedIn", Idea: fmt.Sprintf("How %s solves [specific problem]", p.Name), ContentType: "carousel"},
			{Title: "Behind the Scenes", Platform: "Instagram", Idea: "Day in the life at the company", ContentType: "stories"},
			{Title: "Customer Spotlight", Platform: "All", Idea: "Success story featuring real results", ContentType: "testimonial"},
			{Title: "Industry Tips", Platform: "Twitter", Idea: fmt.Sprintf("5 %s tips from experts", p.Industry), ContentType: "thread"},
			{Title: "Team Introduction", Platform: "LinkedIn", Idea: "Meet the people behind the brand", ContentType: "carousel"},
			{Title: "Product/Service Deep Dive", Platform: "YouTube", Idea: "Detailed walkthrough of offerings", ContentType: "video"},
			{Title: "FAQ Session", Platform: "Instagram", Idea: "Answering common questions live", ContentType: "live"},
		},
		WebsitePages: []PagePlan{
			{Name: "Home", Slug: "/", Purpose: "Convert visitors with compelling value proposition and social proof"},
			{Name: "About", Slug: "/about", Purpose: "Build trust through story, mission, values, and team"},
			{Name: "Services", Slug: "/services", Purpose: "Showcase offerings with clear benefits and CTAs"},
			{Name: "Portfolio", Slug: "/portfolio", Purpose: "Display work samples and case studies"},
			{Name: "Testimonials", Slug: "/testimonials", Purpose: "Feature customer reviews and success stories"},
			{Name: "Blog", Slug: "/blog", Purpose: "Establish authority with valuable content"},
			{Name: "Contact", Slug: "/contact", Purpose: "Capture leads with form and contact info"},
			{Name: "FAQ", Slug: "/faq", Purpose: "Address common questions and objections"},
		},
		Moodboard: StringList(append(append([]string(nil), style.Adjectives...), style.Mood, style.Aesthetic)),
		CompetitorDifferentiators: StringList{
			fmt.Sprintf("Superior %s through our unique approach", kw[0]),
			"Personalized service that larger competitors can't match",
			fmt.Sprintf("%s aesthetic that stands out in the market", p.Style),
			fmt.Sprintf("Deep expertise specifically in %s", p.Industry),
			"Results-focused methodology with proven track record",
		},
	}
}
