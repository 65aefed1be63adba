package brand

import (
	"fmt"
	"regexp"
	"strings"
)

// CalendarDays is the length of the generated social calendar.
const CalendarDays = 30

var (
	calendarPlatforms    = []string{"Instagram", "LinkedIn", "Twitter", "Facebook", "TikTok"}
	calendarContentTypes = []string{"Image Post", "Carousel", "Video", "Story", "Reel", "Thread", "Live"}
	calendarTimes        = []string{"9:00 AM", "12:00 PM", "3:00 PM", "6:00 PM", "8:00 PM"}

	nonLetterRe      = regexp.MustCompile(`[^a-zA-Z]`)
	nonLowerLetterRe = regexp.MustCompile(`[^a-z]`)
	whitespaceRe     = regexp.MustCompile(`\s+`)
)

type postIdea struct {
	caption string
	hook    string
}

func postIdeas(p BusinessProfile, kw []string) []postIdea {
	name, industry := p.Name, p.Industry
	return []postIdea{
		{fmt.Sprintf("🚀 Introducing %s! We're thrilled to bring %s to %s.", name, kw[0], industry), "Grand announcement"},
		{fmt.Sprintf("Here's why we started %s... [Thread]", name), "Origin story"},
		{fmt.Sprintf("3 things that make %s different: 1️⃣ %s 2️⃣ %s 3️⃣ %s", name, kw[1], kw[2], kw[3]), "Differentiators"},
		{fmt.Sprintf("Behind the scenes at %s 👀", name), "Authenticity peek"},
		{fmt.Sprintf("\"%s transformed our business!\" - Happy Customer", name), "Social proof"},
		{fmt.Sprintf("%s tip of the day 💡", capitalize(kw[0])), "Value-first content"},
		{fmt.Sprintf("Meet the team behind %s ✨", name), "Human connection"},
		{fmt.Sprintf("Q&A time! Ask us anything about %s 👇", industry), "Engagement driver"},
		{fmt.Sprintf("This week's wins at %s 🎉", name), "Milestone celebration"},
		{fmt.Sprintf("5 mistakes to avoid in %s [Save this]", industry), "Educational content"},
		{fmt.Sprintf("What %s means to us at %s", kw[1], name), "Values content"},
		{fmt.Sprintf("Your weekend %s checklist ✅", industry), "Actionable tips"},
		{"Client transformation: Before & After 📈", "Case study"},
		{fmt.Sprintf("The tools we can't live without at %s", name), "Resource sharing"},
		{fmt.Sprintf("Myth vs Reality: %s edition", industry), "Myth-busting"},
		{"Live Q&A starting in 1 hour! Drop your questions 👇", "Event promotion"},
		{fmt.Sprintf("New blog post: \"How to achieve %s in %s\"", kw[2], industry), "Content promotion"},
		{fmt.Sprintf("Friday motivation from %s 💪", name), "Inspirational"},
		{"Sneak peek at what's coming next... 👀", "Teaser content"},
		{"Thank you to our amazing customers! Here's a special offer...", "Gratitude + promo"},
		{"Industry news: What this means for you", "Thought leadership"},
		{"How we helped [Client] achieve [Result]", "Success story"},
		{fmt.Sprintf("Your %s questions, answered!", industry), "FAQ content"},
		{fmt.Sprintf("The %s process: Step by step", name), "Process reveal"},
		{fmt.Sprintf("What's on our desk today at %s", name), "Day in the life"},
		{fmt.Sprintf("Comparison: Why %s vs alternatives", name), "Competitive content"},
		{fmt.Sprintf("Free resource alert! Download our %s guide 📚", industry), "Lead magnet"},
		{"Monday motivation: Let's crush this week!", "Week opener"},
		{fmt.Sprintf("Our commitment to %s in everything we do", kw[4]), "Values reinforcement"},
		{fmt.Sprintf("Month in review: What we accomplished at %s", name), "Recap content"},
	}
}

// SocialCalendar builds the 30-day posting plan. Entry i is day i+1; every
// rotation is indexed by day number.
func SocialCalendar(p BusinessProfile) []SocialPost {
	kw := IndustryKeywords(p.Industry)
	ideas := postIdeas(p, kw)
	hashtags := []string{
		"#" + nonLetterRe.ReplaceAllString(p.Name, ""),
		"#" + whitespaceRe.ReplaceAllString(p.Industry, ""),
		"#" + kw[0],
		"#business",
		"#entrepreneur",
	}

	posts := make([]SocialPost, 0, CalendarDays)
	for day := 1; day <= CalendarDays; day++ {
		i := day - 1
		idea := ideas[i%len(ideas)]

		media := "image"
		if day%3 == 0 {
			media = "video"
		}
		cta := "Comment below!"
		if day%2 == 0 {
			cta = "Link in bio!"
		}

		posts = append(posts, SocialPost{
			Day:            day,
			Platform:       calendarPlatforms[i%len(calendarPlatforms)],
			ContentType:    calendarContentTypes[i%len(calendarContentTypes)],
			Caption:        idea.caption,
			Hashtags:       StringList(append([]string(nil), hashtags...)),
			BestTime:       calendarTimes[i%len(calendarTimes)],
			MediaType:      media,
			EngagementHook: idea.hook,
			CallToAction:   cta,
		})
	}
	return posts
}

// FinalAssetsFallback builds a complete Producer output from fixed
// templates. year is used for the copyright line.
func FinalAssetsFallback(p BusinessProfile, design DesignAssets, colors ColorPalette, year int) FinalAssets {
	kw := IndustryKeywords(p.Industry)
	name, industry := p.Name, p.Industry
	lead := capitalize(kw[0])

	return FinalAssets{
		LogoFinal: LogoFinal{
			Description: fmt.Sprintf("Premium %s logo for %s featuring sophisticated typography and a distinctive brand mark that embodies excellence in %s. The design balances modern aesthetics with timeless appeal.", p.Style, name, industry),
			Files: StringList{
				"Logo_Primary_FullColor.svg",
				"Logo_Primary_FullColor.png (4x sizes)",
				"Logo_Stacked_FullColor.svg",
				"Logo_Stacked_FullColor.png",
				"Logo_Icon_Only.svg",
				"Logo_Icon_Only.png",
				"Logo_Wordmark_Only.svg",
				"Logo_Monochrome_Dark.svg",
				"Logo_Monochrome_Light.svg",
				"Logo_Reversed.svg",
				"Favicon.ico (16x16, 32x32, 48x48)",
				"Apple_Touch_Icon.png (180x180)",
				"OG_Image.png (1200x630)",
				"Social_Profile.png (400x400)",
				"Email_Signature.png",
			},
			Colors: LogoColors{
				Primary:     colors.Primary,
				Secondary:   colors.Secondary,
				Accent:      colors.Accent,
				OnPrimary:   "#FFFFFF",
				OnSecondary: "#FFFFFF",
			},
			ClearSpace:  "Minimum clear space equal to the height of the logo icon on all sides",
			MinimumSize: "Digital: 120px wide | Print: 1 inch wide",
			IncorrectUsage: StringList{
				"Do not stretch or distort",
				"Do not rotate",
				"Do not change colors",
				"Do not add effects (shadows, glows)",
				"Do not place on busy backgrounds",
				"Do not recreate or modify",
			},
		},
		BrandGuidelines:        brandGuidelines(p, design, colors),
		SocialCalendar:         SocialCalendar(p),
		WebsiteCopy:            websiteCopy(p, kw, year),
		ClientPortalFeatures:   clientPortalFeatures(),
		AdminDashboardFeatures: adminDashboardFeatures(),
		LaunchPlan:             launchPlan(),
		EmailSequences:         emailSequences(p),
		SEOStrategy: SEOStrategy{
			PrimaryKeywords: StringList{
				industry + " services",
				industry + " company",
				"best " + industry,
				name,
				industry + " near me",
			},
			SecondaryKeywords: StringList{
				kw[0] + " " + industry,
				kw[1] + " " + industry,
				"professional " + industry,
				industry + " solutions",
				industry + " experts",
			},
			LongTailKeywords: StringList{
				fmt.Sprintf("how to choose %s provider", industry),
				fmt.Sprintf("best %s for small business", industry),
				industry + " tips and tricks",
				industry + " cost guide",
				"what to look for in " + industry,
			},
			LocalKeywords: StringList{
				industry + " [city]",
				fmt.Sprintf("[city] %s services", industry),
				fmt.Sprintf("best %s in [city]", industry),
				industry + " company [city]",
			},
			MetaTitleTemplate:       fmt.Sprintf("%s | [Page Title] - %s %s", name, lead, industry),
			MetaDescriptionTemplate: fmt.Sprintf("%s provides %s %s services. [Page-specific value prop]. Contact us today for a free consultation.", name, kw[0], industry),
			SchemaTypes:             StringList{"LocalBusiness", "Organization", "Service", "FAQPage", "BreadcrumbList", "WebPage"},
			ContentPillars: StringList{
				industry + " education and guides",
				"Client success stories and case studies",
				"Industry trends and news",
				"Tips and best practices",
				"Behind the scenes and company culture",
			},
		},
		CompetitiveAdvantages: StringList{
			capitalize(p.Style) + " approach that sets us apart",
			"Deep specialization in " + industry,
			"Personalized service and dedicated support",
			"Transparent pricing with no hidden fees",
			"Proven track record with measurable results",
			"Cutting-edge tools and methodologies",
			"Commitment to ongoing education and improvement",
		},
		KPIs: []KPI{
			{Metric: "Website Traffic", Target: "1,000 visitors/month by month 3", Measurement: "Google Analytics"},
			{Metric: "Conversion Rate", Target: "3-5% form submissions", Measurement: "GA4 Events"},
			{Metric: "Social Followers", Target: "500 combined by month 3", Measurement: "Native analytics"},
			{Metric: "Email List", Target: "250 subscribers by month 3", Measurement: "Email platform"},
			{Metric: "Client Acquisition", Target: "5 new clients by month 3", Measurement: "CRM"},
			{Metric: "Client Satisfaction", Target: "4.8+ star rating", Measurement: "Review platforms"},
		},
	}
}

func brandGuidelines(p BusinessProfile, design DesignAssets, colors ColorPalette) BrandGuidelines {
	return BrandGuidelines{
		Overview: fmt.Sprintf("%s brand guidelines ensure consistent, professional presentation across all touchpoints. These guidelines protect brand equity while enabling creative flexibility.", p.Name),
		ColorUsage: fmt.Sprintf("PRIMARY (%s): Headers, buttons, key UI elements, logo. SECONDARY (%s): Supporting elements, backgrounds, accents. ACCENT (%s): CTAs, highlights, notifications, success states.",
			colors.Primary, colors.Secondary, colors.Accent),
		ColorAccessibility: "All color combinations meet WCAG 2.1 AA standards for contrast. Use primary on white for main text. Use white on primary for buttons.",
		Typography: fmt.Sprintf("HEADINGS: %s - Bold, commanding presence. BODY: %s - Clean, highly readable. Use consistent hierarchy throughout.",
			design.BrandKit.HeadingFont(), design.BrandKit.BodyFont()),
		TypographyScale: TypeScale{
			H1:    "48px - Page titles, hero headlines",
			H2:    "36px - Section titles",
			H3:    "28px - Subsection titles",
			H4:    "22px - Card titles, feature headlines",
			Body:  "16px - Paragraphs, descriptions",
			Small: "14px - Captions, metadata",
			Tiny:  "12px - Labels, fine print",
		},
		Spacing: "Use 8px base unit. Scale: 8, 16, 24, 32, 48, 64, 96. Maintain consistent spacing throughout designs.",
		Dos: StringList{
			"Always use approved logo files",
			"Maintain minimum clear space",
			"Use brand colors consistently",
			"Follow typography hierarchy",
			"Keep messaging professional and confident",
			"Use high-quality imagery",
			"Maintain visual consistency across platforms",
		},
		Donts: StringList{
			"Never alter logo colors or proportions",
			"Never use low-resolution logo files",
			"Never place logo on clashing backgrounds",
			"Never use unapproved fonts",
			"Never use off-brand colors",
			"Never use clip art or stock photos that look generic",
			"Never deviate from voice guidelines",
		},
		VoiceAndTone: VoiceAndTone{
			Voice:    "Confident, knowledgeable, approachable, professional",
			Tone:     p.Style + " and trustworthy - we speak as experts who genuinely care",
			Language: "Clear, jargon-free (unless industry-appropriate), benefit-focused",
			Examples: StringList{
				fmt.Sprintf("DO: \"We deliver exceptional %s results.\"", p.Industry),
				fmt.Sprintf("DON'T: \"We try to do good %s stuff.\"", p.Industry),
			},
		},
		Photography: Photography{
			Style:     "Authentic, professional, well-lit, on-brand colors where possible",
			Subjects:  "Real people, real work, real results - avoid obvious stock photos",
			Treatment: "Natural editing, consistent filter/preset if used",
			Avoid:     "Cheesy stock photos, poor lighting, cluttered backgrounds",
		},
		Iconography: Iconography{
			Style: "Consistent stroke weight (2px), rounded corners, simple geometric forms",
			Color: "Single color from brand palette, typically primary or secondary",
			Size:  "Minimum 24px for clarity, scale in increments of 8px",
		},
	}
}

func websiteCopy(p BusinessProfile, kw []string, year int) WebsiteCopy {
	name, industry := p.Name, p.Industry
	lead := capitalize(kw[0])

	heroHeadline := fmt.Sprintf("%s %s That Delivers Results", lead, industry)
	heroSub := fmt.Sprintf("%s combines expertise with innovation to help you achieve your goals. Experience the difference that %s makes.", name, kw[1])
	story := fmt.Sprintf("%s was founded with a clear vision: to bring %s and %s to %s. We saw an opportunity to do things differently: to prioritize quality, build genuine relationships, and deliver results that truly matter.\n\nToday, we're proud to serve businesses who share our commitment to excellence. Every project we take on is an opportunity to demonstrate what's possible when you combine expertise with genuine care for outcomes.",
		name, kw[0], kw[1], industry)

	services := []ServiceOffer{
		{
			Title:       "Consultation",
			Description: fmt.Sprintf("Expert guidance to understand your needs and develop a strategic approach for %s.", kw[2]),
			Features:    StringList{"Needs assessment", "Strategic planning", "Custom recommendations", "Roadmap development"},
			Icon:        "clipboard",
		},
		{
			Title:       "Implementation",
			Description: "Hands-on execution that brings strategies to life with precision and care.",
			Features:    StringList{"Project management", "Quality assurance", "Timeline adherence", "Regular updates"},
			Icon:        "rocket",
		},
		{
			Title:       "Support",
			Description: "Ongoing partnership to ensure continued success and optimization.",
			Features:    StringList{"Dedicated account manager", "Priority response", "Regular check-ins", "Continuous improvement"},
			Icon:        "headset",
		},
		{
			Title:       "Training",
			Description: "Empower your team with knowledge and skills for long-term success.",
			Features:    StringList{"Custom curriculum", "Hands-on workshops", "Documentation", "Follow-up support"},
			Icon:        "book",
		},
	}
	serviceTitles := make(StringList, 0, len(services))
	for _, s := range services {
		serviceTitles = append(serviceTitles, s.Title)
	}

	return WebsiteCopy{
		Global: GlobalCopy{
			SiteTitle:    name,
			Tagline:      fmt.Sprintf("%s %s Solutions", lead, industry),
			CTAPrimary:   "Get Started",
			CTASecondary: "Learn More",
			Copyright:    fmt.Sprintf("© %d %s. All rights reserved.", year, name),
		},
		Home: HomeCopy{
			Headline:        heroHeadline,
			Subheadline:     heroSub,
			CTA:             "Start Your Journey",
			MetaTitle:       fmt.Sprintf("%s | %s %s Solutions", name, lead, industry),
			MetaDescription: fmt.Sprintf("%s delivers exceptional %s services. Experience %s, %s, and results that exceed expectations. Get started today.", name, industry, kw[1], kw[2]),
			HeroHeadline:    heroHeadline,
			HeroSubheadline: heroSub,
			HeroCTA:         "Start Your Journey",
			HeroSecondary:   "See Our Work",
			SocialProof:     "Trusted by businesses across " + industry,
			ValueProps: []IconCard{
				{
					Title:       capitalize(kw[1]) + " First",
					Description: fmt.Sprintf("Every decision we make puts %s at the forefront, ensuring you get the best possible results.", kw[1]),
					Icon:        "star",
				},
				{
					Title:       "Expert Team",
					Description: fmt.Sprintf("Our specialists bring years of %s experience to every project.", industry),
					Icon:        "users",
				},
				{
					Title:       "Proven Results",
					Description: "Track record of success with measurable outcomes that speak for themselves.",
					Icon:        "chart",
				},
				{
					Title:       "Dedicated Support",
					Description: "Responsive, personalized service from real people who care about your success.",
					Icon:        "headset",
				},
			},
			FeaturedWork: Heading{
				Headline:    "Our Work Speaks for Itself",
				Subheadline: "See how we've helped businesses like yours achieve their goals.",
			},
			Testimonials: Heading{
				Headline:    "What Our Clients Say",
				Subheadline: "Don't just take our word for it.",
			},
			CTASection: CTASection{
				Headline:    "Ready to Get Started?",
				Subheadline: fmt.Sprintf("Let's discuss how %s can help you achieve your goals.", name),
				CTA:         "Schedule a Consultation",
				Note:        "Free consultation • No obligation • Quick response",
			},
		},
		About: AboutCopy{
			Headline:        "Our Story",
			Story:           story,
			MetaTitle:       fmt.Sprintf("About %s | Our Story & Mission", name),
			MetaDescription: fmt.Sprintf("Learn about %s's mission to deliver exceptional %s services. Meet our team and discover our values.", name, industry),
			HeroHeadline:    "Our Story",
			HeroSubheadline: fmt.Sprintf("How %s became a leader in %s", name, industry),
			StorySection:    ContentBlock{Headline: "Why We Started", Content: story},
			Mission: ContentBlock{
				Headline: "Our Mission",
				Content:  fmt.Sprintf("To empower businesses with exceptional %s solutions that drive real results and lasting success.", industry),
			},
			Vision: ContentBlock{
				Headline: "Our Vision",
				Content:  fmt.Sprintf("To be the most trusted name in %s, known for %s, innovation, and unwavering commitment to client success.", industry, kw[1]),
			},
			Values: []TitledText{
				{Title: "Excellence", Description: "We never settle for \"good enough.\" Every detail matters."},
				{Title: "Integrity", Description: "Honest communication and transparent practices, always."},
				{Title: "Innovation", Description: "Continuously improving and embracing better ways to serve you."},
				{Title: "Partnership", Description: "Your success is our success. We're in this together."},
			},
			Team: Heading{Headline: "Meet the Team", Subheadline: "The people behind the results"},
		},
		Services: ServicesCopy{
			Headline:        "What We Offer",
			Features:        serviceTitles,
			MetaTitle:       fmt.Sprintf("Services | %s %s Solutions", name, industry),
			MetaDescription: fmt.Sprintf("Explore %s's comprehensive %s services. From consultation to implementation, we deliver %s results.", name, industry, kw[0]),
			HeroHeadline:    "What We Offer",
			HeroSubheadline: fmt.Sprintf("Comprehensive %s solutions tailored to your needs", industry),
			Services:        services,
			Process: ProcessSection{
				Headline: "Our Process",
				Steps: []ProcessStep{
					{Number: 1, Title: "Discovery", Description: "We learn about your business, goals, and challenges."},
					{Number: 2, Title: "Strategy", Description: "We develop a custom plan tailored to your needs."},
					{Number: 3, Title: "Execution", Description: "We implement with precision and keep you informed."},
					{Number: 4, Title: "Optimization", Description: "We measure, refine, and improve continuously."},
				},
			},
			CTASection: CTASection{Headline: "Ready to See What We Can Do for You?", CTA: "Get a Free Quote"},
		},
		Pricing: pricingCopy(name),
		Contact: ContactCopy{
			MetaTitle:       fmt.Sprintf("Contact %s | Get in Touch", name),
			MetaDescription: fmt.Sprintf("Ready to work with %s? Contact us today for a free consultation. We respond within 24 hours.", name),
			HeroHeadline:    "Let's Talk",
			HeroSubheadline: "We'd love to hear from you. Get in touch and let's discuss how we can help.",
			FormHeadline:    "Send Us a Message",
			FormFields:      StringList{"Name", "Email", "Phone (optional)", "Company (optional)", "How can we help?"},
			SubmitButton:    "Send Message",
			ResponseTime:    "We typically respond within 24 hours.",
			AlternativeContact: ContactDetails{
				Headline: "Prefer to reach out directly?",
				Email:    fmt.Sprintf("hello@%s.com", nonLowerLetterRe.ReplaceAllString(strings.ToLower(name), "")),
				Phone:    "(555) 123-4567",
				Address:  "Your City, State",
			},
			MapSection: MapSection{Headline: "Visit Us", Note: "By appointment only"},
		},
	}
}

func pricingCopy(name string) PricingCopy {
	return PricingCopy{
		MetaTitle:       fmt.Sprintf("Pricing | %s - Transparent & Fair", name),
		MetaDescription: fmt.Sprintf("View %s's pricing options. Transparent pricing with packages designed to fit your needs and budget.", name),
		HeroHeadline:    "Simple, Transparent Pricing",
		HeroSubheadline: "Choose the plan that fits your needs. No hidden fees.",
		Tiers: []PricingTier{
			{
				Name:        "Starter",
				Price:       "Custom",
				Period:      "project",
				Description: "Perfect for small projects and getting started.",
				Features: StringList{
					"Initial consultation",
					"Basic implementation",
					"Email support",
					"30-day support window",
					"Documentation included",
				},
				Limitations: StringList{"Limited revisions", "Standard timeline"},
				CTA:         "Get Quote",
			},
			{
				Name:        "Professional",
				Price:       "Custom",
				Period:      "project",
				Description: "Most popular. Comprehensive solution for growing businesses.",
				Features: StringList{
					"Everything in Starter",
					"Priority implementation",
					"Phone & email support",
					"90-day support window",
					"Dedicated project manager",
					"Unlimited revisions",
					"Rush option available",
				},
				Limitations: StringList{},
				CTA:         "Get Quote",
				Highlighted: true,
				Badge:       "Most Popular",
			},
			{
				Name:        "Enterprise",
				Price:       "Custom",
				Period:      "retainer",
				Description: "Full-service partnership for organizations with ongoing needs.",
				Features: StringList{
					"Everything in Professional",
					"Dedicated account team",
					"24/7 priority support",
					"Quarterly strategy reviews",
					"Custom SLA",
					"Training included",
					"First access to new services",
				},
				Limitations: StringList{},
				CTA:         "Contact Sales",
			},
		},
		FAQ: []FAQ{
			{Q: "Can I switch plans later?", A: "Absolutely! You can upgrade or adjust your service level at any time."},
			{Q: "Is there a long-term commitment?", A: "No long-term contracts required. We earn your business through results."},
			{Q: "What payment methods do you accept?", A: "We accept all major credit cards, bank transfers, and can invoice for larger projects."},
		},
		Guarantee: "100% satisfaction guaranteed. If you're not happy with our work, we'll make it right.",
	}
}

func clientPortalFeatures() []Feature {
	return []Feature{
		{"Dashboard", "At-a-glance view of all projects, messages, and account status with real-time updates", "critical", "home"},
		{"Project Tracking", "Detailed project timelines, milestones, deliverables, and progress updates", "critical", "kanban"},
		{"File Management", "Secure upload, download, preview, and organization of all project files", "critical", "folder"},
		{"Messaging", "Direct communication with project team, threaded conversations, notifications", "high", "chat"},
		{"Invoices & Payments", "View invoices, payment history, download receipts, make payments", "high", "credit-card"},
		{"Approvals", "Review and approve deliverables, provide feedback, request revisions", "high", "check-circle"},
		{"Calendar", "View scheduled calls, deadlines, milestones in calendar format", "medium", "calendar"},
		{"Resource Library", "Access brand assets, guidelines, templates, and documentation", "medium", "book"},
		{"Support", "Submit support tickets, track resolution, knowledge base access", "medium", "help"},
		{"Account Settings", "Manage profile, notification preferences, security settings", "low", "settings"},
	}
}

func adminDashboardFeatures() []Feature {
	return []Feature{
		{"Analytics Dashboard", "Revenue metrics, project stats, team performance, growth trends", "critical", "chart"},
		{"User Management", "Add/edit/remove users, role assignment, permissions, activity logs", "critical", "users"},
		{"Project Management", "Create/manage projects, assign team members, track progress", "critical", "briefcase"},
		{"Order Processing", "New order alerts, fulfillment tracking, status updates, invoicing", "critical", "shopping-cart"},
		{"Content Management", "Edit website content, manage blog posts, update portfolio", "high", "edit"},
		{"Client Management", "Client profiles, communication history, preferences, notes", "high", "address-book"},
		{"Team Management", "Team directory, workload view, time tracking, capacity planning", "high", "team"},
		{"Reporting", "Custom reports, export data, scheduled reports, insights", "medium", "file-text"},
		{"Integrations", "Connect third-party tools, API settings, webhooks", "medium", "plug"},
		{"Settings", "Global settings, branding, email templates, security", "medium", "sliders"},
	}
}

func launchPlan() []LaunchTask {
	return []LaunchTask{
		{1, 1, "Setup", "Finalize all brand assets and approve designs", "critical", "Client", "Approved brand kit"},
		{1, 2, "Setup", "Set up domain and hosting infrastructure", "critical", "Dev Team", "Live staging environment"},
		{1, 3, "Setup", "Configure analytics and tracking", "high", "Dev Team", "GA4, GTM configured"},
		{1, 4, "Content", "Finalize all website copy", "critical", "Client", "Approved copy document"},
		{1, 5, "Social", "Create and configure social media accounts", "high", "Marketing", "Live social profiles"},
		{2, 1, "Development", "Complete website development", "critical", "Dev Team", "Completed website"},
		{2, 2, "QA", "Internal testing and QA", "critical", "Dev Team", "QA report"},
		{2, 3, "QA", "Client review and feedback", "critical", "Client", "Feedback document"},
		{2, 4, "Development", "Implement feedback and final revisions", "high", "Dev Team", "Final website"},
		{2, 5, "Content", "Schedule first 2 weeks of social content", "high", "Marketing", "Scheduled posts"},
		{3, 1, "Launch", "🚀 LAUNCH DAY - Go live with website", "critical", "Dev Team", "Live website"},
		{3, 1, "Launch", "Publish launch announcement on all channels", "critical", "Marketing", "Launch posts live"},
		{3, 2, "Marketing", "Send launch email to contact list", "high", "Marketing", "Email sent"},
		{3, 3, "Marketing", "Begin paid advertising campaigns", "medium", "Marketing", "Ads live"},
		{3, 5, "Review", "First week metrics review", "high", "All", "Metrics report"},
		{4, 1, "Optimization", "Analyze launch data and identify improvements", "high", "All", "Optimization plan"},
		{4, 3, "Content", "Publish first blog post", "medium", "Marketing", "Live blog post"},
		{4, 5, "Review", "Month 1 comprehensive review", "high", "All", "Monthly report"},
	}
}

func emailSequences(p BusinessProfile) []EmailMessage {
	name, industry := p.Name, p.Industry
	return []EmailMessage{
		{
			Name:      "Welcome Email",
			Trigger:   "New signup/purchase",
			Delay:     "Immediate",
			Subject:   fmt.Sprintf("Welcome to %s! Here's what happens next", name),
			Preheader: "Your journey to better results starts now",
			Body:      fmt.Sprintf("Thank you for choosing %s! We're thrilled to have you.\n\nHere's what you can expect:\n1. A personal introduction from your dedicated contact\n2. Access to your client portal within 24 hours\n3. Your kickoff call scheduled within 48 hours\n\nIn the meantime, feel free to explore our resources or reach out with any questions.", name),
			CTA:       "Access Your Portal",
			CTAURL:    "/portal",
		},
		{
			Name:      "Onboarding Day 3",
			Trigger:   "Signup + 3 days",
			Delay:     "3 days",
			Subject:   fmt.Sprintf("Quick tip to get the most from %s", name),
			Preheader: "One simple thing that makes a big difference",
			Body:      "Hi there!\n\nWanted to share a quick tip that our most successful clients do right away:\n\n[Specific actionable tip relevant to the service]\n\nThis small step leads to significantly better results. Have questions? Just reply to this email - we're here to help!",
			CTA:       "Learn More Tips",
			CTAURL:    "/resources",
		},
		{
			Name:      "Check-in Email",
			Trigger:   "Signup + 7 days",
			Delay:     "7 days",
			Subject:   "How's everything going?",
			Preheader: "We want to make sure you have everything you need",
			Body:      fmt.Sprintf("Hi!\n\nIt's been a week since you started with %s, and we wanted to check in.\n\nHow's everything going so far? Is there anything you need help with?\n\nYour success is our priority, so please don't hesitate to reach out if there's anything we can do.", name),
			CTA:       "Schedule a Call",
			CTAURL:    "/contact",
		},
		{
			Name:      "Value Email",
			Trigger:   "Signup + 14 days",
			Delay:     "14 days",
			Subject:   fmt.Sprintf("[Free Resource] %s Best Practices Guide", industry),
			Preheader: "Exclusive resource for our clients",
			Body:      fmt.Sprintf("Hi!\n\nWe put together a comprehensive guide on %s best practices, and wanted to share it with you first.\n\nInside you'll find:\n• Top strategies used by industry leaders\n• Common mistakes and how to avoid them\n• Actionable tips you can implement today\n\nDownload your free copy below!", industry),
			CTA:       "Download Free Guide",
			CTAURL:    "/resources/guide",
		},
		{
			Name:      "Testimonial Request",
			Trigger:   "Project complete + 7 days",
			Delay:     "7 days after completion",
			Subject:   "How did we do?",
			Preheader: "Your feedback helps us improve",
			Body:      fmt.Sprintf("Hi!\n\nNow that your project is complete, we'd love to hear about your experience with %s.\n\nYour feedback helps us improve and helps other businesses discover what we do.\n\nWould you be willing to share a brief testimonial? It only takes a minute and means the world to us.", name),
			CTA:       "Share Your Experience",
			CTAURL:    "/testimonial",
		},
		{
			Name:      "Re-engagement",
			Trigger:   "60 days no activity",
			Delay:     "60 days",
			Subject:   fmt.Sprintf("We miss you at %s!", name),
			Preheader: "Special offer inside",
			Body:      fmt.Sprintf("Hi!\n\nIt's been a while since we connected, and we wanted to reach out.\n\n%s has been growing, and we've added some exciting new capabilities we think you'd love.\n\nAs a valued past client, we'd like to offer you [special offer] on your next project.\n\nLet's catch up!", name),
			CTA:       "Let's Reconnect",
			CTAURL:    "/contact",
		},
	}
}
