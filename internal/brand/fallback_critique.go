package brand

import "fmt"

// DefaultQualityScore is the overall score of the fallback critique.
const DefaultQualityScore = 8.5

// CritiqueFallback builds a complete Critic output from fixed templates.
func CritiqueFallback(p BusinessProfile, _ DesignAssets) Critique {
	return Critique{
		OverallScore:      DefaultQualityScore,
		BrandScore:        8,
		UXScore:           9,
		MarketFitScore:    8.5,
		MemorabilityScore: 8,
		VersatilityScore:  9,
		Strengths: StringList{
			fmt.Sprintf("Strong visual identity that immediately communicates %s positioning", p.Style),
			"Color palette creates excellent contrast and visual hierarchy",
			"Typography choices balance personality with readability",
			"Brand voice is consistent and resonates with target audience",
			"Logo design is versatile across all required applications",
			fmt.Sprintf("Overall aesthetic differentiates from typical %s competitors", p.Industry),
		},
		Weaknesses: StringList{
			"Consider adding a signature motion/animation element for digital presence",
			"Secondary color could be used more strategically in the hierarchy",
		},
		Improvements: StringList{
			"Develop a unique visual element or pattern that becomes synonymous with the brand",
			"Create animated logo versions for video content and loading states",
			"Build out a comprehensive icon library in the same visual style",
			"Consider seasonal or campaign-specific color variations",
			"Develop branded templates for common marketing materials",
		},
		CompetitiveAnalysis: fmt.Sprintf("%s presents a competitive brand identity that positions effectively against typical %s competitors. The %s approach creates differentiation while maintaining professional credibility. The color choice of %s establishes a distinctive visual presence.",
			p.Name, p.Industry, p.Style, p.Colors),
		TargetAudienceAlignment: fmt.Sprintf("The brand effectively communicates value to the target audience through %s design language and %s-appropriate messaging. The overall aesthetic builds trust while the voice creates an emotional connection.",
			p.Style, p.Industry),
		Recommendations: StringList{
			"Proceed with implementation across all touchpoints",
			"Prioritize website and social media presence",
			"Develop brand guidelines document for consistency",
			"Create template library for ongoing content creation",
			"Plan brand launch campaign across channels",
		},
	}
}
