package brand

import "time"

// BuildVersion is stamped on every CompleteAssets.
const BuildVersion = "3.0.0-trillion-dollar-sauce"

// AgentIterations is the number of model stages in a build.
const AgentIterations = 3

// CompleteAssets is the bundle handed back to the caller at the end of a
// build. It is never modified after Run returns it.
type CompleteAssets struct {
	OrderID      string          `json:"orderId,omitempty"`
	DesignAssets DesignAssets    `json:"designAssets"`
	Critique     Critique        `json:"critique"`
	FinalAssets  FinalAssets     `json:"finalAssets"`
	BusinessInfo BusinessProfile `json:"businessInfo"`
	LogoImageURL *string         `json:"logoImageUrl"`
	GeneratedAt  time.Time       `json:"generatedAt"`
	AIProvider   string          `json:"aiProvider"`
	BuildVersion string          `json:"buildVersion"`
	Models       BuildModels     `json:"models"`
	Metadata     BuildMetadata   `json:"metadata"`
	Stages       []StageReport   `json:"stages"`
}

type BuildModels struct {
	FroBot string `json:"frobot"`
	Agent  string `json:"agent"`
	FAL    string `json:"fal"`
}

type BuildMetadata struct {
	TotalTokensUsed int     `json:"totalTokensUsed"`
	BuildDuration   int64   `json:"buildDuration"` // milliseconds
	AgentIterations int     `json:"agentIterations"`
	QualityScore    float64 `json:"qualityScore"`
	FallbackStages  int     `json:"fallbackStages"`
}

// QualityScore is the critique's overall score, or the default when the
// model gave none or one off the 0-10 scale.
func (c Critique) QualityScore() float64 {
	if !onScale(c.OverallScore) {
		return DefaultQualityScore
	}
	return c.OverallScore
}

func onScale(score float64) bool {
	return score > 0 && score <= 10
}

// checkScore keeps the fallback overall score when the model's is off the
// 0-10 scale, so the critique and metadata agree.
func checkScore(c *Critique, fallback Critique) []string {
	if onScale(c.OverallScore) {
		return nil
	}
	c.OverallScore = fallback.OverallScore
	return []string{"overallScore"}
}
