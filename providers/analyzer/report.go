package analyzer

// SiteSnapshot holds the three per-site data points gathered during an
// analysis. Each data field is an opaque remote payload, or a
// map[string]any{"error": ...} marker when that single call failed.
// Error is set only when the whole batch for the site was lost.
type SiteSnapshot struct {
	Site            string `json:"site,omitempty"`
	SiteMetrics     any    `json:"site_metrics,omitempty"`
	BrandAuthority  any    `json:"brand_authority,omitempty"`
	RankingKeywords any    `json:"ranking_keywords,omitempty"`
	Error           string `json:"error,omitempty"`
}

// KeywordAnalysis holds the four keyword data points gathered for the
// target keyword. Fields follow the same opaque-or-error-marker convention
// as SiteSnapshot.
type KeywordAnalysis struct {
	Metrics      any `json:"metrics,omitempty"`
	Difficulty   any `json:"difficulty,omitempty"`
	Volume       any `json:"volume,omitempty"`
	SearchIntent any `json:"search_intent,omitempty"`
}

// Report is the assembled competitor analysis. It is built once per
// Analyze invocation and never mutated after return. CompetitorData keeps
// the caller-supplied competitor order.
type Report struct {
	PrimarySite     string           `json:"primary_site"`
	TargetKeyword   string           `json:"target_keyword"`
	Locale          string           `json:"locale"`
	Timestamp       string           `json:"timestamp"`
	PrimarySiteData SiteSnapshot     `json:"primary_site_data"`
	CompetitorData  []SiteSnapshot   `json:"competitor_data"`
	KeywordAnalysis *KeywordAnalysis `json:"keyword_analysis,omitempty"`
	Insights        []string         `json:"insights"`

	// CompetitorIdentificationGuidance is present only when no competitor
	// sites were supplied.
	CompetitorIdentificationGuidance string `json:"competitor_identification_guidance,omitempty"`
}
