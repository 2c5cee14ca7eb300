package moz

import (
	"context"

	"github.com/mozscape/mozgo/providers/analyzer"
	"github.com/mozscape/mozgo/providers/api"
	"github.com/mozscape/mozgo/providers/tool"
)

// KeywordInput is the shared input shape for keyword capabilities.
type KeywordInput struct {
	Keyword string `json:"keyword"`
	Locale  string `json:"locale,omitempty"`
	Device  string `json:"device,omitempty"`
	Engine  string `json:"engine,omitempty"`
	Limit   int    `json:"limit,omitempty"`
}

func (in KeywordInput) Validate() error {
	if in.Keyword == "" {
		return &tool.InvalidArgumentError{Field: "keyword"}
	}
	return nil
}

func (in KeywordInput) options() *api.KeywordOptions {
	return &api.KeywordOptions{Locale: in.Locale, Device: in.Device, Engine: in.Engine, Limit: in.Limit}
}

// SiteInput is the shared input shape for site, url and link capabilities.
type SiteInput struct {
	Site   string `json:"site"`
	Scope  string `json:"scope,omitempty"`
	Locale string `json:"locale,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

func (in SiteInput) Validate() error {
	if in.Site == "" {
		return &tool.InvalidArgumentError{Field: "site"}
	}
	return nil
}

func (in SiteInput) options() *api.SiteOptions {
	return &api.SiteOptions{Scope: in.Scope, Locale: in.Locale, Limit: in.Limit}
}

// SitesInput is the input shape for multi-site capabilities.
type SitesInput struct {
	Sites []string `json:"sites"`
	Scope string   `json:"scope,omitempty"`
}

func (in SitesInput) Validate() error {
	if len(in.Sites) == 0 {
		return &tool.InvalidArgumentError{Field: "sites"}
	}
	return nil
}

// GlobalInput is the input shape for index-wide list capabilities.
// It has no required fields.
type GlobalInput struct {
	Limit int `json:"limit,omitempty"`
}

// EmptyInput is the input shape for capabilities without arguments.
type EmptyInput struct{}

// AnalyzeInput is the input shape for the competitor analysis capability.
type AnalyzeInput struct {
	PrimarySite            string   `json:"primary_site"`
	Competitors            []string `json:"competitors,omitempty"`
	TargetKeyword          string   `json:"target_keyword"`
	Locale                 string   `json:"locale,omitempty"`
	IncludeKeywordAnalysis *bool    `json:"include_keyword_analysis,omitempty"`
}

func (in AnalyzeInput) Validate() error {
	if in.PrimarySite == "" {
		return &tool.InvalidArgumentError{Field: "primary_site"}
	}
	if in.TargetKeyword == "" {
		return &tool.InvalidArgumentError{Field: "target_keyword"}
	}
	return nil
}

// keywordTool builds a capability around one keyword endpoint wrapper.
func keywordTool(name, description string, call func(ctx context.Context, keyword string, options *api.KeywordOptions) (any, error)) tool.GenericTool {
	return tool.NewTool(name, func(ctx context.Context, input KeywordInput) (any, error) {
		return call(ctx, input.Keyword, input.options())
	}, tool.WithDescription(description))
}

// siteTool builds a capability around one site/url/link endpoint wrapper.
func siteTool(name, description string, call func(ctx context.Context, site string, options *api.SiteOptions) (any, error)) tool.GenericTool {
	return tool.NewTool(name, func(ctx context.Context, input SiteInput) (any, error) {
		return call(ctx, input.Site, input.options())
	}, tool.WithDescription(description))
}

// NewCatalog registers one capability per endpoint wrapper plus the
// competitor analysis, all backed by the given API surface.
func NewCatalog(apiSurface *api.API) *tool.Catalog {
	engine := analyzer.NewEngine(apiSurface)

	return tool.NewCatalogWithTools(
		tool.NewTool("moz_quota", func(ctx context.Context, _ EmptyInput) (any, error) {
			return apiSurface.Quota(ctx)
		}, tool.WithDescription("Look up the remaining Moz API request quota for the account.")),

		tool.NewTool("moz_usage_data", func(ctx context.Context, _ EmptyInput) (any, error) {
			return apiSurface.UsageData(ctx)
		}, tool.WithDescription("Fetch historical Moz API usage data for the account.")),

		keywordTool("moz_keyword_metrics",
			"Fetch the full metric set for a keyword (difficulty, volume, opportunity, priority).",
			apiSurface.KeywordMetrics),
		keywordTool("moz_keyword_difficulty",
			"Fetch the 0-100 ranking difficulty score for a keyword.",
			apiSurface.KeywordDifficulty),
		keywordTool("moz_keyword_volume",
			"Fetch the monthly search volume for a keyword.",
			apiSurface.KeywordVolume),
		keywordTool("moz_keyword_opportunity",
			"Fetch the opportunity score for a keyword.",
			apiSurface.KeywordOpportunity),
		keywordTool("moz_keyword_priority",
			"Fetch the combined priority score for a keyword.",
			apiSurface.KeywordPriority),
		keywordTool("moz_keyword_search_intent",
			"Fetch the search intent classification for a keyword.",
			apiSurface.KeywordSearchIntent),
		keywordTool("moz_keyword_suggestions",
			"List related keyword suggestions (up to 1000 by default).",
			apiSurface.KeywordSuggestions),

		siteTool("moz_site_metrics",
			"Fetch authority and link metrics for a site (scope defaults to domain).",
			apiSurface.SiteMetrics),
		tool.NewTool("moz_site_metrics_multiple", func(ctx context.Context, input SitesInput) (any, error) {
			return apiSurface.SiteMetricsMultiple(ctx, input.Sites, &api.SiteOptions{Scope: input.Scope})
		}, tool.WithDescription("Fetch metrics for several sites in one call.")),
		tool.NewTool("moz_brand_authority", func(ctx context.Context, input SiteInput) (any, error) {
			return apiSurface.BrandAuthority(ctx, input.Site)
		}, tool.WithDescription("Fetch the 0-100 Brand Authority score for a site.")),
		siteTool("moz_ranking_keywords",
			"List the keywords a site ranks for (up to 100 by default).",
			apiSurface.RankingKeywords),
		siteTool("moz_ranking_keywords_count",
			"Count the keywords a site ranks for.",
			apiSurface.RankingKeywordsCount),

		siteTool("moz_url_metrics",
			"Fetch authority metrics for a single URL (scope defaults to page).",
			apiSurface.URLMetrics),
		siteTool("moz_links",
			"List inbound links for a target (up to 50 by default).",
			apiSurface.Links),
		siteTool("moz_anchor_text",
			"List the anchor text distribution of links to a target.",
			apiSurface.AnchorText),
		siteTool("moz_top_pages",
			"List the strongest pages of a site (scope defaults to root_domain).",
			apiSurface.TopPages),
		siteTool("moz_linking_domains",
			"List the domains linking to a target.",
			apiSurface.LinkingDomains),

		tool.NewTool("moz_global_top_pages", func(ctx context.Context, input GlobalInput) (any, error) {
			return apiSurface.GlobalTopPages(ctx, &api.SiteOptions{Limit: input.Limit})
		}, tool.WithDescription("List the strongest pages across the whole index.")),
		tool.NewTool("moz_global_top_domains", func(ctx context.Context, input GlobalInput) (any, error) {
			return apiSurface.GlobalTopDomains(ctx, &api.SiteOptions{Limit: input.Limit})
		}, tool.WithDescription("List the strongest domains across the whole index.")),

		tool.NewTool("moz_competitor_analysis", func(ctx context.Context, input AnalyzeInput) (any, error) {
			return engine.Analyze(ctx, input.PrimarySite, input.Competitors, input.TargetKeyword, &analyzer.Options{
				Locale:                 input.Locale,
				IncludeKeywordAnalysis: input.IncludeKeywordAnalysis,
			})
		}, tool.WithDescription("Build a multi-site competitive report: site metrics, Brand Authority and ranking keywords for the primary site and each competitor, optional keyword analysis, and derived insights.")),
	)
}
