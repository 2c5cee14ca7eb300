package api

import (
	"github.com/mozscape/mozgo/core/rpc"
)

// JSON-RPC method names. These are wire-level identifiers and must match the
// provider's catalog exactly.
const (
	MethodQuotaLookup         = "quota.lookup"
	MethodUsageData           = "data.usage.data.fetch"
	MethodKeywordMetrics      = "data.keyword.metrics.fetch"
	MethodKeywordDifficulty   = "data.keyword.difficulty.fetch"
	MethodKeywordVolume       = "data.keyword.volume.fetch"
	MethodKeywordOpportunity  = "data.keyword.opportunity.fetch"
	MethodKeywordPriority     = "data.keyword.priority.fetch"
	MethodKeywordSearchIntent = "data.keyword.search.intent.fetch"
	MethodKeywordSuggestions  = "data.keyword.suggestions.list"
	MethodSiteMetrics         = "data.site.metrics.fetch"
	MethodSiteMetricsMultiple = "data.site.metrics.fetch.multiple"
	MethodBrandAuthority      = "data.site.brand.authority.fetch"
	MethodRankingKeywords     = "data.site.ranking.keywords.list"
	MethodRankingKeywordCount = "data.site.ranking.keywords.count"
	MethodURLMetrics          = "data.url.metrics.fetch"
	MethodLinks               = "data.link.list"
	MethodAnchorText          = "data.anchor.text.list"
	MethodTopPages            = "data.top.pages.list"
	MethodLinkingDomains      = "data.linking.domains.list"
	MethodGlobalTopPages      = "data.global.top.pages.list"
	MethodGlobalTopDomains    = "data.global.top.domains.list"
)

// Site query scopes accepted by the provider.
const (
	ScopeDomain     = "domain"
	ScopePage       = "page"
	ScopeSubdomain  = "subdomain"
	ScopeRootDomain = "root_domain"
)

// Documented defaults applied by the wrappers when the caller leaves the
// corresponding option empty.
const (
	DefaultLocale = "en-US"
	DefaultDevice = "desktop"
	DefaultEngine = "google"

	DefaultSuggestionsLimit     = 1000
	DefaultRankingKeywordsLimit = 100
	DefaultLinkLimit            = 50
	DefaultGlobalLimit          = 100
)

// API exposes typed wrappers over the remote method catalog. Each wrapper is
// a pure mapping from its typed input to a fixed method name and nested
// params object; the result comes back exactly as the remote returned it.
type API struct {
	client *rpc.Client
}

// New creates an API surface over the given JSON-RPC client.
func New(client *rpc.Client) *API {
	return &API{client: client}
}

// KeywordOptions adjusts keyword-oriented calls. Zero values select the
// documented defaults.
type KeywordOptions struct {
	Locale string
	Device string
	Engine string
	Limit  int
}

// SiteOptions adjusts site-, url- and link-oriented calls. Zero values
// select the documented defaults, which differ per call (see each wrapper).
type SiteOptions struct {
	Scope  string
	Locale string
	Limit  int
}

// serpQuery builds the serp_query parameter object with defaults applied.
func serpQuery(keyword string, options *KeywordOptions) map[string]any {
	if options == nil {
		options = &KeywordOptions{}
	}
	query := map[string]any{
		"keyword": keyword,
		"locale":  DefaultLocale,
		"device":  DefaultDevice,
		"engine":  DefaultEngine,
	}
	if options.Locale != "" {
		query["locale"] = options.Locale
	}
	if options.Device != "" {
		query["device"] = options.Device
	}
	if options.Engine != "" {
		query["engine"] = options.Engine
	}
	return query
}

// siteQuery builds the site_query parameter object. defaultScope is the
// per-call documented default applied when the caller leaves Scope empty.
func siteQuery(site string, defaultScope string, options *SiteOptions) map[string]any {
	scope := defaultScope
	if options != nil && options.Scope != "" {
		scope = options.Scope
	}
	return map[string]any{
		"query": site,
		"scope": scope,
	}
}

// limitOrDefault resolves the effective limit for list calls.
func limitOrDefault(options *SiteOptions, defaultLimit int) int {
	if options != nil && options.Limit > 0 {
		return options.Limit
	}
	return defaultLimit
}

// params wraps a call's data object into the envelope params shape.
func params(data map[string]any) map[string]any {
	return map[string]any{"data": data}
}
