package api

import "context"

// SiteMetrics fetches authority and link metrics for one site.
// Scope defaults to "domain".
func (a *API) SiteMetrics(ctx context.Context, site string, options *SiteOptions) (any, error) {
	return a.client.Call(ctx, MethodSiteMetrics, params(map[string]any{
		"site_query": siteQuery(site, ScopeDomain, options),
	}))
}

// SiteMetricsMultiple fetches metrics for several sites in one call.
// Scope defaults to "domain" and applies to every site in the batch.
func (a *API) SiteMetricsMultiple(ctx context.Context, sites []string, options *SiteOptions) (any, error) {
	queries := make([]map[string]any, 0, len(sites))
	for _, site := range sites {
		queries = append(queries, siteQuery(site, ScopeDomain, options))
	}
	return a.client.Call(ctx, MethodSiteMetricsMultiple, params(map[string]any{
		"site_queries": queries,
	}))
}

// BrandAuthority fetches the 0-100 brand authority score for a site.
func (a *API) BrandAuthority(ctx context.Context, site string) (any, error) {
	return a.client.Call(ctx, MethodBrandAuthority, params(map[string]any{
		"site_query": map[string]any{"query": site},
	}))
}

// RankingKeywords lists the keywords a site ranks for. Scope defaults to
// "domain", the locale to en-US and the limit to 100.
func (a *API) RankingKeywords(ctx context.Context, site string, options *SiteOptions) (any, error) {
	locale := DefaultLocale
	if options != nil && options.Locale != "" {
		locale = options.Locale
	}
	return a.client.Call(ctx, MethodRankingKeywords, params(map[string]any{
		"site_query": siteQuery(site, ScopeDomain, options),
		"locale":     locale,
		"limit":      limitOrDefault(options, DefaultRankingKeywordsLimit),
	}))
}

// RankingKeywordsCount returns the number of keywords a site ranks for.
// Scope defaults to "domain".
func (a *API) RankingKeywordsCount(ctx context.Context, site string, options *SiteOptions) (any, error) {
	locale := DefaultLocale
	if options != nil && options.Locale != "" {
		locale = options.Locale
	}
	return a.client.Call(ctx, MethodRankingKeywordCount, params(map[string]any{
		"site_query": siteQuery(site, ScopeDomain, options),
		"locale":     locale,
	}))
}
