package api

import "context"

// URLMetrics fetches authority metrics for a single URL.
// Scope defaults to "page".
func (a *API) URLMetrics(ctx context.Context, target string, options *SiteOptions) (any, error) {
	return a.client.Call(ctx, MethodURLMetrics, params(map[string]any{
		"site_query": siteQuery(target, ScopePage, options),
	}))
}

// Links lists inbound links for a target. Scope defaults to "page" and the
// limit to 50.
func (a *API) Links(ctx context.Context, target string, options *SiteOptions) (any, error) {
	return a.client.Call(ctx, MethodLinks, params(map[string]any{
		"site_query": siteQuery(target, ScopePage, options),
		"limit":      limitOrDefault(options, DefaultLinkLimit),
	}))
}

// AnchorText lists the anchor text distribution of links to a target.
// Scope defaults to "page" and the limit to 50.
func (a *API) AnchorText(ctx context.Context, target string, options *SiteOptions) (any, error) {
	return a.client.Call(ctx, MethodAnchorText, params(map[string]any{
		"site_query": siteQuery(target, ScopePage, options),
		"limit":      limitOrDefault(options, DefaultLinkLimit),
	}))
}

// TopPages lists the strongest pages of a site. Scope defaults to
// "root_domain" and the limit to 50.
func (a *API) TopPages(ctx context.Context, target string, options *SiteOptions) (any, error) {
	return a.client.Call(ctx, MethodTopPages, params(map[string]any{
		"site_query": siteQuery(target, ScopeRootDomain, options),
		"limit":      limitOrDefault(options, DefaultLinkLimit),
	}))
}

// LinkingDomains lists the domains linking to a target. Scope defaults to
// "page" and the limit to 50.
func (a *API) LinkingDomains(ctx context.Context, target string, options *SiteOptions) (any, error) {
	return a.client.Call(ctx, MethodLinkingDomains, params(map[string]any{
		"site_query": siteQuery(target, ScopePage, options),
		"limit":      limitOrDefault(options, DefaultLinkLimit),
	}))
}

// GlobalTopPages lists the strongest pages across the whole index.
// Limit defaults to 100.
func (a *API) GlobalTopPages(ctx context.Context, options *SiteOptions) (any, error) {
	return a.client.Call(ctx, MethodGlobalTopPages, params(map[string]any{
		"limit": limitOrDefault(options, DefaultGlobalLimit),
	}))
}

// GlobalTopDomains lists the strongest domains across the whole index.
// Limit defaults to 100.
func (a *API) GlobalTopDomains(ctx context.Context, options *SiteOptions) (any, error) {
	return a.client.Call(ctx, MethodGlobalTopDomains, params(map[string]any{
		"limit": limitOrDefault(options, DefaultGlobalLimit),
	}))
}
