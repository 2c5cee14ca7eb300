package api

import "context"

// KeywordMetrics fetches the full metric set for a keyword.
func (a *API) KeywordMetrics(ctx context.Context, keyword string, options *KeywordOptions) (any, error) {
	return a.client.Call(ctx, MethodKeywordMetrics, params(map[string]any{
		"serp_query": serpQuery(keyword, options),
	}))
}

// KeywordDifficulty fetches the difficulty score for a keyword.
func (a *API) KeywordDifficulty(ctx context.Context, keyword string, options *KeywordOptions) (any, error) {
	return a.client.Call(ctx, MethodKeywordDifficulty, params(map[string]any{
		"serp_query": serpQuery(keyword, options),
	}))
}

// KeywordVolume fetches the monthly search volume for a keyword.
func (a *API) KeywordVolume(ctx context.Context, keyword string, options *KeywordOptions) (any, error) {
	return a.client.Call(ctx, MethodKeywordVolume, params(map[string]any{
		"serp_query": serpQuery(keyword, options),
	}))
}

// KeywordOpportunity fetches the opportunity score for a keyword.
func (a *API) KeywordOpportunity(ctx context.Context, keyword string, options *KeywordOptions) (any, error) {
	return a.client.Call(ctx, MethodKeywordOpportunity, params(map[string]any{
		"serp_query": serpQuery(keyword, options),
	}))
}

// KeywordPriority fetches the combined priority score for a keyword.
func (a *API) KeywordPriority(ctx context.Context, keyword string, options *KeywordOptions) (any, error) {
	return a.client.Call(ctx, MethodKeywordPriority, params(map[string]any{
		"serp_query": serpQuery(keyword, options),
	}))
}

// KeywordSearchIntent fetches the search intent classification for a keyword.
func (a *API) KeywordSearchIntent(ctx context.Context, keyword string, options *KeywordOptions) (any, error) {
	return a.client.Call(ctx, MethodKeywordSearchIntent, params(map[string]any{
		"serp_query": serpQuery(keyword, options),
	}))
}

// KeywordSuggestions lists related keyword suggestions. The result set is
// capped at options.Limit, defaulting to 1000.
func (a *API) KeywordSuggestions(ctx context.Context, keyword string, options *KeywordOptions) (any, error) {
	limit := DefaultSuggestionsLimit
	if options != nil && options.Limit > 0 {
		limit = options.Limit
	}
	return a.client.Call(ctx, MethodKeywordSuggestions, params(map[string]any{
		"serp_query": serpQuery(keyword, options),
		"limit":      limit,
	}))
}
