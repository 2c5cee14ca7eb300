package api

import "context"

// Quota looks up the remaining request quota for the account.
func (a *API) Quota(ctx context.Context) (any, error) {
	return a.client.Call(ctx, MethodQuotaLookup, params(map[string]any{}))
}

// UsageData fetches historical API usage data for the account.
func (a *API) UsageData(ctx context.Context) (any, error) {
	return a.client.Call(ctx, MethodUsageData, params(map[string]any{}))
}
