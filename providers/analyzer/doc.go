// Package analyzer builds multi-site competitive SEO reports.
//
// The engine fans out three remote calls per site (metrics, brand
// authority, ranking keywords) and optionally four keyword calls for the
// target keyword. Calls within one site run concurrently; competitor
// batches run sequentially in input order, which keeps the report ordering
// deterministic and bounds peak concurrency. Every remote call is
// individually guarded: a failure becomes an inline error marker in the
// report instead of aborting the analysis.
//
// After assembly the insight rules derive human-readable findings (score
// bandings, competitor comparison, ranking-keyword presence). Insight
// generation never fails; an internal fault yields the partial findings
// plus one advisory entry.
package analyzer
