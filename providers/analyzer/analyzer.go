package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mozscape/mozgo/providers/api"
)

const competitorGuidance = "No competitor sites were supplied. Competitor identification is the caller's responsibility: " +
	"pick 2-5 sites that compete for the same keywords and audience, then re-run the analysis with those sites " +
	"to unlock the comparative insights."

// Engine orchestrates the multi-call competitor analysis: three concurrent
// site calls per site, sequential across competitors, plus an optional
// keyword batch. Individual call failures never abort the batch; they
// become inline error markers in the report.
type Engine struct {
	api *api.API
}

// NewEngine creates an analysis engine over the given API surface.
func NewEngine(apiSurface *api.API) *Engine {
	return &Engine{api: apiSurface}
}

// Options adjusts one Analyze invocation.
type Options struct {
	// Locale for serp-dependent calls. Defaults to en-US.
	Locale string
	// IncludeKeywordAnalysis controls the four-call keyword batch.
	// Nil means true.
	IncludeKeywordAnalysis *bool
}

func (o *Options) locale() string {
	if o != nil && o.Locale != "" {
		return o.Locale
	}
	return api.DefaultLocale
}

func (o *Options) includeKeywordAnalysis() bool {
	if o == nil || o.IncludeKeywordAnalysis == nil {
		return true
	}
	return *o.IncludeKeywordAnalysis
}

// Analyze builds a competitive report for primarySite against the given
// competitors, centered on targetKeyword.
//
// Concurrency policy: the three calls for one site run in parallel;
// competitor batches run strictly one after another, in input order, so
// CompetitorData always mirrors the competitors slice. Any combination of
// individual remote-call failures still yields a fully returned,
// partially populated report; Analyze itself fails only on faults outside
// all per-call guards.
func (e *Engine) Analyze(ctx context.Context, primarySite string, competitors []string, targetKeyword string, options *Options) (*Report, error) {
	locale := options.locale()

	report := &Report{
		PrimarySite:    primarySite,
		TargetKeyword:  targetKeyword,
		Locale:         locale,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		CompetitorData: make([]SiteSnapshot, 0, len(competitors)),
	}

	report.PrimarySiteData = e.siteSnapshot(ctx, primarySite, locale)

	for _, competitor := range competitors {
		report.CompetitorData = append(report.CompetitorData, e.competitorSnapshot(ctx, competitor, locale))
	}

	if options.includeKeywordAnalysis() {
		report.KeywordAnalysis = e.keywordAnalysis(ctx, targetKeyword, locale)
	}

	report.Insights = generateInsights(report)

	if len(competitors) == 0 {
		report.CompetitorIdentificationGuidance = competitorGuidance
	}

	return report, nil
}

// siteSnapshot issues the three site calls concurrently, each guarded so a
// failure lands in its own slot instead of rejecting the batch.
func (e *Engine) siteSnapshot(ctx context.Context, site string, locale string) SiteSnapshot {
	snapshot := SiteSnapshot{Site: site}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		snapshot.SiteMetrics = guardedSlot(e.api.SiteMetrics(groupCtx, site, nil))
		return nil
	})
	group.Go(func() error {
		snapshot.BrandAuthority = guardedSlot(e.api.BrandAuthority(groupCtx, site))
		return nil
	})
	group.Go(func() error {
		snapshot.RankingKeywords = guardedSlot(e.api.RankingKeywords(groupCtx, site, &api.SiteOptions{
			Locale: locale,
			Limit:  api.DefaultRankingKeywordsLimit,
		}))
		return nil
	})

	// Guarded closures never return an error; Wait only synchronizes.
	_ = group.Wait() //nolint:errcheck

	return snapshot
}

// competitorSnapshot wraps siteSnapshot so that a fault escaping the
// per-call guards downgrades the competitor to a single error entry
// instead of voiding the whole analysis.
func (e *Engine) competitorSnapshot(ctx context.Context, site string, locale string) (snapshot SiteSnapshot) {
	defer func() {
		if recovered := recover(); recovered != nil {
			slog.Error("competitor batch failed", "site", site, "panic", fmt.Sprint(recovered))
			snapshot = SiteSnapshot{Site: site, Error: fmt.Sprintf("analysis failed: %v", recovered)}
		}
	}()

	return e.siteSnapshot(ctx, site, locale)
}

// keywordAnalysis issues the four keyword calls concurrently with the same
// per-call failure isolation as the site batches.
func (e *Engine) keywordAnalysis(ctx context.Context, keyword string, locale string) *KeywordAnalysis {
	analysis := &KeywordAnalysis{}
	keywordOptions := &api.KeywordOptions{Locale: locale}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		analysis.Metrics = guardedSlot(e.api.KeywordMetrics(groupCtx, keyword, keywordOptions))
		return nil
	})
	group.Go(func() error {
		analysis.Difficulty = guardedSlot(e.api.KeywordDifficulty(groupCtx, keyword, keywordOptions))
		return nil
	})
	group.Go(func() error {
		analysis.Volume = guardedSlot(e.api.KeywordVolume(groupCtx, keyword, keywordOptions))
		return nil
	})
	group.Go(func() error {
		analysis.SearchIntent = guardedSlot(e.api.KeywordSearchIntent(groupCtx, keyword, keywordOptions))
		return nil
	})

	_ = group.Wait() //nolint:errcheck

	return analysis
}

// guardedSlot converts one call's outcome into its report slot value: the
// untouched result on success, an inline error marker on failure.
func guardedSlot(result any, err error) any {
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	return result
}
