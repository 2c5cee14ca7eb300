package analyzer

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mozscape/mozgo/core/parse"
)

const insightAdvisory = "Insight generation was interrupted before completing; the findings above may be partial. " +
	"The raw report data is complete and remains available for manual review."

// Payload fields the insight rules read. Everything else in the remote
// payloads stays opaque.
const (
	fieldBrandAuthorityScore = "brand_authority_score"
	fieldDifficulty          = "difficulty"
	fieldVolume              = "volume"
	fieldRankingKeywords     = "ranking_keywords"
)

// rankingEntry is the typed view of one ranking-keyword item.
type rankingEntry struct {
	Keyword string   `json:"keyword"`
	Rank    *float64 `json:"rank"`
}

// generateInsights derives human-readable findings from an assembled
// report. It never fails and never mutates the report: a fault inside any
// rule keeps the lines produced so far and appends one advisory entry, so
// the caller always receives an explicit, self-describing result.
func generateInsights(report *Report) (lines []string) {
	builder := &insightBuilder{report: report}

	defer func() {
		if recovered := recover(); recovered != nil {
			slog.Error("insight generation fault", "panic", fmt.Sprint(recovered))
			lines = append(builder.lines, insightAdvisory)
		}
	}()

	builder.run()
	return builder.lines
}

type insightBuilder struct {
	report *Report
	lines  []string
}

func (b *insightBuilder) add(format string, args ...any) {
	b.lines = append(b.lines, fmt.Sprintf(format, args...))
}

// run applies the insight rules in their fixed order. Each rule is optional
// on data availability: missing or errored slots simply produce no line.
func (b *insightBuilder) run() {
	b.brandAuthorityInsight()
	b.difficultyInsight()
	b.volumeInsight()
	b.competitorComparisonInsight()
	b.rankingKeywordInsight()
}

func (b *insightBuilder) brandAuthorityInsight() {
	score, found := numericField(b.report.PrimarySiteData.BrandAuthority, fieldBrandAuthorityScore)
	if !found {
		return
	}
	b.add("Brand Authority for %s is %.0f/100 (%s).", b.report.PrimarySite, score, brandAuthorityBand(score))
}

func (b *insightBuilder) difficultyInsight() {
	if b.report.KeywordAnalysis == nil {
		return
	}
	difficulty, found := numericField(b.report.KeywordAnalysis.Difficulty, fieldDifficulty)
	if !found {
		return
	}
	b.add("Keyword difficulty for %q is %.0f (%s).", b.report.TargetKeyword, difficulty, difficultyBand(difficulty))
}

func (b *insightBuilder) volumeInsight() {
	if b.report.KeywordAnalysis == nil {
		return
	}
	volume, found := numericField(b.report.KeywordAnalysis.Volume, fieldVolume)
	if !found {
		return
	}
	b.add("Monthly search volume for %q is %s.", b.report.TargetKeyword, formatCount(volume))
}

// competitorComparisonInsight counts competitors above and below the
// primary site's brand authority. Emitted only when at least one
// comparison was possible.
func (b *insightBuilder) competitorComparisonInsight() {
	primaryScore, found := numericField(b.report.PrimarySiteData.BrandAuthority, fieldBrandAuthorityScore)
	if !found {
		return
	}

	var compared, higher, lower int
	for _, competitor := range b.report.CompetitorData {
		competitorScore, known := numericField(competitor.BrandAuthority, fieldBrandAuthorityScore)
		if !known {
			continue
		}
		compared++
		if competitorScore > primaryScore {
			higher++
		} else if competitorScore < primaryScore {
			lower++
		}
	}

	if compared == 0 {
		return
	}
	b.add("%d of %d compared competitors have a higher Brand Authority than %s; %d are lower.",
		higher, compared, b.report.PrimarySite, lower)
}

// rankingKeywordInsight reports whether the target keyword already appears
// among the primary site's ranking keywords, using case-insensitive
// substring matching. When the ranking-keyword list itself was not
// retrieved, no line is emitted.
func (b *insightBuilder) rankingKeywordInsight() {
	entries, retrieved := rankingEntries(b.report.PrimarySiteData.RankingKeywords)
	if !retrieved {
		return
	}

	target := strings.ToLower(b.report.TargetKeyword)
	for _, entry := range entries {
		if !strings.Contains(strings.ToLower(entry.Keyword), target) {
			continue
		}
		rank := "unknown"
		if entry.Rank != nil {
			rank = strconv.FormatInt(int64(*entry.Rank), 10)
		}
		b.add("%s already ranks for %q via %q (rank %s).", b.report.PrimarySite, b.report.TargetKeyword, entry.Keyword, rank)
		return
	}

	b.add("%s does not currently rank for %q in its top ranking keywords.", b.report.PrimarySite, b.report.TargetKeyword)
}

// numericField extracts a numeric field from an opaque payload value.
// Error-marker slots and absent fields report found=false.
func numericField(value any, field string) (float64, bool) {
	object, err := parse.ValueAs[map[string]any](value)
	if err != nil {
		return 0, false
	}
	if _, errored := object["error"]; errored {
		return 0, false
	}

	switch number := object[field].(type) {
	case float64:
		return number, true
	case int:
		return float64(number), true
	case string:
		parsed, parseErr := strconv.ParseFloat(number, 64)
		if parseErr != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// rankingEntries projects the ranking-keywords slot into typed entries.
// Accepts either a payload object carrying a ranking_keywords array or a
// bare array. retrieved=false means the list was never obtained (errored
// slot, absent field, unusable shape) and is distinct from an empty list.
func rankingEntries(value any) ([]rankingEntry, bool) {
	if value == nil {
		return nil, false
	}

	if object, err := parse.ValueAs[map[string]any](value); err == nil {
		if _, errored := object["error"]; errored {
			return nil, false
		}
		nested, hasList := object[fieldRankingKeywords]
		if !hasList {
			return nil, false
		}
		value = nested
	}

	entries, err := parse.ValueAs[[]rankingEntry](value)
	if err != nil {
		return nil, false
	}
	return entries, true
}

func brandAuthorityBand(score float64) string {
	switch {
	case score >= 70:
		return "Excellent"
	case score >= 50:
		return "Good"
	case score >= 30:
		return "Fair"
	default:
		return "Needs improvement"
	}
}

func difficultyBand(score float64) string {
	switch {
	case score >= 70:
		return "Very Hard"
	case score >= 50:
		return "Hard"
	case score >= 30:
		return "Medium"
	default:
		return "Easy"
	}
}

// formatCount renders a count with thousands separators, e.g. 12400 -> "12,400".
func formatCount(value float64) string {
	digits := strconv.FormatInt(int64(value), 10)
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var grouped strings.Builder
	for index, digit := range digits {
		if index > 0 && (len(digits)-index)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	if negative {
		return "-" + grouped.String()
	}
	return grouped.String()
}
