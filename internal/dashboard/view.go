package dashboard

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"resume-dashboard/internal/analyzer"
)

// ScoreTier maps a fit score to its color tier: green >= 80, yellow >= 60,
// orange >= 40, red below. The same tier styles the numeric label and the
// progress bar gradient.
func ScoreTier(score float64) string {
	switch {
	case score >= 80:
		return "green"
	case score >= 60:
		return "yellow"
	case score >= 40:
		return "orange"
	default:
		return "red"
	}
}

// BarWidth clamps the score to 0-100 and rounds it to a whole percentage
// for the filled-bar width.
func BarWidth(score float64) int {
	clamped := math.Max(0, math.Min(100, score))
	return int(math.Round(clamped))
}

// InsightLabel turns a market-insight key into its display label by
// replacing underscores with spaces. The underlying key is not mutated.
func InsightLabel(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

type insightView struct {
	Key   string
	Label string
	Value string
}

type suggestionView struct {
	Number int
	Text   string
}

type reportView struct {
	Score       float64
	ScoreLabel  string
	Tier        string
	BarWidth    int
	Matched     []string
	Missing     []string
	HRSummary   string
	Insights    []insightView
	Suggestions []suggestionView
}

// newReportView builds the renderable projection of a report. It is a pure
// function of the report: skills keep their received order, suggestions are
// numbered by position, insights are sorted by key for stable rendering.
func newReportView(report *analyzer.Report) *reportView {
	if report == nil {
		return nil
	}

	insights := make([]insightView, 0, len(report.MarketInsights))
	for key, value := range report.MarketInsights {
		insights = append(insights, insightView{
			Key:   key,
			Label: InsightLabel(key),
			Value: value,
		})
	}
	sort.Slice(insights, func(i, j int) bool { return insights[i].Key < insights[j].Key })

	suggestions := make([]suggestionView, 0, len(report.ImprovementSuggestions))
	for i, text := range report.ImprovementSuggestions {
		suggestions = append(suggestions, suggestionView{Number: i + 1, Text: text})
	}

	return &reportView{
		Score:       report.FitScore,
		ScoreLabel:  fmt.Sprintf("%.1f%%", report.FitScore),
		Tier:        ScoreTier(report.FitScore),
		BarWidth:    BarWidth(report.FitScore),
		Matched:     report.MatchedSkills,
		Missing:     report.MissingSkills,
		HRSummary:   report.HRSummary,
		Insights:    insights,
		Suggestions: suggestions,
	}
}

type pageData struct {
	FileName        string
	ResumeText      string
	JobDescription  string
	UploadPending   bool
	AnalyzePending  bool
	AnalyzeDisabled bool
	Notices         []Notice
	Report          *reportView
}

// newPageData projects state and drained notices into the template's input.
// The analyze button is disabled only while an analysis is in flight: the
// textareas are edited client-side, so server state cannot know whether they
// are empty, and an empty submission resolves to a precondition notice.
func newPageData(state State, notices []Notice) pageData {
	return pageData{
		FileName:        state.FileName,
		ResumeText:      state.ResumeText,
		JobDescription:  state.JobDescription,
		UploadPending:   state.UploadPending,
		AnalyzePending:  state.AnalyzePending,
		AnalyzeDisabled: state.AnalyzePending,
		Notices:         notices,
		Report:          newReportView(state.Report),
	}
}
