package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-dashboard/internal/analyzer"
)

func TestScoreTierThresholds(t *testing.T) {
	cases := []struct {
		score float64
		tier  string
	}{
		{100, "green"},
		{80, "green"},
		{79.9, "yellow"},
		{60, "yellow"},
		{59.9, "orange"},
		{40, "orange"},
		{39.9, "red"},
		{0, "red"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.tier, ScoreTier(tc.score), "score %v", tc.score)
	}
}

func TestBarWidthClampsAndRounds(t *testing.T) {
	assert.Equal(t, 73, BarWidth(72.5))
	assert.Equal(t, 0, BarWidth(-5))
	assert.Equal(t, 100, BarWidth(120))
}

func TestInsightLabelReplacesUnderscores(t *testing.T) {
	assert.Equal(t, "salary range", InsightLabel("salary_range"))
	assert.Equal(t, "top locations", InsightLabel("top_locations"))
	assert.Equal(t, "plain", InsightLabel("plain"))
}

func TestNewReportView(t *testing.T) {
	report := &analyzer.Report{
		FitScore:       72.5,
		MatchedSkills:  []string{"Python", "SQL"},
		MissingSkills:  []string{"AWS"},
		HRSummary:      "Good candidate.",
		MarketInsights: map[string]string{"salary_range": "$80k-$100k", "demand_level": "High"},
		ImprovementSuggestions: []string{
			"Learn AWS",
			"Quantify achievements",
		},
	}

	view := newReportView(report)
	require.NotNil(t, view)

	assert.Equal(t, "yellow", view.Tier)
	assert.Equal(t, "72.5%", view.ScoreLabel)
	assert.Equal(t, 73, view.BarWidth)
	assert.Equal(t, []string{"Python", "SQL"}, view.Matched, "received order is preserved")

	require.Len(t, view.Insights, 2)
	assert.Equal(t, "demand_level", view.Insights[0].Key, "insights sort by key")
	assert.Equal(t, "demand level", view.Insights[0].Label)
	assert.Equal(t, "salary_range", view.Insights[1].Key, "underlying key keeps its underscores")
	assert.Equal(t, "$80k-$100k", view.Insights[1].Value)

	require.Len(t, view.Suggestions, 2)
	assert.Equal(t, 1, view.Suggestions[0].Number, "numbering is positional and 1-based")
	assert.Equal(t, 2, view.Suggestions[1].Number)
}

func TestNewReportViewNil(t *testing.T) {
	assert.Nil(t, newReportView(nil))
}

func TestNewPageDataDisablesAnalyzeOnlyWhilePending(t *testing.T) {
	data := newPageData(State{}, nil)
	assert.False(t, data.AnalyzeDisabled, "empty inputs resolve to a notice, not a dead button")

	data = newPageData(State{ResumeText: "r", JobDescription: "j", AnalyzePending: true}, nil)
	assert.True(t, data.AnalyzeDisabled)
}
