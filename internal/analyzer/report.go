package analyzer

// Report is the match report returned by POST /analyze.
//
// Wire shape:
//
//	{
//	  "fit_score": <number 0-100>,
//	  "matched_skills": ["..."],
//	  "missing_skills": ["..."],
//	  "hr_summary": "...",
//	  "market_insights": {"...": "..."},
//	  "improvement_suggestions": ["..."]
//	}
type Report struct {
	FitScore               float64           `json:"fit_score"`
	MatchedSkills          []string          `json:"matched_skills"`
	MissingSkills          []string          `json:"missing_skills"`
	HRSummary              string            `json:"hr_summary"`
	MarketInsights         map[string]string `json:"market_insights"`
	ImprovementSuggestions []string          `json:"improvement_suggestions"`
}

// Extraction is the result of POST /upload-resume. Only Text is load-bearing;
// the other fields are carried for logging.
type Extraction struct {
	FileName  string `json:"filename"`
	Text      string `json:"text"`
	WordCount int    `json:"word_count"`
	Status    string `json:"status"`
}

// wireReport uses pointer fields so that a missing key is distinguishable
// from a present-but-empty value. The response is rejected unless every
// field is present and the score is within bounds; empty lists are fine.
type wireReport struct {
	FitScore               *float64           `json:"fit_score" validate:"required,gte=0,lte=100"`
	MatchedSkills          *[]string          `json:"matched_skills" validate:"required"`
	MissingSkills          *[]string          `json:"missing_skills" validate:"required"`
	HRSummary              *string            `json:"hr_summary" validate:"required"`
	MarketInsights         *map[string]string `json:"market_insights" validate:"required"`
	ImprovementSuggestions *[]string          `json:"improvement_suggestions" validate:"required"`
}

func (w wireReport) toReport() Report {
	return Report{
		FitScore:               *w.FitScore,
		MatchedSkills:          *w.MatchedSkills,
		MissingSkills:          *w.MissingSkills,
		HRSummary:              *w.HRSummary,
		MarketInsights:         *w.MarketInsights,
		ImprovementSuggestions: *w.ImprovementSuggestions,
	}
}

type wireExtraction struct {
	FileName  string  `json:"filename"`
	Text      *string `json:"text" validate:"required"`
	WordCount int     `json:"word_count"`
	Status    string  `json:"status"`
}

func (w wireExtraction) toExtraction() Extraction {
	return Extraction{
		FileName:  w.FileName,
		Text:      *w.Text,
		WordCount: w.WordCount,
		Status:    w.Status,
	}
}
