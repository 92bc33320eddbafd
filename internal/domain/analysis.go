package domain

type ValidationResult struct {
	Check   string `json:"check"`
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type AnalysisResult struct {
	Keywords          []string           `json:"keywords"`
	KeywordsExtracted bool               `json:"keywords_extracted"`
	SEO               *ScoreBundle       `json:"seo"`
	Validation        []ValidationResult `json:"validation"`
	MetaDescription   string             `json:"meta_description"`
	SEOImprovements   []string           `json:"seo_improvements"`
	SuggestedSchedule []Suggestion       `json:"suggested_schedule"`
}

type AnalyzeRequest struct {
	Content        string   `json:"content"`
	Keywords       []string `json:"keywords"`
	Platform       string   `json:"platform"`
	ContentType    string   `json:"content_type"`
	TargetAudience string   `json:"target_audience"`
}
