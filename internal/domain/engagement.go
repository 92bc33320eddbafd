package domain

// SubScores são as cinco notas independentes, todas em [0,100]
type SubScores struct {
	KeywordDensity    float64 `json:"keyword_density"`
	Readability       float64 `json:"readability"`
	ContentLength     float64 `json:"content_length"`
	KeywordPlacement  float64 `json:"keyword_placement"`
	SemanticRelevance float64 `json:"semantic_relevance"`
}

type EngagementMetrics struct {
	EngagementRate   float64 `json:"engagement_rate"`
	ClickThroughRate float64 `json:"click_through_rate"`
	BounceRate       float64 `json:"bounce_rate"`
	AvgTimeOnPage    string  `json:"avg_time_on_page"`
}

type ContentMetrics struct {
	WordCount      int `json:"word_count"`
	SentenceCount  int `json:"sentence_count"`
	ParagraphCount int `json:"paragraph_count"`
}

// ScoreBundle é o resultado da pontuação de engajamento/SEO de um conteúdo
type ScoreBundle struct {
	SEOScore               float64           `json:"seo_score"`
	PredictedRanking       int               `json:"predicted_ranking"` // Menor é melhor
	EstimatedTraffic       int               `json:"estimated_traffic"`
	ReadabilityScore       float64           `json:"readability_score"`
	Scores                 SubScores         `json:"scores"`
	EngagementMetrics      EngagementMetrics `json:"engagement_metrics"`
	ContentMetrics         ContentMetrics    `json:"content_metrics"`
	ImprovementSuggestions []string          `json:"improvement_suggestions"`
}

// KeywordCandidate é o registro entregue pela fonte de palavras-chave externa
type KeywordCandidate struct {
	Keyword          string  `json:"keyword"`
	SearchVolume     int     `json:"search_volume"`
	Competition      float64 `json:"competition"`
	OpportunityScore float64 `json:"opportunity_score"`
	TrendingNow      bool    `json:"trending_now"`
}

// KeywordStrings extrai apenas os textos, preservando a ordem
func KeywordStrings(candidates []KeywordCandidate) []string {
	keywords := make([]string, 0, len(candidates))
	for _, c := range candidates {
		keywords = append(keywords, c.Keyword)
	}
	return keywords
}

// ScoreRequest aceita palavras-chave simples ou os registros da fonte externa
type ScoreRequest struct {
	Content           string             `json:"content"`
	Keywords          []string           `json:"keywords"`
	KeywordCandidates []KeywordCandidate `json:"keyword_candidates,omitempty"`
	Platform          string             `json:"platform"`
}

// ResolvedKeywords prefere a lista simples; sem ela usa os candidatos na ordem recebida
func (r *ScoreRequest) ResolvedKeywords() []string {
	if len(r.Keywords) > 0 {
		return r.Keywords
	}
	return KeywordStrings(r.KeywordCandidates)
}
