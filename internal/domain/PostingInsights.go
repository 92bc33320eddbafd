package domain

type InsightCard struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type PostingInsights struct {
	BestTime        string        `json:"best_time"`
	BestDays        []string      `json:"best_days"`
	AvgEngagement   string        `json:"avg_engagement"`
	Recommendations []InsightCard `json:"recommendations"`
}
