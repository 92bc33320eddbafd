package domain

type ReachLevel string

const (
	ReachHigh   ReachLevel = "High (5K-10K)"
	ReachMedium ReachLevel = "Medium (2K-5K)"
	ReachLow    ReachLevel = "Low (500-2K)"
)

// ReachFor classifica o alcance esperado pela nota de engajamento
func ReachFor(score float64) ReachLevel {
	switch {
	case score >= 80:
		return ReachHigh
	case score >= 60:
		return ReachMedium
	default:
		return ReachLow
	}
}

type PostingSlot struct {
	Time            string     `json:"time"` // HH:00
	EngagementScore float64    `json:"engagement_score"`
	ExpectedReach   ReachLevel `json:"expected_reach"`
	Recommended     bool       `json:"recommended"`
}

type DaySchedule struct {
	Day       string        `json:"day"`
	IsPeakDay bool          `json:"is_peak_day"`
	Posts     []PostingSlot `json:"posts"`
}

type WeekOverview struct {
	Week             int      `json:"week"`
	StartDate        string   `json:"start_date"`
	TotalPosts       int      `json:"total_posts"`
	HighPriorityDays []string `json:"high_priority_days"`
}

type MonthlyOverview struct {
	TotalPostsPerMonth   int            `json:"total_posts_per_month"`
	Weeks                []WeekOverview `json:"weeks"`
	RecommendedFrequency string         `json:"recommended_frequency"`
}

type OptimalTime struct {
	Day                 string `json:"day"`
	Time                string `json:"time"`
	EngagementPotential int    `json:"engagement_potential"`
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)

type Recommendation struct {
	Category       string   `json:"category"`
	Priority       Priority `json:"priority"`
	Recommendation string   `json:"recommendation"`
	Reasoning      string   `json:"reasoning"`
}

type ExpectedImpact struct {
	AverageEngagementScore    float64 `json:"average_engagement_score"`
	EstimatedWeeklyReach      string  `json:"estimated_weekly_reach"`
	ExpectedTrafficIncrease   string  `json:"expected_traffic_increase"`
	ConversionPotential       float64 `json:"conversion_potential"`
	OptimalScheduleCompliance float64 `json:"optimal_schedule_compliance"`
}

type ScheduleResult struct {
	WeeklySchedule   []DaySchedule    `json:"weekly_schedule"`
	MonthlyOverview  MonthlyOverview  `json:"monthly_overview"`
	OptimalTimes     []OptimalTime    `json:"optimal_times"`
	Recommendations  []Recommendation `json:"recommendations"`
	ExpectedImpact   ExpectedImpact   `json:"expected_impact"`
	PlatformInsights PlatformProfile  `json:"platform_insights"`
}

// TotalPosts soma os slots de todos os dias da semana
func (r *ScheduleResult) TotalPosts() int {
	total := 0
	for _, day := range r.WeeklySchedule {
		total += len(day.Posts)
	}
	return total
}

// Suggestion é um horário absoluto sugerido, derivado da agenda semanal
type Suggestion struct {
	Datetime         string     `json:"datetime"`
	Date             string     `json:"date"`
	Time             string     `json:"time"`
	DayOfWeek        string     `json:"day_of_week"`
	Timezone         string     `json:"timezone"`
	EngagementScore  float64    `json:"engagement_score"`
	CompetitionLevel string     `json:"competition_level"`
	ExpectedReach    ReachLevel `json:"expected_reach"`
	Priority         float64    `json:"priority"`
	Reasoning        string     `json:"reasoning"`
}
