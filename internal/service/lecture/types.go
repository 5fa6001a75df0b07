package lecture

type ResultItem struct {
	LectureID   string `json:"lecture_id"`
	Course      string `json:"course"`
	Day         string `json:"day"`
	LeadMinutes int    `json:"lead_minutes"`
	Occurrences int    `json:"occurrences"`
	Failures    int    `json:"failures,omitempty"`
	Skipped     bool   `json:"skipped"`
	SkipReason  string `json:"skip_reason,omitempty"`
}

type Response struct {
	ScheduledCount int          `json:"scheduled_count"`
	CancelledCount int          `json:"cancelled_count"`
	SkippedCount   int          `json:"skipped_count"`
	FailedCount    int          `json:"failed_count"`
	Results        []ResultItem `json:"results"`
}
