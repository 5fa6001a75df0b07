package exam

type ResultItem struct {
	ExamID     string `json:"exam_id"`
	Course     string `json:"course"`
	Date       string `json:"date"`
	Offset     string `json:"offset,omitempty"`
	Scheduled  bool   `json:"scheduled"`
	Skipped    bool   `json:"skipped"`
	SkipReason string `json:"skip_reason,omitempty"`
}

type Response struct {
	ScheduledCount int          `json:"scheduled_count"`
	CancelledCount int          `json:"cancelled_count"`
	SkippedCount   int          `json:"skipped_count"`
	FailedCount    int          `json:"failed_count"`
	Results        []ResultItem `json:"results"`
}
