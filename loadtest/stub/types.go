package stub

import "github.com/Demma22/REMI-APP-sub000/internal/domain"

type SeedRequest struct {
	Users []SeedUser `json:"users"`
}

type SeedUser struct {
	UserID    string             `json:"user_id"`
	Name      string             `json:"name,omitempty"`
	Timetable domain.Timetable   `json:"timetable"`
	Exams     []domain.ExamEntry `json:"exams,omitempty"`
}

type SeedResponse struct {
	Status    string `json:"status"`
	UserCount int    `json:"user_count"`
}
