// Package resync replays both planners from the persisted user record. The
// app has no background execution on device, so a foreground trigger (or
// this service's cron when running host-side) is the only point where the
// scheduled set catches up with store edits made elsewhere.
package resync

import (
	"context"
	"log/slog"
	"time"

	"github.com/Demma22/REMI-APP-sub000/internal/domain"
	"github.com/Demma22/REMI-APP-sub000/internal/infra/audit"
	"github.com/Demma22/REMI-APP-sub000/internal/infra/studentstore"
	"github.com/Demma22/REMI-APP-sub000/internal/service/exam"
	"github.com/Demma22/REMI-APP-sub000/internal/service/lecture"
)

type Result struct {
	UserID           string `json:"user_id"`
	LectureScheduled int    `json:"lecture_scheduled"`
	LectureCancelled int    `json:"lecture_cancelled"`
	ExamScheduled    int    `json:"exam_scheduled"`
	ExamCancelled    int    `json:"exam_cancelled"`
	SkippedCount     int    `json:"skipped_count"`
}

type Service struct {
	store          *studentstore.Client
	lecturePlanner *lecture.Planner
	examPlanner    *exam.Planner
	auditRecorder  audit.Recorder
}

func NewService(
	store *studentstore.Client,
	lecturePlanner *lecture.Planner,
	examPlanner *exam.Planner,
	auditRecorder audit.Recorder,
) *Service {
	return &Service{
		store:          store,
		lecturePlanner: lecturePlanner,
		examPlanner:    examPlanner,
		auditRecorder:  auditRecorder,
	}
}

// Resync fetches the user's record and replans both categories from it.
func (s *Service) Resync(ctx context.Context, userID string) (*Result, error) {
	record, err := s.store.GetUserRecord(ctx, userID)
	if err != nil {
		return nil, err
	}

	lectureResp, err := s.lecturePlanner.Plan(ctx, record.Timetable)
	if err != nil {
		return nil, err
	}
	s.record(ctx, domain.CategoryLecture.String(), lectureResp.ScheduledCount, lectureResp.CancelledCount, lectureResp.SkippedCount, lectureResp.FailedCount)

	examResp, err := s.examPlanner.Plan(ctx, record.Name, record.Exams)
	if err != nil {
		return nil, err
	}
	s.record(ctx, domain.CategoryExam.String(), examResp.ScheduledCount, examResp.CancelledCount, examResp.SkippedCount, examResp.FailedCount)

	return &Result{
		UserID:           userID,
		LectureScheduled: lectureResp.ScheduledCount,
		LectureCancelled: lectureResp.CancelledCount,
		ExamScheduled:    examResp.ScheduledCount,
		ExamCancelled:    examResp.CancelledCount,
		SkippedCount:     lectureResp.SkippedCount + examResp.SkippedCount,
	}, nil
}

// ResyncAll runs Resync for each configured user, continuing past
// individual failures.
func (s *Service) ResyncAll(ctx context.Context, userIDs []string) {
	for _, userID := range userIDs {
		if _, err := s.Resync(ctx, userID); err != nil {
			slog.WarnContext(ctx, "scheduled resync failed for user",
				slog.String("user_id", userID),
				slog.String("error", err.Error()),
			)
		}
	}
}

func (s *Service) record(ctx context.Context, category string, scheduled, cancelled, skipped, failed int) {
	if s.auditRecorder == nil {
		return
	}
	err := s.auditRecorder.RecordPlan(ctx, audit.PlanRecord{
		Category:       category,
		ScheduledCount: scheduled,
		CancelledCount: cancelled,
		SkippedCount:   skipped,
		FailedCount:    failed,
		PlannedAt:      time.Now().UTC(),
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to record plan audit",
			slog.String("category", category),
			slog.String("error", err.Error()),
		)
	}
}
