package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Demma22/REMI-APP-sub000/internal/domain"
	"github.com/Demma22/REMI-APP-sub000/internal/host"
	"github.com/Demma22/REMI-APP-sub000/internal/infra/audit"
	"github.com/Demma22/REMI-APP-sub000/internal/service/exam"
	"github.com/Demma22/REMI-APP-sub000/internal/service/lecture"
	"github.com/Demma22/REMI-APP-sub000/internal/service/reconcile"
)

type ScheduleLecturesRequest struct {
	Name      string           `json:"name"`
	Timetable domain.Timetable `json:"timetable" binding:"required"`
}

type ScheduleExamsRequest struct {
	Name  string             `json:"name"`
	Exams []domain.ExamEntry `json:"exams" binding:"required"`
}

type CancelRequest struct {
	Identities []string `json:"identities" binding:"required,min=1"`
}

type CancelResponse struct {
	CancelledCount int `json:"cancelled_count"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type RemindersHandler struct {
	lecturePlanner *lecture.Planner
	examPlanner    *exam.Planner
	reconciler     *reconcile.Reconciler
	notifier       host.Notifier
	auditRecorder  audit.Recorder
}

func NewRemindersHandler(
	lecturePlanner *lecture.Planner,
	examPlanner *exam.Planner,
	reconciler *reconcile.Reconciler,
	notifier host.Notifier,
	auditRecorder audit.Recorder,
) *RemindersHandler {
	return &RemindersHandler{
		lecturePlanner: lecturePlanner,
		examPlanner:    examPlanner,
		reconciler:     reconciler,
		notifier:       notifier,
		auditRecorder:  auditRecorder,
	}
}

// HandleScheduleLectures replans the lecture category from the timetable
// snapshot in the request body.
func (h *RemindersHandler) HandleScheduleLectures(c *gin.Context) {
	ctx := c.Request.Context()

	var req ScheduleLecturesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "lecture schedule request validation failed",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	resp, err := h.lecturePlanner.Plan(ctx, req.Timetable)
	if err != nil {
		h.respondPlanError(c, domain.CategoryLecture, err)
		return
	}

	h.recordAudit(c, audit.PlanRecord{
		Category:       domain.CategoryLecture.String(),
		ScheduledCount: resp.ScheduledCount,
		CancelledCount: resp.CancelledCount,
		SkippedCount:   resp.SkippedCount,
		FailedCount:    resp.FailedCount,
		PlannedAt:      time.Now().UTC(),
	})

	c.JSON(http.StatusOK, resp)
}

// HandleScheduleExams replans the exam category from the exam list in the
// request body.
func (h *RemindersHandler) HandleScheduleExams(c *gin.Context) {
	ctx := c.Request.Context()

	var req ScheduleExamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "exam schedule request validation failed",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	resp, err := h.examPlanner.Plan(ctx, req.Name, req.Exams)
	if err != nil {
		h.respondPlanError(c, domain.CategoryExam, err)
		return
	}

	h.recordAudit(c, audit.PlanRecord{
		Category:       domain.CategoryExam.String(),
		ScheduledCount: resp.ScheduledCount,
		CancelledCount: resp.CancelledCount,
		SkippedCount:   resp.SkippedCount,
		FailedCount:    resp.FailedCount,
		PlannedAt:      time.Now().UTC(),
	})

	c.JSON(http.StatusOK, resp)
}

// HandleCancelByIdentities removes the reminders of specific deleted
// lectures without a full reconciliation pass.
func (h *RemindersHandler) HandleCancelByIdentities(c *gin.Context) {
	ctx := c.Request.Context()

	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	cancelled, err := h.reconciler.CancelByIdentities(ctx, req.Identities)
	if err != nil {
		respondError(c, http.StatusBadGateway, "host_list_error", "could not enumerate scheduled reminders")
		return
	}

	c.JSON(http.StatusOK, CancelResponse{CancelledCount: cancelled})
}

// HandleCancelAll clears every scheduled reminder.
func (h *RemindersHandler) HandleCancelAll(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.reconciler.CancelAll(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to cancel all reminders",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadGateway, "host_cancel_error", "could not cancel scheduled reminders")
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleListScheduled returns the host's current scheduled set.
func (h *RemindersHandler) HandleListScheduled(c *gin.Context) {
	ctx := c.Request.Context()

	reminders, err := h.notifier.ListScheduled(ctx)
	if err != nil {
		respondError(c, http.StatusBadGateway, "host_list_error", "could not enumerate scheduled reminders")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":     len(reminders),
		"reminders": reminders,
	})
}

func (h *RemindersHandler) respondPlanError(c *gin.Context, category domain.Category, err error) {
	ctx := c.Request.Context()
	slog.ErrorContext(ctx, "planner invocation failed",
		slog.String("category", category.String()),
		slog.String("error", err.Error()),
	)

	if errors.Is(err, domain.ErrListFailed) {
		respondError(c, http.StatusBadGateway, "host_list_error", "could not enumerate scheduled reminders; aborting to avoid duplicates")
		return
	}
	respondError(c, http.StatusInternalServerError, "processing_error", "failed to plan reminders")
}

func (h *RemindersHandler) recordAudit(c *gin.Context, record audit.PlanRecord) {
	if h.auditRecorder == nil {
		return
	}
	if err := h.auditRecorder.RecordPlan(c.Request.Context(), record); err != nil {
		slog.WarnContext(c.Request.Context(), "failed to record plan audit",
			slog.String("category", record.Category),
			slog.String("error", err.Error()),
		)
	}
}

func respondError(c *gin.Context, status int, errType, message string) {
	c.JSON(status, ErrorResponse{
		Error:   errType,
		Message: message,
	})
}
