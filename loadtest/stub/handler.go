// Package stub is an in-memory stand-in for the student record store. Load
// tests seed it with timetable and exam documents, point the subsystem's
// STUDENT_STORE_URL at it, and drive resyncs against the seeded data.
package stub

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Demma22/REMI-APP-sub000/internal/domain"
)

type Handler struct {
	storage *RecordStorage
}

func NewHandler(storage *RecordStorage) *Handler {
	return &Handler{storage: storage}
}

func (h *Handler) HandleReset(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")

	h.storage.Reset(runID)

	slog.Info("reset data", slog.String("run_id", runID))

	c.JSON(http.StatusOK, gin.H{
		"status": "reset complete",
		"run_id": runID,
	})
}

func (h *Handler) HandleSeed(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")

	var req SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for _, u := range req.Users {
		h.storage.Put(runID, u.UserID, domain.UserRecord{
			Name:      u.Name,
			Timetable: u.Timetable,
			Exams:     u.Exams,
		})
	}

	slog.Info("seeded user records",
		slog.String("run_id", runID),
		slog.Int("user_count", len(req.Users)),
	)

	c.JSON(http.StatusOK, SeedResponse{
		Status:    "seed complete",
		UserCount: h.storage.Count(runID),
	})
}

// HandleGetUser serves the same shape the real store does, so the
// subsystem's client needs no test-mode switches.
func (h *Handler) HandleGetUser(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")
	userID := c.Param("id")

	record, ok := h.storage.Get(runID, userID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, record)
}

// NewRouter wires the stub endpoints onto a fresh engine.
func NewRouter(storage *RecordStorage) *gin.Engine {
	h := NewHandler(storage)

	router := gin.New()
	router.Use(gin.Recovery())

	router.POST("/reset", h.HandleReset)
	router.POST("/seed", h.HandleSeed)
	router.GET("/users/:id", h.HandleGetUser)

	return router
}
