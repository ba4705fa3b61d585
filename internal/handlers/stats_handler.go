package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/domain/admin"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/domain/event"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/domain/report"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/middleware"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/response"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/storage/postgres"
)

// StatsHandler serves the dashboard views. Every request re-fetches
// the snapshot and recomputes; there is no cache to invalidate.
type StatsHandler struct {
	eventRepo postgres.EventRepository
	now       func() time.Time
}

func NewStatsHandler(eventRepo postgres.EventRepository) *StatsHandler {
	return &StatsHandler{eventRepo: eventRepo, now: time.Now}
}

// GetDashboard handles GET /api/stats/dashboard
func (h *StatsHandler) GetDashboard(c *gin.Context) {
	events, ok := h.snapshot(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, report.Headlines(events))
}

// GetScoreboard handles GET /api/stats/scoreboard
func (h *StatsHandler) GetScoreboard(c *gin.Context) {
	events, ok := h.snapshot(c)
	if !ok {
		return
	}

	rows := report.Scoreboard(events)
	c.JSON(http.StatusOK, gin.H{
		"rows":  rows,
		"count": len(rows),
	})
}

// GetOverdue handles GET /api/stats/overdue. District admins only see
// their own district's pending reviews.
func (h *StatsHandler) GetOverdue(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)

	events, err := h.eventRepo.GetAll()
	if err != nil {
		response.InternalServerError(c, "Failed to retrieve events")
		return
	}

	if principal != nil && principal.Role == admin.RoleDistrictAdmin {
		events = report.FilterDistrict(events, principal.District)
	}

	overdue := report.Overdue(events, h.now())
	c.JSON(http.StatusOK, gin.H{
		"events": overdue,
		"count":  len(overdue),
	})
}

// snapshot fetches the event list and applies the optional district
// and window query filters.
func (h *StatsHandler) snapshot(c *gin.Context) ([]event.Event, bool) {
	events, err := h.eventRepo.GetAll()
	if err != nil {
		response.InternalServerError(c, "Failed to retrieve events")
		return nil, false
	}

	events = report.FilterDistrict(events, c.Query("district"))
	events = report.FilterWindow(events, report.WindowFromString(c.Query("window")), h.now())
	return events, true
}
