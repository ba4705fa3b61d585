package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/domain/admin"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/middleware"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/response"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/storage/postgres"
)

type VolunteerHandler struct {
	eventRepo postgres.EventRepository
}

func NewVolunteerHandler(eventRepo postgres.EventRepository) *VolunteerHandler {
	return &VolunteerHandler{eventRepo: eventRepo}
}

// ListVolunteers handles GET /api/volunteers. District admins only
// see participations belonging to their district's events.
func (h *VolunteerHandler) ListVolunteers(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)

	scope := ""
	if principal != nil && principal.Role == admin.RoleDistrictAdmin {
		scope = principal.District
	}

	volunteers, err := h.eventRepo.Volunteers(scope)
	if err != nil {
		response.InternalServerError(c, "Failed to retrieve volunteers")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"volunteers": volunteers,
		"count":      len(volunteers),
	})
}
