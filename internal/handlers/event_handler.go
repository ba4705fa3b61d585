package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/domain/admin"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/domain/event"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/middleware"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/response"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/storage/postgres"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/validation"
)

type EventHandler struct {
	eventRepo postgres.EventRepository
	validator validation.EventValidation
}

func NewEventHandler(eventRepo postgres.EventRepository) *EventHandler {
	return &EventHandler{eventRepo: eventRepo}
}

type VolunteerRequest struct {
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
	PhotoURL string `json:"photoUrl"`
}

type EventRequest struct {
	Title       string             `json:"title" binding:"required"`
	Date        string             `json:"date" binding:"required"`
	EndDate     string             `json:"endDate"`
	Type        string             `json:"type"`
	Location    string             `json:"location" binding:"required"`
	District    string             `json:"district" binding:"required"`
	Status      string             `json:"status" binding:"required"`
	Description string             `json:"description"`
	ImagePaths  []string           `json:"imagePaths"`
	Volunteers  []VolunteerRequest `json:"volunteers"`
}

// toEvent converts the request body into a domain event.
func (req *EventRequest) toEvent() (*event.Event, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	var endDate *time.Time
	if req.EndDate != "" {
		parsed, err := parseDate(req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %w", err)
		}
		endDate = &parsed
	}

	status, valid := event.StatusFromString(req.Status)
	if !valid {
		return nil, fmt.Errorf("invalid status: %s", req.Status)
	}

	seminarType := req.Type
	if seminarType == "" {
		seminarType = event.TypePaper
	}

	e := &event.Event{
		Title:       req.Title,
		Date:        date,
		EndDate:     endDate,
		Type:        seminarType,
		Location:    req.Location,
		District:    req.District,
		Status:      status,
		Description: req.Description,
		ImagePaths:  req.ImagePaths,
	}
	if e.ImagePaths == nil {
		e.ImagePaths = []string{}
	}

	for _, v := range req.Volunteers {
		e.Volunteers = append(e.Volunteers, event.Volunteer{
			Name:     v.Name,
			Role:     v.Role,
			Phone:    v.Phone,
			Email:    v.Email,
			Bio:      v.Bio,
			PhotoURL: v.PhotoURL,
		})
	}

	return e, nil
}

// GetAllEvents handles GET /api/events
func (h *EventHandler) GetAllEvents(c *gin.Context) {
	events, err := h.eventRepo.GetAll()
	if err != nil {
		response.InternalServerError(c, "Failed to retrieve events")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"count":  len(events),
	})
}

// GetEvent handles GET /api/events/:id
func (h *EventHandler) GetEvent(c *gin.Context) {
	e, err := h.eventRepo.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, postgres.ErrEventNotFound) {
			response.NotFoundError(c, "Event not found")
			return
		}
		response.InternalServerError(c, "Failed to retrieve event")
		return
	}

	c.JSON(http.StatusOK, e)
}

// CreateEvent handles POST /api/events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "Invalid request payload: "+err.Error())
		return
	}

	if !admin.CanMutate(principal, req.District, req.District) {
		response.ForbiddenError(c, "You can only create events in your district")
		return
	}

	newEvent, err := h.validate(&req)
	if err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	if err := h.eventRepo.Create(newEvent); err != nil {
		response.InternalServerError(c, "Failed to create event")
		return
	}

	c.JSON(http.StatusCreated, newEvent)
}

// UpdateEvent handles PUT /api/events/:id
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)

	existing, err := h.eventRepo.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, postgres.ErrEventNotFound) {
			response.NotFoundError(c, "Event not found")
			return
		}
		response.InternalServerError(c, "Failed to retrieve event")
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "Invalid request payload: "+err.Error())
		return
	}

	// Both the stored and the submitted district must be within the
	// principal's scope; a district admin cannot edit foreign events
	// nor retarget one to another district.
	if !admin.CanMutate(principal, existing.District, req.District) {
		response.ForbiddenError(c, "You can only edit events in your district")
		return
	}

	updated, err := h.validate(&req)
	if err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	updated.ID = existing.ID

	if err := h.eventRepo.Update(updated); err != nil {
		response.InternalServerError(c, "Failed to update event")
		return
	}

	saved, err := h.eventRepo.GetByID(existing.ID.String())
	if err != nil {
		response.InternalServerError(c, "Failed to retrieve updated event")
		return
	}

	c.JSON(http.StatusOK, saved)
}

// DeleteEvent handles DELETE /api/events/:id
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)

	existing, err := h.eventRepo.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, postgres.ErrEventNotFound) {
			response.NotFoundError(c, "Event not found")
			return
		}
		response.InternalServerError(c, "Failed to retrieve event")
		return
	}

	if !admin.CanMutate(principal, existing.District, existing.District) {
		response.ForbiddenError(c, "You can only delete events in your district")
		return
	}

	if err := h.eventRepo.Delete(existing.ID.String()); err != nil {
		response.InternalServerError(c, "Failed to delete event")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Event deleted", nil)
}

// validate runs form checks and converts the request to a domain event.
func (h *EventHandler) validate(req *EventRequest) (*event.Event, error) {
	if err := h.validator.ValidateTitle(req.Title); err != nil {
		return nil, err
	}
	if err := h.validator.ValidateLocation(req.Location); err != nil {
		return nil, err
	}
	if err := validation.ValidateDistrict(req.District); err != nil {
		return nil, err
	}

	e, err := req.toEvent()
	if err != nil {
		return nil, err
	}

	if err := validation.ValidateDateRange(e.Date, e.EndDate); err != nil {
		return nil, err
	}
	return e, nil
}

// parseDate accepts full ISO-8601 timestamps as well as plain dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
