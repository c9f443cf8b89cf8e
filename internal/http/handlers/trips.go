package handlers

import (
	"net/http"

	"carbooking/internal/domain/models"
	"carbooking/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

type createTripRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	Destination string `json:"destination" binding:"required"`
}

// GET /api/trips?q=
func (h *Handler) GetTrips(c *gin.Context) {
	trips, err := h.Trips.ListRecent(c.Request.Context(), c.Query("q"), 0)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// POST /api/trips
func (h *Handler) CreateTrip(c *gin.Context) {
	var req createTripRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	id, err := h.Trips.Create(c.Request.Context(), models.NewTrip{
		Name:        req.Name,
		Phone:       req.Phone,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Destination: req.Destination,
	})
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// DELETE /api/trips/:id
func (h *Handler) CancelTrip(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Trips.Cancel(c.Request.Context(), id); err != nil {
		h.RespondDomainError(c, err)
		return
	}
	if rc, ok := middleware.Admin(c); ok && h.Log != nil {
		h.Log.InfoContext(c.Request.Context(), "cancel requested",
			"request_id", middleware.GetRequestID(c),
			"trip_id", id,
			"admin_id", rc.AdminID,
		)
	}
	c.Status(http.StatusNoContent)
}

// GET /api/trips/:id/ticket
func (h *Handler) GetTripTicket(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	pdf, filename, err := h.Tickets.Render(c.Request.Context(), id)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
