package handlers

import (
	"context"
	"net/http"
	"strconv"

	bookingRepo "flowerdecor/database/repository/booking"
	"flowerdecor/models"
	"flowerdecor/services/booking"
	"flowerdecor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingIntake runs one submission through validation, persistence and notification.
type BookingIntake interface {
	Handle(ctx context.Context, raw map[string]any) booking.Outcome
}

// BookingHandler serves public intake and the admin booking views.
type BookingHandler struct {
	Intake BookingIntake
	Repo   bookingRepo.BookingRepository
}

func NewBookingHandler(intake BookingIntake, repo bookingRepo.BookingRepository) *BookingHandler {
	return &BookingHandler{Intake: intake, Repo: repo}
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if raw == nil {
		raw = map[string]any{}
	}

	out := h.Intake.Handle(c.Request.Context(), raw)
	if out.Err != nil && out.Status >= http.StatusInternalServerError {
		getLogger(c).Error("CreateBooking: failed",
			zap.String("state", string(out.State)),
			zap.String("bookingId", out.BookingID),
			zap.Error(out.Err))
	}
	c.JSON(out.Status, out.Body)
}

// ListBookingsHandler handles GET /api/bookings?limit=N, newest first.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.JSONError(c, http.StatusBadRequest, "limit must be a non-negative integer", err)
			return
		}
		limit = n
	}

	bookings, err := h.Repo.ListRecent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err, "", "Failed to fetch bookings")
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler handles GET /api/bookings/:bookingId.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Repo.GetByBookingID(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		respondError(c, err, "Booking not found", "Failed to fetch booking")
		return
	}
	c.JSON(http.StatusOK, b)
}
