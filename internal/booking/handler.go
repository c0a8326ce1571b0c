package booking

import (
	"net/http"

	"pulsefit/internal/api"
	"pulsefit/internal/auth"
	"pulsefit/internal/logger"
	"pulsefit/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// @Summary      Book a class
// @Description  Creates a booking for the given class and date.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body booking.CreateBookingRequest true "Booking payload"
// @Success      201 {object} map[string]booking.Booking
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/bookings [post]
func (h *Handler) Create(c *gin.Context) {
	ident, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.BindErrorMessage(err)})
		return
	}

	booking, err := h.service.Create(c.Request.Context(), ident.Subject, req)
	if err != nil {
		switch err {
		case ErrMissingFields:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "classId and date are required"})
		case ErrInvalidDate:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid date"})
		case ErrClassNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Class not found"})
		case ErrClassFull:
			metrics.RecordBooking("rejected")
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Class is full"})
		case ErrDuplicateBooking:
			metrics.RecordBooking("rejected")
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "You already booked this class for that date"})
		default:
			logger.Error("failed to create booking", "subject", ident.Subject, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create booking"})
		}
		return
	}

	metrics.RecordBooking("created")
	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// @Summary      List my bookings
// @Description  Bookings of the authenticated member with class and trainer embedded, newest first.
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string][]booking.BookingWithDetails
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/bookings [get]
func (h *Handler) ListMine(c *gin.Context) {
	ident, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	bookings, err := h.service.ListForUser(c.Request.Context(), ident.Subject)
	if err != nil {
		logger.Error("failed to load bookings", "subject", ident.Subject, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load bookings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// @Summary      List all bookings
// @Description  Admin-only: every booking with user, class and trainer embedded, newest first.
// @Tags         admin,bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string][]booking.BookingWithDetails
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/admin/bookings [get]
func (h *Handler) ListAll(c *gin.Context) {
	bookings, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		logger.Error("failed to load bookings", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load bookings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
