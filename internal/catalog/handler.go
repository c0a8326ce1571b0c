package catalog

import (
	"net/http"

	"pulsefit/internal/api"
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

// @Summary      List classes with seat availability
// @Description  Public weekly schedule, ordered by day of week then start time.
// @Tags         classes
// @Produce      json
// @Success      200 {object} map[string][]catalog.ClassWithAvailability
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/classes [get]
func (h *Handler) ListClasses(c *gin.Context) {
	classes, err := h.service.ListClasses(c.Request.Context())
	if err != nil {
		logger.Error("failed to load classes", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load classes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"classes": classes})
}

// @Summary      List trainers
// @Description  Admin-only: trainers with their class counts, oldest first.
// @Tags         admin,trainers
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string][]catalog.TrainerWithClassCount
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/admin/trainers [get]
func (h *Handler) ListTrainers(c *gin.Context) {
	trainers, err := h.service.ListTrainers(c.Request.Context())
	if err != nil {
		logger.Error("failed to load trainers", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load trainers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"trainers": trainers})
}

// @Summary      Create a trainer
// @Tags         admin,trainers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body catalog.CreateTrainerRequest true "Trainer payload"
// @Success      201 {object} map[string]catalog.Trainer
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/admin/trainers [post]
func (h *Handler) CreateTrainer(c *gin.Context) {
	var req CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.BindErrorMessage(err)})
		return
	}

	trainer, err := h.service.CreateTrainer(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrNameRequired:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "name is required"})
		default:
			logger.Error("failed to create trainer", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create trainer"})
		}
		return
	}

	metrics.RecordTrainerCreated()
	c.JSON(http.StatusCreated, gin.H{"trainer": trainer})
}

// @Summary      Create a class
// @Description  Admin-only: dayLabel must be one of Monday..Sunday.
// @Tags         admin,classes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body catalog.CreateClassRequest true "Class payload"
// @Success      201 {object} map[string]catalog.GymClass
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/admin/classes [post]
func (h *Handler) CreateClass(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.BindErrorMessage(err)})
		return
	}

	gymClass, err := h.service.CreateClass(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrInvalidDayLabel:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "dayLabel is required"})
		case ErrMissingFields:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing required fields"})
		case ErrTrainerNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Trainer not found"})
		default:
			logger.Error("failed to create class", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create class"})
		}
		return
	}

	metrics.RecordClassCreated()
	c.JSON(http.StatusCreated, gin.H{"gymClass": gymClass})
}
