package reservation

import (
	"errors"
	"net/http"
	"strconv"

	"rentadmin/internal/domain"
	"rentadmin/internal/pkg/response"
	"rentadmin/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reservations", h.List)
	rg.GET("/reservations/:id", h.GetByID)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/reservations", h.Create)
	rg.PUT("/reservations/:id/status", h.UpdateStatus)
	rg.DELETE("/reservations/:id", h.Cancel)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	r, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate):
			response.Error(c, http.StatusBadRequest, "INVALID_DATE", "Dates must be valid YYYY-MM-DD calendar dates")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid reservation data")
		case errors.Is(err, ErrPropertyNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
		case errors.Is(err, ErrPropertyInactive):
			response.Error(c, http.StatusBadRequest, "PROPERTY_INACTIVE", "Property is not active")
		case errors.Is(err, ErrNotAvailable), errors.Is(err, ErrDoubleBooking):
			response.Error(c, http.StatusConflict, "RESERVATION_CONFLICT", "Property is not available for the selected dates")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create reservation")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"reservation": r})
}

func (h *Handler) List(c *gin.Context) {
	var f repository.ReservationFilters

	if propertyID := c.Query("property_id"); propertyID != "" {
		if v, err := strconv.ParseInt(propertyID, 10, 64); err == nil {
			f.PropertyID = v
		}
	}
	if status := c.Query("status"); status != "" {
		if _, err := domain.ParseReservationStatus(status); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown reservation status")
			return
		}
		f.Status = status
	}
	if from := c.Query("from"); from != "" {
		t, err := ParseDate(from)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_DATE", "Invalid 'from' date")
			return
		}
		f.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := ParseDate(to)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_DATE", "Invalid 'to' date")
			return
		}
		f.To = &t
	}

	reservations, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list reservations")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservations": reservations})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return
	}

	r, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get reservation")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservation": r})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	status, err := domain.ParseReservationStatus(req.Status)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown reservation status")
		return
	}

	r, err := h.service.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		h.respondStatusError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservation": r})
}

func (h *Handler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return
	}

	r, err := h.service.Cancel(c.Request.Context(), id)
	if err != nil {
		h.respondStatusError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservation": r})
}

func (h *Handler) respondStatusError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
	case errors.Is(err, ErrInvalidStatusTransition):
		response.Error(c, http.StatusBadRequest, "INVALID_TRANSITION", "Status transition is not allowed")
	case errors.Is(err, ErrNotAvailable):
		response.Error(c, http.StatusConflict, "RESERVATION_CONFLICT", "Dates are no longer available")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update reservation")
	}
}
