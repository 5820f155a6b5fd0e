package expense

import (
	"errors"
	"net/http"
	"strconv"

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

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/expenses", h.Create)
	rg.GET("/expenses", h.List)
	rg.GET("/expenses/:id", h.GetByID)
	rg.PUT("/expenses/:id", h.Update)
	rg.DELETE("/expenses/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err, "Failed to create expense")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"expense": e})
}

func (h *Handler) List(c *gin.Context) {
	var f repository.ExpenseFilters

	if propertyID := c.Query("property_id"); propertyID != "" {
		if v, err := strconv.ParseInt(propertyID, 10, 64); err == nil {
			f.PropertyID = v
		}
	}
	f.Month = c.Query("month")
	f.Category = c.Query("category")

	expenses, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list expenses")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"expenses": expenses})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid expense ID")
		return
	}

	e, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to get expense")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"expense": e})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid expense ID")
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err, "Failed to update expense")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"expense": e})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid expense ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "Failed to delete expense")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Expense or property not found")
	case errors.Is(err, ErrInvalidMonth):
		response.Error(c, http.StatusBadRequest, "INVALID_MONTH", "Month must be in YYYY-MM format")
	case errors.Is(err, ErrUnknownCategory):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown expense category")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid expense data")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
