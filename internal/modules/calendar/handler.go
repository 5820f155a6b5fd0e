package calendar

import (
	"net/http"
	"strconv"
	"time"

	"rentadmin/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/calendar", h.GetMonth)
}

// GetMonth handles GET /calendar?year=2025&month=10, defaulting to the
// current month.
func (h *Handler) GetMonth(c *gin.Context) {
	now := time.Now().UTC()
	year, month := now.Year(), int(now.Month())

	if y := c.Query("year"); y != "" {
		v, err := strconv.Atoi(y)
		if err != nil || v < 1970 || v > 2200 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid year")
			return
		}
		year = v
	}
	if m := c.Query("month"); m != "" {
		v, err := strconv.Atoi(m)
		if err != nil || v < 1 || v > 12 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid month")
			return
		}
		month = v
	}

	view, err := h.service.GetMonth(c.Request.Context(), year, time.Month(month))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build calendar")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"calendar": view})
}
