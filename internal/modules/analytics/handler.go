package analytics

import (
	"net/http"
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
	rg.GET("/dashboard/stats", h.Dashboard)
	rg.GET("/analytics/origins", h.ByOrigin)
	rg.GET("/analytics/properties", h.ByProperty)
	rg.GET("/analytics/export", h.Export)
}

func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build dashboard stats")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

func (h *Handler) ByOrigin(c *gin.Context) {
	var from, to time.Time
	var err error

	if v := c.Query("from"); v != "" {
		if from, err = time.Parse("2006-01-02", v); err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_DATE", "Invalid 'from' date")
			return
		}
	}
	if v := c.Query("to"); v != "" {
		if to, err = time.Parse("2006-01-02", v); err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_DATE", "Invalid 'to' date")
			return
		}
	}

	origins, err := h.service.ByOrigin(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to aggregate origins")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"origins": origins})
}

func (h *Handler) ByProperty(c *gin.Context) {
	month := c.Query("month")
	if month != "" {
		if _, err := time.Parse("2006-01", month); err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_MONTH", "Month must be in YYYY-MM format")
			return
		}
	}

	performance, err := h.service.ByProperty(c.Request.Context(), month)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to aggregate properties")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"properties": performance})
}

// Export streams a CSV download of reservations or payments.
func (h *Handler) Export(c *gin.Context) {
	entity := c.DefaultQuery("entity", "reservations")

	var from, to *time.Time
	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_DATE", "Invalid 'from' date")
			return
		}
		from = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_DATE", "Invalid 'to' date")
			return
		}
		to = &t
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename="+entity+".csv")

	var err error
	switch entity {
	case "reservations":
		err = h.service.ExportReservationsCSV(c.Request.Context(), c.Writer, from, to)
	case "payments":
		err = h.service.ExportPaymentsCSV(c.Request.Context(), c.Writer)
	default:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown export entity")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to export "+entity)
	}
}
