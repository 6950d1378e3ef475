package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/yardops/internal/service"
)

type Handler struct {
	stats    *service.StatsService
	tasks    *service.TaskService
	yard     *service.YardService
	visitors *service.VisitorService
	log      zerolog.Logger
}

func NewHandler(
	stats *service.StatsService,
	tasks *service.TaskService,
	yard *service.YardService,
	visitors *service.VisitorService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		stats:    stats,
		tasks:    tasks,
		yard:     yard,
		visitors: visitors,
		log:      log,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := router.Group("/")
	protected.Use(authMiddleware)

	protected.GET("/stats/report", h.getReport)
	protected.GET("/stats/report/export", h.exportReport)
	protected.GET("/stats/report/export/pdf", h.exportReportPDF)
	protected.GET("/stats/visits", h.getVisits)
	protected.GET("/stats/fulfillment", h.getFulfillment)

	protected.POST("/tasks", h.createTask)
	protected.GET("/tasks", h.listTasks)
	protected.GET("/tasks/:id", h.getTask)
	protected.PATCH("/tasks/:id/status", h.updateTaskStatus)
	protected.POST("/tasks/:id/complete", h.completeTask)
	protected.DELETE("/tasks/:id", h.deleteTask)
	protected.POST("/tasks/:id/loadings", h.addLoading)
	protected.GET("/tasks/:id/loadings", h.listLoadings)
	protected.POST("/tasks/:id/weighings", h.addWeighing)
	protected.GET("/tasks/:id/weighings", h.listWeighings)
	protected.GET("/statuses", h.listStatuses)

	protected.POST("/trucks", h.createTruck)
	protected.GET("/trucks", h.listTrucks)
	protected.PATCH("/trucks/:id/driver", h.assignTruckDriver)
	protected.DELETE("/trucks/:id", h.deleteTruck)
	protected.GET("/drivers", h.listDrivers)

	protected.POST("/warehouses", h.createWarehouse)
	protected.GET("/warehouses", h.listWarehouses)
	protected.DELETE("/warehouses/:id", h.deleteWarehouse)

	protected.POST("/gates", h.createGate)
	protected.GET("/gates", h.listGates)
	protected.DELETE("/gates/:id", h.deleteGate)

	protected.POST("/visitors", h.checkInVisitor)
	protected.POST("/visitors/:id/checkout", h.checkOutVisitor)
	protected.GET("/visitors", h.listVisitors)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDateFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrDataSourceUnavailable):
		h.log.Error().Err(err).Msg("data source unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "data source unavailable"})
	default:
		h.log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param(name)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	layouts := []string{
		"2006-01-02",
		time.RFC3339,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}
