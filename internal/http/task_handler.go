package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurpe/yardops/internal/http/middleware"
	"github.com/nurpe/yardops/internal/service"
)

type createTaskRequest struct {
	StatusID string `json:"status_id" binding:"required"`
	UserID   string `json:"user_id" binding:"required"`
	PlanDate string `json:"plan_date" binding:"required"`
	Comment  string `json:"comment"`
}

func (h *Handler) createTask(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	statusID, err := uuid.Parse(req.StatusID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status_id"})
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
		return
	}
	planDate, err := parseDate(req.PlanDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan_date"})
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), principal, service.CreateTaskInput{
		StatusID: statusID,
		UserID:   userID,
		PlanDate: planDate,
		Comment:  req.Comment,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *Handler) listTasks(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from"})
			return
		}
		from = &parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to"})
			return
		}
		to = &parsed
	}

	tasks, err := h.tasks.List(c.Request.Context(), principal, from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) getTask(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	task, err := h.tasks.Get(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

type updateTaskStatusRequest struct {
	StatusID string `json:"status_id" binding:"required"`
}

func (h *Handler) updateTaskStatus(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req updateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	statusID, err := uuid.Parse(req.StatusID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status_id"})
		return
	}

	if err := h.tasks.UpdateStatus(c.Request.Context(), principal, id, statusID); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) completeTask(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	task, err := h.tasks.Complete(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) deleteTask(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type addLoadingRequest struct {
	WarehouseID string `json:"warehouse_id" binding:"required"`
}

func (h *Handler) addLoading(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req addLoadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	warehouseID, err := uuid.Parse(req.WarehouseID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid warehouse_id"})
		return
	}

	loading, err := h.tasks.AddLoading(c.Request.Context(), principal, id, warehouseID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, loading)
}

func (h *Handler) listLoadings(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	loadings, err := h.tasks.ListLoadings(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, loadings)
}

type addWeighingRequest struct {
	Weight float64 `json:"weight" binding:"required"`
}

func (h *Handler) addWeighing(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req addWeighingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	weighing, err := h.tasks.AddWeighing(c.Request.Context(), principal, id, req.Weight)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, weighing)
}

func (h *Handler) listWeighings(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	weighings, err := h.tasks.ListWeighings(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, weighings)
}

func (h *Handler) listStatuses(c *gin.Context) {
	statuses, err := h.tasks.ListStatuses(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, statuses)
}
