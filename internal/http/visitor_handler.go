package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurpe/yardops/internal/http/middleware"
	"github.com/nurpe/yardops/internal/service"
)

type checkInRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Company  string `json:"company"`
	GateID   string `json:"gate_id"`
}

func (h *Handler) checkInVisitor(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req checkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var gateID *uuid.UUID
	if req.GateID != "" {
		parsed, err := uuid.Parse(req.GateID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid gate_id"})
			return
		}
		gateID = &parsed
	}

	visitor, err := h.visitors.CheckIn(c.Request.Context(), principal, service.CheckInInput{
		FullName: req.FullName,
		Company:  req.Company,
		GateID:   gateID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, visitor)
}

func (h *Handler) checkOutVisitor(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.visitors.CheckOut(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// listVisitors lists the visitors for one calendar day, defaulting to today.
func (h *Handler) listVisitors(c *gin.Context) {
	day := time.Now()
	if raw := c.Query("day"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid day"})
			return
		}
		day = parsed
	}

	visitors, err := h.visitors.ListByDay(c.Request.Context(), day)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, visitors)
}
