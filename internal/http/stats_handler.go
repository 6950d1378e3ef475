package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) getReport(c *gin.Context) {
	report, err := h.stats.GenerateReport(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) exportReport(c *gin.Context) {
	result, err := h.stats.ExportReport(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	const contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, contentType, result.Content)
}

func (h *Handler) exportReportPDF(c *gin.Context) {
	result, err := h.stats.ExportReportPDF(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

func (h *Handler) getVisits(c *gin.Context) {
	rows, err := h.stats.AggregateVisits(c.Request.Context(), c.Query("group_by"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) getFulfillment(c *gin.Context) {
	rows, err := h.stats.AggregateFulfillment(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
