package handlers

import (
	"bytes"
	"net/http"

	"clinicdesk/internal/export"

	"github.com/gin-gonic/gin"
)

// ExportHandler streams the patient roster as a CSV attachment.
type ExportHandler struct {
	Exporter *export.Exporter
}

func (h *ExportHandler) ExportRoster(c *gin.Context) {
	// Buffer the whole roster first so a mid-export failure never sends a
	// truncated file with a 200 status.
	var buf bytes.Buffer
	if err := h.Exporter.ExportAll(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to export patients", "details": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="patients.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
