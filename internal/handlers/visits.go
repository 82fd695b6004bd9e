package handlers

import (
	"errors"
	"net/http"
	"strings"

	"clinicdesk/internal/models"
	"clinicdesk/internal/store"
	"clinicdesk/internal/validate"

	"github.com/gin-gonic/gin"
)

type CreateVisitRequest struct {
	VisitDate string `json:"visit_date" binding:"required"`
	Doctor    string `json:"doctor" binding:"required"`
	Notes     string `json:"notes"`
}

// VisitHandler exposes the visit store over HTTP.
type VisitHandler struct {
	Store *store.VisitStore
}

func (h *VisitHandler) CreateVisit(c *gin.Context) {
	patientID, ok := parseID(c, "patient_id")
	if !ok {
		return
	}

	var req CreateVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	visit := models.Visit{
		PatientID: patientID,
		VisitDate: req.VisitDate,
		Doctor:    strings.TrimSpace(req.Doctor),
		Notes:     req.Notes,
	}
	if err := validate.Visit(&visit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "details": err.Error()})
		return
	}

	if err := h.Store.Create(&visit); err != nil {
		if errors.Is(err, store.ErrNoSuchPatient) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Patient not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to record visit", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, visit)
}

func (h *VisitHandler) ListVisits(c *gin.Context) {
	patientID, ok := parseID(c, "patient_id")
	if !ok {
		return
	}

	visits, err := h.Store.ListForPatient(patientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error fetching visits", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, visits)
}
