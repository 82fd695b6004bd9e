package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"clinicdesk/internal/models"
	"clinicdesk/internal/store"
	"clinicdesk/internal/validate"

	"github.com/gin-gonic/gin"
)

// --- Structs for Request Binding ---

type CreatePatientRequest struct {
	Name       string `json:"name" binding:"required"`
	Age        int    `json:"age" binding:"required"`
	Gender     string `json:"gender" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Address    string `json:"address"`
	BloodGroup string `json:"blood_group" binding:"required"`
}

type UpdatePatientRequest struct {
	Name       string `json:"name" binding:"required"`
	Age        int    `json:"age" binding:"required"`
	Gender     string `json:"gender" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Address    string `json:"address"`
	BloodGroup string `json:"blood_group" binding:"required"`
}

// PatientHandler exposes the patient store over HTTP.
type PatientHandler struct {
	Store *store.PatientStore
}

// --- Handler Functions ---

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient := models.Patient{
		Name:       strings.TrimSpace(req.Name),
		Age:        req.Age,
		Gender:     req.Gender,
		Phone:      strings.TrimSpace(req.Phone),
		Address:    req.Address,
		BloodGroup: req.BloodGroup,
	}
	if err := validate.Patient(&patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "details": err.Error()})
		return
	}

	if err := h.Store.Create(&patient); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to insert patient", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, patient)
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	patientID, ok := parseID(c, "patient_id")
	if !ok {
		return
	}

	var req UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient := models.Patient{
		ID:         patientID,
		Name:       strings.TrimSpace(req.Name),
		Age:        req.Age,
		Gender:     req.Gender,
		Phone:      strings.TrimSpace(req.Phone),
		Address:    req.Address,
		BloodGroup: req.BloodGroup,
	}
	if err := validate.Patient(&patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "details": err.Error()})
		return
	}

	if err := h.Store.Update(&patient); err != nil {
		if errors.Is(err, store.ErrPatientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Patient not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update patient", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
	patientID, ok := parseID(c, "patient_id")
	if !ok {
		return
	}

	if err := h.Store.Delete(patientID); err != nil {
		if errors.Is(err, store.ErrPatientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Patient not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete patient", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Patient deleted successfully"})
}

func (h *PatientHandler) GetPatient(c *gin.Context) {
	patientID, ok := parseID(c, "patient_id")
	if !ok {
		return
	}

	patient, err := h.Store.GetByID(patientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error fetching patient", "details": err.Error()})
		return
	}
	if patient == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Patient not found"})
		return
	}
	c.JSON(http.StatusOK, patient)
}

// ListPatients returns the full roster, or the search subset when the
// "search" query parameter is non-blank. A blank or whitespace-only term
// is treated as no search at all.
func (h *PatientHandler) ListPatients(c *gin.Context) {
	term := strings.TrimSpace(c.Query("search"))

	var (
		patients []models.Patient
		err      error
	)
	if term == "" {
		patients, err = h.Store.GetAll()
	} else {
		patients, err = h.Store.Search(term)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error fetching patients", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patients)
}

// parseID reads a uint path parameter, answering 400 itself on bad input.
func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid " + name + " format"})
		return 0, false
	}
	return uint(id), true
}
