package store

import (
	"fmt"

	"clinicdesk/internal/models"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// VisitStore owns the visit history of patients. Visits are created and
// listed; they are only removed through the owning patient's delete.
type VisitStore struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewVisitStore creates a visit store using the given database handle.
func NewVisitStore(db *gorm.DB, log zerolog.Logger) *VisitStore {
	return &VisitStore{db: db, log: log}
}

// Create inserts a new visit row and fills in the assigned id. The insert
// runs in a transaction with an existence check on the patient, so a visit
// can never be attached to a missing patient; that case returns
// ErrNoSuchPatient.
func (s *VisitStore) Create(v *models.Visit) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Patient{}).Where("id = ?", v.PatientID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNoSuchPatient
		}
		return tx.Create(v).Error
	})
	if err == ErrNoSuchPatient {
		return err
	}
	if err != nil {
		return fmt.Errorf("create visit for patient %d: %w", v.PatientID, err)
	}
	s.log.Debug().Uint("id", v.ID).Uint("patient_id", v.PatientID).Msg("visit recorded")
	return nil
}

// ListForPatient returns all visits for the given patient, most recent
// visit date first. Visits on the same date keep ascending id order.
func (s *VisitStore) ListForPatient(patientID uint) ([]models.Visit, error) {
	var visits []models.Visit
	err := s.db.Where("patient_id = ?", patientID).
		Order("visit_date DESC").Order("id").Find(&visits).Error
	if err != nil {
		return nil, fmt.Errorf("list visits for patient %d: %w", patientID, err)
	}
	return visits, nil
}
