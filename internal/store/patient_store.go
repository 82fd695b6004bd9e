// Package store implements the record stores over the relational database.
// Each store wraps a *gorm.DB handed in at construction; every method runs
// to completion against the database before returning, and no method swallows
// an error.
package store

import (
	"fmt"
	"strings"

	"clinicdesk/internal/models"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// PatientStore owns the patient lifecycle: CRUD plus substring search.
type PatientStore struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewPatientStore creates a patient store using the given database handle.
func NewPatientStore(db *gorm.DB, log zerolog.Logger) *PatientStore {
	return &PatientStore{db: db, log: log}
}

// Create inserts a new patient row and fills in the assigned id.
// The caller is expected to have validated the fields already.
func (s *PatientStore) Create(p *models.Patient) error {
	if err := s.db.Create(p).Error; err != nil {
		return fmt.Errorf("create patient: %w", err)
	}
	s.log.Debug().Uint("id", p.ID).Msg("patient created")
	return nil
}

// Update overwrites the row matching p.ID with all supplied fields.
// Returns ErrPatientNotFound if no such row exists. There is no
// partial-field update.
func (s *PatientStore) Update(p *models.Patient) error {
	res := s.db.Model(&models.Patient{}).Where("id = ?", p.ID).
		Select("name", "age", "gender", "phone", "address", "blood_group").
		Updates(p)
	if res.Error != nil {
		return fmt.Errorf("update patient %d: %w", p.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrPatientNotFound
	}
	s.log.Debug().Uint("id", p.ID).Msg("patient updated")
	return nil
}

// Delete removes the patient row and every visit owned by it in one
// transaction, so no partially-cascaded state is ever observable.
// Returns ErrPatientNotFound if no such patient exists; deleting is never
// a silent no-op, matching Update.
func (s *PatientStore) Delete(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("patient_id = ?", id).Delete(&models.Visit{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Patient{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrPatientNotFound
		}
		return nil
	})
	if err == ErrPatientNotFound {
		return err
	}
	if err != nil {
		return fmt.Errorf("delete patient %d: %w", id, err)
	}
	s.log.Debug().Uint("id", id).Msg("patient deleted with visits")
	return nil
}

// GetByID returns the patient with the given id, or (nil, nil) when no
// such row exists. A miss is not an error.
func (s *PatientStore) GetByID(id uint) (*models.Patient, error) {
	var p models.Patient
	if err := s.db.First(&p, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("get patient %d: %w", id, err)
	}
	return &p, nil
}

// GetAll returns every patient ordered by ascending id.
func (s *PatientStore) GetAll() ([]models.Patient, error) {
	var patients []models.Patient
	if err := s.db.Order("id").Find(&patients).Error; err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

// Search returns patients whose name contains term case-insensitively, or
// whose phone contains term as a literal substring, ordered by ascending id.
// Matching is substring, not prefix or tokenized.
func (s *PatientStore) Search(term string) ([]models.Patient, error) {
	var patients []models.Patient
	namePat := "%" + strings.ToLower(term) + "%"
	phonePat := "%" + term + "%"
	err := s.db.Where("LOWER(name) LIKE ? OR phone LIKE ?", namePat, phonePat).
		Order("id").Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("search patients: %w", err)
	}
	s.log.Debug().Str("term", term).Int("hits", len(patients)).Msg("patient search")
	return patients, nil
}
