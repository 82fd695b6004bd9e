package models

// Visit defines the structure for one dated encounter of a patient.
// Visits are append-only: once recorded they are only ever removed as part
// of deleting the owning patient.
type Visit struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	PatientID uint   `json:"patient_id" gorm:"index"` // Foreign key to Patient.ID
	VisitDate string `json:"visit_date"`              // ISO date, YYYY-MM-DD
	Doctor    string `json:"doctor"`
	Notes     string `json:"notes"` // Optional field
}
