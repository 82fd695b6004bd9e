package store

import "errors"

// Error kinds surfaced by the stores. Anything else coming back from a store
// method is a storage failure from the underlying engine, wrapped so the
// caller can still read the driver detail.
var (
	// ErrPatientNotFound is returned by Update and Delete when no patient
	// row has the given id.
	ErrPatientNotFound = errors.New("patient not found")

	// ErrNoSuchPatient is returned by VisitStore.Create when the visit's
	// patient_id does not reference an existing patient.
	ErrNoSuchPatient = errors.New("visit references a patient that does not exist")
)
