// Package validate holds the field rules applied before a record reaches a
// store. The rules run in a fixed order and stop at the first violation, so
// one attempt reports one problem.
package validate

import (
	"regexp"
	"strings"
	"time"

	"clinicdesk/internal/models"
)

var phonePattern = regexp.MustCompile(`^\d{10,15}$`)

// Error describes which field failed and why. It is always recoverable:
// nothing has been written when a rule fires.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Field + ": " + e.Message
}

// Patient checks a patient record against the field rules, in order:
// name, age, phone presence, phone format. Gender and blood group are
// checked separately because they come from enumerated inputs.
func Patient(p *models.Patient) error {
	if strings.TrimSpace(p.Name) == "" {
		return &Error{Field: "name", Message: "please enter patient name"}
	}
	if p.Age < 1 || p.Age > 150 {
		return &Error{Field: "age", Message: "please enter a valid age (1-150)"}
	}
	phone := strings.TrimSpace(p.Phone)
	if phone == "" {
		return &Error{Field: "phone", Message: "please enter phone number"}
	}
	if !phonePattern.MatchString(phone) {
		return &Error{Field: "phone", Message: "please enter a valid phone number (10-15 digits)"}
	}
	if !models.ValidGender(p.Gender) {
		return &Error{Field: "gender", Message: "gender must be one of M, F, O"}
	}
	if !models.ValidBloodGroup(p.BloodGroup) {
		return &Error{Field: "blood_group", Message: "unknown blood group"}
	}
	return nil
}

// Visit checks a visit record: the doctor name must be non-empty and the
// visit date must be a calendar date in YYYY-MM-DD form.
func Visit(v *models.Visit) error {
	if strings.TrimSpace(v.Doctor) == "" {
		return &Error{Field: "doctor", Message: "please enter doctor name"}
	}
	if _, err := time.Parse("2006-01-02", v.VisitDate); err != nil {
		return &Error{Field: "visit_date", Message: "visit date must be YYYY-MM-DD"}
	}
	return nil
}
