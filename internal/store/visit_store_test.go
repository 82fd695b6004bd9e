package store

import (
	"testing"

	"clinicdesk/internal/models"
)

func TestCreateVisitForMissingPatient(t *testing.T) {
	_, visits := testStores(t)

	v := models.Visit{PatientID: 12, VisitDate: "2024-01-10", Doctor: "Dr. Lee"}
	if err := visits.Create(&v); err != ErrNoSuchPatient {
		t.Fatalf("create visit without patient: got %v, want ErrNoSuchPatient", err)
	}

	got, err := visits.ListForPatient(12)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("rejected visit was persisted: %+v", got)
	}
}

func TestVisitsListedMostRecentFirst(t *testing.T) {
	patients, visits := testStores(t)

	p := janeDoe()
	if err := patients.Create(&p); err != nil {
		t.Fatalf("create patient: %v", err)
	}

	first := models.Visit{PatientID: p.ID, VisitDate: "2024-01-10", Doctor: "Dr. Lee", Notes: "checkup"}
	second := models.Visit{PatientID: p.ID, VisitDate: "2024-03-05", Doctor: "Dr. Lee"}
	if err := visits.Create(&first); err != nil {
		t.Fatalf("create visit: %v", err)
	}
	if err := visits.Create(&second); err != nil {
		t.Fatalf("create visit: %v", err)
	}

	got, err := visits.ListForPatient(p.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("visit count = %d, want 2", len(got))
	}
	if got[0].VisitDate != "2024-03-05" || got[1].VisitDate != "2024-01-10" {
		t.Fatalf("visits not in reverse chronological order: %+v", got)
	}
	if got[1].Notes != "checkup" {
		t.Errorf("notes lost on round trip: %+v", got[1])
	}
}

func TestSameDateVisitsKeepInsertionOrder(t *testing.T) {
	patients, visits := testStores(t)

	p := janeDoe()
	if err := patients.Create(&p); err != nil {
		t.Fatalf("create patient: %v", err)
	}

	for _, doctor := range []string{"Dr. Lee", "Dr. Patel", "Dr. Okafor"} {
		v := models.Visit{PatientID: p.ID, VisitDate: "2024-06-01", Doctor: doctor}
		if err := visits.Create(&v); err != nil {
			t.Fatalf("create visit: %v", err)
		}
	}

	got, err := visits.ListForPatient(p.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"Dr. Lee", "Dr. Patel", "Dr. Okafor"}
	for i, doctor := range want {
		if got[i].Doctor != doctor {
			t.Fatalf("tie order unstable: got %+v", got)
		}
	}
}

func TestDeletePatientCascadesToVisits(t *testing.T) {
	patients, visits := testStores(t)

	p := janeDoe()
	if err := patients.Create(&p); err != nil {
		t.Fatalf("create patient: %v", err)
	}
	other := models.Patient{Name: "Bob Stone", Age: 51, Gender: "M", Phone: "0215559990", BloodGroup: "B+"}
	if err := patients.Create(&other); err != nil {
		t.Fatalf("create patient: %v", err)
	}

	for _, date := range []string{"2024-01-10", "2024-03-05"} {
		v := models.Visit{PatientID: p.ID, VisitDate: date, Doctor: "Dr. Lee"}
		if err := visits.Create(&v); err != nil {
			t.Fatalf("create visit: %v", err)
		}
	}
	kept := models.Visit{PatientID: other.ID, VisitDate: "2024-02-20", Doctor: "Dr. Patel"}
	if err := visits.Create(&kept); err != nil {
		t.Fatalf("create visit: %v", err)
	}

	if err := patients.Delete(p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	gone, err := patients.GetByID(p.ID)
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if gone != nil {
		t.Fatalf("patient survived delete: %+v", gone)
	}

	orphans, err := visits.ListForPatient(p.ID)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(orphans) != 0 {
		t.Fatalf("visits survived their patient: %+v", orphans)
	}

	// The other patient's history is untouched.
	remaining, err := visits.ListForPatient(other.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Doctor != "Dr. Patel" {
		t.Fatalf("unrelated visits affected by cascade: %+v", remaining)
	}
}
