package store

import (
	"testing"

	"clinicdesk/internal/models"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a fresh in-memory database with the schema applied.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// A pooled second connection would see its own empty :memory: database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Patient{}, &models.Visit{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testStores(t *testing.T) (*PatientStore, *VisitStore) {
	t.Helper()
	db := testDB(t)
	log := zerolog.Nop()
	return NewPatientStore(db, log), NewVisitStore(db, log)
}

func janeDoe() models.Patient {
	return models.Patient{
		Name:       "Jane Doe",
		Age:        34,
		Gender:     "F",
		Phone:      "5551234567",
		Address:    "12 Elm St",
		BloodGroup: "O+",
	}
}

func samePatient(a, b models.Patient) bool {
	return a.Name == b.Name && a.Age == b.Age && a.Gender == b.Gender &&
		a.Phone == b.Phone && a.Address == b.Address && a.BloodGroup == b.BloodGroup
}
