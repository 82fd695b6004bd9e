// Package export serializes the patient roster to CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"clinicdesk/internal/store"
)

// Header is the fixed column row of a roster export.
var Header = []string{"ID", "Name", "Age", "Gender", "Phone", "Blood Group", "Address"}

// Exporter writes the full patient roster as UTF-8 CSV: the header row,
// then one row per patient in ascending-id order, LF line endings. Fields
// containing a comma, quote, or newline are quoted with internal quotes
// doubled; empty fields stay empty, never "null".
type Exporter struct {
	patients *store.PatientStore
}

// NewExporter creates an exporter reading from the given patient store.
func NewExporter(patients *store.PatientStore) *Exporter {
	return &Exporter{patients: patients}
}

// ExportAll writes the roster to w. On a write failure the computed rows
// are discarded and the error is returned; nothing is retried.
func (e *Exporter) ExportAll(w io.Writer) error {
	patients, err := e.patients.GetAll()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("export write: %w", err)
	}
	for _, p := range patients {
		row := []string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.Name,
			strconv.Itoa(p.Age),
			p.Gender,
			p.Phone,
			p.BloodGroup,
			p.Address,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export write: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export write: %w", err)
	}
	return nil
}

// ExportToFile writes the roster to path. A file that cannot be fully
// written is removed so no partial export is left behind.
func (e *Exporter) ExportToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export open %s: %w", path, err)
	}
	if err := e.ExportAll(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("export close %s: %w", path, err)
	}
	return nil
}
