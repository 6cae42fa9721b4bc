package services

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"gorm.io/gorm"

	"vehicle-inspection-api/models"
)

// ErrPDFNotFound is reported when a report's payload is missing both inline
// and on disk.
var ErrPDFNotFound = errors.New("pdf not found")

// PDFStore keeps each uploaded report twice: as a file under its directory
// and as a blob on the inspection row. Reads prefer the blob and lazily
// backfill it from disk for rows that predate the inline copy.
type PDFStore struct {
	db  *gorm.DB
	dir string
}

func NewPDFStore(db *gorm.DB, dir string) *PDFStore {
	return &PDFStore{db: db, dir: dir}
}

// Dir returns the storage directory.
func (s *PDFStore) Dir() string {
	return s.dir
}

// Save writes the report bytes under the given stored filename.
func (s *PDFStore) Save(filename string, data []byte) error {
	if err := os.MkdirAll(s.dir, os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, filename), data, 0o644)
}

// Load returns the report bytes for an inspection. When only the disk copy
// exists the blob is backfilled best-effort so the next read is served
// inline. Returns ErrPDFNotFound when neither copy exists.
func (s *PDFStore) Load(inspection *models.Inspection) ([]byte, error) {
	if inspection.HasPDFData() {
		return inspection.PDFData, nil
	}

	data, err := os.ReadFile(filepath.Join(s.dir, inspection.PDFFilename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPDFNotFound
		}
		return nil, err
	}

	if err := s.db.Model(inspection).Update("pdf_data", data).Error; err != nil {
		log.Printf("Warning: failed to backfill pdf_data for inspection %d: %v", inspection.InspectionID, err)
	} else {
		inspection.PDFData = data
	}

	return data, nil
}

// Delete clears the inline blob and removes the on-disk file. A file that is
// already gone is not an error.
func (s *PDFStore) Delete(inspection *models.Inspection) error {
	if err := s.db.Model(inspection).Update("pdf_data", nil).Error; err != nil {
		return err
	}
	inspection.PDFData = nil

	if err := os.Remove(filepath.Join(s.dir, inspection.PDFFilename)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Remove deletes only the on-disk file, used to undo a write after a failed
// insert.
func (s *PDFStore) Remove(filename string) {
	if err := os.Remove(filepath.Join(s.dir, filename)); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to remove %s: %v", filename, err)
	}
}
