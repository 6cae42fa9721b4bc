package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"vehicle-inspection-api/models"
)

// ColumnStep is one additive schema evolution step: a column the inspections
// table gained after its first deployment, with the SQL type to add it as.
type ColumnStep struct {
	Name    string
	SQLType string
}

// inspectionColumnSteps is the ordered list of columns added since the first
// release. Steps are only ever appended; columns are never dropped or
// renamed.
var inspectionColumnSteps = []ColumnStep{
	{Name: "dealer_name", SQLType: "VARCHAR(120) NULL"},
	{Name: "cost_estimate", SQLType: "INT NULL"},
	{Name: "status_admin", SQLType: "VARCHAR(20) NOT NULL DEFAULT 'Pending'"},
	{Name: "status_reviewer", SQLType: "VARCHAR(20) NOT NULL DEFAULT 'Pending'"},
	{Name: "comment_admin", SQLType: "TEXT NULL"},
	{Name: "comment_reviewer", SQLType: "TEXT NULL"},
	{Name: "pdf_data", SQLType: "LONGBLOB NULL"},
	{Name: "accepted_cost", SQLType: "INT NULL"},
}

// MissingColumns returns, in step order, the steps whose column is absent
// from the existing set. Column name comparison is case-insensitive to match
// MySQL behaviour.
func MissingColumns(existing []string, steps []ColumnStep) []ColumnStep {
	present := make(map[string]bool, len(existing))
	for _, name := range existing {
		present[strings.ToLower(name)] = true
	}

	var missing []ColumnStep
	for _, step := range steps {
		if !present[strings.ToLower(step.Name)] {
			missing = append(missing, step)
		}
	}
	return missing
}

// EnsureSchema brings the inspections table up to the current definition.
// A missing table is created from the full model; an existing table is
// patched with one ADD COLUMN per missing step, all inside a single
// transaction. Returns the number of DDL statements issued, so a second run
// against an up-to-date schema observably issues zero. Any failure must abort
// startup; there is no partial-apply tolerance.
func EnsureSchema(db *gorm.DB) (int, error) {
	migrator := db.Migrator()

	if !migrator.HasTable(&models.Inspection{}) {
		if err := migrator.CreateTable(&models.Inspection{}); err != nil {
			return 0, fmt.Errorf("create inspections table: %w", err)
		}
		return 1, nil
	}

	columnTypes, err := migrator.ColumnTypes(&models.Inspection{})
	if err != nil {
		return 0, fmt.Errorf("introspect inspections table: %w", err)
	}

	existing := make([]string, 0, len(columnTypes))
	for _, column := range columnTypes {
		existing = append(existing, column.Name())
	}

	missing := MissingColumns(existing, inspectionColumnSteps)
	if len(missing) == 0 {
		return 0, nil
	}

	table := models.Inspection{}.TableName()
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, step := range missing {
			stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, step.Name, step.SQLType)
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("apply column %s: %w", step.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(missing), nil
}
