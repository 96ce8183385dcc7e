// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
)

var validate = validator.New()

// ClassDefinition is one entry of the balance file.
type ClassDefinition struct {
	ID    Class       `json:"id" validate:"required,oneof=GUNNER WIZARD FIGHTER"`
	Stats StatsRecord `json:"stats"`
}

// LoadClassDefinitions reads a JSON array of class definitions and overrides the
// matching entries of ClassLibrary. Classes absent from the file keep their defaults.
func LoadClassDefinitions(fs afero.Fs, path string) error {
	file, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("failed to read class definitions file: %w", err)
	}

	var classDefs []ClassDefinition
	if err := json.Unmarshal(file, &classDefs); err != nil {
		return fmt.Errorf("failed to unmarshal class definitions: %w", err)
	}

	library := DefaultClassLibrary()
	for _, def := range classDefs {
		if err := validate.Struct(def); err != nil {
			return fmt.Errorf("invalid class definition %q: %w", def.ID, err)
		}
		// Базой служат встроенные значения, а не уже загруженные.
		stats := library[def.ID]
		library[def.ID] = applyRecord(stats, def.Stats)
	}

	ClassLibrary = library
	slog.Info("Loaded class definitions", "count", len(classDefs), "path", path)
	return nil
}

// validateRecord checks the numeric ranges of a stats record.
func validateRecord(rec StatsRecord) error {
	if err := validate.Struct(rec); err != nil {
		return fmt.Errorf("invalid stats record: %w", err)
	}
	return nil
}
