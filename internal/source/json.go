package source

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/Sepeciuc/Laborator-6/internal/employee"
)

// DefaultDataFile is the employee file read when no path is configured
const DefaultDataFile = "angajati.json"

// JSONFile loads employees from a JSON array on disk
type JSONFile struct {
	path string
}

func NewJSONFile(path string) *JSONFile {
	if path == "" {
		path = DefaultDataFile
	}
	return &JSONFile{path: path}
}

// Path returns the file the loader reads
func (j *JSONFile) Path() string {
	return j.path
}

func (j *JSONFile) Load(ctx context.Context) ([]employee.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, TranslateError(err)
	}

	data, err := os.ReadFile(j.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewSourceError(
				ErrorCodeFileNotFound,
				"Employee file not found",
				"Fișierul "+j.path+" nu a fost găsit.",
			)
		}
		return nil, NewSourceError(
			ErrorCodeFileUnreadable,
			"Employee file could not be read",
			err.Error(),
		)
	}

	return DecodeEmployees(data)
}

// DecodeEmployees parses a JSON array of employee objects. A JSON null
// decodes to an empty list.
func DecodeEmployees(data []byte) ([]employee.Employee, error) {
	var employees []employee.Employee
	if err := json.Unmarshal(data, &employees); err != nil {
		return nil, NewSourceError(
			ErrorCodeInvalidJSON,
			"Employee file is not valid",
			err.Error(),
		)
	}

	if employees == nil {
		employees = []employee.Employee{}
	}

	return employees, nil
}
