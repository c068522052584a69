package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Sepeciuc/Laborator-6/internal/employee"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "angajati.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

func TestNewJSONFile_DefaultPath(t *testing.T) {
	loader := NewJSONFile("")

	if loader.Path() != DefaultDataFile {
		t.Errorf("Path() = %q, want %q", loader.Path(), DefaultDataFile)
	}
}

func TestJSONFile_Load_Success(t *testing.T) {
	path := writeFile(t, `[
		{"numele": "Ion Pop", "postul": "Dezvoltator", "salariul": 2000, "dataAngajarii": "2023-04-10"},
		{"numele": "Maria Sef", "postul": "Sef Departament", "salariul": 4000.5, "dataAngajarii": "2025-04-15"}
	]`)

	employees, err := NewJSONFile(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(employees) != 2 {
		t.Fatalf("Expected 2 employees, got %d", len(employees))
	}

	want := employee.Employee{
		Name:     "Maria Sef",
		JobTitle: "Sef Departament",
		Salary:   4000.5,
		HireDate: employee.NewDate(2025, time.April, 15),
	}
	if employees[1] != want {
		t.Errorf("employees[1] = %+v, want %+v", employees[1], want)
	}
	if employees[0].Name != "Ion Pop" {
		t.Errorf("Expected input order to be kept, got %q first", employees[0].Name)
	}
}

func TestJSONFile_Load_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode string
	}{
		{"not json", `not json`, ErrorCodeInvalidJSON},
		{"object instead of array", `{"numele": "Ion"}`, ErrorCodeInvalidJSON},
		{"salary as string", `[{"numele": "Ion", "salariul": "2000"}]`, ErrorCodeInvalidJSON},
		{"bad date", `[{"numele": "Ion", "dataAngajarii": "10.04.2023"}]`, ErrorCodeInvalidJSON},
		{"truncated", `[{"numele": "Ion"`, ErrorCodeInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.content)

			_, err := NewJSONFile(path).Load(context.Background())
			if err == nil {
				t.Fatal("Expected error, got nil")
			}

			srcErr, ok := err.(*SourceError)
			if !ok {
				t.Fatalf("Expected SourceError, got %T", err)
			}
			if srcErr.Code != tt.wantCode {
				t.Errorf("Expected code %s, got %s", tt.wantCode, srcErr.Code)
			}
		})
	}
}

func TestJSONFile_Load_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	employees, err := NewJSONFile(path).Load(context.Background())
	if err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}
	if employees != nil {
		t.Errorf("Expected no employees, got %v", employees)
	}

	srcErr, ok := err.(*SourceError)
	if !ok {
		t.Fatalf("Expected SourceError, got %T", err)
	}
	if srcErr.Code != ErrorCodeFileNotFound {
		t.Errorf("Expected code %s, got %s", ErrorCodeFileNotFound, srcErr.Code)
	}
}

func TestJSONFile_Load_Directory(t *testing.T) {
	_, err := NewJSONFile(t.TempDir()).Load(context.Background())
	if err == nil {
		t.Fatal("Expected error when path is a directory, got nil")
	}

	srcErr, ok := err.(*SourceError)
	if !ok {
		t.Fatalf("Expected SourceError, got %T", err)
	}
	if srcErr.Code != ErrorCodeFileUnreadable {
		t.Errorf("Expected code %s, got %s", ErrorCodeFileUnreadable, srcErr.Code)
	}
}

func TestJSONFile_Load_CanceledContext(t *testing.T) {
	path := writeFile(t, `[]`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewJSONFile(path).Load(ctx)
	if err == nil {
		t.Fatal("Expected error for canceled context, got nil")
	}
}

func TestDecodeEmployees_EmptyAndNull(t *testing.T) {
	for _, input := range []string{`[]`, `null`} {
		t.Run(input, func(t *testing.T) {
			employees, err := DecodeEmployees([]byte(input))
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if employees == nil || len(employees) != 0 {
				t.Errorf("Expected empty non-nil list, got %#v", employees)
			}
		})
	}
}

func TestDecodeEmployees_UnknownFieldsIgnored(t *testing.T) {
	employees, err := DecodeEmployees([]byte(`[{"numele": "Ion", "departament": "IT", "salariul": 1}]`))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(employees) != 1 || employees[0].Name != "Ion" {
		t.Errorf("Unexpected result: %+v", employees)
	}
}
