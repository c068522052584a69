package source

import (
	"context"

	"github.com/Sepeciuc/Laborator-6/internal/employee"
)

// Loader produces the employee list the report runs over
type Loader interface {
	Load(ctx context.Context) ([]employee.Employee, error)
}

// Ensure loaders implement Loader
var (
	_ Loader = (*JSONFile)(nil)
	_ Loader = (*Postgres)(nil)
)
