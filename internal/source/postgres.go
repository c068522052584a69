package source

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/Sepeciuc/Laborator-6/internal/employee"
)

const DefaultTable = "angajati"

var (
	QueryTimeout = 5 * time.Second

	// schema-qualified names are allowed, quoting is not
	tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)
)

// Postgres loads employees from a PostgreSQL table with the columns
// numele, postul, salariul and data_angajarii
type Postgres struct {
	db    *sql.DB
	table string
}

func NewPostgres(db *sql.DB, table string) *Postgres {
	if table == "" {
		table = DefaultTable
	}
	return &Postgres{db: db, table: table}
}

func (p *Postgres) Load(ctx context.Context) ([]employee.Employee, error) {
	query, err := buildSelect(p.table)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, TranslateError(err)
	}
	defer rows.Close()

	employees, err := scanEmployees(rows)
	if err != nil {
		return nil, err
	}

	return employees, nil
}

// buildSelect returns the employee query for table, rejecting anything that
// is not a plain identifier
func buildSelect(table string) (string, error) {
	if !tableNamePattern.MatchString(table) {
		return "", NewSourceError(
			ErrorCodeInvalidQuery,
			"Invalid employee table name",
			fmt.Sprintf("%q is not a valid table identifier", table),
		)
	}

	parts := strings.Split(table, ".")
	for i, part := range parts {
		parts[i] = pq.QuoteIdentifier(part)
	}

	return fmt.Sprintf("SELECT numele, postul, salariul, data_angajarii FROM %s", strings.Join(parts, ".")), nil
}

func scanEmployees(rows *sql.Rows) ([]employee.Employee, error) {
	employees := []employee.Employee{}

	for rows.Next() {
		if err := CheckRowLimit(len(employees)); err != nil {
			return nil, err
		}

		var (
			e        employee.Employee
			hireDate time.Time
		)
		if err := rows.Scan(&e.Name, &e.JobTitle, &e.Salary, &hireDate); err != nil {
			return nil, TranslateError(err)
		}
		e.HireDate = employee.DateOf(hireDate)

		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, TranslateError(err)
	}

	return employees, nil
}
