package query

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/Sepeciuc/Laborator-6/internal/employee"
)

// Report headers and fixed messages
const (
	headerAll            = "Lista de angajați:"
	headerHighSalary     = "Angajați cu salariul peste 2500 RON:"
	headerManagement     = "Angajați angajați în aprilie, anul trecut, în funcții de conducere:"
	headerNonManagement  = "Angajați fără funcție de conducere (ordonați descrescător după salariu):"
	headerUpperNames     = "Numele angajaților scrise cu majuscule:"
	headerLowSalaries    = "Salariile mai mici de 3000 RON:"
	headerFirstHired     = "Primul angajat al firmei:"
	headerStatistics     = "Statistici despre salarii:"
	headerNameCheck      = "Verificare existență angajat cu numele „Ion”:"
	headerSummerHires    = "Numărul de persoane angajate în vara anului precedent:"
	MessageNoEmployees   = "Nu există angajați în firmă."
	MessageNoSalaries    = "Nu există salarii pentru calculul statisticilor."
	MessageIonFound      = "Firma are cel puțin un Ion angajat."
	MessageIonNotFound   = "Firma nu are niciun Ion angajat."
	summerHiresCountText = "Număr de angajați: %d"
)

// QueryCount is the number of queries in one report
const QueryCount = 10

type RunResult struct {
	EmployeeCount int
	QueryCount    int
	ExecutionTime time.Duration
}

// Runner prints the employee report. It never modifies the employees it was
// given.
type Runner struct {
	employees []employee.Employee
	today     time.Time
}

// NewRunner creates a runner over employees. "Last year" in the report is
// today's year minus one.
func NewRunner(employees []employee.Employee, today time.Time) *Runner {
	return &Runner{
		employees: employees,
		today:     today,
	}
}

// ReferenceYear is the year the date-based queries look at
func (r *Runner) ReferenceYear() int {
	return r.today.Year() - 1
}

// Run prints all queries to w in order. The only possible error is a write
// failure on w.
func (r *Runner) Run(w io.Writer) (*RunResult, error) {
	startTime := time.Now()

	out := &reportWriter{w: bufio.NewWriter(w)}
	year := r.ReferenceYear()

	out.header(headerAll, true)
	out.employees(All(r.employees))

	out.header(headerHighSalary, false)
	out.employees(SalaryAbove(r.employees, HighSalaryThreshold))

	out.header(headerManagement, false)
	out.employees(ManagementHiredIn(r.employees, year, time.April))

	out.header(headerNonManagement, false)
	out.employees(NonManagementBySalaryDesc(r.employees))

	out.header(headerUpperNames, false)
	for _, name := range UpperNames(r.employees) {
		out.line(name)
	}

	out.header(headerLowSalaries, false)
	for _, salary := range SalariesBelow(r.employees, LowSalaryThreshold) {
		out.line(employee.FormatSalary(salary))
	}

	out.header(headerFirstHired, false)
	if first, ok := EarliestHired(r.employees); ok {
		out.line(first.String())
	} else {
		out.line(MessageNoEmployees)
	}

	out.header(headerStatistics, false)
	stats := SalaryStatistics(r.employees)
	if stats.Empty() {
		out.line(MessageNoSalaries)
	} else {
		out.printf("Salariul mediu: %.2f\n", stats.Average)
		out.printf("Salariul minim: %.2f\n", stats.Min)
		out.printf("Salariul maxim: %.2f\n", stats.Max)
	}

	out.header(headerNameCheck, false)
	if AnyNameContains(r.employees, NameToFind) {
		out.line(MessageIonFound)
	} else {
		out.line(MessageIonNotFound)
	}

	out.header(headerSummerHires, false)
	out.printf(summerHiresCountText+"\n", CountHiredInMonths(r.employees, year, SummerMonths...))

	if err := out.flush(); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	return &RunResult{
		EmployeeCount: len(r.employees),
		QueryCount:    QueryCount,
		ExecutionTime: time.Since(startTime),
	}, nil
}

// reportWriter keeps the first write error so the report code can print
// without checking every call
type reportWriter struct {
	w   *bufio.Writer
	err error
}

func (rw *reportWriter) printf(format string, args ...interface{}) {
	if rw.err != nil {
		return
	}
	_, rw.err = fmt.Fprintf(rw.w, format, args...)
}

func (rw *reportWriter) line(s string) {
	rw.printf("%s\n", s)
}

func (rw *reportWriter) header(title string, first bool) {
	if !first {
		rw.line("")
	}
	rw.line(title)
}

func (rw *reportWriter) employees(list []employee.Employee) {
	for _, e := range list {
		rw.line(e.String())
	}
}

func (rw *reportWriter) flush() error {
	if rw.err != nil {
		return rw.err
	}
	return rw.w.Flush()
}
