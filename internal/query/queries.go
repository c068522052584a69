package query

import (
	"math"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Sepeciuc/Laborator-6/internal/employee"
)

// Thresholds used by the report
const (
	HighSalaryThreshold = 2500
	LowSalaryThreshold  = 3000
	NameToFind          = "Ion"
)

// SummerMonths are the months counted as summer hires
var SummerMonths = []time.Month{time.June, time.July, time.August}

// All returns a copy of employees in input order
func All(employees []employee.Employee) []employee.Employee {
	out := make([]employee.Employee, len(employees))
	copy(out, employees)
	return out
}

// SalaryAbove returns the employees earning strictly more than threshold
func SalaryAbove(employees []employee.Employee, threshold float64) []employee.Employee {
	out := []employee.Employee{}
	for _, e := range employees {
		if e.Salary > threshold {
			out = append(out, e)
		}
	}
	return out
}

// ManagementHiredIn returns managers hired in the given year and month
func ManagementHiredIn(employees []employee.Employee, year int, month time.Month) []employee.Employee {
	out := []employee.Employee{}
	for _, e := range employees {
		if e.HiredIn(year, month) && e.IsManagement() {
			out = append(out, e)
		}
	}
	return out
}

// NonManagementBySalaryDesc returns the employees without a management title,
// highest salary first. Equal salaries keep their input order.
func NonManagementBySalaryDesc(employees []employee.Employee) []employee.Employee {
	out := []employee.Employee{}
	for _, e := range employees {
		if !e.IsManagement() {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Salary > out[j].Salary
	})
	return out
}

// UpperNames returns every employee name in upper case, using Romanian
// casing rules
func UpperNames(employees []employee.Employee) []string {
	caser := cases.Upper(language.Romanian)
	out := make([]string, 0, len(employees))
	for _, e := range employees {
		out = append(out, caser.String(e.Name))
	}
	return out
}

// SalariesBelow returns, in input order, the salaries strictly below threshold
func SalariesBelow(employees []employee.Employee, threshold float64) []float64 {
	out := []float64{}
	for _, e := range employees {
		if e.Salary < threshold {
			out = append(out, e.Salary)
		}
	}
	return out
}

// EarliestHired returns the first employee with the earliest hire date.
// ok is false when employees is empty.
func EarliestHired(employees []employee.Employee) (first employee.Employee, ok bool) {
	for i, e := range employees {
		if i == 0 || e.HireDate.Before(first.HireDate) {
			first = e
		}
	}
	return first, len(employees) > 0
}

// Statistics summarises salaries. Min, Max and Average are NaN when Count is 0.
type Statistics struct {
	Count   int
	Sum     float64
	Min     float64
	Max     float64
	Average float64
}

// Empty reports whether no salaries were summarised
func (s Statistics) Empty() bool {
	return s.Count == 0
}

// SalaryStatistics computes count, sum, min, max and average salary
func SalaryStatistics(employees []employee.Employee) Statistics {
	if len(employees) == 0 {
		return Statistics{Min: math.NaN(), Max: math.NaN(), Average: math.NaN()}
	}

	stats := Statistics{
		Min: math.Inf(1),
		Max: math.Inf(-1),
	}
	for _, e := range employees {
		stats.Count++
		stats.Sum += e.Salary
		stats.Min = math.Min(stats.Min, e.Salary)
		stats.Max = math.Max(stats.Max, e.Salary)
	}
	stats.Average = stats.Sum / float64(stats.Count)
	return stats
}

// AnyNameContains reports whether some employee name contains substr.
// The match is case-sensitive.
func AnyNameContains(employees []employee.Employee, substr string) bool {
	for _, e := range employees {
		if strings.Contains(e.Name, substr) {
			return true
		}
	}
	return false
}

// CountHiredInMonths counts employees hired in year during any of months
func CountHiredInMonths(employees []employee.Employee, year int, months ...time.Month) int {
	count := 0
	for _, e := range employees {
		for _, m := range months {
			if e.HiredIn(year, m) {
				count++
				break
			}
		}
	}
	return count
}
