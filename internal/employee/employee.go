package employee

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Keywords that mark a job title as a management position
var managementKeywords = []string{"sef", "director"}

// Employee is a single record loaded from the employee source
type Employee struct {
	Name     string  `json:"numele"`
	JobTitle string  `json:"postul"`
	Salary   float64 `json:"salariul"`
	HireDate Date    `json:"dataAngajarii"`
}

// IsManagement reports whether the job title contains a management keyword,
// ignoring case
func (e Employee) IsManagement() bool {
	title := strings.ToLower(e.JobTitle)
	for _, keyword := range managementKeywords {
		if strings.Contains(title, keyword) {
			return true
		}
	}
	return false
}

// HiredIn reports whether the employee was hired during the given year and month
func (e Employee) HiredIn(year int, month time.Month) bool {
	return e.HireDate.Year() == year && e.HireDate.Month() == month
}

func (e Employee) String() string {
	return fmt.Sprintf("Angajat{numele='%s', postul='%s', dataAngajarii=%s, salariul=%s}",
		e.Name,
		e.JobTitle,
		e.HireDate,
		FormatSalary(e.Salary),
	)
}

// FormatSalary renders a salary in its shortest decimal form, always keeping
// at least one fractional digit (2500 -> "2500.0")
func FormatSalary(salary float64) string {
	s := strconv.FormatFloat(salary, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
