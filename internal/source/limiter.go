package source

import "fmt"

const (
	MaxEmployeeRows = 10000
)

func CheckRowLimit(currentRowCount int) error {
	if currentRowCount >= MaxEmployeeRows {
		return NewSourceError(
			ErrorCodeResultTooLarge,
			"Employee table too large",
			fmt.Sprintf("Table returned more than the maximum allowed %d rows", MaxEmployeeRows),
		)
	}
	return nil
}
