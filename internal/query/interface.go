package query

import "io"

// QueryRunner defines the interface for printing the employee report
type QueryRunner interface {
	Run(w io.Writer) (*RunResult, error)
}

// Ensure Runner implements QueryRunner
var _ QueryRunner = (*Runner)(nil)
