package ports

import (
	"nptest/domain/hypothesis"
)

// TableWriterPort renders a rejection-region table to some external format.
// Implementations own the format (xlsx, csv); the rows arrive already in
// enumeration order and the writer must preserve it.
type TableWriterPort interface {
	WriteTable(path string, rows []hypothesis.AnalysisRow) error
}
