package report

import "errors"

var (
	ErrUnknownReportType = errors.New("unknown report type")
	ErrCSVNotSupported   = errors.New("report type has no tabular form")
)
