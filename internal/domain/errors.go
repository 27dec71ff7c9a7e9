package domain

import "errors"

// Domain errors
var (
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidAmount    = errors.New("amount must be non-negative")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidDateRange = errors.New("end date must not precede start date")
	ErrInvalidPeriod    = errors.New("invalid period")
	ErrUnknownSortField = errors.New("unknown sort field")
	ErrInternalError    = errors.New("internal error")
)

// DateFormat is the calendar-date layout used across the API, the CSV codec
// and the CLI.
const DateFormat = "2006-01-02"
