package dataset

import (
	"errors"
	"fmt"
)

var (
	ErrNoRecords      = errors.New("dataset has no records")
	ErrMissingColumn  = errors.New("required column missing")
	ErrMalformedValue = errors.New("malformed value")
)

// LoadError is returned for any failure reading the launch dataset.
// Row is 1-based and counts the header; it is zero when the failure is not tied to a row.
type LoadError struct {
	Path   string
	Row    int
	Column string
	Err    error
}

func (e *LoadError) Error() string {
	msg := "load dataset"
	if e.Path != "" {
		msg += " " + e.Path
	}
	switch {
	case e.Row > 0 && e.Column != "":
		msg += fmt.Sprintf(": row %d, column %q", e.Row, e.Column)
	case e.Row > 0:
		msg += fmt.Sprintf(": row %d", e.Row)
	case e.Column != "":
		msg += fmt.Sprintf(": column %q", e.Column)
	}
	return msg + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
