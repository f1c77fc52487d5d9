package parser

import (
	"errors"
	"fmt"
)

// Kind classifies parse and validation failures.
type Kind int

const (
	// KindFormat is a wrong token count or an unparseable boolean.
	KindFormat Kind = iota + 1
	// KindRange is a numeric token outside its unsigned domain, or an end
	// time before the start time.
	KindRange
	// KindDuplicate is a repeated station or charger ID.
	KindDuplicate
	// KindOverlap is two reports for one charger overlapping in time.
	KindOverlap
	// KindReferential is a report for a charger no station owns.
	KindReferential
	// KindEmptyInput is a document without stations or without reports.
	KindEmptyInput
)

func (k Kind) String() string {
	switch k {
	case KindFormat:
		return "format"
	case KindRange:
		return "range"
	case KindDuplicate:
		return "duplicate"
	case KindOverlap:
		return "overlap"
	case KindReferential:
		return "referential"
	case KindEmptyInput:
		return "empty input"
	default:
		return "unknown"
	}
}

// Sentinel errors for use with errors.Is.
var (
	ErrFormat      = errors.New("format error")
	ErrRange       = errors.New("range error")
	ErrDuplicate   = errors.New("duplicate error")
	ErrOverlap     = errors.New("overlap error")
	ErrReferential = errors.New("referential error")
	ErrEmptyInput  = errors.New("empty input error")
)

var sentinels = map[Kind]error{
	KindFormat:      ErrFormat,
	KindRange:       ErrRange,
	KindDuplicate:   ErrDuplicate,
	KindOverlap:     ErrOverlap,
	KindReferential: ErrReferential,
	KindEmptyInput:  ErrEmptyInput,
}

// Error describes the first problem found in an input document.
type Error struct {
	Kind Kind

	// Line is the 1-based line number, or 0 for whole-document checks.
	Line int

	// ID is the offending station or charger ID when HasID is set.
	ID    uint32
	HasID bool

	Msg string
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("Line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	return sentinels[e.Kind] == target
}

func lineError(kind Kind, line int, format string, args ...any) *Error {
	return &Error{Kind: kind, Line: line, Msg: fmt.Sprintf(format, args...)}
}

func idError(kind Kind, id uint32, format string, args ...any) *Error {
	return &Error{Kind: kind, ID: id, HasID: true, Msg: fmt.Sprintf(format, args...)}
}
