package model

import "github.com/m-mizutani/goerr/v2"

var (
	ErrUnknownField       = goerr.New("unknown field")
	ErrReadOnlyField      = goerr.New("field is derived and cannot be edited")
	ErrActionStepIndex    = goerr.New("action step index out of range")
	ErrUnknownLabel       = goerr.New("unknown label key")
	ErrInvalidDate        = goerr.New("invalid session date")
	ErrMissingProfile     = goerr.New("invalid file format: missing profile section")
	ErrInvalidProfileJSON = goerr.New("invalid profile JSON")
)

// Context keys for error values
const (
	SectionKey = "section"
	FieldKey   = "field"
	IndexKey   = "index"
)
