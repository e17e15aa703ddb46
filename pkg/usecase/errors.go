package usecase

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for use case layer
var (
	ErrConfirmationRequired = goerr.New("confirmation required for destructive action")
	ErrRequestInFlight      = goerr.New("a generation request is already in progress")
	ErrInvalidView          = goerr.New("invalid view")
	ErrInvalidSection       = goerr.New("invalid section")
)

// Context keys for error values
const (
	RequestKindKey = "request_kind"
	RequestIDKey   = "request_id"
	ViewKey        = "view"
	StorageKeyKey  = "storage_key"
)
