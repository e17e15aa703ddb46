package errutil

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/coachnote/pkg/utils/logging"
)

// Handle logs err with msg and returns it unchanged. goerr values and stacks are
// attached to the log record when present.
func Handle(ctx context.Context, err error, msg string) error {
	if err == nil {
		return nil
	}

	logger := logging.From(ctx)

	var ge *goerr.Error
	if errors.As(err, &ge) {
		logger.Error(msg,
			"error", err.Error(),
			"values", ge.Values(),
			"stack", ge.Stacks(),
		)
	} else {
		logger.Error(msg, "error", err.Error())
	}

	return err
}

// Warn logs a recoverable failure that was replaced by a fallback value.
func Warn(ctx context.Context, err error, msg string) {
	if err == nil {
		return
	}

	var ge *goerr.Error
	if errors.As(err, &ge) {
		logging.From(ctx).Warn(msg, "error", err.Error(), "values", ge.Values())
		return
	}
	logging.From(ctx).Warn(msg, "error", err.Error())
}

type errorResponse struct {
	Error string `json:"error"`
}

// HandleHTTP logs the error and writes a JSON error body with statusCode.
// Only 5xx responses are logged at error level.
func HandleHTTP(ctx context.Context, w http.ResponseWriter, err error, statusCode int) {
	if err == nil {
		return
	}

	if statusCode >= http.StatusInternalServerError {
		_ = Handle(ctx, err, "HTTP error")
	} else {
		logging.From(ctx).Info("HTTP client error", "status", statusCode, "error", err.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
}
