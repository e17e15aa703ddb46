package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/coachnote/pkg/domain/model"
	"github.com/secmon-lab/coachnote/pkg/usecase"
	"github.com/secmon-lab/coachnote/pkg/utils/errutil"
	"github.com/secmon-lab/coachnote/pkg/utils/safe"
)

const maxBodySize = 4 << 20

var errInvalidRequest = goerr.New("invalid request")

// statusOf maps domain errors to HTTP status codes
func statusOf(err error) int {
	switch {
	case errors.Is(err, usecase.ErrConfirmationRequired):
		return http.StatusPreconditionRequired
	case errors.Is(err, usecase.ErrRequestInFlight):
		return http.StatusConflict
	case errors.Is(err, model.ErrUnknownField),
		errors.Is(err, model.ErrUnknownLabel),
		errors.Is(err, model.ErrActionStepIndex),
		errors.Is(err, usecase.ErrInvalidSection):
		return http.StatusNotFound
	case errors.Is(err, errInvalidRequest),
		errors.Is(err, model.ErrReadOnlyField),
		errors.Is(err, model.ErrInvalidDate),
		errors.Is(err, model.ErrMissingProfile),
		errors.Is(err, model.ErrInvalidProfileJSON),
		errors.Is(err, usecase.ErrInvalidView):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	errutil.HandleHTTP(r.Context(), w, err, statusOf(err))
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, data)
}

func writeDownload(w http.ResponseWriter, r *http.Request, dl *usecase.Download) {
	w.Header().Set("Content-Type", dl.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": dl.FileName,
	}))
	w.WriteHeader(http.StatusOK)
	safe.Write(r.Context(), w, dl.Data)
}

// readJSON decodes the request body into v. An empty body leaves v untouched.
func readJSON(r *http.Request, v any) error {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return goerr.Wrap(errInvalidRequest, "failed to read request body", goerr.V("cause", err.Error()))
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return goerr.Wrap(errInvalidRequest, "request body is not valid JSON", goerr.V("cause", err.Error()))
	}
	return nil
}
