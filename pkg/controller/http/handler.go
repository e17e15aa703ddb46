package http

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/coachnote/pkg/domain/model"
	"github.com/secmon-lab/coachnote/pkg/domain/types"
	"github.com/secmon-lab/coachnote/pkg/usecase"
	"github.com/secmon-lab/coachnote/pkg/utils/safe"
)

type valueRequest struct {
	Value string `json:"value"`
}

type confirmRequest struct {
	Confirm bool `json:"confirm"`
}

type viewResponse struct {
	View types.View `json:"view"`
}

func sectionParam(r *http.Request) (types.Section, error) {
	section, err := types.ParseSection(chi.URLParam(r, "section"))
	if err != nil {
		return "", goerr.Wrap(usecase.ErrInvalidSection, "unknown section", goerr.V(model.SectionKey, chi.URLParam(r, "section")))
	}
	return section, nil
}

func indexParam(r *http.Request) (int, error) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return 0, goerr.Wrap(errInvalidRequest, "index must be an integer", goerr.V(model.IndexKey, chi.URLParam(r, "index")))
	}
	return index, nil
}

// Session

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.uc.Session.Get(r.Context()))
}

func (s *Server) updateSessionField(w http.ResponseWriter, r *http.Request) {
	section, err := sectionParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req valueRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	session, err := s.uc.Session.Update(r.Context(), section, chi.URLParam(r, "field"), req.Value)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, session)
}

func (s *Server) addActionStep(w http.ResponseWriter, r *http.Request) {
	session, err := s.uc.Session.AddActionStep(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, session)
}

func (s *Server) setActionStep(w http.ResponseWriter, r *http.Request) {
	index, err := indexParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req valueRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	session, err := s.uc.Session.SetActionStep(r.Context(), index, req.Value)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, session)
}

func (s *Server) removeActionStep(w http.ResponseWriter, r *http.Request) {
	index, err := indexParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	session, err := s.uc.Session.RemoveActionStep(r.Context(), index)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, session)
}

func (s *Server) resetSession(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	session, err := s.uc.Session.Reset(r.Context(), req.Confirm)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, session)
}

// Labels

func (s *Server) getLabels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.uc.Label.Get(r.Context()))
}

func (s *Server) updateLabel(w http.ResponseWriter, r *http.Request) {
	section, err := sectionParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req valueRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	labels, err := s.uc.Label.Update(r.Context(), section, chi.URLParam(r, "key"), req.Value)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, labels)
}

func (s *Server) resetLabels(w http.ResponseWriter, r *http.Request) {
	section, err := sectionParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req confirmRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	labels, err := s.uc.Label.Reset(r.Context(), section, req.Confirm)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, labels)
}

// Preferences

type preferencesRequest struct {
	Credential *string `json:"credential"`
	CoachEmail *string `json:"coachEmail"`
}

func (s *Server) getPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := s.uc.Preference.Get(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, prefs)
}

func (s *Server) updatePreferences(w http.ResponseWriter, r *http.Request) {
	var req preferencesRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	ctx := r.Context()
	if req.Credential != nil {
		if err := s.uc.Preference.SetCredential(ctx, *req.Credential); err != nil {
			writeError(w, r, err)
			return
		}
	}
	if req.CoachEmail != nil {
		if err := s.uc.Preference.SetCoachEmail(ctx, *req.CoachEmail); err != nil {
			writeError(w, r, err)
			return
		}
	}
	s.getPreferences(w, r)
}

// Profile

func (s *Server) exportProfile(w http.ResponseWriter, r *http.Request) {
	dl, err := s.uc.Profile.Export(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeDownload(w, r, dl)
}

func (s *Server) importProfile(w http.ResponseWriter, r *http.Request) {
	data, err := readUpload(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	session, err := s.uc.Profile.Import(r.Context(), data)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, session)
}

// readUpload accepts either a multipart form with a "file" part or a raw body
func readUpload(r *http.Request) ([]byte, error) {
	body := io.Reader(r.Body)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, goerr.Wrap(errInvalidRequest, "missing file in upload", goerr.V("cause", err.Error()))
		}
		defer safe.Close(r.Context(), file, "upload")
		body = file
	}

	data, err := io.ReadAll(io.LimitReader(body, maxBodySize))
	if err != nil {
		return nil, goerr.Wrap(errInvalidRequest, "failed to read upload", goerr.V("cause", err.Error()))
	}
	return data, nil
}

// Notes and summary

func (s *Server) downloadNotes(w http.ResponseWriter, r *http.Request) {
	writeDownload(w, r, s.uc.Notes.Render(r.Context()))
}

func (s *Server) getSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.uc.Summary.Get(r.Context()))
}

type summaryRequest struct {
	Summary string `json:"summary"`
}

func (s *Server) setSummary(w http.ResponseWriter, r *http.Request) {
	var req summaryRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, s.uc.Summary.Set(r.Context(), req.Summary))
}

func (s *Server) startSummary(w http.ResponseWriter, r *http.Request) {
	req, err := s.uc.Summary.Start(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusAccepted, req)
}

func (s *Server) downloadSummary(w http.ResponseWriter, r *http.Request) {
	writeDownload(w, r, s.uc.Summary.Download(r.Context()))
}

type questionResponse struct {
	Question string          `json:"question"`
	Request  usecase.Request `json:"request"`
}

func (s *Server) generateQuestion(w http.ResponseWriter, r *http.Request) {
	q, err := s.uc.Summary.Question(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, questionResponse{
		Question: q,
		Request:  s.uc.Summary.QuestionStatus(),
	})
}

func (s *Server) getCalendar(w http.ResponseWriter, r *http.Request) {
	links, err := s.uc.Calendar.Links(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, links)
}

// View

func (s *Server) getView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, viewResponse{View: s.uc.Navigation.Current(r.Context())})
}

func (s *Server) jumpView(w http.ResponseWriter, r *http.Request) {
	var req viewResponse
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	view, err := s.uc.Navigation.Jump(r.Context(), req.View)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, viewResponse{View: view})
}

func (s *Server) nextView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, viewResponse{View: s.uc.Navigation.Next(r.Context())})
}

func (s *Server) backView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, viewResponse{View: s.uc.Navigation.Back(r.Context())})
}

type finishResponse struct {
	View types.View `json:"view"`
	*usecase.SummaryState
}

func (s *Server) finishView(w http.ResponseWriter, r *http.Request) {
	state, err := s.uc.Navigation.Finish(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, finishResponse{
		View:         s.uc.Navigation.Current(r.Context()),
		SummaryState: state,
	})
}
