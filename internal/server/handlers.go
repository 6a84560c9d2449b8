package server

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/JoHn11117/resume-scorer/internal/engine"
	"github.com/JoHn11117/resume-scorer/internal/fetch"
	"github.com/JoHn11117/resume-scorer/internal/types"
)

// maxUploadBytes bounds resume uploads; real resumes are far smaller.
const maxUploadBytes = 10 << 20

// scoreResponse is the payload for both scoring endpoints.
type scoreResponse struct {
	SessionID string             `json:"session_id,omitempty"`
	Result    *types.ScoreResult `json:"result"`
	Facts     *types.ResumeFacts `json:"facts"`
}

// handleScore accepts a multipart upload (field "resume") plus optional
// scoring parameters, scores the document, and opens an edit session
// seeded with the extracted text.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing 'resume' file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	jobDescription := r.FormValue("job_description")
	if jobURL := r.FormValue("job_url"); jobURL != "" && jobDescription == "" {
		jobDescription, err = fetch.JobPosting(r.Context(), jobURL, nil)
		if err != nil {
			s.errorResponse(w, httpStatus(err), err.Error())
			return
		}
	}

	req := engine.ScoreRequest{
		Document:       data,
		Format:         formatFromFilename(header.Filename),
		JobDescription: jobDescription,
		Role:           r.FormValue("role"),
		Level:          types.Level(r.FormValue("level")),
		Mode:           types.ScoringMode(r.FormValue("mode")),
	}

	resp, err := s.engine.ParseAndScore(r.Context(), req)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	session, err := s.sessions.CreateSession(r.Context(), strings.Split(resp.Facts.RawText, "\n"))
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, scoreResponse{
		SessionID: session.ID.String(),
		Result:    resp.Result,
		Facts:     resp.Facts,
	})
}

type createSessionRequest struct {
	Text string `json:"text" validate:"required"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	session, err := s.sessions.CreateSession(r.Context(), strings.Split(req.Text, "\n"))
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, session)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	session, err := s.sessions.GetSession(r.Context(), id)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, session)
}

// replaceParagraphsRequest commits a full replacement of the paragraph
// range [start, end). Commits are idempotent; retries are safe.
type replaceParagraphsRequest struct {
	Start      int      `json:"start" validate:"min=0"`
	End        int      `json:"end" validate:"min=0,gtefield=Start"`
	Paragraphs []string `json:"paragraphs" validate:"required"`
}

func (s *Server) handleReplaceParagraphs(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	var req replaceParagraphsRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	session, err := s.sessions.ReplaceRange(r.Context(), id, req.Start, req.End, req.Paragraphs)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, session)
}

type rescoreRequest struct {
	JobDescription string `json:"job_description,omitempty"`
	Role           string `json:"role,omitempty"`
	Level          string `json:"level,omitempty"`
	Mode           string `json:"mode,omitempty" validate:"omitempty,oneof=auto ats_simulation quality_coach"`
}

// handleRescore scores the session's current working copy. Rescoring is
// an explicit action, not a keystroke side effect.
func (s *Server) handleRescore(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	var req rescoreRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	session, err := s.sessions.GetSession(r.Context(), id)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	resp, err := s.engine.Rescore(r.Context(), session.Text(), engine.ScoreRequest{
		JobDescription: req.JobDescription,
		Role:           req.Role,
		Level:          types.Level(req.Level),
		Mode:           types.ScoringMode(req.Mode),
	})
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, scoreResponse{
		SessionID: session.ID.String(),
		Result:    resp.Result,
		Facts:     resp.Facts,
	})
}

type lockRequest struct {
	Owner string `json:"owner" validate:"required"`
}

func (s *Server) handleAcquireLock(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	var req lockRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	status, err := s.sessions.AcquireLock(r.Context(), id, req.Owner)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}
	if !status.Acquired {
		// The warning the second writer needs: someone else is editing.
		s.jsonResponse(w, http.StatusConflict, status)
		return
	}
	s.jsonResponse(w, http.StatusOK, status)
}

func (s *Server) handleReleaseLock(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	var req lockRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	if err := s.sessions.ReleaseLock(r.Context(), id, req.Owner); err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	if err := s.sessions.DeleteSession(r.Context(), id); err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid session id")
		return uuid.Nil, false
	}
	return id, true
}

// decodeAndValidate reads a JSON body into dst and runs struct
// validation, writing the error response itself on failure.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := decodeJSON(r, dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return false
	}
	return true
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(dst)
}

func formatFromFilename(name string) types.Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return types.FormatPDF
	case ".docx":
		return types.FormatDOCX
	default:
		return types.FormatTXT
	}
}
