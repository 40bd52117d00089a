package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	docform "github.com/Rejishankar/docform"
	"github.com/Rejishankar/docform/pkg/document"
	"github.com/Rejishankar/docform/pkg/form"
	"github.com/Rejishankar/docform/pkg/jsonval"
	"github.com/Rejishankar/docform/pkg/rules"
)

// ExtractResponse is the envelope returned by POST /extract-pdf. Success
// carries the derived artifacts plus a session id for follow-up validation
// and export calls; failure carries a user-facing error message.
type ExtractResponse struct {
	Success   bool             `json:"success"`
	SessionID string           `json:"sessionId,omitempty"`
	Data      *jsonval.Value   `json:"data,omitempty"`
	Schema    *form.SchemaNode `json:"schema,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// ValidateResponse is returned by POST /sessions/{id}/validate.
type ValidateResponse struct {
	Valid  bool            `json:"valid"`
	Errors *rules.ErrorMap `json:"errors,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "docform extraction service",
	})
}

func (s *Server) handleExtractPDF(w http.ResponseWriter, r *http.Request) {
	if !s.extracting.TryAcquire(1) {
		writeJSON(w, http.StatusConflict, ExtractResponse{
			Success: false,
			Error:   "an extraction is already in progress",
		})
		return
	}
	defer s.extracting.Release(1)

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file upload is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		http.Error(w, "only PDF files are supported", http.StatusBadRequest)
		return
	}

	path, err := s.saveUpload(file)
	if err != nil {
		s.logger.Error("saving upload failed", "error", err)
		http.Error(w, "failed to store upload", http.StatusInternalServerError)
		return
	}
	defer os.Remove(path)

	if _, err := s.intake.Inspect(path); err != nil {
		s.logger.Warn("upload rejected", "file", header.Filename, "error", err)
		writeJSON(w, http.StatusOK, ExtractResponse{Success: false, Error: err.Error()})
		return
	}

	text, err := s.intake.Text(r.Context(), path)
	if err != nil {
		if errors.Is(err, document.ErrNoText) {
			writeJSON(w, http.StatusOK, ExtractResponse{
				Success: false,
				Error:   "No text could be extracted from the PDF.",
			})
			return
		}
		s.logger.Error("text extraction failed", "file", header.Filename, "error", err)
		http.Error(w, "text extraction failed", http.StatusInternalServerError)
		return
	}

	extracted, err := s.extractor.Extract(r.Context(), text)
	if err != nil {
		s.logger.Error("model extraction failed", "error", err)
		writeJSON(w, http.StatusOK, ExtractResponse{
			Success: false,
			Error:   "AI extraction failed: " + err.Error(),
		})
		return
	}

	derivation := docform.Derive(extracted)
	session := s.sessions.Create(derivation)
	s.logger.Info("extraction complete", "session", session.ID, "fields", len(derivation.Schema.Properties))

	writeJSON(w, http.StatusOK, ExtractResponse{
		Success:   true,
		SessionID: session.ID,
		Data:      &derivation.Data,
		Schema:    &derivation.Schema,
	})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	session, edited, ok := s.sessionData(w, r)
	if !ok {
		return
	}

	errs := session.Derivation.Validate(edited)
	resp := ValidateResponse{Valid: errs.Empty()}
	if !resp.Valid {
		resp.Errors = errs
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	session, edited, ok := s.sessionData(w, r)
	if !ok {
		return
	}

	if errs := session.Derivation.Validate(edited); !errs.Empty() {
		writeJSON(w, http.StatusUnprocessableEntity, ValidateResponse{Valid: false, Errors: errs})
		return
	}

	payload, err := docform.Export(edited)
	if err != nil {
		s.logger.Error("export serialisation failed", "session", session.ID, "error", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	if s.cfg.ExportDir != "" {
		target := filepath.Join(s.cfg.ExportDir, session.ID+".json")
		if err := os.WriteFile(target, payload, 0o644); err != nil {
			s.logger.Error("export write failed", "session", session.ID, "error", err)
			http.Error(w, "export failed", http.StatusInternalServerError)
			return
		}
		s.logger.Info("exported form data", "session", session.ID, "file", target)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="form-data.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

// sessionData resolves the session from the URL and decodes the edited data
// tree from the request body.
func (s *Server) sessionData(w http.ResponseWriter, r *http.Request) (Session, jsonval.Value, bool) {
	session, ok := s.sessions.Get(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "unknown session", http.StatusNotFound)
		return Session{}, jsonval.Value{}, false
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 10<<20))
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return Session{}, jsonval.Value{}, false
	}
	edited, err := jsonval.Decode(body)
	if err != nil {
		http.Error(w, "request body is not valid JSON", http.StatusBadRequest)
		return Session{}, jsonval.Value{}, false
	}
	return session, edited, true
}

func (s *Server) saveUpload(file io.Reader) (string, error) {
	tmp, err := os.CreateTemp("", "docform-*.pdf")
	if err != nil {
		return "", err
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, file); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already written; an encode failure has nowhere to go.
	_ = json.NewEncoder(w).Encode(payload)
}
