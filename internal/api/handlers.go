package api

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"gridsift/app"
	"gridsift/internal/errors"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCreateRun accepts a multipart upload, stages it, runs the
// extraction, and returns the run summary.
func (s *Server) handleCreateRun(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, errors.InvalidInput("multipart field 'file' is required"))
		return
	}
	defer file.Close()

	staged, err := s.stageUpload(file, header.Filename)
	if err != nil {
		writeError(w, err)
		return
	}
	defer os.Remove(staged)

	summary, err := s.extract.Run(r.Context(), app.ExtractRequest{
		InputPath: staged,
		Sheet:     r.FormValue("sheet"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, summary)
}

// handleRunSummary serves a prior run's structured summary.
func (s *Server) handleRunSummary(w http.ResponseWriter, r *http.Request) {
	data, ok := s.readRunFile(w, r, "run_summary.json")
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// handleRunReport serves a prior run's markdown report rendered as
// HTML.
func (s *Server) handleRunReport(w http.ResponseWriter, r *http.Request) {
	data, ok := s.readRunFile(w, r, "run_report.md")
	if !ok {
		return
	}
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(markdown.ToHTML(data, p, renderer))
}

func (s *Server) readRunFile(w http.ResponseWriter, r *http.Request, name string) ([]byte, bool) {
	// Base strips any path traversal out of the run identifier.
	runID := filepath.Base(chi.URLParam(r, "runID"))
	data, err := os.ReadFile(filepath.Join(s.outputRoot, runID, name))
	if err != nil {
		writeError(w, errors.Newf(errors.CodeInputNotFound, "run %s not found", runID))
		return nil, false
	}
	return data, true
}

func (s *Server) stageUpload(file io.Reader, filename string) (string, error) {
	if err := os.MkdirAll(s.uploadsDir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create uploads directory")
	}
	dst, err := os.CreateTemp(s.uploadsDir, "upload_*"+filepath.Ext(filename))
	if err != nil {
		return "", errors.Wrap(err, "failed to stage upload")
	}
	defer dst.Close()
	if _, err := io.Copy(dst, file); err != nil {
		return "", errors.Wrap(err, "failed to write upload")
	}
	return dst.Name(), nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeInvalidInput:
		status = http.StatusBadRequest
	case errors.CodeInputNotFound:
		status = http.StatusNotFound
	case errors.CodeHeaderNotFound, errors.CodeRequiredColumnsMissing:
		status = http.StatusUnprocessableEntity
	case errors.CodeOutputConflict:
		status = http.StatusConflict
	}
	writeJSON(w, status, map[string]string{
		"code":  errors.GetCode(err),
		"error": err.Error(),
	})
}
