package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/veridis/sfdr-engine/version"
)

// ClassifyRequest is the JSON body for the classification endpoints
type ClassifyRequest struct {
	Text         string `json:"text"`
	DocumentType string `json:"document_type"`
}

// DefaultDocumentType is used when a request omits the document type
const DefaultDocumentType = "fund_prospectus"

// HandleClassify classifies a disclosure document supplied as JSON
func (s *Server) HandleClassify(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxDocumentBytes)

	var req ClassifyRequest
	if err := readJSON(w, r, &req); err != nil {
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "Field 'text' is required")
		return
	}
	if req.DocumentType == "" {
		req.DocumentType = DefaultDocumentType
	}

	result := s.engine.Classify(r.Context(), req.Text, req.DocumentType)
	s.metrics.Record(result)

	writeJSON(w, http.StatusOK, result)
}

// HandleUpload classifies an uploaded document file. Accepts multipart
// form data with a "document" file part and an optional "document_type"
// field.
func (s *Server) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)

	if err := r.ParseMultipartForm(MaxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing 'document' file part")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}

	text := string(content)
	if strings.TrimSpace(text) == "" {
		writeError(w, http.StatusBadRequest, "Uploaded document is empty")
		return
	}

	documentType := r.FormValue("document_type")
	if documentType == "" {
		documentType = DefaultDocumentType
	}

	s.logger.Infow("Classifying uploaded document",
		"filename", header.Filename,
		"size_bytes", header.Size,
		"document_type", documentType,
	)

	result := s.engine.Classify(r.Context(), text, documentType)
	s.metrics.Record(result)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"filename": header.Filename,
		"result":   result,
	})
}

// HandleHealth serves the health check endpoint with version info
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	versionInfo := version.Get()

	health := map[string]interface{}{
		"status":         "ok",
		"version":        versionInfo.Version,
		"commit":         versionInfo.CommitHash,
		"build_time":     versionInfo.BuildTime,
		"engine_version": version.EngineVersion,
		"model_mode":     s.cfg.Model.Mode,
	}

	writeJSON(w, http.StatusOK, health)
}

// HandleMetrics serves in-process classification counters
func (s *Server) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, s.metrics.Snapshot())
}

// HandleConfig serves the effective configuration with secrets masked
func (s *Server) HandleConfig(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"server": map[string]interface{}{
			"port":            s.cfg.GetServerPort(),
			"allowed_origins": s.cfg.GetServerAllowedOrigins(),
		},
		"model": map[string]interface{}{
			"mode":               s.cfg.Model.Mode,
			"model":              s.cfg.Model.Model,
			"base_url":           s.cfg.Model.BaseURL,
			"api_key_configured": s.cfg.Model.APIKey != "",
		},
	})
}
