// Package server provides the HTTP REST API for the skill gap analyzer.
package server

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"go.uber.org/zap"

	"github.com/daniel/skillgap-analyzer/internal/extraction"
	"github.com/daniel/skillgap-analyzer/internal/types"
)

// maxUploadBytes caps the parsed size of an analyze request.
const maxUploadBytes = 32 << 20

// analyzeResponse is the success payload for POST /analyze.
type analyzeResponse struct {
	Summary    types.GapSummary        `json:"summary"`
	Comparison []types.ComparisonEntry `json:"comparison"`
	Advice     *types.Advice           `json:"advice,omitempty"`
	Metadata   analyzeMetadata         `json:"metadata"`
}

type analyzeMetadata struct {
	ResumeFilename         string `json:"resume_filename"`
	JobDescriptionFilename string `json:"job_description_filename"`
	RequestID              string `json:"request_id,omitempty"`
}

// handleAnalyze compares an uploaded resume against a job description and
// returns the gap report.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Invalid multipart form: %v", err))
		return
	}

	resumeFile, resumeHeader, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing form file: resume")
		return
	}
	defer resumeFile.Close()

	jobFile, jobHeader, err := r.FormFile("job_description")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing form file: job_description")
		return
	}
	defer jobFile.Close()

	resumeText, err := extractUpload(resumeFile, resumeHeader)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Error reading resume: %v", err))
		return
	}

	jobText, err := extractUpload(jobFile, jobHeader)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Error reading job description: %v", err))
		return
	}

	vocabulary, err := s.vocabulary.Get(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Error loading skill vocabulary: %v", err))
		return
	}

	outcome := s.engine.Analyze(resumeText, jobText, vocabulary)
	if outcome.Warning != nil {
		// The warning payload carries text previews instead of a report, so
		// callers can tell extraction worked even though matching could not run.
		s.jsonResponse(w, http.StatusOK, outcome.Warning)
		return
	}

	report := outcome.Report
	resp := analyzeResponse{
		Summary:    report.Summary,
		Comparison: report.Comparison,
		Metadata: analyzeMetadata{
			ResumeFilename:         resumeHeader.Filename,
			JobDescriptionFilename: jobHeader.Filename,
			RequestID:              requestIDFromContext(r.Context()),
		},
	}

	// Advice failures degrade to a report without suggestions.
	suggestions, err := s.advisor.Suggest(r.Context(), report)
	if err != nil {
		s.log.Warn("advice generation failed", zap.Error(err))
	} else {
		resp.Advice = suggestions
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// extractUpload reads a multipart file part and converts it to plain text.
func extractUpload(file multipart.File, header *multipart.FileHeader) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	return extraction.ExtractText(header.Filename, data)
}

// handleListSkills returns the active skill vocabulary.
func (s *Server) handleListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := s.vocabulary.Get(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Error loading skill vocabulary: %v", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"skills": skills,
		"count":  len(skills),
	})
}

// handleReloadSkills rereads the vocabulary from its source and swaps it in.
func (s *Server) handleReloadSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := s.vocabulary.Refresh(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Error reloading skill vocabulary: %v", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"reloaded": true,
		"count":    len(skills),
	})
}
