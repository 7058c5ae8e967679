package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// AnalyzeTextRequest is the body of POST /api/v1/analyze/text.
type AnalyzeTextRequest struct {
	Text        string `json:"text"`
	JobPosition string `json:"job_position,omitempty"`
}

// AnalyzeTextHandler analyzes pasted resume text
// @Summary Analyze resume text
// @Description Analyze resume text and return skills, experiences, score, feedback and recommendations
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body AnalyzeTextRequest true "Resume text and optional job position"
// @Success 200 {object} analyzer.Result
// @Failure 400 {object} map[string]string
// @Router /analyze/text [post]
func (a *API) AnalyzeTextHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req AnalyzeTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "resume text cannot be empty")
		return
	}

	result := a.analyzer.Analyze(r.Context(), req.Text, req.JobPosition)
	writeJSON(w, http.StatusOK, result)
}

// AnalyzeFileHandler analyzes an uploaded resume file
// @Summary Analyze resume file
// @Description Upload a resume file (PDF, DOC, DOCX or TXT) and analyze its content
// @Tags analysis
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume file"
// @Param job_position formData string false "Target job position tag"
// @Success 200 {object} analyzer.Result
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /analyze/file [post]
func (a *API) AnalyzeFileHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// Max 10MB upload
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or invalid (max 10MB)")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".pdf" && ext != ".doc" && ext != ".docx" && ext != ".txt" {
		writeError(w, http.StatusBadRequest, "invalid file type (supported: PDF, DOC, DOCX, TXT)")
		return
	}

	doc, err := a.parser.Parse(header.Filename, file)
	if err != nil {
		a.logger.Error("resume file parsing failed",
			zap.String("filename", header.Filename), zap.Error(err))
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to parse resume: %v", err))
		return
	}
	if strings.TrimSpace(doc.Text) == "" {
		writeError(w, http.StatusBadRequest, "could not extract text from file or file is empty")
		return
	}

	a.logger.Debug("resume file parsed",
		zap.String("filename", doc.Filename),
		zap.Int("text_length", len(doc.Text)))

	result := a.analyzer.Analyze(r.Context(), doc.Text, r.FormValue("job_position"))
	writeJSON(w, http.StatusOK, result)
}
