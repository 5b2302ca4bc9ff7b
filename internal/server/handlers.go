package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/ats-analyzer/internal/analysis"
	"github.com/jonathan/ats-analyzer/internal/category"
	"github.com/jonathan/ats-analyzer/internal/store"
	"github.com/jonathan/ats-analyzer/internal/types"
)

// AnalyzeRequest represents the request body for /api/v1/analyze
type AnalyzeRequest struct {
	ResumeText     string `json:"resume_text"`
	JobCategory    string `json:"job_category,omitempty"`
	CandidateName  string `json:"candidate_name,omitempty"`
	CandidateEmail string `json:"candidate_email,omitempty"`
	Filename       string `json:"filename,omitempty"`
}

// AnalyzeResponse represents the response for both analyze endpoints
type AnalyzeResponse struct {
	SubmissionID     string                `json:"submission_id,omitempty"`
	DetectedCategory string                `json:"detected_category,omitempty"`
	Result           *types.AnalysisResult `json:"result"`
}

// CategoriesResponse represents the response for /api/v1/categories
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// handleAnalyze runs the general ATS analysis. When no job category is
// given it is auto-detected from the resume text.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.ResumeText == "" {
		s.errorResponse(w, http.StatusBadRequest, (&analysis.InputError{
			Field:   "resume_text",
			Message: "resume text is required",
		}).Error())
		return
	}

	resp := AnalyzeResponse{}
	jobCategory := req.JobCategory
	if jobCategory == "" {
		jobCategory, _ = category.Detect(req.ResumeText, s.registry.DetectionVocabularies())
		resp.DetectedCategory = jobCategory
	}

	result, err := s.analyzer.Analyze(req.ResumeText, jobCategory, s.registry.Category(jobCategory))
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}
	resp.Result = result

	resp.SubmissionID = s.persist(r.Context(), &req, store.ModeGeneral, result)
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleAnalyzeForCompany evaluates a resume against the company's hiring
// criteria for the requested category. A category without a company profile
// is a client error; callers fall back to /api/v1/analyze.
func (s *Server) handleAnalyzeForCompany(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.ResumeText == "" {
		s.errorResponse(w, http.StatusBadRequest, (&analysis.InputError{
			Field:   "resume_text",
			Message: "resume text is required",
		}).Error())
		return
	}

	resp := AnalyzeResponse{}
	jobCategory := req.JobCategory
	if jobCategory == "" {
		jobCategory, _ = category.Detect(req.ResumeText, s.registry.DetectionVocabularies())
		resp.DetectedCategory = jobCategory
	}

	companyReq, ok := s.registry.Company(jobCategory)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "no company requirements profile for job category "+jobCategory)
		return
	}

	result, err := s.analyzer.AnalyzeForCompany(req.ResumeText, jobCategory,
		s.registry.Category(jobCategory), companyReq, s.registry.CriteriaWeights())
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}
	resp.Result = result

	resp.SubmissionID = s.persist(r.Context(), &req, store.ModeCompany, result)
	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, CategoriesResponse{Categories: s.registry.CategoryNames()})
}

func (s *Server) handleRecentSubmissions(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "no database configured")
		return
	}
	subs, err := s.store.RecentSubmissions(r.Context(), 0)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, subs)
}

func (s *Server) handleGetSubmission(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "no database configured")
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid submission id")
		return
	}
	sub, err := s.store.GetSubmission(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if sub == nil {
		s.errorResponse(w, http.StatusNotFound, "submission not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, sub)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "no database configured")
		return
	}
	summary, err := s.store.DashboardSummary(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, summary)
}

// persist records the submission when a store is configured. Persistence
// failures are logged, not surfaced: the analysis already succeeded.
func (s *Server) persist(ctx context.Context, req *AnalyzeRequest, mode string, result *types.AnalysisResult) string {
	if s.store == nil {
		return ""
	}
	id, err := s.store.RecordSubmission(ctx, &store.Submission{
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
		Filename:       req.Filename,
		Mode:           mode,
		Result:         result,
	})
	if err != nil {
		s.log.Warnw("failed to record submission", "error", err)
		return ""
	}
	return id.String()
}
