package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/ats-analyzer/internal/types"
)

// Analysis modes recorded per submission.
const (
	ModeGeneral = "general"
	ModeCompany = "company"
)

// Submission is one analyzed resume with its result and the metadata the
// dashboard queries on.
type Submission struct {
	ID             uuid.UUID             `json:"id"`
	CandidateName  string                `json:"candidate_name,omitempty"`
	CandidateEmail string                `json:"candidate_email,omitempty"`
	Filename       string                `json:"filename,omitempty"`
	Mode           string                `json:"mode"`
	Result         *types.AnalysisResult `json:"result"`
	CreatedAt      time.Time             `json:"created_at"`
}

// Summary is the dashboard aggregation over stored submissions.
type Summary struct {
	TotalSubmissions int            `json:"total_submissions"`
	PassedCount      int            `json:"passed_count"`
	PassRate         float64        `json:"pass_rate"`
	AverageScore     float64        `json:"average_score"`
	ByCategory       map[string]int `json:"by_category"`
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
