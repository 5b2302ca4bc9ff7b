// Package store provides PostgreSQL persistence for analysis submissions.
// It sits strictly outside the pure scoring core: it consumes finished
// AnalysisResult records and never feeds anything back into scoring.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/ats-analyzer/internal/types"
)

// Store wraps a PostgreSQL connection pool
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// RecordSubmission stores one analyzed submission and returns its ID. The
// full result is kept as a JSON document alongside the queryable columns.
func (s *Store) RecordSubmission(ctx context.Context, sub *Submission) (uuid.UUID, error) {
	resultJSON, err := json.Marshal(sub.Result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO submissions (candidate_name, candidate_email, filename, job_category, mode, overall_score, passed, result, evaluated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		sub.CandidateName, sub.CandidateEmail, sub.Filename, sub.Result.JobCategory, sub.Mode,
		sub.Result.OverallScore, sub.Result.Passed, resultJSON, sub.Result.EvaluatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to record submission: %w", err)
	}
	return id, nil
}

// GetSubmission loads one stored submission by ID, or nil when absent.
func (s *Store) GetSubmission(ctx context.Context, id uuid.UUID) (*Submission, error) {
	var (
		sub        Submission
		resultJSON []byte
	)
	err := s.pool.QueryRow(ctx,
		`SELECT id, candidate_name, candidate_email, filename, mode, result, created_at
		 FROM submissions WHERE id = $1`,
		id,
	).Scan(&sub.ID, &sub.CandidateName, &sub.CandidateEmail, &sub.Filename, &sub.Mode, &resultJSON, &sub.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load submission: %w", err)
	}

	sub.Result = &types.AnalysisResult{}
	if err := json.Unmarshal(resultJSON, sub.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis result: %w", err)
	}
	return &sub, nil
}

// RecentSubmissions lists the latest submissions, newest first.
func (s *Store) RecentSubmissions(ctx context.Context, limit int) ([]Submission, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, candidate_name, candidate_email, filename, mode, result, created_at
		 FROM submissions ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var subs []Submission
	for rows.Next() {
		var (
			sub        Submission
			resultJSON []byte
		)
		if err := rows.Scan(&sub.ID, &sub.CandidateName, &sub.CandidateEmail, &sub.Filename, &sub.Mode, &resultJSON, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		sub.Result = &types.AnalysisResult{}
		if err := json.Unmarshal(resultJSON, sub.Result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal analysis result: %w", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read submissions: %w", err)
	}
	return subs, nil
}

// DashboardSummary aggregates stored submissions for the dashboard view.
func (s *Store) DashboardSummary(ctx context.Context) (*Summary, error) {
	summary := &Summary{ByCategory: make(map[string]int)}

	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COALESCE(AVG(overall_score), 0),
		        COALESCE(SUM(CASE WHEN passed THEN 1 ELSE 0 END), 0)
		 FROM submissions`,
	).Scan(&summary.TotalSubmissions, &summary.AverageScore, &summary.PassedCount)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate submissions: %w", err)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT job_category, COUNT(*) FROM submissions GROUP BY job_category`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			category string
			count    int
		)
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		summary.ByCategory[category] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read category counts: %w", err)
	}

	if summary.TotalSubmissions > 0 {
		summary.PassRate = float64(summary.PassedCount) / float64(summary.TotalSubmissions) * 100
	}
	return summary, nil
}

const defaultRecentLimit = 10
