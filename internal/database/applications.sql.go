package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

const createApplication = `-- name: CreateApplication :one
INSERT INTO applications (job_id, user_id, resume_key)
VALUES ($1, $2, $3)
RETURNING id, job_id, user_id, resume_key, match_score, status, applied_at
`

type CreateApplicationParams struct {
	JobID     uuid.UUID
	UserID    uuid.UUID
	ResumeKey string
}

func (q *Queries) CreateApplication(ctx context.Context, arg CreateApplicationParams) (Application, error) {
	row := q.db.QueryRowContext(ctx, createApplication, arg.JobID, arg.UserID, arg.ResumeKey)
	var i Application
	err := row.Scan(
		&i.ID,
		&i.JobID,
		&i.UserID,
		&i.ResumeKey,
		&i.MatchScore,
		&i.Status,
		&i.AppliedAt,
	)
	return i, err
}

const getApplicationsByJob = `-- name: GetApplicationsByJob :many
SELECT id, job_id, user_id, resume_key, match_score, status, applied_at FROM applications WHERE job_id=$1 ORDER BY applied_at ASC, id ASC
`

func (q *Queries) GetApplicationsByJob(ctx context.Context, jobID uuid.UUID) ([]Application, error) {
	rows, err := q.db.QueryContext(ctx, getApplicationsByJob, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Application
	for rows.Next() {
		var i Application
		if err := rows.Scan(
			&i.ID,
			&i.JobID,
			&i.UserID,
			&i.ResumeKey,
			&i.MatchScore,
			&i.Status,
			&i.AppliedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getApplicationsByJobRanked = `-- name: GetApplicationsByJobRanked :many
SELECT id, job_id, user_id, resume_key, match_score, status, applied_at FROM applications WHERE job_id=$1 ORDER BY match_score DESC NULLS LAST, applied_at ASC, id ASC
`

func (q *Queries) GetApplicationsByJobRanked(ctx context.Context, jobID uuid.UUID) ([]Application, error) {
	rows, err := q.db.QueryContext(ctx, getApplicationsByJobRanked, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Application
	for rows.Next() {
		var i Application
		if err := rows.Scan(
			&i.ID,
			&i.JobID,
			&i.UserID,
			&i.ResumeKey,
			&i.MatchScore,
			&i.Status,
			&i.AppliedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const setApplicationScore = `-- name: SetApplicationScore :exec
UPDATE applications
SET match_score=$1
WHERE id=$2
`

type SetApplicationScoreParams struct {
	MatchScore sql.NullFloat64
	ID         uuid.UUID
}

func (q *Queries) SetApplicationScore(ctx context.Context, arg SetApplicationScoreParams) error {
	_, err := q.db.ExecContext(ctx, setApplicationScore, arg.MatchScore, arg.ID)
	return err
}

const setApplicationStatus = `-- name: SetApplicationStatus :exec
UPDATE applications
SET status=$1
WHERE id=$2
`

type SetApplicationStatusParams struct {
	Status string
	ID     uuid.UUID
}

func (q *Queries) SetApplicationStatus(ctx context.Context, arg SetApplicationStatusParams) error {
	_, err := q.db.ExecContext(ctx, setApplicationStatus, arg.Status, arg.ID)
	return err
}

const countApplicationsByStatus = `-- name: CountApplicationsByStatus :many
SELECT status, COUNT(*) AS count FROM applications WHERE job_id=$1 GROUP BY status
`

type CountApplicationsByStatusRow struct {
	Status string
	Count  int64
}

func (q *Queries) CountApplicationsByStatus(ctx context.Context, jobID uuid.UUID) ([]CountApplicationsByStatusRow, error) {
	rows, err := q.db.QueryContext(ctx, countApplicationsByStatus, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CountApplicationsByStatusRow
	for rows.Next() {
		var i CountApplicationsByStatusRow
		if err := rows.Scan(&i.Status, &i.Count); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
