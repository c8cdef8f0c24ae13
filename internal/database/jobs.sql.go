package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

const getJob = `-- name: GetJob :one
SELECT id, title, description, skills_required, experience_required, openings, location, jd_key, processing, hr_id, created_at FROM jobs WHERE id=$1
`

func (q *Queries) GetJob(ctx context.Context, id uuid.UUID) (Job, error) {
	row := q.db.QueryRowContext(ctx, getJob, id)
	var i Job
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.SkillsRequired,
		&i.ExperienceRequired,
		&i.Openings,
		&i.Location,
		&i.JdKey,
		&i.Processing,
		&i.HrID,
		&i.CreatedAt,
	)
	return i, err
}

const getJobsByHR = `-- name: GetJobsByHR :many
SELECT id, title, description, skills_required, experience_required, openings, location, jd_key, processing, hr_id, created_at FROM jobs WHERE hr_id=$1 ORDER BY created_at DESC
`

func (q *Queries) GetJobsByHR(ctx context.Context, hrID uuid.UUID) ([]Job, error) {
	rows, err := q.db.QueryContext(ctx, getJobsByHR, hrID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Job
	for rows.Next() {
		var i Job
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.Description,
			&i.SkillsRequired,
			&i.ExperienceRequired,
			&i.Openings,
			&i.Location,
			&i.JdKey,
			&i.Processing,
			&i.HrID,
			&i.CreatedAt,
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

const createJob = `-- name: CreateJob :one
INSERT INTO jobs (title, description, skills_required, experience_required, openings, location, jd_key, hr_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, title, description, skills_required, experience_required, openings, location, jd_key, processing, hr_id, created_at
`

type CreateJobParams struct {
	Title              string
	Description        string
	SkillsRequired     string
	ExperienceRequired string
	Openings           int32
	Location           string
	JdKey              sql.NullString
	HrID               uuid.UUID
}

func (q *Queries) CreateJob(ctx context.Context, arg CreateJobParams) (Job, error) {
	row := q.db.QueryRowContext(ctx, createJob,
		arg.Title,
		arg.Description,
		arg.SkillsRequired,
		arg.ExperienceRequired,
		arg.Openings,
		arg.Location,
		arg.JdKey,
		arg.HrID,
	)
	var i Job
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.SkillsRequired,
		&i.ExperienceRequired,
		&i.Openings,
		&i.Location,
		&i.JdKey,
		&i.Processing,
		&i.HrID,
		&i.CreatedAt,
	)
	return i, err
}

const claimJobForProcessing = `-- name: ClaimJobForProcessing :execrows
UPDATE jobs
SET processing = TRUE
WHERE id=$1 AND processing = FALSE
`

func (q *Queries) ClaimJobForProcessing(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := q.db.ExecContext(ctx, claimJobForProcessing, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const releaseJobProcessing = `-- name: ReleaseJobProcessing :exec
UPDATE jobs
SET processing = FALSE
WHERE id=$1
`

func (q *Queries) ReleaseJobProcessing(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, releaseJobProcessing, id)
	return err
}
