package database

import (
	"context"
	"database/sql"
	"os"
	"strings"
	"testing"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestDB connects to the database named by TEST_DATABASE_URL and
// applies a fresh schema. Tests are skipped when the variable is unset so
// the suite stays runnable without Postgres.
func openTestDB(t *testing.T) *Queries {
	t.Helper()
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database integration tests")
	}

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	schema, err := os.ReadFile("../../sql/schema/001_init.sql")
	require.NoError(t, err)
	up, _, _ := strings.Cut(string(schema), "-- +goose Down")

	_, err = db.Exec("DROP TABLE IF EXISTS applications, jobs, users CASCADE")
	require.NoError(t, err)
	_, err = db.Exec(up)
	require.NoError(t, err)

	return New(db)
}

func TestQueriesRoundTrip(t *testing.T) {
	q := openTestDB(t)
	ctx := context.Background()

	hr, err := q.CreateUser(ctx, CreateUserParams{
		Username:     "HR Manager",
		Email:        "hr@example.com",
		Phone:        sql.NullString{String: "123-456-7890", Valid: true},
		Role:         "hr",
		PasswordHash: "x",
	})
	require.NoError(t, err)

	seekerA, err := q.CreateUser(ctx, CreateUserParams{
		Username: "Asha", Email: "asha@example.com", Role: "user", PasswordHash: "x",
	})
	require.NoError(t, err)
	seekerB, err := q.CreateUser(ctx, CreateUserParams{
		Username: "Bola", Email: "bola@example.com", Role: "user", PasswordHash: "x",
	})
	require.NoError(t, err)

	_, err = q.CreateUser(ctx, CreateUserParams{
		Username: "Asha Again", Email: "asha@example.com", Role: "user", PasswordHash: "x",
	})
	assert.True(t, IsUniqueViolation(err))

	byEmail, err := q.GetUserByEmail(ctx, "hr@example.com")
	require.NoError(t, err)
	assert.Equal(t, hr.ID, byEmail.ID)

	job, err := q.CreateJob(ctx, CreateJobParams{
		Title:              "Senior Python Developer",
		Description:        "Looking for an experienced Python developer.",
		SkillsRequired:     "Python, Django, SQL",
		ExperienceRequired: "5+ years",
		Openings:           2,
		Location:           "Hyderabad",
		HrID:               hr.ID,
	})
	require.NoError(t, err)
	assert.False(t, job.Processing)

	loaded, err := q.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.SkillsRequired, loaded.SkillsRequired)

	hrJobs, err := q.GetJobsByHR(ctx, hr.ID)
	require.NoError(t, err)
	require.Len(t, hrJobs, 1)

	appA, err := q.CreateApplication(ctx, CreateApplicationParams{
		JobID: job.ID, UserID: seekerA.ID, ResumeKey: "resumes/asha.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, "applied", appA.Status)
	assert.False(t, appA.MatchScore.Valid)

	appB, err := q.CreateApplication(ctx, CreateApplicationParams{
		JobID: job.ID, UserID: seekerB.ID, ResumeKey: "resumes/bola.docx",
	})
	require.NoError(t, err)

	// one application per (job, user)
	_, err = q.CreateApplication(ctx, CreateApplicationParams{
		JobID: job.ID, UserID: seekerA.ID, ResumeKey: "resumes/asha-v2.pdf",
	})
	assert.True(t, IsUniqueViolation(err))

	require.NoError(t, q.SetApplicationScore(ctx, SetApplicationScoreParams{
		MatchScore: sql.NullFloat64{Float64: 66.67, Valid: true}, ID: appA.ID,
	}))
	require.NoError(t, q.SetApplicationScore(ctx, SetApplicationScoreParams{
		MatchScore: sql.NullFloat64{Float64: 100, Valid: true}, ID: appB.ID,
	}))

	ranked, err := q.GetApplicationsByJobRanked(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, appB.ID, ranked[0].ID)
	assert.Equal(t, appA.ID, ranked[1].ID)

	require.NoError(t, q.SetApplicationStatus(ctx, SetApplicationStatusParams{
		Status: "shortlisted", ID: appB.ID,
	}))
	require.NoError(t, q.SetApplicationStatus(ctx, SetApplicationStatusParams{
		Status: "rejected", ID: appA.ID,
	}))

	counts, err := q.CountApplicationsByStatus(ctx, job.ID)
	require.NoError(t, err)
	tally := map[string]int64{}
	for _, row := range counts {
		tally[row.Status] = row.Count
	}
	assert.Equal(t, int64(1), tally["shortlisted"])
	assert.Equal(t, int64(1), tally["rejected"])
}

func TestClaimJobForProcessing(t *testing.T) {
	q := openTestDB(t)
	ctx := context.Background()

	hr, err := q.CreateUser(ctx, CreateUserParams{
		Username: "HR Manager", Email: "hr@example.com", Role: "hr", PasswordHash: "x",
	})
	require.NoError(t, err)
	job, err := q.CreateJob(ctx, CreateJobParams{
		Title: "Backend Engineer", Description: "d", SkillsRequired: "Go",
		ExperienceRequired: "2 years", Openings: 1, Location: "Lagos", HrID: hr.ID,
	})
	require.NoError(t, err)

	claimed, err := q.ClaimJobForProcessing(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claimed)

	// second claim while the first is held gets turned away
	claimed, err = q.ClaimJobForProcessing(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), claimed)

	require.NoError(t, q.ReleaseJobProcessing(ctx, job.ID))

	claimed, err = q.ClaimJobForProcessing(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claimed)
}
