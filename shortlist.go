package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hireboardhq/shortlistworker/internal/database"
	"go.uber.org/zap"
)

var (
	ErrJobNotFound          = errors.New("job not found")
	ErrNotJobOwner          = errors.New("job is not owned by the requesting hr")
	ErrNoRequirements       = errors.New("no usable skill requirements for job")
	ErrJobAlreadyProcessing = errors.New("a shortlisting pass is already running for this job")
)

// ProcessShortlisting runs one full shortlisting pass for a job: score
// every open application, rank the full set, partition into shortlisted
// and rejected around 2x openings, notify each applicant, and persist the
// new statuses.
//
// Re-running the pass on an unchanged application set gives the same
// scores and the same partition. Notifications are re-sent on every run;
// that mirrors how HR re-triggers are expected to behave today.
func (cfg *WorkerConfig) ProcessShortlisting(ctx context.Context, jobID, hrID uuid.UUID) (PassResult, error) {
	var result PassResult

	job, err := cfg.DB.GetJob(ctx, jobID)
	if errors.Is(err, sql.ErrNoRows) {
		return result, ErrJobNotFound
	}
	if err != nil {
		return result, fmt.Errorf("failed to load job %s: %w", jobID, err)
	}
	if job.HrID != hrID {
		return result, ErrNotJobOwner
	}
	if err := cfg.checkRequirements(ctx, job); err != nil {
		return result, err
	}

	owner, err := cfg.DB.GetUser(ctx, job.HrID)
	if err != nil {
		return result, fmt.Errorf("failed to load job owner %s: %w", job.HrID, err)
	}

	// Guard against a second trigger double-processing the same job.
	claimed, err := cfg.DB.ClaimJobForProcessing(ctx, jobID)
	if err != nil {
		return result, fmt.Errorf("failed to claim job %s: %w", jobID, err)
	}
	if claimed == 0 {
		return result, ErrJobAlreadyProcessing
	}
	defer func() {
		if err := cfg.DB.ReleaseJobProcessing(context.WithoutCancel(ctx), jobID); err != nil {
			cfg.Logger.Warn("failed to release job processing claim",
				zap.String("job_id", jobID.String()), zap.Error(err))
		}
	}()

	applications, err := cfg.DB.GetApplicationsByJob(ctx, jobID)
	if err != nil {
		return result, fmt.Errorf("failed to load applications for job %s: %w", jobID, err)
	}

	// Score every application that is not finalized yet. Scores are
	// written through one by one so a crash mid-pass keeps the work
	// already done.
	for _, app := range applications {
		if app.MatchScore.Valid && app.Status != StatusApplied {
			continue
		}
		resumeText := cfg.fetchDocumentText(ctx, app.ResumeKey)
		score := matchScore(resumeText, job.SkillsRequired)

		_, err := retry(3, func() (struct{}, error) {
			return struct{}{}, cfg.DB.SetApplicationScore(ctx, database.SetApplicationScoreParams{
				MatchScore: sql.NullFloat64{Float64: score, Valid: true},
				ID:         app.ID,
			})
		})
		if err != nil {
			return result, fmt.Errorf("failed to persist score for application %s: %w", app.ID, err)
		}
	}

	// All scores are written; now rank. Ties break on applied_at then id
	// so the partition is reproducible.
	ranked, err := cfg.DB.GetApplicationsByJobRanked(ctx, jobID)
	if err != nil {
		return result, fmt.Errorf("failed to reload applications for job %s: %w", jobID, err)
	}

	shortlistSize := int(job.Openings) * 2
	for i, app := range ranked {
		user, err := cfg.DB.GetUser(ctx, app.UserID)
		if errors.Is(err, sql.ErrNoRows) {
			cfg.Logger.Warn("applicant user missing, skipping application",
				zap.String("application_id", app.ID.String()),
				zap.String("user_id", app.UserID.String()))
			continue
		}
		if err != nil {
			return result, fmt.Errorf("failed to load applicant %s: %w", app.UserID, err)
		}

		status := StatusRejected
		if i < shortlistSize {
			status = StatusShortlisted
		}
		if err := cfg.DB.SetApplicationStatus(ctx, database.SetApplicationStatusParams{
			Status: status,
			ID:     app.ID,
		}); err != nil {
			return result, fmt.Errorf("failed to persist status for application %s: %w", app.ID, err)
		}

		var subject, body string
		if status == StatusShortlisted {
			result.Shortlisted++
			subject = shortlistedSubject(job.Title)
			body = shortlistedBody(user.Username, job.Title, owner.Username, app.MatchScore.Float64)
		} else {
			result.Rejected++
			subject = rejectedSubject(job.Title)
			body = rejectedBody(user.Username, job.Title, owner.Username)
		}

		// the dispatcher logs its own failures; one bounced email must
		// not stop the rest of the pass
		_ = cfg.Mailer.Send(user.Email, subject, body)
	}

	return result, nil
}

// checkRequirements decides whether the job can be scored at all. The
// structured skills_required field is the canonical scoring input; the
// uploaded job description is advisory, so an unreadable upload is fatal
// only when the structured field is empty too.
func (cfg *WorkerConfig) checkRequirements(ctx context.Context, job database.Job) error {
	if strings.TrimSpace(job.SkillsRequired) != "" {
		return nil
	}
	if !job.JdKey.Valid || job.JdKey.String == "" {
		return ErrNoRequirements
	}
	if strings.TrimSpace(cfg.fetchDocumentText(ctx, job.JdKey.String)) == "" {
		return ErrNoRequirements
	}
	return nil
}

// fetchDocumentText resolves a storage key to plain text. Every failure
// mode on the way (missing object, download error, unsupported or corrupt
// document) degrades to empty text; the caller decides whether that is
// fatal.
func (cfg *WorkerConfig) fetchDocumentText(ctx context.Context, key string) string {
	ok, err := cfg.Store.Exists(ctx, key)
	if err != nil {
		cfg.Logger.Warn("object existence check failed", zap.String("key", key), zap.Error(err))
		return ""
	}
	if !ok {
		cfg.Logger.Warn("document missing from object storage", zap.String("key", key))
		return ""
	}

	data, err := retry(3, func() ([]byte, error) {
		return cfg.Store.Download(ctx, key)
	})
	if err != nil {
		cfg.Logger.Warn("document download failed", zap.String("key", key), zap.Error(err))
		return ""
	}

	text, err := cfg.Extractor.Extract(key, data)
	if err != nil {
		cfg.Logger.Warn("text extraction failed", zap.String("key", key), zap.Error(err))
		return ""
	}
	return text
}
