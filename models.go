package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hireboardhq/shortlistworker/internal/database"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// Application status lifecycle. An application starts as applied and a
// shortlisting pass moves it to shortlisted or rejected; it never reverts.
const (
	StatusApplied     = "applied"
	StatusShortlisted = "shortlisted"
	StatusRejected    = "rejected"
)

// Store is the slice of the database layer a shortlisting pass needs.
// *database.Queries satisfies it.
type Store interface {
	GetJob(ctx context.Context, id uuid.UUID) (database.Job, error)
	GetUser(ctx context.Context, id uuid.UUID) (database.User, error)
	GetApplicationsByJob(ctx context.Context, jobID uuid.UUID) ([]database.Application, error)
	GetApplicationsByJobRanked(ctx context.Context, jobID uuid.UUID) ([]database.Application, error)
	SetApplicationScore(ctx context.Context, arg database.SetApplicationScoreParams) error
	SetApplicationStatus(ctx context.Context, arg database.SetApplicationStatusParams) error
	ClaimJobForProcessing(ctx context.Context, id uuid.UUID) (int64, error)
	ReleaseJobProcessing(ctx context.Context, id uuid.UUID) error
}

// BlobStore reads uploaded documents (resumes, job descriptions) by key.
type BlobStore interface {
	Exists(ctx context.Context, key string) (bool, error)
	Download(ctx context.Context, key string) ([]byte, error)
}

// TextExtractor turns a stored document into plain text. The key carries
// the format as its filename extension.
type TextExtractor interface {
	Extract(key string, data []byte) (string, error)
}

// Notifier delivers one notification. It reports transport failure as
// false and never propagates an error to the caller.
type Notifier interface {
	Send(to, subject, body string) bool
}

type WorkerConfig struct {
	DB          Store
	Store       BlobStore
	Extractor   TextExtractor
	Mailer      Notifier
	Logger      *zap.Logger
	RabbitConn  *amqp.Connection
	RabbitMQURL string
}

// ShortlistRequest is the message an HR-triggered action publishes on the
// shortlisting queue. HrID is the already-authenticated caller identity;
// ownership is re-checked against the job row before any work starts.
type ShortlistRequest struct {
	JobID       uuid.UUID `json:"job_id"`
	HrID        uuid.UUID `json:"hr_id"`
	RequestedAt time.Time `json:"requested_at"`
}

// PassResult aggregates the outcome of one shortlisting pass.
type PassResult struct {
	Shortlisted int `json:"shortlisted"`
	Rejected    int `json:"rejected"`
}
