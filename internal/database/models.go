package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	Phone     sql.NullString
	Role      string
	CreatedAt time.Time
}

type Job struct {
	ID                 uuid.UUID
	Title              string
	Description        string
	SkillsRequired     string
	ExperienceRequired string
	Openings           int32
	Location           string
	JdKey              sql.NullString
	Processing         bool
	HrID               uuid.UUID
	CreatedAt          time.Time
}

type Application struct {
	ID         uuid.UUID
	JobID      uuid.UUID
	UserID     uuid.UUID
	ResumeKey  string
	MatchScore sql.NullFloat64
	Status     string
	AppliedAt  time.Time
}
