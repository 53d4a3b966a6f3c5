package store

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/queuectl/queuectl/job"
)

type jobModel struct {
	bun.BaseModel `bun:"table:jobs"`

	ID      string    `bun:"id,pk"`
	Command string    `bun:"command,notnull"`
	State   job.State `bun:"state,notnull"`

	Attempts   int `bun:"attempts,notnull,default:0"`
	MaxRetries int `bun:"max_retries,notnull"`
	Priority   int `bun:"priority,notnull"`

	CreatedAt time.Time `bun:"created_at,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
	RunAt     time.Time `bun:"run_at,notnull"`

	Timeout   *int64  `bun:"timeout"`
	LastError *string `bun:"last_error"`
	WorkerID  *string `bun:"worker_id"`
}

func (jm *jobModel) toJob() *job.Job {
	jb := &job.Job{
		ID:         jm.ID,
		Command:    jm.Command,
		State:      jm.State,
		Attempts:   jm.Attempts,
		MaxRetries: jm.MaxRetries,
		Priority:   jm.Priority,
		CreatedAt:  jm.CreatedAt,
		UpdatedAt:  jm.UpdatedAt,
		RunAt:      jm.RunAt,
		WorkerID:   jm.WorkerID,
	}
	if jm.Timeout != nil {
		t := int(*jm.Timeout)
		jb.Timeout = &t
	}
	if jm.LastError != nil {
		jb.LastError = *jm.LastError
	}
	return jb
}

func fromJob(jb *job.Job) *jobModel {
	model := &jobModel{
		ID:         jb.ID,
		Command:    jb.Command,
		State:      jb.State,
		Attempts:   jb.Attempts,
		MaxRetries: jb.MaxRetries,
		Priority:   jb.Priority,
		CreatedAt:  jb.CreatedAt,
		UpdatedAt:  jb.UpdatedAt,
		RunAt:      jb.RunAt,
		WorkerID:   jb.WorkerID,
	}
	if jb.Timeout != nil {
		t := int64(*jb.Timeout)
		model.Timeout = &t
	}
	if jb.LastError != "" {
		trimmed := job.TruncateError(jb.LastError)
		model.LastError = &trimmed
	}
	return model
}

type dlqModel struct {
	bun.BaseModel `bun:"table:dlq"`

	ID         string    `bun:"id,pk"`
	Command    string    `bun:"command,notnull"`
	Attempts   int       `bun:"attempts,notnull"`
	MaxRetries int       `bun:"max_retries,notnull"`
	FailedAt   time.Time `bun:"failed_at,notnull"`
	LastError  *string   `bun:"last_error"`
}

func (dm *dlqModel) toEntry() *job.DLQEntry {
	entry := &job.DLQEntry{
		ID:         dm.ID,
		Command:    dm.Command,
		Attempts:   dm.Attempts,
		MaxRetries: dm.MaxRetries,
		FailedAt:   dm.FailedAt,
	}
	if dm.LastError != nil {
		entry.LastError = *dm.LastError
	}
	return entry
}

type configModel struct {
	bun.BaseModel `bun:"table:config"`

	Key   string `bun:"key,pk"`
	Value string `bun:"value,notnull"`
}
