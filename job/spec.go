package job

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Spec is the ingest format for new jobs: a JSON object with required
// id and command, plus optional scheduling and retry fields.
//
// The id doubles as a log file name, so path separators are rejected.
type Spec struct {
	ID      string `json:"id" validate:"required,excludesall=/"`
	Command string `json:"command" validate:"required"`

	Priority   *int       `json:"priority,omitempty"`
	Timeout    *int       `json:"timeout,omitempty" validate:"omitempty,gt=0"`
	RunAt      *time.Time `json:"run_at,omitempty"`
	MaxRetries *int       `json:"max_retries,omitempty" validate:"omitempty,gte=0"`
	Attempts   int        `json:"attempts,omitempty" validate:"gte=0"`
	State      string     `json:"state,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
	LastError  string     `json:"last_error,omitempty"`
}

// ParseSpec decodes and validates a JSON job spec.
func ParseSpec(data []byte) (*Spec, error) {
	var spec Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks required fields, value ranges and the state name.
func (s *Spec) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid job spec: %w", err)
	}
	if s.State != "" {
		if _, err := ParseState(s.State); err != nil {
			return fmt.Errorf("invalid job spec: %w", err)
		}
	}
	return nil
}

// Job materializes the spec into a Job record, applying defaults.
//
// defaultMaxRetries comes from the config store at enqueue time. An
// explicit run_at earlier than created_at is clamped up to created_at.
func (s *Spec) Job(now time.Time, defaultMaxRetries int) *Job {
	jb := &Job{
		ID:        s.ID,
		Command:   s.Command,
		State:     StatePending,
		Attempts:  s.Attempts,
		Priority:  DefaultPriority,
		RunAt:     now,
		CreatedAt: now,
		UpdatedAt: now,
		Timeout:   s.Timeout,
		LastError: TruncateError(s.LastError),

		MaxRetries: defaultMaxRetries,
	}
	if s.State != "" {
		jb.State = State(s.State)
	}
	if s.Priority != nil {
		jb.Priority = *s.Priority
	}
	if s.MaxRetries != nil {
		jb.MaxRetries = *s.MaxRetries
	}
	if s.CreatedAt != nil {
		jb.CreatedAt = s.CreatedAt.UTC()
	}
	if s.UpdatedAt != nil {
		jb.UpdatedAt = s.UpdatedAt.UTC()
	}
	if s.RunAt != nil {
		jb.RunAt = s.RunAt.UTC()
	}
	if jb.RunAt.Before(jb.CreatedAt) {
		jb.RunAt = jb.CreatedAt
	}
	return jb
}
