package domain

import "time"

// Priority orders scheduled jobs.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Job schedules a technician against a support request.
type Job struct {
	ID               string     `json:"id" bson:"id"`
	SupportRequestID string     `json:"supportRequestId" bson:"supportRequestId"`
	Technician       string     `json:"technician" bson:"technician"`
	Priority         Priority   `json:"priority" bson:"priority"`
	ScheduledDate    time.Time  `json:"scheduledDate" bson:"scheduledDate"`
	CompletedAt      *time.Time `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt" bson:"updatedAt"`
}

func (j *Job) Validate() error {
	if j.SupportRequestID == "" || j.Technician == "" || j.Priority == "" || j.ScheduledDate.IsZero() {
		return ErrMissingInput
	}
	if !j.Priority.Valid() {
		return NewValidationError("priority must be one of: low medium high")
	}
	return nil
}

type JobPatch struct {
	SupportRequestID *string
	Technician       *string
	Priority         *Priority
	ScheduledDate    *time.Time
	CompletedAt      *time.Time
}

func (p JobPatch) Validate() error {
	if p.Priority != nil && !p.Priority.Valid() {
		return NewValidationError("priority must be one of: low medium high")
	}
	if (p.SupportRequestID != nil && *p.SupportRequestID == "") || (p.Technician != nil && *p.Technician == "") {
		return ErrMissingInput
	}
	return nil
}

func (p JobPatch) Fields() []string {
	var f []string
	if p.SupportRequestID != nil {
		f = append(f, "supportRequestId")
	}
	if p.Technician != nil {
		f = append(f, "technician")
	}
	if p.Priority != nil {
		f = append(f, "priority")
	}
	if p.ScheduledDate != nil {
		f = append(f, "scheduledDate")
	}
	if p.CompletedAt != nil {
		f = append(f, "completedAt")
	}
	return f
}
