package handler

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/repairdesk/support-api/internal/core/domain"
)

// flexTime accepts RFC 3339 timestamps and plain YYYY-MM-DD dates.
type flexTime struct {
	time.Time
}

func (t *flexTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return domain.NewValidationError("date must be a string")
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04", "2006-01-02"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return domain.NewValidationError("date must be RFC 3339 or YYYY-MM-DD")
}

func (t *flexTime) ptr() *time.Time {
	if t == nil {
		return nil
	}
	v := t.Time
	return &v
}

// stringList accepts a JSON array of strings or a single newline separated string.
type stringList []string

func (l *stringList) UnmarshalJSON(b []byte) error {
	var arr []string
	if err := json.Unmarshal(b, &arr); err == nil {
		*l = arr
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return domain.NewValidationError("expected a list of strings")
	}
	out := []string{}
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	*l = out
	return nil
}

// --- Auth ---

type registerRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Address      string `json:"address"`
	IsBusiness   bool   `json:"isBusiness"`
	BusinessName string `json:"businessName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type loginData struct {
	Token        string       `json:"token"`
	ID           string       `json:"id"`
	FoundUser    *domain.User `json:"foundUser"`
	RefreshToken string       `json:"refreshToken"`
}

type tokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// --- Users ---

type updateUserRequest struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Password     *string `json:"password"`
	Role         *string `json:"role"`
	IsBusiness   *bool   `json:"isBusiness"`
	BusinessName *string `json:"businessName"`
	Address      *string `json:"address"`
}

// --- Support requests ---

type createSupportRequestRequest struct {
	DeviceType         string    `json:"deviceType" validate:"required"`
	ProblemDescription string    `json:"problemDescription" validate:"required"`
	ScheduledDate      *flexTime `json:"scheduledDate"`
	Quote              *float64  `json:"quote" validate:"omitempty,gte=0"`
	Status             string    `json:"status"`
}

func (r createSupportRequestRequest) toDomain() domain.SupportRequest {
	return domain.SupportRequest{
		DeviceType:         domain.DeviceType(r.DeviceType),
		ProblemDescription: r.ProblemDescription,
		ScheduledDate:      r.ScheduledDate.ptr(),
		Quote:              r.Quote,
		Status:             domain.RequestStatus(r.Status),
	}
}

type updateSupportRequestRequest struct {
	DeviceType         *string   `json:"deviceType"`
	ProblemDescription *string   `json:"problemDescription"`
	ScheduledDate      *flexTime `json:"scheduledDate"`
	Quote              *float64  `json:"quote" validate:"omitempty,gte=0"`
	Status             *string   `json:"status"`
}

func (r updateSupportRequestRequest) toPatch() domain.SupportRequestPatch {
	p := domain.SupportRequestPatch{
		ProblemDescription: r.ProblemDescription,
		ScheduledDate:      r.ScheduledDate.ptr(),
		Quote:              r.Quote,
	}
	if r.DeviceType != nil {
		d := domain.DeviceType(*r.DeviceType)
		p.DeviceType = &d
	}
	if r.Status != nil {
		s := domain.RequestStatus(*r.Status)
		p.Status = &s
	}
	return p
}

// --- Knowledge base ---

type createKnowledgeBaseRequest struct {
	Title         string     `json:"title" validate:"required"`
	Symptoms      stringList `json:"symptoms" validate:"required"`
	SolutionSteps stringList `json:"solutionSteps" validate:"required"`
	Category      string     `json:"category" validate:"required"`
}

func (r createKnowledgeBaseRequest) toDomain() domain.KnowledgeBase {
	return domain.KnowledgeBase{
		Title:         r.Title,
		Symptoms:      r.Symptoms,
		SolutionSteps: r.SolutionSteps,
		Category:      domain.Category(r.Category),
	}
}

type updateKnowledgeBaseRequest struct {
	Title         *string    `json:"title"`
	Symptoms      stringList `json:"symptoms"`
	SolutionSteps stringList `json:"solutionSteps"`
	Category      *string    `json:"category"`
}

func (r updateKnowledgeBaseRequest) toPatch() domain.KnowledgeBasePatch {
	p := domain.KnowledgeBasePatch{
		Title:         r.Title,
		Symptoms:      r.Symptoms,
		SolutionSteps: r.SolutionSteps,
	}
	if r.Category != nil {
		c := domain.Category(*r.Category)
		p.Category = &c
	}
	return p
}

// --- Spare parts ---

type createSparePartRequest struct {
	PartName    string   `json:"partName" validate:"required"`
	Stock       *int     `json:"stock" validate:"required,gte=0"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Description string   `json:"description"`
}

func (r createSparePartRequest) toDomain() domain.SparePart {
	return domain.SparePart{
		PartName:    domain.PartName(r.PartName),
		Stock:       *r.Stock,
		Price:       *r.Price,
		Description: r.Description,
	}
}

type updateSparePartRequest struct {
	PartName    *string  `json:"partName"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Description *string  `json:"description"`
}

func (r updateSparePartRequest) toPatch() domain.SparePartPatch {
	p := domain.SparePartPatch{Stock: r.Stock, Price: r.Price, Description: r.Description}
	if r.PartName != nil {
		n := domain.PartName(*r.PartName)
		p.PartName = &n
	}
	return p
}

// --- Jobs ---

type createJobRequest struct {
	SupportRequestID string    `json:"supportRequestId" validate:"required"`
	Technician       string    `json:"technician" validate:"required"`
	Priority         string    `json:"priority" validate:"required"`
	ScheduledDate    *flexTime `json:"scheduledDate" validate:"required"`
	CompletedAt      *flexTime `json:"completedAt"`
}

func (r createJobRequest) toDomain() domain.Job {
	return domain.Job{
		SupportRequestID: r.SupportRequestID,
		Technician:       r.Technician,
		Priority:         domain.Priority(r.Priority),
		ScheduledDate:    r.ScheduledDate.Time,
		CompletedAt:      r.CompletedAt.ptr(),
	}
}

type updateJobRequest struct {
	SupportRequestID *string   `json:"supportRequestId"`
	Technician       *string   `json:"technician"`
	Priority         *string   `json:"priority"`
	ScheduledDate    *flexTime `json:"scheduledDate"`
	CompletedAt      *flexTime `json:"completedAt"`
}

func (r updateJobRequest) toPatch() domain.JobPatch {
	p := domain.JobPatch{
		SupportRequestID: r.SupportRequestID,
		Technician:       r.Technician,
		ScheduledDate:    r.ScheduledDate.ptr(),
		CompletedAt:      r.CompletedAt.ptr(),
	}
	if r.Priority != nil {
		pr := domain.Priority(*r.Priority)
		p.Priority = &pr
	}
	return p
}

// --- Technicians ---

type technicianRequest struct {
	Name string `json:"name" validate:"required"`
}

// ErrorResponse is the envelope of every error reply.
type ErrorResponse struct {
	Message string `json:"message"`
}

type updateTechnicianRequest struct {
	Name *string `json:"name"`
}
