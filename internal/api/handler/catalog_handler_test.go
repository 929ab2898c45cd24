package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/repairdesk/support-api/internal/core/domain"
)

func TestJobHandler_Create(t *testing.T) {
	stub := &stubJobService{}
	c, rec := newContext(t, http.MethodPost, "/job",
		`{"supportRequestId":"r1","technician":"Grace","priority":"high","scheduledDate":"2026-11-03T09:30:00Z"}`, &adminSession)

	if err := NewJobHandler(stub).Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if stub.created.Priority != domain.PriorityHigh || stub.created.Technician != "Grace" {
		t.Fatalf("unexpected job: %+v", stub.created)
	}
	if want := time.Date(2026, 11, 3, 9, 30, 0, 0, time.UTC); !stub.created.ScheduledDate.Equal(want) {
		t.Fatalf("scheduledDate = %v, want %v", stub.created.ScheduledDate, want)
	}
	if stub.created.CompletedAt != nil {
		t.Fatalf("completedAt must stay unset")
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Job has been created successfully!" || resp["newJob"] == nil {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestJobHandler_Create_MissingScheduledDate(t *testing.T) {
	stub := &stubJobService{}
	c, _ := newContext(t, http.MethodPost, "/job", `{"supportRequestId":"r1","technician":"Grace","priority":"high"}`, &adminSession)

	if err := NewJobHandler(stub).Create(c); !errors.Is(err, domain.ErrMissingInput) {
		t.Fatalf("expected missing input, got %v", err)
	}
}

func TestJobHandler_UpdateMarksCompletion(t *testing.T) {
	stub := &stubJobService{}
	c, _ := newContext(t, http.MethodPut, "/job/j1", `{"completedAt":"2026-11-04"}`, &adminSession)
	c.SetParamNames("id")
	c.SetParamValues("j1")

	if err := NewJobHandler(stub).Update(c); err != nil {
		t.Fatalf("update: %v", err)
	}
	if stub.patch.CompletedAt == nil || stub.patch.ScheduledDate != nil {
		t.Fatalf("unexpected patch: %+v", stub.patch)
	}
}

func TestJobHandler_NotFound(t *testing.T) {
	stub := &stubJobService{err: domain.ErrJobNotFound}
	h := NewJobHandler(stub)

	c, _ := newContext(t, http.MethodGet, "/job/nope", "", &userSession)
	if err := h.Get(c); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	c, _ = newContext(t, http.MethodDelete, "/job/nope", "", &adminSession)
	if err := h.Delete(c); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSparePartHandler_CreateValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"missing price", `{"partName":"battery","stock":3}`, domain.ErrMissingInput},
		{"negative stock", `{"partName":"battery","stock":-1,"price":10}`, domain.ErrValidation},
		{"negative price", `{"partName":"battery","stock":1,"price":-0.5}`, domain.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(t, http.MethodPost, "/parts", tt.body, &adminSession)

			if err := NewSparePartHandler(nil).Create(c); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

type stubKnowledgeService struct {
	created domain.KnowledgeBase
}

func (s *stubKnowledgeService) List(context.Context) ([]*domain.KnowledgeBase, error) {
	return []*domain.KnowledgeBase{}, nil
}

func (s *stubKnowledgeService) Get(context.Context, string) (*domain.KnowledgeBase, error) {
	return nil, domain.ErrKnowledgeBaseNotFound
}

func (s *stubKnowledgeService) Create(_ context.Context, _ domain.Session, in domain.KnowledgeBase) (*domain.KnowledgeBase, error) {
	s.created = in
	in.ID = "kb1"
	return &in, nil
}

func (s *stubKnowledgeService) Update(context.Context, domain.Session, string, domain.KnowledgeBasePatch) (*domain.KnowledgeBase, error) {
	return nil, domain.ErrKnowledgeBaseNotFound
}

func (s *stubKnowledgeService) Delete(context.Context, domain.Session, string) error {
	return nil
}

func TestKnowledgeBaseHandler_AcceptsNewlineSeparatedLists(t *testing.T) {
	stub := &stubKnowledgeService{}
	c, rec := newContext(t, http.MethodPost, "/knowledge",
		`{"title":"No display","symptoms":["black screen"],"solutionSteps":"reseat RAM\n\ntest external monitor\n","category":"hardware"}`, &adminSession)

	if err := NewKnowledgeBaseHandler(stub).Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	want := []string{"reseat RAM", "test external monitor"}
	if len(stub.created.SolutionSteps) != 2 || stub.created.SolutionSteps[0] != want[0] || stub.created.SolutionSteps[1] != want[1] {
		t.Fatalf("unexpected steps: %q", stub.created.SolutionSteps)
	}
}

func TestKnowledgeBaseHandler_EmptyListAndNotFound(t *testing.T) {
	h := NewKnowledgeBaseHandler(&stubKnowledgeService{})

	c, rec := newContext(t, http.MethodGet, "/knowledge", "", &userSession)
	if err := h.List(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if items, ok := resp["knowledgeBases"].([]any); !ok || len(items) != 0 {
		t.Fatalf("expected empty array, got %v", resp["knowledgeBases"])
	}

	c, _ = newContext(t, http.MethodGet, "/knowledge/nope", "", &userSession)
	if err := h.Get(c); !errors.Is(err, domain.ErrKnowledgeBaseNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

type stubTechnicianService struct {
	renamed *string
}

func (s *stubTechnicianService) List(context.Context) ([]*domain.Technician, error) {
	return []*domain.Technician{{ID: "t1", Name: "Grace"}}, nil
}

func (s *stubTechnicianService) Get(_ context.Context, id string) (*domain.Technician, error) {
	return &domain.Technician{ID: id, Name: "Grace"}, nil
}

func (s *stubTechnicianService) Create(_ context.Context, _ domain.Session, in domain.Technician) (*domain.Technician, error) {
	in.ID = "t2"
	return &in, nil
}

func (s *stubTechnicianService) Update(_ context.Context, _ domain.Session, id string, patch domain.TechnicianPatch) (*domain.Technician, error) {
	s.renamed = patch.Name
	return &domain.Technician{ID: id, Name: *patch.Name}, nil
}

func (s *stubTechnicianService) Delete(context.Context, domain.Session, string) error {
	return nil
}

func TestTechnicianHandler(t *testing.T) {
	stub := &stubTechnicianService{}
	h := NewTechnicianHandler(stub)

	c, _ := newContext(t, http.MethodPost, "/tech", `{}`, &adminSession)
	if err := h.Create(c); !errors.Is(err, domain.ErrMissingInput) {
		t.Fatalf("expected missing input, got %v", err)
	}

	c, rec := newContext(t, http.MethodPut, "/tech/t1", `{"name":"Ada"}`, &adminSession)
	c.SetParamNames("id")
	c.SetParamValues("t1")
	if err := h.Update(c); err != nil {
		t.Fatalf("update: %v", err)
	}
	if stub.renamed == nil || *stub.renamed != "Ada" {
		t.Fatalf("rename not forwarded")
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Technician has been updated successfully!" {
		t.Fatalf("unexpected message %v", resp["message"])
	}

	c, rec = newContext(t, http.MethodDelete, "/tech/t1", "", &adminSession)
	if err := h.Delete(c); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
}
