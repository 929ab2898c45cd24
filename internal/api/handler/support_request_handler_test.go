package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/repairdesk/support-api/internal/core/domain"
)

func TestSupportRequestHandler_Create(t *testing.T) {
	stub := &stubRequestService{}
	c, rec := newContext(t, http.MethodPost, "/request",
		`{"deviceType":"laptop","problemDescription":"won't boot","scheduledDate":"2026-11-02"}`, &userSession)

	if err := NewSupportRequestHandler(stub).Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if stub.actor != userSession {
		t.Fatalf("actor not forwarded: %+v", stub.actor)
	}
	if stub.created.DeviceType != domain.DeviceType("laptop") || stub.created.ScheduledDate == nil {
		t.Fatalf("unexpected domain input: %+v", stub.created)
	}
	if want := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC); !stub.created.ScheduledDate.Equal(want) {
		t.Fatalf("scheduledDate = %v, want %v", stub.created.ScheduledDate, want)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Support request has been created successfully!" || resp["newRequest"] == nil {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestSupportRequestHandler_Create_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"missing description", `{"deviceType":"laptop"}`, domain.ErrMissingInput},
		{"negative quote", `{"deviceType":"laptop","problemDescription":"x","quote":-1}`, domain.ErrValidation},
		{"bad date", `{"deviceType":"laptop","problemDescription":"x","scheduledDate":"next week"}`, domain.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubRequestService{}
			c, _ := newContext(t, http.MethodPost, "/request", tt.body, &userSession)

			if err := NewSupportRequestHandler(stub).Create(c); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestSupportRequestHandler_Mine_UsesCaller(t *testing.T) {
	stub := &stubRequestService{}
	c, rec := newContext(t, http.MethodGet, "/request/user", "", &userSession)

	if err := NewSupportRequestHandler(stub).Mine(c); err != nil {
		t.Fatalf("mine: %v", err)
	}
	if stub.byUserArg != userSession.UserID {
		t.Fatalf("expected lookup for %s, got %s", userSession.UserID, stub.byUserArg)
	}

	var resp struct {
		Message  string                   `json:"message"`
		Requests []map[string]interface{} `json:"requests"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "User support requests retrieved successfully." || len(resp.Requests) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestSupportRequestHandler_Update_ForwardsPatch(t *testing.T) {
	stub := &stubRequestService{}
	c, rec := newContext(t, http.MethodPut, "/request/r1", `{"status":"completed","quote":120.5}`, &adminSession)
	c.SetParamNames("id")
	c.SetParamValues("r1")

	if err := NewSupportRequestHandler(stub).Update(c); err != nil {
		t.Fatalf("update: %v", err)
	}
	if stub.patch.Status == nil || *stub.patch.Status != domain.StatusCompleted {
		t.Fatalf("status not forwarded: %+v", stub.patch)
	}
	if stub.patch.Quote == nil || *stub.patch.Quote != 120.5 {
		t.Fatalf("quote not forwarded: %+v", stub.patch)
	}
	if stub.patch.DeviceType != nil {
		t.Fatalf("absent device type must stay nil")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSupportRequestHandler_GetAndDeleteErrors(t *testing.T) {
	stub := &stubRequestService{err: domain.ErrSupportRequestNotFound}
	h := NewSupportRequestHandler(stub)

	c, _ := newContext(t, http.MethodGet, "/request/nope", "", &userSession)
	if err := h.Get(c); !errors.Is(err, domain.ErrSupportRequestNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	stub.err = domain.ErrForbidden
	c, _ = newContext(t, http.MethodDelete, "/request/r1", "", &userSession)
	if err := h.Delete(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestSupportRequestHandler_History(t *testing.T) {
	c, rec := newContext(t, http.MethodGet, "/request/r1/history", "", &adminSession)
	c.SetParamNames("id")
	c.SetParamValues("r1")

	if err := NewSupportRequestHandler(&stubRequestService{}).History(c); err != nil {
		t.Fatalf("history: %v", err)
	}
	var resp struct {
		History []domain.AuditEvent `json:"history"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.History) != 1 || resp.History[0].EntityID != "r1" {
		t.Fatalf("unexpected history: %+v", resp.History)
	}
}
