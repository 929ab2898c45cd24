package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/repairdesk/support-api/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"missing input", domain.ErrMissingInput, http.StatusBadRequest, "Enter all inputs!"},
		{"wrapped conflict", fmt.Errorf("register: %w", domain.ErrUserExists), http.StatusConflict, "User already exists!"},
		{"validation", domain.NewValidationError("stock must be at least 0"), http.StatusBadRequest, "stock must be at least 0"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "This action cannot be done due to the wrong role of the user!"},
		{"refresh", domain.ErrInvalidRefreshToken, http.StatusForbidden, "Invalid or expired refresh token"},
		{"spare part keeps shared message", domain.ErrSparePartNotFound, http.StatusNotFound, "There is not any knowledge base!"},
		{"technician", domain.ErrTechnicianNotFound, http.StatusNotFound, "There is not any technician!"},
		{"echo error", echo.NewHTTPError(http.StatusUnauthorized, "No refresh token provided"), http.StatusUnauthorized, "No refresh token provided"},
		{"unexpected", errors.New("socket closed"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), rec)

			NewHTTPErrorHandler(zerolog.New(&logs))(tt.err, c)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body["message"] != tt.wantMsg {
				t.Fatalf("expected %q, got %q", tt.wantMsg, body["message"])
			}
			if tt.wantCode == http.StatusInternalServerError && !bytes.Contains(logs.Bytes(), []byte("socket closed")) {
				t.Fatalf("expected cause to be logged, got %s", logs.String())
			}
		})
	}
}

func TestHTTPErrorHandler_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), rec)
	_ = c.String(http.StatusOK, "done")

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrForbidden, c)

	if rec.Code != http.StatusOK || rec.Body.String() != "done" {
		t.Fatalf("committed response was overwritten: %d %s", rec.Code, rec.Body.String())
	}
}
