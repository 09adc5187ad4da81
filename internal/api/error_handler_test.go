package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lojinha/catalog-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return rec, body
}

func TestErrorHandlerValidation(t *testing.T) {
	err := domain.NewValidationError(map[string][]string{
		"name":  {domain.MsgRequired},
		"price": {domain.MsgRequired},
	})

	rec, body := renderError(t, err)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if body["message"] != domain.MsgInvalidFields {
		t.Fatalf("message = %v, want %q", body["message"], domain.MsgInvalidFields)
	}

	fieldErrs := body["errors"].(map[string]any)
	name := fieldErrs["name"].([]any)
	if len(name) != 1 || name[0] != domain.MsgRequired {
		t.Fatalf("name errors = %v, want [%q]", name, domain.MsgRequired)
	}
}

func TestErrorHandlerDomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrUnauthorized, http.StatusUnauthorized},
		{domain.ErrProductNotFound, http.StatusNotFound},
		{domain.ErrPhotoNotFound, http.StatusNotFound},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrUserExists, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			rec, body := renderError(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("status = %d, want %d", rec.Code, tc.code)
			}
			if body["error"] == "" {
				t.Fatal("missing error message")
			}
		})
	}
}

func TestErrorHandlerWrappedDomainError(t *testing.T) {
	err := errors.Join(errors.New("lookup product 42"), domain.ErrProductNotFound)

	rec, _ := renderError(t, err)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 for a wrapped domain error", rec.Code)
	}
}

func TestErrorHandlerEchoError(t *testing.T) {
	rec, body := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "invalid token"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if body["error"] != "invalid token" {
		t.Fatalf("error = %v, want %q", body["error"], "invalid token")
	}
}

func TestErrorHandlerUnexpectedError(t *testing.T) {
	rec, body := renderError(t, errors.New("mongo: connection reset"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	// Internal details never reach the client.
	if body["error"] != "internal server error" {
		t.Fatalf("error = %v, want generic message", body["error"])
	}
}
