package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want int
	}{
		{"validation", Validation, http.StatusBadRequest},
		{"auth", Auth, http.StatusBadRequest},
		{"unauthorized", Unauthorized, http.StatusUnauthorized},
		{"forbidden", Forbidden, http.StatusForbidden},
		{"not found", NotFound, http.StatusNotFound},
		{"conflict", Conflict, http.StatusBadRequest},
		{"internal", Internal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(tt.kind, "boom")
			if got := e.Status(); got != tt.want {
				t.Errorf("Status() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFrom_ClassifiedError(t *testing.T) {
	orig := Forbiddenf("no permission")
	got := From(fmt.Errorf("handler: %w", orig), "fallback")
	if got.Kind != Forbidden {
		t.Errorf("Kind = %v, want Forbidden", got.Kind)
	}
	if got.Message != "no permission" {
		t.Errorf("Message = %q, want %q", got.Message, "no permission")
	}
}

func TestFrom_UnknownError(t *testing.T) {
	cause := errors.New("socket closed")
	got := From(cause, "failed to load tasks")
	if got.Kind != Internal {
		t.Errorf("Kind = %v, want Internal", got.Kind)
	}
	if got.Message != "failed to load tasks" {
		t.Errorf("Message = %q", got.Message)
	}
	if !errors.Is(got, cause) {
		t.Error("expected wrapped cause to survive errors.Is")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("dup key")
	e := Wrap(Conflict, "email taken", cause)
	if !errors.Is(e, cause) {
		t.Error("expected errors.Is to see the cause")
	}
}
