package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestClassification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantKind   Kind
		wantMsg    string
		wantStatus int
	}{
		{"validation", New(Validation, "bad input"), Validation, "bad input", http.StatusBadRequest},
		{"conflict", New(Conflict, "exists"), Conflict, "exists", http.StatusBadRequest},
		{"not found", New(NotFound, "missing"), NotFound, "missing", http.StatusNotFound},
		{"auth", New(Auth, "wrong"), Auth, "wrong", http.StatusBadRequest},
		{"unclassified", errors.New("db exploded"), Internal, "Internal Server Error", http.StatusInternalServerError},
		{"wrapped keeps kind", fmt.Errorf("outer: %w", New(NotFound, "missing")), NotFound, "missing", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.wantKind {
				t.Errorf("KindOf() = %v, want %v", got, tt.wantKind)
			}
			if got := MessageOf(tt.err); got != tt.wantMsg {
				t.Errorf("MessageOf() = %q, want %q", got, tt.wantMsg)
			}
			if got := Status(KindOf(tt.err)); got != tt.wantStatus {
				t.Errorf("Status() = %d, want %d", got, tt.wantStatus)
			}
		})
	}
}

func TestWrapUnwraps(t *testing.T) {
	inner := errors.New("inner")
	err := Wrap(Internal, "query failed", inner)
	if !errors.Is(err, inner) {
		t.Error("Wrap() lost the underlying error")
	}
}
