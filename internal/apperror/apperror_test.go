package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{BadRequest, http.StatusBadRequest},
		{UnknownProvider, http.StatusBadRequest},
		{NotFound, http.StatusNotFound},
		{FetchFailure, http.StatusBadGateway},
		{ExtractionFailure, http.StatusBadGateway},
		{Internal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := New(tt.code, "x").HTTPStatus(); got != tt.want {
			t.Errorf("HTTPStatus(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestWrap_KeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := fmt.Errorf("get data: %w", Wrap(FetchFailure, "fetch page", cause))

	if !errors.Is(err, cause) {
		t.Error("expected cause to be reachable")
	}
	if !Is(err, FetchFailure) {
		t.Error("expected FetchFailure code")
	}
	if Is(err, ExtractionFailure) {
		t.Error("did not expect ExtractionFailure code")
	}
	if got := CodeOf(err); got != FetchFailure {
		t.Errorf("CodeOf = %s, want %s", got, FetchFailure)
	}
	if err.Error() != "get data: fetch page: dial tcp: connection refused" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestCodeOf_PlainError(t *testing.T) {
	if got := CodeOf(errors.New("boom")); got != Internal {
		t.Errorf("CodeOf = %s, want %s", got, Internal)
	}
}
