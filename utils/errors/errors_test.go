package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/muhammadheryan/green-footprint/constant"
	cerr "github.com/muhammadheryan/green-footprint/utils/errors"
)

func TestCustomError(t *testing.T) {
	tests := []struct {
		name     string
		err      cerr.CustomError
		wantMsg  string
		wantCode string
		wantHTTP int
		wantLen  int
	}{
		{
			name:     "invalid credentials",
			err:      cerr.SetCustomError(constant.ErrInvalidCredentials),
			wantMsg:  "Invalid credentials",
			wantCode: "0006",
			wantHTTP: http.StatusUnauthorized,
		},
		{
			name:     "validation with details",
			err:      cerr.SetValidationError("Email is required", "Password is required"),
			wantMsg:  "Validation error",
			wantCode: "0003",
			wantHTTP: http.StatusBadRequest,
			wantLen:  2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.wantMsg {
				t.Fatalf("Error() = %q, want %q", tt.err.Error(), tt.wantMsg)
			}
			if tt.err.ErrorCode() != tt.wantCode {
				t.Fatalf("ErrorCode() = %q, want %q", tt.err.ErrorCode(), tt.wantCode)
			}
			if tt.err.ErrorHTTPCode() != tt.wantHTTP {
				t.Fatalf("ErrorHTTPCode() = %d, want %d", tt.err.ErrorHTTPCode(), tt.wantHTTP)
			}
			if len(tt.err.Details()) != tt.wantLen {
				t.Fatalf("Details() len = %d, want %d", len(tt.err.Details()), tt.wantLen)
			}
		})
	}
}

func TestCustomError_As(t *testing.T) {
	wrapped := fmt.Errorf("wrap: %w", cerr.SetCustomError(constant.ErrNotFound))

	var ce cerr.CustomError
	if !errors.As(wrapped, &ce) {
		t.Fatal("errors.As() = false, want true")
	}
	if ce.ErrorType() != constant.ErrNotFound {
		t.Fatalf("ErrorType() = %v, want %v", ce.ErrorType(), constant.ErrNotFound)
	}
}
