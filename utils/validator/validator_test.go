package validatorx_test

import (
	"reflect"
	"sync"
	"testing"

	validatorx "github.com/muhammadheryan/green-footprint/utils/validator"
)

type registerPayload struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,password"`
	FirstName string `json:"firstName" validate:"omitempty,max=50"`
}

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{raw: "StrongPass1", want: true},
		{raw: "weakpass1", want: false},
		{raw: "WEAKPASS1", want: false},
		{raw: "NoDigitsHere", want: false},
		{raw: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := validatorx.IsStrongPassword(tt.raw); got != tt.want {
				t.Fatalf("IsStrongPassword(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

// Runs first in this file so the singleton is still unset; meaningful under -race.
func TestValidateStruct_ConcurrentFirstUse(t *testing.T) {
	var wg sync.WaitGroup
	errs := make([]error, 16)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = validatorx.ValidateStruct(registerPayload{Email: "alice@example.com", Password: "StrongPass1"})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("goroutine %d: unexpected error %v", i, err)
		}
	}
}

func TestValidateStruct_Messages(t *testing.T) {
	tests := []struct {
		name    string
		payload registerPayload
		want    []string
	}{
		{
			name:    "valid payload",
			payload: registerPayload{Email: "alice@example.com", Password: "StrongPass1"},
			want:    nil,
		},
		{
			name:    "missing fields",
			payload: registerPayload{},
			want:    []string{"Email is required", "Password is required"},
		},
		{
			name:    "bad email and short password",
			payload: registerPayload{Email: "alice", Password: "Ab1"},
			want: []string{
				"Email must be a valid email address",
				"Password must be at least 8 characters long",
			},
		},
		{
			name:    "weak password and long first name",
			payload: registerPayload{Email: "alice@example.com", Password: "alllowercase1", FirstName: string(make([]byte, 51))},
			want: []string{
				"Password must contain at least one lowercase letter, one uppercase letter, and one number",
				"First name must be less than 50 characters",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatorx.ValidateStruct(&tt.payload)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("ValidateStruct() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateStruct() error = nil, want error")
			}
			if got := validatorx.Messages(err); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Messages() = %#v, want %#v", got, tt.want)
			}
		})
	}
}
