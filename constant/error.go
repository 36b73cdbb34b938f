package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidCredentials
	ErrIncorrectPassword
	ErrInvalidToken
	ErrForbidden
	ErrTooManyRequests
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "Internal server error",
	ErrNotFound:           "Resource not found",
	ErrInvalidRequest:     "Validation error",
	ErrUnauthorize:        "Access token required",
	ErrCredentialExists:   "Email is already registered",
	ErrInvalidCredentials: "Invalid credentials",
	ErrIncorrectPassword:  "Current password is incorrect",
	ErrInvalidToken:       "Invalid or expired token",
	ErrForbidden:          "Insufficient permissions",
	ErrTooManyRequests:    "Too many requests",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusNotFound,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrUnauthorize:        http.StatusUnauthorized,
	ErrCredentialExists:   http.StatusBadRequest,
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrIncorrectPassword:  http.StatusBadRequest,
	ErrInvalidToken:       http.StatusForbidden,
	ErrForbidden:          http.StatusForbidden,
	ErrTooManyRequests:    http.StatusTooManyRequests,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrNotFound:           "0002",
	ErrInvalidRequest:     "0003",
	ErrUnauthorize:        "0004",
	ErrCredentialExists:   "0005",
	ErrInvalidCredentials: "0006",
	ErrIncorrectPassword:  "0007",
	ErrInvalidToken:       "0008",
	ErrForbidden:          "0009",
	ErrTooManyRequests:    "0010",
}
