package errors

import "github.com/muhammadheryan/green-footprint/constant"

type CustomError struct {
	errType constant.ErrorType
	details []string
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) ErrorType() constant.ErrorType {
	return c.errType
}

// Details returns the field-level messages attached to a validation error.
func (c CustomError) Details() []string {
	return c.details
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetValidationError builds an ErrInvalidRequest carrying field-level messages.
func SetValidationError(details ...string) CustomError {
	return CustomError{
		errType: constant.ErrInvalidRequest,
		details: details,
	}
}
