package transport

import (
	"encoding/json"
	stdErrors "errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/green-footprint/constant"
	"github.com/muhammadheryan/green-footprint/model"
	"github.com/muhammadheryan/green-footprint/utils/errors"
	"github.com/muhammadheryan/green-footprint/utils/logger"
	validatorx "github.com/muhammadheryan/green-footprint/utils/validator"
	"go.uber.org/zap"
)

// Response is the envelope of every successful call.
type Response struct {
	Message    string            `json:"message"`
	Data       any               `json:"data,omitempty"`
	Pagination *model.Pagination `json:"pagination,omitempty"`
}

// ErrorResponse is the envelope of every failed call.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] encode response", zap.String("error", err.Error()))
	}
}

// writeError renders err. Anything that is not a CustomError is reported as an
// internal error so driver or library messages never reach the client.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stdErrors.As(err, &ce) {
		logger.Error("[writeError] unexpected error", zap.String("error", err.Error()))
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	writeJSON(w, ce.ErrorHTTPCode(), ErrorResponse{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
		Errors:  ce.Details(),
	})
}

func writeSuccess(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, Response{Message: message, Data: data})
}

func writeCreated(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusCreated, Response{Message: message, Data: data})
}

func writePage[T any](w http.ResponseWriter, message string, items []T, page *model.Pagination) {
	if items == nil {
		items = []T{}
	}
	writeJSON(w, http.StatusOK, Response{Message: message, Data: items, Pagination: page})
}

// decodeBody decodes a JSON body into dst and validates it.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.SetValidationError("Request body must be valid JSON")
	}
	if err := validatorx.ValidateStruct(dst); err != nil {
		return errors.SetValidationError(validatorx.Messages(err)...)
	}
	return nil
}

func pathID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetValidationError("id must be a positive integer")
	}
	return id, nil
}
