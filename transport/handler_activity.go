package transport

import (
	"net/http"

	"github.com/muhammadheryan/green-footprint/model"
)

// CreateActivity handler
// @Summary Record an activity
// @Tags Activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateActivityRequest true "Activity"
// @Success 201 {object} Response{data=model.Activity}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /activities [post]
func (s *RestHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := requestUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.CreateActivityRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	activity, err := s.ActivityApp.Create(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, "Activity created successfully", activity)
}

// ListActivities handler
// @Summary List own activities
// @Tags Activities
// @Produce json
// @Security BearerAuth
// @Param type query string false "Activity type"
// @Param startDate query string false "RFC3339 or YYYY-MM-DD"
// @Param endDate query string false "RFC3339 or YYYY-MM-DD"
// @Param minCarbonValue query number false "Minimum carbon value"
// @Param maxCarbonValue query number false "Maximum carbon value"
// @Param tags query string false "Comma separated tags"
// @Param isPublic query bool false "Visibility"
// @Param page query int false "Page, from 0"
// @Param limit query int false "Page size, max 100"
// @Success 200 {object} Response{data=[]model.Activity}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /activities [get]
func (s *RestHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := requestUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	items, page, err := s.ActivityApp.List(ctx, userID, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writePage(w, "Activities retrieved successfully", items, page)
}

// ListPublicActivities handler
// @Summary List public activities
// @Tags Activities
// @Produce json
// @Param type query string false "Activity type"
// @Param startDate query string false "RFC3339 or YYYY-MM-DD"
// @Param endDate query string false "RFC3339 or YYYY-MM-DD"
// @Param minCarbonValue query number false "Minimum carbon value"
// @Param maxCarbonValue query number false "Maximum carbon value"
// @Param tags query string false "Comma separated tags"
// @Param page query int false "Page, from 0"
// @Param limit query int false "Page size, max 100"
// @Success 200 {object} Response{data=[]model.Activity}
// @Failure 400 {object} ErrorResponse
// @Router /activities/public [get]
func (s *RestHandler) ListPublicActivities(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	items, page, err := s.ActivityApp.ListPublic(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writePage(w, "Public activities retrieved successfully", items, page)
}

// ActivitySummary handler
// @Summary Summarize own activities
// @Tags Activities
// @Produce json
// @Security BearerAuth
// @Param type query string false "Activity type"
// @Param startDate query string false "RFC3339 or YYYY-MM-DD"
// @Param endDate query string false "RFC3339 or YYYY-MM-DD"
// @Param tags query string false "Comma separated tags"
// @Success 200 {object} Response{data=model.Summary}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /activities/summary [get]
func (s *RestHandler) ActivitySummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := requestUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	summary, err := s.ActivityApp.Summary(ctx, userID, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "Activity summary retrieved successfully", summary)
}

// GetActivity handler
// @Summary Get an activity
// @Tags Activities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Activity ID"
// @Success 200 {object} Response{data=model.Activity}
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /activities/{id} [get]
func (s *RestHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := requestUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	activity, err := s.ActivityApp.Get(ctx, userID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "Activity retrieved successfully", activity)
}

// UpdateActivity handler
// @Summary Update an activity
// @Tags Activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Activity ID"
// @Param request body model.UpdateActivityRequest true "Fields to change"
// @Success 200 {object} Response{data=model.Activity}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /activities/{id} [put]
func (s *RestHandler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := requestUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateActivityRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	activity, err := s.ActivityApp.Update(ctx, userID, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "Activity updated successfully", activity)
}

// DeleteActivity handler
// @Summary Delete an activity
// @Tags Activities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Activity ID"
// @Success 200 {object} Response
// @Failure 404 {object} ErrorResponse
// @Router /activities/{id} [delete]
func (s *RestHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := requestUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.ActivityApp.Delete(ctx, userID, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "Activity deleted successfully", nil)
}

// SetActivityVerification handler
// @Summary Set the verification status of an activity
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Activity ID"
// @Param request body model.VerificationRequest true "Status"
// @Success 200 {object} Response{data=model.Activity}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/activities/{id}/verification [put]
func (s *RestHandler) SetActivityVerification(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.VerificationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	activity, err := s.ActivityApp.SetVerification(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "Verification status updated successfully", activity)
}
