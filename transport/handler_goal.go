package transport

import (
	"net/http"

	"github.com/muhammadheryan/green-footprint/model"
)

// CreateGoal handler
// @Summary Create a goal
// @Tags Goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateGoalRequest true "Goal"
// @Success 201 {object} Response{data=model.Goal}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /goals [post]
func (s *RestHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := requestUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.CreateGoalRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	goal, err := s.GoalApp.Create(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, "Goal created successfully", goal)
}

// ListGoals handler
// @Summary List own goals
// @Tags Goals
// @Produce json
// @Security BearerAuth
// @Param category query string false "Goal category"
// @Param isActive query bool false "Active flag"
// @Param recurring query string false "NONE, WEEKLY, MONTHLY or YEARLY"
// @Param startDate query string false "Deadline lower bound"
// @Param endDate query string false "Deadline upper bound"
// @Param minTargetValue query number false "Minimum target value"
// @Param maxTargetValue query number false "Maximum target value"
// @Param tags query string false "Comma separated tags"
// @Param isPublic query bool false "Visibility"
// @Param page query int false "Page, from 0"
// @Param limit query int false "Page size, max 100"
// @Success 200 {object} Response{data=[]model.Goal}
// @Failure 400 {object} ErrorResponse
// @Router /goals [get]
func (s *RestHandler) ListGoals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := requestUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	filter, err := parseGoalFilter(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	items, page, err := s.GoalApp.List(ctx, userID, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writePage(w, "Goals retrieved successfully", items, page)
}

// ListPublicGoals handler
// @Summary List public goals
// @Tags Goals
// @Produce json
// @Param category query string false "Goal category"
// @Param tags query string false "Comma separated tags"
// @Param page query int false "Page, from 0"
// @Param limit query int false "Page size, max 100"
// @Success 200 {object} Response{data=[]model.Goal}
// @Failure 400 {object} ErrorResponse
// @Router /goals/public [get]
func (s *RestHandler) ListPublicGoals(w http.ResponseWriter, r *http.Request) {
	filter, err := parseGoalFilter(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	items, page, err := s.GoalApp.ListPublic(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writePage(w, "Public goals retrieved successfully", items, page)
}

// GoalSummary handler
// @Summary Summarize own goals
// @Tags Goals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=model.GoalSummary}
// @Failure 401 {object} ErrorResponse
// @Router /goals/summary [get]
func (s *RestHandler) GoalSummary(w http.ResponseWriter, r *http.Request) {
	userID, err := requestUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	summary, err := s.GoalApp.Summary(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "Goal summary retrieved successfully", summary)
}

// GetGoal handler
// @Summary Get a goal with its recent progress
// @Tags Goals
// @Produce json
// @Security BearerAuth
// @Param id path int true "Goal ID"
// @Success 200 {object} Response{data=model.Goal}
// @Failure 404 {object} ErrorResponse
// @Router /goals/{id} [get]
func (s *RestHandler) GetGoal(w http.ResponseWriter, r *http.Request) {
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

	goal, err := s.GoalApp.Get(ctx, userID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "Goal retrieved successfully", goal)
}

// UpdateGoal handler
// @Summary Update a goal
// @Tags Goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Goal ID"
// @Param request body model.UpdateGoalRequest true "Fields to change"
// @Success 200 {object} Response{data=model.Goal}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /goals/{id} [put]
func (s *RestHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
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

	var req model.UpdateGoalRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	goal, err := s.GoalApp.Update(ctx, userID, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "Goal updated successfully", goal)
}

// DeleteGoal handler
// @Summary Delete a goal
// @Tags Goals
// @Produce json
// @Security BearerAuth
// @Param id path int true "Goal ID"
// @Success 200 {object} Response
// @Failure 404 {object} ErrorResponse
// @Router /goals/{id} [delete]
func (s *RestHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
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

	if err := s.GoalApp.Delete(ctx, userID, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "Goal deleted successfully", nil)
}

// AddGoalProgress handler
// @Summary Record progress on a goal
// @Tags Goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Goal ID"
// @Param request body model.GoalProgressRequest true "Progress"
// @Success 201 {object} Response{data=model.GoalProgress}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /goals/{id}/progress [post]
func (s *RestHandler) AddGoalProgress(w http.ResponseWriter, r *http.Request) {
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

	var req model.GoalProgressRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	progress, err := s.GoalApp.AddProgress(ctx, userID, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, "Progress recorded successfully", progress)
}

// ListGoalProgress handler
// @Summary List the progress entries of a goal
// @Tags Goals
// @Produce json
// @Security BearerAuth
// @Param id path int true "Goal ID"
// @Success 200 {object} Response{data=[]model.GoalProgress}
// @Failure 404 {object} ErrorResponse
// @Router /goals/{id}/progress [get]
func (s *RestHandler) ListGoalProgress(w http.ResponseWriter, r *http.Request) {
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

	items, err := s.GoalApp.ListProgress(ctx, userID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writePage(w, "Goal progress retrieved successfully", items, nil)
}
