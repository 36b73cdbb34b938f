package transport

import "net/http"

// Dashboard handler
// @Summary Dashboard of the current user
// @Tags Home
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=model.Dashboard}
// @Failure 401 {object} ErrorResponse
// @Router /home/dashboard [get]
func (s *RestHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := requestUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	dashboard, err := s.HomeApp.Dashboard(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "Dashboard data retrieved successfully", dashboard)
}

// Stats handler
// @Summary Activity and goal statistics for a date range
// @Tags Home
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Defaults to the first day of the current month"
// @Param endDate query string false "Defaults to now"
// @Success 200 {object} Response{data=model.Stats}
// @Failure 400 {object} ErrorResponse
// @Router /home/stats [get]
func (s *RestHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, err := requestUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	start, end, err := parseDateRange(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	stats, err := s.HomeApp.Stats(r.Context(), userID, start, end)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "Stats retrieved successfully", stats)
}
