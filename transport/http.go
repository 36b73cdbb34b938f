package transport

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	activityapp "github.com/muhammadheryan/green-footprint/application/activity"
	goalapp "github.com/muhammadheryan/green-footprint/application/goal"
	homeapp "github.com/muhammadheryan/green-footprint/application/home"
	postapp "github.com/muhammadheryan/green-footprint/application/post"
	userapp "github.com/muhammadheryan/green-footprint/application/user"
	"github.com/muhammadheryan/green-footprint/constant"
	"github.com/muhammadheryan/green-footprint/model"
	utilsContext "github.com/muhammadheryan/green-footprint/utils/context"
	"github.com/muhammadheryan/green-footprint/utils/errors"
	"github.com/muhammadheryan/green-footprint/utils/ratelimit"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp     userapp.UserApp
	ActivityApp activityapp.ActivityApp
	GoalApp     goalapp.GoalApp
	PostApp     postapp.PostApp
	HomeApp     homeapp.HomeApp
}

// Options carries the transport concerns that are not application logic.
type Options struct {
	// Limiter guards the register and login routes. Nil disables rate limiting.
	Limiter ratelimit.Limiter
	// TrustedProxies lists the proxy IPs or CIDRs whose forwarding headers
	// identify the client for rate limiting.
	TrustedProxies []string
	// InternalAPIKey authenticates service-to-service calls under /internal.
	InternalAPIKey string
}

func NewTransport(rh *RestHandler, opts Options) http.Handler {
	mux := mux.NewRouter()
	mux.Use(RecoveryMiddleware(), LoggingMiddleware(), MetricsMiddleware())

	auth := AuthMiddleware(rh.UserApp)
	optional := OptionalAuthMiddleware(rh.UserApp)
	private := func(h http.HandlerFunc) http.Handler { return auth(h) }
	limited := func(h http.HandlerFunc) http.Handler { return h }
	if opts.Limiter != nil {
		limiter := RateLimitMiddleware(opts.Limiter, opts.TrustedProxies...)
		limited = func(h http.HandlerFunc) http.Handler { return limiter(h) }
	}

	// Swagger UI and operations
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	mux.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	mux.HandleFunc("/health", rh.Health).Methods(http.MethodGet)

	// Auth and users
	mux.Handle("/auth/register", limited(rh.Register)).Methods(http.MethodPost)
	mux.Handle("/auth/login", limited(rh.Login)).Methods(http.MethodPost)
	mux.Handle("/auth/profile", private(rh.GetProfile)).Methods(http.MethodGet)
	mux.Handle("/auth/profile", private(rh.UpdateProfile)).Methods(http.MethodPut)
	mux.Handle("/auth/password", private(rh.ChangePassword)).Methods(http.MethodPut)
	mux.Handle("/users/profile", private(rh.GetProfile)).Methods(http.MethodGet)
	mux.Handle("/users/profile", private(rh.UpdateProfile)).Methods(http.MethodPut)
	mux.HandleFunc("/users/{id:[0-9]+}", rh.GetPublicProfile).Methods(http.MethodGet)

	// Activities
	mux.Handle("/activities", private(rh.CreateActivity)).Methods(http.MethodPost)
	mux.Handle("/activities", private(rh.ListActivities)).Methods(http.MethodGet)
	mux.HandleFunc("/activities/public", rh.ListPublicActivities).Methods(http.MethodGet)
	mux.Handle("/activities/summary", private(rh.ActivitySummary)).Methods(http.MethodGet)
	mux.Handle("/activities/{id:[0-9]+}", private(rh.GetActivity)).Methods(http.MethodGet)
	mux.Handle("/activities/{id:[0-9]+}", private(rh.UpdateActivity)).Methods(http.MethodPut)
	mux.Handle("/activities/{id:[0-9]+}", private(rh.DeleteActivity)).Methods(http.MethodDelete)

	// Goals
	mux.Handle("/goals", private(rh.CreateGoal)).Methods(http.MethodPost)
	mux.Handle("/goals", private(rh.ListGoals)).Methods(http.MethodGet)
	mux.HandleFunc("/goals/public", rh.ListPublicGoals).Methods(http.MethodGet)
	mux.Handle("/goals/summary", private(rh.GoalSummary)).Methods(http.MethodGet)
	mux.Handle("/goals/{id:[0-9]+}", private(rh.GetGoal)).Methods(http.MethodGet)
	mux.Handle("/goals/{id:[0-9]+}", private(rh.UpdateGoal)).Methods(http.MethodPut)
	mux.Handle("/goals/{id:[0-9]+}", private(rh.DeleteGoal)).Methods(http.MethodDelete)
	mux.Handle("/goals/{id:[0-9]+}/progress", private(rh.AddGoalProgress)).Methods(http.MethodPost)
	mux.Handle("/goals/{id:[0-9]+}/progress", private(rh.ListGoalProgress)).Methods(http.MethodGet)

	// Posts
	mux.Handle("/posts", private(rh.CreatePost)).Methods(http.MethodPost)
	mux.Handle("/posts", private(rh.ListPosts)).Methods(http.MethodGet)
	mux.HandleFunc("/posts/public", rh.ListPublicPosts).Methods(http.MethodGet)
	mux.Handle("/posts/{id:[0-9]+}", optional(http.HandlerFunc(rh.GetPost))).Methods(http.MethodGet)
	mux.Handle("/posts/{id:[0-9]+}", private(rh.UpdatePost)).Methods(http.MethodPut)
	mux.Handle("/posts/{id:[0-9]+}", private(rh.DeletePost)).Methods(http.MethodDelete)

	// Home
	mux.Handle("/home/dashboard", private(rh.Dashboard)).Methods(http.MethodGet)
	mux.Handle("/home/stats", private(rh.Stats)).Methods(http.MethodGet)

	// Admin routes
	admin := mux.PathPrefix("/admin").Subrouter()
	admin.Use(auth, RequireRole(constant.RoleAdmin))
	admin.HandleFunc("/activities/{id:[0-9]+}/verification", rh.SetActivityVerification).Methods(http.MethodPut)

	// Internal routes
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(opts.InternalAPIKey))
	internal.HandleFunc("/goals/{id:[0-9]+}/expire", rh.ExpireGoal).Methods(http.MethodPost)

	return mux
}

// Health handler
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Register handler
// @Summary Register user
// @Description Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201 {object} model.RegisterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /auth/register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

// Login handler
// @Summary Login user
// @Description Login with email and password and receive a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /auth/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

type profileResponse struct {
	Message string            `json:"message,omitempty"`
	User    *model.UserEntity `json:"user"`
}

// GetProfile handler
// @Summary Current user profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} profileResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /auth/profile [get]
func (s *RestHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utilsContext.GetUserID(ctx)

	user, err := s.UserApp.GetProfile(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{User: user})
}

// UpdateProfile handler
// @Summary Update current user profile
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} profileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/profile [put]
func (s *RestHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utilsContext.GetUserID(ctx)

	var req model.UpdateProfileRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := s.UserApp.UpdateProfile(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{Message: "Profile updated successfully", User: user})
}

// ChangePassword handler
// @Summary Change password
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ChangePasswordRequest true "Passwords"
// @Success 200 {object} Response
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/password [put]
func (s *RestHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utilsContext.GetUserID(ctx)

	var req model.ChangePasswordRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.UserApp.ChangePassword(ctx, userID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "Password changed successfully", nil)
}

// GetPublicProfile handler
// @Summary Public user profile
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} Response{data=model.PublicProfile}
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [get]
func (s *RestHandler) GetPublicProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	profile, err := s.UserApp.GetPublicProfile(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "User profile retrieved successfully", profile)
}

// ExpireGoal handler
// @Summary Expire a goal whose deadline passed
// @Description Service-to-service endpoint called by the goal deadline consumer.
// @Tags Internal
// @Produce json
// @Param id path int true "Goal ID"
// @Success 200 {object} Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /internal/v1/goals/{id}/expire [post]
func (s *RestHandler) ExpireGoal(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.GoalApp.Expire(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "Goal expired", nil)
}

func requestUserID(r *http.Request) (uint64, error) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		return 0, errors.SetCustomError(constant.ErrUnauthorize)
	}
	return userID, nil
}
