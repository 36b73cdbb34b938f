package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	userapp "github.com/muhammadheryan/green-footprint/application/user"
	"github.com/muhammadheryan/green-footprint/constant"
	activityappmocks "github.com/muhammadheryan/green-footprint/mocks/application/activity"
	goalappmocks "github.com/muhammadheryan/green-footprint/mocks/application/goal"
	postappmocks "github.com/muhammadheryan/green-footprint/mocks/application/post"
	userappmocks "github.com/muhammadheryan/green-footprint/mocks/application/user"
	"github.com/muhammadheryan/green-footprint/model"
	userrepo "github.com/muhammadheryan/green-footprint/repository/user"
	"github.com/muhammadheryan/green-footprint/utils/errors"
	"github.com/muhammadheryan/green-footprint/utils/hasher"
	"github.com/muhammadheryan/green-footprint/utils/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memoryUsers is an in-memory user store for end-to-end transport tests.
type memoryUsers struct {
	mu    sync.Mutex
	users map[uint64]*model.UserEntity
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: make(map[uint64]*model.UserEntity)}
}

func (m *memoryUsers) Create(_ context.Context, u *model.UserEntity) (*model.UserEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return nil, userrepo.ErrDuplicateEmail
		}
	}
	u.ID = uint64(len(m.users) + 1)
	stored := *u
	m.users[u.ID] = &stored
	return u, nil
}

func (m *memoryUsers) Get(_ context.Context, f *model.UserFilter) (*model.UserEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if (f.ID != 0 && u.ID == f.ID) || (f.Email != "" && u.Email == f.Email) {
			found := *u
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memoryUsers) UpdateProfile(_ context.Context, id uint64, data *model.UserProfileUpdate) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return false, nil
	}
	if data.FirstName != nil {
		u.FirstName = *data.FirstName
	}
	if data.LastName != nil {
		u.LastName = *data.LastName
	}
	if data.Bio != nil {
		u.Bio = *data.Bio
	}
	return true, nil
}

func (m *memoryUsers) UpdatePassword(_ context.Context, id uint64, hash string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return false, nil
	}
	u.PasswordHash = hash
	return true, nil
}

func (m *memoryUsers) GetPublicProfile(_ context.Context, id uint64) (*model.PublicProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &model.PublicProfile{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Bio: u.Bio}, nil
}

func doJSON(t *testing.T, h http.Handler, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestTransport_AuthFlow(t *testing.T) {
	app := userapp.NewUserApp(newMemoryUsers(), hasher.NewBcrypt(bcrypt.MinCost), token.NewJWTManager("test-secret", time.Hour))
	h := NewTransport(&RestHandler{UserApp: app}, Options{})

	// register
	rec := doJSON(t, h, http.MethodPost, "/auth/register", "", map[string]string{
		"email": "alice@example.com", "password": "StrongPass1", "firstName": "Alice",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var registered model.RegisterResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&registered))
	assert.Equal(t, uint64(1), registered.UserID)

	// exact duplicate is rejected
	rec = doJSON(t, h, http.MethodPost, "/auth/register", "", map[string]string{
		"email": "alice@example.com", "password": "StrongPass1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrCredentialExists], decodeError(t, rec).Code)

	// emails are matched case-sensitively, so a different case is a new user
	rec = doJSON(t, h, http.MethodPost, "/auth/register", "", map[string]string{
		"email": "Alice@Example.com", "password": "OtherPass1",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var cased model.RegisterResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&cased))
	assert.NotEqual(t, registered.UserID, cased.UserID)

	// weak password carries field messages
	rec = doJSON(t, h, http.MethodPost, "/auth/register", "", map[string]string{
		"email": "bob@example.com", "password": "weak",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, decodeError(t, rec).Errors)

	// wrong password and unknown email look the same
	wrong := doJSON(t, h, http.MethodPost, "/auth/login", "", map[string]string{"email": "alice@example.com", "password": "WrongPass1"})
	unknown := doJSON(t, h, http.MethodPost, "/auth/login", "", map[string]string{"email": "nobody@example.com", "password": "WrongPass1"})
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, wrong.Code, unknown.Code)
	assert.Equal(t, wrong.Body.String(), unknown.Body.String())

	// login
	rec = doJSON(t, h, http.MethodPost, "/auth/login", "", map[string]string{"email": "alice@example.com", "password": "StrongPass1"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var login model.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&login))
	require.NotEmpty(t, login.Token)
	assert.NotContains(t, rec.Body.String(), "password")

	// profile with a good token
	rec = doJSON(t, h, http.MethodGet, "/auth/profile", login.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var profile profileResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&profile))
	assert.Equal(t, "alice@example.com", profile.User.Email)

	// profile without a token and with a garbled one
	rec = doJSON(t, h, http.MethodGet, "/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = doJSON(t, h, http.MethodGet, "/auth/profile", "not.a.token", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// password change keeps the old token valid
	rec = doJSON(t, h, http.MethodPut, "/auth/password", login.Token, map[string]string{
		"currentPassword": "StrongPass1", "newPassword": "EvenStronger2",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = doJSON(t, h, http.MethodGet, "/users/profile", login.Token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// old password no longer logs in, the new one does
	rec = doJSON(t, h, http.MethodPost, "/auth/login", "", map[string]string{"email": "alice@example.com", "password": "StrongPass1"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrInvalidCredentials], decodeError(t, rec).Code)
	rec = doJSON(t, h, http.MethodPost, "/auth/login", "", map[string]string{"email": "alice@example.com", "password": "EvenStronger2"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var relogin model.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&relogin))
	assert.NotEmpty(t, relogin.Token)

	// the differently cased account keeps its own password
	rec = doJSON(t, h, http.MethodPost, "/auth/login", "", map[string]string{"email": "Alice@Example.com", "password": "OtherPass1"})
	assert.Equal(t, http.StatusOK, rec.Code)

	// public profile
	rec = doJSON(t, h, http.MethodGet, "/users/1", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "alice@example.com")
}

type routeFields struct {
	userApp     *userappmocks.UserApp
	activityApp *activityappmocks.ActivityApp
	goalApp     *goalappmocks.GoalApp
	postApp     *postappmocks.PostApp
}

func newRouteFields(t *testing.T) (routeFields, http.Handler) {
	f := routeFields{
		userApp:     userappmocks.NewUserApp(t),
		activityApp: activityappmocks.NewActivityApp(t),
		goalApp:     goalappmocks.NewGoalApp(t),
		postApp:     postappmocks.NewPostApp(t),
	}
	f.userApp.On("ValidateToken", mock.Anything, "user-token").Return(&model.TokenPayload{UserID: 5, Role: constant.RoleUser}, nil).Maybe()
	f.userApp.On("ValidateToken", mock.Anything, "admin-token").Return(&model.TokenPayload{UserID: 1, Role: constant.RoleAdmin}, nil).Maybe()

	h := NewTransport(&RestHandler{
		UserApp:     f.userApp,
		ActivityApp: f.activityApp,
		GoalApp:     f.goalApp,
		PostApp:     f.postApp,
	}, Options{InternalAPIKey: "internal-key"})
	return f, h
}

func TestTransport_Routes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		bearer     string
		body       any
		mockCall   func(f routeFields)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "list own activities with filter",
			method: http.MethodGet,
			path:   "/activities?type=food&tags=bike&page=1&limit=5",
			bearer: "user-token",
			mockCall: func(f routeFields) {
				f.activityApp.On("List", mock.Anything, uint64(5), model.ListFilter{
					Type: "FOOD", Tags: model.Tags{"bike"}, Page: 1, Limit: 5,
				}).Return(nil, &model.Pagination{Page: 1, Limit: 5, Total: 0}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"Activities retrieved successfully","data":[],"pagination":{"page":1,"limit":5,"total":0}}`,
		},
		{
			name:       "bad filter is rejected before the app",
			method:     http.MethodGet,
			path:       "/activities?startDate=soon",
			bearer:     "user-token",
			mockCall:   func(f routeFields) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "private route without token",
			method:     http.MethodGet,
			path:       "/activities",
			mockCall:   func(f routeFields) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "public activities need no token",
			method: http.MethodGet,
			path:   "/activities/public",
			mockCall: func(f routeFields) {
				f.activityApp.On("ListPublic", mock.Anything, model.ListFilter{}).
					Return([]model.Activity{{ID: 1, IsPublic: true}}, &model.Pagination{Limit: 10, Total: 1}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "activity not found",
			method: http.MethodGet,
			path:   "/activities/99",
			bearer: "user-token",
			mockCall: func(f routeFields) {
				f.activityApp.On("Get", mock.Anything, uint64(5), uint64(99)).Return(nil, errors.SetCustomError(constant.ErrNotFound)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"code":"0002","message":"Resource not found"}`,
		},
		{
			name:   "create activity validates body",
			method: http.MethodPost,
			path:   "/activities",
			bearer: "user-token",
			body:   map[string]any{"type": "PLANE"},
			mockCall: func(f routeFields) {
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "create activity",
			method: http.MethodPost,
			path:   "/activities",
			bearer: "user-token",
			body:   map[string]any{"type": "FOOD", "carbonValue": 1.5},
			mockCall: func(f routeFields) {
				f.activityApp.On("Create", mock.Anything, uint64(5), mock.MatchedBy(func(req *model.CreateActivityRequest) bool {
					return req.Type == "FOOD" && *req.CarbonValue == 1.5
				})).Return(&model.Activity{ID: 8}, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "verification needs admin",
			method:     http.MethodPut,
			path:       "/admin/activities/3/verification",
			bearer:     "user-token",
			body:       map[string]string{"status": "VERIFIED"},
			mockCall:   func(f routeFields) {},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "verification as admin",
			method: http.MethodPut,
			path:   "/admin/activities/3/verification",
			bearer: "admin-token",
			body:   map[string]string{"status": "VERIFIED"},
			mockCall: func(f routeFields) {
				f.activityApp.On("SetVerification", mock.Anything, uint64(3), &model.VerificationRequest{Status: "VERIFIED"}).
					Return(&model.Activity{ID: 3, VerificationStatus: constant.VerificationVerified}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "goal list accepts aliases",
			method: http.MethodGet,
			path:   "/goals?category=energy&isActive=true",
			bearer: "user-token",
			mockCall: func(f routeFields) {
				f.goalApp.On("List", mock.Anything, uint64(5), model.GoalFilter{
					ListFilter: model.ListFilter{Type: "ENERGY"}, IsActive: ptr(true),
				}).Return([]model.Goal{}, &model.Pagination{Limit: 10}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "goal progress",
			method: http.MethodPost,
			path:   "/goals/4/progress",
			bearer: "user-token",
			body:   map[string]any{"value": 2},
			mockCall: func(f routeFields) {
				f.goalApp.On("AddProgress", mock.Anything, uint64(5), uint64(4), mock.Anything).Return(&model.GoalProgress{ID: 1, GoalID: 4, Value: 2}, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:   "anonymous post read",
			method: http.MethodGet,
			path:   "/posts/7",
			mockCall: func(f routeFields) {
				f.postApp.On("Get", mock.Anything, uint64(0), uint64(7)).Return(&model.Post{ID: 7, IsPublic: true}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "authenticated post read",
			method: http.MethodGet,
			path:   "/posts/7",
			bearer: "user-token",
			mockCall: func(f routeFields) {
				f.postApp.On("Get", mock.Anything, uint64(5), uint64(7)).Return(&model.Post{ID: 7, AuthorID: 5}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "post update needs token",
			method:     http.MethodPut,
			path:       "/posts/7",
			body:       map[string]string{"title": "x"},
			mockCall:   func(f routeFields) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "internal expire",
			method: http.MethodPost,
			path:   "/internal/v1/goals/4/expire",
			bearer: "internal-key",
			mockCall: func(f routeFields) {
				f.goalApp.On("Expire", mock.Anything, uint64(4)).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "internal expire with user token",
			method:     http.MethodPost,
			path:       "/internal/v1/goals/4/expire",
			bearer:     "user-token",
			mockCall:   func(f routeFields) {},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "health",
			method:     http.MethodGet,
			path:       "/health",
			mockCall:   func(f routeFields) {},
			wantStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, h := newRouteFields(t)
			tt.mockCall(f)

			rec := doJSON(t, h, tt.method, tt.path, tt.bearer, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, strings.TrimSpace(rec.Body.String()))
			}
		})
	}
}
