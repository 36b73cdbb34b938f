package activity_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appactivity "github.com/muhammadheryan/green-footprint/application/activity"
	"github.com/muhammadheryan/green-footprint/constant"
	activitymocks "github.com/muhammadheryan/green-footprint/mocks/repository/activity"
	"github.com/muhammadheryan/green-footprint/model"
	cerr "github.com/muhammadheryan/green-footprint/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func assertErrType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce), "error type = %T, want CustomError", err)
	assert.Equal(t, want, ce.ErrorType())
}

func TestActivityApp_Create(t *testing.T) {
	day := time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		req      *model.CreateActivityRequest
		mockCall func(repo *activitymocks.ActivityRepository)
		check    func(t *testing.T, got *model.Activity)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: defaults applied",
			req:  &model.CreateActivityRequest{Type: "FOOD", CarbonValue: ptr(2.5)},
			mockCall: func(repo *activitymocks.ActivityRepository) {
				repo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Activity) bool {
					return a.UserID == 5 &&
						a.Type == constant.ActivityTypeFood &&
						a.IsPublic &&
						a.VerificationStatus == constant.VerificationPending &&
						a.Tags != nil && len(a.Tags) == 0 &&
						!a.Date.IsZero()
				})).Return(func(_ context.Context, a *model.Activity) (*model.Activity, error) {
					a.ID = 1
					return a, nil
				}).Once()
			},
			check: func(t *testing.T, got *model.Activity) {
				assert.Equal(t, uint64(1), got.ID)
			},
		},
		{
			name: "success: explicit values kept",
			req: &model.CreateActivityRequest{
				Type:        "TRANSPORTATION",
				CarbonValue: ptr(0.0),
				Date:        &day,
				Tags:        []string{"bike", "bike", "commute"},
				IsPublic:    ptr(false),
			},
			mockCall: func(repo *activitymocks.ActivityRepository) {
				repo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Activity) bool {
					return !a.IsPublic && a.Date.Equal(day) && len(a.Tags) == 2
				})).Return(func(_ context.Context, a *model.Activity) (*model.Activity, error) {
					return a, nil
				}).Once()
			},
			check: func(t *testing.T, got *model.Activity) {
				assert.Equal(t, model.Tags{"bike", "commute"}, got.Tags)
			},
		},
		{
			name: "error: repository failure",
			req:  &model.CreateActivityRequest{Type: "FOOD", CarbonValue: ptr(1.0)},
			mockCall: func(repo *activitymocks.ActivityRepository) {
				repo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := activitymocks.NewActivityRepository(t)
			tt.mockCall(repo)

			got, err := appactivity.NewActivityApp(repo).Create(context.Background(), 5, tt.req)
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestActivityApp_Get(t *testing.T) {
	tests := []struct {
		name    string
		stored  *model.Activity
		wantErr bool
	}{
		{name: "owner sees private activity", stored: &model.Activity{ID: 1, UserID: 5, IsPublic: false}},
		{name: "anyone sees public activity", stored: &model.Activity{ID: 1, UserID: 9, IsPublic: true}},
		{name: "private activity of another user is hidden", stored: &model.Activity{ID: 1, UserID: 9, IsPublic: false}, wantErr: true},
		{name: "missing or deleted", stored: nil, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := activitymocks.NewActivityRepository(t)
			repo.On("Get", mock.Anything, uint64(1)).Return(tt.stored, nil).Once()

			got, err := appactivity.NewActivityApp(repo).Get(context.Background(), 5, 1)
			if tt.wantErr {
				assertErrType(t, err, constant.ErrNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.stored, got)
		})
	}
}

func TestActivityApp_List(t *testing.T) {
	repo := activitymocks.NewActivityRepository(t)
	filter := model.ListFilter{Type: "FOOD", Page: 1, Limit: 500}
	repo.On("List", mock.Anything, uint64(5), filter).Return([]model.Activity{{ID: 1}}, int64(101), nil).Once()

	items, page, err := appactivity.NewActivityApp(repo).List(context.Background(), 5, filter)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, &model.Pagination{Page: 1, Limit: model.MaxPageLimit, Total: 101}, page)
}

func TestActivityApp_Update(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(repo *activitymocks.ActivityRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: partial update keeps other fields",
			mockCall: func(repo *activitymocks.ActivityRepository) {
				repo.On("Get", mock.Anything, uint64(1)).
					Return(&model.Activity{ID: 1, UserID: 5, Type: constant.ActivityTypeFood, CarbonValue: 2, Description: "lunch"}, nil).Once()
				repo.On("Update", mock.Anything, mock.MatchedBy(func(a *model.Activity) bool {
					return a.CarbonValue == 4 && a.Description == "lunch" && a.Type == constant.ActivityTypeFood
				})).Return(true, nil).Once()
			},
		},
		{
			name: "error: not the owner",
			mockCall: func(repo *activitymocks.ActivityRepository) {
				repo.On("Get", mock.Anything, uint64(1)).Return(&model.Activity{ID: 1, UserID: 9, IsPublic: true}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: deleted between read and write",
			mockCall: func(repo *activitymocks.ActivityRepository) {
				repo.On("Get", mock.Anything, uint64(1)).Return(&model.Activity{ID: 1, UserID: 5}, nil).Once()
				repo.On("Update", mock.Anything, mock.Anything).Return(false, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := activitymocks.NewActivityRepository(t)
			tt.mockCall(repo)

			got, err := appactivity.NewActivityApp(repo).Update(context.Background(), 5, 1, &model.UpdateActivityRequest{CarbonValue: ptr(4.0)})
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 4.0, got.CarbonValue)
			assert.False(t, got.UpdatedAt.IsZero())
		})
	}
}

func TestActivityApp_Delete(t *testing.T) {
	repo := activitymocks.NewActivityRepository(t)
	repo.On("Delete", mock.Anything, uint64(1), uint64(5)).Return(true, nil).Once()
	repo.On("Delete", mock.Anything, uint64(2), uint64(5)).Return(false, nil).Once()
	app := appactivity.NewActivityApp(repo)

	require.NoError(t, app.Delete(context.Background(), 5, 1))
	assertErrType(t, app.Delete(context.Background(), 5, 2), constant.ErrNotFound)
}

func TestActivityApp_Summary(t *testing.T) {
	repo := activitymocks.NewActivityRepository(t)
	repo.On("ListAll", mock.Anything, uint64(5), model.ListFilter{}).Return([]model.Activity{
		{Type: "A", CarbonValue: 10},
		{Type: "B", CarbonValue: 5},
	}, nil).Once()

	got, err := appactivity.NewActivityApp(repo).Summary(context.Background(), 5, model.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 15.0, got.Total)
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, 7.5, got.Average)
	assert.Equal(t, map[string]model.GroupTotal{"A": {Count: 1, Total: 10}, "B": {Count: 1, Total: 5}}, got.ByGroup)
}

func TestActivityApp_SetVerification(t *testing.T) {
	repo := activitymocks.NewActivityRepository(t)
	repo.On("UpdateVerification", mock.Anything, uint64(1), constant.VerificationVerified).Return(true, nil).Once()
	repo.On("Get", mock.Anything, uint64(1)).Return(&model.Activity{ID: 1, VerificationStatus: constant.VerificationVerified}, nil).Once()
	repo.On("UpdateVerification", mock.Anything, uint64(2), constant.VerificationRejected).Return(false, nil).Once()
	app := appactivity.NewActivityApp(repo)

	got, err := app.SetVerification(context.Background(), 1, &model.VerificationRequest{Status: "VERIFIED"})
	require.NoError(t, err)
	assert.Equal(t, constant.VerificationVerified, got.VerificationStatus)

	_, err = app.SetVerification(context.Background(), 2, &model.VerificationRequest{Status: "REJECTED"})
	assertErrType(t, err, constant.ErrNotFound)
}
