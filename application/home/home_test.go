package home

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/muhammadheryan/green-footprint/constant"
	activitymocks "github.com/muhammadheryan/green-footprint/mocks/repository/activity"
	goalmocks "github.com/muhammadheryan/green-footprint/mocks/repository/goal"
	usermocks "github.com/muhammadheryan/green-footprint/mocks/repository/user"
	"github.com/muhammadheryan/green-footprint/model"
	cerr "github.com/muhammadheryan/green-footprint/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	userRepo     *usermocks.UserRepository
	activityRepo *activitymocks.ActivityRepository
	goalRepo     *goalmocks.GoalRepository
}

var fixedNow = time.Date(2024, 5, 17, 13, 30, 0, 0, time.UTC)

func newApp(t *testing.T) (*HomeAppImpl, fields) {
	f := fields{
		userRepo:     usermocks.NewUserRepository(t),
		activityRepo: activitymocks.NewActivityRepository(t),
		goalRepo:     goalmocks.NewGoalRepository(t),
	}
	app := NewHomeApp(f.userRepo, f.activityRepo, f.goalRepo).(*HomeAppImpl)
	app.now = func() time.Time { return fixedNow }
	return app, f
}

func assertErrType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce), "error type = %T, want CustomError", err)
	assert.Equal(t, want, ce.ErrorType())
}

func TestHomeApp_Dashboard(t *testing.T) {
	monthStart := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
		check    func(t *testing.T, got *model.Dashboard)
	}{
		{
			name: "success",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 3}).Return(&model.UserEntity{ID: 3, FirstName: "Alice"}, nil).Once()
				f.activityRepo.On("List", mock.Anything, uint64(3), model.ListFilter{Limit: recentActivitiesLimit}).
					Return([]model.Activity{{ID: 1}, {ID: 2}}, int64(9), nil).Once()
				f.goalRepo.On("ListActive", mock.Anything, uint64(3), activeGoalsLimit).Return(nil, nil).Once()
				f.activityRepo.On("ListAll", mock.Anything, uint64(3), model.ListFilter{StartDate: &monthStart}).
					Return([]model.Activity{{CarbonValue: 1.2}, {CarbonValue: 3.4}}, nil).Once()
			},
			check: func(t *testing.T, got *model.Dashboard) {
				assert.Equal(t, "Alice", got.User.FirstName)
				assert.Len(t, got.RecentActivities, 2)
				assert.NotNil(t, got.ActiveGoals)
				assert.Empty(t, got.ActiveGoals)
				assert.Equal(t, model.MonthlyStats{TotalCarbon: 4.6, ActivityCount: 2}, got.MonthlyStats)
			},
		},
		{
			name: "error: repository failure",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(&model.UserEntity{ID: 3}, nil).Maybe()
				f.activityRepo.On("List", mock.Anything, mock.Anything, mock.Anything).Return(nil, int64(0), errors.New("db down")).Once()
				f.goalRepo.On("ListActive", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()
				f.activityRepo.On("ListAll", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: user gone",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Once()
				f.activityRepo.On("List", mock.Anything, mock.Anything, mock.Anything).Return(nil, int64(0), nil).Once()
				f.goalRepo.On("ListActive", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()
				f.activityRepo.On("ListAll", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, f := newApp(t)
			tt.mockCall(f)

			got, err := app.Dashboard(context.Background(), 3)
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestHomeApp_Stats(t *testing.T) {
	t.Run("defaults to month to date", func(t *testing.T) {
		app, f := newApp(t)
		monthStart := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		f.activityRepo.On("ListAll", mock.Anything, uint64(3), model.ListFilter{StartDate: &monthStart, EndDate: &fixedNow}).
			Return([]model.Activity{
				{Type: constant.ActivityTypeFood, CarbonValue: 2},
				{Type: constant.ActivityTypeFood, CarbonValue: 4},
			}, nil).Once()
		f.goalRepo.On("ListAll", mock.Anything, uint64(3), model.GoalFilter{}).
			Return([]model.Goal{{IsActive: true, CurrentValue: 5}}, nil).Once()

		got, err := app.Stats(context.Background(), 3, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, monthStart, got.DateRange.StartDate)
		assert.Equal(t, fixedNow, got.DateRange.EndDate)
		assert.Equal(t, 6.0, got.Activities.Total)
		assert.Equal(t, 3.0, got.Activities.Average)
		assert.Equal(t, model.GroupTotal{Count: 2, Total: 6}, got.Activities.ByGroup["FOOD"])
		assert.Equal(t, 1, got.Goals.ActiveGoals)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		app, _ := newApp(t)
		start := fixedNow
		end := fixedNow.Add(-time.Hour)

		_, err := app.Stats(context.Background(), 3, &start, &end)
		assertErrType(t, err, constant.ErrInvalidRequest)
	})

	t.Run("repository failure", func(t *testing.T) {
		app, f := newApp(t)
		f.activityRepo.On("ListAll", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

		_, err := app.Stats(context.Background(), 3, nil, nil)
		assertErrType(t, err, constant.ErrInternal)
	})
}
