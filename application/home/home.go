package home

import (
	"context"
	"time"

	"github.com/muhammadheryan/green-footprint/constant"
	"github.com/muhammadheryan/green-footprint/model"
	activityrepo "github.com/muhammadheryan/green-footprint/repository/activity"
	goalrepo "github.com/muhammadheryan/green-footprint/repository/goal"
	userrepo "github.com/muhammadheryan/green-footprint/repository/user"
	"github.com/muhammadheryan/green-footprint/utils/aggregate"
	"github.com/muhammadheryan/green-footprint/utils/errors"
	"github.com/muhammadheryan/green-footprint/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	recentActivitiesLimit = 5
	activeGoalsLimit      = 5
)

type HomeApp interface {
	Dashboard(ctx context.Context, userID uint64) (*model.Dashboard, error)
	// Stats summarizes activities between start and end. A nil start means the
	// first day of the current month, a nil end means now.
	Stats(ctx context.Context, userID uint64, start, end *time.Time) (*model.Stats, error)
}

type HomeAppImpl struct {
	userRepo     userrepo.UserRepository
	activityRepo activityrepo.ActivityRepository
	goalRepo     goalrepo.GoalRepository
	now          func() time.Time
}

func NewHomeApp(userRepo userrepo.UserRepository, activityRepo activityrepo.ActivityRepository, goalRepo goalrepo.GoalRepository) HomeApp {
	return &HomeAppImpl{
		userRepo:     userRepo,
		activityRepo: activityRepo,
		goalRepo:     goalRepo,
		now:          time.Now,
	}
}

func (s *HomeAppImpl) Dashboard(ctx context.Context, userID uint64) (*model.Dashboard, error) {
	now := s.now().UTC()
	monthStart := startOfMonth(now)

	var (
		user    *model.UserEntity
		recent  []model.Activity
		active  []model.Goal
		monthly []model.Activity
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		user, err = s.userRepo.Get(gctx, &model.UserFilter{ID: userID})
		if err != nil {
			logger.Error("[Dashboard] err userRepo.Get", zap.String("error", err.Error()))
		}
		return err
	})
	g.Go(func() (err error) {
		recent, _, err = s.activityRepo.List(gctx, userID, model.ListFilter{Limit: recentActivitiesLimit})
		if err != nil {
			logger.Error("[Dashboard] err activityRepo.List", zap.String("error", err.Error()))
		}
		return err
	})
	g.Go(func() (err error) {
		active, err = s.goalRepo.ListActive(gctx, userID, activeGoalsLimit)
		if err != nil {
			logger.Error("[Dashboard] err goalRepo.ListActive", zap.String("error", err.Error()))
		}
		return err
	})
	g.Go(func() (err error) {
		monthly, err = s.activityRepo.ListAll(gctx, userID, model.ListFilter{StartDate: &monthStart})
		if err != nil {
			logger.Error("[Dashboard] err activityRepo.ListAll", zap.String("error", err.Error()))
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	summary := aggregate.Activities(monthly)
	if recent == nil {
		recent = []model.Activity{}
	}
	if active == nil {
		active = []model.Goal{}
	}

	return &model.Dashboard{
		User:             user,
		RecentActivities: recent,
		ActiveGoals:      active,
		MonthlyStats: model.MonthlyStats{
			TotalCarbon:   summary.Total,
			ActivityCount: summary.Count,
		},
	}, nil
}

func (s *HomeAppImpl) Stats(ctx context.Context, userID uint64, start, end *time.Time) (*model.Stats, error) {
	now := s.now().UTC()
	rng := model.DateRange{StartDate: startOfMonth(now), EndDate: now}
	if start != nil {
		rng.StartDate = start.UTC()
	}
	if end != nil {
		rng.EndDate = end.UTC()
	}
	if rng.EndDate.Before(rng.StartDate) {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	activities, err := s.activityRepo.ListAll(ctx, userID, model.ListFilter{StartDate: &rng.StartDate, EndDate: &rng.EndDate})
	if err != nil {
		logger.Error("[Stats] err activityRepo.ListAll", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	goals, err := s.goalRepo.ListAll(ctx, userID, model.GoalFilter{})
	if err != nil {
		logger.Error("[Stats] err goalRepo.ListAll", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.Stats{
		Activities: aggregate.Activities(activities),
		Goals:      aggregate.Goals(goals),
		DateRange:  rng,
	}, nil
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
