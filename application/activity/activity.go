package activity

import (
	"context"
	"time"

	"github.com/muhammadheryan/green-footprint/constant"
	"github.com/muhammadheryan/green-footprint/model"
	activityrepo "github.com/muhammadheryan/green-footprint/repository/activity"
	"github.com/muhammadheryan/green-footprint/utils/aggregate"
	"github.com/muhammadheryan/green-footprint/utils/errors"
	"github.com/muhammadheryan/green-footprint/utils/logger"
	"go.uber.org/zap"
)

type ActivityApp interface {
	Create(ctx context.Context, userID uint64, req *model.CreateActivityRequest) (*model.Activity, error)
	// Get returns the activity when the caller owns it or it is public.
	Get(ctx context.Context, userID, id uint64) (*model.Activity, error)
	List(ctx context.Context, userID uint64, filter model.ListFilter) ([]model.Activity, *model.Pagination, error)
	ListPublic(ctx context.Context, filter model.ListFilter) ([]model.Activity, *model.Pagination, error)
	Update(ctx context.Context, userID, id uint64, req *model.UpdateActivityRequest) (*model.Activity, error)
	Delete(ctx context.Context, userID, id uint64) error
	Summary(ctx context.Context, userID uint64, filter model.ListFilter) (*model.Summary, error)
	SetVerification(ctx context.Context, id uint64, req *model.VerificationRequest) (*model.Activity, error)
}

type ActivityAppImpl struct {
	activityRepo activityrepo.ActivityRepository
	now          func() time.Time
}

func NewActivityApp(activityRepo activityrepo.ActivityRepository) ActivityApp {
	return &ActivityAppImpl{
		activityRepo: activityRepo,
		now:          time.Now,
	}
}

func (s *ActivityAppImpl) Create(ctx context.Context, userID uint64, req *model.CreateActivityRequest) (*model.Activity, error) {
	now := s.now().UTC()

	entity := &model.Activity{
		UserID:             userID,
		Type:               constant.ActivityType(req.Type),
		CustomType:         req.CustomType,
		Description:        req.Description,
		CarbonValue:        *req.CarbonValue,
		Date:               now,
		Location:           req.Location,
		Source:             req.Source,
		Tags:               model.NewTags(req.Tags),
		VerificationStatus: constant.VerificationPending,
		MediaURL:           req.MediaURL,
		Notes:              req.Notes,
		IsPublic:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if req.Date != nil {
		entity.Date = req.Date.UTC()
	}
	if req.IsPublic != nil {
		entity.IsPublic = *req.IsPublic
	}

	entity, err := s.activityRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateActivity] err activityRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *ActivityAppImpl) Get(ctx context.Context, userID, id uint64) (*model.Activity, error) {
	entity, err := s.activityRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[GetActivity] err activityRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil || (entity.UserID != userID && !entity.IsPublic) {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *ActivityAppImpl) List(ctx context.Context, userID uint64, filter model.ListFilter) ([]model.Activity, *model.Pagination, error) {
	items, total, err := s.activityRepo.List(ctx, userID, filter)
	if err != nil {
		logger.Error("[ListActivities] err activityRepo.List", zap.String("error", err.Error()))
		return nil, nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, model.NewPagination(filter, total), nil
}

func (s *ActivityAppImpl) ListPublic(ctx context.Context, filter model.ListFilter) ([]model.Activity, *model.Pagination, error) {
	items, total, err := s.activityRepo.ListPublic(ctx, filter)
	if err != nil {
		logger.Error("[ListPublicActivities] err activityRepo.ListPublic", zap.String("error", err.Error()))
		return nil, nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, model.NewPagination(filter, total), nil
}

func (s *ActivityAppImpl) Update(ctx context.Context, userID, id uint64, req *model.UpdateActivityRequest) (*model.Activity, error) {
	entity, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		entity.Type = constant.ActivityType(*req.Type)
	}
	if req.CustomType != nil {
		entity.CustomType = *req.CustomType
	}
	if req.Description != nil {
		entity.Description = *req.Description
	}
	if req.CarbonValue != nil {
		entity.CarbonValue = *req.CarbonValue
	}
	if req.Date != nil {
		entity.Date = req.Date.UTC()
	}
	if req.Location != nil {
		entity.Location = *req.Location
	}
	if req.Source != nil {
		entity.Source = *req.Source
	}
	if req.Tags != nil {
		entity.Tags = model.NewTags(req.Tags)
	}
	if req.MediaURL != nil {
		entity.MediaURL = *req.MediaURL
	}
	if req.Notes != nil {
		entity.Notes = *req.Notes
	}
	if req.IsPublic != nil {
		entity.IsPublic = *req.IsPublic
	}
	entity.UpdatedAt = s.now().UTC()

	updated, err := s.activityRepo.Update(ctx, entity)
	if err != nil {
		logger.Error("[UpdateActivity] err activityRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !updated {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *ActivityAppImpl) Delete(ctx context.Context, userID, id uint64) error {
	deleted, err := s.activityRepo.Delete(ctx, id, userID)
	if err != nil {
		logger.Error("[DeleteActivity] err activityRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

func (s *ActivityAppImpl) Summary(ctx context.Context, userID uint64, filter model.ListFilter) (*model.Summary, error) {
	items, err := s.activityRepo.ListAll(ctx, userID, filter)
	if err != nil {
		logger.Error("[ActivitySummary] err activityRepo.ListAll", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	summary := aggregate.Activities(items)
	return &summary, nil
}

func (s *ActivityAppImpl) SetVerification(ctx context.Context, id uint64, req *model.VerificationRequest) (*model.Activity, error) {
	updated, err := s.activityRepo.UpdateVerification(ctx, id, constant.VerificationStatus(req.Status))
	if err != nil {
		logger.Error("[SetVerification] err activityRepo.UpdateVerification", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !updated {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	entity, err := s.activityRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[SetVerification] err activityRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

// owned loads an activity for mutation. Someone else's activity is reported
// as missing.
func (s *ActivityAppImpl) owned(ctx context.Context, userID, id uint64) (*model.Activity, error) {
	entity, err := s.activityRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[owned] err activityRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil || entity.UserID != userID {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}
