package goal

import (
	"context"
	"time"

	"github.com/muhammadheryan/green-footprint/constant"
	"github.com/muhammadheryan/green-footprint/model"
	goalrepo "github.com/muhammadheryan/green-footprint/repository/goal"
	txrepo "github.com/muhammadheryan/green-footprint/repository/tx"
	"github.com/muhammadheryan/green-footprint/thirdparty/rabbitmq"
	"github.com/muhammadheryan/green-footprint/utils/aggregate"
	"github.com/muhammadheryan/green-footprint/utils/errors"
	"github.com/muhammadheryan/green-footprint/utils/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type GoalApp interface {
	Create(ctx context.Context, userID uint64, req *model.CreateGoalRequest) (*model.Goal, error)
	// Get returns the goal with its latest progress entries when the caller owns it or it is public.
	Get(ctx context.Context, userID, id uint64) (*model.Goal, error)
	List(ctx context.Context, userID uint64, filter model.GoalFilter) ([]model.Goal, *model.Pagination, error)
	ListPublic(ctx context.Context, filter model.GoalFilter) ([]model.Goal, *model.Pagination, error)
	Update(ctx context.Context, userID, id uint64, req *model.UpdateGoalRequest) (*model.Goal, error)
	Delete(ctx context.Context, userID, id uint64) error
	AddProgress(ctx context.Context, userID, id uint64, req *model.GoalProgressRequest) (*model.GoalProgress, error)
	ListProgress(ctx context.Context, userID, id uint64) ([]model.GoalProgress, error)
	Summary(ctx context.Context, userID uint64) (*model.GoalSummary, error)
	// Expire deactivates a goal whose deadline passed before it was completed.
	Expire(ctx context.Context, id uint64) error
}

type GoalAppImpl struct {
	txRepo    txrepo.TxRepository
	goalRepo  goalrepo.GoalRepository
	publisher rabbitmq.DeadlinePublisher
	now       func() time.Time
}

// NewGoalApp builds the goal application. publisher may be nil, in which case
// deadlines are not scheduled.
func NewGoalApp(txRepo txrepo.TxRepository, goalRepo goalrepo.GoalRepository, publisher rabbitmq.DeadlinePublisher) GoalApp {
	return &GoalAppImpl{
		txRepo:    txRepo,
		goalRepo:  goalRepo,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *GoalAppImpl) Create(ctx context.Context, userID uint64, req *model.CreateGoalRequest) (*model.Goal, error) {
	now := s.now().UTC()

	entity := &model.Goal{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    constant.GoalCategory(req.Category),
		TargetValue: *req.TargetValue,
		Deadline:    req.Deadline.UTC(),
		IsActive:    true,
		Notes:       req.Notes,
		Recurring:   constant.GoalRecurringNone,
		Tags:        model.NewTags(req.Tags),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Recurring != "" {
		entity.Recurring = constant.GoalRecurring(req.Recurring)
	}
	if req.IsPublic != nil {
		entity.IsPublic = *req.IsPublic
	}

	entity, err := s.goalRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateGoal] err goalRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.scheduleDeadline(ctx, entity)
	return entity, nil
}

func (s *GoalAppImpl) Get(ctx context.Context, userID, id uint64) (*model.Goal, error) {
	entity, err := s.goalRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[GetGoal] err goalRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil || (entity.UserID != userID && !entity.IsPublic) {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	history, err := s.goalRepo.ListProgress(ctx, id, constant.GoalProgressHistoryLimit)
	if err != nil {
		logger.Error("[GetGoal] err goalRepo.ListProgress", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	entity.ProgressHistory = history
	return entity, nil
}

func (s *GoalAppImpl) List(ctx context.Context, userID uint64, filter model.GoalFilter) ([]model.Goal, *model.Pagination, error) {
	items, total, err := s.goalRepo.List(ctx, userID, filter)
	if err != nil {
		logger.Error("[ListGoals] err goalRepo.List", zap.String("error", err.Error()))
		return nil, nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, model.NewPagination(filter.ListFilter, total), nil
}

func (s *GoalAppImpl) ListPublic(ctx context.Context, filter model.GoalFilter) ([]model.Goal, *model.Pagination, error) {
	items, total, err := s.goalRepo.ListPublic(ctx, filter)
	if err != nil {
		logger.Error("[ListPublicGoals] err goalRepo.ListPublic", zap.String("error", err.Error()))
		return nil, nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, model.NewPagination(filter.ListFilter, total), nil
}

func (s *GoalAppImpl) Update(ctx context.Context, userID, id uint64, req *model.UpdateGoalRequest) (*model.Goal, error) {
	entity, err := s.goalRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[UpdateGoal] err goalRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil || entity.UserID != userID {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	deadlineChanged := req.Deadline != nil && !req.Deadline.Equal(entity.Deadline)

	if req.Title != nil {
		entity.Title = *req.Title
	}
	if req.TargetValue != nil {
		entity.TargetValue = *req.TargetValue
	}
	if req.Deadline != nil {
		entity.Deadline = req.Deadline.UTC()
	}
	if req.Description != nil {
		entity.Description = *req.Description
	}
	if req.Category != nil {
		entity.Category = constant.GoalCategory(*req.Category)
	}
	if req.Notes != nil {
		entity.Notes = *req.Notes
	}
	if req.Recurring != nil {
		entity.Recurring = constant.GoalRecurring(*req.Recurring)
	}
	if req.IsActive != nil {
		entity.IsActive = *req.IsActive
	}
	if req.Tags != nil {
		entity.Tags = model.NewTags(req.Tags)
	}
	if req.IsPublic != nil {
		entity.IsPublic = *req.IsPublic
	}
	entity.UpdatedAt = s.now().UTC()

	updated, err := s.goalRepo.Update(ctx, entity)
	if err != nil {
		logger.Error("[UpdateGoal] err goalRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !updated {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if deadlineChanged {
		s.scheduleDeadline(ctx, entity)
	}
	return entity, nil
}

func (s *GoalAppImpl) Delete(ctx context.Context, userID, id uint64) error {
	deleted, err := s.goalRepo.Delete(ctx, id, userID)
	if err != nil {
		logger.Error("[DeleteGoal] err goalRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

// AddProgress records an entry and moves the goal's current value in one
// transaction, with the goal row locked so concurrent entries add up.
func (s *GoalAppImpl) AddProgress(ctx context.Context, userID, id uint64, req *model.GoalProgressRequest) (*model.GoalProgress, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[AddProgress] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	goal, err := s.goalRepo.GetForUpdateTx(ctx, tx, id, userID)
	if err != nil {
		logger.Error("[AddProgress] get goal", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if goal == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	now := s.now().UTC()
	progress := &model.GoalProgress{
		GoalID:    id,
		Value:     *req.Value,
		Date:      now,
		CreatedAt: now,
	}
	if req.Date != nil {
		progress.Date = req.Date.UTC()
	}

	progress.ID, err = s.goalRepo.InsertProgressTx(ctx, tx, progress)
	if err != nil {
		logger.Error("[AddProgress] insert progress", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	current, _ := decimal.NewFromFloat(goal.CurrentValue).Add(decimal.NewFromFloat(progress.Value)).Float64()
	update := &model.GoalProgressUpdate{CurrentValue: current}
	if current >= goal.TargetValue {
		update.CompletionDate = goal.CompletionDate
		if update.CompletionDate == nil {
			update.CompletionDate = &now
		}
	}

	if err := s.goalRepo.UpdateProgressTx(ctx, tx, id, update); err != nil {
		logger.Error("[AddProgress] update goal", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[AddProgress] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return progress, nil
}

func (s *GoalAppImpl) ListProgress(ctx context.Context, userID, id uint64) ([]model.GoalProgress, error) {
	goal, err := s.goalRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[ListProgress] err goalRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if goal == nil || goal.UserID != userID {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	items, err := s.goalRepo.ListProgress(ctx, id, 0)
	if err != nil {
		logger.Error("[ListProgress] err goalRepo.ListProgress", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *GoalAppImpl) Summary(ctx context.Context, userID uint64) (*model.GoalSummary, error) {
	goals, err := s.goalRepo.ListAll(ctx, userID, model.GoalFilter{})
	if err != nil {
		logger.Error("[GoalSummary] err goalRepo.ListAll", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	summary := aggregate.Goals(goals)
	return &summary, nil
}

func (s *GoalAppImpl) Expire(ctx context.Context, id uint64) error {
	expired, err := s.goalRepo.Deactivate(ctx, id, s.now().UTC())
	if err != nil {
		logger.Error("[ExpireGoal] err goalRepo.Deactivate", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !expired {
		logger.Info("[ExpireGoal] goal not eligible", zap.Uint64("goal_id", id))
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

// scheduleDeadline is best effort; the goal is already stored.
func (s *GoalAppImpl) scheduleDeadline(ctx context.Context, goal *model.Goal) {
	if s.publisher == nil {
		return
	}
	msg := rabbitmq.GoalDeadlineMessage{
		GoalID:   goal.ID,
		UserID:   goal.UserID,
		Deadline: goal.Deadline,
	}
	if err := s.publisher.PublishGoalDeadline(ctx, msg); err != nil {
		logger.Error("[scheduleDeadline] publish goal deadline", zap.String("error", err.Error()))
	}
}
