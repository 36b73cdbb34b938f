package post

import (
	"context"
	"time"

	"github.com/muhammadheryan/green-footprint/constant"
	"github.com/muhammadheryan/green-footprint/model"
	postrepo "github.com/muhammadheryan/green-footprint/repository/post"
	"github.com/muhammadheryan/green-footprint/utils/errors"
	"github.com/muhammadheryan/green-footprint/utils/logger"
	"go.uber.org/zap"
)

type PostApp interface {
	Create(ctx context.Context, authorID uint64, req *model.CreatePostRequest) (*model.Post, error)
	// Get returns the post when it is public or viewerID is its author. viewerID 0 is an anonymous caller.
	Get(ctx context.Context, viewerID, id uint64) (*model.Post, error)
	List(ctx context.Context, authorID uint64, filter model.ListFilter) ([]model.Post, *model.Pagination, error)
	ListPublic(ctx context.Context, filter model.ListFilter) ([]model.Post, *model.Pagination, error)
	Update(ctx context.Context, authorID, id uint64, req *model.UpdatePostRequest) (*model.Post, error)
	Delete(ctx context.Context, authorID, id uint64) error
}

type PostAppImpl struct {
	postRepo postrepo.PostRepository
	now      func() time.Time
}

func NewPostApp(postRepo postrepo.PostRepository) PostApp {
	return &PostAppImpl{
		postRepo: postRepo,
		now:      time.Now,
	}
}

func (s *PostAppImpl) Create(ctx context.Context, authorID uint64, req *model.CreatePostRequest) (*model.Post, error) {
	now := s.now().UTC()

	entity := &model.Post{
		AuthorID:  authorID,
		Title:     req.Title,
		Content:   req.Content,
		Tags:      model.NewTags(req.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.IsPublic != nil {
		entity.IsPublic = *req.IsPublic
	}

	entity, err := s.postRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreatePost] err postRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *PostAppImpl) Get(ctx context.Context, viewerID, id uint64) (*model.Post, error) {
	entity, err := s.postRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[GetPost] err postRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil || (!entity.IsPublic && (viewerID == 0 || entity.AuthorID != viewerID)) {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *PostAppImpl) List(ctx context.Context, authorID uint64, filter model.ListFilter) ([]model.Post, *model.Pagination, error) {
	items, total, err := s.postRepo.List(ctx, authorID, filter)
	if err != nil {
		logger.Error("[ListPosts] err postRepo.List", zap.String("error", err.Error()))
		return nil, nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, model.NewPagination(filter, total), nil
}

func (s *PostAppImpl) ListPublic(ctx context.Context, filter model.ListFilter) ([]model.Post, *model.Pagination, error) {
	items, total, err := s.postRepo.ListPublic(ctx, filter)
	if err != nil {
		logger.Error("[ListPublicPosts] err postRepo.ListPublic", zap.String("error", err.Error()))
		return nil, nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, model.NewPagination(filter, total), nil
}

func (s *PostAppImpl) Update(ctx context.Context, authorID, id uint64, req *model.UpdatePostRequest) (*model.Post, error) {
	entity, err := s.postRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[UpdatePost] err postRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil || entity.AuthorID != authorID {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if req.Title != nil {
		entity.Title = *req.Title
	}
	if req.Content != nil {
		entity.Content = *req.Content
	}
	if req.Tags != nil {
		entity.Tags = model.NewTags(req.Tags)
	}
	if req.IsPublic != nil {
		entity.IsPublic = *req.IsPublic
	}
	entity.UpdatedAt = s.now().UTC()

	updated, err := s.postRepo.Update(ctx, entity)
	if err != nil {
		logger.Error("[UpdatePost] err postRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !updated {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *PostAppImpl) Delete(ctx context.Context, authorID, id uint64) error {
	deleted, err := s.postRepo.Delete(ctx, id, authorID)
	if err != nil {
		logger.Error("[DeletePost] err postRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}
