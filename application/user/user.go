package user

import (
	"context"
	stdErrors "errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/green-footprint/constant"
	"github.com/muhammadheryan/green-footprint/model"
	userrepo "github.com/muhammadheryan/green-footprint/repository/user"
	"github.com/muhammadheryan/green-footprint/utils/errors"
	"github.com/muhammadheryan/green-footprint/utils/hasher"
	"github.com/muhammadheryan/green-footprint/utils/logger"
	"github.com/muhammadheryan/green-footprint/utils/token"
	"go.uber.org/zap"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*model.TokenPayload, error)
	GetProfile(ctx context.Context, userID uint64) (*model.UserEntity, error)
	UpdateProfile(ctx context.Context, userID uint64, req *model.UpdateProfileRequest) (*model.UserEntity, error)
	ChangePassword(ctx context.Context, userID uint64, req *model.ChangePasswordRequest) error
	GetPublicProfile(ctx context.Context, userID uint64) (*model.PublicProfile, error)
}

type UserAppImpl struct {
	userRepo userrepo.UserRepository
	hasher   hasher.Hasher
	tokens   token.Manager
	now      func() time.Time

	dummyOnce sync.Once
	dummy     string
}

func NewUserApp(userRepo userrepo.UserRepository, hasher hasher.Hasher, tokens token.Manager) UserApp {
	return &UserAppImpl{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		now:      time.Now,
	}
}

// normalizeEmail trims surrounding whitespace only. Emails are unique and
// matched exactly as stored, case included.
func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	email := normalizeEmail(req.Email)

	// The unique index is authoritative; this only avoids hashing for a known duplicate.
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		logger.Error("[Register] err hasher.Hash", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	userEntity := &model.UserEntity{
		Email:        email,
		PasswordHash: hashedPassword,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Role:         constant.RoleUser,
		CreatedAt:    s.now().UTC(),
	}

	userEntity, err = s.userRepo.Create(ctx, userEntity)
	if err != nil {
		if stdErrors.Is(err, userrepo.ErrDuplicateEmail) {
			return nil, errors.SetCustomError(constant.ErrCredentialExists)
		}
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.RegisterResponse{
		Message: "User registered successfully",
		UserID:  userEntity.ID,
	}, nil
}

// Login fails with the same ErrInvalidCredentials for an unknown email and a
// wrong password.
func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: normalizeEmail(req.Email)})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		// pay the same hashing cost as a wrong password
		_ = s.hasher.Compare(s.dummyHash(), req.Password)
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	signed, err := s.tokens.Issue(user)
	if err != nil {
		logger.Error("[Login] err tokens.Issue", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Message: "Login successful",
		Token:   signed,
		User:    user,
	}, nil
}

// dummyHash is a hash of a random secret, computed once with the app's own
// hasher so its cost matches stored hashes.
func (s *UserAppImpl) dummyHash() string {
	s.dummyOnce.Do(func() {
		h, err := s.hasher.Hash(uuid.NewString())
		if err != nil {
			logger.Warn("[dummyHash] err hasher.Hash", zap.String("error", err.Error()))
			return
		}
		s.dummy = h
	})
	return s.dummy
}

func (s *UserAppImpl) ValidateToken(_ context.Context, tokenString string) (*model.TokenPayload, error) {
	payload, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidToken)
	}
	return payload, nil
}

func (s *UserAppImpl) GetProfile(ctx context.Context, userID uint64) (*model.UserEntity, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[GetProfile] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return user, nil
}

func (s *UserAppImpl) UpdateProfile(ctx context.Context, userID uint64, req *model.UpdateProfileRequest) (*model.UserEntity, error) {
	updated, err := s.userRepo.UpdateProfile(ctx, userID, &model.UserProfileUpdate{
		FirstName: trimmed(req.FirstName),
		LastName:  trimmed(req.LastName),
		Bio:       trimmed(req.Bio),
	})
	if err != nil {
		logger.Error("[UpdateProfile] err userRepo.UpdateProfile", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !updated {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return s.GetProfile(ctx, userID)
}

// ChangePassword leaves the stored hash untouched unless the current password
// verifies. Tokens issued earlier stay valid until they expire.
func (s *UserAppImpl) ChangePassword(ctx context.Context, userID uint64, req *model.ChangePasswordRequest) error {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.hasher.Compare(user.PasswordHash, req.CurrentPassword); err != nil {
		return errors.SetCustomError(constant.ErrIncorrectPassword)
	}

	hashedPassword, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		logger.Error("[ChangePassword] err hasher.Hash", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	updated, err := s.userRepo.UpdatePassword(ctx, userID, hashedPassword)
	if err != nil {
		logger.Error("[ChangePassword] err userRepo.UpdatePassword", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !updated {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

func (s *UserAppImpl) GetPublicProfile(ctx context.Context, userID uint64) (*model.PublicProfile, error) {
	profile, err := s.userRepo.GetPublicProfile(ctx, userID)
	if err != nil {
		logger.Error("[GetPublicProfile] err userRepo.GetPublicProfile", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if profile == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return profile, nil
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}
